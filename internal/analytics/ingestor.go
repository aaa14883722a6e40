package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/continuum-hq/model-router/internal/store"
	"github.com/continuum-hq/model-router/internal/store/model"
)

// Ingestor handles the asynchronous persistence of selection logs so routing
// never waits on sqlite.
type Ingestor interface {
	Log(entry *model.SelectionLog)
	Start(ctx context.Context)
	Stop()
}

type ingestor struct {
	logger    *zap.Logger
	repo      store.Repository
	logChan   chan *model.SelectionLog
	batchSize int
	flushTime time.Duration
}

func NewIngestor(logger *zap.Logger, repo store.Repository) Ingestor {
	return &ingestor{
		logger:    logger,
		repo:      repo,
		logChan:   make(chan *model.SelectionLog, 10000),
		batchSize: 50,
		flushTime: 5 * time.Second,
	}
}

func (i *ingestor) Log(entry *model.SelectionLog) {
	select {
	case i.logChan <- entry:
	default:
		i.logger.Warn("Selection log buffer full, dropping entry", zap.String("id", entry.ID))
	}
}

func (i *ingestor) Start(ctx context.Context) {
	go i.worker(ctx)
}

func (i *ingestor) Stop() {
	close(i.logChan)
}

func (i *ingestor) worker(ctx context.Context) {
	batch := make([]*model.SelectionLog, 0, i.batchSize)
	ticker := time.NewTicker(i.flushTime)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		for _, entry := range batch {
			if err := i.repo.Selections().Log(context.Background(), entry); err != nil {
				i.logger.Error("Failed to persist selection log", zap.String("id", entry.ID), zap.Error(err))
			}
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry, ok := <-i.logChan:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= i.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			flush()
			return
		}
	}
}

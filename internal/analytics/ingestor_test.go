package analytics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/continuum-hq/model-router/internal/store"
	"github.com/continuum-hq/model-router/internal/store/model"
)

type fakeRepo struct {
	mu      sync.Mutex
	entries []*model.SelectionLog
}

func (f *fakeRepo) APIKeys() store.APIKeyRepository       { return nil }
func (f *fakeRepo) Selections() store.SelectionRepository { return (*fakeSelections)(f) }
func (f *fakeRepo) WithTx(ctx context.Context, fn func(repo store.Repository) error) error {
	return fn(f)
}
func (f *fakeRepo) Close() error { return nil }

type fakeSelections fakeRepo

func (f *fakeSelections) Log(ctx context.Context, entry *model.SelectionLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeSelections) GetRecent(ctx context.Context, limit int) ([]model.SelectionLog, error) {
	return nil, nil
}

func (f *fakeSelections) GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error) {
	return nil, nil
}

func (f *fakeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func TestIngestor_FlushesOnStop(t *testing.T) {
	repo := &fakeRepo{}
	ing := NewIngestor(zap.NewNop(), repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ing.Start(ctx)

	for i := 0; i < 3; i++ {
		ing.Log(&model.SelectionLog{
			ID:      "entry",
			Outcome: model.OutcomeSelected,
		})
	}

	ing.Stop()

	// The worker drains the channel after close
	require.Eventually(t, func() bool {
		return repo.count() == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestService_ClampsArguments(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	// Bad arguments fall back to defaults rather than erroring
	_, err := svc.GetUsageOverview(context.Background(), -5)
	assert.NoError(t, err)

	_, err = svc.GetRecentSelections(context.Background(), 0)
	assert.NoError(t, err)
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/continuum-hq/model-router/internal/store"
	"github.com/continuum-hq/model-router/internal/store/model"
)

// DB defines the interface for database operations (satisfied by *sqlx.DB and *sqlx.Tx)
type DB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SqliteRepository implements store.Repository
type SqliteRepository struct {
	db       *sqlx.DB // Required for starting new transactions
	executor DB       // Used for actual queries (can be *sqlx.DB or *sqlx.Tx)
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{
		db:       db,
		executor: db,
	}
}

func (r *SqliteRepository) Close() error {
	return r.db.Close()
}

func (r *SqliteRepository) WithTx(ctx context.Context, fn func(repo store.Repository) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	txRepo := &SqliteRepository{
		db:       r.db,
		executor: tx,
	}

	if err := fn(txRepo); err != nil {
		// attempt rollback, but prioritize original error
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *SqliteRepository) APIKeys() store.APIKeyRepository {
	return &apiKeyRepo{db: r.executor}
}

func (r *SqliteRepository) Selections() store.SelectionRepository {
	return &selectionRepo{db: r.executor}
}

type apiKeyRepo struct {
	db DB
}

func (r *apiKeyRepo) GetByHash(ctx context.Context, hash string) (*model.APIKey, error) {
	var key model.APIKey
	err := r.db.GetContext(ctx, &key,
		`SELECT * FROM api_keys WHERE key_hash = ? AND is_active = 1`, hash)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func (r *apiKeyRepo) Create(ctx context.Context, key *model.APIKey) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO api_keys (id, name, key_hash, key_prefix, is_active, request_count, created_at, updated_at)
		VALUES (:id, :name, :key_hash, :key_prefix, :is_active, :request_count, :created_at, :updated_at)`,
		key)
	return err
}

func (r *apiKeyRepo) UpdateUsage(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE api_keys
		SET request_count = request_count + 1, last_used_at = ?, updated_at = ?
		WHERE id = ?`,
		time.Now(), time.Now(), id)
	return err
}

func (r *apiKeyRepo) List(ctx context.Context) ([]model.APIKey, error) {
	var keys []model.APIKey
	err := r.db.SelectContext(ctx, &keys,
		`SELECT * FROM api_keys ORDER BY created_at DESC`)
	return keys, err
}

type selectionRepo struct {
	db DB
}

func (r *selectionRepo) Log(ctx context.Context, entry *model.SelectionLog) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO selection_logs (id, model_id, provider, capabilities, preferred_provider, outcome, app_name, latency, created_at)
		VALUES (:id, :model_id, :provider, :capabilities, :preferred_provider, :outcome, :app_name, :latency, :created_at)`,
		entry)
	return err
}

func (r *selectionRepo) GetRecent(ctx context.Context, limit int) ([]model.SelectionLog, error) {
	var logs []model.SelectionLog
	err := r.db.SelectContext(ctx, &logs,
		`SELECT * FROM selection_logs ORDER BY created_at DESC LIMIT ?`, limit)
	return logs, err
}

func (r *selectionRepo) GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error) {
	var stats []model.DailyStats
	err := r.db.SelectContext(ctx, &stats, `
		SELECT
			strftime('%Y-%m-%d', created_at) AS day,
			SUM(CASE WHEN outcome != 'miss' THEN 1 ELSE 0 END) AS selections,
			SUM(CASE WHEN outcome = 'miss' THEN 1 ELSE 0 END) AS misses
		FROM selection_logs
		WHERE created_at >= datetime('now', ?)
		GROUP BY day
		ORDER BY day DESC`,
		// e.g. "-7 days"
		fmt.Sprintf("-%d days", days))
	return stats, err
}

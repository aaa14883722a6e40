package store

import (
	"context"

	"github.com/continuum-hq/model-router/internal/store/model"
)

type contextKey string

const (
	ContextKeyAPIKey  contextKey = "api_key"
	ContextKeyAppName contextKey = "app_name"
)

// Repository is the main contract for the data layer.
type Repository interface {
	APIKeys() APIKeyRepository
	Selections() SelectionRepository

	// transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	Close() error
}

type APIKeyRepository interface {
	// GetByHash retrieves a key by its hashed value (for auth).
	GetByHash(ctx context.Context, hash string) (*model.APIKey, error)
	// Create issues a new API key.
	Create(ctx context.Context, key *model.APIKey) error
	// UpdateUsage increments usage stats.
	UpdateUsage(ctx context.Context, id string) error
	// List returns all issued keys.
	List(ctx context.Context) ([]model.APIKey, error)
}

type SelectionRepository interface {
	// Log stores one routing decision.
	Log(ctx context.Context, entry *model.SelectionLog) error
	// GetRecent returns the last N decisions.
	GetRecent(ctx context.Context, limit int) ([]model.SelectionLog, error)
	// GetDailyStats returns decisions aggregated by day and outcome.
	GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error)
}

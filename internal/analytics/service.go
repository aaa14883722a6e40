package analytics

import (
	"context"

	"github.com/continuum-hq/model-router/internal/store"
	"github.com/continuum-hq/model-router/internal/store/model"
)

type Service interface {
	GetUsageOverview(ctx context.Context, days int) ([]model.DailyStats, error)
	GetRecentSelections(ctx context.Context, limit int) ([]model.SelectionLog, error)
}

type service struct {
	repo store.Repository
}

func NewService(repo store.Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetUsageOverview(ctx context.Context, days int) ([]model.DailyStats, error) {
	if days <= 0 {
		days = 7 // default to last week
	}
	return s.repo.Selections().GetDailyStats(ctx, days)
}

func (s *service) GetRecentSelections(ctx context.Context, limit int) ([]model.SelectionLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.repo.Selections().GetRecent(ctx, limit)
}

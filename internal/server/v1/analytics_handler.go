package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/continuum-hq/model-router/internal/analytics"
	"github.com/continuum-hq/model-router/internal/core/domain"
	"github.com/continuum-hq/model-router/pkg/api"
)

type AnalyticsHandler struct {
	service analytics.Service
}

func NewAnalyticsHandler(service analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// GetUsage returns selection counts aggregated per day.
//
// GET /v1/analytics/usage?days=7
func (h *AnalyticsHandler) GetUsage(c *gin.Context) {
	daysStr := c.DefaultQuery("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		_ = c.Error(domain.BadRequestError("Invalid 'days' parameter"))
		return
	}

	stats, err := h.service.GetUsageOverview(c.Request.Context(), days)
	if err != nil {
		_ = c.Error(domain.InternalError("Failed to fetch analytics", err))
		return
	}

	data := make([]api.DailyUsage, 0, len(stats))
	for _, s := range stats {
		data = append(data, api.DailyUsage{
			Day:        s.Day,
			Selections: s.Selections,
			Misses:     s.Misses,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   data,
	})
}

// GetRecent returns the latest routing decisions.
//
// GET /v1/analytics/selections?limit=50
func (h *AnalyticsHandler) GetRecent(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		_ = c.Error(domain.BadRequestError("Invalid 'limit' parameter"))
		return
	}

	logs, err := h.service.GetRecentSelections(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(domain.InternalError("Failed to fetch selections", err))
		return
	}

	data := make([]api.SelectionRecord, 0, len(logs))
	for _, l := range logs {
		data = append(data, api.SelectionRecord{
			ID:                l.ID,
			ModelID:           l.ModelID,
			Provider:          l.Provider,
			Capabilities:      l.Capabilities,
			PreferredProvider: l.PreferredProvider,
			Outcome:           l.Outcome,
			AppName:           l.AppName,
			CreatedAt:         l.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   data,
	})
}

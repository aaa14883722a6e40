package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/continuum-hq/model-router/internal/analytics"
	"github.com/continuum-hq/model-router/internal/core/domain"
	"github.com/continuum-hq/model-router/internal/core/ports"
	"github.com/continuum-hq/model-router/internal/store"
	"github.com/continuum-hq/model-router/internal/store/model"
	"github.com/continuum-hq/model-router/pkg/api"
)

const selectionCacheTTL = 60 * time.Second

type SelectHandler struct {
	selector ports.ModelSelector
	cache    ports.CacheService
	ingestor analytics.Ingestor
}

func NewSelectHandler(selector ports.ModelSelector, cache ports.CacheService, ingestor analytics.Ingestor) *SelectHandler {
	return &SelectHandler{
		selector: selector,
		cache:    cache,
		ingestor: ingestor,
	}
}

// Select routes a task to the best-fit model.
//
// POST /v1/select
func (h *SelectHandler) Select(c *gin.Context) {
	var req api.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.ValidationError(domain.ParseValidationError(err)))
		return
	}

	selReq, err := toSelectionRequest(req)
	if err != nil {
		_ = c.Error(domain.BadRequestError(err.Error()))
		return
	}

	// Selection is pure over the static registry, so identical requests can
	// be answered from cache.
	cacheKey := selectionCacheKey(selReq)
	if h.cache != nil {
		var cached api.SelectResponse
		if h.cache.Get(c.Request.Context(), cacheKey, &cached) == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	start := time.Now()
	selected, err := h.selector.SelectModelForTask(selReq)
	latency := time.Since(start)

	if err != nil {
		if errors.Is(err, domain.ErrNoEligibleModel) {
			h.audit(c, selReq, nil, model.OutcomeMiss, latency)
			_ = c.Error(domain.NoEligibleModelError(fmt.Sprintf(
				"no model of provider %q satisfies the request and fallback is disabled",
				selReq.PreferredProvider,
			)))
			return
		}

		var missing *domain.MissingDefaultError
		if errors.As(err, &missing) {
			_ = c.Error(domain.InternalError("Model registry misconfigured", err))
			return
		}

		_ = c.Error(domain.InternalError("Model selection failed", err))
		return
	}

	outcome := model.OutcomeSelected
	if len(selReq.Capabilities) == 0 || !selected.HasAny(selReq.Capabilities) {
		outcome = model.OutcomeDefault
	}
	h.audit(c, selReq, selected, outcome, latency)

	resp := api.SelectResponse{Model: toAPIModel(*selected)}

	if h.cache != nil {
		_ = h.cache.Set(c.Request.Context(), cacheKey, resp, selectionCacheTTL)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SelectHandler) audit(c *gin.Context, req domain.SelectionRequest, selected *domain.ModelDescriptor, outcome string, latency time.Duration) {
	if h.ingestor == nil {
		return
	}

	entry := &model.SelectionLog{
		ID:                uuid.New().String(),
		Capabilities:      joinCapabilities(req.Capabilities),
		PreferredProvider: string(req.PreferredProvider),
		Outcome:           outcome,
		Latency:           latency,
		CreatedAt:         time.Now().UTC(),
	}
	if selected != nil {
		entry.ModelID = selected.ID
		entry.Provider = string(selected.Provider)
	}
	if appName, ok := c.Request.Context().Value(store.ContextKeyAppName).(string); ok {
		entry.AppName = appName
	}

	h.ingestor.Log(entry)
}

// toSelectionRequest validates raw strings into closed domain types. A typo
// in a capability or provider is a 400 here, never a silent non-match inside
// the selector.
func toSelectionRequest(req api.SelectRequest) (domain.SelectionRequest, error) {
	out := domain.SelectionRequest{FallbackAllowed: true}

	for _, raw := range req.Capabilities {
		tag, err := domain.ParseCapability(raw)
		if err != nil {
			return domain.SelectionRequest{}, err
		}
		out.Capabilities = append(out.Capabilities, tag)
	}

	if req.PreferredProvider != "" {
		p, err := domain.ParseProvider(req.PreferredProvider)
		if err != nil {
			return domain.SelectionRequest{}, err
		}
		out.PreferredProvider = p
	}

	if req.FallbackAllowed != nil {
		out.FallbackAllowed = *req.FallbackAllowed
	}

	return out, nil
}

func selectionCacheKey(req domain.SelectionRequest) string {
	return fmt.Sprintf("select:%s|%s|%t",
		joinCapabilities(req.Capabilities),
		req.PreferredProvider,
		req.FallbackAllowed,
	)
}

func joinCapabilities(caps []domain.Capability) string {
	parts := make([]string, len(caps))
	for i, c := range caps {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func toAPIModel(m domain.ModelDescriptor) api.Model {
	caps := make([]string, len(m.Capabilities))
	for i, c := range m.Capabilities {
		caps[i] = string(c)
	}
	return api.Model{
		ID:            m.ID,
		Provider:      string(m.Provider),
		Capabilities:  caps,
		ContextWindow: m.ContextWindowTokens,
		Default:       m.IsDefault,
	}
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/continuum-hq/model-router/internal/core/domain"
	"github.com/continuum-hq/model-router/internal/core/ports"
	"github.com/continuum-hq/model-router/pkg/api"
)

type ModelHandler struct {
	selector ports.ModelSelector
	registry ports.ModelRegistry
}

func NewModelHandler(selector ports.ModelSelector, registry ports.ModelRegistry) *ModelHandler {
	return &ModelHandler{
		selector: selector,
		registry: registry,
	}
}

// ListModels returns registry entries, optionally narrowed by provider or
// capability. Both filters preserve registry order; an empty result is a
// valid response, not an error.
//
// GET /v1/models?provider=...&capability=...
func (h *ModelHandler) ListModels(c *gin.Context) {
	var models []domain.ModelDescriptor

	switch {
	case c.Query("provider") != "":
		p, err := domain.ParseProvider(c.Query("provider"))
		if err != nil {
			_ = c.Error(domain.BadRequestError(err.Error()))
			return
		}
		models = h.selector.ModelsByProvider(p)

	case c.Query("capability") != "":
		tag, err := domain.ParseCapability(c.Query("capability"))
		if err != nil {
			_ = c.Error(domain.BadRequestError(err.Error()))
			return
		}
		models = h.selector.ModelsByCapability(tag)

	default:
		models = h.registry.List()
	}

	data := make([]api.Model, 0, len(models))
	for _, m := range models {
		data = append(data, toAPIModel(m))
	}

	c.JSON(http.StatusOK, api.ModelList{
		Object: "list",
		Data:   data,
	})
}

// GetDefault returns the registry's default descriptor.
//
// GET /v1/models/default
func (h *ModelHandler) GetDefault(c *gin.Context) {
	m, err := h.selector.DefaultModel()
	if err != nil {
		_ = c.Error(domain.InternalError("Model registry misconfigured", err))
		return
	}

	c.JSON(http.StatusOK, toAPIModel(*m))
}

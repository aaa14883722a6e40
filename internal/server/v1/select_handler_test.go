package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/continuum-hq/model-router/internal/core/domain"
	"github.com/continuum-hq/model-router/internal/core/ports"
	"github.com/continuum-hq/model-router/internal/core/services"
	"github.com/continuum-hq/model-router/internal/platform/logger"
	"github.com/continuum-hq/model-router/internal/server/middleware"
	v1 "github.com/continuum-hq/model-router/internal/server/v1"
	"github.com/continuum-hq/model-router/pkg/api"
)

func testRegistry(t *testing.T) ports.ModelRegistry {
	t.Helper()

	registry, err := services.NewStaticRegistry([]domain.ModelDescriptor{
		{
			ID:           "gemini-math",
			Provider:     domain.ProviderGoogle,
			Capabilities: []domain.Capability{domain.CapabilityMath},
		},
		{
			ID:       "gpt-default",
			Provider: domain.ProviderOpenAI,
			Capabilities: []domain.Capability{
				domain.CapabilityMath,
				domain.CapabilityProse,
			},
			ContextWindowTokens: 128000,
			IsDefault:           true,
		},
	})
	require.NoError(t, err)
	return registry
}

func setupEngine(t *testing.T, registry ports.ModelRegistry) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	domain.InitValidator()

	selector := services.NewSelector(registry)

	engine := gin.New()
	engine.Use(middleware.ErrorHandler(logger.Get()))

	selectHandler := v1.NewSelectHandler(selector, nil, nil)
	engine.POST("/v1/select", selectHandler.Select)

	modelHandler := v1.NewModelHandler(selector, registry)
	engine.GET("/v1/models", modelHandler.ListModels)
	engine.GET("/v1/models/default", modelHandler.GetDefault)

	return engine
}

func postSelect(t *testing.T, engine *gin.Engine, body api.SelectRequest) *httptest.ResponseRecorder {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/select", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestSelect_ReturnsBestFit(t *testing.T) {
	engine := setupEngine(t, testRegistry(t))

	w := postSelect(t, engine, api.SelectRequest{
		Capabilities: []string{"math"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.SelectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "gpt-default", resp.Model.ID)
	assert.True(t, resp.Model.Default)
}

func TestSelect_EmptyCapabilitiesYieldsDefault(t *testing.T) {
	engine := setupEngine(t, testRegistry(t))

	w := postSelect(t, engine, api.SelectRequest{Capabilities: []string{}})

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.SelectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "gpt-default", resp.Model.ID)
}

func TestSelect_PreferredProviderMissIsConflict(t *testing.T) {
	engine := setupEngine(t, testRegistry(t))

	disabled := false
	w := postSelect(t, engine, api.SelectRequest{
		Capabilities:      []string{"prose"},
		PreferredProvider: "google",
		FallbackAllowed:   &disabled,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "No Eligible Model")
}

func TestSelect_UnknownCapabilityIsBadRequest(t *testing.T) {
	engine := setupEngine(t, testRegistry(t))

	w := postSelect(t, engine, api.SelectRequest{
		Capabilities: []string{"telepathy"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown capability")
}

func TestSelect_BrokenRegistryIsServerError(t *testing.T) {
	registry, err := services.NewStaticRegistry([]domain.ModelDescriptor{
		{
			ID:           "no-default-here",
			Provider:     domain.ProviderMistral,
			Capabilities: []domain.Capability{domain.CapabilityCode},
		},
	})
	require.NoError(t, err)
	engine := setupEngine(t, registry)

	w := postSelect(t, engine, api.SelectRequest{Capabilities: []string{}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListModels_FilterByProvider(t *testing.T) {
	engine := setupEngine(t, testRegistry(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models?provider=google", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var list api.ModelList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "gemini-math", list.Data[0].ID)
}

func TestListModels_FilterByCapability(t *testing.T) {
	engine := setupEngine(t, testRegistry(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models?capability=math", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var list api.ModelList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 2)
	assert.Equal(t, "gemini-math", list.Data[0].ID)
	assert.Equal(t, "gpt-default", list.Data[1].ID)
}

func TestListModels_UnknownProviderIsBadRequest(t *testing.T) {
	engine := setupEngine(t, testRegistry(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models?provider=acme", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDefault(t *testing.T) {
	engine := setupEngine(t, testRegistry(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models/default", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var m api.Model
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "gpt-default", m.ID)
}

package server

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/continuum-hq/model-router/internal/analytics"
	"github.com/continuum-hq/model-router/internal/config"
	"github.com/continuum-hq/model-router/internal/core/ports"
	"github.com/continuum-hq/model-router/internal/store"
)

type Server struct {
	router    *gin.Engine
	config    *config.Config
	logger    *zap.Logger
	selector  ports.ModelSelector
	registry  ports.ModelRegistry
	cache     ports.CacheService
	repo      store.Repository
	ingestor  analytics.Ingestor
	analytics analytics.Service
}

func New(
	cfg *config.Config,
	logger *zap.Logger,
	selector ports.ModelSelector,
	registry ports.ModelRegistry,
	cache ports.CacheService,
	repo store.Repository,
	ingestor analytics.Ingestor,
	analyticsService analytics.Service,
) *Server {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(logger, true))

	s := &Server{
		router:    engine,
		config:    cfg,
		logger:    logger,
		selector:  selector,
		registry:  registry,
		cache:     cache,
		repo:      repo,
		ingestor:  ingestor,
		analytics: analyticsService,
	}

	s.SetupRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

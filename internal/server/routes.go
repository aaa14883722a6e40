package server

import (
	"github.com/continuum-hq/model-router/internal/server/middleware"
	v1 "github.com/continuum-hq/model-router/internal/server/v1"
)

func (s *Server) SetupRoutes() {
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Tracing("continuum-router"))
	s.router.Use(middleware.ErrorHandler(s.logger))

	// Health check stays public
	healthHandler := v1.NewHealthHandler()
	s.router.GET("/health", healthHandler.Health)

	limiter := middleware.NewRateLimiter(
		s.config.RateLimit.RequestsPerSecond,
		s.config.RateLimit.Burst,
		s.logger,
	)

	api := s.router.Group("/v1")
	api.Use(middleware.Auth(s.repo, s.cache, s.config.Server.APIKeys))
	api.Use(limiter.Middleware())
	{
		selectHandler := v1.NewSelectHandler(s.selector, s.cache, s.ingestor)
		api.POST("/select", selectHandler.Select)

		modelHandler := v1.NewModelHandler(s.selector, s.registry)
		api.GET("/models", modelHandler.ListModels)
		api.GET("/models/default", modelHandler.GetDefault)

		analyticsHandler := v1.NewAnalyticsHandler(s.analytics)
		api.GET("/analytics/usage", analyticsHandler.GetUsage)
		api.GET("/analytics/selections", analyticsHandler.GetRecent)
	}
}

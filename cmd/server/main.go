package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/continuum-hq/model-router/cmd"
	"github.com/continuum-hq/model-router/internal/analytics"
	"github.com/continuum-hq/model-router/internal/cache/memory"
	"github.com/continuum-hq/model-router/internal/cache/redis"
	"github.com/continuum-hq/model-router/internal/config"
	"github.com/continuum-hq/model-router/internal/core/domain"
	"github.com/continuum-hq/model-router/internal/core/ports"
	"github.com/continuum-hq/model-router/internal/core/services"
	"github.com/continuum-hq/model-router/internal/modeldata"
	"github.com/continuum-hq/model-router/internal/platform/logger"
	"github.com/continuum-hq/model-router/internal/platform/otel"
	"github.com/continuum-hq/model-router/internal/server"
	"github.com/continuum-hq/model-router/internal/store/sqlite"
)

func main() {
	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()
	log := logger.Get()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	cmd.CheckForUpdates()
	domain.InitValidator()

	shutdownTracer, err := otel.InitTracer("continuum-router", log, os.Stdout)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	repo, err := sqlite.NewSQLiteStorage(cfg.Store.DSN, log)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer repo.Close()

	var cacheSvc ports.CacheService
	if cfg.Redis.Enabled {
		cacheSvc, err = redis.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
			cacheSvc = memory.NewMemoryCache()
		}
	} else {
		cacheSvc = memory.NewMemoryCache()
	}

	descriptors, err := cfg.Registry.Descriptors()
	if err != nil {
		log.Fatal("Invalid model registry configuration", zap.Error(err))
	}
	if len(descriptors) == 0 {
		log.Info("No models configured, using built-in catalog")
		descriptors = modeldata.DefaultCatalog
	}

	registry, err := services.NewStaticRegistry(descriptors)
	if err != nil {
		log.Fatal("Failed to build model registry", zap.Error(err))
	}

	selector := services.NewSelector(registry)

	// A registry without a default model is a deployment defect. Surface it
	// at startup instead of on the first degraded request.
	if _, err := selector.DefaultModel(); err != nil {
		log.Fatal("Broken model registry", zap.Error(err))
	}

	log.Info("Model registry loaded", zap.Int("models", registry.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ingestor := analytics.NewIngestor(log, repo)
	ingestor.Start(ctx)

	srv := server.New(cfg, log, selector, registry, cacheSvc, repo, ingestor, analytics.NewService(repo))

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Handler(),
	}

	go func() {
		log.Info("Starting Continuum model router", zap.String("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = httpServer.Shutdown(shutdownCtx)
	ingestor.Stop()
	_ = shutdownTracer(shutdownCtx)
}

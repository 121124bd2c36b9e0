package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"signflow/internal/cache"
	"signflow/internal/commons"
	"signflow/internal/config"
	"signflow/internal/designrequest"
	"signflow/internal/infrastructure/logger"
	"signflow/internal/metrics"
	"signflow/internal/order"
	"signflow/internal/server"
	"signflow/internal/status"
	"signflow/internal/upstream"
	"signflow/internal/workflow"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	client := upstream.NewClient(upstream.Config{
		BaseURL:          cfg.Upstream.BaseURL,
		ImageResolverURL: cfg.Upstream.ImageResolverURL,
		Timeout:          cfg.Upstream.Timeout,
		TokenProvider:    bearerTokenFromEnv,
	}, zapLogger)

	store := cache.NewStore(metrics.NewCacheMetrics(registry), zapLogger)
	state := workflow.NewState(store, status.NewRegistry(), client, zapLogger)
	orchestrator := workflow.NewOrchestrator(state, client, zapLogger)

	orderCtrl := order.NewModule(state, orchestrator, zapLogger)
	designRequestCtrl := designrequest.NewModule(state, orchestrator, zapLogger)

	router := server.NewRouter(
		orderCtrl,
		designRequestCtrl,
		state,
		metrics.Handler(registry),
		metrics.Middleware(registry),
		zapLogger,
	)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	state.Teardown()
	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

func bearerTokenFromEnv() string {
	return os.Getenv("UPSTREAM_API_TOKEN")
}

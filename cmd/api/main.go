package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/storagefront/wss-backend/api/routes"
	"github.com/storagefront/wss-backend/internal/booking"
	"github.com/storagefront/wss-backend/internal/catalog"
	"github.com/storagefront/wss-backend/pkg/config"
	"github.com/storagefront/wss-backend/pkg/logger"
	"github.com/storagefront/wss-backend/pkg/metrics"
	pkgredis "github.com/storagefront/wss-backend/pkg/redis"
	"github.com/storagefront/wss-backend/pkg/wss"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	upstreamMetrics := metrics.NewUpstreamMetrics(registry)

	wssClient, err := wss.NewClient(cfg.WSS, logg, upstreamMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to configure wss client", err)
		os.Exit(1)
	}

	var redisClient *pkgredis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = pkgredis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotency disabled")
	}

	catalogService := catalog.NewService(wssClient, catalog.MoveInURLBuilder{
		Template: cfg.WSS.MoveInPortalTemplate,
		BaseURL:  cfg.WSS.MoveInPortalURL,
	}, logg)
	bookingService := booking.NewService(wssClient, logg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"location": wssClient.LocationID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, catalogService, bookingService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Aftab0008/car-end/internal/api"
	"github.com/Aftab0008/car-end/internal/config"
	"github.com/Aftab0008/car-end/internal/geocode"
	"github.com/Aftab0008/car-end/internal/notify"
	"github.com/Aftab0008/car-end/internal/observability"
	"github.com/Aftab0008/car-end/internal/redis"
	"github.com/Aftab0008/car-end/internal/service"
	"github.com/Aftab0008/car-end/internal/storage/postgres"
	"github.com/Aftab0008/car-end/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	metrics := observability.NewMetrics()

	var resolver service.AddressResolver = geocode.NewClient(
		cfg.Geocode.APIKey, cfg.Geocode.Timeout, logger, metrics)

	var redisClient *redis.Redis
	if cfg.Redis.Disabled {
		logger.Warn("Redis disabled, geocode results will not be cached")
	} else {
		logger.Info("Initializing Redis")
		redisClient, err = redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			storage.Pool.Close()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		resolver = geocode.NewCachedResolver(
			resolver, redis.NewAddressCache(redisClient), cfg.Geocode.CacheTTL, logger, metrics)
	}

	notifier := notify.NewTwilioNotifier(cfg.Twilio, logger, metrics)

	svc := service.NewEmergencyService(storage.Emergency, resolver, notifier, logger, metrics)

	httpServer := api.NewServer(cfg, logger, svc, storage)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

package cache

import (
	"context"
	"log/slog"

	"smartbus/internal/pkg/config"
	"smartbus/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewClient returns nil when no address is configured.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	if !cfg.Enabled() {
		slog.Info("redis disabled, checkout replay is off")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		slog.Info("Closing redis client...")
		if err := client.Close(); err != nil {
			slog.Error("close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}

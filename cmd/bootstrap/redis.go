package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"smartbus/internal/infra/cache"
	"smartbus/internal/pkg/config"
	"smartbus/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewCheckoutReplayStore,
	),
)

// NewRedis returns a nil client when REDIS_ADDR is unset.
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, cleanup, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return rdb, nil
}

func NewCheckoutReplayStore(rdb *redis.Client) commands.CheckoutReplayStore {
	if rdb == nil {
		slog.Info("redis disabled, checkout replay off")
		return nil
	}
	return cache.NewCheckoutReplayStore(rdb)
}

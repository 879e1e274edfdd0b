package bootstrap

import (
	"context"
	"log/slog"

	"smartbus/internal/infra/messaging"
	"smartbus/internal/pkg/clock"
	"smartbus/internal/pkg/config"
	"smartbus/internal/usecase/shared"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Invoke(
		startOutboxRelay,
	),
)

// startOutboxRelay runs the relay for the lifetime of the app. Without
// brokers the outbox just accumulates rows.
func startOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock) {
	if !cfg.Kafka.Enabled() {
		slog.Info("kafka disabled, outbox relay not started")
		return
	}

	producer := messaging.NewProducer(cfg.Kafka)
	relay := messaging.NewRelay(uow, producer, clk, cfg.Kafka)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("starting outbox relay", "topic", producer.Topic(), "brokers", cfg.Kafka.Brokers)
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return producer.Close()
		},
	})
}

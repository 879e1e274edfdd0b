package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"smartbus/internal/domain/outbox"
	"smartbus/internal/pkg/clock"
	"smartbus/internal/pkg/config"
	"smartbus/internal/pkg/metrics"
	"smartbus/internal/usecase/shared"

	"github.com/google/uuid"
)

const sendTimeout = 5 * time.Second

type Publisher interface {
	Send(ctx context.Context, key, value []byte) error
}

// Relay drains outbox_events to Kafka. Claiming commits before publishing,
// so a relay that dies mid-batch leaves rows in processing; they are
// claimed again once the lease runs out and may reach the broker twice.
// Consumers dedupe on the event id.
type Relay struct {
	uow       shared.UnitOfWork
	pub       Publisher
	clock     clock.Clock
	interval  time.Duration
	batchSize int32
	lease     time.Duration
}

func NewRelay(uow shared.UnitOfWork, pub Publisher, clk clock.Clock, cfg config.KafkaConfig) *Relay {
	return &Relay{
		uow:       uow,
		pub:       pub,
		clock:     clk,
		interval:  cfg.RelayInterval,
		batchSize: cfg.BatchSize,
		lease:     cfg.RelayLease,
	}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("outbox relay started", "interval", r.interval, "batch_size", r.batchSize)
	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.ProcessBatch(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay batch failed", "error", err)
			}
		}
	}
}

// ProcessBatch publishes one claimed batch and returns how many events
// reached the broker.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	var events []outbox.Event
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		events, err = tx.Outbox().Claim(ctx, r.batchSize, r.clock.Now(), r.lease)
		return err
	})
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	published := make([]uuid.UUID, 0, len(events))
	failed := make([]uuid.UUID, 0)
	for _, ev := range events {
		if ctx.Err() != nil {
			failed = append(failed, ev.ID)
			continue
		}
		value, err := json.Marshal(ev.Envelope())
		if err != nil {
			slog.Error("marshal outbox event", "event_id", ev.ID, "error", err)
			metrics.OutboxPublishErrors.Inc()
			failed = append(failed, ev.ID)
			continue
		}

		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		err = r.pub.Send(sendCtx, []byte(ev.AggregateKey), value)
		cancel()
		if err != nil {
			slog.Warn("publish outbox event", "event_id", ev.ID, "type", ev.Type, "error", err)
			metrics.OutboxPublishErrors.Inc()
			failed = append(failed, ev.ID)
			continue
		}
		metrics.OutboxPublished.Inc()
		published = append(published, ev.ID)
	}

	// shutdown cancels ctx mid-batch; the claimed rows still get settled
	err = r.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Outbox().MarkPublished(ctx, published, r.clock.Now()); err != nil {
			return err
		}
		return tx.Outbox().Release(ctx, failed)
	})
	if err != nil {
		return len(published), err
	}

	slog.Debug("outbox batch relayed", "published", len(published), "failed", len(failed))
	return len(published), ctx.Err()
}

package repository

import (
	"context"
	"time"

	"smartbus/internal/domain/outbox"
	"smartbus/internal/infra"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	CreateOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error
	ClaimOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimOutboxEventsParams) ([]sqlc.ClaimOutboxEventsRow, error)
	MarkOutboxEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventsPublishedParams) error
	ReleaseOutboxEvents(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, ev outbox.Event) error {
	err := r.queries.CreateOutboxEvent(ctx, r.db, sqlc.CreateOutboxEventParams{
		ID:           ev.ID,
		AggregateKey: ev.AggregateKey,
		EventType:    string(ev.Type),
		Payload:      ev.Payload,
		CreatedAt:    pgconv.TimeToPgtype(ev.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

// Claim moves up to limit events to processing: new ones, and processing
// ones whose lease ran out. Rows locked by another relay are skipped.
func (r *OutboxRepository) Claim(ctx context.Context, limit int32, now time.Time, lease time.Duration) ([]outbox.Event, error) {
	rows, err := r.queries.ClaimOutboxEvents(ctx, r.db, sqlc.ClaimOutboxEventsParams{
		StaleBefore: pgconv.TimeToPgtype(now.Add(-lease)),
		BatchLimit:  limit,
		ClaimedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}
	events := make([]outbox.Event, len(rows))
	for i, row := range rows {
		events[i] = outbox.Event{
			ID:           row.ID,
			AggregateKey: row.AggregateKey,
			Type:         outbox.Type(row.EventType),
			Payload:      row.Payload,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.queries.MarkOutboxEventsPublished(ctx, r.db, sqlc.MarkOutboxEventsPublishedParams{
		PublishedAt: pgconv.TimeToPgtype(at),
		Ids:         ids,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox events published", err)
	}
	return nil
}

func (r *OutboxRepository) Release(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.queries.ReleaseOutboxEvents(ctx, r.db, ids); err != nil {
		return infra.WrapRepoErr("failed to release outbox events", err)
	}
	return nil
}

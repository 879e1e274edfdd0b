package repository

import (
	"context"

	"smartbus/internal/domain/ticket"
	"smartbus/internal/infra"
	"smartbus/internal/infra/repository/converter"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/pkg/pgconv"
)

// ErrStaleRedemption: the counter moved between the locked read and the update.
var ErrStaleRedemption = errs.New("ticket changed during redemption")

type TicketWriteQueries interface {
	CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) error
	GetTicketByTokenForUpdate(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Tickets, error)
	UpdateTicketRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTicketRedemptionParams) (int64, error)
	CreateTicketUsageLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketUsageLogParams) error
}

type TicketRepository struct {
	queries TicketWriteQueries
	db      sqlc.DBTX
}

func NewTicketRepository(queries TicketWriteQueries, db sqlc.DBTX) *TicketRepository {
	return &TicketRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if err := r.queries.CreateTicket(ctx, r.db, converter.TicketToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create ticket", err)
	}
	return nil
}

func (r *TicketRepository) FindByTokenForUpdate(ctx context.Context, token string) (*ticket.Ticket, error) {
	row, err := r.queries.GetTicketByTokenForUpdate(ctx, r.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock ticket", err)
	}
	return converter.TicketFromRow(row), nil
}

func (r *TicketRepository) SaveRedemption(ctx context.Context, t *ticket.Ticket, previousRemaining *int32) error {
	params := sqlc.UpdateTicketRedemptionParams{
		IsActive:          t.IsActive(),
		RemainingUses:     pgconv.Int32PtrToPgtype(t.RemainingUses()),
		ID:                t.ID(),
		ExpectedRemaining: pgconv.Int32PtrToPgtype(previousRemaining),
	}
	n, err := r.queries.UpdateTicketRedemption(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update ticket", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("ticket redemption lost compare-and-swap", ErrStaleRedemption, infra.KindConflict)
	}
	return nil
}

func (r *TicketRepository) AppendUsageLog(ctx context.Context, entry ticket.UsageLog) error {
	if err := r.queries.CreateTicketUsageLog(ctx, r.db, converter.UsageLogToParams(entry)); err != nil {
		return infra.WrapRepoErr("failed to append usage log", err)
	}
	return nil
}

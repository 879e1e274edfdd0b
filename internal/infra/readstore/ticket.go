package readstore

import (
	"context"

	"smartbus/internal/infra"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/pgconv"
	"smartbus/internal/usecase/queries"
)

type TicketReadQueries interface {
	ListTicketsByUser(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.ListTicketsByUserRow, error)
}

type TicketReadStore struct {
	queries TicketReadQueries
	db      sqlc.DBTX
}

func NewTicketReadStore(queries TicketReadQueries, db sqlc.DBTX) *TicketReadStore {
	return &TicketReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TicketReadStore) ListByUser(ctx context.Context, userID int64) ([]queries.TicketView, error) {
	rows, err := r.queries.ListTicketsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets by user", err)
	}

	views := make([]queries.TicketView, len(rows))
	for i, row := range rows {
		views[i] = queries.TicketView{
			ID:             row.ID,
			Token:          row.Token,
			RouteID:        row.RouteID,
			RouteName:      row.RouteName,
			TicketTypeID:   row.TicketTypeID,
			TicketTypeName: row.TicketTypeName,
			PolicyKind:     row.PolicyKind,
			IssuedAt:       pgconv.TimeFromPgtype(row.IssuedAt),
			ExpiresAt:      pgconv.TimePtrFromPgtype(row.ExpiredAt),
			RemainingUses:  pgconv.Int32PtrFromPgtype(row.RemainingUses),
			IsActive:       row.IsActive,
			Price:          row.Price,
		}
	}
	return views, nil
}

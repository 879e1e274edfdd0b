package readstore

import (
	"context"

	"smartbus/internal/domain/fare"
	"smartbus/internal/infra"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/pgconv"
	"smartbus/internal/usecase/queries"
)

type FareReadQueries interface {
	GetTicketType(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.TicketTypes, error)
	GetTicketTypeForShare(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.TicketTypes, error)
	GetActivePrice(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActivePriceParams) (sqlc.GetActivePriceRow, error)
	GetActivePriceForShare(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActivePriceForShareParams) (sqlc.GetActivePriceForShareRow, error)
	GetRoute(ctx context.Context, db sqlc.DBTX, id string) (sqlc.GetRouteRow, error)
	ListTicketTypesByRoute(ctx context.Context, db sqlc.DBTX, routeID string) ([]sqlc.ListTicketTypesByRouteRow, error)
}

// FareReadStore serves the fare catalog. The locking variant is used inside
// write transactions so the price row cannot change until commit.
type FareReadStore struct {
	queries  FareReadQueries
	db       sqlc.DBTX
	forShare bool
}

func NewFareReadStore(queries FareReadQueries, db sqlc.DBTX) *FareReadStore {
	return &FareReadStore{queries: queries, db: db}
}

func NewLockingFareReadStore(queries FareReadQueries, db sqlc.DBTX) *FareReadStore {
	return &FareReadStore{queries: queries, db: db, forShare: true}
}

func (r *FareReadStore) PriceFor(ctx context.Context, routeID string, ticketTypeID int32) (fare.Quote, error) {
	var (
		row sqlc.GetActivePriceRow
		err error
	)
	if r.forShare {
		var locked sqlc.GetActivePriceForShareRow
		locked, err = r.queries.GetActivePriceForShare(ctx, r.db, sqlc.GetActivePriceForShareParams{
			RouteID:      routeID,
			TicketTypeID: ticketTypeID,
		})
		row = sqlc.GetActivePriceRow(locked)
	} else {
		row, err = r.queries.GetActivePrice(ctx, r.db, sqlc.GetActivePriceParams{
			RouteID:      routeID,
			TicketTypeID: ticketTypeID,
		})
	}
	if err != nil {
		if pgconv.IsNoRows(err) {
			return fare.Quote{}, infra.WrapRepoErr("active price not found", err, infra.KindNotFound)
		}
		return fare.Quote{}, infra.WrapRepoErr("failed to find active price", err)
	}

	return fare.Quote{
		RouteID:      row.RouteID,
		RouteName:    row.RouteName,
		TicketTypeID: row.TicketTypeID,
		TicketName:   row.TicketName,
		Price:        fare.Money(row.Price),
	}, nil
}

func (r *FareReadStore) PolicyFor(ctx context.Context, ticketTypeID int32) (*fare.TicketType, error) {
	get := r.queries.GetTicketType
	if r.forShare {
		get = r.queries.GetTicketTypeForShare
	}
	row, err := get(ctx, r.db, ticketTypeID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket type", err)
	}
	return toTicketType(row), nil
}

func (r *FareReadStore) RouteName(ctx context.Context, routeID string) (string, error) {
	row, err := r.queries.GetRoute(ctx, r.db, routeID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("route not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find route", err)
	}
	return row.RouteName, nil
}

func (r *FareReadStore) ListByRoute(ctx context.Context, routeID string) ([]queries.FareView, error) {
	rows, err := r.queries.ListTicketTypesByRoute(ctx, r.db, routeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ticket types by route", err)
	}

	views := make([]queries.FareView, 0, len(rows))
	for _, row := range rows {
		tt := fare.ReconstructTicketType(
			row.TicketTypeID,
			row.TicketName,
			pgconv.Int32PtrFromPgtype(row.DurationDays),
			pgconv.Int32PtrFromPgtype(row.MaxUses),
			row.IsUnlimited,
		)
		kind, _ := tt.Policy() // the table constraint keeps this resolvable
		views = append(views, queries.FareView{
			TicketTypeID: row.TicketTypeID,
			TicketName:   row.TicketName,
			Price:        row.Price,
			PolicyKind:   kind.String(),
			DurationDays: tt.DurationDays(),
			MaxUses:      tt.MaxUses(),
			IsUnlimited:  row.IsUnlimited,
		})
	}
	return views, nil
}

func toTicketType(row sqlc.TicketTypes) *fare.TicketType {
	return fare.ReconstructTicketType(
		row.ID,
		row.Name,
		pgconv.Int32PtrFromPgtype(row.DurationDays),
		pgconv.Int32PtrFromPgtype(row.MaxUses),
		row.IsUnlimited,
	)
}

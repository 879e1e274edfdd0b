package converter

import (
	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/ticket"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/pgconv"
)

func TicketToCreateParams(t *ticket.Ticket) sqlc.CreateTicketParams {
	return sqlc.CreateTicketParams{
		ID:            t.ID(),
		Token:         t.Token(),
		UserID:        t.UserID(),
		RouteID:       t.RouteID(),
		TicketTypeID:  t.TicketTypeID(),
		PolicyKind:    t.PolicyKind().String(),
		IssuedAt:      pgconv.TimeToPgtype(t.IssuedAt()),
		ExpiredAt:     pgconv.TimePtrToPgtype(t.ExpiresAt()),
		RemainingUses: pgconv.Int32PtrToPgtype(t.RemainingUses()),
		IsActive:      t.IsActive(),
		Price:         t.Price().Int64(),
	}
}

func TicketFromRow(row sqlc.Tickets) *ticket.Ticket {
	return ticket.Reconstruct(
		row.ID,
		row.Token,
		row.UserID,
		row.RouteID,
		row.TicketTypeID,
		fare.PolicyKind(row.PolicyKind),
		pgconv.TimeFromPgtype(row.IssuedAt),
		pgconv.TimePtrFromPgtype(row.ExpiredAt),
		pgconv.Int32PtrFromPgtype(row.RemainingUses),
		row.IsActive,
		fare.Money(row.Price),
	)
}

func UsageLogToParams(entry ticket.UsageLog) sqlc.CreateTicketUsageLogParams {
	return sqlc.CreateTicketUsageLogParams{
		TicketID:  entry.TicketID,
		ScannedAt: pgconv.TimeToPgtype(entry.ScannedAt),
		ScannedBy: entry.ScannedBy,
		Location:  entry.Location,
		IsValid:   entry.Valid,
		Reason:    entry.Reason,
	}
}

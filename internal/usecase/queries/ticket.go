package queries

import (
	"context"
	"strconv"

	"smartbus/internal/domain/user"
	"smartbus/internal/pkg/errs"
)

var (
	ErrTicketAccess  = errs.New("ticket access denied")
	ErrInvalidUserID = errs.New("invalid user id")
)

type TicketReadStore interface {
	ListByUser(ctx context.Context, userID int64) ([]TicketView, error)
}

type TicketQueries interface {
	ListByUser(ctx context.Context, userID int64, actorID string, actorRole user.Role) ([]TicketView, error)
}

type ticketQueriesImpl struct {
	store TicketReadStore
}

func NewTicketQueries(store TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{store: store}
}

// ListByUser returns the user's tickets newest first. Riders may only list
// their own tickets; staff roles may list anyone's.
func (q *ticketQueriesImpl) ListByUser(ctx context.Context, userID int64, actorID string, actorRole user.Role) ([]TicketView, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if actorRole == user.RoleRider && actorID != strconv.FormatInt(userID, 10) {
		return nil, ErrTicketAccess
	}

	views, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []TicketView{}
	}
	return views, nil
}

package readstore

import (
	"context"

	"smartbus/internal/domain/user"
	"smartbus/internal/infra"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/pgconv"
)

type UserReadQueries interface {
	GetUser(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetUserRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) RiderByID(ctx context.Context, id int64) (*user.Rider, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	var email string
	if row.Email.Valid {
		email = row.Email.String
	}
	rider, err := user.NewRider(row.ID, row.FullName, email)
	if err != nil {
		// a malformed stored email should not block a purchase
		return user.NewRider(row.ID, row.FullName, "")
	}
	return rider, nil
}

//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"smartbus/internal/domain/user"
	"smartbus/internal/infra"
	"smartbus/internal/usecase/queries"
	queriesmock "smartbus/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTicketQueries_ListByUser(t *testing.T) {
	ctx := context.Background()
	views := []queries.TicketView{{ID: uuid.New(), Token: "tok", RouteID: "R01"}}

	tests := []struct {
		name      string
		userID    int64
		actorID   string
		role      user.Role
		setup     func(m *queriesmock.MockTicketReadStore)
		wantErr   error
		wantCount int
	}{
		{
			name:    "rider lists own tickets",
			userID:  7,
			actorID: "7",
			role:    user.RoleRider,
			setup: func(m *queriesmock.MockTicketReadStore) {
				m.EXPECT().ListByUser(ctx, int64(7)).Return(views, nil)
			},
			wantCount: 1,
		},
		{
			name:    "rider cannot list someone else",
			userID:  8,
			actorID: "7",
			role:    user.RoleRider,
			setup:   func(*queriesmock.MockTicketReadStore) {},
			wantErr: queries.ErrTicketAccess,
		},
		{
			name:    "inspector lists anyone",
			userID:  8,
			actorID: "gate-01",
			role:    user.RoleInspector,
			setup: func(m *queriesmock.MockTicketReadStore) {
				m.EXPECT().ListByUser(ctx, int64(8)).Return(views, nil)
			},
			wantCount: 1,
		},
		{
			name:    "empty result is an empty slice",
			userID:  7,
			actorID: "7",
			role:    user.RoleRider,
			setup: func(m *queriesmock.MockTicketReadStore) {
				m.EXPECT().ListByUser(ctx, int64(7)).Return(nil, nil)
			},
			wantCount: 0,
		},
		{
			name:    "invalid user id",
			userID:  0,
			actorID: "0",
			role:    user.RoleAdmin,
			setup:   func(*queriesmock.MockTicketReadStore) {},
			wantErr: queries.ErrInvalidUserID,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockTicketReadStore(ctrl)
			tc.setup(store)

			got, err := queries.NewTicketQueries(store).ListByUser(ctx, tc.userID, tc.actorID, tc.role)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Len(t, got, tc.wantCount)
		})
	}
}

func TestFareQueries_ListByRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("route with fares", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockFareReadStore(ctrl)
		store.EXPECT().RouteName(ctx, "R01").Return("Route 01", nil)
		store.EXPECT().ListByRoute(ctx, "R01").Return([]queries.FareView{{TicketTypeID: 1, Price: 7000}}, nil)

		got, err := queries.NewFareQueries(store).ListByRoute(ctx, "R01")
		require.NoError(t, err)
		assert.Equal(t, "Route 01", got.RouteName)
		assert.Len(t, got.Fares, 1)
	})

	t.Run("unknown route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockFareReadStore(ctrl)
		store.EXPECT().RouteName(ctx, "R99").Return("", infra.WrapRepoErr("route", pgx.ErrNoRows))

		_, err := queries.NewFareQueries(store).ListByRoute(ctx, "R99")
		assert.ErrorIs(t, err, queries.ErrRouteNotFound)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockFareReadStore(ctrl)
		store.EXPECT().RouteName(ctx, "R01").Return("Route 01", nil)
		store.EXPECT().ListByRoute(ctx, "R01").Return(nil, errors.New("db down"))

		_, err := queries.NewFareQueries(store).ListByRoute(ctx, "R01")
		assert.Error(t, err)
	})
}

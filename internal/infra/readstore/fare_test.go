//go:build unit

package readstore

import (
	"context"
	"testing"

	"smartbus/internal/domain/fare"
	"smartbus/internal/infra"
	sqlc "smartbus/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFareReadQueries struct {
	mock.Mock
}

func (m *MockFareReadQueries) GetTicketType(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.TicketTypes, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.TicketTypes), args.Error(1)
}

func (m *MockFareReadQueries) GetTicketTypeForShare(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.TicketTypes, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.TicketTypes), args.Error(1)
}

func (m *MockFareReadQueries) GetActivePrice(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActivePriceParams) (sqlc.GetActivePriceRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetActivePriceRow), args.Error(1)
}

func (m *MockFareReadQueries) GetActivePriceForShare(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActivePriceForShareParams) (sqlc.GetActivePriceForShareRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetActivePriceForShareRow), args.Error(1)
}

func (m *MockFareReadQueries) GetRoute(ctx context.Context, db sqlc.DBTX, id string) (sqlc.GetRouteRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetRouteRow), args.Error(1)
}

func (m *MockFareReadQueries) ListTicketTypesByRoute(ctx context.Context, db sqlc.DBTX, routeID string) ([]sqlc.ListTicketTypesByRouteRow, error) {
	args := m.Called(ctx, db, routeID)
	return args.Get(0).([]sqlc.ListTicketTypesByRouteRow), args.Error(1)
}

func TestPriceFor(t *testing.T) {
	row := sqlc.GetActivePriceRow{RouteID: "R01", RouteName: "Ben Thanh - Suoi Tien", TicketTypeID: 1, TicketName: "Single ride", Price: 7000}

	t.Run("plain read", func(t *testing.T) {
		q := new(MockFareReadQueries)
		q.On("GetActivePrice", mock.Anything, mock.Anything, sqlc.GetActivePriceParams{RouteID: "R01", TicketTypeID: 1}).Return(row, nil)

		quote, err := NewFareReadStore(q, nil).PriceFor(context.Background(), "R01", 1)
		require.NoError(t, err)
		assert.Equal(t, fare.Money(7000), quote.Price)
		assert.Equal(t, "Ben Thanh - Suoi Tien", quote.RouteName)
		q.AssertNotCalled(t, "GetActivePriceForShare", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("locking read", func(t *testing.T) {
		q := new(MockFareReadQueries)
		q.On("GetActivePriceForShare", mock.Anything, mock.Anything, sqlc.GetActivePriceForShareParams{RouteID: "R01", TicketTypeID: 1}).
			Return(sqlc.GetActivePriceForShareRow(row), nil)

		quote, err := NewLockingFareReadStore(q, nil).PriceFor(context.Background(), "R01", 1)
		require.NoError(t, err)
		assert.Equal(t, "Single ride", quote.TicketName)
		q.AssertExpectations(t)
	})

	t.Run("inactive or missing price", func(t *testing.T) {
		q := new(MockFareReadQueries)
		q.On("GetActivePrice", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.GetActivePriceRow{}, pgx.ErrNoRows)

		_, err := NewFareReadStore(q, nil).PriceFor(context.Background(), "R01", 9)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPolicyFor(t *testing.T) {
	q := new(MockFareReadQueries)
	q.On("GetTicketTypeForShare", mock.Anything, mock.Anything, int32(2)).
		Return(sqlc.TicketTypes{ID: 2, Name: "10 rides", MaxUses: pgtype.Int4{Int32: 10, Valid: true}}, nil)

	tt, err := NewLockingFareReadStore(q, nil).PolicyFor(context.Background(), 2)
	require.NoError(t, err)

	kind, err := tt.Policy()
	require.NoError(t, err)
	assert.Equal(t, fare.PolicyCounted, kind)
	assert.Nil(t, tt.DurationDays())
	q.AssertExpectations(t)
}

func TestListByRoute(t *testing.T) {
	q := new(MockFareReadQueries)
	q.On("ListTicketTypesByRoute", mock.Anything, mock.Anything, "R01").Return([]sqlc.ListTicketTypesByRouteRow{
		{TicketTypeID: 1, TicketName: "Single ride", Price: 7000, MaxUses: pgtype.Int4{Int32: 1, Valid: true}},
		{TicketTypeID: 3, TicketName: "Monthly", Price: 200000, DurationDays: pgtype.Int4{Int32: 30, Valid: true}},
	}, nil)

	views, err := NewFareReadStore(q, nil).ListByRoute(context.Background(), "R01")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "counted", views[0].PolicyKind)
	assert.Equal(t, "time_window", views[1].PolicyKind)
	assert.Equal(t, int32(30), *views[1].DurationDays)
}

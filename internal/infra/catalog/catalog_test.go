//go:build unit

package catalog_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"smartbus/internal/infra/catalog"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) UpsertRoute(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRouteParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockWriteQueries) UpsertTicketType(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertTicketTypeParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockWriteQueries) UpsertRoutePrice(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRoutePriceParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockWriteQueries) UpsertUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func loadSample(t *testing.T) *catalog.Catalog {
	t.Helper()
	f, err := os.Open("testdata/catalog.yaml")
	require.NoError(t, err)
	defer f.Close()

	c, err := catalog.Parse(f)
	require.NoError(t, err)
	return c
}

func TestParse(t *testing.T) {
	t.Run("sample catalog", func(t *testing.T) {
		c := loadSample(t)

		assert.Len(t, c.Routes, 2)
		assert.Len(t, c.TicketTypes, 4)
		assert.Len(t, c.Prices, 5)
		assert.Len(t, c.Riders, 2)
		assert.Equal(t, "Single ride", c.Prices[0].Name, "price name defaults to the ticket type name")
		assert.Equal(t, "Monthly R01", c.Prices[2].Name)
		assert.True(t, c.Prices[4].Inactive)
	})

	tests := []struct {
		name string
		yaml string
	}{
		{"empty file", ``},
		{"unknown key", "routes:\n  - id: R01\n    name: A\n    colour: red\n"},
		{"route without name", "routes:\n  - id: R01\n"},
		{"duplicate route", "routes:\n  - {id: R01, name: A}\n  - {id: R01, name: B}\n"},
		{"ticket type without policy", "ticket_types:\n  - {id: 1, name: Broken}\n"},
		{"ticket type without id", "ticket_types:\n  - {name: Single, max_uses: 1}\n"},
		{"price for unknown route", "ticket_types:\n  - {id: 1, name: Single, max_uses: 1}\nprices:\n  - {route: R09, ticket_type: 1, price: 7000}\n"},
		{"price for unknown type", "routes:\n  - {id: R01, name: A}\nprices:\n  - {route: R01, ticket_type: 9, price: 7000}\n"},
		{"negative price", "routes:\n  - {id: R01, name: A}\nticket_types:\n  - {id: 1, name: Single, max_uses: 1}\nprices:\n  - {route: R01, ticket_type: 1, price: -1}\n"},
		{"rider with bad email", "riders:\n  - {id: 1, full_name: A, email: not-an-email}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.True(t, errs.Is(err, catalog.ErrInvalidCatalog), "got %v", err)
		})
	}
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts every row", func(t *testing.T) {
		c := loadSample(t)
		q := new(MockWriteQueries)
		q.On("UpsertRoute", ctx, mock.Anything, mock.Anything).Return(nil).Times(2)
		q.On("UpsertTicketType", ctx, mock.Anything, sqlc.UpsertTicketTypeParams{
			ID:           3,
			Name:         "Monthly pass",
			DurationDays: pgtype.Int4{Int32: 30, Valid: true},
		}).Return(nil).Once()
		q.On("UpsertTicketType", ctx, mock.Anything, mock.Anything).Return(nil).Times(3)
		q.On("UpsertRoutePrice", ctx, mock.Anything, sqlc.UpsertRoutePriceParams{
			RouteID: "R02", TicketTypeID: 4, TicketName: "Staff pass", Price: 0, IsActive: false,
		}).Return(nil).Once()
		q.On("UpsertRoutePrice", ctx, mock.Anything, mock.Anything).Return(nil).Times(4)
		q.On("UpsertUser", ctx, mock.Anything, sqlc.UpsertUserParams{ID: 2, FullName: "Tran Thi B"}).Return(nil).Once()
		q.On("UpsertUser", ctx, mock.Anything, mock.Anything).Return(nil).Once()

		s, err := catalog.NewImporter(q).Import(ctx, nil, c)

		require.NoError(t, err)
		assert.Equal(t, catalog.Summary{Routes: 2, TicketTypes: 4, Prices: 5, Riders: 2}, s)
		q.AssertExpectations(t)
	})

	t.Run("stops at the first failing row", func(t *testing.T) {
		c := loadSample(t)
		q := new(MockWriteQueries)
		q.On("UpsertRoute", ctx, mock.Anything, mock.Anything).Return(nil)
		q.On("UpsertTicketType", ctx, mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23514", Message: "ticket_types_policy_chk"}).Once()

		s, err := catalog.NewImporter(q).Import(ctx, nil, c)

		require.Error(t, err)
		assert.Equal(t, 2, s.Routes)
		assert.Zero(t, s.TicketTypes)
		q.AssertNotCalled(t, "UpsertRoutePrice", mock.Anything, mock.Anything, mock.Anything)
	})
}

//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"smartbus/internal/infra"
	sqlc "smartbus/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTicketWriteQueries struct {
	mock.Mock
}

func (m *MockTicketWriteQueries) CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockTicketWriteQueries) GetTicketByTokenForUpdate(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Tickets, error) {
	args := m.Called(ctx, db, token)
	return args.Get(0).(sqlc.Tickets), args.Error(1)
}

func (m *MockTicketWriteQueries) UpdateTicketRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTicketRedemptionParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTicketWriteQueries) CreateTicketUsageLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketUsageLogParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func countedRow(token string, remaining int32) sqlc.Tickets {
	return sqlc.Tickets{
		ID:            uuid.New(),
		Token:         token,
		UserID:        1,
		RouteID:       "R01",
		TicketTypeID:  2,
		PolicyKind:    "counted",
		IssuedAt:      pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
		RemainingUses: pgtype.Int4{Int32: remaining, Valid: true},
		IsActive:      true,
		Price:         60000,
	}
}

func TestFindByTokenForUpdate(t *testing.T) {
	tests := []struct {
		name     string
		row      sqlc.Tickets
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "found", row: countedRow("tok-1", 3)},
		{name: "unknown token", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockTicketWriteQueries)
			q.On("GetTicketByTokenForUpdate", mock.Anything, mock.Anything, "tok-1").Return(tt.row, tt.mockErr)

			repo := NewTicketRepository(q, nil)
			got, err := repo.FindByTokenForUpdate(context.Background(), "tok-1")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.row.ID, got.ID())
				require.NotNil(t, got.RemainingUses())
				assert.Equal(t, int32(3), *got.RemainingUses())
			}
			q.AssertExpectations(t)
		})
	}
}

func TestSaveRedemption(t *testing.T) {
	row := countedRow("tok-1", 3)
	previous := int32(3)

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "counter updated", affected: 1},
		{name: "lost compare-and-swap", affected: 0, wantKind: infra.KindConflict},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockTicketWriteQueries)
			q.On("GetTicketByTokenForUpdate", mock.Anything, mock.Anything, "tok-1").Return(row, nil)
			q.On("UpdateTicketRedemption", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateTicketRedemptionParams) bool {
				return p.ID == row.ID && p.ExpectedRemaining.Int32 == previous && p.ExpectedRemaining.Valid
			})).Return(tt.affected, tt.mockErr)

			repo := NewTicketRepository(q, nil)
			tk, err := repo.FindByTokenForUpdate(context.Background(), "tok-1")
			require.NoError(t, err)

			err = repo.SaveRedemption(context.Background(), tk, &previous)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}

	t.Run("stale redemption is recognisable", func(t *testing.T) {
		q := new(MockTicketWriteQueries)
		q.On("GetTicketByTokenForUpdate", mock.Anything, mock.Anything, "tok-1").Return(row, nil)
		q.On("UpdateTicketRedemption", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		repo := NewTicketRepository(q, nil)
		tk, err := repo.FindByTokenForUpdate(context.Background(), "tok-1")
		require.NoError(t, err)

		err = repo.SaveRedemption(context.Background(), tk, &previous)
		assert.ErrorIs(t, err, ErrStaleRedemption)
	})
}

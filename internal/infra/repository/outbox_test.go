//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartbus/internal/domain/outbox"
	"smartbus/internal/infra"
	"smartbus/internal/infra/repository"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/pgconv"
	repositorymock "smartbus/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxClaim(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("stale processing rows are eligible after the lease", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockOutboxWriteQueries(ctrl)

		queries.EXPECT().
			ClaimOutboxEvents(gomock.Any(), gomock.Any(), sqlc.ClaimOutboxEventsParams{
				StaleBefore: pgconv.TimeToPgtype(now.Add(-time.Minute)),
				BatchLimit:  25,
				ClaimedAt:   pgconv.TimeToPgtype(now),
			}).
			Return([]sqlc.ClaimOutboxEventsRow{{
				ID:           id,
				AggregateKey: "order:42",
				EventType:    string(outbox.TypeOrderPaid),
				Payload:      []byte(`{"order_code":42}`),
				CreatedAt:    pgconv.TimeToPgtype(now.Add(-time.Hour)),
			}}, nil)

		events, err := repository.NewOutboxRepository(queries, nil).Claim(context.Background(), 25, now, time.Minute)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.Equal(t, outbox.TypeOrderPaid, events[0].Type)
		assert.Equal(t, "order:42", events[0].AggregateKey)
		assert.Equal(t, now.Add(-time.Hour), events[0].CreatedAt)
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		queries.EXPECT().ClaimOutboxEvents(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		_, err := repository.NewOutboxRepository(queries, nil).Claim(context.Background(), 25, now, time.Minute)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOutboxFinalizeSkipsEmptyBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	repo := repository.NewOutboxRepository(queries, nil)

	require.NoError(t, repo.MarkPublished(context.Background(), nil, time.Now()))
	require.NoError(t, repo.Release(context.Background(), nil))
}

//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/payment"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/commands"
	commandsmock "smartbus/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func twoItemCheckout() commands.CheckoutInput {
	return commands.CheckoutInput{
		UserID: riderID,
		Items: []commands.CheckoutItem{
			{RouteID: "R01", TicketTypeID: 1},
			{RouteID: "R02", TicketTypeID: 1},
		},
	}
}

func (f *fixture) checkoutCommands(replay commands.CheckoutReplayStore) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(f.store, f.store, f.store, f.gateway, replay, f.clock, f.cfg)
}

func TestCheckoutCommands_RequestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("prices every item and persists a pending order before the gateway call", func(t *testing.T) {
		f := newFixture(t)
		cmd := f.checkoutCommands(nil)

		f.gateway.EXPECT().OpenCheckout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s commands.CheckoutSession) (string, error) {
				// durable before the rider can pay
				order, ok := f.store.Order(s.OrderCode)
				require.True(t, ok)
				assert.Equal(t, payment.StatusPending, order.Status())

				assert.Equal(t, fare.Money(25), s.Amount)
				assert.Equal(t, "Nguyen Van A", s.BuyerName)
				assert.Equal(t, "rider@example.com", s.BuyerEmail)
				assert.Equal(t, "SmartBus "+s.OrderCode.String(), s.Description)
				require.Len(t, s.Items, 2)
				assert.Equal(t, fare.Money(10), s.Items[0].Price)
				assert.Equal(t, fare.Money(15), s.Items[1].Price)
				return "https://pay.example/session", nil
			})

		res, err := cmd.RequestCheckout(ctx, twoItemCheckout())
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/session", res.CheckoutURL)
		assert.False(t, res.IsReplayed)

		order, ok := f.store.Order(res.OrderCode)
		require.True(t, ok)
		assert.Equal(t, fare.Money(25), order.Amount())
		assert.Equal(t, "https://pay.example/session", order.CheckoutURL())

		items := f.store.Items(res.OrderCode)
		require.Len(t, items, 2)
		assert.Equal(t, int32(1), items[0].LineNo)
		assert.Equal(t, "R01", items[0].RouteID)
		assert.Equal(t, int32(2), items[1].LineNo)
		assert.Equal(t, "R02", items[1].RouteID)
		assert.Zero(t, f.store.TicketCount())
	})

	t.Run("missing price fails the whole request", func(t *testing.T) {
		f := newFixture(t)
		cmd := f.checkoutCommands(nil)

		in := twoItemCheckout()
		in.Items = append(in.Items, commands.CheckoutItem{RouteID: "R02", TicketTypeID: 3})

		res, err := cmd.RequestCheckout(ctx, in)
		require.Truef(t, errs.Is(err, commands.ErrLineItemPriceUnavailable), "unexpected error: %v", err)
		assert.Nil(t, res)
		assert.Empty(t, f.store.Orders())
	})

	t.Run("gateway failure leaves the pending order", func(t *testing.T) {
		f := newFixture(t)
		cmd := f.checkoutCommands(nil)

		f.gateway.EXPECT().OpenCheckout(gomock.Any(), gomock.Any()).
			Return("", errs.Mark(errors.New("connection refused"), errs.ErrUpstreamUnavailable))

		res, err := cmd.RequestCheckout(ctx, twoItemCheckout())
		require.Truef(t, errs.Is(err, commands.ErrCheckoutUnavailable), "unexpected error: %v", err)
		assert.Nil(t, res)

		orders := f.store.Orders()
		require.Len(t, orders, 1)
		assert.Equal(t, payment.StatusPending, orders[0].Status())
	})

	cases := []struct {
		name  string
		in    commands.CheckoutInput
		errIs error
	}{
		{name: "no items", in: commands.CheckoutInput{UserID: riderID}, errIs: commands.ErrInvalidCheckout},
		{name: "no user", in: commands.CheckoutInput{Items: twoItemCheckout().Items}, errIs: commands.ErrInvalidCheckout},
		{
			name:  "blank route",
			in:    commands.CheckoutInput{UserID: riderID, Items: []commands.CheckoutItem{{RouteID: " ", TicketTypeID: 1}}},
			errIs: commands.ErrInvalidCheckout,
		},
		{
			name:  "unknown user",
			in:    commands.CheckoutInput{UserID: 404, Items: twoItemCheckout().Items},
			errIs: commands.ErrUserNotFound,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			cmd := f.checkoutCommands(nil)

			_, err := cmd.RequestCheckout(ctx, c.in)
			require.Truef(t, errs.Is(err, c.errIs), "unexpected error: %v", err)
			assert.Empty(t, f.store.Orders())
		})
	}

	t.Run("too many items", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Fulfilment.MaxItemsPerOrder = 1
		cmd := f.checkoutCommands(nil)

		_, err := cmd.RequestCheckout(ctx, twoItemCheckout())
		require.Truef(t, errs.Is(err, commands.ErrInvalidCheckout), "unexpected error: %v", err)
	})
}

func TestCheckoutCommands_Replay(t *testing.T) {
	ctx := context.Background()

	newReplay := func(t *testing.T) *commandsmock.MockCheckoutReplayStore {
		return commandsmock.NewMockCheckoutReplayStore(gomock.NewController(t))
	}
	withKey := func() commands.CheckoutInput {
		in := twoItemCheckout()
		in.IdempotencyKey = "idem-1"
		return in
	}

	t.Run("first request reserves then completes", func(t *testing.T) {
		f := newFixture(t)
		replay := newReplay(t)
		cmd := f.checkoutCommands(replay)

		var hash string
		gomock.InOrder(
			replay.EXPECT().Get(gomock.Any(), "checkout:7:idem-1").Return(nil, nil),
			replay.EXPECT().Reserve(gomock.Any(), "checkout:7:idem-1", gomock.Any(), f.cfg.Redis.LockTTL).
				DoAndReturn(func(_ context.Context, _ string, rec commands.CheckoutRecord, _ time.Duration) (bool, error) {
					hash = rec.RequestHash
					return true, nil
				}),
			f.gateway.EXPECT().OpenCheckout(gomock.Any(), gomock.Any()).Return("https://pay.example/1", nil),
			replay.EXPECT().Complete(gomock.Any(), "checkout:7:idem-1", gomock.Any(), f.cfg.Redis.IdempotencyTTL).
				DoAndReturn(func(_ context.Context, _ string, rec commands.CheckoutRecord, _ time.Duration) error {
					assert.True(t, rec.Completed)
					assert.Equal(t, hash, rec.RequestHash)
					assert.Equal(t, "https://pay.example/1", rec.CheckoutURL)
					return nil
				}),
		)

		res, err := cmd.RequestCheckout(ctx, withKey())
		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
		assert.NotEmpty(t, hash)
	})

	t.Run("completed record is replayed without a new order", func(t *testing.T) {
		f := newFixture(t)
		replay := newReplay(t)
		cmd := f.checkoutCommands(replay)

		var stored commands.CheckoutRecord
		replay.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		replay.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.gateway.EXPECT().OpenCheckout(gomock.Any(), gomock.Any()).Return("https://pay.example/1", nil)
		replay.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, rec commands.CheckoutRecord, _ time.Duration) error {
				stored = rec
				return nil
			})

		first, err := cmd.RequestCheckout(ctx, withKey())
		require.NoError(t, err)

		replay.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&stored, nil)
		second, err := cmd.RequestCheckout(ctx, withKey())
		require.NoError(t, err)

		assert.True(t, second.IsReplayed)
		assert.Equal(t, first.OrderCode, second.OrderCode)
		assert.Equal(t, first.CheckoutURL, second.CheckoutURL)
		assert.Len(t, f.store.Orders(), 1)
	})

	t.Run("same key with different items is rejected", func(t *testing.T) {
		f := newFixture(t)
		replay := newReplay(t)
		cmd := f.checkoutCommands(replay)

		replay.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutRecord{RequestHash: "other", Completed: true}, nil)

		_, err := cmd.RequestCheckout(ctx, withKey())
		assert.Truef(t, errs.Is(err, errs.ErrIdempotencyKeyReused), "unexpected error: %v", err)
	})

	t.Run("in-flight key is reported as in progress", func(t *testing.T) {
		f := newFixture(t)
		replay := newReplay(t)
		cmd := f.checkoutCommands(replay)

		replay.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		replay.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := cmd.RequestCheckout(ctx, withKey())
		assert.Truef(t, errs.Is(err, errs.ErrIdempotencyInProgress), "unexpected error: %v", err)
		assert.Empty(t, f.store.Orders())
	})

	t.Run("failed checkout releases the key", func(t *testing.T) {
		f := newFixture(t)
		replay := newReplay(t)
		cmd := f.checkoutCommands(replay)

		replay.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		replay.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.gateway.EXPECT().OpenCheckout(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
		replay.EXPECT().Release(gomock.Any(), "checkout:7:idem-1").Return(nil)

		_, err := cmd.RequestCheckout(ctx, withKey())
		assert.Truef(t, errs.Is(err, commands.ErrCheckoutUnavailable), "unexpected error: %v", err)
	})

	t.Run("store outage serves the request without replay", func(t *testing.T) {
		f := newFixture(t)
		replay := newReplay(t)
		cmd := f.checkoutCommands(replay)

		replay.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
		replay.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
		f.gateway.EXPECT().OpenCheckout(gomock.Any(), gomock.Any()).Return("https://pay.example/2", nil)

		res, err := cmd.RequestCheckout(ctx, withKey())
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/2", res.CheckoutURL)
	})
}

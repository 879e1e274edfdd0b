//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/outbox"
	"smartbus/internal/domain/payment"
	"smartbus/internal/domain/ticket"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// openOrder runs a two item checkout (10 + 15) and returns its order code.
func (f *fixture) openOrder(t *testing.T) payment.OrderCode {
	t.Helper()
	f.gateway.EXPECT().OpenCheckout(gomock.Any(), gomock.Any()).Return("https://pay.example/s", nil)
	res, err := f.checkoutCommands(nil).RequestCheckout(context.Background(), twoItemCheckout())
	require.NoError(t, err)
	return res.OrderCode
}

func TestSettlementCommands_HandleSettlement(t *testing.T) {
	ctx := context.Background()

	t.Run("paid order issues one ticket per line in order", func(t *testing.T) {
		f := newFixture(t)
		code := f.openOrder(t)
		cmd := commands.NewSettlementCommands(f.store, f.gateway, f.clock)

		f.gateway.EXPECT().GetSettlementStatus(gomock.Any(), code).Return(commands.SettlementPaid, nil)

		res, err := cmd.HandleSettlement(ctx, code)
		require.NoError(t, err)
		assert.False(t, res.AlreadySettled)
		require.Len(t, res.Confirmations, 2)
		assert.Equal(t, "Route 01", res.Confirmations[0].RouteName)
		assert.Equal(t, "Route 02", res.Confirmations[1].RouteName)
		assert.Equal(t, "Single ride", res.Confirmations[0].TicketTypeName)

		first, ok := f.store.Ticket(res.Confirmations[0].TicketToken)
		require.True(t, ok)
		assert.Equal(t, fare.Money(10), first.Price())
		assert.Equal(t, riderID, first.UserID())
		second, ok := f.store.Ticket(res.Confirmations[1].TicketToken)
		require.True(t, ok)
		assert.Equal(t, fare.Money(15), second.Price())

		order, _ := f.store.Order(code)
		assert.True(t, order.IsPaid())
		assert.Equal(t, fixedNow, *order.PaidAt())

		assert.Len(t, f.store.EventsOfType(outbox.TypeOrderPaid), 1)
		assert.Len(t, f.store.EventsOfType(outbox.TypeTicketIssued), 2)
	})

	t.Run("second settlement replays without issuing again", func(t *testing.T) {
		f := newFixture(t)
		code := f.openOrder(t)
		cmd := commands.NewSettlementCommands(f.store, f.gateway, f.clock)

		// the gateway is asked once; the replay never reaches it
		f.gateway.EXPECT().GetSettlementStatus(gomock.Any(), code).Return(commands.SettlementPaid, nil).Times(1)

		first, err := cmd.HandleSettlement(ctx, code)
		require.NoError(t, err)
		second, err := cmd.HandleSettlement(ctx, code)
		require.NoError(t, err)

		assert.True(t, second.AlreadySettled)
		assert.Equal(t, first.Confirmations, second.Confirmations)
		assert.Equal(t, 2, f.store.TicketCount())
		assert.Len(t, f.store.EventsOfType(outbox.TypeTicketIssued), 2)
	})

	t.Run("concurrent settlements issue exactly one ticket per line", func(t *testing.T) {
		f := newFixture(t)
		code := f.openOrder(t)
		cmd := commands.NewSettlementCommands(f.store, f.gateway, f.clock)

		f.gateway.EXPECT().GetSettlementStatus(gomock.Any(), code).Return(commands.SettlementPaid, nil).AnyTimes()

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := cmd.HandleSettlement(ctx, code)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 2, f.store.TicketCount())
		assert.Len(t, f.store.EventsOfType(outbox.TypeOrderPaid), 1)
		for _, it := range f.store.Items(code) {
			assert.True(t, it.IsFulfilled())
		}
	})

	t.Run("unknown order code", func(t *testing.T) {
		f := newFixture(t)
		cmd := commands.NewSettlementCommands(f.store, f.gateway, f.clock)

		res, err := cmd.HandleSettlement(ctx, payment.OrderCode(123))
		require.Truef(t, errs.Is(err, commands.ErrOrderNotFound), "unexpected error: %v", err)
		assert.Nil(t, res)
		assert.Zero(t, f.store.TicketCount())
	})

	for _, status := range []commands.SettlementStatus{commands.SettlementPending, commands.SettlementCancelled, commands.SettlementExpired} {
		t.Run("gateway status "+string(status)+" is not confirmed", func(t *testing.T) {
			f := newFixture(t)
			code := f.openOrder(t)
			cmd := commands.NewSettlementCommands(f.store, f.gateway, f.clock)

			f.gateway.EXPECT().GetSettlementStatus(gomock.Any(), code).Return(status, nil)

			_, err := cmd.HandleSettlement(ctx, code)
			require.Truef(t, errs.Is(err, commands.ErrSettlementNotConfirmed), "unexpected error: %v", err)

			order, _ := f.store.Order(code)
			assert.Equal(t, payment.StatusPending, order.Status())
			assert.Zero(t, f.store.TicketCount())
		})
	}

	t.Run("gateway error is not confirmed", func(t *testing.T) {
		f := newFixture(t)
		code := f.openOrder(t)
		cmd := commands.NewSettlementCommands(f.store, f.gateway, f.clock)

		f.gateway.EXPECT().GetSettlementStatus(gomock.Any(), code).
			Return(commands.SettlementStatus(""), errs.Mark(errors.New("timeout"), errs.ErrUpstreamUnavailable))

		_, err := cmd.HandleSettlement(ctx, code)
		require.Truef(t, errs.Is(err, commands.ErrSettlementNotConfirmed), "unexpected error: %v", err)
		order, _ := f.store.Order(code)
		assert.False(t, order.IsPaid())
	})

	t.Run("price drift fails the line and needs reconciliation", func(t *testing.T) {
		f := newFixture(t)
		code := f.openOrder(t)
		cmd := commands.NewSettlementCommands(f.store, f.gateway, f.clock)

		f.store.SetPrice("R02", 1, fare.Money(16))
		f.gateway.EXPECT().GetSettlementStatus(gomock.Any(), code).Return(commands.SettlementPaid, nil)

		res, err := cmd.HandleSettlement(ctx, code)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrFulfilmentIncomplete))
		assert.True(t, errs.Is(err, commands.ErrNeedsReconciliation))
		assert.False(t, errs.Is(err, commands.ErrFulfilmentRetryable))

		require.NotNil(t, res)
		require.Len(t, res.Confirmations, 1)
		assert.Equal(t, int32(1), res.Confirmations[0].LineNo)

		items := f.store.Items(code)
		assert.True(t, items[0].IsFulfilled())
		assert.False(t, items[1].IsFulfilled())
		require.NotNil(t, items[1].LastError)

		failed := f.store.EventsOfType(outbox.TypeFulfilmentFailed)
		require.Len(t, failed, 1)

		order, _ := f.store.Order(code)
		assert.True(t, order.IsPaid())
	})

	t.Run("transient failure is retryable and a retry completes the order", func(t *testing.T) {
		f := newFixture(t)
		code := f.openOrder(t)
		cmd := commands.NewSettlementCommands(f.store, f.gateway, f.clock)

		calls := 0
		f.store.BeforeCreateTicket = func(*ticket.Ticket) error {
			calls++
			if calls == 2 {
				return errors.New("connection reset")
			}
			return nil
		}
		f.gateway.EXPECT().GetSettlementStatus(gomock.Any(), code).Return(commands.SettlementPaid, nil).Times(1)

		_, err := cmd.HandleSettlement(ctx, code)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrFulfilmentRetryable))
		assert.Equal(t, 1, f.store.TicketCount())

		// order is already PAID, so the retry does not ask the gateway again
		res, err := cmd.HandleSettlement(ctx, code)
		require.NoError(t, err)
		require.Len(t, res.Confirmations, 2)
		assert.Equal(t, 2, f.store.TicketCount())
		for _, it := range f.store.Items(code) {
			assert.True(t, it.IsFulfilled())
		}
	})
}

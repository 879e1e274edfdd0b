//go:build unit

package payment_test

import (
	"testing"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func quotes() []fare.Quote {
	return []fare.Quote{
		{RouteID: "R01", RouteName: "Ben Thanh - Suoi Tien", TicketTypeID: 1, TicketName: "Single", Price: 10},
		{RouteID: "R02", RouteName: "Cho Lon - Mien Tay", TicketTypeID: 2, TicketName: "Monthly", Price: 15},
	}
}

func TestOpen(t *testing.T) {
	o, err := payment.Open(123, 7, quotes(), 20, now)
	require.NoError(t, err)

	assert.Equal(t, payment.StatusPending, o.Status())
	assert.Equal(t, fare.Money(25), o.Amount())
	assert.Equal(t, int64(7), o.Snapshot().UserID)
	require.Len(t, o.Snapshot().Items, 2)
	assert.Equal(t, int32(1), o.Snapshot().Items[0].LineNo)
	assert.Equal(t, "R01", o.Snapshot().Items[0].RouteID)
	assert.Equal(t, int32(2), o.Snapshot().Items[1].LineNo)
	assert.Equal(t, int32(2), o.Snapshot().Items[1].TicketTypeID)
	assert.Nil(t, o.PaidAt())

	t.Run("rejects", func(t *testing.T) {
		_, err := payment.Open(123, 7, nil, 20, now)
		assert.ErrorIs(t, err, payment.ErrEmptyPurchase)

		_, err = payment.Open(123, 7, quotes(), 1, now)
		assert.ErrorIs(t, err, payment.ErrTooManyItems)

		_, err = payment.Open(0, 7, quotes(), 20, now)
		assert.ErrorIs(t, err, payment.ErrInvalidPurchase)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	o, err := payment.Open(123, 7, quotes(), 0, now)
	require.NoError(t, err)

	assert.True(t, o.MarkPaid(now.Add(time.Minute)))
	assert.True(t, o.IsPaid())
	require.NotNil(t, o.PaidAt())

	paidAt := *o.PaidAt()
	assert.False(t, o.MarkPaid(now.Add(time.Hour)), "second transition must be a no-op")
	assert.Equal(t, paidAt, *o.PaidAt())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	o, err := payment.Open(123, 7, quotes(), 0, now)
	require.NoError(t, err)

	b, err := o.Snapshot().Marshal()
	require.NoError(t, err)
	got, err := payment.UnmarshalSnapshot(b)
	require.NoError(t, err)
	assert.Equal(t, o.Snapshot(), got)

	_, err = payment.UnmarshalSnapshot([]byte("{"))
	assert.ErrorIs(t, err, payment.ErrInvalidPurchase)
}

func TestItemsFromSnapshot(t *testing.T) {
	o, err := payment.Open(123, 7, quotes(), 0, now)
	require.NoError(t, err)

	items := payment.ItemsFromSnapshot(o.Code(), o.Snapshot())
	require.Len(t, items, 2)
	for i, it := range items {
		assert.Equal(t, payment.OrderCode(123), it.OrderCode)
		assert.Equal(t, int32(i+1), it.LineNo)
		assert.False(t, it.IsFulfilled())
	}
	assert.Equal(t, fare.Money(15), items[1].QuotedPrice)
}

func TestOrderCode(t *testing.T) {
	seen := map[payment.OrderCode]bool{}
	for i := 0; i < 200; i++ {
		c, err := payment.NewOrderCode(now)
		require.NoError(t, err)
		assert.Equal(t, now.Unix(), c.Int64()/100_000)
		assert.Less(t, c.Int64(), int64(1)<<53)
		seen[c] = true
	}
	// 200 draws out of 100k: collisions are possible but a handful at most
	assert.Greater(t, len(seen), 190)

	c, err := payment.ParseOrderCode("174081600012345")
	require.NoError(t, err)
	assert.Equal(t, "174081600012345", c.String())

	for _, bad := range []string{"", "abc", "-5", "0"} {
		_, err := payment.ParseOrderCode(bad)
		assert.ErrorIs(t, err, payment.ErrInvalidOrderCode, bad)
	}
}

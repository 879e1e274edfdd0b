package payment

import (
	"encoding/json"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/pkg/errs"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

var (
	ErrEmptyPurchase   = errs.New("purchase must contain at least one item")
	ErrTooManyItems    = errs.New("purchase exceeds the item limit")
	ErrInvalidPurchase = errs.New("invalid purchase")
)

// LineItem is one ticket to issue once the order settles.
type LineItem struct {
	LineNo       int32      `json:"lineNo"`
	RouteID      string     `json:"routeId"`
	RouteName    string     `json:"routeName"`
	TicketTypeID int32      `json:"ticketTypeId"`
	TicketName   string     `json:"ticketName"`
	QuotedPrice  fare.Money `json:"quotedPrice"`
}

// PurchaseSnapshot is the serialized checkout request kept on the order.
type PurchaseSnapshot struct {
	UserID int64      `json:"userId"`
	Items  []LineItem `json:"items"`
}

func (s PurchaseSnapshot) Total() fare.Money {
	var total fare.Money
	for _, it := range s.Items {
		total += it.QuotedPrice
	}
	return total
}

func (s PurchaseSnapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func UnmarshalSnapshot(b []byte) (PurchaseSnapshot, error) {
	var s PurchaseSnapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return PurchaseSnapshot{}, errs.Mark(errs.Wrap(err, "decode purchase snapshot"), ErrInvalidPurchase)
	}
	return s, nil
}

type Order struct {
	code        OrderCode
	status      Status
	snapshot    PurchaseSnapshot
	amount      fare.Money
	checkoutURL string
	createdAt   time.Time
	paidAt      *time.Time
}

// Open builds a PENDING order from priced quotes. Line numbers follow
// the request order starting at 1.
func Open(code OrderCode, userID int64, quotes []fare.Quote, maxItems int, now time.Time) (*Order, error) {
	if code <= 0 || userID <= 0 {
		return nil, ErrInvalidPurchase
	}
	if len(quotes) == 0 {
		return nil, ErrEmptyPurchase
	}
	if maxItems > 0 && len(quotes) > maxItems {
		return nil, ErrTooManyItems
	}

	items := make([]LineItem, len(quotes))
	for i, q := range quotes {
		items[i] = LineItem{
			LineNo:       int32(i + 1),
			RouteID:      q.RouteID,
			RouteName:    q.RouteName,
			TicketTypeID: q.TicketTypeID,
			TicketName:   q.TicketName,
			QuotedPrice:  q.Price,
		}
	}
	snap := PurchaseSnapshot{UserID: userID, Items: items}

	return &Order{
		code:      code,
		status:    StatusPending,
		snapshot:  snap,
		amount:    snap.Total(),
		createdAt: now,
	}, nil
}

func ReconstructOrder(code OrderCode, status Status, snapshot PurchaseSnapshot, amount fare.Money, checkoutURL string, createdAt time.Time, paidAt *time.Time) *Order {
	return &Order{
		code:        code,
		status:      status,
		snapshot:    snapshot,
		amount:      amount,
		checkoutURL: checkoutURL,
		createdAt:   createdAt,
		paidAt:      paidAt,
	}
}

func (o *Order) Code() OrderCode            { return o.code }
func (o *Order) Status() Status             { return o.status }
func (o *Order) Snapshot() PurchaseSnapshot { return o.snapshot }
func (o *Order) Amount() fare.Money         { return o.amount }
func (o *Order) CheckoutURL() string        { return o.checkoutURL }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) PaidAt() *time.Time         { return o.paidAt }
func (o *Order) IsPaid() bool               { return o.status == StatusPaid }

// MarkPaid reports whether this call performed the transition.
func (o *Order) MarkPaid(now time.Time) bool {
	if o.status == StatusPaid {
		return false
	}
	o.status = StatusPaid
	o.paidAt = &now
	return true
}

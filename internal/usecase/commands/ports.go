package commands

import (
	"context"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/payment"
	"smartbus/internal/domain/user"
)

// Collaborators the use cases depend on. Adapters live under internal/infra.

type FareCatalog interface {
	PriceFor(ctx context.Context, routeID string, ticketTypeID int32) (fare.Quote, error)
	PolicyFor(ctx context.Context, ticketTypeID int32) (*fare.TicketType, error)
}

type UserDirectory interface {
	RiderByID(ctx context.Context, id int64) (*user.Rider, error)
}

type SettlementStatus string

const (
	SettlementPaid      SettlementStatus = "PAID"
	SettlementPending   SettlementStatus = "PENDING"
	SettlementCancelled SettlementStatus = "CANCELLED"
	SettlementExpired   SettlementStatus = "EXPIRED"
)

type CheckoutLine struct {
	Name     string
	Quantity int
	Price    fare.Money
}

// CheckoutSession is what the gateway needs to host a payment page.
type CheckoutSession struct {
	OrderCode   payment.OrderCode
	Amount      fare.Money
	Description string
	BuyerName   string
	BuyerEmail  string
	Items       []CheckoutLine
}

type PaymentGateway interface {
	// OpenCheckout returns the hosted checkout URL.
	OpenCheckout(ctx context.Context, s CheckoutSession) (string, error)
	GetSettlementStatus(ctx context.Context, code payment.OrderCode) (SettlementStatus, error)
}

// CheckoutRecord is what a replay store keeps per idempotency key.
type CheckoutRecord struct {
	RequestHash string            `json:"requestHash"`
	Completed   bool              `json:"completed"`
	CheckoutURL string            `json:"checkoutUrl,omitempty"`
	OrderCode   payment.OrderCode `json:"orderCode,omitempty"`
}

// CheckoutReplayStore is a keyed store with expiry used to replay checkout
// responses for retried requests.
type CheckoutReplayStore interface {
	Get(ctx context.Context, key string) (*CheckoutRecord, error)
	// Reserve stores an in-progress record unless the key exists.
	Reserve(ctx context.Context, key string, rec CheckoutRecord, ttl time.Duration) (bool, error)
	Complete(ctx context.Context, key string, rec CheckoutRecord, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

package shared

import (
	"context"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/outbox"
	"smartbus/internal/domain/payment"
	"smartbus/internal/domain/ticket"
	"smartbus/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Tickets() TicketRepository
	PaymentOrders() PaymentOrderRepository
	Outbox() OutboxRepository
	Reads() CommandReads
}

// CommandReads inside a transaction take share locks on the catalog rows
// they return, so a concurrent price edit waits for the issuing transaction.
type CommandReads interface {
	PriceFor(ctx context.Context, routeID string, ticketTypeID int32) (fare.Quote, error)
	PolicyFor(ctx context.Context, ticketTypeID int32) (*fare.TicketType, error)
	RiderByID(ctx context.Context, id int64) (*user.Rider, error)
	OrderByCode(ctx context.Context, code payment.OrderCode) (*payment.Order, error)
	OrderItems(ctx context.Context, code payment.OrderCode) ([]payment.Item, error)
	Confirmations(ctx context.Context, code payment.OrderCode) ([]payment.Confirmation, error)
}

type TicketRepository interface {
	Create(ctx context.Context, t *ticket.Ticket) error
	FindByTokenForUpdate(ctx context.Context, token string) (*ticket.Ticket, error)
	// SaveRedemption only applies when remaining_uses still equals previousRemaining.
	SaveRedemption(ctx context.Context, t *ticket.Ticket, previousRemaining *int32) error
	AppendUsageLog(ctx context.Context, entry ticket.UsageLog) error
}

type PaymentOrderRepository interface {
	Open(ctx context.Context, o *payment.Order) error
	AttachCheckoutURL(ctx context.Context, code payment.OrderCode, url string) error
	MarkPaid(ctx context.Context, code payment.OrderCode, paidAt time.Time) (bool, error)
	ItemForUpdate(ctx context.Context, code payment.OrderCode, lineNo int32) (*payment.Item, error)
	MarkItemFulfilled(ctx context.Context, code payment.OrderCode, lineNo int32, ticketID uuid.UUID) (bool, error)
	RecordItemError(ctx context.Context, code payment.OrderCode, lineNo int32, reason string) error
}

type OutboxRepository interface {
	Append(ctx context.Context, ev outbox.Event) error
	// Claim re-claims processing rows claimed before now-lease.
	Claim(ctx context.Context, limit int32, now time.Time, lease time.Duration) ([]outbox.Event, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
	Release(ctx context.Context, ids []uuid.UUID) error
}

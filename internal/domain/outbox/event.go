package outbox

import (
	"encoding/json"
	"strconv"
	"time"

	"smartbus/internal/pkg/errs"

	"github.com/google/uuid"
)

type Type string

const (
	TypeOrderPaid        Type = "order.paid"
	TypeTicketIssued     Type = "ticket.issued"
	TypeFulfilmentFailed Type = "fulfilment.failed"
)

const producer = "smartbus-fare"

// Event is a pending integration event stored next to the state change it
// describes and relayed to the broker afterwards.
type Event struct {
	ID           uuid.UUID
	AggregateKey string
	Type         Type
	Payload      json.RawMessage
	CreatedAt    time.Time
}

type OrderPaid struct {
	OrderCode int64     `json:"orderCode"`
	UserID    int64     `json:"userId"`
	Amount    int64     `json:"amount"`
	PaidAt    time.Time `json:"paidAt"`
}

type TicketIssued struct {
	OrderCode    int64     `json:"orderCode"`
	LineNo       int32     `json:"lineNo"`
	TicketID     uuid.UUID `json:"ticketId"`
	UserID       int64     `json:"userId"`
	RouteID      string    `json:"routeId"`
	TicketTypeID int32     `json:"ticketTypeId"`
	Price        int64     `json:"price"`
	IssuedAt     time.Time `json:"issuedAt"`
}

type FulfilmentFailed struct {
	OrderCode int64  `json:"orderCode"`
	LineNo    int32  `json:"lineNo"`
	Reason    string `json:"reason"`
	Retryable bool   `json:"retryable"`
}

func newEvent(key string, typ Type, payload any, now time.Time) (Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, errs.Wrapf(err, "encode %s payload", typ)
	}
	return Event{
		ID:           uuid.New(),
		AggregateKey: key,
		Type:         typ,
		Payload:      b,
		CreatedAt:    now,
	}, nil
}

func NewOrderPaid(p OrderPaid, now time.Time) (Event, error) {
	return newEvent(orderKey(p.OrderCode), TypeOrderPaid, p, now)
}

func NewTicketIssued(p TicketIssued, now time.Time) (Event, error) {
	return newEvent(orderKey(p.OrderCode), TypeTicketIssued, p, now)
}

func NewFulfilmentFailed(p FulfilmentFailed, now time.Time) (Event, error) {
	return newEvent(orderKey(p.OrderCode), TypeFulfilmentFailed, p, now)
}

func orderKey(code int64) string {
	return "order:" + strconv.FormatInt(code, 10)
}

// Message is the envelope written to the broker.
type Message struct {
	ID         uuid.UUID       `json:"id"`
	Type       Type            `json:"type"`
	Key        string          `json:"key"`
	Producer   string          `json:"producer"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

func (e Event) Envelope() Message {
	return Message{
		ID:         e.ID,
		Type:       e.Type,
		Key:        e.AggregateKey,
		Producer:   producer,
		OccurredAt: e.CreatedAt,
		Payload:    e.Payload,
	}
}

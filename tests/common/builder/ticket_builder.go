//go:build unit || e2e

package builder

import (
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/ticket"
	"smartbus/internal/pkg/ptr"

	"github.com/google/uuid"
)

type TicketTypeBuilder struct {
	ID           int32
	Name         string
	DurationDays *int32
	MaxUses      *int32
	IsUnlimited  bool
}

// NewTicketTypeBuilder defaults to a single-ride type.
func NewTicketTypeBuilder() *TicketTypeBuilder {
	return &TicketTypeBuilder{
		ID:      1,
		Name:    "Single ride",
		MaxUses: ptr.Of(int32(1)),
	}
}

func (b *TicketTypeBuilder) WithID(id int32) *TicketTypeBuilder {
	b.ID = id
	return b
}

func (b *TicketTypeBuilder) WithName(name string) *TicketTypeBuilder {
	b.Name = name
	return b
}

func (b *TicketTypeBuilder) Counted(maxUses int32) *TicketTypeBuilder {
	b.MaxUses = ptr.Of(maxUses)
	b.DurationDays = nil
	b.IsUnlimited = false
	return b
}

func (b *TicketTypeBuilder) TimeWindow(days int32) *TicketTypeBuilder {
	b.DurationDays = ptr.Of(days)
	b.MaxUses = nil
	b.IsUnlimited = false
	return b
}

func (b *TicketTypeBuilder) Unlimited() *TicketTypeBuilder {
	b.IsUnlimited = true
	return b
}

func (b *TicketTypeBuilder) BuildDomain() *fare.TicketType {
	return fare.ReconstructTicketType(b.ID, b.Name, b.DurationDays, b.MaxUses, b.IsUnlimited)
}

type TicketBuilder struct {
	ID           uuid.UUID
	Token        string
	UserID       int64
	RouteID      string
	TicketTypeID int32
	Kind         fare.PolicyKind
	IssuedAt     time.Time
	Expiry       *time.Time
	Remaining    *int32
	Active       bool
	Price        fare.Money
}

// NewTicketBuilder defaults to an active counted ticket with one ride left.
func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		ID:           uuid.New(),
		Token:        uuid.NewString(),
		UserID:       42,
		RouteID:      "R01",
		TicketTypeID: 1,
		Kind:         fare.PolicyCounted,
		IssuedAt:     time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		Remaining:    ptr.Of(int32(1)),
		Active:       true,
		Price:        7000,
	}
}

func (b *TicketBuilder) WithToken(token string) *TicketBuilder {
	b.Token = token
	return b
}

func (b *TicketBuilder) WithUserID(id int64) *TicketBuilder {
	b.UserID = id
	return b
}

func (b *TicketBuilder) Counted(remaining int32) *TicketBuilder {
	b.Kind = fare.PolicyCounted
	b.Remaining = ptr.Of(remaining)
	return b
}

// TimeWindow makes a time-window ticket valid until expiresAt.
func (b *TicketBuilder) TimeWindow(expiresAt time.Time) *TicketBuilder {
	b.Kind = fare.PolicyTimeWindow
	b.Expiry = ptr.Of(expiresAt)
	b.Remaining = nil
	return b
}

func (b *TicketBuilder) Unlimited() *TicketBuilder {
	b.Kind = fare.PolicyUnlimited
	b.Expiry = nil
	b.Remaining = nil
	return b
}

// ExpiresAt sets an expiry without changing the policy kind.
func (b *TicketBuilder) ExpiresAt(t time.Time) *TicketBuilder {
	b.Expiry = ptr.Of(t)
	return b
}

// PolicyKind stores a raw kind with no counter or expiry, the way a row
// written by an older release would look.
func (b *TicketBuilder) PolicyKind(k fare.PolicyKind) *TicketBuilder {
	b.Kind = k
	b.Expiry = nil
	b.Remaining = nil
	return b
}

func (b *TicketBuilder) Inactive() *TicketBuilder {
	b.Active = false
	return b
}

func (b *TicketBuilder) BuildDomain() *ticket.Ticket {
	return ticket.Reconstruct(b.ID, b.Token, b.UserID, b.RouteID, b.TicketTypeID, b.Kind,
		b.IssuedAt, b.Expiry, b.Remaining, b.Active, b.Price)
}

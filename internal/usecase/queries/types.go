package queries

import (
	"time"

	"github.com/google/uuid"
)

// TicketView is the rider-facing ticket listing row
type TicketView struct {
	ID             uuid.UUID  `json:"id"`
	Token          string     `json:"token"`
	RouteID        string     `json:"route_id"`
	RouteName      string     `json:"route_name"`
	TicketTypeID   int32      `json:"ticket_type_id"`
	TicketTypeName string     `json:"ticket_type_name"`
	PolicyKind     string     `json:"policy_kind"`
	IssuedAt       time.Time  `json:"issued_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	RemainingUses  *int32     `json:"remaining_uses,omitempty"`
	IsActive       bool       `json:"is_active"`
	Price          int64      `json:"price"`
}

// FareView is one purchasable ticket type on a route
type FareView struct {
	TicketTypeID int32  `json:"ticket_type_id"`
	TicketName   string `json:"ticket_name"`
	Price        int64  `json:"price"`
	PolicyKind   string `json:"policy_kind"`
	DurationDays *int32 `json:"duration_days,omitempty"`
	MaxUses      *int32 `json:"max_uses,omitempty"`
	IsUnlimited  bool   `json:"is_unlimited"`
}

type RouteFaresView struct {
	RouteID   string     `json:"route_id"`
	RouteName string     `json:"route_name"`
	Fares     []FareView `json:"fares"`
}

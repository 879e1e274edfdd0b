package ticket

import (
	"strings"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidOwner = errs.New("ticket owner must be a positive user id")
	ErrInvalidRoute = errs.New("ticket route is required")
	ErrInvalidPrice = errs.New("ticket price must not be negative")
)

type Ticket struct {
	id            uuid.UUID
	token         string
	userID        int64
	routeID       string
	ticketTypeID  int32
	policyKind    fare.PolicyKind
	issuedAt      time.Time
	expiresAt     *time.Time
	remainingUses *int32
	active        bool
	price         fare.Money
}

// Issue mints a ticket for the given type. The charged price is copied
// onto the ticket and never recomputed.
func Issue(userID int64, routeID string, tt *fare.TicketType, price fare.Money, now time.Time) (*Ticket, error) {
	if userID <= 0 {
		return nil, ErrInvalidOwner
	}
	if strings.TrimSpace(routeID) == "" {
		return nil, ErrInvalidRoute
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	kind, err := tt.Policy()
	if err != nil {
		return nil, err
	}

	t := &Ticket{
		id:           uuid.New(),
		token:        NewToken(),
		userID:       userID,
		routeID:      routeID,
		ticketTypeID: tt.ID(),
		policyKind:   kind,
		issuedAt:     now,
		active:       true,
		price:        price,
	}

	switch kind {
	case fare.PolicyTimeWindow:
		exp := now.AddDate(0, 0, int(*tt.DurationDays()))
		t.expiresAt = &exp
	case fare.PolicyCounted:
		n := *tt.MaxUses()
		t.remainingUses = &n
	}
	return t, nil
}

// NewToken returns a random UUIDv4 string used as the QR payload.
func NewToken() string {
	return uuid.NewString()
}

func Reconstruct(
	id uuid.UUID,
	token string,
	userID int64,
	routeID string,
	ticketTypeID int32,
	policyKind fare.PolicyKind,
	issuedAt time.Time,
	expiresAt *time.Time,
	remainingUses *int32,
	active bool,
	price fare.Money,
) *Ticket {
	return &Ticket{
		id:            id,
		token:         token,
		userID:        userID,
		routeID:       routeID,
		ticketTypeID:  ticketTypeID,
		policyKind:    policyKind,
		issuedAt:      issuedAt,
		expiresAt:     expiresAt,
		remainingUses: remainingUses,
		active:        active,
		price:         price,
	}
}

func (t *Ticket) ID() uuid.UUID               { return t.id }
func (t *Ticket) Token() string               { return t.token }
func (t *Ticket) UserID() int64               { return t.userID }
func (t *Ticket) RouteID() string             { return t.routeID }
func (t *Ticket) TicketTypeID() int32         { return t.ticketTypeID }
func (t *Ticket) PolicyKind() fare.PolicyKind { return t.policyKind }
func (t *Ticket) IssuedAt() time.Time         { return t.issuedAt }
func (t *Ticket) ExpiresAt() *time.Time       { return t.expiresAt }
func (t *Ticket) RemainingUses() *int32       { return t.remainingUses }
func (t *Ticket) IsActive() bool              { return t.active }
func (t *Ticket) Price() fare.Money           { return t.price }

// Policy returns nil when the stored kind and fields do not form a
// valid variant.
func (t *Ticket) Policy() Policy {
	switch t.policyKind {
	case fare.PolicyUnlimited:
		return Unlimited{}
	case fare.PolicyTimeWindow:
		if t.expiresAt == nil {
			return nil
		}
		return TimeWindow{ExpiresAt: *t.expiresAt}
	case fare.PolicyCounted:
		if t.remainingUses == nil {
			return nil
		}
		return Counted{Remaining: *t.remainingUses}
	default:
		return nil
	}
}

// Redeem applies one redemption attempt at time now. Guards are evaluated
// in order and the first match decides. Expiry is checked before the
// policy so an expired counted ticket is deactivated, not decremented.
func (t *Ticket) Redeem(now time.Time) Result {
	res := Result{PreviousRemaining: copyInt32(t.remainingUses)}

	if !t.active {
		// an exhausted counted ticket reports the more specific cause
		if c, ok := t.Policy().(Counted); ok && c.Remaining <= 0 {
			res.Outcome, res.Reason = OutcomeExhausted, ReasonExhausted
			return res
		}
		res.Outcome, res.Reason = OutcomeInactive, ReasonInactive
		return res
	}

	if t.expiresAt != nil && t.expiresAt.Before(now) {
		t.active = false
		res.Mutated = true
		res.Outcome, res.Reason = OutcomeExpired, ReasonExpired
		return res
	}

	switch p := t.Policy().(type) {
	case Unlimited:
		res.Accepted = true
		res.Outcome, res.Reason = OutcomeAccepted, ReasonUnlimited
	case TimeWindow:
		res.Accepted = true
		res.Outcome, res.Reason = OutcomeAccepted, ReasonTimeWindow
	case Counted:
		if p.Remaining <= 0 {
			// already exhausted; deactivation is idempotent
			t.active = false
			res.Mutated = true
			res.Outcome, res.Reason = OutcomeExhausted, ReasonExhausted
			return res
		}
		left := p.Remaining - 1
		t.remainingUses = &left
		if left == 0 {
			t.active = false
		}
		res.Mutated = true
		res.Accepted = true
		res.Outcome, res.Reason = OutcomeAccepted, reasonCounted(left)
	default:
		res.Outcome, res.Reason = OutcomeUnrecognizedPolicy, ReasonUnrecognizedPolicy
	}
	return res
}

func copyInt32(v *int32) *int32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

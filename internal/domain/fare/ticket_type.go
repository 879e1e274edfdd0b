package fare

import (
	"strings"

	"smartbus/internal/pkg/errs"
)

var (
	ErrUnresolvablePolicy = errs.New("ticket type has no usable policy")
	ErrInvalidTicketType  = errs.New("invalid ticket type")
)

// PolicyKind is fixed on a ticket at issuance.
type PolicyKind string

const (
	PolicyUnlimited  PolicyKind = "unlimited"
	PolicyTimeWindow PolicyKind = "time_window"
	PolicyCounted    PolicyKind = "counted"
)

func (k PolicyKind) String() string { return string(k) }

func (k PolicyKind) IsValid() bool {
	switch k {
	case PolicyUnlimited, PolicyTimeWindow, PolicyCounted:
		return true
	default:
		return false
	}
}

type TicketType struct {
	id           int32
	name         string
	durationDays *int32
	maxUses      *int32
	isUnlimited  bool
}

func NewTicketType(id int32, name string, durationDays, maxUses *int32, isUnlimited bool) (*TicketType, error) {
	name = strings.TrimSpace(name)
	if id <= 0 || name == "" {
		return nil, ErrInvalidTicketType
	}
	t := ReconstructTicketType(id, name, durationDays, maxUses, isUnlimited)
	if _, err := t.Policy(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReconstructTicketType rebuilds a type from storage without validation.
func ReconstructTicketType(id int32, name string, durationDays, maxUses *int32, isUnlimited bool) *TicketType {
	return &TicketType{
		id:           id,
		name:         name,
		durationDays: durationDays,
		maxUses:      maxUses,
		isUnlimited:  isUnlimited,
	}
}

func (t *TicketType) ID() int32            { return t.id }
func (t *TicketType) Name() string         { return t.name }
func (t *TicketType) DurationDays() *int32 { return t.durationDays }
func (t *TicketType) MaxUses() *int32      { return t.maxUses }
func (t *TicketType) IsUnlimited() bool    { return t.isUnlimited }

// Policy resolves the single usage mode of the type. Unlimited overrides
// everything, a positive duration beats a positive use count.
func (t *TicketType) Policy() (PolicyKind, error) {
	switch {
	case t.isUnlimited:
		return PolicyUnlimited, nil
	case t.durationDays != nil && *t.durationDays > 0:
		return PolicyTimeWindow, nil
	case t.maxUses != nil && *t.maxUses > 0:
		return PolicyCounted, nil
	default:
		return "", ErrUnresolvablePolicy
	}
}

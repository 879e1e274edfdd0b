package ticket

import (
	"time"

	"smartbus/internal/domain/fare"
)

// Policy is the usage model a ticket was issued under. The concrete
// variants are Unlimited, TimeWindow and Counted.
type Policy interface {
	Kind() fare.PolicyKind
	isPolicy()
}

type Unlimited struct{}

type TimeWindow struct {
	ExpiresAt time.Time
}

type Counted struct {
	Remaining int32
}

func (Unlimited) Kind() fare.PolicyKind  { return fare.PolicyUnlimited }
func (TimeWindow) Kind() fare.PolicyKind { return fare.PolicyTimeWindow }
func (Counted) Kind() fare.PolicyKind    { return fare.PolicyCounted }

func (Unlimited) isPolicy()  {}
func (TimeWindow) isPolicy() {}
func (Counted) isPolicy()    {}

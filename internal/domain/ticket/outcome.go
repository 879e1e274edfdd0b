package ticket

import "fmt"

type Outcome string

const (
	OutcomeAccepted           Outcome = "accepted"
	OutcomeNotFound           Outcome = "not_found"
	OutcomeInactive           Outcome = "inactive"
	OutcomeExpired            Outcome = "expired"
	OutcomeExhausted          Outcome = "exhausted"
	OutcomeUnrecognizedPolicy Outcome = "unrecognized_policy"
)

const (
	ReasonNotFound           = "ticket does not exist"
	ReasonInactive           = "ticket inactive"
	ReasonExpired            = "ticket expired"
	ReasonUnlimited          = "unlimited ticket accepted"
	ReasonTimeWindow         = "time-window ticket accepted"
	ReasonExhausted          = "no uses remaining"
	ReasonUnrecognizedPolicy = "unrecognized ticket policy"
)

func reasonCounted(remaining int32) string {
	return fmt.Sprintf("counted ticket accepted, %d uses remaining", remaining)
}

// Result describes one redemption decision and what it changed.
type Result struct {
	Accepted bool
	Reason   string
	Outcome  Outcome
	// Mutated is true when active or remaining uses changed and must be persisted.
	Mutated bool
	// PreviousRemaining is the counter observed before the decision, used as
	// the compare-and-swap guard when persisting.
	PreviousRemaining *int32
}

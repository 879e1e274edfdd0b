package ticket

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const UnknownLocation = "N/A"

// UsageLog is an append-only record of one redemption attempt.
type UsageLog struct {
	TicketID  uuid.UUID
	ScannedAt time.Time
	ScannedBy string
	Location  string
	Valid     bool
	Reason    string
}

func NewUsageLog(t *Ticket, res Result, actor, location string, now time.Time) UsageLog {
	location = strings.TrimSpace(location)
	if location == "" {
		location = UnknownLocation
	}
	return UsageLog{
		TicketID:  t.ID(),
		ScannedAt: now,
		ScannedBy: actor,
		Location:  location,
		Valid:     res.Accepted,
		Reason:    res.Reason,
	}
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Redemptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartbus",
		Name:      "ticket_redemptions_total",
		Help:      "Redemption attempts by outcome (accepted, rejected, unknown_token, invariant_violation).",
	}, []string{"outcome"})

	TicketsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smartbus",
		Name:      "tickets_issued_total",
		Help:      "Tickets issued by the ledger.",
	})

	Checkouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartbus",
		Name:      "checkouts_total",
		Help:      "Checkout requests by result.",
	}, []string{"result"})

	Settlements = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartbus",
		Name:      "settlements_total",
		Help:      "Settlement notifications by result.",
	}, []string{"result"})

	GatewayCalls = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "smartbus",
		Name:      "payment_gateway_call_seconds",
		Help:      "Latency of payment gateway calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "result"})

	OutboxPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smartbus",
		Name:      "outbox_events_published_total",
		Help:      "Outbox events published to Kafka.",
	})

	OutboxPublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smartbus",
		Name:      "outbox_publish_errors_total",
		Help:      "Failed outbox publish attempts.",
	})
)

// Outcome labels shared by the ticket and settlement flows.
const (
	OutcomeAccepted           = "accepted"
	OutcomeRejected           = "rejected"
	OutcomeUnknownToken       = "unknown_token"
	OutcomeInvariantViolation = "invariant_violation"

	ResultOK          = "ok"
	ResultReplayed    = "replayed"
	ResultUnconfirmed = "unconfirmed"
	ResultIncomplete  = "incomplete"
	ResultNotFound    = "not_found"
	ResultError       = "error"
)

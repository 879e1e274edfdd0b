package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/ticket"
	"smartbus/internal/infra"
	"smartbus/internal/pkg/clock"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/pkg/metrics"
	"smartbus/internal/usecase/shared"
)

type IssueTicketInput struct {
	UserID       int64
	RouteID      string
	TicketTypeID int32
	// ExpectedPrice, when set, must equal the catalog price at issuance.
	ExpectedPrice *fare.Money
}

type RedeemInput struct {
	Token    string
	Actor    string
	Location string
}

type RedeemResult struct {
	Accepted bool
	Message  string
	Outcome  ticket.Outcome
}

type TicketCommands interface {
	Issue(ctx context.Context, in IssueTicketInput) (*ticket.Ticket, error)
	Redeem(ctx context.Context, in RedeemInput) (*RedeemResult, error)
}

type ticketCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTicketCommands(uow shared.UnitOfWork, clock clock.Clock) TicketCommands {
	return &ticketCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *ticketCommandsImpl) Issue(ctx context.Context, in IssueTicketInput) (*ticket.Ticket, error) {
	var issued *ticket.Ticket
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, _, err := issueTicket(ctx, tx, in, c.clock.Now())
		if err != nil {
			return err
		}
		issued = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issued, nil
}

// issueTicket reads the type and price under share locks, builds the ticket
// and inserts it. It runs inside the caller's transaction.
func issueTicket(ctx context.Context, tx shared.Tx, in IssueTicketInput, now time.Time) (*ticket.Ticket, fare.Quote, error) {
	tt, err := tx.Reads().PolicyFor(ctx, in.TicketTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, fare.Quote{}, errs.Mark(err, ErrTicketTypeNotFound)
		}
		return nil, fare.Quote{}, err
	}

	quote, err := tx.Reads().PriceFor(ctx, in.RouteID, in.TicketTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, fare.Quote{}, errs.Mark(err, ErrPriceUnavailable)
		}
		return nil, fare.Quote{}, err
	}
	if in.ExpectedPrice != nil && *in.ExpectedPrice != quote.Price {
		return nil, quote, errs.Wrapf(ErrPriceChanged, "expected %s, catalog %s", *in.ExpectedPrice, quote.Price)
	}

	t, err := ticket.Issue(in.UserID, in.RouteID, tt, quote.Price, now)
	if err != nil {
		return nil, quote, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := tx.Tickets().Create(ctx, t); err != nil {
		return nil, quote, err
	}

	metrics.TicketsIssued.Inc()
	return t, quote, nil
}

// Redeem evaluates one scan. Rejections are results, not errors; only an
// unknown stored policy or a storage failure returns an error.
func (c *ticketCommandsImpl) Redeem(ctx context.Context, in RedeemInput) (*RedeemResult, error) {
	token := strings.TrimSpace(in.Token)
	if token == "" || strings.TrimSpace(in.Actor) == "" {
		return nil, ErrInvalidRedemption
	}

	var (
		res      ticket.Result
		ticketID string
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		t, err := tx.Tickets().FindByTokenForUpdate(ctx, token)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				res = ticket.Result{Reason: ticket.ReasonNotFound, Outcome: ticket.OutcomeNotFound}
				return nil
			}
			return err
		}
		ticketID = t.ID().String()

		res = t.Redeem(now)
		if res.Mutated {
			if err := tx.Tickets().SaveRedemption(ctx, t, res.PreviousRemaining); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return errs.Mark(err, ErrConcurrentRedemption)
				}
				return err
			}
		}
		return tx.Tickets().AppendUsageLog(ctx, ticket.NewUsageLog(t, res, in.Actor, in.Location, now))
	})
	if err != nil {
		metrics.Redemptions.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	switch {
	case res.Outcome == ticket.OutcomeNotFound:
		metrics.Redemptions.WithLabelValues(metrics.OutcomeUnknownToken).Inc()
	case res.Outcome == ticket.OutcomeUnrecognizedPolicy:
		// the attempt is already logged; surface the broken row
		metrics.Redemptions.WithLabelValues(metrics.OutcomeInvariantViolation).Inc()
		slog.Error("ticket has an unrecognized policy",
			"ticket_id", ticketID,
			"actor", in.Actor)
		return nil, errs.Wrapf(ErrUnrecognizedPolicy, "ticket %s", ticketID)
	case res.Accepted:
		metrics.Redemptions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	default:
		metrics.Redemptions.WithLabelValues(metrics.OutcomeRejected).Inc()
	}

	return &RedeemResult{
		Accepted: res.Accepted,
		Message:  res.Reason,
		Outcome:  res.Outcome,
	}, nil
}

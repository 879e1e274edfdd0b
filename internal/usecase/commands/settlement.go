package commands

import (
	"context"
	"log/slog"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/outbox"
	"smartbus/internal/domain/payment"
	"smartbus/internal/infra"
	"smartbus/internal/pkg/clock"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/pkg/metrics"
	"smartbus/internal/usecase/shared"
)

type SettlementResult struct {
	Confirmations []payment.Confirmation
	// AlreadySettled is true when the call found nothing left to do.
	AlreadySettled bool
}

type SettlementCommands interface {
	HandleSettlement(ctx context.Context, code payment.OrderCode) (*SettlementResult, error)
}

type settlementCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
}

func NewSettlementCommands(uow shared.UnitOfWork, gateway PaymentGateway, clock clock.Clock) SettlementCommands {
	return &settlementCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clock,
	}
}

// HandleSettlement turns a confirmed payment into tickets exactly once.
// It is safe to call any number of times for the same order code: items
// already fulfilled are skipped and their confirmations returned.
func (s *settlementCommandsImpl) HandleSettlement(ctx context.Context, code payment.OrderCode) (*SettlementResult, error) {
	reads := s.uow.CommandReads()

	order, err := reads.OrderByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			metrics.Settlements.WithLabelValues(metrics.ResultNotFound).Inc()
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}

	items, err := reads.OrderItems(ctx, code)
	if err != nil {
		return nil, err
	}

	if order.IsPaid() && allFulfilled(items) {
		confirmations, err := reads.Confirmations(ctx, code)
		if err != nil {
			return nil, err
		}
		metrics.Settlements.WithLabelValues(metrics.ResultReplayed).Inc()
		return &SettlementResult{Confirmations: confirmations, AlreadySettled: true}, nil
	}

	if !order.IsPaid() {
		if err := s.confirmAndMarkPaid(ctx, order); err != nil {
			return nil, err
		}
	}

	var failed []error
	for _, it := range items {
		if it.IsFulfilled() {
			continue
		}
		if err := s.fulfil(ctx, order, it); err != nil {
			failed = append(failed, err)
			s.recordFailure(ctx, it, err)
		}
	}

	confirmations, err := reads.Confirmations(ctx, code)
	if err != nil {
		return nil, err
	}

	if len(failed) > 0 {
		metrics.Settlements.WithLabelValues(metrics.ResultIncomplete).Inc()
		return &SettlementResult{Confirmations: confirmations}, incompleteError(failed)
	}

	metrics.Settlements.WithLabelValues(metrics.ResultOK).Inc()
	slog.Info("order settled", "order_code", code.Int64(), "tickets", len(confirmations))
	return &SettlementResult{Confirmations: confirmations}, nil
}

// confirmAndMarkPaid asks the gateway first; no local row is touched
// unless the gateway reports the order as paid.
func (s *settlementCommandsImpl) confirmAndMarkPaid(ctx context.Context, order *payment.Order) error {
	status, err := s.gateway.GetSettlementStatus(ctx, order.Code())
	if err != nil {
		metrics.Settlements.WithLabelValues(metrics.ResultUnconfirmed).Inc()
		return errs.Mark(err, ErrSettlementNotConfirmed)
	}
	if status != SettlementPaid {
		metrics.Settlements.WithLabelValues(metrics.ResultUnconfirmed).Inc()
		return errs.Wrapf(ErrSettlementNotConfirmed, "gateway status %s", status)
	}

	now := s.clock.Now()
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		transitioned, err := tx.PaymentOrders().MarkPaid(ctx, order.Code(), now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}
		if !transitioned {
			// a concurrent settlement got there first
			return nil
		}
		ev, err := outbox.NewOrderPaid(outbox.OrderPaid{
			OrderCode: order.Code().Int64(),
			UserID:    order.Snapshot().UserID,
			Amount:    order.Amount().Int64(),
			PaidAt:    now,
		}, now)
		if err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, ev)
	})
}

// fulfil issues the ticket for one line item in its own transaction. The
// item row lock makes concurrent settlements of the same order serialize
// per line.
func (s *settlementCommandsImpl) fulfil(ctx context.Context, order *payment.Order, it payment.Item) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.PaymentOrders().ItemForUpdate(ctx, it.OrderCode, it.LineNo)
		if err != nil {
			return err
		}
		if locked.IsFulfilled() {
			return nil
		}

		now := s.clock.Now()
		expected := locked.QuotedPrice
		t, _, err := issueTicket(ctx, tx, IssueTicketInput{
			UserID:        order.Snapshot().UserID,
			RouteID:       locked.RouteID,
			TicketTypeID:  locked.TicketTypeID,
			ExpectedPrice: &expected,
		}, now)
		if err != nil {
			return err
		}

		ok, err := tx.PaymentOrders().MarkItemFulfilled(ctx, locked.OrderCode, locked.LineNo, t.ID())
		if err != nil {
			return err
		}
		if !ok {
			return errs.Newf("line %d of order %s was fulfilled concurrently", locked.LineNo, locked.OrderCode)
		}

		ev, err := outbox.NewTicketIssued(outbox.TicketIssued{
			OrderCode:    locked.OrderCode.Int64(),
			LineNo:       locked.LineNo,
			TicketID:     t.ID(),
			UserID:       t.UserID(),
			RouteID:      t.RouteID(),
			TicketTypeID: t.TicketTypeID(),
			Price:        t.Price().Int64(),
			IssuedAt:     t.IssuedAt(),
		}, now)
		if err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, ev)
	})
}

// recordFailure keeps the reason on the item so an operator can see why a
// paid line has no ticket. Errors here are logged, never returned.
func (s *settlementCommandsImpl) recordFailure(ctx context.Context, it payment.Item, cause error) {
	retryable := !needsReconciliation(cause)
	slog.Error("line item fulfilment failed",
		"order_code", it.OrderCode.Int64(),
		"line_no", it.LineNo,
		"retryable", retryable,
		"error", cause.Error())

	now := s.clock.Now()
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.PaymentOrders().RecordItemError(ctx, it.OrderCode, it.LineNo, cause.Error()); err != nil {
			return err
		}
		ev, err := outbox.NewFulfilmentFailed(outbox.FulfilmentFailed{
			OrderCode: it.OrderCode.Int64(),
			LineNo:    it.LineNo,
			Reason:    cause.Error(),
			Retryable: retryable,
		}, now)
		if err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, ev)
	})
	if err != nil {
		slog.Error("failed to record fulfilment failure",
			"order_code", it.OrderCode.Int64(),
			"line_no", it.LineNo,
			"error", err.Error())
	}
}

// needsReconciliation is true for catalog drift: retrying cannot succeed
// until someone fixes the fare table or refunds the line.
func needsReconciliation(err error) bool {
	return errs.Is(err, ErrPriceChanged) ||
		errs.Is(err, ErrPriceUnavailable) ||
		errs.Is(err, ErrTicketTypeNotFound) ||
		errs.Is(err, fare.ErrUnresolvablePolicy) ||
		errs.Is(err, errs.ErrDomainValidation)
}

func incompleteError(failed []error) error {
	cause := failed[0]
	for _, err := range failed {
		if needsReconciliation(err) {
			cause = err
			break
		}
	}
	kind := ErrFulfilmentRetryable
	if needsReconciliation(cause) {
		kind = ErrNeedsReconciliation
	}
	return errs.Mark(errs.Mark(errs.Wrapf(cause, "%d line item(s) not fulfilled", len(failed)), ErrFulfilmentIncomplete), kind)
}

func allFulfilled(items []payment.Item) bool {
	for _, it := range items {
		if !it.IsFulfilled() {
			return false
		}
	}
	return true
}

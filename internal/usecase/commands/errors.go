package commands

import "smartbus/internal/pkg/errs"

var (
	// ticket ledger
	ErrTicketTypeNotFound   = errs.New("ticket type not found")
	ErrPriceUnavailable     = errs.New("no active price for route and ticket type")
	ErrPriceChanged         = errs.New("catalog price differs from the expected price")
	ErrUnrecognizedPolicy   = errs.New("unrecognized ticket policy")
	ErrConcurrentRedemption = errs.New("ticket changed during redemption")
	ErrInvalidRedemption    = errs.New("invalid redemption request")

	// payment orders
	ErrDuplicateOrderCode = errs.New("duplicate order code")
	ErrOrderNotFound      = errs.New("payment order not found")

	// checkout and settlement
	ErrInvalidCheckout          = errs.New("invalid checkout request")
	ErrLineItemPriceUnavailable = errs.New("line item price unavailable")
	ErrUserNotFound             = errs.New("user not found")
	ErrCheckoutUnavailable      = errs.New("payment gateway rejected the checkout")
	ErrSettlementNotConfirmed   = errs.New("payment not confirmed by gateway")
	ErrFulfilmentIncomplete     = errs.New("order paid but not every ticket was issued")
	ErrNeedsReconciliation      = errs.New("line item needs manual reconciliation")
	ErrFulfilmentRetryable      = errs.New("line item fulfilment can be retried")
)

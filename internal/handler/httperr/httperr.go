package httperr

import (
	"log/slog"
	"net/http"

	"smartbus/internal/domain/payment"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/commands"
	"smartbus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	// Retryable tells the caller the same request may succeed later.
	Retryable bool `json:"retryable,omitempty"`
	Detail    any  `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, false, detail)
}

func abort(c *gin.Context, status int, err error, msg string, retryable bool, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Retryable: retryable}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	status    int
	msg       string
	retryable bool
}

// rules are checked in order; the first sentinel the error carries wins.
var rules = []struct {
	target error
	mapping
}{
	// fulfilment: reconciliation beats retry when both marks are present
	{commands.ErrNeedsReconciliation, mapping{http.StatusConflict, "Order paid but needs manual reconciliation", false}},
	{commands.ErrFulfilmentIncomplete, mapping{http.StatusBadGateway, "Order paid but not every ticket was issued", true}},
	{commands.ErrSettlementNotConfirmed, mapping{http.StatusConflict, "Payment not confirmed yet", true}},

	{commands.ErrOrderNotFound, mapping{http.StatusNotFound, "Order not found", false}},
	{commands.ErrUserNotFound, mapping{http.StatusNotFound, "User not found", false}},
	{commands.ErrTicketTypeNotFound, mapping{http.StatusNotFound, "Ticket type not found", false}},
	{queries.ErrRouteNotFound, mapping{http.StatusNotFound, "Route not found", false}},

	{commands.ErrInvalidCheckout, mapping{http.StatusBadRequest, "Invalid checkout request", false}},
	{commands.ErrInvalidRedemption, mapping{http.StatusBadRequest, "Invalid redemption request", false}},
	{queries.ErrInvalidUserID, mapping{http.StatusBadRequest, "Invalid user id", false}},
	{payment.ErrInvalidOrderCode, mapping{http.StatusBadRequest, "Invalid order code", false}},
	{errs.ErrDomainValidation, mapping{http.StatusBadRequest, "Validation failed", false}},

	{queries.ErrTicketAccess, mapping{http.StatusForbidden, "Insufficient permissions", false}},

	{commands.ErrLineItemPriceUnavailable, mapping{http.StatusUnprocessableEntity, "Ticket is not sold on this route", false}},
	{errs.ErrIdempotencyKeyReused, mapping{http.StatusUnprocessableEntity, "Idempotency key reused with a different request", false}},
	{errs.ErrIdempotencyInProgress, mapping{http.StatusConflict, "Request with this idempotency key is in progress", true}},
	{commands.ErrConcurrentRedemption, mapping{http.StatusConflict, "Ticket changed during redemption", true}},
	{commands.ErrDuplicateOrderCode, mapping{http.StatusConflict, "Order code collision", true}},

	{commands.ErrCheckoutUnavailable, mapping{http.StatusBadGateway, "Payment gateway unavailable", true}},
	{errs.ErrUpstreamUnavailable, mapping{http.StatusBadGateway, "Payment gateway unavailable", true}},
}

// Status reports the response a use case error maps to. Unknown errors
// are internal errors.
func Status(err error) (status int, msg string, retryable bool) {
	for _, r := range rules {
		if errs.Is(err, r.target) {
			return r.status, r.msg, r.retryable
		}
	}
	return http.StatusInternalServerError, "Internal server error", false
}

// AbortWithUsecaseError maps err through Status and aborts.
func AbortWithUsecaseError(c *gin.Context, err error) {
	AbortWithUsecaseErrorDetail(c, err, nil)
}

// AbortWithUsecaseErrorDetail is AbortWithUsecaseError with a detail
// payload, for failures that still produced something the caller needs.
func AbortWithUsecaseErrorDetail(c *gin.Context, err error, detail any) {
	status, msg, retryable := Status(err)
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.Request.URL.Path,
			"error", err.Error())
	}
	abort(c, status, err, msg, retryable, detail)
}

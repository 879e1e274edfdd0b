package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/payment"
	"smartbus/internal/infra"
	"smartbus/internal/pkg/clock"
	"smartbus/internal/pkg/config"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/pkg/metrics"
	"smartbus/internal/usecase/shared"
)

type CheckoutItem struct {
	RouteID      string `json:"routeId"`
	TicketTypeID int32  `json:"ticketTypeId"`
}

type CheckoutInput struct {
	UserID int64
	Items  []CheckoutItem
	// IdempotencyKey is optional; retried requests with the same key replay
	// the first response.
	IdempotencyKey string
}

type CheckoutResult struct {
	CheckoutURL string
	OrderCode   payment.OrderCode
	IsReplayed  bool
}

type CheckoutCommands interface {
	RequestCheckout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow       shared.UnitOfWork
	catalog   FareCatalog
	users     UserDirectory
	gateway   PaymentGateway
	replay    CheckoutReplayStore
	clock     clock.Clock
	maxItems  int
	lockTTL   time.Duration
	replayTTL time.Duration
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	catalog FareCatalog,
	users UserDirectory,
	gateway PaymentGateway,
	replay CheckoutReplayStore,
	clock clock.Clock,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:       uow,
		catalog:   catalog,
		users:     users,
		gateway:   gateway,
		replay:    replay,
		clock:     clock,
		maxItems:  cfg.Fulfilment.MaxItemsPerOrder,
		lockTTL:   cfg.Redis.LockTTL,
		replayTTL: cfg.Redis.IdempotencyTTL,
	}
}

func (c *checkoutCommandsImpl) RequestCheckout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if in.UserID <= 0 || len(in.Items) == 0 {
		return nil, ErrInvalidCheckout
	}

	if in.IdempotencyKey == "" || c.replay == nil {
		return c.checkout(ctx, in)
	}

	key := replayKey(in.UserID, in.IdempotencyKey)
	hash := requestHash(in)

	replayed, err := c.lookupReplay(ctx, key, hash)
	if err != nil || replayed != nil {
		return replayed, err
	}

	acquired, err := c.replay.Reserve(ctx, key, CheckoutRecord{RequestHash: hash}, c.lockTTL)
	if err != nil {
		// replay store down: serve without replay protection
		slog.Warn("checkout replay store unavailable", "error", err.Error())
		return c.checkout(ctx, in)
	}
	if !acquired {
		return nil, errs.ErrIdempotencyInProgress
	}

	res, err := c.checkout(ctx, in)
	if err != nil {
		if relErr := c.replay.Release(ctx, key); relErr != nil {
			slog.Warn("failed to release checkout replay key", "error", relErr.Error())
		}
		return nil, err
	}

	rec := CheckoutRecord{
		RequestHash: hash,
		Completed:   true,
		CheckoutURL: res.CheckoutURL,
		OrderCode:   res.OrderCode,
	}
	if err := c.replay.Complete(ctx, key, rec, c.replayTTL); err != nil {
		slog.Warn("failed to store checkout replay record", "error", err.Error())
	}
	return res, nil
}

func (c *checkoutCommandsImpl) lookupReplay(ctx context.Context, key, hash string) (*CheckoutResult, error) {
	rec, err := c.replay.Get(ctx, key)
	if err != nil {
		slog.Warn("checkout replay lookup failed", "error", err.Error())
		return nil, nil
	}
	if rec == nil {
		return nil, nil
	}
	if rec.RequestHash != hash {
		return nil, errs.ErrIdempotencyKeyReused
	}
	if !rec.Completed {
		return nil, errs.ErrIdempotencyInProgress
	}
	metrics.Checkouts.WithLabelValues(metrics.ResultReplayed).Inc()
	return &CheckoutResult{CheckoutURL: rec.CheckoutURL, OrderCode: rec.OrderCode, IsReplayed: true}, nil
}

func (c *checkoutCommandsImpl) checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	quotes, err := c.priceItems(ctx, in.Items)
	if err != nil {
		metrics.Checkouts.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	rider, err := c.users.RiderByID(ctx, in.UserID)
	if err != nil {
		metrics.Checkouts.WithLabelValues(metrics.ResultError).Inc()
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}

	now := c.clock.Now()
	code, err := payment.NewOrderCode(now)
	if err != nil {
		return nil, err
	}
	order, err := payment.Open(code, in.UserID, quotes, c.maxItems, now)
	if err != nil {
		metrics.Checkouts.WithLabelValues(metrics.ResultError).Inc()
		return nil, errs.Mark(err, ErrInvalidCheckout)
	}

	// durable intent before the gateway sees the order code
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.PaymentOrders().Open(ctx, order); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateOrderCode)
			}
			return err
		}
		return nil
	})
	if err != nil {
		metrics.Checkouts.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	url, err := c.gateway.OpenCheckout(ctx, CheckoutSession{
		OrderCode:   code,
		Amount:      order.Amount(),
		Description: describe(order),
		BuyerName:   rider.BuyerName(),
		BuyerEmail:  rider.Email().Value(),
		Items:       checkoutLines(order.Snapshot()),
	})
	if err != nil {
		// the PENDING order stays behind; it can never settle without a session
		metrics.Checkouts.WithLabelValues(metrics.ResultError).Inc()
		slog.Warn("gateway rejected checkout", "order_code", code.Int64(), "error", err.Error())
		return nil, errs.Mark(err, ErrCheckoutUnavailable)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PaymentOrders().AttachCheckoutURL(ctx, code, url)
	})
	if err != nil {
		// the session exists; settlement does not depend on the stored URL
		slog.Warn("failed to store checkout url", "order_code", code.Int64(), "error", err.Error())
	}

	metrics.Checkouts.WithLabelValues(metrics.ResultOK).Inc()
	slog.Info("checkout opened",
		"order_code", code.Int64(),
		"user_id", in.UserID,
		"amount", order.Amount().Int64(),
		"items", len(quotes))

	return &CheckoutResult{CheckoutURL: url, OrderCode: code}, nil
}

// priceItems fails the whole request when any line has no active price.
func (c *checkoutCommandsImpl) priceItems(ctx context.Context, items []CheckoutItem) ([]fare.Quote, error) {
	quotes := make([]fare.Quote, 0, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.RouteID) == "" || it.TicketTypeID <= 0 {
			return nil, errs.Wrapf(ErrInvalidCheckout, "item %d", i+1)
		}
		q, err := c.catalog.PriceFor(ctx, it.RouteID, it.TicketTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(errs.Wrapf(err, "item %d (%s, %d)", i+1, it.RouteID, it.TicketTypeID), ErrLineItemPriceUnavailable)
			}
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func checkoutLines(s payment.PurchaseSnapshot) []CheckoutLine {
	lines := make([]CheckoutLine, len(s.Items))
	for i, it := range s.Items {
		lines[i] = CheckoutLine{
			Name:     fmt.Sprintf("%s - %s", it.TicketName, it.RouteName),
			Quantity: 1,
			Price:    it.QuotedPrice,
		}
	}
	return lines
}

// the gateway trims this to its own limit
func describe(o *payment.Order) string {
	return "SmartBus " + o.Code().String()
}

func replayKey(userID int64, key string) string {
	return "checkout:" + strconv.FormatInt(userID, 10) + ":" + key
}

func requestHash(in CheckoutInput) string {
	b, _ := json.Marshal(struct {
		UserID int64          `json:"userId"`
		Items  []CheckoutItem `json:"items"`
	}{in.UserID, in.Items})
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

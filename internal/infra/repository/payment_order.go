package repository

import (
	"context"
	"time"

	"smartbus/internal/domain/payment"
	"smartbus/internal/infra"
	"smartbus/internal/infra/repository/converter"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentOrderWriteQueries interface {
	CreatePaymentOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentOrderParams) error
	CreatePaymentOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentOrderItemParams) error
	SetPaymentOrderCheckoutURL(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPaymentOrderCheckoutURLParams) (int64, error)
	MarkPaymentOrderPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPaymentOrderPaidParams) (int64, error)
	GetPaymentOrder(ctx context.Context, db sqlc.DBTX, orderCode int64) (sqlc.PaymentOrders, error)
	GetPaymentOrderItemForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentOrderItemForUpdateParams) (sqlc.GetPaymentOrderItemForUpdateRow, error)
	MarkPaymentOrderItemFulfilled(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPaymentOrderItemFulfilledParams) (int64, error)
	SetPaymentOrderItemError(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPaymentOrderItemErrorParams) error
}

type PaymentOrderRepository struct {
	queries PaymentOrderWriteQueries
	db      sqlc.DBTX
}

func NewPaymentOrderRepository(queries PaymentOrderWriteQueries, db sqlc.DBTX) *PaymentOrderRepository {
	return &PaymentOrderRepository{
		queries: queries,
		db:      db,
	}
}

// Open writes the PENDING order row and one item row per line item.
func (r *PaymentOrderRepository) Open(ctx context.Context, o *payment.Order) error {
	params, err := converter.OrderToCreateParams(o)
	if err != nil {
		return infra.WrapRepoErr("failed to encode purchase snapshot", err)
	}
	if err := r.queries.CreatePaymentOrder(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create payment order", err)
	}
	for _, it := range payment.ItemsFromSnapshot(o.Code(), o.Snapshot()) {
		if err := r.queries.CreatePaymentOrderItem(ctx, r.db, converter.ItemToCreateParams(it)); err != nil {
			return infra.WrapRepoErr("failed to create payment order item", err)
		}
	}
	return nil
}

func (r *PaymentOrderRepository) AttachCheckoutURL(ctx context.Context, code payment.OrderCode, url string) error {
	n, err := r.queries.SetPaymentOrderCheckoutURL(ctx, r.db, sqlc.SetPaymentOrderCheckoutURLParams{
		OrderCode:   code.Int64(),
		CheckoutUrl: pgconv.StringToPgtype(url),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to store checkout url", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("payment order not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkPaid reports whether this call moved the order from PENDING to PAID.
// A false result with a nil error means another caller already settled it.
func (r *PaymentOrderRepository) MarkPaid(ctx context.Context, code payment.OrderCode, paidAt time.Time) (bool, error) {
	n, err := r.queries.MarkPaymentOrderPaid(ctx, r.db, sqlc.MarkPaymentOrderPaidParams{
		OrderCode: code.Int64(),
		PaidAt:    pgconv.TimeToPgtype(paidAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment order paid", err)
	}
	if n > 0 {
		return true, nil
	}

	// zero rows: either already PAID or absent
	if _, err := r.queries.GetPaymentOrder(ctx, r.db, code.Int64()); err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr("payment order not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to load payment order", err)
	}
	return false, nil
}

func (r *PaymentOrderRepository) ItemForUpdate(ctx context.Context, code payment.OrderCode, lineNo int32) (*payment.Item, error) {
	row, err := r.queries.GetPaymentOrderItemForUpdate(ctx, r.db, sqlc.GetPaymentOrderItemForUpdateParams{
		OrderCode: code.Int64(),
		LineNo:    lineNo,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment order item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment order item", err)
	}
	it := converter.ItemFromLockedRow(row)
	return &it, nil
}

func (r *PaymentOrderRepository) MarkItemFulfilled(ctx context.Context, code payment.OrderCode, lineNo int32, ticketID uuid.UUID) (bool, error) {
	n, err := r.queries.MarkPaymentOrderItemFulfilled(ctx, r.db, sqlc.MarkPaymentOrderItemFulfilledParams{
		OrderCode: code.Int64(),
		LineNo:    lineNo,
		TicketID:  pgconv.UUIDToPgtype(ticketID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment order item fulfilled", err)
	}
	return n > 0, nil
}

func (r *PaymentOrderRepository) RecordItemError(ctx context.Context, code payment.OrderCode, lineNo int32, reason string) error {
	err := r.queries.SetPaymentOrderItemError(ctx, r.db, sqlc.SetPaymentOrderItemErrorParams{
		OrderCode: code.Int64(),
		LineNo:    lineNo,
		LastError: pgconv.StringToPgtype(reason),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record payment order item error", err)
	}
	return nil
}

package readstore

import (
	"context"

	"smartbus/internal/domain/payment"
	"smartbus/internal/infra"
	"smartbus/internal/infra/repository/converter"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/pgconv"
)

type PaymentOrderReadQueries interface {
	GetPaymentOrder(ctx context.Context, db sqlc.DBTX, orderCode int64) (sqlc.PaymentOrders, error)
	ListPaymentOrderItems(ctx context.Context, db sqlc.DBTX, orderCode int64) ([]sqlc.ListPaymentOrderItemsRow, error)
	ListOrderConfirmations(ctx context.Context, db sqlc.DBTX, orderCode int64) ([]sqlc.ListOrderConfirmationsRow, error)
}

type PaymentOrderReadStore struct {
	queries PaymentOrderReadQueries
	db      sqlc.DBTX
}

func NewPaymentOrderReadStore(queries PaymentOrderReadQueries, db sqlc.DBTX) *PaymentOrderReadStore {
	return &PaymentOrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentOrderReadStore) OrderByCode(ctx context.Context, code payment.OrderCode) (*payment.Order, error) {
	row, err := r.queries.GetPaymentOrder(ctx, r.db, code.Int64())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment order", err)
	}
	order, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment order", err)
	}
	return order, nil
}

func (r *PaymentOrderReadStore) OrderItems(ctx context.Context, code payment.OrderCode) ([]payment.Item, error) {
	rows, err := r.queries.ListPaymentOrderItems(ctx, r.db, code.Int64())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment order items", err)
	}
	items := make([]payment.Item, len(rows))
	for i, row := range rows {
		items[i] = converter.ItemFromListRow(row)
	}
	return items, nil
}

// Confirmations lists issued tickets of the order in line order.
func (r *PaymentOrderReadStore) Confirmations(ctx context.Context, code payment.OrderCode) ([]payment.Confirmation, error) {
	rows, err := r.queries.ListOrderConfirmations(ctx, r.db, code.Int64())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order confirmations", err)
	}
	out := make([]payment.Confirmation, len(rows))
	for i, row := range rows {
		out[i] = payment.Confirmation{
			LineNo:         row.LineNo,
			TicketToken:    row.Token,
			TicketTypeName: row.TicketTypeName,
			RouteName:      row.RouteName,
		}
	}
	return out, nil
}

package converter

import (
	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/payment"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/pgconv"
)

func OrderToCreateParams(o *payment.Order) (sqlc.CreatePaymentOrderParams, error) {
	snapshot, err := o.Snapshot().Marshal()
	if err != nil {
		return sqlc.CreatePaymentOrderParams{}, err
	}
	return sqlc.CreatePaymentOrderParams{
		OrderCode:       o.Code().Int64(),
		UserID:          o.Snapshot().UserID,
		Status:          string(o.Status()),
		Amount:          o.Amount().Int64(),
		RequestSnapshot: snapshot,
		CreatedAt:       pgconv.TimeToPgtype(o.CreatedAt()),
	}, nil
}

func ItemToCreateParams(it payment.Item) sqlc.CreatePaymentOrderItemParams {
	return sqlc.CreatePaymentOrderItemParams{
		OrderCode:    it.OrderCode.Int64(),
		LineNo:       it.LineNo,
		RouteID:      it.RouteID,
		TicketTypeID: it.TicketTypeID,
		QuotedPrice:  it.QuotedPrice.Int64(),
	}
}

func OrderFromRow(row sqlc.PaymentOrders) (*payment.Order, error) {
	snapshot, err := payment.UnmarshalSnapshot(row.RequestSnapshot)
	if err != nil {
		return nil, err
	}
	var checkoutURL string
	if row.CheckoutUrl.Valid {
		checkoutURL = row.CheckoutUrl.String
	}
	return payment.ReconstructOrder(
		payment.OrderCode(row.OrderCode),
		payment.Status(row.Status),
		snapshot,
		fare.Money(row.Amount),
		checkoutURL,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.PaidAt),
	), nil
}

func ItemFromListRow(row sqlc.ListPaymentOrderItemsRow) payment.Item {
	return payment.Item{
		OrderCode:    payment.OrderCode(row.OrderCode),
		LineNo:       row.LineNo,
		RouteID:      row.RouteID,
		TicketTypeID: row.TicketTypeID,
		QuotedPrice:  fare.Money(row.QuotedPrice),
		TicketID:     pgconv.UUIDPtrFromPgtype(row.TicketID),
		LastError:    pgconv.StringPtrFromPgtype(row.LastError),
	}
}

func ItemFromLockedRow(row sqlc.GetPaymentOrderItemForUpdateRow) payment.Item {
	return ItemFromListRow(sqlc.ListPaymentOrderItemsRow(row))
}

package payment

import (
	"smartbus/internal/domain/fare"

	"github.com/google/uuid"
)

// Item tracks fulfilment of one line of a paid order. A non-nil TicketID
// means the ticket for this line has been issued.
type Item struct {
	OrderCode    OrderCode
	LineNo       int32
	RouteID      string
	TicketTypeID int32
	QuotedPrice  fare.Money
	TicketID     *uuid.UUID
	LastError    *string
}

func (i Item) IsFulfilled() bool {
	return i.TicketID != nil
}

func ItemsFromSnapshot(code OrderCode, snap PurchaseSnapshot) []Item {
	items := make([]Item, len(snap.Items))
	for i, li := range snap.Items {
		items[i] = Item{
			OrderCode:    code,
			LineNo:       li.LineNo,
			RouteID:      li.RouteID,
			TicketTypeID: li.TicketTypeID,
			QuotedPrice:  li.QuotedPrice,
		}
	}
	return items
}

// Confirmation is returned to the rider for every issued ticket.
type Confirmation struct {
	LineNo         int32
	TicketToken    string
	TicketTypeName string
	RouteName      string
}

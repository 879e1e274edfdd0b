package request

import (
	"strings"

	"smartbus/internal/usecase/commands"
)

type CheckoutItemRequest struct {
	RouteID      string `json:"routeId" binding:"required,max=32"`
	TicketTypeID int32  `json:"ticketTypeId" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	UserID int64                 `json:"userId" binding:"required,gt=0"`
	Items  []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *CheckoutRequest) ToInput(idempotencyKey string) commands.CheckoutInput {
	items := make([]commands.CheckoutItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.CheckoutItem{
			RouteID:      strings.TrimSpace(it.RouteID),
			TicketTypeID: it.TicketTypeID,
		}
	}
	return commands.CheckoutInput{
		UserID:         r.UserID,
		Items:          items,
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
	}
}

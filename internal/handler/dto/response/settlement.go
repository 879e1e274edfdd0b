package response

import "smartbus/internal/domain/payment"

type TicketConfirmationResponse struct {
	TicketToken    string `json:"ticketToken"`
	TicketTypeName string `json:"ticketTypeName"`
	RouteName      string `json:"routeName"`
}

// PartialSettlementDetail rides along with a fulfilment error.
type PartialSettlementDetail struct {
	Issued []TicketConfirmationResponse `json:"issued"`
}

func FromConfirmations(cs []payment.Confirmation) []TicketConfirmationResponse {
	res := make([]TicketConfirmationResponse, len(cs))
	for i, c := range cs {
		res[i] = TicketConfirmationResponse{
			TicketToken:    c.TicketToken,
			TicketTypeName: c.TicketTypeName,
			RouteName:      c.RouteName,
		}
	}
	return res
}

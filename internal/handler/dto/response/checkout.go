package response

import "smartbus/internal/usecase/commands"

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	OrderCode   int64  `json:"orderCode"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		CheckoutURL: r.CheckoutURL,
		OrderCode:   r.OrderCode.Int64(),
	}
}

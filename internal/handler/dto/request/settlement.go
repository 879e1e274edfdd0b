package request

import (
	"encoding/json"

	"smartbus/internal/domain/payment"
)

// PayOSCallbackRequest accepts both the bare {orderCode} body and the
// gateway webhook envelope, which nests the order code under data. Data is
// kept raw so new webhook fields never fail strict decoding.
type PayOSCallbackRequest struct {
	OrderCode int64           `json:"orderCode"`
	Code      string          `json:"code"`
	Desc      string          `json:"desc"`
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data" swaggertype:"object"`
	Signature string          `json:"signature"`
}

// The webhook signature is not verified here: settlement always asks the
// gateway for the order status before issuing anything.
func (r *PayOSCallbackRequest) ToOrderCode() (payment.OrderCode, error) {
	code := r.OrderCode
	if code == 0 && len(r.Data) > 0 {
		var data struct {
			OrderCode int64 `json:"orderCode"`
		}
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return 0, payment.ErrInvalidOrderCode
		}
		code = data.OrderCode
	}
	if code <= 0 {
		return 0, payment.ErrInvalidOrderCode
	}
	return payment.OrderCode(code), nil
}

//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// FakePayOS stands in for the payment gateway. Orders stay PENDING until
// MarkPaid is called.
type FakePayOS struct {
	srv *httptest.Server

	mu       sync.Mutex
	orders   map[int64]int64 // order code -> amount
	statuses map[int64]string
	down     bool
}

func NewFakePayOS(t *testing.T) *FakePayOS {
	t.Helper()

	f := &FakePayOS{}
	f.Reset()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/payment-requests", f.createPayment)
	mux.HandleFunc("GET /v2/payment-requests/{code}", f.paymentInfo)
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)

	return f
}

func (f *FakePayOS) URL() string { return f.srv.URL }

func (f *FakePayOS) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = map[int64]int64{}
	f.statuses = map[int64]string{}
	f.down = false
}

func (f *FakePayOS) MarkPaid(orderCode int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[orderCode] = "PAID"
}

// SetDown makes every call fail with 503.
func (f *FakePayOS) SetDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

func (f *FakePayOS) Amount(orderCode int64) (int64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	amount, ok := f.orders[orderCode]
	return amount, ok
}

func (f *FakePayOS) createPayment(w http.ResponseWriter, r *http.Request) {
	if f.isDown(w) {
		return
	}

	var req struct {
		OrderCode int64 `json:"orderCode"`
		Amount    int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, "20", "invalid body", nil)
		return
	}

	f.mu.Lock()
	f.orders[req.OrderCode] = req.Amount
	f.statuses[req.OrderCode] = "PENDING"
	f.mu.Unlock()

	writeEnvelope(w, "00", "success", map[string]any{
		"orderCode":   req.OrderCode,
		"amount":      req.Amount,
		"checkoutUrl": fmt.Sprintf("https://pay.payos.test/web/%d", req.OrderCode),
	})
}

func (f *FakePayOS) paymentInfo(w http.ResponseWriter, r *http.Request) {
	if f.isDown(w) {
		return
	}

	code, err := strconv.ParseInt(r.PathValue("code"), 10, 64)
	if err != nil {
		writeEnvelope(w, "20", "invalid order code", nil)
		return
	}

	f.mu.Lock()
	status, ok := f.statuses[code]
	amount := f.orders[code]
	f.mu.Unlock()
	if !ok {
		writeEnvelope(w, "101", "order not found", nil)
		return
	}

	writeEnvelope(w, "00", "success", map[string]any{
		"orderCode": code,
		"amount":    amount,
		"status":    status,
	})
}

func (f *FakePayOS) isDown(w http.ResponseWriter) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	return f.down
}

func writeEnvelope(w http.ResponseWriter, code, desc string, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code": code,
		"desc": desc,
		"data": data,
	})
}

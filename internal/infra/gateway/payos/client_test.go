//go:build unit

package payos_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/payment"
	"smartbus/internal/infra/gateway/payos"
	"smartbus/internal/pkg/config"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *payos.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().PayOS
	cfg.BaseURL = srv.URL
	return payos.NewClient(cfg, srv.Client())
}

func session() commands.CheckoutSession {
	return commands.CheckoutSession{
		OrderCode:   payment.OrderCode(174000000012345),
		Amount:      25,
		Description: "SmartBus 174000000012345",
		BuyerName:   "Nguyen Van A",
		Items: []commands.CheckoutLine{
			{Name: "Route 01 single", Quantity: 1, Price: fare.Money(10)},
			{Name: "Route 02 single", Quantity: 1, Price: fare.Money(15)},
		},
	}
}

func TestOpenCheckout(t *testing.T) {
	t.Run("posts signed request and returns checkout url", func(t *testing.T) {
		var got map[string]any
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v2/payment-requests", r.URL.Path)
			assert.Equal(t, "test-client", r.Header.Get("x-client-id"))
			assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"code":"00","desc":"success","data":{"checkoutUrl":"https://pay.example/abc"}}`))
		})

		url, err := c.OpenCheckout(t.Context(), session())
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/abc", url)

		assert.EqualValues(t, 174000000012345, got["orderCode"])
		assert.EqualValues(t, 25, got["amount"])
		assert.Equal(t, "SmartBus 174000000012345", got["description"])
		assert.Len(t, got["items"], 2)

		cfg := config.NewTestConfig().PayOS
		payload := fmt.Sprintf("amount=25&cancelUrl=%s&description=%s&orderCode=174000000012345&returnUrl=%s",
			cfg.CancelURL, got["description"], cfg.ReturnURL)
		mac := hmac.New(sha256.New, []byte(cfg.ChecksumKey))
		mac.Write([]byte(payload))
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got["signature"])
	})

	t.Run("long description is cut to the gateway limit", func(t *testing.T) {
		var got map[string]any
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"code":"00","desc":"success","data":{"checkoutUrl":"https://pay.example/abc"}}`))
		})

		s := session()
		s.Description = "SmartBus order 174000000012345"
		_, err := c.OpenCheckout(t.Context(), s)
		require.NoError(t, err)

		assert.Equal(t, "SmartBus order 1740000000", got["description"])

		// the signature covers what was sent, not what was asked for
		cfg := config.NewTestConfig().PayOS
		payload := fmt.Sprintf("amount=25&cancelUrl=%s&description=%s&orderCode=174000000012345&returnUrl=%s",
			cfg.CancelURL, "SmartBus order 1740000000", cfg.ReturnURL)
		mac := hmac.New(sha256.New, []byte(cfg.ChecksumKey))
		mac.Write([]byte(payload))
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got["signature"])
	})

	t.Run("gateway rejection is upstream unavailable", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":"20","desc":"order code exists","data":null}`))
		})

		_, err := c.OpenCheckout(t.Context(), session())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	})

	t.Run("server error is upstream unavailable", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.OpenCheckout(t.Context(), session())
		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	})

	t.Run("empty checkout url is an error", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":"00","desc":"success","data":{}}`))
		})

		_, err := c.OpenCheckout(t.Context(), session())
		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	})
}

func TestGetSettlementStatus(t *testing.T) {
	t.Run("reads status of the order", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v2/payment-requests/42", r.URL.Path)
			_, _ = w.Write([]byte(`{"code":"00","desc":"success","data":{"orderCode":42,"amount":25,"status":"PAID"}}`))
		})

		status, err := c.GetSettlementStatus(t.Context(), payment.OrderCode(42))
		require.NoError(t, err)
		assert.Equal(t, commands.SettlementPaid, status)
	})

	t.Run("timeout is upstream unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		t.Cleanup(srv.Close)

		cfg := config.NewTestConfig().PayOS
		cfg.BaseURL = srv.URL
		cfg.Timeout = 20 * time.Millisecond
		c := payos.NewClient(cfg, nil)

		_, err := c.GetSettlementStatus(t.Context(), payment.OrderCode(42))
		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	})
}

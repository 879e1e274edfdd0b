package payos

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"smartbus/internal/domain/payment"
	"smartbus/internal/pkg/config"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/pkg/metrics"
	"smartbus/internal/usecase/commands"
)

const successCode = "00"

// description is capped by the gateway
const maxDescriptionLen = 25

type Client struct {
	baseURL     string
	clientID    string
	apiKey      string
	checksumKey string
	returnURL   string
	cancelURL   string
	hc          *http.Client
}

var _ commands.PaymentGateway = (*Client)(nil)

func NewClient(cfg config.PayOSConfig, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		clientID:    cfg.ClientID,
		apiKey:      cfg.APIKey,
		checksumKey: cfg.ChecksumKey,
		returnURL:   cfg.ReturnURL,
		cancelURL:   cfg.CancelURL,
		hc:          hc,
	}
}

type itemData struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type createPaymentRequest struct {
	OrderCode   int64      `json:"orderCode"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	BuyerName   string     `json:"buyerName,omitempty"`
	BuyerEmail  string     `json:"buyerEmail,omitempty"`
	Items       []itemData `json:"items"`
	CancelURL   string     `json:"cancelUrl"`
	ReturnURL   string     `json:"returnUrl"`
	Signature   string     `json:"signature"`
}

type envelope struct {
	Code string          `json:"code"`
	Desc string          `json:"desc"`
	Data json.RawMessage `json:"data"`
}

type createPaymentData struct {
	CheckoutURL string `json:"checkoutUrl"`
}

type paymentInfoData struct {
	OrderCode int64  `json:"orderCode"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

func (c *Client) OpenCheckout(ctx context.Context, s commands.CheckoutSession) (string, error) {
	start := time.Now()
	url, err := c.openCheckout(ctx, s)
	observe("open_checkout", start, err)
	return url, err
}

func (c *Client) openCheckout(ctx context.Context, s commands.CheckoutSession) (string, error) {
	desc := s.Description
	if len(desc) > maxDescriptionLen {
		desc = desc[:maxDescriptionLen]
	}

	req := createPaymentRequest{
		OrderCode:   s.OrderCode.Int64(),
		Amount:      s.Amount.Int64(),
		Description: desc,
		BuyerName:   s.BuyerName,
		BuyerEmail:  s.BuyerEmail,
		Items:       make([]itemData, 0, len(s.Items)),
		CancelURL:   c.cancelURL,
		ReturnURL:   c.returnURL,
	}
	for _, it := range s.Items {
		req.Items = append(req.Items, itemData{Name: it.Name, Quantity: it.Quantity, Price: it.Price.Int64()})
	}
	req.Signature = c.sign(req)

	body, err := json.Marshal(req)
	if err != nil {
		return "", errs.Wrap(err, "encode payos payment request")
	}

	var data createPaymentData
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/v2/payment-requests", body, &data); err != nil {
		return "", err
	}
	if data.CheckoutURL == "" {
		slog.ErrorContext(ctx, "payos returned empty checkout url", "order_code", s.OrderCode)
		return "", errs.Mark(errs.New("payos returned empty checkout url"), errs.ErrUpstreamUnavailable)
	}
	return data.CheckoutURL, nil
}

func (c *Client) GetSettlementStatus(ctx context.Context, code payment.OrderCode) (commands.SettlementStatus, error) {
	start := time.Now()
	var data paymentInfoData
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/v2/payment-requests/%d", c.baseURL, code.Int64()), nil, &data)
	observe("get_status", start, err)
	if err != nil {
		return "", err
	}
	return commands.SettlementStatus(data.Status), nil
}

// sign computes the checksum over the alphabetically sorted fields the
// gateway verifies.
func (c *Client) sign(r createPaymentRequest) string {
	payload := fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		r.Amount, r.CancelURL, r.Description, r.OrderCode, r.ReturnURL)
	mac := hmac.New(sha256.New, []byte(c.checksumKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	hr, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errs.Wrap(err, "build payos request")
	}
	hr.Header.Set("Content-Type", "application/json")
	hr.Header.Set("Accept", "application/json")
	hr.Header.Set("x-client-id", c.clientID)
	hr.Header.Set("x-api-key", c.apiKey)

	hresp, err := c.hc.Do(hr)
	if err != nil {
		slog.ErrorContext(ctx, "payos request failed", "method", method, "url", url, "error", err)
		return errs.Mark(errs.Wrap(err, "call payos"), errs.ErrUpstreamUnavailable)
	}
	defer hresp.Body.Close()

	respBody, err := io.ReadAll(hresp.Body)
	if err != nil {
		slog.ErrorContext(ctx, "read payos response failed", "url", url, "error", err)
		return errs.Mark(errs.Wrap(err, "read payos response"), errs.ErrUpstreamUnavailable)
	}

	if hresp.StatusCode < 200 || hresp.StatusCode > 299 {
		slog.ErrorContext(ctx, "payos returned non-2xx", "url", url, "status", hresp.StatusCode, "body", string(respBody))
		return errs.Mark(errs.Newf("payos status %d", hresp.StatusCode), errs.ErrUpstreamUnavailable)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		slog.ErrorContext(ctx, "decode payos response failed", "url", url, "error", err)
		return errs.Mark(errs.Wrap(err, "decode payos response"), errs.ErrUpstreamUnavailable)
	}
	if env.Code != successCode {
		slog.WarnContext(ctx, "payos rejected request", "url", url, "code", env.Code, "desc", env.Desc)
		return errs.Mark(errs.Newf("payos code %s: %s", env.Code, env.Desc), errs.ErrUpstreamUnavailable)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errs.Mark(errs.Wrap(err, "decode payos data"), errs.ErrUpstreamUnavailable)
	}
	return nil
}

func observe(op string, start time.Time, err error) {
	result := metrics.ResultOK
	if err != nil {
		result = metrics.ResultError
	}
	metrics.GatewayCalls.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}

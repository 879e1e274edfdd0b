//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"smartbus/internal/domain/payment"
	"smartbus/internal/handler/api"
	resdto "smartbus/internal/handler/dto/response"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/commands"
	"smartbus/tests/common/httptest"
	commandsmock "smartbus/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettlementHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettlementCommands
}

func (s *SettlementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	handler := api.NewSettlementHandler(s.mockCommands)

	s.router.GET("/payments/payos/success", handler.Success)
	s.router.POST("/payments/payos/callback", handler.Callback)
}

func (s *SettlementHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettlementHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettlementHandlerTestSuite))
}

func settled() *commands.SettlementResult {
	return &commands.SettlementResult{
		Confirmations: []payment.Confirmation{
			{LineNo: 1, TicketToken: "tok-1", TicketTypeName: "Single ride", RouteName: "Route 01"},
			{LineNo: 2, TicketToken: "tok-2", TicketTypeName: "Single ride", RouteName: "Route 02"},
		},
	}
}

func (s *SettlementHandlerTestSuite) TestSuccess() {
	s.Run("success: returns confirmations in line order", func() {
		s.mockCommands.EXPECT().HandleSettlement(gomock.Any(), payment.OrderCode(42)).Return(settled(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/payos/success?orderCode=42&status=PAID", nil, "")

		var body []resdto.TicketConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.TicketConfirmationResponse{
			{TicketToken: "tok-1", TicketTypeName: "Single ride", RouteName: "Route 01"},
			{TicketToken: "tok-2", TicketTypeName: "Single ride", RouteName: "Route 02"},
		}, body)
		s.Empty(rec.Header().Get("X-Settlement-Replayed"))
	})

	s.Run("success: replayed settlement is flagged", func() {
		res := settled()
		res.AlreadySettled = true
		s.mockCommands.EXPECT().HandleSettlement(gomock.Any(), payment.OrderCode(42)).Return(res, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/payos/success?orderCode=42", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"X-Settlement-Replayed": "true"})
	})

	s.Run("error: 400 on malformed order code", func() {
		for _, q := range []string{"", "?orderCode=", "?orderCode=abc", "?orderCode=-5"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/payos/success"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order code")
		}
	})

	s.Run("error: use case failures are mapped", func() {
		incomplete := errs.Mark(errs.New("1 line item(s) not fulfilled"), commands.ErrFulfilmentIncomplete)
		cases := []struct {
			name       string
			err        error
			expectCode int
			retryable  bool
		}{
			{name: "unknown order", err: commands.ErrOrderNotFound, expectCode: http.StatusNotFound},
			{name: "payment not confirmed", err: errs.Mark(errs.New("PENDING"), commands.ErrSettlementNotConfirmed), expectCode: http.StatusConflict, retryable: true},
			{name: "fulfilment retryable", err: errs.Mark(incomplete, commands.ErrFulfilmentRetryable), expectCode: http.StatusBadGateway, retryable: true},
			{name: "fulfilment needs reconciliation", err: errs.Mark(incomplete, commands.ErrNeedsReconciliation), expectCode: http.StatusConflict},
			{name: "invariant violation", err: errs.New("order total mismatch"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().HandleSettlement(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/payos/success?orderCode=42", nil, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				httptest.AssertRetryable(s.T(), rec, tc.retryable)
				s.NotContains(rec.Body.String(), `"detail"`)
			})
		}
	})

	s.Run("error: partial fulfilment still hands over the issued tickets", func() {
		partial := &commands.SettlementResult{
			Confirmations: []payment.Confirmation{
				{LineNo: 1, TicketToken: "tok-1", TicketTypeName: "Single ride", RouteName: "Route 01"},
			},
		}
		err := errs.Mark(errs.Mark(errs.New("1 line item(s) not fulfilled"), commands.ErrFulfilmentIncomplete), commands.ErrFulfilmentRetryable)
		s.mockCommands.EXPECT().HandleSettlement(gomock.Any(), payment.OrderCode(42)).Return(partial, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/payos/success?orderCode=42", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "not every ticket was issued")
		httptest.AssertRetryable(s.T(), rec, true)

		var body struct {
			Detail resdto.PartialSettlementDetail `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal([]resdto.TicketConfirmationResponse{
			{TicketToken: "tok-1", TicketTypeName: "Single ride", RouteName: "Route 01"},
		}, body.Detail.Issued)
	})
}

func (s *SettlementHandlerTestSuite) TestCallback() {
	url := "/payments/payos/callback"

	s.Run("success: bare order code body", func() {
		s.mockCommands.EXPECT().HandleSettlement(gomock.Any(), payment.OrderCode(42)).Return(settled(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"orderCode": 42}, "")

		var body []resdto.TicketConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: gateway webhook body", func() {
		s.mockCommands.EXPECT().HandleSettlement(gomock.Any(), payment.OrderCode(43)).Return(settled(), nil).Times(1)

		webhook := map[string]any{
			"code":      "00",
			"desc":      "success",
			"data":      map[string]any{"orderCode": 43, "amount": 25},
			"signature": "ignored",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, webhook, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without an order code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "00"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order code")
	})

	s.Run("error: 400 on malformed json", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"smartbus/internal/domain/ticket"
	"smartbus/internal/domain/user"
	"smartbus/internal/handler/api"
	reqdto "smartbus/internal/handler/dto/request"
	resdto "smartbus/internal/handler/dto/response"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/pkg/ptr"
	"smartbus/internal/usecase/commands"
	"smartbus/internal/usecase/queries"
	"smartbus/tests/common/httptest"
	commandsmock "smartbus/tests/mock/commands"
	queriesmock "smartbus/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTicketCommands
	mockQueries  *queriesmock.MockTicketQueries
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTicketCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTicketQueries(s.mockCtrl)
	handler := api.NewTicketHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/tickets/redeem", stubAuth, handler.Redeem)
	s.router.GET("/tickets/redeem/:token", stubAuth, handler.RedeemByToken)
	s.router.GET("/tickets", stubAuth, handler.List)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

func (s *TicketHandlerTestSuite) TestRedeem() {
	url := "/tickets/redeem"
	terminal := asActor("gate-12", user.RoleInspector)

	s.Run("success: accepted scan", func() {
		want := commands.RedeemInput{Token: "tok-1", Actor: "gate-12", Location: "Ben Thanh"}
		s.mockCommands.EXPECT().Redeem(gomock.Any(), want).
			Return(&commands.RedeemResult{Accepted: true, Message: "counted ticket accepted, 1 uses remaining", Outcome: ticket.OutcomeAccepted}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			reqdto.RedeemRequest{Token: "tok-1", Location: "Ben Thanh"}, "bearer-token", terminal)

		var body resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Accepted)
		s.Equal("counted ticket accepted, 1 uses remaining", body.Message)
	})

	s.Run("success: rejection is 200 with accepted=false", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).
			Return(&commands.RedeemResult{Accepted: false, Message: ticket.ReasonExpired, Outcome: ticket.OutcomeExpired}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			reqdto.RedeemRequest{Token: "tok-1"}, "bearer-token", terminal)

		var body resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Accepted)
		s.Equal(ticket.ReasonExpired, body.Message)
	})

	s.Run("error: 400 without token", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			map[string]any{"location": "Ben Thanh"}, "bearer-token", terminal)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: unrecognized policy is an internal error", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrapf(commands.ErrUnrecognizedPolicy, "ticket %s", uuid.NewString())).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			reqdto.RedeemRequest{Token: "tok-1"}, "bearer-token", terminal)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: concurrent redemption is retryable", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("cas"), commands.ErrConcurrentRedemption)).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			reqdto.RedeemRequest{Token: "tok-1"}, "bearer-token", terminal)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
		httptest.AssertRetryable(s.T(), rec, true)
	})
}

func (s *TicketHandlerTestSuite) TestRedeemByToken() {
	s.Run("success: token from path and location from query", func() {
		want := commands.RedeemInput{Token: "tok-9", Actor: "gate-3", Location: "Bus 19"}
		s.mockCommands.EXPECT().Redeem(gomock.Any(), want).
			Return(&commands.RedeemResult{Accepted: true, Message: ticket.ReasonUnlimited, Outcome: ticket.OutcomeAccepted}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/tickets/redeem/tok-9?location=Bus%2019", nil,
			"bearer-token", asActor("gate-3", user.RoleInspector))

		var body resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Accepted)
	})

	s.Run("success: unknown token is a rejection", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).
			Return(&commands.RedeemResult{Message: ticket.ReasonNotFound, Outcome: ticket.OutcomeNotFound}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/redeem/nope", nil, "bearer-token")

		var body resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Accepted)
		s.Equal(ticket.ReasonNotFound, body.Message)
	})
}

func (s *TicketHandlerTestSuite) TestList() {
	issued := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	views := []queries.TicketView{
		{
			ID:             uuid.New(),
			Token:          "tok-2",
			RouteID:        "R01",
			RouteName:      "Route 01",
			TicketTypeID:   2,
			TicketTypeName: "Two rides",
			PolicyKind:     "counted",
			IssuedAt:       issued,
			RemainingUses:  ptr.Of(int32(1)),
			IsActive:       true,
			Price:          18,
		},
		{
			ID:             uuid.New(),
			Token:          "tok-3",
			RouteID:        "R01",
			RouteName:      "Route 01",
			TicketTypeID:   3,
			TicketTypeName: "Monthly",
			PolicyKind:     "time_window",
			IssuedAt:       issued,
			ExpiresAt:      ptr.Of(issued.AddDate(0, 0, 30)),
			IsActive:       true,
			Price:          200000,
		},
	}

	s.Run("success: lists tickets with remaining uses and expiry", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), int64(7), "7", user.RoleRider).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets?userId=7", nil, "bearer-token")

		var body []resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(views[0].ID, body[0].ID)
		s.Equal("Two rides", body[0].TicketTypeName)
		s.Equal(int32(1), *body[0].RemainingUses)
		s.Nil(body[0].ExpiresAt)
		s.Nil(body[1].RemainingUses)
		s.True(body[1].ExpiresAt.Equal(issued.AddDate(0, 0, 30)))
		s.EqualValues(200000, body[1].Price)
	})

	s.Run("success: empty list renders as array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), int64(7), "7", user.RoleRider).Return([]queries.TicketView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets?userId=7", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on missing or malformed user id", func() {
		for _, q := range []string{"", "?userId=", "?userId=seven"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets"+q, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
		}
	})

	s.Run("error: 403 for another rider's tickets", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), int64(8), "7", user.RoleRider).Return(nil, queries.ErrTicketAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets?userId=8", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

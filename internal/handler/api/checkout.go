package api

import (
	"net/http"
	"strconv"

	"smartbus/internal/domain/user"
	reqdto "smartbus/internal/handler/dto/request"
	resdto "smartbus/internal/handler/dto/response"
	"smartbus/internal/handler/httperr"
	"smartbus/internal/handler/middleware"
	"smartbus/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "X-Idempotency-Replayed"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Start checkout
// @Description Price the requested tickets, open a pending payment order and return the hosted checkout URL
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the first response for retried requests"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if role, _ := middleware.GetUserRole(c); role == user.RoleRider && actorID != strconv.FormatInt(req.UserID, 10) {
		httperr.AbortWithError(c, http.StatusForbidden, errActorMismatch, "Insufficient permissions", nil)
		return
	}

	result, err := h.cmds.RequestCheckout(c.Request.Context(), req.ToInput(c.GetHeader(headerIdempotencyKey)))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	if result.IsReplayed {
		c.Header(headerReplayed, "true")
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

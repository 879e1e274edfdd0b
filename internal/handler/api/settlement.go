package api

import (
	"net/http"

	"smartbus/internal/domain/payment"
	reqdto "smartbus/internal/handler/dto/request"
	resdto "smartbus/internal/handler/dto/response"
	"smartbus/internal/handler/httperr"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const headerSettlementReplayed = "X-Settlement-Replayed"

type SettlementHandler struct {
	cmds commands.SettlementCommands
}

func NewSettlementHandler(cmds commands.SettlementCommands) *SettlementHandler {
	return &SettlementHandler{cmds: cmds}
}

// @Summary PayOS return URL
// @Description Settle the order the rider was redirected back with and return the issued tickets
// @Tags payments
// @Produce json
// @Param orderCode query int true "Order code"
// @Success 200 {array} resdto.TicketConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/payos/success [get]
func (h *SettlementHandler) Success(c *gin.Context) {
	code, err := payment.ParseOrderCode(c.Query("orderCode"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.settle(c, code)
}

// @Summary PayOS webhook
// @Description Settle an order on the gateway's server-to-server notification
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PayOSCallbackRequest true "Callback body"
// @Success 200 {array} resdto.TicketConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/payos/callback [post]
func (h *SettlementHandler) Callback(c *gin.Context) {
	var req reqdto.PayOSCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	code, err := req.ToOrderCode()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.settle(c, code)
}

func (h *SettlementHandler) settle(c *gin.Context, code payment.OrderCode) {
	result, err := h.cmds.HandleSettlement(c.Request.Context(), code)
	if err != nil {
		// tickets issued before the failing line are already valid
		var detail any
		if result != nil && len(result.Confirmations) > 0 && errs.Is(err, commands.ErrFulfilmentIncomplete) {
			detail = resdto.PartialSettlementDetail{Issued: resdto.FromConfirmations(result.Confirmations)}
		}
		httperr.AbortWithUsecaseErrorDetail(c, err, detail)
		return
	}
	if result.AlreadySettled {
		c.Header(headerSettlementReplayed, "true")
	}
	c.JSON(http.StatusOK, resdto.FromConfirmations(result.Confirmations))
}

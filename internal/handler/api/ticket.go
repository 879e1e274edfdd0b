package api

import (
	"net/http"
	"strconv"

	reqdto "smartbus/internal/handler/dto/request"
	resdto "smartbus/internal/handler/dto/response"
	"smartbus/internal/handler/httperr"
	"smartbus/internal/handler/middleware"
	"smartbus/internal/usecase/commands"
	"smartbus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	cmds commands.TicketCommands
	q    queries.TicketQueries
}

func NewTicketHandler(cmds commands.TicketCommands, q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{cmds: cmds, q: q}
}

// @Summary Redeem ticket
// @Description Validate a scanned ticket at a gate terminal. Rejections are 200 with accepted=false
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /tickets/redeem [post]
func (h *TicketHandler) Redeem(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.redeem(c, req.ToInput(actorID))
}

// @Summary Redeem ticket by token
// @Description Same as POST /tickets/redeem for scanners that can only issue GET requests
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param token path string true "Ticket token"
// @Param location query string false "Gate or vehicle"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tickets/redeem/{token} [get]
func (h *TicketHandler) RedeemByToken(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	h.redeem(c, commands.RedeemInput{
		Token:    c.Param("token"),
		Actor:    actorID,
		Location: c.Query("location"),
	})
}

func (h *TicketHandler) redeem(c *gin.Context, in commands.RedeemInput) {
	result, err := h.cmds.Redeem(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

// @Summary List tickets
// @Description List a rider's tickets newest first with remaining uses and expiry
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param userId query int true "Rider id"
// @Success 200 {array} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Router /tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		httperr.AbortWithUsecaseError(c, queries.ErrInvalidUserID)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID, actorID, role)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromTicketViews(views)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

package api

import (
	"net/http"

	resdto "smartbus/internal/handler/dto/response"
	"smartbus/internal/handler/httperr"
	"smartbus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FareHandler struct {
	q queries.FareQueries
}

func NewFareHandler(q queries.FareQueries) *FareHandler {
	return &FareHandler{q: q}
}

// @Summary Route fare table
// @Description Ticket types sold on a route with their current price
// @Tags fares
// @Produce json
// @Param routeId path string true "Route id"
// @Success 200 {object} resdto.RouteFaresResponse
// @Failure 404 {object} httperr.Response
// @Router /routes/{routeId}/ticket-types [get]
func (h *FareHandler) ListTicketTypes(c *gin.Context) {
	view, err := h.q.ListByRoute(c.Request.Context(), c.Param("routeId"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromRouteFaresView(view)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

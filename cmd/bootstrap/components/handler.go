package components

import (
	"smartbus/internal/handler"
	"smartbus/internal/handler/api"
	"smartbus/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewSettlementHandler,
		api.NewTicketHandler,
		api.NewFareHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	checkout *api.CheckoutHandler,
	settlement *api.SettlementHandler,
	ticket *api.TicketHandler,
	fare *api.FareHandler,
) handler.Handlers {
	return handler.Handlers{
		Checkout:   checkout,
		Settlement: settlement,
		Ticket:     ticket,
		Fare:       fare,
	}
}

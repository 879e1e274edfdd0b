package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smartbus/internal/domain/user"
	"smartbus/internal/handler/api"
	"smartbus/internal/handler/middleware"
	"smartbus/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Checkout   *api.CheckoutHandler
	Settlement *api.SettlementHandler
	Ticket     *api.TicketHandler
	Fare       *api.FareHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	terminalOnly := authMiddleware.RequireRoleAtLeast(user.RoleInspector)

	apiGroup := engine.Group("/api")
	{
		// gateway redirects and webhooks carry no bearer token
		payos := apiGroup.Group("/payments/payos")
		addRoutes(payos, []route{
			{Method: http.MethodGet, Path: "/success", Handler: h.Settlement.Success},
			{Method: http.MethodPost, Path: "/callback", Handler: h.Settlement.Callback},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/routes/:routeId/ticket-types", Handler: h.Fare.ListTicketTypes},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Create},
			{Method: http.MethodGet, Path: "/tickets", Handler: h.Ticket.List},
			{Method: http.MethodPost, Path: "/tickets/redeem", Handler: h.Ticket.Redeem, Mw: []gin.HandlerFunc{terminalOnly}},
			{Method: http.MethodGet, Path: "/tickets/redeem/:token", Handler: h.Ticket.RedeemByToken, Mw: []gin.HandlerFunc{terminalOnly}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

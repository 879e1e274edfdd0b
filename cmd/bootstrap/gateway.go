package bootstrap

import (
	"smartbus/internal/infra/gateway/payos"
	"smartbus/internal/pkg/config"
	"smartbus/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	return payos.NewClient(cfg.PayOS, nil)
}

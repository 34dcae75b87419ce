package bootstrap

import (
	"decor-booking/internal/infra/checkout"
	"decor-booking/internal/pkg/config"
	"decor-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewCheckoutGateway,
	),
)

func NewCheckoutGateway(cfg config.Config) commands.CheckoutGateway {
	return checkout.NewStripeGateway(cfg.Payment.StripeSecret)
}

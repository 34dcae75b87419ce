package components

import (
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/config"
	"decor-booking/internal/usecase/access"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/queries"
	"decor-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseAccessModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAccountUseCase,
		commands.NewCatalogUseCase,
		commands.NewBookingUseCase,
		commands.NewContactUseCase,
		NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewStatsQueries,
	),
)

var usecaseAccessModule = fx.Module("usecase/access",
	fx.Provide(
		access.NewGuard,
	),
)

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway commands.CheckoutGateway,
	locker commands.Locker,
	clk clock.Clock,
	cfg config.Config,
) commands.PaymentCommands {
	return commands.NewPaymentUseCase(uow, gateway, locker, clk, cfg.Payment, cfg.Lock)
}

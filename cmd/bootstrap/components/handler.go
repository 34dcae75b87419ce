package components

import (
	"decor-booking/internal/handler"
	"decor-booking/internal/handler/api"
	"decor-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAccountHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewStatsHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	accounts *api.AccountHandler,
	catalog *api.CatalogHandler,
	bookings *api.BookingHandler,
	payments *api.PaymentHandler,
	stats *api.StatsHandler,
	contact *api.ContactHandler,
) handler.Handlers {
	return handler.Handlers{
		Accounts: accounts,
		Catalog:  catalog,
		Bookings: bookings,
		Payments: payments,
		Stats:    stats,
		Contact:  contact,
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/handler/api"
	"decor-booking/internal/handler/middleware"
	"decor-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Accounts *api.AccountHandler
	Catalog  *api.CatalogHandler
	Bookings *api.BookingHandler
	Payments *api.PaymentHandler
	Stats    *api.StatsHandler
	Contact  *api.ContactHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// recovery stays outermost
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).RequestLogger())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(engine *gin.Engine, h Handlers, auth *middleware.AuthMiddleware) {
	engine.GET("/", banner)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	verified := auth.RequireAuth()
	admin := auth.RequireRole(account.RoleAdmin)
	decorator := auth.RequireRole(account.RoleDecorator)
	selfPath := auth.RequireSelf(middleware.PathEmail("email"))
	selfQuery := auth.RequireSelf(middleware.QueryEmail("email"))

	addRoutes(&engine.RouterGroup, []route{
		// accounts
		{Method: http.MethodPost, Path: "/users", Handler: h.Accounts.Register},
		{Method: http.MethodGet, Path: "/users", Handler: h.Accounts.List, Mw: mw(verified, admin)},
		{Method: http.MethodGet, Path: "/users/decorators", Handler: h.Accounts.ListDecorators, Mw: mw(verified, admin)},
		{Method: http.MethodPatch, Path: "/users/decorator/:id", Handler: h.Accounts.PromoteDecorator, Mw: mw(verified, admin)},
		{Method: http.MethodPatch, Path: "/users/user/:id", Handler: h.Accounts.DemoteUser, Mw: mw(verified, admin)},
		{Method: http.MethodPatch, Path: "/users/status/:id", Handler: h.Accounts.SetStatus, Mw: mw(verified, admin)},
		{Method: http.MethodGet, Path: "/users/role/:email", Handler: h.Accounts.Role, Mw: mw(verified)},
		{Method: http.MethodGet, Path: "/users/profile/:email", Handler: h.Accounts.Profile, Mw: mw(verified, selfPath)},
		{Method: http.MethodGet, Path: "/public/decorators", Handler: h.Accounts.PublicDecorators},

		// catalog
		{Method: http.MethodPost, Path: "/services", Handler: h.Catalog.Create, Mw: mw(verified, admin)},
		{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.Search},
		{Method: http.MethodGet, Path: "/services/:id", Handler: h.Catalog.Get},
		{Method: http.MethodPatch, Path: "/services/:id", Handler: h.Catalog.Update, Mw: mw(verified, admin)},
		{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Catalog.Delete, Mw: mw(verified, admin)},

		// bookings
		{Method: http.MethodPost, Path: "/bookings", Handler: h.Bookings.Create, Mw: mw(verified)},
		{Method: http.MethodGet, Path: "/bookings", Handler: h.Bookings.ListByCustomer},
		{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Bookings.Get, Mw: mw(verified)},
		{Method: http.MethodPatch, Path: "/bookings/:id", Handler: h.Bookings.Cancel, Mw: mw(verified)},
		{Method: http.MethodPatch, Path: "/bookings/assign/:id", Handler: h.Bookings.Assign, Mw: mw(verified, admin)},
		{Method: http.MethodPatch, Path: "/bookings/status/:id", Handler: h.Bookings.UpdateStatus, Mw: mw(verified, decorator)},
		{Method: http.MethodGet, Path: "/bookings/decorator/:email", Handler: h.Bookings.ListByDecorator, Mw: mw(verified, decorator, selfPath)},
		{Method: http.MethodGet, Path: "/admin/bookings", Handler: h.Bookings.ListAll, Mw: mw(verified, admin)},

		// payments
		{Method: http.MethodPost, Path: "/payment-checkout-session", Handler: h.Payments.CreateCheckoutSession, Mw: mw(verified)},
		{Method: http.MethodPatch, Path: "/payment-success", Handler: h.Payments.ConfirmPayment, Mw: mw(verified)},
		{Method: http.MethodGet, Path: "/payments", Handler: h.Payments.ListByCustomer, Mw: mw(verified, selfQuery)},

		// statistics
		{Method: http.MethodGet, Path: "/admin-stats", Handler: h.Stats.Admin, Mw: mw(verified, admin)},
		{Method: http.MethodGet, Path: "/decorator-stats/:email", Handler: h.Stats.Decorator, Mw: mw(verified, decorator, selfPath)},
		{Method: http.MethodGet, Path: "/decorator-payments/:email", Handler: h.Stats.DecoratorPayments, Mw: mw(verified, decorator, selfPath)},
		{Method: http.MethodGet, Path: "/user-stats/:email", Handler: h.Stats.Customer, Mw: mw(verified, selfPath)},

		{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit},
	})
}

// @Summary Banner
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func banner(c *gin.Context) {
	c.String(http.StatusOK, "StyleDecor running...")
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

func mw(hs ...gin.HandlerFunc) []gin.HandlerFunc {
	return hs
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
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

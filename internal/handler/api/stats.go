package api

import (
	"net/http"

	resdto "decor-booking/internal/handler/dto/response"
	"decor-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Platform statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AdminStatsResponse
// @Failure 403 {object} map[string]string
// @Router /admin-stats [get]
func (h *StatsHandler) Admin(c *gin.Context) {
	stats, err := h.q.AdminStats(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminStats(stats))
}

// @Summary Decorator statistics
// @Tags decorators
// @Produce json
// @Security BearerAuth
// @Param email path string true "Decorator email"
// @Success 200 {object} resdto.DecoratorStatsResponse
// @Failure 403 {object} map[string]string
// @Router /decorator-stats/{email} [get]
func (h *StatsHandler) Decorator(c *gin.Context) {
	stats, err := h.q.DecoratorStats(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecoratorStats(stats))
}

// @Summary Decorator earnings
// @Description Completed assignments with their price
// @Tags decorators
// @Produce json
// @Security BearerAuth
// @Param email path string true "Decorator email"
// @Success 200 {array} resdto.DecoratorEarningResponse
// @Failure 403 {object} map[string]string
// @Router /decorator-payments/{email} [get]
func (h *StatsHandler) DecoratorPayments(c *gin.Context) {
	stats, err := h.q.DecoratorStats(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecoratorEarnings(stats.PaymentHistory))
}

// @Summary Customer statistics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Customer email"
// @Success 200 {object} resdto.CustomerStatsResponse
// @Failure 403 {object} map[string]string
// @Router /user-stats/{email} [get]
func (h *StatsHandler) Customer(c *gin.Context) {
	stats, err := h.q.CustomerStats(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerStats(stats))
}

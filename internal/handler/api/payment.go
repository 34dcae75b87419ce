package api

import (
	"net/http"
	"strings"

	reqdto "decor-booking/internal/handler/dto/request"
	resdto "decor-booking/internal/handler/dto/response"
	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/handler/middleware"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/access"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errSessionIDRequired = errs.New("session_id is required")

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create checkout session
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutSessionRequest true "Checkout"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payment-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortWithUseCaseError(c, access.ErrUnauthenticated)
		return
	}
	var req reqdto.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	result, err := h.cmds.CreateCheckoutSession(c.Request.Context(), req.ToCommand(), principal.Email)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CheckoutSessionResponse{URL: result.URL})
}

// @Summary Confirm payment
// @Description Records the payment for a completed checkout session exactly once
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} resdto.PaymentSuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payment-success [patch]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errSessionIDRequired, errSessionIDRequired.Error(), nil)
		return
	}
	result, err := h.cmds.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

// @Summary Payment history
// @Description Newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string true "Customer email"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Router /payments [get]
func (h *PaymentHandler) ListByCustomer(c *gin.Context) {
	views, err := h.q.ListCustomerPayments(c.Request.Context(), c.Query("email"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

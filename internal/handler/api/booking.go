package api

import (
	"net/http"
	"strings"

	reqdto "decor-booking/internal/handler/dto/request"
	resdto "decor-booking/internal/handler/dto/response"
	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/handler/middleware"
	"decor-booking/internal/usecase/access"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Books a service for the signed-in customer. A second active booking for the same
// @Description customer, service and date is answered with "already booked" and a null insertedId.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 200 {object} resdto.InsertResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortWithUseCaseError(c, access.ErrUnauthenticated)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand(), principal.Email)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if result.Duplicate {
		c.JSON(http.StatusOK, resdto.DuplicateBooking())
		return
	}
	c.JSON(http.StatusOK, resdto.Inserted(*result.BookingID))
}

// @Summary Customer bookings
// @Description Without an email the list is empty
// @Tags bookings
// @Produce json
// @Param email query string false "Customer email"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListByCustomer(c *gin.Context) {
	views, err := h.q.ListCustomerBookings(c.Request.Context(), strings.TrimSpace(c.Query("email")))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Owner or admin only. Canceling a canceled booking changes nothing.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.UpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortWithUseCaseError(c, access.ErrUnauthenticated)
		return
	}
	result, err := h.cmds.CancelBooking(c.Request.Context(), id, principal.Email)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateResult(result))
}

// @Summary Assign decorator
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AssignDecoratorRequest true "Decorator"
// @Success 200 {object} resdto.UpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/assign/{id} [patch]
func (h *BookingHandler) Assign(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AssignDecoratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	decoratorID, err := uuid.Parse(req.DecoratorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return
	}
	result, err := h.cmds.AssignDecorator(c.Request.Context(), id, decoratorID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateResult(result))
}

// @Summary Update work status
// @Description Only the decorator assigned to the booking may move it forward
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateWorkStatusRequest true "Status"
// @Success 200 {object} resdto.UpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/status/{id} [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortWithUseCaseError(c, access.ErrUnauthenticated)
		return
	}
	var req reqdto.UpdateWorkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	result, err := h.cmds.UpdateWorkStatus(c.Request.Context(), id, principal.Email, req.Status)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateResult(result))
}

// @Summary Decorator assignments
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email path string true "Decorator email"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Router /bookings/decorator/{email} [get]
func (h *BookingHandler) ListByDecorator(c *gin.Context) {
	views, err := h.q.ListDecoratorBookings(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary All bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param sort query string false "date or status"
// @Param order query string false "asc or desc"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	var query reqdto.AdminBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	views, err := h.q.ListAllBookings(c.Request.Context(), queries.BookingSort{
		Key: query.Sort,
		Asc: strings.EqualFold(query.Order, "asc"),
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

package api

import (
	"net/http"

	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/access"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidID      = "Invalid ID format"
	msgInvalidRequest = "Invalid request"
	msgInternal       = "Internal server error"
	msgUnauthorized   = "unauthorized access"
	msgForbidden      = "forbidden access"
)

// abortWithUseCaseError maps use-case sentinels onto HTTP statuses.
// Storage failures never leak their message.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, access.ErrUnauthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgUnauthorized, nil)
	case errs.IsAny(err, commands.ErrForbidden, access.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, msgForbidden, nil)
	case errs.Is(err, commands.ErrDatabaseFailure):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	case errs.IsAny(err, commands.ErrValidation, queries.ErrInvalidPriceFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
	case errs.Is(err, commands.ErrDecoratorNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Decorator not found", nil)
	case errs.Is(err, commands.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout session not found", nil)
	case errs.IsAny(err,
		commands.ErrAccountNotFound, queries.ErrAccountNotFound,
		commands.ErrServiceNotFound, queries.ErrServiceNotFound,
		commands.ErrBookingNotFound, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, commands.ErrMetadataMissing):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking ID missing in metadata", nil)
	case errs.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", nil)
	case errs.IsAny(err, commands.ErrConfirmationInProgress, commands.ErrBookingNotPending):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.Is(err, commands.ErrServiceInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Service has bookings", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}

// validationMessage drops wrapping context so the client sees the domain message.
func validationMessage(err error) string {
	if errs.Is(err, commands.ErrMissingBookingFields) {
		return commands.ErrMissingBookingFields.Error()
	}
	return err.Error()
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}

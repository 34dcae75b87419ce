package commands

import (
	"decor-booking/internal/pkg/errs"
)

var (
	ErrValidation        = errs.New("validation failed")
	ErrForbidden         = errs.New("forbidden")
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrDatabaseFailure   = errs.New("database operation failed")
)

// invalid tags a domain validation failure so handlers can answer 400 with its message.
func invalid(err error) error {
	return errs.Mark(err, ErrValidation)
}

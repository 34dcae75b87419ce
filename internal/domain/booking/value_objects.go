package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate          = errors.New("booking date must be formatted as YYYY-MM-DD")
	ErrAddressRequired      = errors.New("address is required")
	ErrServiceRequired      = errors.New("service is required")
	ErrInvalidTransition    = errors.New("booking status transition not allowed")
	ErrInvalidWorkStatus    = errors.New("invalid work status")
	ErrNotAssignedDecorator = errors.New("booking is not assigned to this decorator")
	ErrDecoratorRequired    = errors.New("decorator is required")
)

const DateLayout = "2006-01-02"

type Date struct {
	value time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: t}, nil
}

func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{value: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time { return d.value }
func (d Date) String() string  { return d.value.Format(DateLayout) }

// LogicalKey identifies a booking for duplicate detection among non-canceled bookings.
type LogicalKey struct {
	CustomerEmail string
	ServiceID     uuid.UUID
	Date          Date
}

// ServiceRef is the catalog data copied onto a booking at creation.
type ServiceRef struct {
	ID    uuid.UUID
	Name  string
	Price Money
}

// DecoratorRef is a cached projection of the assigned decorator; it is not
// refreshed when the decorator's profile changes.
type DecoratorRef struct {
	ID    uuid.UUID
	Name  string
	Email string
}

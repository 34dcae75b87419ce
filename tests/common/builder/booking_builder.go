//go:build unit || e2e

package builder

import (
	"time"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	reqdto "decor-booking/internal/handler/dto/request"
	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	Service       booking.ServiceRef
	CustomerEmail string
	CustomerName  string
	Date          string
	Address       string
	Status        booking.Status
	Decorator     *booking.DecoratorRef
	TransactionID *string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID: uuid.New(),
		Service: booking.ServiceRef{
			ID:    uuid.New(),
			Name:  "Wedding Stage Decoration",
			Price: decimal.RequireFromString("15000.50"),
		},
		CustomerEmail: "customer@example.com",
		CustomerName:  "Test Customer",
		Date:          "2025-12-24",
		Address:       "House 12, Road 5, Dhanmondi, Dhaka",
		Status:        booking.StatusPending,
		CreatedAt:     time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithService(id uuid.UUID, name string, price decimal.Decimal) *BookingBuilder {
	b.Service = booking.ServiceRef{ID: id, Name: name, Price: price}
	return b
}

// AssignedTo also moves the booking to Assigned.
func (b *BookingBuilder) AssignedTo(decorator *account.Account) *BookingBuilder {
	b.Decorator = &booking.DecoratorRef{
		ID:    decorator.ID(),
		Name:  decorator.DisplayName(),
		Email: decorator.Email().Value(),
	}
	b.Status = booking.StatusAssigned
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID,
		b.Service,
		account.ReconstructEmail(b.CustomerEmail),
		b.CustomerName,
		date,
		b.Address,
		b.Status,
		b.Decorator,
		b.TransactionID,
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	v := &queries.BookingView{
		ID:            b.ID,
		ServiceID:     b.Service.ID,
		ServiceName:   b.Service.Name,
		Price:         b.Service.Price,
		CustomerEmail: b.CustomerEmail,
		CustomerName:  b.CustomerName,
		Date:          b.Date,
		Address:       b.Address,
		Status:        b.Status.String(),
		TransactionID: b.TransactionID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
	if b.Decorator != nil {
		v.DecoratorID = &b.Decorator.ID
		v.DecoratorName = &b.Decorator.Name
		v.DecoratorEmail = &b.Decorator.Email
	}
	return v
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:    b.Service.ID.String(),
		Email:        b.CustomerEmail,
		CustomerName: b.CustomerName,
		Date:         b.Date,
		Address:      b.Address,
	}
}

package response

import (
	"time"

	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID             uuid.UUID       `json:"id"`
	ServiceID      uuid.UUID       `json:"service_id"`
	ServiceName    string          `json:"service_name"`
	Price          decimal.Decimal `json:"price"`
	CustomerEmail  string          `json:"email"`
	CustomerName   string          `json:"customerName"`
	Date           string          `json:"date"`
	Address        string          `json:"address"`
	Status         string          `json:"status"`
	DecoratorID    *uuid.UUID      `json:"decoratorId,omitempty"`
	DecoratorName  *string         `json:"decoratorName,omitempty"`
	DecoratorEmail *string         `json:"decoratorEmail,omitempty"`
	TransactionID  *string         `json:"transactionId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return copyOne[queries.BookingView, BookingResponse](v)
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	return copyAll[queries.BookingView, BookingResponse](vs)
}

const DuplicateBookingMessage = "already booked"

// DuplicateBooking is a successful response that inserted nothing.
func DuplicateBooking() *InsertResponse {
	return &InsertResponse{Message: DuplicateBookingMessage}
}

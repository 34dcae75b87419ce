package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountView is the read model for the users table; Role is already resolved.
type AccountView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type BookingView struct {
	ID             uuid.UUID       `json:"id"`
	ServiceID      uuid.UUID       `json:"service_id"`
	ServiceName    string          `json:"service_name"`
	Price          decimal.Decimal `json:"price"`
	CustomerEmail  string          `json:"customer_email"`
	CustomerName   string          `json:"customer_name"`
	Date           string          `json:"date"`
	Address        string          `json:"address"`
	Status         string          `json:"status"`
	DecoratorID    *uuid.UUID      `json:"decorator_id,omitempty"`
	DecoratorName  *string         `json:"decorator_name,omitempty"`
	DecoratorEmail *string         `json:"decorator_email,omitempty"`
	TransactionID  *string         `json:"transaction_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PaymentView struct {
	ID            uuid.UUID       `json:"id"`
	TransactionID string          `json:"transaction_id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	CustomerEmail string          `json:"customer_email"`
	ServiceName   string          `json:"service_name"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaidAt        time.Time       `json:"paid_at"`
}

// ServiceFilter fields are optional; zero values do not filter.
type ServiceFilter struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

const (
	SortByDate   = "date"
	SortByStatus = "status"
)

// BookingSort with an unknown Key falls back to newest first.
type BookingSort struct {
	Key string
	Asc bool
}

type ServiceStat struct {
	Name  string          `json:"name"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type CustomerBookingCount struct {
	Email        string `json:"email"`
	BookingCount int64  `json:"booking_count"`
}

type AdminStats struct {
	Users            int64                  `json:"users"`
	Bookings         int64                  `json:"bookings"`
	Services         int64                  `json:"services"`
	Revenue          decimal.Decimal        `json:"revenue"`
	ServiceStats     []ServiceStat          `json:"service_stats"`
	UserBookingStats []CustomerBookingCount `json:"user_booking_stats"`
}

type DecoratorEarning struct {
	ServiceName string          `json:"service_name"`
	Date        string          `json:"date"`
	Price       decimal.Decimal `json:"price"`
	Customer    string          `json:"customer"`
}

type DecoratorStats struct {
	TotalProjects     int64              `json:"total_projects"`
	CompletedProjects int64              `json:"completed_projects"`
	OngoingProjects   int64              `json:"ongoing_projects"`
	TotalEarnings     decimal.Decimal    `json:"total_earnings"`
	PaymentHistory    []DecoratorEarning `json:"payment_history"`
}

type CustomerStats struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
}

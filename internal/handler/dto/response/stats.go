package response

import (
	"log/slog"

	"decor-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ServiceStatResponse struct {
	Name  string          `json:"name"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type CustomerBookingCountResponse struct {
	Email        string `json:"email"`
	BookingCount int64  `json:"bookingCount"`
}

type AdminStatsResponse struct {
	Users            int64                          `json:"users"`
	Bookings         int64                          `json:"bookings"`
	Services         int64                          `json:"services"`
	Revenue          decimal.Decimal                `json:"revenue"`
	ServiceStats     []ServiceStatResponse          `json:"serviceStats"`
	UserBookingStats []CustomerBookingCountResponse `json:"userBookingStats"`
}

func FromAdminStats(s *queries.AdminStats) *AdminStatsResponse {
	return copyOne[queries.AdminStats, AdminStatsResponse](s)
}

type DecoratorEarningResponse struct {
	ServiceName string          `json:"serviceName"`
	Date        string          `json:"date"`
	Price       decimal.Decimal `json:"price"`
	Customer    string          `json:"customer"`
}

type DecoratorStatsResponse struct {
	TotalProjects     int64                      `json:"totalProjects"`
	CompletedProjects int64                      `json:"completedProjects"`
	OngoingProjects   int64                      `json:"ongoingProjects"`
	TotalEarnings     decimal.Decimal            `json:"totalEarnings"`
	PaymentHistory    []DecoratorEarningResponse `json:"paymentHistory"`
}

func FromDecoratorStats(s *queries.DecoratorStats) *DecoratorStatsResponse {
	return copyOne[queries.DecoratorStats, DecoratorStatsResponse](s)
}

type CustomerStatsResponse struct {
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	CompletedBookings int64 `json:"completedBookings"`
}

func FromCustomerStats(s *queries.CustomerStats) *CustomerStatsResponse {
	return copyOne[queries.CustomerStats, CustomerStatsResponse](s)
}

func FromDecoratorEarnings(es []queries.DecoratorEarning) []DecoratorEarningResponse {
	out := make([]DecoratorEarningResponse, 0, len(es))
	if len(es) == 0 {
		return out
	}
	if err := copier.Copy(&out, &es); err != nil {
		slog.Error("response mapping failed", "error", err.Error())
	}
	return out
}

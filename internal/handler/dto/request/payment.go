package request

import (
	"decor-booking/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CheckoutSessionRequest struct {
	BookingID   string          `json:"bookingId" binding:"required"`
	Cost        decimal.Decimal `json:"cost"`
	ServiceName string          `json:"serviceName"`
	SenderEmail string          `json:"senderEmail"`
}

func (r CheckoutSessionRequest) ToCommand() commands.CheckoutSessionRequest {
	return commands.CheckoutSessionRequest{
		BookingID:     r.BookingID,
		Cost:          r.Cost,
		ServiceName:   r.ServiceName,
		CustomerEmail: r.SenderEmail,
	}
}

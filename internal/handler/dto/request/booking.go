package request

import "decor-booking/internal/usecase/commands"

// CreateBookingRequest leaves required-field checks to the use case so the
// response carries the "Missing required fields" message.
type CreateBookingRequest struct {
	ServiceID    string `json:"service_id"`
	Email        string `json:"email"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Address      string `json:"address"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ServiceID:     r.ServiceID,
		CustomerEmail: r.Email,
		CustomerName:  r.CustomerName,
		Date:          r.Date,
		Address:       r.Address,
	}
}

type AssignDecoratorRequest struct {
	DecoratorID string `json:"decoratorId" binding:"required"`
}

type UpdateWorkStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AdminBookingsQuery struct {
	Sort  string `form:"sort"`
	Order string `form:"order"`
}

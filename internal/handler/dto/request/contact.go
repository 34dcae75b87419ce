package request

import "decor-booking/internal/usecase/commands"

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) ToCommand() commands.ContactRequest {
	return commands.ContactRequest{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

package request

import "decor-booking/internal/usecase/commands"

// RegisterUserRequest ignores any client supplied role.
type RegisterUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName" binding:"max=120"`
	PhotoURL    string `json:"photoURL"`
}

func (r RegisterUserRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{
		Email:       r.Email,
		DisplayName: r.DisplayName,
		PhotoURL:    r.PhotoURL,
	}
}

type UpdateAccountStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active disabled"`
}

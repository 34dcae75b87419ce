package response

import (
	"time"

	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromAccountView(v *queries.AccountView) *AccountResponse {
	return copyOne[queries.AccountView, AccountResponse](v)
}

func FromAccountViews(vs []*queries.AccountView) []*AccountResponse {
	return copyAll[queries.AccountView, AccountResponse](vs)
}

type RoleResponse struct {
	Role string `json:"role"`
}

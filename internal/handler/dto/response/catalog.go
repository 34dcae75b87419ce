package response

import (
	"time"

	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"service_name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	ImageURL    string          `json:"img"`
	CreatedBy   string          `json:"createdByEmail"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return copyOne[queries.ServiceView, ServiceResponse](v)
}

func FromServiceViews(vs []*queries.ServiceView) []*ServiceResponse {
	return copyAll[queries.ServiceView, ServiceResponse](vs)
}

//go:build unit || e2e

package builder

import (
	"time"

	"decor-booking/internal/domain/catalog"
	reqdto "decor-booking/internal/handler/dto/request"
	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceBuilder struct {
	ID        uuid.UUID
	Details   catalog.Details
	CreatedBy string
	CreatedAt time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID: uuid.New(),
		Details: catalog.Details{
			Name:        "Wedding Stage Decoration",
			Category:    "wedding",
			Price:       decimal.RequireFromString("15000.50"),
			Unit:        "per event",
			Description: "Full stage setup with floral arrangements",
			ImageURL:    "https://example.com/stage.jpg",
		},
		CreatedBy: "admin@example.com",
		CreatedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) WithPrice(price string) *ServiceBuilder {
	b.Details.Price = decimal.RequireFromString(price)
	return b
}

func (b *ServiceBuilder) BuildDomain() *catalog.Service {
	return catalog.ReconstructService(b.ID, b.Details, b.CreatedBy, b.CreatedAt, b.CreatedAt)
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:          b.ID,
		Name:        b.Details.Name,
		Category:    b.Details.Category,
		Price:       b.Details.Price,
		Unit:        b.Details.Unit,
		Description: b.Details.Description,
		ImageURL:    b.Details.ImageURL,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:        b.Details.Name,
		Category:    b.Details.Category,
		Price:       b.Details.Price,
		Unit:        b.Details.Unit,
		Description: b.Details.Description,
		Image:       b.Details.ImageURL,
	}
}

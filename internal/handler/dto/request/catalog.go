package request

import (
	"decor-booking/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	Name        string          `json:"service_name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Image       string          `json:"img"`
}

func (r CreateServiceRequest) ToCommand() commands.CreateServiceRequest {
	return commands.CreateServiceRequest{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Unit:        r.Unit,
		Description: r.Description,
		ImageURL:    r.Image,
	}
}

type UpdateServiceRequest struct {
	Name        *string          `json:"service_name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Unit        *string          `json:"unit"`
	Description *string          `json:"description"`
	Image       *string          `json:"img"`
}

func (r UpdateServiceRequest) ToCommand() commands.UpdateServiceRequest {
	return commands.UpdateServiceRequest{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Unit:        r.Unit,
		Description: r.Description,
		ImageURL:    r.Image,
	}
}

type ServiceSearchQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Min      string `form:"min"`
	Max      string `form:"max"`
}

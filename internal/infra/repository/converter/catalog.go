package converter

import (
	"fmt"

	"decor-booking/internal/domain/catalog"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"
)

func ServiceToInfra(svc *catalog.Service) sqlc.CreateServiceParams {
	return sqlc.CreateServiceParams{
		ID:             svc.ID(),
		Name:           svc.Name(),
		Category:       svc.Category(),
		Price:          pgconv.NumericFromDecimal(svc.Price()),
		Unit:           svc.Unit(),
		Description:    svc.Description(),
		ImageUrl:       svc.ImageURL(),
		CreatedByEmail: svc.CreatedBy(),
		CreatedAt:      pgconv.TimeToPgtype(svc.CreatedAt()),
	}
}

func ServiceUpdateToInfra(svc *catalog.Service) sqlc.UpdateServiceParams {
	return sqlc.UpdateServiceParams{
		ID:          svc.ID(),
		Name:        svc.Name(),
		Category:    svc.Category(),
		Price:       pgconv.NumericFromDecimal(svc.Price()),
		Unit:        svc.Unit(),
		Description: svc.Description(),
		ImageUrl:    svc.ImageURL(),
		UpdatedAt:   pgconv.TimeToPgtype(svc.UpdatedAt()),
	}
}

func ServiceFromInfra(row sqlc.Services) (*catalog.Service, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, fmt.Errorf("service %s price: %w", row.ID, err)
	}
	return catalog.ReconstructService(
		row.ID,
		catalog.Details{
			Name:        row.Name,
			Category:    row.Category,
			Price:       price,
			Unit:        row.Unit,
			Description: row.Description,
			ImageURL:    row.ImageUrl,
		},
		row.CreatedByEmail,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

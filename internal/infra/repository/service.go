package repository

import (
	"context"

	"decor-booking/internal/domain/catalog"
	"decor-booking/internal/infra"
	"decor-booking/internal/infra/repository/converter"
	sqlc "decor-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) (uuid.UUID, error)
	UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) (int64, error)
	DeleteService(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
}

func NewServiceRepository(queries ServiceWriteQueries) *ServiceRepository {
	return &ServiceRepository{queries: queries}
}

func (r *ServiceRepository) Create(ctx context.Context, tx sqlc.DBTX, svc *catalog.Service) (uuid.UUID, error) {
	id, err := r.queries.CreateService(ctx, tx, converter.ServiceToInfra(svc))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx sqlc.DBTX, svc *catalog.Service) (int64, error) {
	n, err := r.queries.UpdateService(ctx, tx, converter.ServiceUpdateToInfra(svc))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update service", err)
	}
	return n, nil
}

// Delete fails with KindForeignKeyViolated while bookings still reference the service.
func (r *ServiceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteService(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete service", err)
	}
	return n, nil
}

package readstore

import (
	"context"

	"decor-booking/internal/domain/catalog"
	"decor-booking/internal/infra"
	"decor-booking/internal/infra/repository/converter"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"
	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	FindServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	SearchServices(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchServicesParams) ([]sqlc.Services, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.queries.FindServiceByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr("service", err)
	}
	view, err := toServiceView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode service", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *ServiceReadStore) ServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	row, err := r.queries.FindServiceByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr("service", err)
	}
	svc, err := converter.ServiceFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode service", err, infra.KindDBFailure)
	}
	return svc, nil
}

func (r *ServiceReadStore) Search(ctx context.Context, filter queries.ServiceFilter) ([]*queries.ServiceView, error) {
	rows, err := r.queries.SearchServices(ctx, r.db, sqlc.SearchServicesParams{
		Search:   pgconv.OptionalStringToPgtype(filter.Search),
		Category: pgconv.OptionalStringToPgtype(filter.Category),
		MinPrice: pgconv.NumericPtrFromDecimal(filter.MinPrice),
		MaxPrice: pgconv.NumericPtrFromDecimal(filter.MaxPrice),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search services", err)
	}

	out := make([]*queries.ServiceView, 0, len(rows))
	for _, row := range rows {
		view, cerr := toServiceView(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to decode service", cerr, infra.KindDBFailure)
		}
		out = append(out, view)
	}
	return out, nil
}

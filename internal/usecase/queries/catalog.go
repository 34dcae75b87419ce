package queries

import (
	"context"

	"decor-booking/internal/infra"
	"decor-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound    = errs.New("service not found")
	ErrInvalidPriceFilter = errs.New("min price exceeds max price")
)

type CatalogQueries interface {
	SearchServices(ctx context.Context, filter ServiceFilter) ([]*ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	Search(ctx context.Context, filter ServiceFilter) ([]*ServiceView, error)
}

type catalogQueriesImpl struct {
	readStore ServiceReadStore
}

func NewCatalogQueries(readStore ServiceReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) SearchServices(ctx context.Context, filter ServiceFilter) ([]*ServiceView, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, ErrInvalidPriceFilter
	}
	return q.readStore.Search(ctx, filter)
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

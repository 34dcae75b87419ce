package commands

import (
	"context"

	"decor-booking/internal/domain/catalog"
	"decor-booking/internal/infra"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/pkg/patch"
	"decor-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound = errs.New("service not found")
	ErrServiceInUse    = errs.New("service has bookings")
)

type CreateServiceRequest struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Unit        string
	Description string
	ImageURL    string
}

// UpdateServiceRequest leaves nil fields untouched; a blank ImageURL keeps the current image.
type UpdateServiceRequest struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Unit        *string
	Description *string
	ImageURL    *string
}

type CatalogCommands interface {
	CreateService(ctx context.Context, req CreateServiceRequest, createdBy string) (uuid.UUID, error)
	UpdateService(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*shared.UpdateResult, error)
	DeleteService(ctx context.Context, id uuid.UUID) (int64, error)
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, clock: clk}
}

func (uc *catalogUseCaseImpl) CreateService(ctx context.Context, req CreateServiceRequest, createdBy string) (uuid.UUID, error) {
	svc, err := catalog.NewService(catalog.Details{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        req.Unit,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}, createdBy, uc.clock.Now())
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Services().Create(ctx, tx.DB(), svc)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return id, nil
}

func (uc *catalogUseCaseImpl) UpdateService(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*shared.UpdateResult, error) {
	result := &shared.UpdateResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Reads().ServiceByID(ctx, id)
		if derr != nil {
			return derr
		}
		result.MatchedCount = 1

		current := svc.Details()
		next := catalog.Details{
			Name:        patch.Coalesce(req.Name, current.Name),
			Category:    patch.Coalesce(req.Category, current.Category),
			Price:       patch.Coalesce(req.Price, current.Price),
			Unit:        patch.Coalesce(req.Unit, current.Unit),
			Description: patch.Coalesce(req.Description, current.Description),
			ImageURL:    patch.CoalesceText(req.ImageURL, current.ImageURL),
		}
		if sameDetails(next, current) {
			return nil
		}
		if derr = svc.Revise(next, uc.clock.Now()); derr != nil {
			return invalid(derr)
		}

		n, derr := tx.Services().Update(ctx, tx.DB(), svc)
		if derr != nil {
			return derr
		}
		result.ModifiedCount = n
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrServiceNotFound
		case errs.Is(err, ErrValidation):
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return result, nil
}

// DeleteService refuses to delete a service that bookings still reference.
func (uc *catalogUseCaseImpl) DeleteService(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Services().Delete(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		deleted = n
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return 0, ErrServiceInUse
		}
		return 0, errs.Mark(err, ErrDatabaseFailure)
	}
	return deleted, nil
}

func sameDetails(a, b catalog.Details) bool {
	return a.Name == b.Name &&
		a.Category == b.Category &&
		a.Price.Equal(b.Price) &&
		a.Unit == b.Unit &&
		a.Description == b.Description &&
		a.ImageURL == b.ImageURL
}

package commands

import (
	"context"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/infra"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errs.New("account not found")

type RegisterRequest struct {
	Email       string
	DisplayName string
	PhotoURL    string
}

type RegisterResult struct {
	Created bool
	ID      uuid.UUID
}

type AccountCommands interface {
	// Register always stores role user; an existing email is a no-op.
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	SetRole(ctx context.Context, id uuid.UUID, role account.Role) (*shared.UpdateResult, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*shared.UpdateResult, error)
}

type accountUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAccountUseCase(uow shared.UnitOfWork, clk clock.Clock) AccountCommands {
	return &accountUseCaseImpl{uow: uow, clock: clk}
}

func (uc *accountUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email, err := account.NewEmail(req.Email)
	if err != nil {
		return nil, invalid(err)
	}
	acc, err := account.NewAccount(email, req.DisplayName, req.PhotoURL, uc.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	result := &RegisterResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Accounts().CreateIfAbsent(ctx, tx.DB(), acc)
		if derr != nil {
			return derr
		}
		result.Created = created
		if created {
			result.ID = acc.ID()
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return result, nil
}

func (uc *accountUseCaseImpl) SetRole(ctx context.Context, id uuid.UUID, role account.Role) (*shared.UpdateResult, error) {
	if !role.IsValid() {
		return nil, invalid(account.ErrInvalidRole)
	}
	return uc.updateAccount(ctx, id, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Accounts().UpdateRole(ctx, tx.DB(), id, role)
	})
}

func (uc *accountUseCaseImpl) SetStatus(ctx context.Context, id uuid.UUID, status string) (*shared.UpdateResult, error) {
	st, err := account.NewStatus(status)
	if err != nil {
		return nil, invalid(err)
	}
	return uc.updateAccount(ctx, id, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Accounts().UpdateStatus(ctx, tx.DB(), id, st)
	})
}

func (uc *accountUseCaseImpl) updateAccount(ctx context.Context, id uuid.UUID, apply func(context.Context, shared.Tx) (int64, error)) (*shared.UpdateResult, error) {
	result := &shared.UpdateResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().AccountByID(ctx, id); derr != nil {
			return derr
		}
		result.MatchedCount = 1

		n, derr := apply(ctx, tx)
		if derr != nil {
			return derr
		}
		result.ModifiedCount = n
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return result, nil
}

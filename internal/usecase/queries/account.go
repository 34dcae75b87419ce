package queries

import (
	"context"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/infra"
	"decor-booking/internal/pkg/errs"
)

const PublicDecoratorLimit = 4

var ErrAccountNotFound = errs.New("account not found")

// RoleLookup distinguishes an unknown email from an account whose role is unset.
// Both resolve to the default role.
type RoleLookup struct {
	Role       account.Role
	Found      bool
	RoleStored bool
}

type AccountQueries interface {
	ListAccounts(ctx context.Context) ([]*AccountView, error)
	ListDecorators(ctx context.Context) ([]*AccountView, error)
	PublicDecorators(ctx context.Context) ([]*AccountView, error)
	Profile(ctx context.Context, email string) (*AccountView, error)
	RoleOf(ctx context.Context, email string) (*RoleLookup, error)
}

type AccountReadStore interface {
	FindByEmail(ctx context.Context, email string) (*AccountView, error)
	FindRoleByEmail(ctx context.Context, email string) (*string, error)
	List(ctx context.Context) ([]*AccountView, error)
	ListByRole(ctx context.Context, role account.Role) ([]*AccountView, error)
	ListActiveDecorators(ctx context.Context, limit int32) ([]*AccountView, error)
}

type accountQueriesImpl struct {
	readStore AccountReadStore
}

func NewAccountQueries(readStore AccountReadStore) AccountQueries {
	return &accountQueriesImpl{readStore: readStore}
}

func (q *accountQueriesImpl) ListAccounts(ctx context.Context) ([]*AccountView, error) {
	return q.readStore.List(ctx)
}

func (q *accountQueriesImpl) ListDecorators(ctx context.Context) ([]*AccountView, error) {
	return q.readStore.ListByRole(ctx, account.RoleDecorator)
}

func (q *accountQueriesImpl) PublicDecorators(ctx context.Context) ([]*AccountView, error) {
	return q.readStore.ListActiveDecorators(ctx, PublicDecoratorLimit)
}

func (q *accountQueriesImpl) Profile(ctx context.Context, email string) (*AccountView, error) {
	view, err := q.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *accountQueriesImpl) RoleOf(ctx context.Context, email string) (*RoleLookup, error) {
	stored, err := q.readStore.FindRoleByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &RoleLookup{Role: account.DefaultRole}, nil
		}
		return nil, err
	}
	return &RoleLookup{
		Role:       account.ResolveRole(stored),
		Found:      true,
		RoleStored: stored != nil && *stored != "",
	}, nil
}

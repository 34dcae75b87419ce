package readstore

import (
	"context"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/infra"
	"decor-booking/internal/infra/repository/converter"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"
	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountReadQueries interface {
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
	ListUsersByRole(ctx context.Context, db sqlc.DBTX, role string) ([]sqlc.Users, error)
	ListActiveDecorators(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Users, error)
}

// AccountReadStore is also the role store consulted by the access guard.
type AccountReadStore struct {
	queries AccountReadQueries
	db      sqlc.DBTX
}

func NewAccountReadStore(queries AccountReadQueries, db sqlc.DBTX) *AccountReadStore {
	return &AccountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AccountReadStore) FindByEmail(ctx context.Context, email string) (*queries.AccountView, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, wrapFindErr("account", err)
	}
	return toAccountView(row), nil
}

// FindRoleByEmail returns the raw stored role, nil when the column is NULL.
func (r *AccountReadStore) FindRoleByEmail(ctx context.Context, email string) (*string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, wrapFindErr("account", err)
	}
	return pgconv.StringPtrFromPgtype(row.Role), nil
}

func (r *AccountReadStore) AccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, wrapFindErr("account", err)
	}
	return converter.AccountFromInfra(row), nil
}

func (r *AccountReadStore) AccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr("account", err)
	}
	return converter.AccountFromInfra(row), nil
}

func (r *AccountReadStore) List(ctx context.Context) ([]*queries.AccountView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accounts", err)
	}
	return toAccountViews(rows), nil
}

func (r *AccountReadStore) ListByRole(ctx context.Context, role account.Role) ([]*queries.AccountView, error) {
	rows, err := r.queries.ListUsersByRole(ctx, r.db, role.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accounts by role", err)
	}
	return toAccountViews(rows), nil
}

func (r *AccountReadStore) ListActiveDecorators(ctx context.Context, limit int32) ([]*queries.AccountView, error) {
	rows, err := r.queries.ListActiveDecorators(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list decorators", err)
	}
	return toAccountViews(rows), nil
}

func wrapFindErr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+entity, err)
}

package repository

import (
	"context"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/infra"
	"decor-booking/internal/infra/repository/converter"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AccountWriteQueries interface {
	CreateUserIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserIfAbsentParams) (uuid.UUID, error)
	UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error)
	UpdateUserStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserStatusParams) (int64, error)
}

type AccountRepository struct {
	queries AccountWriteQueries
}

func NewAccountRepository(queries AccountWriteQueries) *AccountRepository {
	return &AccountRepository{queries: queries}
}

func (r *AccountRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, acc *account.Account) (bool, error) {
	_, err := r.queries.CreateUserIfAbsent(ctx, tx, converter.AccountToInfra(acc))
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to create account", err)
	}
	return true, nil
}

func (r *AccountRepository) UpdateRole(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, role account.Role) (int64, error) {
	n, err := r.queries.UpdateUserRole(ctx, tx, sqlc.UpdateUserRoleParams{
		ID:   id,
		Role: pgconv.StringToPgtype(role.String()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update account role", err)
	}
	return n, nil
}

func (r *AccountRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status account.Status) (int64, error) {
	n, err := r.queries.UpdateUserStatus(ctx, tx, sqlc.UpdateUserStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update account status", err)
	}
	return n, nil
}

package converter

import (
	"decor-booking/internal/domain/account"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"
)

func AccountToInfra(acc *account.Account) sqlc.CreateUserIfAbsentParams {
	params := sqlc.CreateUserIfAbsentParams{
		ID:          acc.ID(),
		Email:       acc.Email().Value(),
		DisplayName: acc.DisplayName(),
		PhotoUrl:    acc.PhotoURL(),
		Status:      acc.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(acc.CreatedAt()),
	}
	if role := acc.StoredRole(); role != nil {
		params.Role = pgconv.StringToPgtype(role.String())
	}
	return params
}

// AccountFromInfra keeps a NULL or unknown stored role as unset.
func AccountFromInfra(row sqlc.Users) *account.Account {
	var role *account.Role
	if row.Role.Valid {
		if r, err := account.NewRole(row.Role.String); err == nil {
			role = &r
		}
	}
	status, err := account.NewStatus(row.Status)
	if err != nil {
		status = account.StatusActive
	}
	return account.ReconstructAccount(
		row.ID,
		account.ReconstructEmail(row.Email),
		row.DisplayName,
		row.PhotoUrl,
		role,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

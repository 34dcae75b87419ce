//go:build unit || e2e

package builder

import (
	"time"

	"decor-booking/internal/domain/account"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AccountBuilder struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	PhotoURL    string
	Role        *string
	Status      string
	CreatedAt   time.Time
}

func NewAccountBuilder() *AccountBuilder {
	role := account.RoleUser.String()
	return &AccountBuilder{
		ID:          uuid.New(),
		Email:       "customer@example.com",
		DisplayName: "Test Customer",
		PhotoURL:    "https://example.com/avatar.png",
		Role:        &role,
		Status:      account.StatusActive.String(),
		CreatedAt:   time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.Email = email
	return b
}

func (b *AccountBuilder) WithRole(role account.Role) *AccountBuilder {
	r := role.String()
	b.Role = &r
	return b
}

// WithoutRole models a legacy row whose role column is NULL.
func (b *AccountBuilder) WithoutRole() *AccountBuilder {
	b.Role = nil
	return b
}

func (b *AccountBuilder) AsDisabled() *AccountBuilder {
	b.Status = account.StatusDisabled.String()
	return b
}

func (b *AccountBuilder) BuildDomain() *account.Account {
	var role *account.Role
	if b.Role != nil {
		r := account.Role(*b.Role)
		role = &r
	}
	return account.ReconstructAccount(
		b.ID,
		account.ReconstructEmail(b.Email),
		b.DisplayName,
		b.PhotoURL,
		role,
		account.Status(b.Status),
		b.CreatedAt,
	)
}

func (b *AccountBuilder) BuildInfra() sqlc.Users {
	role := pgtype.Text{}
	if b.Role != nil {
		role = pgtype.Text{String: *b.Role, Valid: true}
	}
	return sqlc.Users{
		ID:          b.ID,
		Email:       b.Email,
		DisplayName: b.DisplayName,
		PhotoUrl:    b.PhotoURL,
		Role:        role,
		Status:      b.Status,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *AccountBuilder) BuildView() *queries.AccountView {
	return &queries.AccountView{
		ID:          b.ID,
		Email:       b.Email,
		DisplayName: b.DisplayName,
		PhotoURL:    b.PhotoURL,
		Role:        account.ResolveRole(b.Role).String(),
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

package repository

import (
	"context"

	"decor-booking/internal/infra"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"
	"decor-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContactWriteQueries interface {
	CreateContact(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateContactParams) (uuid.UUID, error)
}

type ContactRepository struct {
	queries ContactWriteQueries
}

func NewContactRepository(queries ContactWriteQueries) *ContactRepository {
	return &ContactRepository{queries: queries}
}

func (r *ContactRepository) Create(ctx context.Context, tx sqlc.DBTX, msg shared.ContactMessage) (uuid.UUID, error) {
	id, err := r.queries.CreateContact(ctx, tx, sqlc.CreateContactParams{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: pgconv.TimeToPgtype(msg.CreatedAt),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to store contact message", err)
	}
	return id, nil
}

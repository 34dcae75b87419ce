package repository

import (
	"context"

	"decor-booking/internal/domain/payment"
	"decor-booking/internal/infra"
	"decor-booking/internal/infra/repository/converter"
	sqlc "decor-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (uuid.UUID, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

// Create reports KindDuplicateKey when the transaction id was already recorded.
func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (uuid.UUID, error) {
	id, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToInfra(p))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to record payment", err)
	}
	return id, nil
}

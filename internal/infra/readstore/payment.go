package readstore

import (
	"context"

	"decor-booking/internal/domain/payment"
	"decor-booking/internal/infra"
	"decor-booking/internal/infra/repository/converter"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/usecase/queries"
)

type PaymentReadQueries interface {
	FindPaymentByTransactionID(ctx context.Context, db sqlc.DBTX, transactionID string) (sqlc.Payments, error)
	ListPaymentsByCustomer(ctx context.Context, db sqlc.DBTX, customerEmail string) ([]sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) ListByCustomer(ctx context.Context, email string) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByCustomer(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	out := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		view, cerr := toPaymentView(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to decode payment", cerr, infra.KindDBFailure)
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *PaymentReadStore) PaymentByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	row, err := r.queries.FindPaymentByTransactionID(ctx, r.db, transactionID)
	if err != nil {
		return nil, wrapFindErr("payment", err)
	}
	p, err := converter.PaymentFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment", err, infra.KindDBFailure)
	}
	return p, nil
}

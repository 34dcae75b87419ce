package queries

import (
	"context"
	"strings"
)

type PaymentQueries interface {
	ListCustomerPayments(ctx context.Context, email string) ([]*PaymentView, error)
}

type PaymentReadStore interface {
	ListByCustomer(ctx context.Context, email string) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

// ListCustomerPayments is ordered by paid_at, newest first.
func (q *paymentQueriesImpl) ListCustomerPayments(ctx context.Context, email string) ([]*PaymentView, error) {
	return q.readStore.ListByCustomer(ctx, strings.ToLower(email))
}

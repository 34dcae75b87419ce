package queries

import (
	"context"
	"strings"

	"decor-booking/internal/infra"
	"decor-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	ListCustomerBookings(ctx context.Context, email string) ([]*BookingView, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListDecoratorBookings(ctx context.Context, decoratorEmail string) ([]*BookingView, error)
	ListAllBookings(ctx context.Context, sort BookingSort) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, email string) ([]*BookingView, error)
	ListByDecorator(ctx context.Context, decoratorEmail string) ([]*BookingView, error)
	ListSorted(ctx context.Context, sort BookingSort) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

// ListCustomerBookings returns an empty list when no email is given.
func (q *bookingQueriesImpl) ListCustomerBookings(ctx context.Context, email string) ([]*BookingView, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return []*BookingView{}, nil
	}
	return q.readStore.ListByCustomer(ctx, strings.ToLower(email))
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListDecoratorBookings(ctx context.Context, decoratorEmail string) ([]*BookingView, error) {
	return q.readStore.ListByDecorator(ctx, strings.ToLower(decoratorEmail))
}

func (q *bookingQueriesImpl) ListAllBookings(ctx context.Context, sort BookingSort) ([]*BookingView, error) {
	if sort.Key != SortByDate && sort.Key != SortByStatus {
		sort = BookingSort{}
	}
	return q.readStore.ListSorted(ctx, sort)
}

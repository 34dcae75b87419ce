package readstore

import (
	"context"

	"decor-booking/internal/domain/booking"
	"decor-booking/internal/infra"
	"decor-booking/internal/infra/repository/converter"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"
	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	FindActiveBookingByKey(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveBookingByKeyParams) (sqlc.Bookings, error)
	ListBookingsByCustomer(ctx context.Context, db sqlc.DBTX, customerEmail string) ([]sqlc.Bookings, error)
	ListBookingsByDecorator(ctx context.Context, db sqlc.DBTX, decoratorEmail pgtype.Text) ([]sqlc.Bookings, error)
	ListBookingsSorted(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsSortedParams) ([]sqlc.Bookings, error)
	ListBookingsMissingPayment(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.FindBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr("booking", err)
	}
	view, err := toBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *BookingReadStore) ListByCustomer(ctx context.Context, email string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByCustomer(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	return r.views(rows)
}

func (r *BookingReadStore) ListByDecorator(ctx context.Context, decoratorEmail string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByDecorator(ctx, r.db, pgconv.StringToPgtype(decoratorEmail))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list decorator bookings", err)
	}
	return r.views(rows)
}

func (r *BookingReadStore) ListSorted(ctx context.Context, sort queries.BookingSort) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsSorted(ctx, r.db, sqlc.ListBookingsSortedParams{
		SortKey: sort.Key,
		SortAsc: sort.Asc,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return r.views(rows)
}

func (r *BookingReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr("booking", err)
	}
	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingReadStore) ActiveBookingByKey(ctx context.Context, key booking.LogicalKey) (*booking.Booking, error) {
	row, err := r.queries.FindActiveBookingByKey(ctx, r.db, sqlc.FindActiveBookingByKeyParams{
		CustomerEmail: key.CustomerEmail,
		ServiceID:     key.ServiceID,
		BookingDate:   pgconv.DateToPgtype(key.Date.Time()),
	})
	if err != nil {
		return nil, wrapFindErr("booking", err)
	}
	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingReadStore) MissingPayment(ctx context.Context, limit int32) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsMissingPayment(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings missing payment", err)
	}
	out, err := converter.BookingsFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *BookingReadStore) views(rows []sqlc.Bookings) ([]*queries.BookingView, error) {
	out, err := toBookingViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return out, nil
}

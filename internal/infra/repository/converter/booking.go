package converter

import (
	"fmt"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	svc := b.Service()
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		Price:         pgconv.NumericFromDecimal(svc.Price),
		CustomerEmail: b.CustomerEmail().Value(),
		CustomerName:  b.CustomerName(),
		BookingDate:   pgconv.DateToPgtype(b.Date().Time()),
		Address:       b.Address(),
		Status:        b.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingStateToInfra(b *booking.Booking) sqlc.UpdateBookingStateParams {
	params := sqlc.UpdateBookingStateParams{
		ID:            b.ID(),
		Status:        b.Status().String(),
		TransactionID: pgconv.StringPtrToPgtype(b.TransactionID()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	if d := b.Decorator(); d != nil {
		params.DecoratorID = pgconv.UUIDToPgtype(d.ID)
		params.DecoratorName = pgconv.StringToPgtype(d.Name)
		params.DecoratorEmail = pgconv.StringToPgtype(d.Email)
	} else {
		params.DecoratorID = pgtype.UUID{Valid: false}
		params.DecoratorName = pgtype.Text{Valid: false}
		params.DecoratorEmail = pgtype.Text{Valid: false}
	}
	return params
}

func BookingFromInfra(row sqlc.Bookings) (*booking.Booking, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, fmt.Errorf("booking %s price: %w", row.ID, err)
	}

	var decorator *booking.DecoratorRef
	if id := pgconv.UUIDPtrFromPgtype(row.DecoratorID); id != nil {
		decorator = &booking.DecoratorRef{
			ID:    *id,
			Name:  pgconv.StringFromPgtype(row.DecoratorName),
			Email: pgconv.StringFromPgtype(row.DecoratorEmail),
		}
	}

	return booking.ReconstructBooking(
		row.ID,
		booking.ServiceRef{ID: row.ServiceID, Name: row.ServiceName, Price: price},
		account.ReconstructEmail(row.CustomerEmail),
		row.CustomerName,
		booking.DateFromTime(pgconv.DateFromPgtype(row.BookingDate)),
		row.Address,
		booking.Status(row.Status),
		decorator,
		pgconv.StringPtrFromPgtype(row.TransactionID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromInfra(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromInfra(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

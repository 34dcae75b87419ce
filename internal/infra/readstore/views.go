package readstore

import (
	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"
	"decor-booking/internal/usecase/queries"
)

func toAccountView(row sqlc.Users) *queries.AccountView {
	return &queries.AccountView{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		PhotoURL:    row.PhotoUrl,
		Role:        account.ResolveRole(pgconv.StringPtrFromPgtype(row.Role)).String(),
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toAccountViews(rows []sqlc.Users) []*queries.AccountView {
	out := make([]*queries.AccountView, len(rows))
	for i, row := range rows {
		out[i] = toAccountView(row)
	}
	return out
}

func toServiceView(row sqlc.Services) (*queries.ServiceView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return &queries.ServiceView{
		ID:          row.ID,
		Name:        row.Name,
		Category:    row.Category,
		Price:       price,
		Unit:        row.Unit,
		Description: row.Description,
		ImageURL:    row.ImageUrl,
		CreatedBy:   row.CreatedByEmail,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toBookingView(row sqlc.Bookings) (*queries.BookingView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return &queries.BookingView{
		ID:             row.ID,
		ServiceID:      row.ServiceID,
		ServiceName:    row.ServiceName,
		Price:          price,
		CustomerEmail:  row.CustomerEmail,
		CustomerName:   row.CustomerName,
		Date:           pgconv.DateFromPgtype(row.BookingDate).Format(booking.DateLayout),
		Address:        row.Address,
		Status:         row.Status,
		DecoratorID:    pgconv.UUIDPtrFromPgtype(row.DecoratorID),
		DecoratorName:  pgconv.StringPtrFromPgtype(row.DecoratorName),
		DecoratorEmail: pgconv.StringPtrFromPgtype(row.DecoratorEmail),
		TransactionID:  pgconv.StringPtrFromPgtype(row.TransactionID),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toBookingViews(rows []sqlc.Bookings) ([]*queries.BookingView, error) {
	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toPaymentView(row sqlc.Payments) (*queries.PaymentView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return &queries.PaymentView{
		ID:            row.ID,
		TransactionID: row.TransactionID,
		BookingID:     row.BookingID,
		CustomerEmail: row.CustomerEmail,
		ServiceName:   row.ServiceName,
		Amount:        amount,
		Currency:      row.Currency,
		Status:        row.Status,
		PaidAt:        pgconv.TimeFromPgtype(row.PaidAt),
	}, nil
}

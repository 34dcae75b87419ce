package converter

import (
	"fmt"

	"decor-booking/internal/domain/payment"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/pgconv"
)

func PaymentToInfra(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:            p.ID(),
		TransactionID: p.TransactionID(),
		BookingID:     p.BookingID(),
		CustomerEmail: p.CustomerEmail(),
		ServiceName:   p.ServiceName(),
		Amount:        pgconv.NumericFromDecimal(p.Amount()),
		Currency:      p.Currency(),
		Status:        p.Status(),
		PaidAt:        pgconv.TimeToPgtype(p.PaidAt()),
	}
}

func PaymentFromInfra(row sqlc.Payments) (*payment.Payment, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, fmt.Errorf("payment %s amount: %w", row.TransactionID, err)
	}
	return payment.ReconstructPayment(
		row.ID,
		row.TransactionID,
		row.BookingID,
		row.CustomerEmail,
		row.ServiceName,
		amount,
		row.Currency,
		row.Status,
		pgconv.TimeFromPgtype(row.PaidAt),
	), nil
}

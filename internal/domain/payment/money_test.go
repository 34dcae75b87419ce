//go:build unit

package payment_test

import (
	"testing"
	"time"

	"decor-booking/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
		errIs  error
	}{
		{"15000.50", 1500050, nil},
		{"1", 100, nil},
		{"0.015", 2, nil},
		{"0", 0, payment.ErrInvalidAmount},
		{"-10", 0, payment.ErrInvalidAmount},
		{"1e20", 0, payment.ErrAmountOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := payment.ToMinorUnits(decimal.RequireFromString(tt.amount))
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, "15000.50", payment.FromMinorUnits(1500050).StringFixed(2))
	assert.True(t, payment.FromMinorUnits(100).Equal(decimal.NewFromInt(1)))
}

func TestNewPayment(t *testing.T) {
	paidAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	bookingID := uuid.New()
	amount := decimal.RequireFromString("2500")

	p, err := payment.NewPayment(" pi_123 ", bookingID, "Alice@Example.com", "Balloons", amount, "BDT", payment.StatusPaid, paidAt)
	require.NoError(t, err)
	assert.Equal(t, "pi_123", p.TransactionID())
	assert.Equal(t, "alice@example.com", p.CustomerEmail())
	assert.Equal(t, "bdt", p.Currency())
	assert.Equal(t, bookingID, p.BookingID())

	_, err = payment.NewPayment("", bookingID, "a@example.com", "x", amount, "bdt", payment.StatusPaid, paidAt)
	assert.ErrorIs(t, err, payment.ErrTransactionIDRequired)

	_, err = payment.NewPayment("pi", uuid.Nil, "a@example.com", "x", amount, "bdt", payment.StatusPaid, paidAt)
	assert.ErrorIs(t, err, payment.ErrBookingIDRequired)

	_, err = payment.NewPayment("pi", bookingID, "a@example.com", "x", decimal.Zero, "bdt", payment.StatusPaid, paidAt)
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)
}

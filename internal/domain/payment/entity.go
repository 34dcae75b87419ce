package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionIDRequired = errors.New("transaction id is required")
	ErrBookingIDRequired     = errors.New("booking id is required")
	ErrInvalidAmount         = errors.New("amount must be positive")
)

// StatusPaid is the provider payment status that allows a payment to be recorded.
const StatusPaid = "paid"

// Payment is immutable once recorded; TransactionID is unique across all payments.
type Payment struct {
	id            uuid.UUID
	transactionID string
	bookingID     uuid.UUID
	customerEmail string
	serviceName   string
	amount        decimal.Decimal
	currency      string
	status        string
	paidAt        time.Time
}

func NewPayment(transactionID string, bookingID uuid.UUID, customerEmail, serviceName string, amount decimal.Decimal, currency, status string, paidAt time.Time) (*Payment, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, ErrTransactionIDRequired
	}
	if bookingID == uuid.Nil {
		return nil, ErrBookingIDRequired
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:            uuid.New(),
		transactionID: transactionID,
		bookingID:     bookingID,
		customerEmail: strings.ToLower(strings.TrimSpace(customerEmail)),
		serviceName:   serviceName,
		amount:        amount,
		currency:      strings.ToLower(currency),
		status:        status,
		paidAt:        paidAt,
	}, nil
}

func ReconstructPayment(id uuid.UUID, transactionID string, bookingID uuid.UUID, customerEmail, serviceName string, amount decimal.Decimal, currency, status string, paidAt time.Time) *Payment {
	return &Payment{
		id:            id,
		transactionID: transactionID,
		bookingID:     bookingID,
		customerEmail: customerEmail,
		serviceName:   serviceName,
		amount:        amount,
		currency:      currency,
		status:        status,
		paidAt:        paidAt,
	}
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) TransactionID() string   { return p.transactionID }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) CustomerEmail() string   { return p.customerEmail }
func (p *Payment) ServiceName() string     { return p.serviceName }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Currency() string        { return p.currency }
func (p *Payment) Status() string          { return p.status }
func (p *Payment) PaidAt() time.Time       { return p.paidAt }

package booking

import (
	"strings"
	"time"

	"decor-booking/internal/domain/account"

	"github.com/google/uuid"
)

type Booking struct {
	id            uuid.UUID
	service       ServiceRef
	customerEmail account.Email
	customerName  string
	date          Date
	address       string
	status        Status
	decorator     *DecoratorRef
	transactionID *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(service ServiceRef, customer account.Email, customerName string, date Date, address string, now time.Time) (*Booking, error) {
	if service.ID == uuid.Nil {
		return nil, ErrServiceRequired
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrAddressRequired
	}
	return &Booking{
		id:            uuid.New(),
		service:       service,
		customerEmail: customer,
		customerName:  strings.TrimSpace(customerName),
		date:          date,
		address:       address,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	service ServiceRef,
	customer account.Email,
	customerName string,
	date Date,
	address string,
	status Status,
	decorator *DecoratorRef,
	transactionID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		service:       service,
		customerEmail: customer,
		customerName:  customerName,
		date:          date,
		address:       address,
		status:        status,
		decorator:     decorator,
		transactionID: transactionID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Service() ServiceRef          { return b.service }
func (b *Booking) CustomerEmail() account.Email { return b.customerEmail }
func (b *Booking) CustomerName() string         { return b.customerName }
func (b *Booking) Date() Date                   { return b.date }
func (b *Booking) Address() string              { return b.address }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Decorator() *DecoratorRef     { return b.decorator }
func (b *Booking) TransactionID() *string       { return b.transactionID }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) Key() LogicalKey {
	return LogicalKey{
		CustomerEmail: b.customerEmail.Value(),
		ServiceID:     b.service.ID,
		Date:          b.date,
	}
}

func (b *Booking) IsOwnedBy(email string) bool {
	return b.customerEmail.Equals(email)
}

// Cancel returns false when the booking was already canceled.
func (b *Booking) Cancel(now time.Time) bool {
	if b.status == StatusCanceled {
		return false
	}
	b.status = StatusCanceled
	b.updatedAt = now
	return true
}

// MarkPaid is reserved for payment confirmation.
func (b *Booking) MarkPaid(transactionID string, now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusPaid
	b.transactionID = &transactionID
	b.updatedAt = now
	return nil
}

// AssignDecorator also covers reassignment of an already assigned booking.
func (b *Booking) AssignDecorator(ref DecoratorRef, now time.Time) error {
	if ref.ID == uuid.Nil {
		return ErrDecoratorRequired
	}
	if b.status != StatusPaid && b.status != StatusAssigned {
		return ErrInvalidTransition
	}
	b.decorator = &ref
	b.status = StatusAssigned
	b.updatedAt = now
	return nil
}

// UpdateWorkStatus returns false when the status is unchanged.
func (b *Booking) UpdateWorkStatus(decoratorEmail string, status Status, now time.Time) (bool, error) {
	if b.decorator == nil || !account.SameEmail(b.decorator.Email, decoratorEmail) {
		return false, ErrNotAssignedDecorator
	}
	if !status.IsWorkStatus() {
		return false, ErrInvalidWorkStatus
	}
	if b.status == status {
		return false, nil
	}
	if b.status != StatusAssigned && (!b.status.IsWorkStatus() || b.status.IsTerminal()) {
		return false, ErrInvalidTransition
	}
	b.status = status
	b.updatedAt = now
	return true, nil
}

package shared

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	AggregateBooking = "booking"
	AggregatePayment = "payment"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingCanceled      = "booking.canceled"
	EventBookingAssigned      = "booking.assigned"
	EventBookingStatusUpdated = "booking.status_updated"
	EventPaymentConfirmed     = "payment.confirmed"
)

type OutboxEvent struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	Attempts      int32
	CreatedAt     time.Time
}

func NewOutboxEvent(aggregateType string, aggregateID uuid.UUID, eventType string, payload any, now time.Time) (OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, err
	}
	return OutboxEvent{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       body,
		CreatedAt:     now,
	}, nil
}

type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// UpdateResult mirrors the matched/modified counts reported by update endpoints.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

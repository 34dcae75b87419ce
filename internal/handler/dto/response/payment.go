package response

import (
	"time"

	"decor-booking/internal/domain/payment"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AlreadyProcessedMessage = "already exists"
	NotPaidMessage          = "Payment status not 'paid'."
)

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	TransactionID string          `json:"transactionId"`
	BookingID     uuid.UUID       `json:"bookingId"`
	CustomerEmail string          `json:"customerEmail"`
	ServiceName   string          `json:"serviceName"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"paymentStatus"`
	PaidAt        time.Time       `json:"paidAt"`
}

func FromPaymentViews(vs []*queries.PaymentView) []*PaymentResponse {
	return copyAll[queries.PaymentView, PaymentResponse](vs)
}

func fromPayment(p *payment.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:            p.ID(),
		TransactionID: p.TransactionID(),
		BookingID:     p.BookingID(),
		CustomerEmail: p.CustomerEmail(),
		ServiceName:   p.ServiceName(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		Status:        p.Status(),
		PaidAt:        p.PaidAt(),
	}
}

type PaymentSuccessResponse struct {
	Success          bool             `json:"success"`
	Message          string           `json:"message,omitempty"`
	AlreadyProcessed bool             `json:"alreadyProcessed,omitempty"`
	TransactionID    string           `json:"transactionId,omitempty"`
	ModifyBooking    *UpdateResponse  `json:"modifyBooking,omitempty"`
	PaymentInfo      *PaymentResponse `json:"paymentInfo,omitempty"`
}

func FromConfirmResult(r *commands.ConfirmPaymentResult) *PaymentSuccessResponse {
	switch r.Outcome {
	case commands.OutcomeAlreadyProcessed:
		return &PaymentSuccessResponse{
			Success:          true,
			Message:          AlreadyProcessedMessage,
			AlreadyProcessed: true,
			TransactionID:    r.TransactionID,
			PaymentInfo:      fromPayment(r.Payment),
		}
	case commands.OutcomeConfirmed:
		return &PaymentSuccessResponse{
			Success:       true,
			TransactionID: r.TransactionID,
			ModifyBooking: &UpdateResponse{
				Acknowledged:  true,
				MatchedCount:  1,
				ModifiedCount: r.BookingModified,
			},
			PaymentInfo: fromPayment(r.Payment),
		}
	default:
		return &PaymentSuccessResponse{Success: false, Message: NotPaidMessage}
	}
}

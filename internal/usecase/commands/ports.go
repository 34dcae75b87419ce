package commands

import (
	"context"
	"time"

	"decor-booking/internal/pkg/errs"
)

var (
	ErrSessionNotFound = errs.New("checkout session not found")
	ErrLockNotAcquired = errs.New("lock held by another confirmation")
)

const PaymentStatusPaid = "paid"

// CheckoutRequest is what the provider needs to open a hosted checkout page.
type CheckoutRequest struct {
	BookingID     string
	ServiceName   string
	CustomerEmail string
	AmountMinor   int64
	Currency      string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the provider-side view of a checkout.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentIntentID string
	PaymentStatus   string
	AmountTotal     int64
	Currency        string
	CustomerEmail   string
	Metadata        map[string]string
}

type CheckoutGateway interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	// GetSession returns ErrSessionNotFound for unknown ids.
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	// FindSessionByPaymentIntent returns ErrSessionNotFound when no session references the intent.
	FindSessionByPaymentIntent(ctx context.Context, paymentIntentID string) (*CheckoutSession, error)
}

// Locker grants short-lived exclusive ownership of a key across processes.
type Locker interface {
	// TryLock returns ErrLockNotAcquired when another holder owns key.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

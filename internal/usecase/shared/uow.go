package shared

import (
	"context"
	"time"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	"decor-booking/internal/domain/catalog"
	"decor-booking/internal/domain/payment"
	sqlc "decor-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Accounts() AccountRepository
	Services() ServiceRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Outbox() OutboxRepository
	Contacts() ContactRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads returns domain aggregates; a missing row surfaces as infra.KindNotFound.
type CommandReads interface {
	AccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	AccountByEmail(ctx context.Context, email string) (*account.Account, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ActiveBookingByKey(ctx context.Context, key booking.LogicalKey) (*booking.Booking, error)
	PaymentByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error)
	BookingsMissingPayment(ctx context.Context, limit int32) ([]*booking.Booking, error)
}

type AccountRepository interface {
	// CreateIfAbsent reports false when an account with the same email already exists.
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, acc *account.Account) (bool, error)
	UpdateRole(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, role account.Role) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status account.Status) (int64, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, svc *catalog.Service) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, svc *catalog.Service) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	Save(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (uuid.UUID, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, ev OutboxEvent) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int32) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int32) error
}

type ContactRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, msg ContactMessage) (uuid.UUID, error)
}

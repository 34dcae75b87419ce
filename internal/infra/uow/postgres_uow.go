package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	"decor-booking/internal/domain/catalog"
	"decor-booking/internal/domain/payment"
	"decor-booking/internal/infra/readstore"
	"decor-booking/internal/infra/repository"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/pkg/obs"
	"decor-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"

	maxTxAttempts = 4
	retryBase     = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn in a read-committed transaction. Serialization failures
// and deadlocks rerun fn from scratch, so fn must not have side effects
// outside tx.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	ctx, span := obs.StartSpan(ctx, "uow.Within")
	defer func() { obs.EndSpan(span, err) }()

	for attempt := 1; ; attempt++ {
		err = u.attempt(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt == maxTxAttempts {
			slog.Error("transaction failed after max retries", "attempts", attempt, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := backoff(attempt)
		span.AddEvent("retry", trace.WithAttributes(attribute.Int("attempt", attempt)))
		slog.Warn("retrying transaction", "attempt", attempt, "wait_ms", wait.Milliseconds(), "error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// attempt owns exactly one pgx transaction so no defers pile up across retries.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func backoff(attempt int) time.Duration {
	wait := retryBase << (attempt - 1)
	return wait + rand.N(wait/5+1)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	accountRepo  shared.AccountRepository
	serviceRepo  shared.ServiceRepository
	bookingRepo  shared.BookingRepository
	paymentRepo  shared.PaymentRepository
	outboxRepo   shared.OutboxRepository
	contactRepo  shared.ContactRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accountRepo == nil {
		t.accountRepo = repository.NewAccountRepository(t.uow.q)
	}
	return t.accountRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository(t.uow.q)
	}
	return t.serviceRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q)
	}
	return t.paymentRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q)
	}
	return t.outboxRepo
}

func (t *pgTx) Contacts() shared.ContactRepository {
	if t.contactRepo == nil {
		t.contactRepo = repository.NewContactRepository(t.uow.q)
	}
	return t.contactRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads binds readstores to the current transaction, or to the pool outside one.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	accountStore *readstore.AccountReadStore
	serviceStore *readstore.ServiceReadStore
	bookingStore *readstore.BookingReadStore
	paymentStore *readstore.PaymentReadStore
}

func (r *commandReads) accounts() *readstore.AccountReadStore {
	if r.accountStore == nil {
		r.accountStore = readstore.NewAccountReadStore(r.uow.q, r.dbtx)
	}
	return r.accountStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) AccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.accounts().AccountByID(ctx, id)
}

func (r *commandReads) AccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.accounts().AccountByEmail(ctx, email)
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	if r.serviceStore == nil {
		r.serviceStore = readstore.NewServiceReadStore(r.uow.q, r.dbtx)
	}
	return r.serviceStore.ServiceByID(ctx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings().BookingByID(ctx, id)
}

func (r *commandReads) ActiveBookingByKey(ctx context.Context, key booking.LogicalKey) (*booking.Booking, error) {
	return r.bookings().ActiveBookingByKey(ctx, key)
}

func (r *commandReads) PaymentByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.uow.q, r.dbtx)
	}
	return r.paymentStore.PaymentByTransactionID(ctx, transactionID)
}

func (r *commandReads) BookingsMissingPayment(ctx context.Context, limit int32) ([]*booking.Booking, error) {
	return r.bookings().MissingPayment(ctx, limit)
}

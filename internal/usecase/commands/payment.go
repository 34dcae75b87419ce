package commands

import (
	"context"
	"log/slog"
	"strings"

	"decor-booking/internal/domain/booking"
	"decor-booking/internal/domain/payment"
	"decor-booking/internal/infra"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/config"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/pkg/obs"
	"decor-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

var (
	ErrMetadataMissing        = errs.New("checkout session has no booking metadata")
	ErrConfirmationInProgress = errs.New("payment confirmation already in progress")
	ErrBookingNotPending      = errs.New("booking is not awaiting payment")
)

const (
	metadataBookingID   = "bookingId"
	metadataServiceName = "serviceName"

	successPath = "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"
	cancelPath  = "/dashboard/my-bookings"
)

type ConfirmOutcome string

const (
	OutcomeConfirmed        ConfirmOutcome = "confirmed"
	OutcomeAlreadyProcessed ConfirmOutcome = "already_processed"
	OutcomeNotPaid          ConfirmOutcome = "not_paid"
)

type CheckoutSessionRequest struct {
	BookingID     string
	Cost          decimal.Decimal
	ServiceName   string
	CustomerEmail string
}

type CheckoutSessionResult struct {
	SessionID string
	URL       string
}

type ConfirmPaymentResult struct {
	Outcome         ConfirmOutcome
	TransactionID   string
	Payment         *payment.Payment
	BookingModified int64
}

type PaymentCommands interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest, principalEmail string) (*CheckoutSessionResult, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmPaymentResult, error)
	// ReconcileOrphans repairs bookings that carry a transaction id without a payment row.
	ReconcileOrphans(ctx context.Context, limit int32) (int, error)
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  CheckoutGateway
	locker   Locker
	clock    clock.Clock
	cfg      config.PaymentConfig
	lockCfg  config.LockConfig
	inflight singleflight.Group
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	gateway CheckoutGateway,
	locker Locker,
	clk clock.Clock,
	cfg config.PaymentConfig,
	lockCfg config.LockConfig,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:     uow,
		gateway: gateway,
		locker:  locker,
		clock:   clk,
		cfg:     cfg,
		lockCfg: lockCfg,
	}
}

type paymentConfirmedEvent struct {
	TransactionID string          `json:"transaction_id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	CustomerEmail string          `json:"customer_email"`
	ServiceName   string          `json:"service_name"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

func (uc *paymentUseCaseImpl) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest, principalEmail string) (*CheckoutSessionResult, error) {
	if strings.TrimSpace(req.BookingID) == "" {
		return nil, invalid(errs.New("bookingId is required"))
	}
	bookingID, err := uuid.Parse(strings.TrimSpace(req.BookingID))
	if err != nil {
		return nil, invalid(errs.Wrap(err, "invalid booking id"))
	}
	if !req.Cost.IsPositive() {
		return nil, invalid(payment.ErrInvalidAmount)
	}
	amount, err := payment.ToMinorUnits(req.Cost)
	if err != nil {
		return nil, invalid(err)
	}

	b, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	if b.Status() != booking.StatusPending {
		return nil, errs.Mark(ErrBookingNotPending, ErrInvalidTransition)
	}

	serviceName := strings.TrimSpace(req.ServiceName)
	if serviceName == "" {
		serviceName = b.Service().Name
	}
	customerEmail := strings.TrimSpace(req.CustomerEmail)
	if customerEmail == "" {
		customerEmail = principalEmail
	}

	domain := strings.TrimRight(uc.cfg.SiteDomain, "/")
	session, err := uc.gateway.CreateSession(ctx, CheckoutRequest{
		BookingID:     bookingID.String(),
		ServiceName:   serviceName,
		CustomerEmail: customerEmail,
		AmountMinor:   amount,
		Currency:      uc.cfg.Currency,
		SuccessURL:    domain + successPath,
		CancelURL:     domain + cancelPath,
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutSessionResult{SessionID: session.ID, URL: session.URL}, nil
}

// ConfirmPayment is safe to call repeatedly and concurrently for the same session.
func (uc *paymentUseCaseImpl) ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmPaymentResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, invalid(errs.New("session_id is required"))
	}

	// Merged callers share one confirmation that outlives any single client.
	ran := false
	ch := uc.inflight.DoChan(sessionID, func() (any, error) {
		ran = true
		workCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.lockCfg.TTL)
		defer cancel()
		return uc.confirm(workCtx, sessionID)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		result := r.Val.(*ConfirmPaymentResult)
		if ran || result.Outcome != OutcomeConfirmed {
			return result, nil
		}
		// only the caller that recorded the payment reports it as new
		dup := *result
		dup.Outcome = OutcomeAlreadyProcessed
		return &dup, nil
	}
}

func (uc *paymentUseCaseImpl) confirm(ctx context.Context, sessionID string) (result *ConfirmPaymentResult, err error) {
	ctx, span := obs.StartSpan(ctx, "payment.confirm", attribute.String("checkout.session_id", sessionID))
	defer func() { obs.EndSpan(span, err) }()

	session, err := uc.gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rawBookingID := strings.TrimSpace(session.Metadata[metadataBookingID])
	if rawBookingID == "" {
		return nil, ErrMetadataMissing
	}
	bookingID, err := uuid.Parse(rawBookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrMetadataMissing)
	}

	txID := session.PaymentIntentID
	if txID == "" {
		// no payment intent yet means nothing was charged
		return &ConfirmPaymentResult{Outcome: OutcomeNotPaid}, nil
	}
	span.SetAttributes(attribute.String("payment.transaction_id", txID))

	release, err := uc.locker.TryLock(ctx, "payment:"+txID, uc.lockCfg.TTL)
	if err != nil {
		if errs.Is(err, ErrLockNotAcquired) {
			return nil, ErrConfirmationInProgress
		}
		return nil, err
	}
	defer func() {
		if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
			slog.Warn("failed to release payment lock", "transaction_id", txID, "error", rerr.Error())
		}
	}()

	existing, err := uc.existingPayment(ctx, txID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &ConfirmPaymentResult{Outcome: OutcomeAlreadyProcessed, TransactionID: txID, Payment: existing}, nil
	}

	if session.PaymentStatus != PaymentStatusPaid {
		return &ConfirmPaymentResult{Outcome: OutcomeNotPaid, TransactionID: txID}, nil
	}

	result, err = uc.record(ctx, session, bookingID, txID)
	if err != nil && infra.IsKind(err, infra.KindDuplicateKey) {
		existing, ferr := uc.existingPayment(ctx, txID)
		if ferr != nil {
			return nil, ferr
		}
		return &ConfirmPaymentResult{Outcome: OutcomeAlreadyProcessed, TransactionID: txID, Payment: existing}, nil
	}
	return result, err
}

func (uc *paymentUseCaseImpl) record(ctx context.Context, session *CheckoutSession, bookingID uuid.UUID, txID string) (*ConfirmPaymentResult, error) {
	result := &ConfirmPaymentResult{Outcome: OutcomeConfirmed, TransactionID: txID}
	now := uc.clock.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if derr != nil {
			return derr
		}

		serviceName := session.Metadata[metadataServiceName]
		if serviceName == "" {
			serviceName = b.Service().Name
		}
		customerEmail := session.CustomerEmail
		if customerEmail == "" {
			customerEmail = b.CustomerEmail().Value()
		}

		p, derr := payment.NewPayment(
			txID, bookingID, customerEmail, serviceName,
			payment.FromMinorUnits(session.AmountTotal), session.Currency,
			payment.StatusPaid, now,
		)
		if derr != nil {
			return invalid(derr)
		}
		if _, derr = tx.Payments().Create(ctx, tx.DB(), p); derr != nil {
			return derr
		}
		result.Payment = p

		if b.Status() == booking.StatusPending {
			if derr = b.MarkPaid(txID, now); derr != nil {
				return derr
			}
			n, serr := tx.Bookings().Save(ctx, tx.DB(), b)
			if serr != nil {
				return serr
			}
			result.BookingModified = n
		} else {
			slog.Warn("payment recorded for booking that is not pending",
				"booking_id", bookingID.String(),
				"status", b.Status().String(),
				"transaction_id", txID)
		}

		return appendEvent(ctx, tx, shared.AggregatePayment, p.ID(), shared.EventPaymentConfirmed, paymentConfirmedEvent{
			TransactionID: txID,
			BookingID:     bookingID,
			CustomerEmail: customerEmail,
			ServiceName:   serviceName,
			Amount:        p.Amount(),
			Currency:      p.Currency(),
		}, uc.clock)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case errs.Is(err, ErrValidation):
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return result, nil
}

func (uc *paymentUseCaseImpl) existingPayment(ctx context.Context, txID string) (*payment.Payment, error) {
	p, err := uc.uow.CommandReads().PaymentByTransactionID(ctx, txID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return p, nil
}

func (uc *paymentUseCaseImpl) ReconcileOrphans(ctx context.Context, limit int32) (int, error) {
	orphans, err := uc.uow.CommandReads().BookingsMissingPayment(ctx, limit)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseFailure)
	}

	repaired := 0
	for _, b := range orphans {
		if err := ctx.Err(); err != nil {
			return repaired, err
		}
		txID := b.TransactionID()
		if txID == nil {
			continue
		}

		session, ferr := uc.gateway.FindSessionByPaymentIntent(ctx, *txID)
		if ferr != nil {
			slog.Warn("reconcile: checkout session lookup failed",
				"booking_id", b.ID().String(),
				"transaction_id", *txID,
				"error", ferr.Error())
			continue
		}

		res, cerr := uc.ConfirmPayment(ctx, session.ID)
		if cerr != nil {
			slog.Warn("reconcile: confirmation failed",
				"booking_id", b.ID().String(),
				"transaction_id", *txID,
				"error", cerr.Error())
			continue
		}
		if res.Outcome == OutcomeConfirmed {
			repaired++
		}
	}
	return repaired, nil
}

//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"decor-booking/internal/domain/booking"
	"decor-booking/internal/domain/payment"
	"decor-booking/internal/infra/lock"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/config"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/shared"
	"decor-booking/tests/common/builder"
	"decor-booking/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	store   *fakes.Store
	gateway *fakes.CheckoutGateway
	locker  *lock.LocalLocker
	clock   *clock.MockClock
	uc      commands.PaymentCommands
	booking *booking.Booking
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.store = fakes.NewStore()
	s.gateway = fakes.NewCheckoutGateway()
	s.clock = clock.NewMockClock(fixedNow)
	s.locker = lock.NewLocalLocker(s.clock)
	s.uc = commands.NewPaymentUseCase(s.store, s.gateway, s.locker, s.clock,
		config.PaymentConfig{Currency: "bdt", SiteDomain: "https://decor.test/"},
		config.LockConfig{TTL: 5 * time.Second},
	)

	s.booking = builder.NewBookingBuilder().BuildDomain()
	s.store.PutBooking(s.booking)
}

// checkout opens a session for the seeded booking.
func (s *PaymentCommandsTestSuite) checkout() string {
	res, err := s.uc.CreateCheckoutSession(context.Background(), commands.CheckoutSessionRequest{
		BookingID: s.booking.ID().String(),
		Cost:      decimal.RequireFromString("15000.50"),
	}, "customer@example.com")
	s.Require().NoError(err)
	return res.SessionID
}

func (s *PaymentCommandsTestSuite) TestCreateCheckoutSession() {
	ctx := context.Background()

	s.Run("amount is sent in minor units", func() {
		res, err := s.uc.CreateCheckoutSession(ctx, commands.CheckoutSessionRequest{
			BookingID:   s.booking.ID().String(),
			Cost:        decimal.RequireFromString("15000.50"),
			ServiceName: "Stage",
		}, "customer@example.com")
		s.Require().NoError(err)
		s.NotEmpty(res.URL)

		reqs := s.gateway.Requests()
		s.Require().Len(reqs, 1)
		s.EqualValues(1500050, reqs[0].AmountMinor)
		s.Equal("bdt", reqs[0].Currency)
		s.Equal("Stage", reqs[0].ServiceName)
		s.Equal("customer@example.com", reqs[0].CustomerEmail)
		s.Equal("https://decor.test/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}", reqs[0].SuccessURL)
		s.Equal("https://decor.test/dashboard/my-bookings", reqs[0].CancelURL)
	})

	s.Run("service name falls back to the booking", func() {
		s.checkout()
		reqs := s.gateway.Requests()
		s.Equal("Wedding Stage Decoration", reqs[len(reqs)-1].ServiceName)
	})

	tests := []struct {
		name  string
		req   commands.CheckoutSessionRequest
		errIs error
	}{
		{"missing booking id", commands.CheckoutSessionRequest{Cost: decimal.NewFromInt(10)}, commands.ErrValidation},
		{"zero cost", commands.CheckoutSessionRequest{BookingID: s.booking.ID().String()}, commands.ErrValidation},
		{"unknown booking", commands.CheckoutSessionRequest{BookingID: uuid.NewString(), Cost: decimal.NewFromInt(10)}, commands.ErrBookingNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.CreateCheckoutSession(ctx, tt.req, "customer@example.com")
			s.True(errs.Is(err, tt.errIs), "got %v", err)
		})
	}

	s.Run("only pending bookings can be paid", func() {
		paid := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).BuildDomain()
		s.store.PutBooking(paid)

		_, err := s.uc.CreateCheckoutSession(ctx, commands.CheckoutSessionRequest{
			BookingID: paid.ID().String(),
			Cost:      decimal.NewFromInt(10),
		}, "customer@example.com")
		s.True(errs.Is(err, commands.ErrInvalidTransition))
	})
}

func (s *PaymentCommandsTestSuite) TestConfirmPayment() {
	ctx := context.Background()
	sessionID := s.checkout()
	txID := s.gateway.Pay(sessionID)

	first, err := s.uc.ConfirmPayment(ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeConfirmed, first.Outcome)
	s.Equal(txID, first.TransactionID)
	s.EqualValues(1, first.BookingModified)
	s.Require().NotNil(first.Payment)
	s.Equal("15000.50", first.Payment.Amount().StringFixed(2))
	s.Equal("customer@example.com", first.Payment.CustomerEmail())

	got, _ := s.store.Booking(s.booking.ID())
	s.Equal(booking.StatusPaid, got.Status())
	s.Require().NotNil(got.TransactionID())
	s.Equal(txID, *got.TransactionID())

	second, err := s.uc.ConfirmPayment(ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeAlreadyProcessed, second.Outcome)
	s.Equal(first.Payment.ID(), second.Payment.ID())

	s.Len(s.store.Payments(), 1)
	s.Equal([]string{shared.EventPaymentConfirmed}, s.store.Events())
}

func (s *PaymentCommandsTestSuite) TestConfirmPaymentConcurrent() {
	ctx := context.Background()
	sessionID := s.checkout()
	s.gateway.Pay(sessionID)
	s.gateway.SetLatency(50 * time.Millisecond)

	const callers = 10
	var wg sync.WaitGroup
	outcomes := make(chan commands.ConfirmOutcome, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.uc.ConfirmPayment(ctx, sessionID)
			if !s.NoError(err) {
				return
			}
			outcomes <- res.Outcome
		}()
	}
	wg.Wait()
	close(outcomes)

	counts := map[commands.ConfirmOutcome]int{}
	for o := range outcomes {
		counts[o]++
	}
	s.Equal(map[commands.ConfirmOutcome]int{
		commands.OutcomeConfirmed:        1,
		commands.OutcomeAlreadyProcessed: callers - 1,
	}, counts)
	s.Len(s.store.Payments(), 1)
	s.Equal([]string{shared.EventPaymentConfirmed}, s.store.Events())

	got, _ := s.store.Booking(s.booking.ID())
	s.Equal(booking.StatusPaid, got.Status())
}

func (s *PaymentCommandsTestSuite) TestConfirmPaymentFirstCallerDisconnects() {
	sessionID := s.checkout()
	txID := s.gateway.Pay(sessionID)
	s.gateway.SetLatency(200 * time.Millisecond)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := s.uc.ConfirmPayment(firstCtx, sessionID)
		firstErr <- err
	}()
	s.Eventually(func() bool { return s.gateway.Lookups() == 1 }, time.Second, time.Millisecond)

	type reply struct {
		res *commands.ConfirmPaymentResult
		err error
	}
	second := make(chan reply, 1)
	go func() {
		res, err := s.uc.ConfirmPayment(context.Background(), sessionID)
		second <- reply{res, err}
	}()
	time.Sleep(20 * time.Millisecond)
	cancelFirst()

	s.ErrorIs(<-firstErr, context.Canceled)

	r := <-second
	s.Require().NoError(r.err)
	s.Equal(txID, r.res.TransactionID)
	s.Contains([]commands.ConfirmOutcome{commands.OutcomeConfirmed, commands.OutcomeAlreadyProcessed}, r.res.Outcome)
	s.Len(s.store.Payments(), 1)

	got, _ := s.store.Booking(s.booking.ID())
	s.Equal(booking.StatusPaid, got.Status())
}

func (s *PaymentCommandsTestSuite) TestConfirmPaymentLostRace() {
	ctx := context.Background()
	sessionID := s.checkout()
	txID := s.gateway.Pay(sessionID)

	// another instance records the payment right after our existence check
	var winner *payment.Payment
	s.store.Hooks.AfterPaymentLookup = func(st *fakes.Store) {
		st.Hooks.AfterPaymentLookup = nil
		p, err := payment.NewPayment(txID, s.booking.ID(), "customer@example.com", "Wedding Stage Decoration",
			decimal.RequireFromString("15000.50"), "bdt", payment.StatusPaid, fixedNow)
		s.Require().NoError(err)
		winner = p
		st.InsertPaymentLocked(p)
	}

	res, err := s.uc.ConfirmPayment(ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeAlreadyProcessed, res.Outcome)
	s.Equal(winner.ID(), res.Payment.ID())
	s.Len(s.store.Payments(), 1)
	s.Empty(s.store.Events())
}

func (s *PaymentCommandsTestSuite) TestConfirmPaymentNotPaid() {
	ctx := context.Background()

	s.Run("no payment intent yet", func() {
		sessionID := s.checkout()
		res, err := s.uc.ConfirmPayment(ctx, sessionID)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeNotPaid, res.Outcome)
	})

	s.Run("intent exists but is unpaid", func() {
		sessionID := s.checkout()
		s.gateway.StartPayment(sessionID)
		res, err := s.uc.ConfirmPayment(ctx, sessionID)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeNotPaid, res.Outcome)
	})

	s.Empty(s.store.Payments())
	s.Empty(s.store.Events())
	got, _ := s.store.Booking(s.booking.ID())
	s.Equal(booking.StatusPending, got.Status())
}

func (s *PaymentCommandsTestSuite) TestConfirmPaymentErrors() {
	ctx := context.Background()

	s.Run("unknown session", func() {
		_, err := s.uc.ConfirmPayment(ctx, "cs_missing")
		s.True(errs.Is(err, commands.ErrSessionNotFound))
	})

	s.Run("empty session id", func() {
		_, err := s.uc.ConfirmPayment(ctx, "  ")
		s.True(errs.Is(err, commands.ErrValidation))
	})

	s.Run("session without booking metadata", func() {
		s.gateway.Put(commands.CheckoutSession{
			ID:              "cs_foreign",
			PaymentIntentID: "pi_foreign",
			PaymentStatus:   commands.PaymentStatusPaid,
			AmountTotal:     1000,
		})
		_, err := s.uc.ConfirmPayment(ctx, "cs_foreign")
		s.True(errs.Is(err, commands.ErrMetadataMissing))
	})

	s.Run("another confirmation holds the lock", func() {
		sessionID := s.checkout()
		txID := s.gateway.Pay(sessionID)

		release, err := s.locker.TryLock(ctx, "payment:"+txID, time.Minute)
		s.Require().NoError(err)
		defer func() { s.NoError(release(ctx)) }()

		_, err = s.uc.ConfirmPayment(ctx, sessionID)
		s.True(errs.Is(err, commands.ErrConfirmationInProgress))
	})

	s.Empty(s.store.Payments())
}

func (s *PaymentCommandsTestSuite) TestConfirmPaymentForCanceledBooking() {
	ctx := context.Background()
	sessionID := s.checkout()
	s.gateway.Pay(sessionID)

	canceled := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = s.booking.ID() }).
		WithStatus(booking.StatusCanceled).BuildDomain()
	s.store.PutBooking(canceled)

	res, err := s.uc.ConfirmPayment(ctx, sessionID)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeConfirmed, res.Outcome)
	s.EqualValues(0, res.BookingModified)

	got, _ := s.store.Booking(s.booking.ID())
	s.Equal(booking.StatusCanceled, got.Status())
	s.Len(s.store.Payments(), 1)
}

func (s *PaymentCommandsTestSuite) TestReconcileOrphans() {
	ctx := context.Background()
	sessionID := s.checkout()
	txID := s.gateway.Pay(sessionID)

	// booking was marked paid but the payment row never landed
	orphan := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ID = s.booking.ID()
		b.TransactionID = &txID
	}).WithStatus(booking.StatusPaid).BuildDomain()
	s.store.PutBooking(orphan)

	stray := "pi_unknown"
	unknown := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.TransactionID = &stray
		b.Date = "2026-01-01"
	}).WithStatus(booking.StatusPaid).BuildDomain()
	s.store.PutBooking(unknown)

	repaired, err := s.uc.ReconcileOrphans(ctx, 10)
	s.Require().NoError(err)
	s.Equal(1, repaired)

	payments := s.store.Payments()
	s.Require().Len(payments, 1)
	s.Equal(txID, payments[0].TransactionID())

	again, err := s.uc.ReconcileOrphans(ctx, 10)
	s.Require().NoError(err)
	s.Equal(0, again)
}

func TestPaymentCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

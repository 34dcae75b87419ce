//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/shared"
	"decor-booking/tests/common/builder"
	"decor-booking/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type BookingCommandsTestSuite struct {
	suite.Suite
	store     *fakes.Store
	clock     *clock.MockClock
	uc        commands.BookingCommands
	service   uuid.UUID
	admin     *account.Account
	decorator *account.Account
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.store = fakes.NewStore()
	s.clock = clock.NewMockClock(fixedNow)
	s.uc = commands.NewBookingUseCase(s.store, s.clock)

	svc := builder.NewServiceBuilder().BuildDomain()
	s.store.PutService(svc)
	s.service = svc.ID()

	s.admin = builder.NewAccountBuilder().WithEmail("admin@example.com").WithRole(account.RoleAdmin).BuildDomain()
	s.decorator = builder.NewAccountBuilder().WithEmail("deco@example.com").WithRole(account.RoleDecorator).BuildDomain()
	s.store.PutAccount(s.admin)
	s.store.PutAccount(s.decorator)
}

func (s *BookingCommandsTestSuite) request() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ServiceID:     s.service.String(),
		CustomerEmail: "customer@example.com",
		CustomerName:  "Test Customer",
		Date:          "2025-12-24",
		Address:       "House 12, Road 5, Dhanmondi",
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("creates a pending booking and an event", func() {
		res, err := s.uc.CreateBooking(ctx, s.request(), "Customer@Example.com")
		s.Require().NoError(err)
		s.Require().NotNil(res.BookingID)
		s.False(res.Duplicate)

		b, ok := s.store.Booking(*res.BookingID)
		s.Require().True(ok)
		s.Equal(booking.StatusPending, b.Status())
		s.Equal("Wedding Stage Decoration", b.Service().Name)
		s.Equal([]string{shared.EventBookingCreated}, s.store.Events())
	})

	s.Run("same key while active is a duplicate", func() {
		res, err := s.uc.CreateBooking(ctx, s.request(), "customer@example.com")
		s.Require().NoError(err)
		s.True(res.Duplicate)
		s.Nil(res.BookingID)
		s.Len(s.store.Bookings(), 1)
	})

	s.Run("a different date is a new booking", func() {
		req := s.request()
		req.Date = "2025-12-25"
		res, err := s.uc.CreateBooking(ctx, req, "customer@example.com")
		s.Require().NoError(err)
		s.False(res.Duplicate)
		s.Len(s.store.Bookings(), 2)
	})

	s.Run("canceled bookings do not block the key", func() {
		for _, b := range s.store.Bookings() {
			_, err := s.uc.CancelBooking(ctx, b.ID(), "customer@example.com")
			s.Require().NoError(err)
		}
		res, err := s.uc.CreateBooking(ctx, s.request(), "customer@example.com")
		s.Require().NoError(err)
		s.False(res.Duplicate)
		s.NotNil(res.BookingID)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookingValidation() {
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(*commands.CreateBookingRequest)
		principal string
		errIs     error
	}{
		{"missing address", func(r *commands.CreateBookingRequest) { r.Address = "" }, "customer@example.com", commands.ErrValidation},
		{"missing date", func(r *commands.CreateBookingRequest) { r.Date = " " }, "customer@example.com", commands.ErrValidation},
		{"malformed date", func(r *commands.CreateBookingRequest) { r.Date = "24-12-2025" }, "customer@example.com", commands.ErrValidation},
		{"malformed service id", func(r *commands.CreateBookingRequest) { r.ServiceID = "svc-1" }, "customer@example.com", commands.ErrValidation},
		{"unknown service", func(r *commands.CreateBookingRequest) { r.ServiceID = uuid.NewString() }, "customer@example.com", commands.ErrServiceNotFound},
		{"booking for someone else", func(*commands.CreateBookingRequest) {}, "other@example.com", commands.ErrForbidden},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.request()
			tt.mutate(&req)
			_, err := s.uc.CreateBooking(ctx, req, tt.principal)
			s.True(errs.Is(err, tt.errIs), "got %v", err)
		})
	}
	s.Empty(s.store.Bookings())
	s.Empty(s.store.Events())
}

func (s *BookingCommandsTestSuite) TestCreateBookingConcurrent() {
	ctx := context.Background()
	const workers = 8

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
		dupes    int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.uc.CreateBooking(ctx, s.request(), "customer@example.com")
			s.NoError(err)
			if res == nil {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if res.Duplicate {
				dupes++
			} else {
				inserted++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, inserted)
	s.Equal(workers-1, dupes)
	s.Len(s.store.Bookings(), 1)
}

func (s *BookingCommandsTestSuite) TestCreateBookingUniqueViolation() {
	ctx := context.Background()

	// a competing insert lands between the lookup and the insert
	s.store.Hooks.AfterActiveBookingLookup = func(st *fakes.Store) {
		st.Hooks.AfterActiveBookingLookup = nil
		competing := builder.NewBookingBuilder().
			WithService(s.service, "Wedding Stage Decoration", builder.NewServiceBuilder().Details.Price).
			BuildDomain()
		st.InsertBookingLocked(competing)
	}

	res, err := s.uc.CreateBooking(ctx, s.request(), "customer@example.com")
	s.Require().NoError(err)
	s.True(res.Duplicate)
	s.Nil(res.BookingID)
	s.Empty(s.store.Events())
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	ctx := context.Background()

	s.Run("owner cancels", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		s.store.PutBooking(b)

		res, err := s.uc.CancelBooking(ctx, b.ID(), "CUSTOMER@example.com")
		s.Require().NoError(err)
		s.Equal(shared.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, *res)

		again, err := s.uc.CancelBooking(ctx, b.ID(), "customer@example.com")
		s.Require().NoError(err)
		s.Equal(shared.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, *again)

		got, _ := s.store.Booking(b.ID())
		s.Equal(booking.StatusCanceled, got.Status())
	})

	s.Run("admin cancels any booking", func() {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).BuildDomain()
		s.store.PutBooking(b)

		res, err := s.uc.CancelBooking(ctx, b.ID(), s.admin.Email().Value())
		s.Require().NoError(err)
		s.EqualValues(1, res.ModifiedCount)
	})

	s.Run("other users are forbidden", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		s.store.PutBooking(b)

		_, err := s.uc.CancelBooking(ctx, b.ID(), s.decorator.Email().Value())
		s.True(errs.Is(err, commands.ErrForbidden))

		got, _ := s.store.Booking(b.ID())
		s.Equal(booking.StatusPending, got.Status())
	})

	s.Run("unknown booking", func() {
		_, err := s.uc.CancelBooking(ctx, uuid.New(), "customer@example.com")
		s.True(errs.Is(err, commands.ErrBookingNotFound))
	})
}

func (s *BookingCommandsTestSuite) TestAssignDecorator() {
	ctx := context.Background()

	s.Run("paid booking becomes assigned", func() {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).BuildDomain()
		s.store.PutBooking(b)

		res, err := s.uc.AssignDecorator(ctx, b.ID(), s.decorator.ID())
		s.Require().NoError(err)
		s.EqualValues(1, res.ModifiedCount)

		got, _ := s.store.Booking(b.ID())
		s.Equal(booking.StatusAssigned, got.Status())
		s.Require().NotNil(got.Decorator())
		s.Equal("deco@example.com", got.Decorator().Email)
		s.Contains(s.store.Events(), shared.EventBookingAssigned)
	})

	s.Run("pending booking cannot be assigned", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		s.store.PutBooking(b)

		_, err := s.uc.AssignDecorator(ctx, b.ID(), s.decorator.ID())
		s.True(errs.Is(err, commands.ErrInvalidTransition))
	})

	s.Run("decorator id must belong to a decorator", func() {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).BuildDomain()
		s.store.PutBooking(b)

		_, err := s.uc.AssignDecorator(ctx, b.ID(), s.admin.ID())
		s.True(errs.Is(err, commands.ErrDecoratorNotFound))

		_, err = s.uc.AssignDecorator(ctx, b.ID(), uuid.New())
		s.True(errs.Is(err, commands.ErrDecoratorNotFound))
	})

	s.Run("unknown booking", func() {
		_, err := s.uc.AssignDecorator(ctx, uuid.New(), s.decorator.ID())
		s.True(errs.Is(err, commands.ErrBookingNotFound))
	})
}

func (s *BookingCommandsTestSuite) TestUpdateWorkStatus() {
	ctx := context.Background()

	s.Run("assigned decorator advances the work", func() {
		b := builder.NewBookingBuilder().AssignedTo(s.decorator).BuildDomain()
		s.store.PutBooking(b)

		res, err := s.uc.UpdateWorkStatus(ctx, b.ID(), "deco@example.com", booking.StatusPlanningPhase.String())
		s.Require().NoError(err)
		s.EqualValues(1, res.ModifiedCount)

		same, err := s.uc.UpdateWorkStatus(ctx, b.ID(), "deco@example.com", booking.StatusPlanningPhase.String())
		s.Require().NoError(err)
		s.EqualValues(0, same.ModifiedCount)
	})

	s.Run("another decorator is forbidden", func() {
		b := builder.NewBookingBuilder().AssignedTo(s.decorator).BuildDomain()
		s.store.PutBooking(b)

		_, err := s.uc.UpdateWorkStatus(ctx, b.ID(), "someone@example.com", booking.StatusPlanningPhase.String())
		s.True(errs.Is(err, commands.ErrForbidden))
	})

	s.Run("status outside the work stages", func() {
		b := builder.NewBookingBuilder().AssignedTo(s.decorator).BuildDomain()
		s.store.PutBooking(b)

		_, err := s.uc.UpdateWorkStatus(ctx, b.ID(), "deco@example.com", "paid")
		s.True(errs.Is(err, commands.ErrValidation))
	})
}

func (s *BookingCommandsTestSuite) TestStorageFailure() {
	s.store.Fail = errs.New("connection refused")

	_, err := s.uc.CreateBooking(context.Background(), s.request(), "customer@example.com")
	s.True(errs.Is(err, commands.ErrDatabaseFailure))
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

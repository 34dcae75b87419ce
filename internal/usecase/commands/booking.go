package commands

import (
	"context"
	"strings"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	"decor-booking/internal/infra"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/pkg/obs"
	"decor-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrMissingBookingFields = errs.New("Missing required fields")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrDecoratorNotFound    = errs.New("Decorator not found")
)

type CreateBookingRequest struct {
	ServiceID     string
	CustomerEmail string
	CustomerName  string
	Date          string
	Address       string
}

// CreateBookingResult has a nil BookingID when an active booking already holds the same key.
type CreateBookingResult struct {
	BookingID *uuid.UUID
	Duplicate bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, principalEmail string) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, id uuid.UUID, principalEmail string) (*shared.UpdateResult, error)
	AssignDecorator(ctx context.Context, id, decoratorID uuid.UUID) (*shared.UpdateResult, error)
	UpdateWorkStatus(ctx context.Context, id uuid.UUID, decoratorEmail, status string) (*shared.UpdateResult, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

type bookingEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	Status        string    `json:"status"`
	CustomerEmail string    `json:"customer_email"`
	ServiceName   string    `json:"service_name"`
	Date          string    `json:"date"`
	DecoratorID   string    `json:"decorator_id,omitempty"`
}

func newBookingEvent(b *booking.Booking) bookingEvent {
	ev := bookingEvent{
		BookingID:     b.ID(),
		Status:        b.Status().String(),
		CustomerEmail: b.CustomerEmail().Value(),
		ServiceName:   b.Service().Name,
		Date:          b.Date().String(),
	}
	if d := b.Decorator(); d != nil {
		ev.DecoratorID = d.ID.String()
	}
	return ev
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, principalEmail string) (result *CreateBookingResult, err error) {
	ctx, span := obs.StartSpan(ctx, "booking.create")
	defer func() { obs.EndSpan(span, err) }()

	if strings.TrimSpace(req.ServiceID) == "" || strings.TrimSpace(req.CustomerEmail) == "" ||
		strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, invalid(ErrMissingBookingFields)
	}
	serviceID, err := uuid.Parse(strings.TrimSpace(req.ServiceID))
	if err != nil {
		return nil, invalid(errs.Wrap(err, "invalid service id"))
	}
	customer, err := account.NewEmail(req.CustomerEmail)
	if err != nil {
		return nil, invalid(err)
	}
	if !customer.Equals(principalEmail) {
		return nil, ErrForbidden
	}
	date, err := booking.ParseDate(req.Date)
	if err != nil {
		return nil, invalid(err)
	}

	key := booking.LogicalKey{CustomerEmail: customer.Value(), ServiceID: serviceID, Date: date}
	span.SetAttributes(
		attribute.String("booking.service_id", serviceID.String()),
		attribute.String("booking.date", date.String()),
	)

	result = &CreateBookingResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Reads().ServiceByID(ctx, serviceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return derr
		}

		_, derr = tx.Reads().ActiveBookingByKey(ctx, key)
		if derr == nil {
			result.Duplicate = true
			return nil
		}
		if !infra.IsKind(derr, infra.KindNotFound) {
			return derr
		}

		b, derr := booking.NewBooking(
			booking.ServiceRef{ID: svc.ID(), Name: svc.Name(), Price: svc.Price()},
			customer, req.CustomerName, date, req.Address, uc.clock.Now(),
		)
		if derr != nil {
			return invalid(derr)
		}

		// a concurrent insert for the same key fails on the partial unique index
		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}
		result.BookingID = &id

		return appendEvent(ctx, tx, shared.AggregateBooking, id, shared.EventBookingCreated, newBookingEvent(b), uc.clock)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return &CreateBookingResult{Duplicate: true}, nil
		case errs.IsAny(err, ErrServiceNotFound, ErrValidation):
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return result, nil
}

// CancelBooking is allowed for the booking owner and for active admins. Canceling twice is a no-op.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID, principalEmail string) (*shared.UpdateResult, error) {
	result := &shared.UpdateResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		result.MatchedCount = 1

		if !b.IsOwnedBy(principalEmail) {
			if derr = uc.requireAdmin(ctx, tx, principalEmail); derr != nil {
				return derr
			}
		}

		if !b.Cancel(uc.clock.Now()) {
			return nil
		}
		return uc.save(ctx, tx, b, shared.EventBookingCanceled, result)
	})
	if err != nil {
		return nil, uc.mapError(err)
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) AssignDecorator(ctx context.Context, id, decoratorID uuid.UUID) (*shared.UpdateResult, error) {
	result := &shared.UpdateResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		decorator, derr := tx.Reads().AccountByID(ctx, decoratorID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrDecoratorNotFound
			}
			return derr
		}
		if !decorator.HasRole(account.RoleDecorator) {
			return ErrDecoratorNotFound
		}

		b, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		result.MatchedCount = 1

		ref := booking.DecoratorRef{
			ID:    decorator.ID(),
			Name:  decorator.DisplayName(),
			Email: decorator.Email().Value(),
		}
		if derr = b.AssignDecorator(ref, uc.clock.Now()); derr != nil {
			return derr
		}
		return uc.save(ctx, tx, b, shared.EventBookingAssigned, result)
	})
	if err != nil {
		return nil, uc.mapError(err)
	}
	return result, nil
}

// UpdateWorkStatus is restricted to the decorator currently assigned to the booking.
func (uc *bookingUseCaseImpl) UpdateWorkStatus(ctx context.Context, id uuid.UUID, decoratorEmail, status string) (*shared.UpdateResult, error) {
	next, err := booking.NewWorkStatus(status)
	if err != nil {
		return nil, invalid(err)
	}

	result := &shared.UpdateResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		result.MatchedCount = 1

		changed, derr := b.UpdateWorkStatus(decoratorEmail, next, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if !changed {
			return nil
		}
		return uc.save(ctx, tx, b, shared.EventBookingStatusUpdated, result)
	})
	if err != nil {
		return nil, uc.mapError(err)
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) requireAdmin(ctx context.Context, tx shared.Tx, email string) error {
	acc, err := tx.Reads().AccountByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrForbidden
		}
		return err
	}
	if !acc.IsActive() || !acc.HasRole(account.RoleAdmin) {
		return ErrForbidden
	}
	return nil
}

func (uc *bookingUseCaseImpl) save(ctx context.Context, tx shared.Tx, b *booking.Booking, eventType string, result *shared.UpdateResult) error {
	n, err := tx.Bookings().Save(ctx, tx.DB(), b)
	if err != nil {
		return err
	}
	result.ModifiedCount = n
	return appendEvent(ctx, tx, shared.AggregateBooking, b.ID(), eventType, newBookingEvent(b), uc.clock)
}

func (uc *bookingUseCaseImpl) mapError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	case errs.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	case errs.Is(err, booking.ErrNotAssignedDecorator):
		return errs.Mark(err, ErrForbidden)
	case errs.Is(err, booking.ErrDecoratorRequired):
		return invalid(err)
	case errs.IsAny(err, ErrForbidden, ErrDecoratorNotFound, ErrValidation):
		return err
	}
	return errs.Mark(err, ErrDatabaseFailure)
}

func appendEvent(ctx context.Context, tx shared.Tx, aggregateType string, aggregateID uuid.UUID, eventType string, payload any, clk clock.Clock) error {
	ev, err := shared.NewOutboxEvent(aggregateType, aggregateID, eventType, payload, clk.Now())
	if err != nil {
		return err
	}
	return tx.Outbox().Append(ctx, tx.DB(), ev)
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	"decor-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	svc := booking.ServiceRef{ID: uuid.New(), Name: "Birthday Balloons", Price: decimal.RequireFromString("2500")}
	email, err := account.NewEmail("Alice@Example.com")
	require.NoError(t, err)
	date, err := booking.ParseDate("2025-12-24")
	require.NoError(t, err)

	t.Run("starts pending", func(t *testing.T) {
		b, err := booking.NewBooking(svc, email, " Alice ", date, " 12 Lake Road ", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, "alice@example.com", b.CustomerEmail().Value())
		assert.Equal(t, "Alice", b.CustomerName())
		assert.Equal(t, "12 Lake Road", b.Address())
		assert.Nil(t, b.Decorator())
		assert.Nil(t, b.TransactionID())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("address is required", func(t *testing.T) {
		_, err := booking.NewBooking(svc, email, "Alice", date, "   ", now)
		assert.ErrorIs(t, err, booking.ErrAddressRequired)
	})

	t.Run("service is required", func(t *testing.T) {
		_, err := booking.NewBooking(booking.ServiceRef{}, email, "Alice", date, "addr", now)
		assert.ErrorIs(t, err, booking.ErrServiceRequired)
	})

	t.Run("logical key ignores customer name and address", func(t *testing.T) {
		a, err := booking.NewBooking(svc, email, "Alice", date, "addr 1", now)
		require.NoError(t, err)
		b, err := booking.NewBooking(svc, email, "Someone", date, "addr 2", now)
		require.NoError(t, err)
		assert.Equal(t, a.Key(), b.Key())
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"2025-12-24", true},
		{" 2025-01-02 ", true},
		{"24/12/2025", false},
		{"2025-13-01", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := booking.ParseDate(tt.in)
			if !tt.valid {
				assert.ErrorIs(t, err, booking.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Len(t, d.String(), len(booking.DateLayout))
		})
	}
}

func TestBookingTransitions(t *testing.T) {
	decorator := builder.NewAccountBuilder().
		WithEmail("deco@example.com").
		WithRole(account.RoleDecorator).
		BuildDomain()
	ref := booking.DecoratorRef{ID: decorator.ID(), Name: decorator.DisplayName(), Email: decorator.Email().Value()}

	t.Run("cancel is idempotent", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		assert.True(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCanceled, b.Status())
		assert.False(t, b.Cancel(now.Add(time.Hour)))
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("mark paid only from pending", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.MarkPaid("pi_1", now))
		assert.Equal(t, booking.StatusPaid, b.Status())
		require.NotNil(t, b.TransactionID())
		assert.Equal(t, "pi_1", *b.TransactionID())

		assert.ErrorIs(t, b.MarkPaid("pi_2", now), booking.ErrInvalidTransition)
		assert.Equal(t, "pi_1", *b.TransactionID())
	})

	t.Run("assign requires a paid booking", func(t *testing.T) {
		pending := builder.NewBookingBuilder().BuildDomain()
		assert.ErrorIs(t, pending.AssignDecorator(ref, now), booking.ErrInvalidTransition)

		paid := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).BuildDomain()
		require.NoError(t, paid.AssignDecorator(ref, now))
		assert.Equal(t, booking.StatusAssigned, paid.Status())
		require.NotNil(t, paid.Decorator())
		assert.Equal(t, decorator.ID(), paid.Decorator().ID)
	})

	t.Run("reassignment replaces the decorator", func(t *testing.T) {
		b := builder.NewBookingBuilder().AssignedTo(decorator).BuildDomain()
		other := booking.DecoratorRef{ID: uuid.New(), Name: "Other", Email: "other@example.com"}
		require.NoError(t, b.AssignDecorator(other, now))
		assert.Equal(t, other.ID, b.Decorator().ID)
	})

	t.Run("assign rejects an empty decorator", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).BuildDomain()
		assert.ErrorIs(t, b.AssignDecorator(booking.DecoratorRef{}, now), booking.ErrDecoratorRequired)
	})

	t.Run("work status by the assigned decorator", func(t *testing.T) {
		b := builder.NewBookingBuilder().AssignedTo(decorator).BuildDomain()

		changed, err := b.UpdateWorkStatus("DECO@example.com", booking.StatusPlanningPhase, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusPlanningPhase, b.Status())

		changed, err = b.UpdateWorkStatus("deco@example.com", booking.StatusPlanningPhase, now)
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = b.UpdateWorkStatus("deco@example.com", booking.StatusCompleted, now)
		require.NoError(t, err)
		assert.True(t, changed)

		_, err = b.UpdateWorkStatus("deco@example.com", booking.StatusSetupInProgress, now)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("work status by another decorator", func(t *testing.T) {
		b := builder.NewBookingBuilder().AssignedTo(decorator).BuildDomain()
		_, err := b.UpdateWorkStatus("someone@example.com", booking.StatusPlanningPhase, now)
		assert.ErrorIs(t, err, booking.ErrNotAssignedDecorator)
		assert.Equal(t, booking.StatusAssigned, b.Status())
	})

	t.Run("work status on an unassigned booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).BuildDomain()
		_, err := b.UpdateWorkStatus("deco@example.com", booking.StatusPlanningPhase, now)
		assert.ErrorIs(t, err, booking.ErrNotAssignedDecorator)
	})

	t.Run("work status must be a work stage", func(t *testing.T) {
		b := builder.NewBookingBuilder().AssignedTo(decorator).BuildDomain()
		_, err := b.UpdateWorkStatus("deco@example.com", booking.StatusPaid, now)
		assert.ErrorIs(t, err, booking.ErrInvalidWorkStatus)
	})
}

func TestNewWorkStatus(t *testing.T) {
	for _, s := range booking.WorkStatuses() {
		got, err := booking.NewWorkStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, s := range []string{"pending", "paid", "Assigned", "canceled", "planning phase", ""} {
		_, err := booking.NewWorkStatus(s)
		assert.ErrorIs(t, err, booking.ErrInvalidWorkStatus, s)
	}
}

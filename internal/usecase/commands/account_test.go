//go:build unit

package commands_test

import (
	"context"
	"testing"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/domain/booking"
	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/commands"
	"decor-booking/tests/common/builder"
	"decor-booking/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountCommands(t *testing.T) {
	ctx := context.Background()
	store := fakes.NewStore()
	uc := commands.NewAccountUseCase(store, clock.NewMockClock(fixedNow))

	t.Run("register stores a user", func(t *testing.T) {
		res, err := uc.Register(ctx, commands.RegisterRequest{Email: "New@Example.com", DisplayName: "New"})
		require.NoError(t, err)
		assert.True(t, res.Created)

		acc, ok := store.Account(res.ID)
		require.True(t, ok)
		assert.Equal(t, "new@example.com", acc.Email().Value())
		assert.Equal(t, account.RoleUser, acc.Role())
	})

	t.Run("register again is a no-op", func(t *testing.T) {
		res, err := uc.Register(ctx, commands.RegisterRequest{Email: "new@example.com", DisplayName: "Changed"})
		require.NoError(t, err)
		assert.False(t, res.Created)
		assert.Equal(t, uuid.Nil, res.ID)
	})

	t.Run("register rejects a bad email", func(t *testing.T) {
		_, err := uc.Register(ctx, commands.RegisterRequest{Email: "nope"})
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})

	t.Run("set role", func(t *testing.T) {
		acc := builder.NewAccountBuilder().WithEmail("promote@example.com").BuildDomain()
		store.PutAccount(acc)

		res, err := uc.SetRole(ctx, acc.ID(), account.RoleDecorator)
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.MatchedCount)
		assert.EqualValues(t, 1, res.ModifiedCount)

		res, err = uc.SetRole(ctx, acc.ID(), account.RoleDecorator)
		require.NoError(t, err)
		assert.EqualValues(t, 0, res.ModifiedCount)

		got, _ := store.Account(acc.ID())
		assert.Equal(t, account.RoleDecorator, got.Role())
	})

	t.Run("set role on unknown account", func(t *testing.T) {
		_, err := uc.SetRole(ctx, uuid.New(), account.RoleAdmin)
		assert.True(t, errs.Is(err, commands.ErrAccountNotFound))
	})

	t.Run("set role rejects unknown roles", func(t *testing.T) {
		_, err := uc.SetRole(ctx, uuid.New(), account.Role("owner"))
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})

	t.Run("set status", func(t *testing.T) {
		acc := builder.NewAccountBuilder().WithEmail("disable@example.com").BuildDomain()
		store.PutAccount(acc)

		res, err := uc.SetStatus(ctx, acc.ID(), "disabled")
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.ModifiedCount)

		got, _ := store.Account(acc.ID())
		assert.False(t, got.IsActive())

		_, err = uc.SetStatus(ctx, acc.ID(), "suspended")
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})
}

func TestCatalogCommands(t *testing.T) {
	ctx := context.Background()
	store := fakes.NewStore()
	uc := commands.NewCatalogUseCase(store, clock.NewMockClock(fixedNow))

	var id uuid.UUID
	t.Run("create", func(t *testing.T) {
		var err error
		id, err = uc.CreateService(ctx, commands.CreateServiceRequest{
			Name:     "Garden Lights",
			Category: "outdoor",
			Price:    decimal.RequireFromString("4999.99"),
			Unit:     "per event",
		}, "admin@example.com")
		require.NoError(t, err)
		require.Len(t, store.Services(), 1)
		assert.Equal(t, "admin@example.com", store.Services()[0].CreatedBy())
	})

	t.Run("create validates", func(t *testing.T) {
		_, err := uc.CreateService(ctx, commands.CreateServiceRequest{Category: "outdoor"}, "admin@example.com")
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})

	t.Run("partial update", func(t *testing.T) {
		price := decimal.RequireFromString("5500")
		blank := ""
		res, err := uc.UpdateService(ctx, id, commands.UpdateServiceRequest{Price: &price, ImageURL: &blank})
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.ModifiedCount)

		svc := store.Services()[0]
		assert.Equal(t, "Garden Lights", svc.Name())
		assert.True(t, svc.Price().Equal(price))
	})

	t.Run("update with identical values", func(t *testing.T) {
		name := "Garden Lights"
		res, err := uc.UpdateService(ctx, id, commands.UpdateServiceRequest{Name: &name})
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.MatchedCount)
		assert.EqualValues(t, 0, res.ModifiedCount)
	})

	t.Run("update unknown service", func(t *testing.T) {
		_, err := uc.UpdateService(ctx, uuid.New(), commands.UpdateServiceRequest{})
		assert.True(t, errs.Is(err, commands.ErrServiceNotFound))
	})

	t.Run("delete refuses while booked", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithService(id, "Garden Lights", decimal.NewFromInt(5500)).
			WithStatus(booking.StatusCanceled).BuildDomain()
		store.PutBooking(b)

		_, err := uc.DeleteService(ctx, id)
		assert.True(t, errs.Is(err, commands.ErrServiceInUse))
		assert.Len(t, store.Services(), 1)
	})

	t.Run("delete", func(t *testing.T) {
		other, err := uc.CreateService(ctx, commands.CreateServiceRequest{
			Name: "Balloon Arch", Category: "birthday", Price: decimal.NewFromInt(800),
		}, "admin@example.com")
		require.NoError(t, err)

		n, err := uc.DeleteService(ctx, other)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		n, err = uc.DeleteService(ctx, other)
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
	})
}

func TestContactCommands(t *testing.T) {
	ctx := context.Background()
	store := fakes.NewStore()
	uc := commands.NewContactUseCase(store, clock.NewMockClock(fixedNow))

	id, err := uc.SubmitMessage(ctx, commands.ContactRequest{
		Name:    " Visitor ",
		Email:   "Visitor@Example.com",
		Subject: "Quote",
		Message: " Do you decorate offices? ",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	msgs := store.Contacts()
	require.Len(t, msgs, 1)
	assert.Equal(t, "visitor@example.com", msgs[0].Email)
	assert.Equal(t, "Do you decorate offices?", msgs[0].Message)
	assert.Equal(t, fixedNow, msgs[0].CreatedAt)

	_, err = uc.SubmitMessage(ctx, commands.ContactRequest{Email: "visitor@example.com", Message: "  "})
	assert.True(t, errs.Is(err, commands.ErrValidation))
}

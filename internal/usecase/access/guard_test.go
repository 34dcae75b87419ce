//go:build unit

package access_test

import (
	"context"
	"errors"
	"testing"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/infra"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/access"
	"decor-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(ctx context.Context, token string) (*access.Principal, error) {
	args := m.Called(ctx, token)
	if p := args.Get(0); p != nil {
		return p.(*access.Principal), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRoleStore struct {
	mock.Mock
}

func (m *mockRoleStore) AccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if a := args.Get(0); a != nil {
		return a.(*account.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		header string
		setup  func(v *mockVerifier)
		email  string
		errIs  error
	}{
		{
			name:   "valid bearer token",
			header: "Bearer good-token",
			setup: func(v *mockVerifier) {
				v.On("Verify", mock.Anything, "good-token").Return(&access.Principal{Email: " Alice@Example.com "}, nil)
			},
			email: "alice@example.com",
		},
		{
			name:   "scheme is case insensitive",
			header: "bearer good-token",
			setup: func(v *mockVerifier) {
				v.On("Verify", mock.Anything, "good-token").Return(&access.Principal{Email: "a@example.com"}, nil)
			},
			email: "a@example.com",
		},
		{name: "missing header", header: "", errIs: access.ErrUnauthenticated},
		{name: "no token after scheme", header: "Bearer ", errIs: access.ErrUnauthenticated},
		{name: "wrong scheme", header: "Basic abc", errIs: access.ErrUnauthenticated},
		{
			name:   "rejected by provider",
			header: "Bearer expired",
			setup: func(v *mockVerifier) {
				v.On("Verify", mock.Anything, "expired").Return(nil, errors.New("token expired"))
			},
			errIs: access.ErrUnauthenticated,
		},
		{
			name:   "token without email",
			header: "Bearer anon",
			setup: func(v *mockVerifier) {
				v.On("Verify", mock.Anything, "anon").Return(&access.Principal{}, nil)
			},
			errIs: access.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := new(mockVerifier)
			if tt.setup != nil {
				tt.setup(v)
			}
			guard := access.NewGuard(v, new(mockRoleStore))

			p, err := guard.Authenticate(ctx, tt.header)
			if tt.errIs != nil {
				assert.True(t, errs.Is(err, tt.errIs), "got %v", err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, p.Email)
			v.AssertExpectations(t)
		})
	}
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	notFound := infra.WrapRepoErr("account not found", nil, infra.KindNotFound)

	tests := []struct {
		name     string
		stored   *account.Account
		storeErr error
		required account.Role
		errIs    error
	}{
		{
			name:     "admin passes admin check",
			stored:   builder.NewAccountBuilder().WithRole(account.RoleAdmin).BuildDomain(),
			required: account.RoleAdmin,
		},
		{
			name:     "admin does not pass decorator check",
			stored:   builder.NewAccountBuilder().WithRole(account.RoleAdmin).BuildDomain(),
			required: account.RoleDecorator,
			errIs:    access.ErrForbidden,
		},
		{
			name:     "unset role is a user",
			stored:   builder.NewAccountBuilder().WithoutRole().BuildDomain(),
			required: account.RoleAdmin,
			errIs:    access.ErrForbidden,
		},
		{
			name:     "disabled admin",
			stored:   builder.NewAccountBuilder().WithRole(account.RoleAdmin).AsDisabled().BuildDomain(),
			required: account.RoleAdmin,
			errIs:    access.ErrForbidden,
		},
		{
			name:     "unknown email",
			storeErr: notFound,
			required: account.RoleDecorator,
			errIs:    access.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := new(mockRoleStore)
			roles.On("AccountByEmail", mock.Anything, "staff@example.com").Return(tt.stored, tt.storeErr)
			guard := access.NewGuard(new(mockVerifier), roles)

			acc, err := guard.Authorize(ctx, "Staff@Example.com", tt.required)
			if tt.errIs != nil {
				assert.True(t, errs.Is(err, tt.errIs), "got %v", err)
				assert.Nil(t, acc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stored.ID(), acc.ID())
		})
	}

	t.Run("store failure is not a forbidden", func(t *testing.T) {
		roles := new(mockRoleStore)
		roles.On("AccountByEmail", mock.Anything, "staff@example.com").
			Return(nil, infra.WrapRepoErr("select failed", errors.New("conn reset")))
		guard := access.NewGuard(new(mockVerifier), roles)

		_, err := guard.Authorize(ctx, "staff@example.com", account.RoleAdmin)
		require.Error(t, err)
		assert.False(t, errs.Is(err, access.ErrForbidden))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRequireSelf(t *testing.T) {
	guard := access.NewGuard(new(mockVerifier), new(mockRoleStore))
	p := &access.Principal{Email: "alice@example.com"}

	assert.NoError(t, guard.RequireSelf(p, "Alice@example.com"))
	assert.NoError(t, guard.RequireSelf(p, " alice@example.com "))
	assert.ErrorIs(t, guard.RequireSelf(p, "bob@example.com"), access.ErrForbidden)
	assert.ErrorIs(t, guard.RequireSelf(p, ""), access.ErrForbidden)
	assert.ErrorIs(t, guard.RequireSelf(nil, "alice@example.com"), access.ErrForbidden)
}

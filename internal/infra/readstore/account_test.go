//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/infra"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccountReadQueries struct {
	mock.Mock
}

func (m *MockAccountReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockAccountReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockAccountReadQueries) ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func (m *MockAccountReadQueries) ListUsersByRole(ctx context.Context, db sqlc.DBTX, role string) ([]sqlc.Users, error) {
	args := m.Called(ctx, db, role)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func (m *MockAccountReadQueries) ListActiveDecorators(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Users, error) {
	args := m.Called(ctx, db, limit)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func TestAccountFindByEmail(t *testing.T) {
	decorator := builder.NewAccountBuilder().WithEmail("deco@example.com").WithRole(account.RoleDecorator).BuildInfra()
	roleless := builder.NewAccountBuilder().WithEmail("legacy@example.com").WithoutRole().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantRole   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "stored role",
			email:      decorator.Email,
			mockReturn: decorator,
			wantRole:   "decorator",
		},
		{
			name:       "null role reads as user",
			email:      roleless.Email,
			mockReturn: roleless,
			wantRole:   "user",
		},
		{
			name:      "not found via database/sql",
			email:     "ghost@example.com",
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "not found via pgx",
			email:     "ghost@example.com",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			email:     decorator.Email,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockAccountReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewAccountReadStore(mockQueries, nil)
			view, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.wantRole, view.Role)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestAccountFindRoleByEmail(t *testing.T) {
	mockQueries := new(MockAccountReadQueries)
	admin := builder.NewAccountBuilder().WithEmail("admin@example.com").WithRole(account.RoleAdmin).BuildInfra()
	roleless := builder.NewAccountBuilder().WithEmail("legacy@example.com").WithoutRole().BuildInfra()
	mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, admin.Email).Return(admin, nil)
	mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, roleless.Email).Return(roleless, nil)

	readStore := NewAccountReadStore(mockQueries, nil)

	role, err := readStore.FindRoleByEmail(context.Background(), admin.Email)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, "admin", *role)

	role, err = readStore.FindRoleByEmail(context.Background(), roleless.Email)
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestAccountByEmail(t *testing.T) {
	disabled := builder.NewAccountBuilder().WithRole(account.RoleAdmin).AsDisabled().BuildInfra()
	mockQueries := new(MockAccountReadQueries)
	mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, disabled.Email).Return(disabled, nil)

	acc, err := NewAccountReadStore(mockQueries, nil).AccountByEmail(context.Background(), disabled.Email)

	require.NoError(t, err)
	assert.Equal(t, disabled.ID, acc.ID())
	assert.False(t, acc.IsActive())
	assert.Equal(t, account.RoleAdmin, acc.Role())
}

func TestAccountLists(t *testing.T) {
	rows := []sqlc.Users{
		builder.NewAccountBuilder().WithEmail("a@example.com").WithRole(account.RoleDecorator).BuildInfra(),
		builder.NewAccountBuilder().WithEmail("b@example.com").WithRole(account.RoleDecorator).BuildInfra(),
	}

	t.Run("by role", func(t *testing.T) {
		mockQueries := new(MockAccountReadQueries)
		mockQueries.On("ListUsersByRole", mock.Anything, mock.Anything, "decorator").Return(rows, nil)

		views, err := NewAccountReadStore(mockQueries, nil).ListByRole(context.Background(), account.RoleDecorator)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "a@example.com", views[0].Email)
		mockQueries.AssertExpectations(t)
	})

	t.Run("active decorators honour the limit", func(t *testing.T) {
		mockQueries := new(MockAccountReadQueries)
		mockQueries.On("ListActiveDecorators", mock.Anything, mock.Anything, int32(4)).Return(rows[:1], nil)

		views, err := NewAccountReadStore(mockQueries, nil).ListActiveDecorators(context.Background(), 4)
		require.NoError(t, err)
		assert.Len(t, views, 1)
		mockQueries.AssertExpectations(t)
	})

	t.Run("empty list", func(t *testing.T) {
		mockQueries := new(MockAccountReadQueries)
		mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return([]sqlc.Users{}, nil)

		views, err := NewAccountReadStore(mockQueries, nil).List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockAccountReadQueries)
		mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return([]sqlc.Users(nil), assert.AnError)

		_, err := NewAccountReadStore(mockQueries, nil).List(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

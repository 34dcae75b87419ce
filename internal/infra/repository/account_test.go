//go:build unit

package repository

import (
	"context"
	"testing"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/infra"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAccountWriteQueries struct {
	mock.Mock
}

func (m *MockAccountWriteQueries) CreateUserIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserIfAbsentParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAccountWriteQueries) UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountWriteQueries) UpdateUserStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestAccountCreateIfAbsent(t *testing.T) {
	acc := builder.NewAccountBuilder().BuildDomain()

	tests := []struct {
		name        string
		mockError   error
		wantCreated bool
		wantError   bool
	}{
		{name: "inserted", wantCreated: true},
		{name: "email already registered", mockError: pgx.ErrNoRows, wantCreated: false},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockAccountWriteQueries)
			mockQueries.On("CreateUserIfAbsent", mock.Anything, mock.Anything, mock.Anything).Return(acc.ID(), tt.mockError)

			created, err := NewAccountRepository(mockQueries).CreateIfAbsent(context.Background(), nil, acc)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCreated, created)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestAccountUpdateRole(t *testing.T) {
	id := uuid.New()
	mockQueries := new(MockAccountWriteQueries)
	mockQueries.On("UpdateUserRole", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateUserRoleParams) bool {
		return arg.ID == id && arg.Role.Valid && arg.Role.String == "decorator"
	})).Return(int64(1), nil)

	n, err := NewAccountRepository(mockQueries).UpdateRole(context.Background(), nil, id, account.RoleDecorator)

	assert.NoError(t, err)
	assert.EqualValues(t, 1, n)
	mockQueries.AssertExpectations(t)
}

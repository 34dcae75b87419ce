//go:build unit

package identity

import (
	"context"
	"testing"

	"decor-booking/internal/pkg/errs"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	args := m.Called(ctx, idToken)
	tok, _ := args.Get(0).(*auth.Token)
	return tok, args.Error(1)
}

func TestFirebaseVerify(t *testing.T) {
	revoked := errs.New("id token has been revoked")

	tests := []struct {
		name      string
		token     *auth.Token
		mockError error
		wantEmail string
		wantName  string
		wantErrIs error
	}{
		{
			name:      "email and name claims",
			token:     &auth.Token{UID: "uid-1", Claims: map[string]any{"email": "customer@example.com", "name": "Test Customer"}},
			wantEmail: "customer@example.com",
			wantName:  "Test Customer",
		},
		{
			name:      "name claim is optional",
			token:     &auth.Token{UID: "uid-2", Claims: map[string]any{"email": "deco@example.com"}},
			wantEmail: "deco@example.com",
		},
		{
			name:      "rejected by the provider",
			mockError: revoked,
			wantErrIs: revoked,
		},
		{
			name:      "no email claim",
			token:     &auth.Token{UID: "uid-3", Claims: map[string]any{"phone_number": "+8801700000000"}},
			wantErrIs: errEmailClaimMissing,
		},
		{
			name:      "email claim of the wrong type",
			token:     &auth.Token{UID: "uid-4", Claims: map[string]any{"email": 42}},
			wantErrIs: errEmailClaimMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockTokenVerifier)
			client.On("VerifyIDToken", mock.Anything, "id-token").Return(tt.token, tt.mockError)

			principal, err := (&FirebaseVerifier{client: client}).Verify(context.Background(), "id-token")

			if tt.wantErrIs != nil {
				assert.Nil(t, principal)
				assert.True(t, errs.Is(err, tt.wantErrIs), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantEmail, principal.Email)
				assert.Equal(t, tt.wantName, principal.Name)
			}
			client.AssertExpectations(t)
		})
	}
}

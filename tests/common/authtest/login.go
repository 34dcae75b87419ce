//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"decor-booking/internal/domain/account"
	reqdto "decor-booking/internal/handler/dto/request"
	sqlc "decor-booking/internal/infra/sqlc/generated"
	"decor-booking/tests/common/dbtest"
	"decor-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// RegisterUser goes through POST /users and returns a token for the new account.
func (h *TokenHelper) RegisterUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/users",
		reqdto.RegisterUserRequest{Email: email, DisplayName: "Registered User"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return h.TokenFor(t, email)
}

// CreateStaff inserts an account with a staff role directly, since no route grants admin.
func (h *TokenHelper) CreateStaff(t *testing.T, db sqlc.DBTX, email string, role account.Role) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestAccount(t, db, email, role)
	return id, h.TokenFor(t, email)
}

//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"decor-booking/internal/pkg/config"
	"decor-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// TokenHelper issues ID tokens accepted by the local JWT identity provider.
type TokenHelper struct {
	cfg config.JWTConfig
}

func NewTokenHelper(cfg config.JWTConfig) *TokenHelper {
	return &TokenHelper{cfg: cfg}
}

func (h *TokenHelper) TokenFor(t *testing.T, email string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(email, "Test User")
	require.NoError(t, err)
	return token
}

func (h *TokenHelper) ExpiredTokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(email, "Test User")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

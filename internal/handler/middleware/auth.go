package middleware

import (
	"log/slog"
	"net/http"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/access"

	"github.com/gin-gonic/gin"
)

const (
	ctxPrincipalKey = "principal"
	ctxRoleKey      = "principal_role"
	ctxClaimsKey    = "jwt_claims"

	MsgUnauthorized = "unauthorized access"
	MsgForbidden    = "forbidden access"
)

type AuthMiddleware struct {
	guard access.Guard
}

func NewAuthMiddleware(guard access.Guard) *AuthMiddleware {
	return &AuthMiddleware{guard: guard}
}

// RequireAuth verifies the bearer token and stores the principal in the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := m.guard.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			slog.Warn("token verification failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, MsgUnauthorized, nil)
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Set(ctxClaimsKey, map[string]any{
			"email": principal.Email,
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth. Roles are matched exactly.
func (m *AuthMiddleware) RequireRole(role account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, access.ErrUnauthenticated, MsgUnauthorized, nil)
			return
		}

		acc, err := m.guard.Authorize(c.Request.Context(), principal.Email, role)
		if err != nil {
			if errs.Is(err, access.ErrForbidden) {
				httperr.AbortWithError(c, http.StatusForbidden, err, MsgForbidden, nil)
				return
			}
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
			return
		}

		c.Set(ctxRoleKey, acc.Role())
		c.Set(ctxClaimsKey, map[string]any{
			"email": principal.Email,
			"role":  acc.Role().String(),
		})
		c.Next()
	}
}

// OwnerFunc extracts the email that owns the requested resource.
type OwnerFunc func(c *gin.Context) string

func PathEmail(name string) OwnerFunc {
	return func(c *gin.Context) string { return c.Param(name) }
}

func QueryEmail(name string) OwnerFunc {
	return func(c *gin.Context) string { return c.Query(name) }
}

// RequireSelf must run after RequireAuth.
func (m *AuthMiddleware) RequireSelf(owner OwnerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, access.ErrUnauthenticated, MsgUnauthorized, nil)
			return
		}
		if err := m.guard.RequireSelf(principal, owner(c)); err != nil {
			httperr.AbortWithError(c, http.StatusForbidden, err, MsgForbidden, nil)
			return
		}
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (*access.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*access.Principal)
	return p, ok && p != nil
}

func GetRole(c *gin.Context) (account.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(account.Role)
	return role, ok
}

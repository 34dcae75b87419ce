package access

import (
	"context"
	"strings"

	"decor-booking/internal/domain/account"
	"decor-booking/internal/infra"
	"decor-booking/internal/pkg/errs"
)

var (
	ErrUnauthenticated = errs.New("unauthenticated")
	ErrForbidden       = errs.New("forbidden")
)

const bearerScheme = "bearer"

// Principal is the identity proven by a verified token.
type Principal struct {
	Email string
	Name  string
}

// Verifier checks a raw bearer token with the identity provider.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// RoleStore resolves an email to its stored account.
type RoleStore interface {
	AccountByEmail(ctx context.Context, email string) (*account.Account, error)
}

type Guard interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*Principal, error)
	Authorize(ctx context.Context, principalEmail string, required account.Role) (*account.Account, error)
	RequireSelf(principal *Principal, ownerEmail string) error
}

type guardImpl struct {
	verifier Verifier
	roles    RoleStore
}

func NewGuard(verifier Verifier, roles RoleStore) Guard {
	return &guardImpl{
		verifier: verifier,
		roles:    roles,
	}
}

func (g *guardImpl) Authenticate(ctx context.Context, authorizationHeader string) (*Principal, error) {
	token, ok := parseBearer(authorizationHeader)
	if !ok {
		return nil, ErrUnauthenticated
	}

	principal, err := g.verifier.Verify(ctx, token)
	if err != nil {
		return nil, errs.Mark(err, ErrUnauthenticated)
	}
	if principal == nil || principal.Email == "" {
		return nil, ErrUnauthenticated
	}
	principal.Email = strings.ToLower(strings.TrimSpace(principal.Email))
	return principal, nil
}

// Authorize requires an active account whose role equals required exactly.
func (g *guardImpl) Authorize(ctx context.Context, principalEmail string, required account.Role) (*account.Account, error) {
	acc, err := g.roles.AccountByEmail(ctx, strings.ToLower(principalEmail))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if !acc.IsActive() || !acc.HasRole(required) {
		return nil, ErrForbidden
	}
	return acc, nil
}

func (g *guardImpl) RequireSelf(principal *Principal, ownerEmail string) error {
	if principal == nil || !account.SameEmail(principal.Email, strings.TrimSpace(ownerEmail)) {
		return ErrForbidden
	}
	return nil
}

func parseBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"decor-booking/internal/infra/identity"
	"decor-booking/internal/pkg/config"
	"decor-booking/internal/pkg/jwt"
	"decor-booking/internal/usecase/access"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		NewVerifier,
	),
)

// NewVerifier picks the identity provider named by IDENTITY_PROVIDER.
func NewVerifier(cfg config.Config, jwtService *jwt.Service) (access.Verifier, error) {
	switch cfg.Identity.Provider {
	case config.IdentityProviderFirebase:
		return identity.NewFirebaseVerifier(context.Background(), cfg.Identity)
	case config.IdentityProviderJWT:
		slog.Warn("using local JWT identity provider")
		return identity.NewJWTVerifier(jwtService), nil
	default:
		return nil, fmt.Errorf("unknown IDENTITY_PROVIDER %q", cfg.Identity.Provider)
	}
}

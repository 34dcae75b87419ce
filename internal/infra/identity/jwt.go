package identity

import (
	"context"

	"decor-booking/internal/pkg/jwt"
	"decor-booking/internal/usecase/access"
)

// JWTVerifier accepts locally signed HS256 tokens.
type JWTVerifier struct {
	jwtService *jwt.Service
}

func NewJWTVerifier(jwtService *jwt.Service) *JWTVerifier {
	return &JWTVerifier{jwtService: jwtService}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (*access.Principal, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return &access.Principal{
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

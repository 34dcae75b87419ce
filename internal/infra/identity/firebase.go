package identity

import (
	"context"
	"encoding/base64"
	"fmt"

	"decor-booking/internal/pkg/config"
	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/access"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var errEmailClaimMissing = errs.New("id token has no email claim")

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier validates Firebase ID tokens through the Admin SDK.
type FirebaseVerifier struct {
	client tokenVerifier
}

func NewFirebaseVerifier(ctx context.Context, cfg config.IdentityConfig) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentials != "" {
		raw, err := base64.StdEncoding.DecodeString(cfg.FirebaseCredentials)
		if err != nil {
			return nil, fmt.Errorf("decode firebase credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(raw))
	}

	var fbCfg *firebase.Config
	if cfg.FirebaseProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*access.Principal, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errs.Wrap(err, "verify id token")
	}
	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return nil, errEmailClaimMissing
	}
	name, _ := decoded.Claims["name"].(string)
	return &access.Principal{Email: email, Name: name}, nil
}

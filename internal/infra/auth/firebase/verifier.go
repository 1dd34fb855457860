// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"
	"log/slog"

	"buyhive/internal/domain/service"
	"buyhive/internal/infra/auth"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Verifier checks Firebase ID tokens with the Admin SDK.
type Verifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewVerifier initializes a Firebase app and its auth client.
func NewVerifier(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (*Verifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &Verifier{client: client, logger: logger}, nil
}

// Verify implements service.IdentityVerifier
func (v *Verifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.Debug("Firebase ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	return auth.IdentityFromClaims(decoded.UID, decoded.Claims), nil
}

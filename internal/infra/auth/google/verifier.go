// Package google verifies Google-issued OIDC ID tokens.
package google

import (
	"context"
	"log/slog"

	"buyhive/internal/domain/service"
	"buyhive/internal/infra/auth"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Verifier checks Google ID tokens against an expected audience.
type Verifier struct {
	audience string
	validate validateFunc
	logger   *slog.Logger
}

// NewVerifier creates a verifier for tokens issued to audience (the OAuth client ID,
// or the push endpoint URL for Pub/Sub push tokens).
func NewVerifier(audience string, logger *slog.Logger) *Verifier {
	return &Verifier{
		audience: audience,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// Verify implements service.IdentityVerifier
func (v *Verifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	payload, err := v.validate(ctx, token, v.audience)
	if err != nil {
		v.logger.Debug("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.Wrap(service.ErrInvalidToken, "email not verified")
	}

	return auth.IdentityFromClaims(payload.Subject, payload.Claims), nil
}

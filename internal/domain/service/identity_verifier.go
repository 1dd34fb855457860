// Package service defines interfaces for collaborators the domain relies on
// without owning their implementation: identity, messaging, email and QR codes.
package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned when a bearer token cannot be verified.
var ErrInvalidToken = errors.New("invalid identity token")

// Identity is the verified subject of a bearer token.
type Identity struct {
	Subject string // Stable user id issued by the provider.
	Email   string
	Name    string
}

// IdentityVerifier turns a bearer token into an identity.
type IdentityVerifier interface {
	// Verify checks the token signature and claims.
	Verify(ctx context.Context, token string) (*Identity, error)
}

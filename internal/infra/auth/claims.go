package auth

import "buyhive/internal/domain/service"

// IdentityFromClaims builds an identity from a provider's decoded claims map.
func IdentityFromClaims(subject string, claims map[string]any) *service.Identity {
	identity := &service.Identity{Subject: subject}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}

	return identity
}

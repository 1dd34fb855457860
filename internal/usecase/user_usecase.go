package usecase

import (
	"context"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/service"
)

// UserUsecase defines user bootstrap and profile operations
type UserUsecase interface {
	// EnsureUser creates the user on first sight of a verified identity and refreshes the profile otherwise
	EnsureUser(ctx context.Context, identity *service.Identity) (*entity.User, error)

	// GetUser returns the user document
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

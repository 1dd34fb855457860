// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"buyhive/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user document does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for the user directory.
type UserRepository interface {
	// FindByID retrieves a user by the identity subject.
	FindByID(ctx context.Context, userID string) (*entity.User, error)

	// Upsert creates the user with an empty cart list when absent.
	// For an existing user only email, name and updated_at are written.
	Upsert(ctx context.Context, profile *entity.UserProfile) (*entity.User, error)

	// AddCartRef appends cartID to the user's cart list if absent and bumps the count.
	// Calling it twice with the same id changes nothing the second time.
	AddCartRef(ctx context.Context, userID, cartID string) error

	// RemoveCartRef pulls cartID from the user's cart list and decrements the count,
	// but only when the list contains it.
	RemoveCartRef(ctx context.Context, userID, cartID string) error

	// SetCartRefs overwrites the cart list and its count. Used by reconciliation.
	SetCartRefs(ctx context.Context, userID string, cartIDs []string) error

	// ListIDs returns every user id, sorted.
	ListIDs(ctx context.Context) ([]string, error)
}

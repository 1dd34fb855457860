package repository

import (
	"context"

	"buyhive/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when no cart matches the (user, cart) pair.
	ErrCartNotFound = errors.New("cart not found")
)

// CartRepository defines the interface for the cart directory.
// Every lookup is scoped to the owner; a cart of another user is reported as not found.
type CartRepository interface {
	// FindByID retrieves one cart.
	FindByID(ctx context.Context, userID, cartID string) (*entity.Cart, error)

	// FindByIDs retrieves the existing carts among cartIDs in a single read.
	// Missing ids are skipped; the order of the result is unspecified.
	FindByIDs(ctx context.Context, userID string, cartIDs []string) ([]*entity.Cart, error)

	// ListByUser retrieves all carts owned by the user ordered by creation time.
	ListByUser(ctx context.Context, userID string) ([]*entity.Cart, error)

	// Create persists a new cart.
	Create(ctx context.Context, cart *entity.Cart) error

	// Rename changes the cart name.
	Rename(ctx context.Context, userID, cartID, name string) error

	// Delete removes the cart document.
	Delete(ctx context.Context, userID, cartID string) error

	// AddItemRef appends itemID to the cart if absent and bumps the count.
	// It reports false when the cart already referenced the item or does not exist.
	AddItemRef(ctx context.Context, userID, cartID, itemID string) (bool, error)

	// RemoveItemRef pulls itemID and decrements the count only when the cart references it.
	// It reports false when nothing was changed.
	RemoveItemRef(ctx context.Context, userID, cartID, itemID string) (bool, error)

	// SetItemRefs overwrites the item list and its count. Used by reconciliation.
	SetItemRefs(ctx context.Context, userID, cartID string, itemIDs []string) error
}

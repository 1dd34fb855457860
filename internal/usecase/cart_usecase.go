// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"buyhive/internal/domain/entity"
)

// CartUsecase defines the cart lifecycle operations
type CartUsecase interface {
	// CreateCart creates a cart for an existing user and records it on the user
	CreateCart(ctx context.Context, userID, name string) (*entity.Cart, error)

	// ListCarts returns the carts owned by the user, oldest first
	ListCarts(ctx context.Context, userID string) ([]*entity.Cart, error)

	// GetCartItems returns the items of a cart in the cart's order
	GetCartItems(ctx context.Context, userID, cartID string) ([]*entity.Item, error)

	// RenameCart changes the cart name
	RenameCart(ctx context.Context, userID, cartID, name string) (*entity.Cart, error)

	// DeleteCart deletes the cart and detaches its items, deleting those left without a cart
	DeleteCart(ctx context.Context, userID, cartID string) (*entity.CleanupResult, error)
}

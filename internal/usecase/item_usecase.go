package usecase

import (
	"context"

	"buyhive/internal/domain/entity"
)

// ItemUsecase defines the item lifecycle operations
type ItemUsecase interface {
	// CreateItem saves a new item into one or more carts
	CreateItem(ctx context.Context, userID string, details *entity.ItemDetails, cartIDs []string) (*entity.Item, error)

	// MoveItem replaces the set of carts holding the item. An empty set keeps the item.
	MoveItem(ctx context.Context, userID, itemID string, cartIDs []string) (*entity.Item, error)

	// UpdateNote replaces the item's note; a blank note clears it
	UpdateNote(ctx context.Context, userID, itemID, note string) (*entity.Item, error)

	// RemoveItemFromCart detaches the item from one cart and deletes it if no cart is left
	RemoveItemFromCart(ctx context.Context, userID, cartID, itemID string) (*entity.RemovalResult, error)

	// NukeItem detaches the item from every cart and deletes it
	NukeItem(ctx context.Context, userID, itemID string) (*entity.NukeResult, error)
}

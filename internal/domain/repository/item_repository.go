package repository

import (
	"context"

	"buyhive/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for item persistence.
var (
	// ErrItemNotFound is returned when no item matches the (user, item) pair.
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicateItemURL is returned when the user already saved an item with the same URL.
	ErrDuplicateItemURL = errors.New("item url already exists")
)

// ItemRepository defines the interface for the item catalog.
type ItemRepository interface {
	// FindByID retrieves one item.
	FindByID(ctx context.Context, userID, itemID string) (*entity.Item, error)

	// FindByIDs retrieves items in a single read, returned in the order of itemIDs.
	// Missing ids are skipped.
	FindByIDs(ctx context.Context, userID string, itemIDs []string) ([]*entity.Item, error)

	// FindByURL retrieves the user's item saved from url.
	FindByURL(ctx context.Context, userID, url string) (*entity.Item, error)

	// ListByUser retrieves every item the user saved.
	ListByUser(ctx context.Context, userID string) ([]*entity.Item, error)

	// Create persists a new item. A second item with the same (user, url) fails with ErrDuplicateItemURL.
	Create(ctx context.Context, item *entity.Item) error

	// UpdateNote replaces the notes field and returns the updated item.
	UpdateNote(ctx context.Context, userID, itemID string, note *string) (*entity.Item, error)

	// SetCartRefs overwrites the item's cart membership and returns the updated item.
	SetCartRefs(ctx context.Context, userID, itemID string, cartIDs []string) (*entity.Item, error)

	// RemoveCartRef pulls cartID from the membership set and returns the updated item.
	RemoveCartRef(ctx context.Context, userID, itemID, cartID string) (*entity.Item, error)

	// Delete removes the item document.
	Delete(ctx context.Context, userID, itemID string) error

	// DeleteIfOrphan removes the item only if its membership set is empty at write time.
	DeleteIfOrphan(ctx context.Context, userID, itemID string) (bool, error)
}

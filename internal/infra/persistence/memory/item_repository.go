package memory

import (
	"context"
	"sort"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/util"
)

type itemRepository struct {
	store *Store
}

// NewItemRepository creates an item catalog on store
func NewItemRepository(store *Store) repository.ItemRepository {
	return &itemRepository{store: store}
}

func (r *itemRepository) FindByID(_ context.Context, userID, itemID string) (*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.items[itemKey{userID, itemID}]
	if !ok {
		return nil, repository.ErrItemNotFound
	}

	return cloneItem(item), nil
}

func (r *itemRepository) FindByIDs(_ context.Context, userID string, itemIDs []string) ([]*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]*entity.Item, 0, len(itemIDs))
	for _, itemID := range util.DedupeIDs(itemIDs) {
		if item, ok := r.store.items[itemKey{userID, itemID}]; ok {
			items = append(items, cloneItem(item))
		}
	}

	return items, nil
}

func (r *itemRepository) FindByURL(_ context.Context, userID, url string) (*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if item := r.findByURLLocked(userID, url); item != nil {
		return cloneItem(item), nil
	}

	return nil, repository.ErrItemNotFound
}

func (r *itemRepository) ListByUser(_ context.Context, userID string) ([]*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]*entity.Item, 0)
	for key, item := range r.store.items {
		if key.userID == userID {
			items = append(items, cloneItem(item))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].ItemID < items[j].ItemID
		}

		return items[i].AddedAt.Before(items[j].AddedAt)
	})

	return items, nil
}

func (r *itemRepository) Create(_ context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if item.URL != nil && r.findByURLLocked(item.UserID, *item.URL) != nil {
		return repository.ErrDuplicateItemURL
	}
	r.store.items[itemKey{item.UserID, item.ItemID}] = cloneItem(item)

	return nil
}

func (r *itemRepository) UpdateNote(_ context.Context, userID, itemID string, note *string) (*entity.Item, error) {
	return r.mutate(userID, itemID, func(item *entity.Item) {
		item.Notes = clonePtr(note)
	})
}

func (r *itemRepository) SetCartRefs(_ context.Context, userID, itemID string, cartIDs []string) (*entity.Item, error) {
	return r.mutate(userID, itemID, func(item *entity.Item) {
		item.SelectedCartIDs = util.DedupeIDs(cartIDs)
	})
}

func (r *itemRepository) RemoveCartRef(_ context.Context, userID, itemID, cartID string) (*entity.Item, error) {
	return r.mutate(userID, itemID, func(item *entity.Item) {
		item.SelectedCartIDs = util.RemoveID(item.SelectedCartIDs, cartID)
	})
}

func (r *itemRepository) Delete(_ context.Context, userID, itemID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := itemKey{userID, itemID}
	if _, ok := r.store.items[key]; !ok {
		return repository.ErrItemNotFound
	}
	delete(r.store.items, key)

	return nil
}

func (r *itemRepository) DeleteIfOrphan(_ context.Context, userID, itemID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := itemKey{userID, itemID}
	item, ok := r.store.items[key]
	if !ok || !item.IsOrphan() {
		return false, nil
	}
	delete(r.store.items, key)

	return true, nil
}

func (r *itemRepository) mutate(userID, itemID string, fn func(*entity.Item)) (*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.items[itemKey{userID, itemID}]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	fn(item)

	return cloneItem(item), nil
}

func (r *itemRepository) findByURLLocked(userID, url string) *entity.Item {
	for key, item := range r.store.items {
		if key.userID == userID && item.URL != nil && *item.URL == url {
			return item
		}
	}

	return nil
}

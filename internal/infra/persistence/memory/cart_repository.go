package memory

import (
	"context"
	"sort"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/util"
)

type cartRepository struct {
	store *Store
}

// NewCartRepository creates a cart directory on store
func NewCartRepository(store *Store) repository.CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) FindByID(_ context.Context, userID, cartID string) (*entity.Cart, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cart, ok := r.store.carts[cartKey{userID, cartID}]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return cloneCart(cart), nil
}

func (r *cartRepository) FindByIDs(_ context.Context, userID string, cartIDs []string) ([]*entity.Cart, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	carts := make([]*entity.Cart, 0, len(cartIDs))
	for _, cartID := range util.DedupeIDs(cartIDs) {
		if cart, ok := r.store.carts[cartKey{userID, cartID}]; ok {
			carts = append(carts, cloneCart(cart))
		}
	}

	return carts, nil
}

func (r *cartRepository) ListByUser(_ context.Context, userID string) ([]*entity.Cart, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	carts := make([]*entity.Cart, 0)
	for key, cart := range r.store.carts {
		if key.userID == userID {
			carts = append(carts, cloneCart(cart))
		}
	}
	sort.SliceStable(carts, func(i, j int) bool {
		if carts[i].CreatedAt.Equal(carts[j].CreatedAt) {
			return carts[i].CartID < carts[j].CartID
		}

		return carts[i].CreatedAt.Before(carts[j].CreatedAt)
	})

	return carts, nil
}

func (r *cartRepository) Create(_ context.Context, cart *entity.Cart) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := cloneCart(cart)
	stored.ItemCount = len(stored.ItemIDs)
	r.store.carts[cartKey{cart.UserID, cart.CartID}] = stored

	return nil
}

func (r *cartRepository) Rename(_ context.Context, userID, cartID, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart, ok := r.store.carts[cartKey{userID, cartID}]
	if !ok {
		return repository.ErrCartNotFound
	}
	cart.CartName = name

	return nil
}

func (r *cartRepository) Delete(_ context.Context, userID, cartID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := cartKey{userID, cartID}
	if _, ok := r.store.carts[key]; !ok {
		return repository.ErrCartNotFound
	}
	delete(r.store.carts, key)

	return nil
}

func (r *cartRepository) AddItemRef(_ context.Context, userID, cartID, itemID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart, ok := r.store.carts[cartKey{userID, cartID}]
	if !ok || util.ContainsID(cart.ItemIDs, itemID) {
		return false, nil
	}
	cart.ItemIDs = append(cart.ItemIDs, itemID)
	cart.ItemCount++

	return true, nil
}

func (r *cartRepository) RemoveItemRef(_ context.Context, userID, cartID, itemID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart, ok := r.store.carts[cartKey{userID, cartID}]
	if !ok || !util.ContainsID(cart.ItemIDs, itemID) {
		return false, nil
	}
	cart.ItemIDs = util.RemoveID(cart.ItemIDs, itemID)
	cart.ItemCount--

	return true, nil
}

func (r *cartRepository) SetItemRefs(_ context.Context, userID, cartID string, itemIDs []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cart, ok := r.store.carts[cartKey{userID, cartID}]
	if !ok {
		return repository.ErrCartNotFound
	}
	cart.ItemIDs = cloneIDs(itemIDs)
	cart.ItemCount = len(itemIDs)

	return nil
}

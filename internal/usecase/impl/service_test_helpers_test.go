package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/infra/persistence/memory"
	"buyhive/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// storeFixtures wires every service to one in-memory store.
type storeFixtures struct {
	users repository.UserRepository
	carts repository.CartRepository
	items repository.ItemRepository

	cartService      usecase.CartUsecase
	itemService      usecase.ItemUsecase
	userService      usecase.UserUsecase
	reconcileService usecase.ReconcileUsecase
}

func newStoreFixtures(t *testing.T) storeFixtures {
	t.Helper()

	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	carts := memory.NewCartRepository(store)
	items := memory.NewItemRepository(store)
	logger := newDiscardLogger()

	return storeFixtures{
		users: users,
		carts: carts,
		items: items,
		cartService: NewCartService(CartServiceParams{
			UserRepo: users, CartRepo: carts, ItemRepo: items, Logger: logger,
		}),
		itemService: NewItemService(ItemServiceParams{
			CartRepo: carts, ItemRepo: items, Logger: logger,
		}),
		userService: NewUserService(users, logger),
		reconcileService: NewReconcileService(ReconcileServiceParams{
			UserRepo: users, CartRepo: carts, ItemRepo: items, Logger: logger,
		}),
	}
}

func (f storeFixtures) seedUser(t *testing.T, userID string) {
	t.Helper()

	_, err := f.users.Upsert(context.Background(), &entity.UserProfile{
		UserID: userID,
		Email:  userID + "@example.com",
		Name:   userID,
	})
	require.NoError(t, err)
}

func (f storeFixtures) createCart(t *testing.T, userID, name string) *entity.Cart {
	t.Helper()

	cart, err := f.cartService.CreateCart(context.Background(), userID, name)
	require.NoError(t, err)

	return cart
}

func (f storeFixtures) createItem(t *testing.T, userID, name string, url *string, cartIDs ...string) *entity.Item {
	t.Helper()

	item, err := f.itemService.CreateItem(context.Background(), userID, &entity.ItemDetails{
		Name:  name,
		Price: "$1.00",
		URL:   url,
	}, cartIDs)
	require.NoError(t, err)

	return item
}

// requireConsistent checks both reference invariants for the user.
func (f storeFixtures) requireConsistent(t *testing.T, userID string) {
	t.Helper()
	ctx := context.Background()

	user, err := f.users.FindByID(ctx, userID)
	require.NoError(t, err)
	carts, err := f.carts.ListByUser(ctx, userID)
	require.NoError(t, err)
	items, err := f.items.ListByUser(ctx, userID)
	require.NoError(t, err)

	cartIDs := make([]string, 0, len(carts))
	for _, cart := range carts {
		cartIDs = append(cartIDs, cart.CartID)
		require.Len(t, cart.ItemIDs, cart.ItemCount, "cart %s item count", cart.CartID)
		for _, itemID := range cart.ItemIDs {
			item, err := f.items.FindByID(ctx, userID, itemID)
			require.NoError(t, err, "cart %s references missing item %s", cart.CartID, itemID)
			require.True(t, item.InCart(cart.CartID), "item %s does not list cart %s", itemID, cart.CartID)
		}
	}
	require.ElementsMatch(t, cartIDs, user.CartIDs)
	require.Equal(t, len(user.CartIDs), user.CartCount)

	for _, item := range items {
		for _, cartID := range item.SelectedCartIDs {
			cart, err := f.carts.FindByID(ctx, userID, cartID)
			require.NoError(t, err, "item %s references missing cart %s", item.ItemID, cartID)
			require.True(t, cart.HasItem(item.ItemID), "cart %s does not list item %s", cartID, item.ItemID)
		}
	}
}

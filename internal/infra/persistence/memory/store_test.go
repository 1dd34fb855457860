package memory

import (
	"context"
	"testing"
	"time"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CartRefsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewStore())

	_, err := users.Upsert(ctx, &entity.UserProfile{UserID: "u1", Email: "u1@example.com", Name: "U1"})
	require.NoError(t, err)

	require.NoError(t, users.AddCartRef(ctx, "u1", "c1"))
	require.NoError(t, users.AddCartRef(ctx, "u1", "c1"))
	require.NoError(t, users.RemoveCartRef(ctx, "u1", "c2"))

	user, err := users.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, user.CartIDs)
	assert.Equal(t, 1, user.CartCount)

	assert.ErrorIs(t, users.AddCartRef(ctx, "ghost", "c1"), repository.ErrUserNotFound)
	assert.ErrorIs(t, users.RemoveCartRef(ctx, "ghost", "c1"), repository.ErrUserNotFound)
}

func TestUserRepository_UpsertOnlyTouchesProfile(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewStore())

	_, err := users.Upsert(ctx, &entity.UserProfile{UserID: "u1", Email: "old@example.com"})
	require.NoError(t, err)
	require.NoError(t, users.AddCartRef(ctx, "u1", "c1"))

	user, err := users.Upsert(ctx, &entity.UserProfile{UserID: "u1", Email: "new@example.com", Name: "New"})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, []string{"c1"}, user.CartIDs)
	assert.Equal(t, 1, user.CartCount)
}

func TestCartRepository_ScopedByOwner(t *testing.T) {
	ctx := context.Background()
	carts := NewCartRepository(NewStore())

	require.NoError(t, carts.Create(ctx, &entity.Cart{CartID: "c1", UserID: "u1", CartName: "A", CreatedAt: time.Now()}))

	_, err := carts.FindByID(ctx, "u2", "c1")
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
	assert.ErrorIs(t, carts.Rename(ctx, "u2", "c1", "B"), repository.ErrCartNotFound)
	assert.ErrorIs(t, carts.Delete(ctx, "u2", "c1"), repository.ErrCartNotFound)

	found, err := carts.FindByIDs(ctx, "u1", []string{"c1", "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestCartRepository_ItemRefsAreGuarded(t *testing.T) {
	ctx := context.Background()
	carts := NewCartRepository(NewStore())
	require.NoError(t, carts.Create(ctx, &entity.Cart{CartID: "c1", UserID: "u1", CartName: "A"}))

	added, err := carts.AddItemRef(ctx, "u1", "c1", "i1")
	require.NoError(t, err)
	assert.True(t, added)
	added, err = carts.AddItemRef(ctx, "u1", "c1", "i1")
	require.NoError(t, err)
	assert.False(t, added)

	removed, err := carts.RemoveItemRef(ctx, "u1", "c1", "i1")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = carts.RemoveItemRef(ctx, "u1", "c1", "i1")
	require.NoError(t, err)
	assert.False(t, removed)

	cart, err := carts.FindByID(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.ItemCount)
	assert.Empty(t, cart.ItemIDs)
}

func TestCartRepository_ListByUserOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	carts := NewCartRepository(NewStore())
	base := time.Now()

	require.NoError(t, carts.Create(ctx, &entity.Cart{CartID: "late", UserID: "u1", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, carts.Create(ctx, &entity.Cart{CartID: "early", UserID: "u1", CreatedAt: base}))
	require.NoError(t, carts.Create(ctx, &entity.Cart{CartID: "other", UserID: "u2", CreatedAt: base}))

	list, err := carts.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "early", list[0].CartID)
	assert.Equal(t, "late", list[1].CartID)
}

func TestItemRepository_URLUniquePerUser(t *testing.T) {
	ctx := context.Background()
	items := NewItemRepository(NewStore())
	url := "https://shop.example/milk"

	require.NoError(t, items.Create(ctx, &entity.Item{ItemID: "i1", UserID: "u1", URL: &url}))
	assert.ErrorIs(t, items.Create(ctx, &entity.Item{ItemID: "i2", UserID: "u1", URL: &url}), repository.ErrDuplicateItemURL)
	assert.NoError(t, items.Create(ctx, &entity.Item{ItemID: "i3", UserID: "u2", URL: &url}))
	// Items without a url never collide.
	assert.NoError(t, items.Create(ctx, &entity.Item{ItemID: "i4", UserID: "u1"}))
	assert.NoError(t, items.Create(ctx, &entity.Item{ItemID: "i5", UserID: "u1"}))
}

func TestItemRepository_DeleteIfOrphan(t *testing.T) {
	ctx := context.Background()
	items := NewItemRepository(NewStore())
	require.NoError(t, items.Create(ctx, &entity.Item{ItemID: "i1", UserID: "u1", SelectedCartIDs: []string{"c1"}}))

	deleted, err := items.DeleteIfOrphan(ctx, "u1", "i1")
	require.NoError(t, err)
	assert.False(t, deleted)

	item, err := items.RemoveCartRef(ctx, "u1", "i1", "c1")
	require.NoError(t, err)
	assert.True(t, item.IsOrphan())

	deleted, err = items.DeleteIfOrphan(ctx, "u1", "i1")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = items.FindByID(ctx, "u1", "i1")
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestItemRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	items := NewItemRepository(NewStore())
	require.NoError(t, items.Create(ctx, &entity.Item{ItemID: "i1", UserID: "u1", SelectedCartIDs: []string{"c1"}}))

	item, err := items.FindByID(ctx, "u1", "i1")
	require.NoError(t, err)
	item.SelectedCartIDs[0] = "tampered"

	again, err := items.FindByID(ctx, "u1", "i1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, again.SelectedCartIDs)
}

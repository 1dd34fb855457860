package impl

import (
	"context"
	"testing"

	"buyhive/internal/domain/entity"
	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_ItemSharedByTwoCarts(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")

	groceries := fx.createCart(t, "u1", "Groceries")
	party := fx.createCart(t, "u1", "Party")
	milk := fx.createItem(t, "u1", "Milk", strPtr("https://shop.example.com/milk"), groceries.CartID, party.CartID)

	assert.ElementsMatch(t, []string{groceries.CartID, party.CartID}, milk.SelectedCartIDs)
	fx.requireConsistent(t, "u1")

	result, err := fx.itemService.RemoveItemFromCart(ctx, "u1", groceries.CartID, milk.ItemID)
	require.NoError(t, err)
	assert.False(t, result.ItemDeleted)
	require.NotNil(t, result.Item)
	assert.Equal(t, []string{party.CartID}, result.Item.SelectedCartIDs)
	fx.requireConsistent(t, "u1")

	result, err = fx.itemService.RemoveItemFromCart(ctx, "u1", party.CartID, milk.ItemID)
	require.NoError(t, err)
	assert.True(t, result.ItemDeleted)
	assert.Nil(t, result.Item)

	_, err = fx.items.FindByID(ctx, "u1", milk.ItemID)
	assert.Error(t, err)
	fx.requireConsistent(t, "u1")
}

func TestScenario_RemoveItemFromCartTwiceReportsNotFound(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")

	a := fx.createCart(t, "u1", "A")
	b := fx.createCart(t, "u1", "B")
	item := fx.createItem(t, "u1", "Lamp", nil, a.CartID, b.CartID)

	_, err := fx.itemService.RemoveItemFromCart(ctx, "u1", a.CartID, item.ItemID)
	require.NoError(t, err)

	_, err = fx.itemService.RemoveItemFromCart(ctx, "u1", a.CartID, item.ItemID)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)

	stored, err := fx.items.FindByID(ctx, "u1", item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.CartID}, stored.SelectedCartIDs)
	fx.requireConsistent(t, "u1")
}

func TestScenario_DeleteCartCascadesToOrphansOnly(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")

	doomed := fx.createCart(t, "u1", "Doomed")
	keeper := fx.createCart(t, "u1", "Keeper")

	only := fx.createItem(t, "u1", "Only here", nil, doomed.CartID)
	shared1 := fx.createItem(t, "u1", "Shared one", nil, doomed.CartID, keeper.CartID)
	shared2 := fx.createItem(t, "u1", "Shared two", nil, doomed.CartID, keeper.CartID)

	result, err := fx.cartService.DeleteCart(ctx, "u1", doomed.CartID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.OrphansDeleted)
	assert.Equal(t, 0, result.Failed)
	// user back-reference plus one step per item
	assert.Equal(t, 4, result.Attempted)

	_, err = fx.items.FindByID(ctx, "u1", only.ItemID)
	assert.Error(t, err)

	for _, itemID := range []string{shared1.ItemID, shared2.ItemID} {
		item, err := fx.items.FindByID(ctx, "u1", itemID)
		require.NoError(t, err)
		assert.Equal(t, []string{keeper.CartID}, item.SelectedCartIDs)
	}

	carts, err := fx.cartService.ListCarts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, carts, 1)
	assert.Equal(t, keeper.CartID, carts[0].CartID)
	assert.Equal(t, 2, carts[0].ItemCount)

	user, err := fx.userService.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{keeper.CartID}, user.CartIDs)

	fx.requireConsistent(t, "u1")
}

func TestScenario_URLUniquePerUserOnly(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")
	fx.seedUser(t, "u2")

	c1 := fx.createCart(t, "u1", "Mine")
	c2 := fx.createCart(t, "u2", "Theirs")
	url := "https://shop.example.com/p/42"

	first := fx.createItem(t, "u1", "Thing", strPtr(url), c1.CartID)
	fx.createItem(t, "u2", "Thing", strPtr(url), c2.CartID)

	_, err := fx.itemService.CreateItem(ctx, "u1", &entity.ItemDetails{
		Name:  "Thing again",
		Price: "$2.00",
		URL:   strPtr("  " + url + "  "),
	}, []string{c1.CartID})

	dup, ok := errors.AsType[*domainerrors.DuplicateItemError](err)
	require.True(t, ok, "expected duplicate error, got %v", err)
	assert.Equal(t, first.ItemID, dup.Existing.ItemID)
	assert.Contains(t, dup.Error(), "Mine")

	items, err := fx.items.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestScenario_MoveToNoCartKeepsItem(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")

	a := fx.createCart(t, "u1", "A")
	b := fx.createCart(t, "u1", "B")
	item := fx.createItem(t, "u1", "Chair", nil, a.CartID)

	moved, err := fx.itemService.MoveItem(ctx, "u1", item.ItemID, []string{b.CartID, b.CartID})
	require.NoError(t, err)
	assert.Equal(t, []string{b.CartID}, moved.SelectedCartIDs)
	fx.requireConsistent(t, "u1")

	parked, err := fx.itemService.MoveItem(ctx, "u1", item.ItemID, []string{})
	require.NoError(t, err)
	assert.Empty(t, parked.SelectedCartIDs)

	_, err = fx.items.FindByID(ctx, "u1", item.ItemID)
	require.NoError(t, err, "an item moved to no cart is kept")
	fx.requireConsistent(t, "u1")

	report, err := fx.reconcileService.Reconcile(ctx, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{item.ItemID}, report.Plan.Parked)
	assert.Empty(t, report.Plan.Orphans)

	_, err = fx.items.FindByID(ctx, "u1", item.ItemID)
	assert.NoError(t, err, "reconcile must not delete a parked item")
}

func TestScenario_MoveToMissingCartWritesNothing(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")

	a := fx.createCart(t, "u1", "A")
	item := fx.createItem(t, "u1", "Desk", nil, a.CartID)

	_, err := fx.itemService.MoveItem(ctx, "u1", item.ItemID, []string{"missing"})
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)

	stored, err := fx.items.FindByID(ctx, "u1", item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.CartID}, stored.SelectedCartIDs)
	fx.requireConsistent(t, "u1")
}

func TestScenario_MoveNamesMissingCartAmongValidOnes(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")

	c1 := fx.createCart(t, "u1", "Groceries")
	milk := fx.createItem(t, "u1", "Milk", strPtr("https://x.example.com/milk"), c1.CartID)

	_, err := fx.itemService.CreateItem(ctx, "u1", &entity.ItemDetails{
		Name:  "Milk2",
		Price: "$1.00",
		URL:   strPtr("https://x.example.com/milk"),
	}, []string{c1.CartID})
	dup, ok := errors.AsType[*domainerrors.DuplicateItemError](err)
	require.True(t, ok, "expected duplicate error, got %v", err)
	assert.Equal(t, milk.ItemID, dup.Existing.ItemID)

	_, err = fx.itemService.MoveItem(ctx, "u1", milk.ItemID, []string{c1.CartID, "c2"})
	require.ErrorIs(t, err, domainerrors.ErrCartNotFound)
	notFound, ok := errors.AsType[*domainerrors.BaseError](err)
	require.True(t, ok)
	assert.Equal(t, "c2", notFound.Details())

	stored, err := fx.items.FindByID(ctx, "u1", milk.ItemID)
	require.NoError(t, err)
	assert.Equal(t, []string{c1.CartID}, stored.SelectedCartIDs)

	cart, err := fx.carts.FindByID(ctx, "u1", c1.CartID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)
	fx.requireConsistent(t, "u1")
}

func TestScenario_NukeItemClearsEveryCart(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")

	a := fx.createCart(t, "u1", "A")
	b := fx.createCart(t, "u1", "B")
	item := fx.createItem(t, "u1", "Rug", nil, a.CartID, b.CartID)

	result, err := fx.itemService.NukeItem(ctx, "u1", item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ModifiedCarts)
	assert.Equal(t, 0, result.FailedCarts)

	_, err = fx.itemService.NukeItem(ctx, "u1", item.ItemID)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
	fx.requireConsistent(t, "u1")
}

func TestScenario_ReconcileRepairsDrift(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")

	a := fx.createCart(t, "u1", "A")
	b := fx.createCart(t, "u1", "B")
	kept := fx.createItem(t, "u1", "Kept", nil, a.CartID, b.CartID)
	stranded := fx.createItem(t, "u1", "Stranded", nil, b.CartID)

	// simulate an interrupted DeleteCart: the cart is gone, nothing else changed
	require.NoError(t, fx.carts.Delete(ctx, "u1", b.CartID))
	// and a lost cart write
	require.NoError(t, fx.carts.SetItemRefs(ctx, "u1", a.CartID, []string{}))

	report, err := fx.reconcileService.Reconcile(ctx, "u1", false)
	require.NoError(t, err)
	assert.False(t, report.Applied)
	assert.False(t, report.Plan.Empty())
	assert.Equal(t, []string{stranded.ItemID}, report.Plan.Orphans)

	report, err = fx.reconcileService.Reconcile(ctx, "u1", true)
	require.NoError(t, err)
	assert.True(t, report.Applied)
	assert.Equal(t, 0, report.Failed)

	_, err = fx.items.FindByID(ctx, "u1", stranded.ItemID)
	assert.Error(t, err)

	item, err := fx.items.FindByID(ctx, "u1", kept.ItemID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.CartID}, item.SelectedCartIDs)
	fx.requireConsistent(t, "u1")

	report, err = fx.reconcileService.Reconcile(ctx, "u1", true)
	require.NoError(t, err)
	assert.True(t, report.Plan.Empty())
	assert.False(t, report.Applied)
}

func TestScenario_CartsAreScopedToOwner(t *testing.T) {
	fx := newStoreFixtures(t)
	ctx := context.Background()
	fx.seedUser(t, "u1")
	fx.seedUser(t, "u2")

	cart := fx.createCart(t, "u1", "Private")

	_, err := fx.cartService.GetCartItems(ctx, "u2", cart.CartID)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)

	_, err = fx.cartService.DeleteCart(ctx, "u2", cart.CartID)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)

	_, err = fx.itemService.CreateItem(ctx, "u2", &entity.ItemDetails{Name: "x", Price: "1"}, []string{cart.CartID})
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

package reconcile

import (
	"testing"

	"buyhive/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ConsistentDataProducesEmptyPlan(t *testing.T) {
	user := &entity.User{UserID: "u1", CartIDs: []string{"c1", "c2"}, CartCount: 2}
	carts := []*entity.Cart{
		{CartID: "c1", UserID: "u1", ItemIDs: []string{"i1", "i2"}, ItemCount: 2},
		{CartID: "c2", UserID: "u1", ItemIDs: []string{"i2"}, ItemCount: 1},
	}
	items := []*entity.Item{
		{ItemID: "i1", SelectedCartIDs: []string{"c1"}},
		{ItemID: "i2", SelectedCartIDs: []string{"c1", "c2"}},
	}

	plan := Build(user, carts, items)

	assert.True(t, plan.Empty())
}

func TestBuild_UserListFollowsOwnedCarts(t *testing.T) {
	// c3 was deleted after the user lost track of c2.
	user := &entity.User{UserID: "u1", CartIDs: []string{"c1", "c3"}, CartCount: 2}
	carts := []*entity.Cart{
		{CartID: "c1", UserID: "u1", ItemIDs: []string{}},
		{CartID: "c2", UserID: "u1", ItemIDs: []string{}},
	}

	plan := Build(user, carts, nil)

	assert.Equal(t, []string{"c1", "c2"}, plan.UserCartIDs)
	assert.Empty(t, plan.CartFixes)
}

func TestBuild_CartListFollowsItemMembership(t *testing.T) {
	user := &entity.User{UserID: "u1", CartIDs: []string{"c1"}, CartCount: 1}
	carts := []*entity.Cart{
		// i9 is stale and i2 is missing.
		{CartID: "c1", UserID: "u1", ItemIDs: []string{"i9", "i1"}, ItemCount: 2},
	}
	items := []*entity.Item{
		{ItemID: "i1", SelectedCartIDs: []string{"c1"}},
		{ItemID: "i2", SelectedCartIDs: []string{"c1"}},
	}

	plan := Build(user, carts, items)

	require.Len(t, plan.CartFixes, 1)
	assert.Equal(t, CartFix{CartID: "c1", ItemIDs: []string{"i1", "i2"}}, plan.CartFixes[0])
	assert.Nil(t, plan.UserCartIDs)
}

func TestBuild_DropsMissingCartsAndFlagsOrphans(t *testing.T) {
	user := &entity.User{UserID: "u1", CartIDs: []string{"c1"}, CartCount: 1}
	carts := []*entity.Cart{
		{CartID: "c1", UserID: "u1", ItemIDs: []string{"i1"}, ItemCount: 1},
	}
	items := []*entity.Item{
		{ItemID: "i1", SelectedCartIDs: []string{"c1", "gone"}},
		{ItemID: "i2", SelectedCartIDs: []string{"gone"}},
		{ItemID: "i3", SelectedCartIDs: []string{}},
	}

	plan := Build(user, carts, items)

	assert.Equal(t, []ItemFix{{ItemID: "i1", CartIDs: []string{"c1"}}}, plan.ItemFixes)
	assert.Equal(t, []string{"i2"}, plan.Orphans)
	assert.Equal(t, []string{"i3"}, plan.Parked)
	assert.Empty(t, plan.CartFixes)
}

func TestBuild_CountDriftIsRepaired(t *testing.T) {
	user := &entity.User{UserID: "u1", CartIDs: []string{"c1"}, CartCount: 3}
	carts := []*entity.Cart{
		{CartID: "c1", UserID: "u1", ItemIDs: []string{"i1"}, ItemCount: 0},
	}
	items := []*entity.Item{
		{ItemID: "i1", SelectedCartIDs: []string{"c1"}},
	}

	plan := Build(user, carts, items)

	assert.Equal(t, []string{"c1"}, plan.UserCartIDs)
	assert.Equal(t, []CartFix{{CartID: "c1", ItemIDs: []string{"i1"}}}, plan.CartFixes)
}

func TestBuild_MissingUser(t *testing.T) {
	carts := []*entity.Cart{{CartID: "c1", UserID: "u1", ItemIDs: []string{}}}

	plan := Build(nil, carts, nil)

	assert.Nil(t, plan.UserCartIDs)
	assert.True(t, plan.Empty())
}

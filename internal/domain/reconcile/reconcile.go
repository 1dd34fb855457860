// Package reconcile rebuilds derived references from their authoritative side.
//
// Cart.UserID is authoritative over User.CartIDs, and Item.SelectedCartIDs is
// authoritative over Cart.ItemIDs. Plan never reads the derived lists to decide
// membership; it only compares them to detect drift.
package reconcile

import (
	"slices"

	"buyhive/internal/domain/entity"
	"buyhive/internal/util"
)

// CartFix rewrites one cart's item list.
type CartFix struct {
	CartID  string
	ItemIDs []string
}

// ItemFix rewrites one item's membership after dropping carts that no longer exist.
type ItemFix struct {
	ItemID  string
	CartIDs []string
}

// Plan is the set of writes that restores every reference invariant for one user.
type Plan struct {
	UserID string

	// UserCartIDs is non-nil when the user's cart list differs from the carts they own.
	UserCartIDs []string

	CartFixes []CartFix
	ItemFixes []ItemFix

	// Orphans are items whose every cart is gone. They are deleted.
	Orphans []string

	// Parked are items moved to no cart on purpose. They are reported, never deleted.
	Parked []string
}

// Empty reports whether the data was already consistent.
func (p *Plan) Empty() bool {
	return p.UserCartIDs == nil &&
		len(p.CartFixes) == 0 &&
		len(p.ItemFixes) == 0 &&
		len(p.Orphans) == 0
}

// Build computes the plan for user from every cart and item they own.
// user may be nil when the user document is missing; no user fix is produced then.
func Build(user *entity.User, carts []*entity.Cart, items []*entity.Item) *Plan {
	plan := &Plan{}
	if user != nil {
		plan.UserID = user.UserID
	}

	ownedCartIDs := make([]string, 0, len(carts))
	cartExists := make(map[string]struct{}, len(carts))
	for _, cart := range carts {
		ownedCartIDs = append(ownedCartIDs, cart.CartID)
		cartExists[cart.CartID] = struct{}{}
	}

	if user != nil && !sameSet(user.CartIDs, ownedCartIDs) {
		plan.UserCartIDs = ownedCartIDs
	}

	// Cart item lists are derived from the surviving membership of each item.
	derived := make(map[string][]string, len(carts))
	for _, item := range items {
		if item.IsOrphan() {
			plan.Parked = append(plan.Parked, item.ItemID)

			continue
		}

		kept := make([]string, 0, len(item.SelectedCartIDs))
		for _, cartID := range util.DedupeIDs(item.SelectedCartIDs) {
			if _, ok := cartExists[cartID]; ok {
				kept = append(kept, cartID)
				derived[cartID] = append(derived[cartID], item.ItemID)
			}
		}

		if len(kept) == 0 {
			plan.Orphans = append(plan.Orphans, item.ItemID)

			continue
		}

		if !slices.Equal(kept, item.SelectedCartIDs) {
			plan.ItemFixes = append(plan.ItemFixes, ItemFix{ItemID: item.ItemID, CartIDs: kept})
		}
	}

	for _, cart := range carts {
		want := derived[cart.CartID]
		if want == nil {
			want = []string{}
		}

		if !sameSet(cart.ItemIDs, want) || cart.ItemCount != len(cart.ItemIDs) {
			plan.CartFixes = append(plan.CartFixes, CartFix{CartID: cart.CartID, ItemIDs: orderLike(cart.ItemIDs, want)})
		}
	}

	if user != nil && plan.UserCartIDs == nil && user.CartCount != len(user.CartIDs) {
		plan.UserCartIDs = ownedCartIDs
	}

	return plan
}

// sameSet compares two id lists ignoring order; duplicates count as drift.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[string]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}

	for _, n := range counts {
		if n != 0 {
			return false
		}
	}

	return true
}

// orderLike keeps the existing order of current for ids that survive and appends the rest.
func orderLike(current, want []string) []string {
	wantSet := make(map[string]struct{}, len(want))
	for _, id := range want {
		wantSet[id] = struct{}{}
	}

	out := make([]string, 0, len(want))
	for _, id := range util.DedupeIDs(current) {
		if _, ok := wantSet[id]; ok {
			out = append(out, id)
			delete(wantSet, id)
		}
	}
	for _, id := range want {
		if _, ok := wantSet[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

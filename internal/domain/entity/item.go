package entity

import "time"

const (
	ItemNameMaxLength  = 200
	ItemNotesMaxLength = 500
)

// Item is a saved product. It belongs to one user and may sit in several of that user's carts.
type Item struct {
	ItemID          string    `json:"item_id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Price           string    `json:"price"`
	Image           *string   `json:"image,omitempty"`
	URL             *string   `json:"url,omitempty"` // Unique per user when present.
	Notes           *string   `json:"notes,omitempty"`
	AddedAt         time.Time `json:"added_at"`
	SelectedCartIDs []string  `json:"selected_cart_ids"` // Authoritative over Cart.ItemIDs.
}

// InCart reports whether the item's membership set contains cartID.
func (i *Item) InCart(cartID string) bool {
	return containsID(i.SelectedCartIDs, cartID)
}

// IsOrphan reports whether the item belongs to no cart.
func (i *Item) IsOrphan() bool {
	return len(i.SelectedCartIDs) == 0
}

// ItemDetails holds the user-supplied fields of a new item.
type ItemDetails struct {
	Name  string
	Price string
	Image *string
	URL   *string
	Notes *string
}

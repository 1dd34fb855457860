package entity

import "time"

const (
	// CartNameMaxLength is the longest cart name accepted after sanitizing.
	CartNameMaxLength = 100
)

// Cart is a named list owned by exactly one user.
type Cart struct {
	CartID    string    `json:"cart_id"`
	UserID    string    `json:"user_id"` // Owner. Authoritative over User.CartIDs.
	CartName  string    `json:"cart_name"`
	ItemCount int       `json:"item_count"` // Denormalized length of ItemIDs.
	CreatedAt time.Time `json:"created_at"`
	ItemIDs   []string  `json:"item_ids"` // Derived from Item.SelectedCartIDs.
}

// HasItem reports whether the cart references itemID.
func (c *Cart) HasItem(itemID string) bool {
	return containsID(c.ItemIDs, itemID)
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the owner of carts and items. UserID is the subject issued by the identity provider.
type User struct {
	UserID    string    `json:"user_id"`    // The identity subject, e.g. "auth0|abc".
	Email     string    `json:"email"`      // The user's primary contact email.
	Name      string    `json:"name"`       // The user's display name.
	CartCount int       `json:"cart_count"` // Denormalized length of CartIDs.
	CartIDs   []string  `json:"cart_ids"`   // Carts owned by the user. Derived from Cart.UserID.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this user was first seen.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last profile update.
}

// HasCart reports whether the user's cart list references cartID.
func (u *User) HasCart(cartID string) bool {
	return containsID(u.CartIDs, cartID)
}

// UserProfile carries the identity fields copied onto the user on every verification.
type UserProfile struct {
	UserID string
	Email  string
	Name   string
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}

// Package memory implements the directories in process memory.
// It backs local development and the engine's scenario tests.
package memory

import (
	"slices"
	"sync"

	"buyhive/internal/domain/entity"
)

type cartKey struct {
	userID string
	cartID string
}

type itemKey struct {
	userID string
	itemID string
}

// Store holds every collection. Each repository call takes the lock once,
// so a call is atomic for the single record it touches and nothing more.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*entity.User
	carts       map[cartKey]*entity.Cart
	items       map[itemKey]*entity.Item
	feedback    []*entity.Feedback
	extractions []*entity.FailedExtraction
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users: make(map[string]*entity.User),
		carts: make(map[cartKey]*entity.Cart),
		items: make(map[itemKey]*entity.Item),
	}
}

// Feedback returns a copy of the stored feedback messages
func (s *Store) Feedback() []*entity.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.feedback)
}

// Extractions returns a copy of the stored failed extraction reports
func (s *Store) Extractions() []*entity.FailedExtraction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.extractions)
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.CartIDs = cloneIDs(u.CartIDs)

	return &c
}

func cloneCart(cart *entity.Cart) *entity.Cart {
	c := *cart
	c.ItemIDs = cloneIDs(cart.ItemIDs)

	return &c
}

func cloneItem(item *entity.Item) *entity.Item {
	c := *item
	c.SelectedCartIDs = cloneIDs(item.SelectedCartIDs)
	c.Image = clonePtr(item.Image)
	c.URL = clonePtr(item.URL)
	c.Notes = clonePtr(item.Notes)

	return &c
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return slices.Clone(ids)
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}

package memory

import (
	"context"
	"slices"
	"time"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/util"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user directory on store
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(_ context.Context, userID string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *userRepository) Upsert(_ context.Context, profile *entity.UserProfile) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	user, ok := r.store.users[profile.UserID]
	if !ok {
		user = &entity.User{
			UserID:    profile.UserID,
			CartIDs:   []string{},
			CreatedAt: now,
		}
		r.store.users[profile.UserID] = user
	}
	user.Email = profile.Email
	user.Name = profile.Name
	user.UpdatedAt = now

	return cloneUser(user), nil
}

func (r *userRepository) AddCartRef(_ context.Context, userID, cartID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if !util.ContainsID(user.CartIDs, cartID) {
		user.CartIDs = append(user.CartIDs, cartID)
		user.CartCount++
	}

	return nil
}

func (r *userRepository) RemoveCartRef(_ context.Context, userID, cartID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if util.ContainsID(user.CartIDs, cartID) {
		user.CartIDs = util.RemoveID(user.CartIDs, cartID)
		user.CartCount--
	}

	return nil
}

func (r *userRepository) SetCartRefs(_ context.Context, userID string, cartIDs []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.CartIDs = cloneIDs(cartIDs)
	user.CartCount = len(cartIDs)
	user.UpdatedAt = time.Now().UTC()

	return nil
}

func (r *userRepository) ListIDs(_ context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := make([]string, 0, len(r.store.users))
	for id := range r.store.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, nil
}

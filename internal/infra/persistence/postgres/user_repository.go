// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/infra/persistence/model"
	"buyhive/internal/infra/persistence/postgres/query"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using the GORM Gen query builder.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a user by the identity subject.
func (repo *userRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).
		Where(u.UserID.Eq(userID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(userM), nil
}

// Upsert inserts a new user or refreshes the profile fields of an existing one.
// The cart columns of an existing row are left alone.
func (repo *userRepository) Upsert(ctx context.Context, profile *entity.UserProfile) (*entity.User, error) {
	u := repo.q.UserModel
	now := time.Now().UTC()
	userM := &model.UserModel{
		UserID:    profile.UserID,
		Email:     profile.Email,
		Name:      profile.Name,
		CartIDs:   pq.StringArray{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: u.UserID.ColumnName().String()}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "name", "updated_at"}),
		}).
		Create(userM); err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	return repo.FindByID(ctx, profile.UserID)
}

// AddCartRef appends a cart id unless the user already lists it.
func (repo *userRepository) AddCartRef(ctx context.Context, userID, cartID string) error {
	u := repo.q.UserModel
	info, err := u.WithContext(ctx).
		Where(u.UserID.Eq(userID), field.NewUnsafeFieldRaw("NOT (?::text = ANY(cart_ids))", cartID)).
		Updates(map[string]any{
			"cart_ids":   gorm.Expr("array_append(cart_ids, ?::text)", cartID),
			"cart_count": gorm.Expr("cart_count + 1"),
			"updated_at": time.Now().UTC(),
		})
	if err != nil {
		return errors.Wrap(err, "failed to add cart reference")
	}
	if info.RowsAffected > 0 {
		return nil
	}

	return repo.requireUser(ctx, userID)
}

// RemoveCartRef removes a cart id only if the user lists it.
func (repo *userRepository) RemoveCartRef(ctx context.Context, userID, cartID string) error {
	u := repo.q.UserModel
	info, err := u.WithContext(ctx).
		Where(u.UserID.Eq(userID), field.NewUnsafeFieldRaw("?::text = ANY(cart_ids)", cartID)).
		Updates(map[string]any{
			"cart_ids":   gorm.Expr("array_remove(cart_ids, ?::text)", cartID),
			"cart_count": gorm.Expr("cart_count - 1"),
			"updated_at": time.Now().UTC(),
		})
	if err != nil {
		return errors.Wrap(err, "failed to remove cart reference")
	}
	if info.RowsAffected > 0 {
		return nil
	}

	return repo.requireUser(ctx, userID)
}

// SetCartRefs overwrites the cart list and count.
func (repo *userRepository) SetCartRefs(ctx context.Context, userID string, cartIDs []string) error {
	u := repo.q.UserModel
	info, err := u.WithContext(ctx).
		Where(u.UserID.Eq(userID)).
		Updates(map[string]any{
			"cart_ids":   pq.StringArray(nonNil(cartIDs)),
			"cart_count": len(cartIDs),
			"updated_at": time.Now().UTC(),
		})
	if err != nil {
		return errors.Wrap(err, "failed to set cart references")
	}
	if info.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) requireUser(ctx context.Context, userID string) error {
	u := repo.q.UserModel
	count, err := u.WithContext(ctx).
		Where(u.UserID.Eq(userID)).
		Count()
	if err != nil {
		return errors.Wrap(err, "failed to check user")
	}
	if count == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListIDs returns every user id in ascending order.
func (repo *userRepository) ListIDs(ctx context.Context) ([]string, error) {
	u := repo.q.UserModel
	var ids []string
	if err := u.WithContext(ctx).
		Order(u.UserID).
		Pluck(u.UserID, &ids); err != nil {
		return nil, errors.Wrap(err, "failed to list user IDs")
	}

	return ids, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		UserID:    data.UserID,
		Email:     data.Email,
		Name:      data.Name,
		CartCount: data.CartCount,
		CartIDs:   nonNil(data.CartIDs),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}

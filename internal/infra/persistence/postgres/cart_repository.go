package postgres

import (
	"context"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/infra/persistence/model"
	"buyhive/internal/infra/persistence/postgres/query"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	q *query.Query
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		q: query.Use(db),
	}
}

// owned narrows a statement to one cart of the user.
func (repo *cartRepository) owned(userID, cartID string) []gen.Condition {
	c := repo.q.CartModel

	return []gen.Condition{c.CartID.Eq(cartID), c.UserID.Eq(userID)}
}

// FindByID retrieves one cart of the user.
func (repo *cartRepository) FindByID(ctx context.Context, userID, cartID string) (*entity.Cart, error) {
	c := repo.q.CartModel
	cartM, err := c.WithContext(ctx).
		Where(repo.owned(userID, cartID)...).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by ID")
	}

	return toCartDomain(cartM), nil
}

// FindByIDs retrieves the existing carts among cartIDs.
func (repo *cartRepository) FindByIDs(ctx context.Context, userID string, cartIDs []string) ([]*entity.Cart, error) {
	if len(cartIDs) == 0 {
		return []*entity.Cart{}, nil
	}

	c := repo.q.CartModel
	cartModels, err := c.WithContext(ctx).
		Where(c.UserID.Eq(userID), c.CartID.In(cartIDs...)).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find carts by IDs")
	}

	return toCartsDomain(cartModels), nil
}

// ListByUser retrieves the user's carts, oldest first.
func (repo *cartRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Cart, error) {
	c := repo.q.CartModel
	cartModels, err := c.WithContext(ctx).
		Where(c.UserID.Eq(userID)).
		Order(c.CreatedAt).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carts by user")
	}

	return toCartsDomain(cartModels), nil
}

// Create persists a new cart.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	if err := repo.q.CartModel.WithContext(ctx).Create(fromCartDomain(cart)); err != nil {
		return errors.Wrap(err, "failed to create cart")
	}

	return nil
}

// Rename changes the cart name.
func (repo *cartRepository) Rename(ctx context.Context, userID, cartID, name string) error {
	c := repo.q.CartModel
	info, err := c.WithContext(ctx).
		Where(repo.owned(userID, cartID)...).
		Update(c.CartName, name)
	if err != nil {
		return errors.Wrap(err, "failed to rename cart")
	}
	if info.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// Delete removes the cart row.
func (repo *cartRepository) Delete(ctx context.Context, userID, cartID string) error {
	c := repo.q.CartModel
	info, err := c.WithContext(ctx).
		Where(repo.owned(userID, cartID)...).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}
	if info.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// AddItemRef appends an item id unless the cart already lists it.
func (repo *cartRepository) AddItemRef(ctx context.Context, userID, cartID, itemID string) (bool, error) {
	c := repo.q.CartModel
	info, err := c.WithContext(ctx).
		Where(repo.owned(userID, cartID)...).
		Where(field.NewUnsafeFieldRaw("NOT (?::text = ANY(item_ids))", itemID)).
		Updates(map[string]any{
			"item_ids":   gorm.Expr("array_append(item_ids, ?::text)", itemID),
			"item_count": gorm.Expr("item_count + 1"),
		})
	if err != nil {
		return false, errors.Wrap(err, "failed to add item reference")
	}

	return info.RowsAffected > 0, nil
}

// RemoveItemRef removes an item id only if the cart lists it.
func (repo *cartRepository) RemoveItemRef(ctx context.Context, userID, cartID, itemID string) (bool, error) {
	c := repo.q.CartModel
	info, err := c.WithContext(ctx).
		Where(repo.owned(userID, cartID)...).
		Where(field.NewUnsafeFieldRaw("?::text = ANY(item_ids)", itemID)).
		Updates(map[string]any{
			"item_ids":   gorm.Expr("array_remove(item_ids, ?::text)", itemID),
			"item_count": gorm.Expr("item_count - 1"),
		})
	if err != nil {
		return false, errors.Wrap(err, "failed to remove item reference")
	}

	return info.RowsAffected > 0, nil
}

// SetItemRefs overwrites the item list and count.
func (repo *cartRepository) SetItemRefs(ctx context.Context, userID, cartID string, itemIDs []string) error {
	c := repo.q.CartModel
	info, err := c.WithContext(ctx).
		Where(repo.owned(userID, cartID)...).
		Updates(map[string]any{
			"item_ids":   pq.StringArray(nonNil(itemIDs)),
			"item_count": len(itemIDs),
		})
	if err != nil {
		return errors.Wrap(err, "failed to set item references")
	}
	if info.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		CartID:    data.CartID,
		UserID:    data.UserID,
		CartName:  data.CartName,
		ItemCount: data.ItemCount,
		CreatedAt: data.CreatedAt,
		ItemIDs:   nonNil(data.ItemIDs),
	}
}

func toCartsDomain(models []*model.CartModel) []*entity.Cart {
	carts := make([]*entity.Cart, 0, len(models))
	for _, cartM := range models {
		carts = append(carts, toCartDomain(cartM))
	}

	return carts
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		CartID:    data.CartID,
		UserID:    data.UserID,
		CartName:  data.CartName,
		ItemCount: len(data.ItemIDs),
		CreatedAt: data.CreatedAt,
		ItemIDs:   pq.StringArray(nonNil(data.ItemIDs)),
	}
}

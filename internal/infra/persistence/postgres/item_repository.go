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

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	q *query.Query
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		q: query.Use(db),
	}
}

func (repo *itemRepository) owned(userID, itemID string) []gen.Condition {
	i := repo.q.ItemModel

	return []gen.Condition{i.ItemID.Eq(itemID), i.UserID.Eq(userID)}
}

// FindByID retrieves one item of the user.
func (repo *itemRepository) FindByID(ctx context.Context, userID, itemID string) (*entity.Item, error) {
	return repo.first(ctx, repo.owned(userID, itemID)...)
}

// FindByIDs retrieves items in the order of itemIDs, skipping missing ones.
func (repo *itemRepository) FindByIDs(ctx context.Context, userID string, itemIDs []string) ([]*entity.Item, error) {
	if len(itemIDs) == 0 {
		return []*entity.Item{}, nil
	}

	i := repo.q.ItemModel
	itemModels, err := i.WithContext(ctx).
		Where(i.UserID.Eq(userID), i.ItemID.In(itemIDs...)).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items by IDs")
	}

	byID := make(map[string]*model.ItemModel, len(itemModels))
	for _, itemM := range itemModels {
		byID[itemM.ItemID] = itemM
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, id := range itemIDs {
		if itemM, ok := byID[id]; ok {
			items = append(items, toItemDomain(itemM))
			delete(byID, id)
		}
	}

	return items, nil
}

// FindByURL retrieves the user's item saved from url.
func (repo *itemRepository) FindByURL(ctx context.Context, userID, url string) (*entity.Item, error) {
	i := repo.q.ItemModel

	return repo.first(ctx, i.UserID.Eq(userID), i.URL.Eq(url))
}

// ListByUser retrieves every item of the user.
func (repo *itemRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Item, error) {
	i := repo.q.ItemModel
	itemModels, err := i.WithContext(ctx).
		Where(i.UserID.Eq(userID)).
		Order(i.AddedAt).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items by user")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// Create persists a new item.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	if err := repo.q.ItemModel.WithContext(ctx).Create(fromItemDomain(item)); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateItemURL
		}

		return errors.Wrap(err, "failed to create item")
	}

	return nil
}

// UpdateNote replaces the notes column.
func (repo *itemRepository) UpdateNote(ctx context.Context, userID, itemID string, note *string) (*entity.Item, error) {
	return repo.updateReturning(ctx, userID, itemID, map[string]any{
		"notes": note,
	})
}

// SetCartRefs overwrites the item's cart membership.
func (repo *itemRepository) SetCartRefs(ctx context.Context, userID, itemID string, cartIDs []string) (*entity.Item, error) {
	return repo.updateReturning(ctx, userID, itemID, map[string]any{
		"selected_cart_ids": pq.StringArray(nonNil(cartIDs)),
	})
}

// RemoveCartRef drops cartID from the item's cart membership.
func (repo *itemRepository) RemoveCartRef(ctx context.Context, userID, itemID, cartID string) (*entity.Item, error) {
	return repo.updateReturning(ctx, userID, itemID, map[string]any{
		"selected_cart_ids": gorm.Expr("array_remove(selected_cart_ids, ?::text)", cartID),
	})
}

// Delete removes the item row.
func (repo *itemRepository) Delete(ctx context.Context, userID, itemID string) error {
	info, err := repo.q.ItemModel.WithContext(ctx).
		Where(repo.owned(userID, itemID)...).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete item")
	}
	if info.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// DeleteIfOrphan removes the item only when it belongs to no cart.
func (repo *itemRepository) DeleteIfOrphan(ctx context.Context, userID, itemID string) (bool, error) {
	info, err := repo.q.ItemModel.WithContext(ctx).
		Where(repo.owned(userID, itemID)...).
		Where(field.NewUnsafeFieldRaw("cardinality(selected_cart_ids) = 0")).
		Delete()
	if err != nil {
		return false, errors.Wrap(err, "failed to delete orphan item")
	}

	return info.RowsAffected > 0, nil
}

func (repo *itemRepository) first(ctx context.Context, conds ...gen.Condition) (*entity.Item, error) {
	itemM, err := repo.q.ItemModel.WithContext(ctx).
		Where(conds...).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return toItemDomain(itemM), nil
}

// updateReturning applies a single-row update and scans the new row back.
func (repo *itemRepository) updateReturning(ctx context.Context, userID, itemID string, values map[string]any) (*entity.Item, error) {
	var itemM model.ItemModel

	info, err := repo.q.ItemModel.WithContext(ctx).
		Where(repo.owned(userID, itemID)...).
		Returning(&itemM).
		Updates(values)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update item")
	}
	if info.RowsAffected == 0 {
		return nil, repository.ErrItemNotFound
	}

	return toItemDomain(&itemM), nil
}

// --- Mapper Functions ---

func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ItemID:          data.ItemID,
		UserID:          data.UserID,
		Name:            data.Name,
		Price:           data.Price,
		Image:           data.Image,
		URL:             data.URL,
		Notes:           data.Notes,
		AddedAt:         data.AddedAt,
		SelectedCartIDs: nonNil(data.SelectedCartIDs),
	}
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ItemID:          data.ItemID,
		UserID:          data.UserID,
		Name:            data.Name,
		Price:           data.Price,
		Image:           data.Image,
		URL:             data.URL,
		Notes:           data.Notes,
		AddedAt:         data.AddedAt,
		SelectedCartIDs: pq.StringArray(nonNil(data.SelectedCartIDs)),
	}
}

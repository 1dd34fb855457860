package mongodb

import (
	"context"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type itemRepository struct {
	items collection[itemDocument]
}

// NewItemRepository creates an item catalog backed by the items collection
func NewItemRepository(db *mongo.Database) repository.ItemRepository {
	return &itemRepository{items: newCollection[itemDocument](db, itemsCollection)}
}

func itemKey(userID, itemID string) bson.M {
	return bson.M{"_id": itemID, "user_id": userID}
}

func (r *itemRepository) FindByID(ctx context.Context, userID, itemID string) (*entity.Item, error) {
	return r.findOne(ctx, itemKey(userID, itemID))
}

func (r *itemRepository) FindByIDs(ctx context.Context, userID string, itemIDs []string) ([]*entity.Item, error) {
	if len(itemIDs) == 0 {
		return []*entity.Item{}, nil
	}

	docs, err := r.items.findMany(ctx, bson.M{"_id": bson.M{"$in": itemIDs}, "user_id": userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items")
	}

	byID := make(map[string]*itemDocument, len(docs))
	for _, doc := range docs {
		byID[doc.ItemID] = doc
	}

	items := make([]*entity.Item, 0, len(docs))
	for _, id := range itemIDs {
		if doc, ok := byID[id]; ok {
			items = append(items, toItemDomain(doc))
			delete(byID, id)
		}
	}

	return items, nil
}

func (r *itemRepository) FindByURL(ctx context.Context, userID, url string) (*entity.Item, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "url": url})
}

func (r *itemRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Item, error) {
	docs, err := r.items.findMany(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, toItemDomain(doc))
	}

	return items, nil
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	if err := r.items.insert(ctx, fromItemDomain(item)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateItemURL
		}

		return errors.Wrap(err, "failed to create item")
	}

	return nil
}

func (r *itemRepository) UpdateNote(ctx context.Context, userID, itemID string, note *string) (*entity.Item, error) {
	update := bson.M{"$set": bson.M{"notes": note}}
	if note == nil {
		update = bson.M{"$unset": bson.M{"notes": ""}}
	}

	return r.findOneAndUpdate(ctx, itemKey(userID, itemID), update)
}

func (r *itemRepository) SetCartRefs(ctx context.Context, userID, itemID string, cartIDs []string) (*entity.Item, error) {
	return r.findOneAndUpdate(ctx, itemKey(userID, itemID), bson.M{"$set": bson.M{"selected_cart_ids": nonNil(cartIDs)}})
}

func (r *itemRepository) RemoveCartRef(ctx context.Context, userID, itemID, cartID string) (*entity.Item, error) {
	return r.findOneAndUpdate(ctx, itemKey(userID, itemID), bson.M{"$pull": bson.M{"selected_cart_ids": cartID}})
}

func (r *itemRepository) Delete(ctx context.Context, userID, itemID string) error {
	deleted, err := r.items.delete(ctx, itemKey(userID, itemID))
	if err != nil {
		return errors.Wrap(err, "failed to delete item")
	}
	if !deleted {
		return repository.ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) DeleteIfOrphan(ctx context.Context, userID, itemID string) (bool, error) {
	filter := itemKey(userID, itemID)
	filter["selected_cart_ids"] = bson.M{"$size": 0}

	deleted, err := r.items.delete(ctx, filter)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete orphan item")
	}

	return deleted, nil
}

func (r *itemRepository) findOne(ctx context.Context, filter bson.M) (*entity.Item, error) {
	doc, err := r.items.findOne(ctx, filter)
	if err != nil {
		if errors.Is(err, errNoDocument) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return toItemDomain(doc), nil
}

func (r *itemRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*entity.Item, error) {
	doc, err := r.items.findOneAndUpdate(ctx, filter, update, false)
	if err != nil {
		if errors.Is(err, errNoDocument) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update item")
	}

	return toItemDomain(doc), nil
}

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

type cartRepository struct {
	carts collection[cartDocument]
}

// NewCartRepository creates a cart directory backed by the carts collection
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{carts: newCollection[cartDocument](db, cartsCollection)}
}

func cartKey(userID, cartID string) bson.M {
	return bson.M{"_id": cartID, "user_id": userID}
}

func (r *cartRepository) FindByID(ctx context.Context, userID, cartID string) (*entity.Cart, error) {
	doc, err := r.carts.findOne(ctx, cartKey(userID, cartID))
	if err != nil {
		if errors.Is(err, errNoDocument) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(doc), nil
}

func (r *cartRepository) FindByIDs(ctx context.Context, userID string, cartIDs []string) ([]*entity.Cart, error) {
	if len(cartIDs) == 0 {
		return []*entity.Cart{}, nil
	}

	docs, err := r.carts.findMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}, "user_id": userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find carts")
	}

	return toCartsDomain(docs), nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Cart, error) {
	docs, err := r.carts.findMany(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carts")
	}

	return toCartsDomain(docs), nil
}

func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	if err := r.carts.insert(ctx, fromCartDomain(cart)); err != nil {
		return errors.Wrap(err, "failed to create cart")
	}

	return nil
}

func (r *cartRepository) Rename(ctx context.Context, userID, cartID, name string) error {
	matched, err := r.carts.update(ctx, cartKey(userID, cartID), bson.M{"$set": bson.M{"cart_name": name}})
	if err != nil {
		return errors.Wrap(err, "failed to rename cart")
	}
	if matched == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

func (r *cartRepository) Delete(ctx context.Context, userID, cartID string) error {
	deleted, err := r.carts.delete(ctx, cartKey(userID, cartID))
	if err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}
	if !deleted {
		return repository.ErrCartNotFound
	}

	return nil
}

func (r *cartRepository) AddItemRef(ctx context.Context, userID, cartID, itemID string) (bool, error) {
	filter := cartKey(userID, cartID)
	filter["item_ids"] = bson.M{"$ne": itemID}

	matched, err := r.carts.update(ctx, filter, bson.M{
		"$addToSet": bson.M{"item_ids": itemID},
		"$inc":      bson.M{"item_count": 1},
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to add item reference")
	}

	return matched > 0, nil
}

func (r *cartRepository) RemoveItemRef(ctx context.Context, userID, cartID, itemID string) (bool, error) {
	filter := cartKey(userID, cartID)
	filter["item_ids"] = itemID

	matched, err := r.carts.update(ctx, filter, bson.M{
		"$pull": bson.M{"item_ids": itemID},
		"$inc":  bson.M{"item_count": -1},
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to remove item reference")
	}

	return matched > 0, nil
}

func (r *cartRepository) SetItemRefs(ctx context.Context, userID, cartID string, itemIDs []string) error {
	matched, err := r.carts.update(ctx, cartKey(userID, cartID), bson.M{"$set": bson.M{
		"item_ids":   nonNil(itemIDs),
		"item_count": len(itemIDs),
	}})
	if err != nil {
		return errors.Wrap(err, "failed to set item references")
	}
	if matched == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

func toCartsDomain(docs []*cartDocument) []*entity.Cart {
	carts := make([]*entity.Cart, 0, len(docs))
	for _, doc := range docs {
		carts = append(carts, toCartDomain(doc))
	}

	return carts
}

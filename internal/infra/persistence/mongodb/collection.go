package mongodb

import (
	"context"

	"buyhive/internal/errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names
const (
	usersCollection       = "users"
	cartsCollection       = "carts"
	itemsCollection       = "items"
	feedbackCollection    = "feedback"
	extractionsCollection = "failed_extractions"
)

// errNoDocument is returned by collection lookups that match nothing.
var errNoDocument = mongo.ErrNoDocuments

// collection is a typed view over one MongoDB collection. Every directory is
// built on these few operations; none of them spans more than one document.
type collection[T any] struct {
	coll *mongo.Collection
}

func newCollection[T any](db *mongo.Database, name string) collection[T] {
	return collection[T]{coll: db.Collection(name)}
}

// findOne returns errNoDocument when the filter matches nothing.
func (c collection[T]) findOne(ctx context.Context, filter any) (*T, error) {
	doc := new(T)
	if err := c.coll.FindOne(ctx, filter).Decode(doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNoDocument
		}

		return nil, errors.Wrapf(err, "find one in %s", c.coll.Name())
	}

	return doc, nil
}

func (c collection[T]) findMany(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) ([]*T, error) {
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "find in %s", c.coll.Name())
	}

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "decode %s", c.coll.Name())
	}

	return docs, nil
}

// insert returns the driver error untouched so callers can test for duplicate keys.
func (c collection[T]) insert(ctx context.Context, doc *T) error {
	_, err := c.coll.InsertOne(ctx, doc)

	return err
}

// update applies a single-document update and reports how many documents matched.
func (c collection[T]) update(ctx context.Context, filter, update any) (int64, error) {
	result, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, errors.Wrapf(err, "update in %s", c.coll.Name())
	}

	return result.MatchedCount, nil
}

// findOneAndUpdate applies update and returns the post-image.
func (c collection[T]) findOneAndUpdate(ctx context.Context, filter, update any, upsert bool) (*T, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(upsert)

	doc := new(T)
	if err := c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNoDocument
		}

		return nil, errors.Wrapf(err, "find and update in %s", c.coll.Name())
	}

	return doc, nil
}

// delete reports whether a document was removed.
func (c collection[T]) delete(ctx context.Context, filter any) (bool, error) {
	result, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, errors.Wrapf(err, "delete in %s", c.coll.Name())
	}

	return result.DeletedCount > 0, nil
}

func (c collection[T]) count(ctx context.Context, filter any) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrapf(err, "count in %s", c.coll.Name())
	}

	return n, nil
}

func (c collection[T]) exists(ctx context.Context, filter any) (bool, error) {
	n, err := c.count(ctx, filter)

	return n > 0, err
}

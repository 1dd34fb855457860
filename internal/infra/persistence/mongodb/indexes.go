package mongodb

import (
	"context"

	"buyhive/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the collections' indexes. It is safe to run repeatedly.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		cartsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		itemsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{
				// One item per (user, url). Items saved without a url are exempt.
				Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "url", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetName("unique_user_url").
					SetPartialFilterExpression(bson.M{"url": bson.M{"$type": "string"}}),
			},
		},
		extractionsCollection: {
			{Keys: bson.D{{Key: "domain", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes for %s", name)
		}
	}

	return nil
}

package mongodb

import (
	"context"
	"time"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userRepository struct {
	users collection[userDocument]
}

// NewUserRepository creates a user directory backed by the users collection
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{users: newCollection[userDocument](db, usersCollection)}
}

func (r *userRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	doc, err := r.users.findOne(ctx, bson.M{"_id": userID})
	if err != nil {
		if errors.Is(err, errNoDocument) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(doc), nil
}

func (r *userRepository) Upsert(ctx context.Context, profile *entity.UserProfile) (*entity.User, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"email":      profile.Email,
			"name":       profile.Name,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"cart_count": 0,
			"cart_ids":   []string{},
			"created_at": now,
		},
	}

	doc, err := r.users.findOneAndUpdate(ctx, bson.M{"_id": profile.UserID}, update, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	return toUserDomain(doc), nil
}

func (r *userRepository) AddCartRef(ctx context.Context, userID, cartID string) error {
	matched, err := r.users.update(ctx,
		bson.M{"_id": userID, "cart_ids": bson.M{"$ne": cartID}},
		bson.M{
			"$addToSet": bson.M{"cart_ids": cartID},
			"$inc":      bson.M{"cart_count": 1},
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to add cart reference")
	}
	if matched > 0 {
		return nil
	}

	return r.requireUser(ctx, userID)
}

func (r *userRepository) RemoveCartRef(ctx context.Context, userID, cartID string) error {
	matched, err := r.users.update(ctx,
		bson.M{"_id": userID, "cart_ids": cartID},
		bson.M{
			"$pull": bson.M{"cart_ids": cartID},
			"$inc":  bson.M{"cart_count": -1},
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to remove cart reference")
	}
	if matched > 0 {
		return nil
	}

	return r.requireUser(ctx, userID)
}

func (r *userRepository) SetCartRefs(ctx context.Context, userID string, cartIDs []string) error {
	matched, err := r.users.update(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"cart_ids":   nonNil(cartIDs),
			"cart_count": len(cartIDs),
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to set cart references")
	}
	if matched == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) ListIDs(ctx context.Context) ([]string, error) {
	docs, err := r.users.findMany(ctx, bson.M{},
		options.Find().
			SetProjection(bson.M{"_id": 1}).
			SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.UserID)
	}

	return ids, nil
}

// requireUser distinguishes "no change needed" from "no such user" after a guarded update matched nothing.
func (r *userRepository) requireUser(ctx context.Context, userID string) error {
	ok, err := r.users.exists(ctx, bson.M{"_id": userID})
	if err != nil {
		return errors.Wrap(err, "failed to check user")
	}
	if !ok {
		return repository.ErrUserNotFound
	}

	return nil
}

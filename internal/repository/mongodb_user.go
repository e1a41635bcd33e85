package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tech-discovery/internal/model"
	apperrors "tech-discovery/pkg/errors"
)

// mongodbUserRepository implements UserRepository using MongoDB
type mongodbUserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new MongoDB-based user repository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &mongodbUserRepository{
		collection: db.Collection("users"),
	}
}

// Insert creates a new user record
func (r *mongodbUserRepository) Insert(ctx context.Context, user *model.User) (string, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.ErrUserExists
		}
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

// FindByEmail retrieves a user by email
func (r *mongodbUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpdateRole sets the role of the user with the given id
func (r *mongodbUserRepository) UpdateRole(ctx context.Context, id string, role model.Role) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetSubscribed marks the user with the given email as subscribed
func (r *mongodbUserRepository) SetSubscribed(ctx context.Context, email string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"subscribed": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Count returns the total number of registered users
func (r *mongodbUserRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tech-discovery/internal/model"
	apperrors "tech-discovery/pkg/errors"
)

// mongodbCouponRepository implements CouponRepository using MongoDB
type mongodbCouponRepository struct {
	collection *mongo.Collection
}

// NewCouponRepository creates a new MongoDB-based coupon repository
func NewCouponRepository(db *mongo.Database) CouponRepository {
	return &mongodbCouponRepository{
		collection: db.Collection("coupons"),
	}
}

// Insert creates a new coupon
func (r *mongodbCouponRepository) Insert(ctx context.Context, coupon *model.Coupon) (string, error) {
	res, err := r.collection.InsertOne(ctx, coupon)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

// FindAll retrieves every coupon, expired ones included
func (r *mongodbCouponRepository) FindAll(ctx context.Context) ([]model.Coupon, error) {
	return r.list(ctx, bson.M{})
}

// FindValid retrieves coupons whose expiry is at or after now
func (r *mongodbCouponRepository) FindValid(ctx context.Context, now time.Time) ([]model.Coupon, error) {
	return r.list(ctx, bson.M{"expiryDate": bson.M{"$gte": now}})
}

func (r *mongodbCouponRepository) list(ctx context.Context, filter bson.M) ([]model.Coupon, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	coupons := []model.Coupon{}
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}

	return coupons, nil
}

// FindByCode retrieves a coupon by its code
func (r *mongodbCouponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrCouponNotFound
		}
		return nil, err
	}

	return &coupon, nil
}

// Update edits a coupon's fields by id
func (r *mongodbCouponRepository) Update(ctx context.Context, id string, req *model.UpdateCouponRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrCouponNotFound
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"code":        req.Code,
		"expiryDate":  req.ExpiryDate,
		"description": req.Description,
		"discount":    req.Discount,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrCouponNotFound
	}

	return nil
}

// Delete removes a coupon by id
func (r *mongodbCouponRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrCouponNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrCouponNotFound
	}

	return nil
}

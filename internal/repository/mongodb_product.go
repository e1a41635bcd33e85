package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tech-discovery/internal/model"
	apperrors "tech-discovery/pkg/errors"
)

// mongodbProductRepository implements ProductRepository using MongoDB
type mongodbProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new MongoDB-based product repository
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongodbProductRepository{
		collection: db.Collection("products"),
	}
}

func productID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrProductNotFound
	}
	return oid, nil
}

// Insert creates a new product record
func (r *mongodbProductRepository) Insert(ctx context.Context, product *model.Product) (string, error) {
	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

// FindByID retrieves a product by id
func (r *mongodbProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	oid, err := productID(id)
	if err != nil {
		return nil, err
	}

	var product model.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	return &product, nil
}

// FindByOwner retrieves all products owned by the given email
func (r *mongodbProductRepository) FindByOwner(ctx context.Context, email string) ([]model.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner.email": email},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// CountByOwner counts products owned by the given email
func (r *mongodbProductRepository) CountByOwner(ctx context.Context, email string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"owner.email": email})
}

// SearchAccepted lists Accepted products matching the tag search,
// newest first, with the pre-pagination total
func (r *mongodbProductRepository) SearchAccepted(ctx context.Context, search string, skip, limit int64) ([]model.Product, int64, error) {
	filter := bson.M{"status": model.StatusAccepted}
	if search != "" {
		filter["tags.text"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// UpdateContent replaces the editable content fields of a product
func (r *mongodbProductRepository) UpdateContent(ctx context.Context, id string, req *model.UpdateProductRequest) error {
	oid, err := productID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":         req.Name,
		"image":        req.Image,
		"description":  req.Description,
		"tags":         req.Tags,
		"externalLink": req.ExternalLink,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by id
func (r *mongodbProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := productID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}

// AddVote atomically increments votes and appends email to the voter
// set. The membership guard in the filter makes the counter and the set
// move together even under concurrent requests on the same product.
func (r *mongodbProductRepository) AddVote(ctx context.Context, id, email string) error {
	oid, err := productID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "voters": bson.M{"$ne": email}},
		bson.M{
			"$inc":  bson.M{"votes": 1},
			"$push": bson.M{"voters": email},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.voteMiss(ctx, oid, apperrors.ErrAlreadyVoted)
	}

	return nil
}

// RemoveVote atomically decrements votes and removes email from the
// voter set
func (r *mongodbProductRepository) RemoveVote(ctx context.Context, id, email string) error {
	oid, err := productID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "voters": email},
		bson.M{
			"$inc":  bson.M{"votes": -1},
			"$pull": bson.M{"voters": email},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.voteMiss(ctx, oid, apperrors.ErrNotVoted)
	}

	return nil
}

// voteMiss disambiguates a guarded update that matched nothing: either
// the product does not exist or the membership guard rejected it.
func (r *mongodbProductRepository) voteMiss(ctx context.Context, oid primitive.ObjectID, guardErr error) error {
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Err()
	if err == mongo.ErrNoDocuments {
		return apperrors.ErrProductNotFound
	}
	if err != nil {
		return err
	}
	return guardErr
}

// SetStatus records a moderation decision. Re-affirming the current
// status matches without modifying, which is a no-op success.
func (r *mongodbProductRepository) SetStatus(ctx context.Context, id string, status model.ProductStatus) error {
	oid, err := productID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}

// SetFeatured flags a product as featured
func (r *mongodbProductRepository) SetFeatured(ctx context.Context, id string) error {
	oid, err := productID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"featured": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}

// AddReport appends a report entry
func (r *mongodbProductRepository) AddReport(ctx context.Context, id string, report model.Report) error {
	return r.push(ctx, id, "reports", report)
}

// AddReview appends a review entry
func (r *mongodbProductRepository) AddReview(ctx context.Context, id string, review model.Review) error {
	return r.push(ctx, id, "reviews", review)
}

func (r *mongodbProductRepository) push(ctx context.Context, id, field string, entry any) error {
	oid, err := productID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$push": bson.M{field: entry}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}

// ReviewQueue lists all products with Pending ranked first. The rank is
// assigned explicitly rather than relying on lexical status order.
func (r *mongodbProductRepository) ReviewQueue(ctx context.Context) ([]model.Product, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"statusRank": bson.M{"$switch": bson.M{
				"branches": bson.A{
					bson.M{"case": bson.M{"$eq": bson.A{"$status", model.StatusPending}}, "then": 0},
					bson.M{"case": bson.M{"$eq": bson.A{"$status", model.StatusAccepted}}, "then": 1},
				},
				"default": 2,
			}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "statusRank", Value: 1},
			{Key: "createdAt", Value: -1},
		}}},
		{{Key: "$project", Value: bson.M{"statusRank": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// Trending lists the top Accepted products by votes
func (r *mongodbProductRepository) Trending(ctx context.Context, limit int64) ([]model.Product, error) {
	return r.find(ctx,
		bson.M{"status": model.StatusAccepted},
		bson.D{{Key: "votes", Value: -1}},
		limit)
}

// Featured lists the most recent featured Accepted products
func (r *mongodbProductRepository) Featured(ctx context.Context, limit int64) ([]model.Product, error) {
	return r.find(ctx,
		bson.M{"status": model.StatusAccepted, "featured": true},
		bson.D{{Key: "createdAt", Value: -1}},
		limit)
}

func (r *mongodbProductRepository) find(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]model.Product, error) {
	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(sort).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// Stats computes product-side dashboard aggregates in a single pass
func (r *mongodbProductRepository) Stats(ctx context.Context) (*model.ProductStats, error) {
	accepted := bson.M{"$eq": bson.A{"$status", model.StatusAccepted}}
	pending := bson.M{"$eq": bson.A{"$status", model.StatusPending}}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalProducts": bson.M{"$sum": 1},
			"accepted":      bson.M{"$sum": bson.M{"$cond": bson.A{accepted, 1, 0}}},
			"pending":       bson.M{"$sum": bson.M{"$cond": bson.A{pending, 1, 0}}},
			"totalReviews": bson.M{"$sum": bson.M{
				"$size": bson.M{"$ifNull": bson.A{"$reviews", bson.A{}}},
			}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.ProductStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &model.ProductStats{}, nil
	}

	return &results[0], nil
}

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes a connection to MongoDB
func Connect(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	clientOptions := options.Client().ApplyURI(uri)

	// Set connection timeout
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)

	mongoDB := &MongoDB{
		Client:   client,
		Database: db,
	}

	// Create indexes
	if err := mongoDB.CreateIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return mongoDB, nil
}

// CreateIndexes creates all necessary indexes for the application
func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	// Unique index on users.email backs idempotent registration
	usersCollection := m.Database.Collection("users")
	userEmailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_email_unique"),
	}
	if _, err := usersCollection.Indexes().CreateOne(ctx, userEmailIndex); err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	productsCollection := m.Database.Collection("products")

	// Index on owner.email for the eligibility count and owner listing
	ownerEmailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "owner.email", Value: 1}},
		Options: options.Index().SetName("product_owner_email"),
	}
	if _, err := productsCollection.Indexes().CreateOne(ctx, ownerEmailIndex); err != nil {
		return fmt.Errorf("failed to create product owner index: %w", err)
	}

	// Compound index serving the Accepted listing sorted by recency
	statusCreatedIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("product_status_created"),
	}
	if _, err := productsCollection.Indexes().CreateOne(ctx, statusCreatedIndex); err != nil {
		return fmt.Errorf("failed to create product status index: %w", err)
	}

	// Index on coupons.code for validation lookups. Not unique: the
	// store never enforced code uniqueness and existing data may
	// contain duplicates.
	couponsCollection := m.Database.Collection("coupons")
	couponCodeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetName("coupon_code_index"),
	}
	if _, err := couponsCollection.Indexes().CreateOne(ctx, couponCodeIndex); err != nil {
		return fmt.Errorf("failed to create coupon code index: %w", err)
	}

	return nil
}

// Disconnect closes the MongoDB connection
func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

package repository

import (
	"context"

	"tech-discovery/internal/model"
)

// ProductRepository defines the interface for product data operations.
// Vote mutations keep the votes counter and the voter set in lockstep
// inside a single atomic store update.
type ProductRepository interface {
	// Insert creates a new product and returns its id
	Insert(ctx context.Context, product *model.Product) (string, error)

	// FindByID retrieves a product by id
	FindByID(ctx context.Context, id string) (*model.Product, error)

	// FindByOwner retrieves all products owned by the given email
	FindByOwner(ctx context.Context, email string) ([]model.Product, error)

	// CountByOwner counts products owned by the given email
	CountByOwner(ctx context.Context, email string) (int64, error)

	// SearchAccepted lists Accepted products whose tag text matches
	// search case-insensitively, newest first, with the total match
	// count before pagination
	SearchAccepted(ctx context.Context, search string, skip, limit int64) ([]model.Product, int64, error)

	// UpdateContent replaces the editable content fields of a product
	UpdateContent(ctx context.Context, id string, req *model.UpdateProductRequest) error

	// Delete removes a product by id
	Delete(ctx context.Context, id string) error

	// AddVote increments votes and appends email to the voter set in
	// one atomic update. Returns errors.ErrAlreadyVoted when the email
	// is already a voter.
	AddVote(ctx context.Context, id, email string) error

	// RemoveVote decrements votes and removes email from the voter set
	// in one atomic update. Returns errors.ErrNotVoted when the email
	// is not a voter.
	RemoveVote(ctx context.Context, id, email string) error

	// SetStatus records a moderation decision
	SetStatus(ctx context.Context, id string, status model.ProductStatus) error

	// SetFeatured flags a product as featured
	SetFeatured(ctx context.Context, id string) error

	// AddReport appends a report entry
	AddReport(ctx context.Context, id string, report model.Report) error

	// AddReview appends a review entry
	AddReview(ctx context.Context, id string, review model.Review) error

	// ReviewQueue lists all products with Pending ranked first
	ReviewQueue(ctx context.Context) ([]model.Product, error)

	// Trending lists the top Accepted products by votes
	Trending(ctx context.Context, limit int64) ([]model.Product, error)

	// Featured lists the most recent featured Accepted products
	Featured(ctx context.Context, limit int64) ([]model.Product, error)

	// Stats computes product-side dashboard aggregates
	Stats(ctx context.Context) (*model.ProductStats, error)
}

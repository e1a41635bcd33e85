package service

import (
	"context"
	"time"

	"tech-discovery/internal/model"
	"tech-discovery/internal/repository"
	apperrors "tech-discovery/pkg/errors"
)

// freeProductLimit is how many products an unsubscribed user may own.
const freeProductLimit = 1

const (
	defaultPageLimit = 10
	trendingLimit    = 6
	featuredLimit    = 4
)

// ProductService handles submission, discovery, voting and moderation
type ProductService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, userRepo repository.UserRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// CanAddProduct decides whether the user may create another product:
// subscribed users always may, free users only under the product limit.
// The check is read-only; two concurrent creations may both observe the
// limit as unreached, which is an accepted race for this soft limit.
func (s *ProductService) CanAddProduct(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user.Subscribed {
		return true, nil
	}

	count, err := s.productRepo.CountByOwner(ctx, email)
	if err != nil {
		return false, err
	}
	return count < freeProductLimit, nil
}

// Create submits a new product for the owner captured in the request.
// The owner snapshot is embedded as a value copy.
func (s *ProductService) Create(ctx context.Context, req *model.CreateProductRequest) (string, error) {
	eligible, err := s.CanAddProduct(ctx, req.Owner.Email)
	if err != nil {
		return "", err
	}
	if !eligible {
		return "", apperrors.ErrNotEligible
	}

	product := &model.Product{
		Name:         req.Name,
		Image:        req.Image,
		Description:  req.Description,
		Tags:         req.Tags,
		ExternalLink: req.ExternalLink,
		Owner:        req.Owner,
		CreatedAt:    time.Now(),
		Status:       model.StatusPending,
		Votes:        0,
		Voters:       []string{},
		Reports:      []model.Report{},
		Reviews:      []model.Review{},
	}

	return s.productRepo.Insert(ctx, product)
}

// Get retrieves a product by id
func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// ListByOwner retrieves all products owned by the given email
func (s *ProductService) ListByOwner(ctx context.Context, email string) ([]model.Product, error) {
	return s.productRepo.FindByOwner(ctx, email)
}

// Search pages through Accepted products whose tag text matches search
// case-insensitively.
func (s *ProductService) Search(ctx context.Context, search string, page, limit int64) (*model.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	products, total, err := s.productRepo.SearchAccepted(ctx, search, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return &model.ProductPage{
		Products:    products,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// Update edits the content fields of a product
func (s *ProductService) Update(ctx context.Context, id string, req *model.UpdateProductRequest) error {
	return s.productRepo.UpdateContent(ctx, id, req)
}

// Delete removes a product by id
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// Upvote casts a vote. Voting twice with the same email is a conflict.
func (s *ProductService) Upvote(ctx context.Context, id, email string) error {
	return s.productRepo.AddVote(ctx, id, email)
}

// Downvote retracts a prior vote. Retracting without a prior vote is a
// conflict.
func (s *ProductService) Downvote(ctx context.Context, id, email string) error {
	return s.productRepo.RemoveVote(ctx, id, email)
}

// SetStatus applies a moderation decision. Only Accepted and Rejected
// are valid inputs; anything else is rejected before any store access.
func (s *ProductService) SetStatus(ctx context.Context, id string, status model.ProductStatus) error {
	if status != model.StatusAccepted && status != model.StatusRejected {
		return apperrors.ErrInvalidStatus
	}
	return s.productRepo.SetStatus(ctx, id, status)
}

// Feature flags a product as featured. The flag is independent of
// moderation status and cannot be unset.
func (s *ProductService) Feature(ctx context.Context, id string) error {
	return s.productRepo.SetFeatured(ctx, id)
}

// Report appends a timestamped complaint. Repeat reports from the same
// email are all retained.
func (s *ProductService) Report(ctx context.Context, id string, req *model.ReportRequest) error {
	return s.productRepo.AddReport(ctx, id, model.Report{
		UserEmail:    req.UserEmail,
		ReportReason: req.ReportReason,
		ReportedAt:   time.Now(),
	})
}

// AddReview appends a timestamped review. Ratings outside 1..5 are
// rejected; a review never touches votes or status.
func (s *ProductService) AddReview(ctx context.Context, id string, req *model.ReviewRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return apperrors.ErrInvalidRating
	}

	return s.productRepo.AddReview(ctx, id, model.Review{
		ReviewerName:      req.ReviewerName,
		ReviewerImage:     req.ReviewerImage,
		ReviewDescription: req.ReviewDescription,
		Rating:            req.Rating,
		UserEmail:         req.UserEmail,
		ReviewedAt:        time.Now(),
	})
}

// ReviewQueue lists all products for moderators, Pending first
func (s *ProductService) ReviewQueue(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.ReviewQueue(ctx)
}

// Trending lists the top 6 Accepted products by votes
func (s *ProductService) Trending(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.Trending(ctx, trendingLimit)
}

// Featured lists the 4 most recent featured Accepted products
func (s *ProductService) Featured(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.Featured(ctx, featuredLimit)
}

// Stats recomputes the moderator dashboard snapshot on every call
func (s *ProductService) Stats(ctx context.Context) (*model.Stats, error) {
	productStats, err := s.productRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Stats{
		ProductStats: *productStats,
		TotalUsers:   users,
	}, nil
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductStatus enumerates moderation states.
type ProductStatus string

const (
	StatusPending  ProductStatus = "Pending"
	StatusAccepted ProductStatus = "Accepted"
	StatusRejected ProductStatus = "Rejected"
)

// Tag labels a product submission.
type Tag struct {
	Text string `bson:"text" json:"text"`
}

// Owner is a snapshot of the submitting user captured at creation time.
// It is a value copy, not a live reference: the product keeps the
// owner's identity even if the user later changes their display name.
type Owner struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email" binding:"required,email"`
	Image string `bson:"image" json:"image"`
}

// Report is a user complaint appended to a product. Duplicate reports
// from the same email are all retained.
type Report struct {
	UserEmail    string    `bson:"userEmail" json:"userEmail"`
	ReportReason string    `bson:"reportReason" json:"reportReason"`
	ReportedAt   time.Time `bson:"reportedAt" json:"reportedAt"`
}

// Review is a rating with commentary appended to a product.
type Review struct {
	ReviewerName      string    `bson:"reviewerName" json:"reviewerName"`
	ReviewerImage     string    `bson:"reviewerImage" json:"reviewerImage"`
	ReviewDescription string    `bson:"reviewDescription" json:"reviewDescription"`
	Rating            float64   `bson:"rating" json:"rating"`
	UserEmail         string    `bson:"userEmail" json:"userEmail"`
	ReviewedAt        time.Time `bson:"reviewedAt" json:"reviewedAt"`
}

// Product represents a submitted tool or startup. Votes is derived from
// Voters membership and the two only ever move together in a single
// atomic update.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Image        string             `bson:"image" json:"image"`
	Description  string             `bson:"description" json:"description"`
	Tags         []Tag              `bson:"tags" json:"tags"`
	ExternalLink string             `bson:"externalLink" json:"externalLink"`
	Owner        Owner              `bson:"owner" json:"owner"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	Status       ProductStatus      `bson:"status" json:"status"`
	Featured     bool               `bson:"featured,omitempty" json:"featured,omitempty"`
	Votes        int32              `bson:"votes" json:"votes"`
	Voters       []string           `bson:"voters" json:"voters"`
	Reports      []Report           `bson:"reports" json:"reports"`
	Reviews      []Review           `bson:"reviews" json:"reviews"`
}

// CreateProductRequest represents the request to submit a product
type CreateProductRequest struct {
	Name         string `json:"name" binding:"required"`
	Image        string `json:"image"`
	Description  string `json:"description" binding:"required"`
	Tags         []Tag  `json:"tags"`
	ExternalLink string `json:"externalLink"`
	Owner        Owner  `json:"owner" binding:"required"`
}

// UpdateProductRequest carries the editable content fields. Moderation
// and vote state are never writable through the edit path.
type UpdateProductRequest struct {
	Name         string `json:"name" binding:"required"`
	Image        string `json:"image"`
	Description  string `json:"description" binding:"required"`
	Tags         []Tag  `json:"tags"`
	ExternalLink string `json:"externalLink"`
}

// VoteRequest identifies the voting user.
type VoteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// StatusUpdateRequest represents a moderation decision
type StatusUpdateRequest struct {
	Status ProductStatus `json:"status" binding:"required"`
}

// ReportRequest represents a user complaint
type ReportRequest struct {
	UserEmail    string `json:"userEmail" binding:"required,email"`
	ReportReason string `json:"reportReason" binding:"required"`
}

// ReviewRequest represents a submitted review
type ReviewRequest struct {
	ReviewerName      string  `json:"reviewerName"`
	ReviewerImage     string  `json:"reviewerImage"`
	ReviewDescription string  `json:"reviewDescription" binding:"required"`
	Rating            float64 `json:"rating" binding:"required"`
	UserEmail         string  `json:"userEmail" binding:"required,email"`
}

// ProductPage is a paginated listing of accepted products.
type ProductPage struct {
	Products    []Product `json:"products"`
	Total       int64     `json:"total"`
	TotalPages  int64     `json:"totalPages"`
	CurrentPage int64     `json:"currentPage"`
}

// ProductStats holds product-side aggregates for the moderator
// dashboard.
type ProductStats struct {
	TotalProducts int64 `bson:"totalProducts" json:"totalProducts"`
	Accepted      int64 `bson:"accepted" json:"accepted"`
	Pending       int64 `bson:"pending" json:"pending"`
	TotalReviews  int64 `bson:"totalReviews" json:"totalReviews"`
}

// Stats is the full dashboard snapshot, recomputed on every call.
type Stats struct {
	ProductStats
	TotalUsers int64 `json:"totalUsers"`
}

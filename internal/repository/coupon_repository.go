package repository

import (
	"context"
	"time"

	"tech-discovery/internal/model"
)

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	// Insert creates a new coupon and returns its id
	Insert(ctx context.Context, coupon *model.Coupon) (string, error)

	// FindAll retrieves every coupon, expired ones included
	FindAll(ctx context.Context) ([]model.Coupon, error)

	// FindValid retrieves coupons whose expiry is at or after now
	FindValid(ctx context.Context, now time.Time) ([]model.Coupon, error)

	// FindByCode retrieves a coupon by its code
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)

	// Update edits a coupon's fields by id
	Update(ctx context.Context, id string, req *model.UpdateCouponRequest) error

	// Delete removes a coupon by id
	Delete(ctx context.Context, id string) error
}

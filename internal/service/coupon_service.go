package service

import (
	"context"
	"time"

	"tech-discovery/internal/model"
	"tech-discovery/internal/repository"
	apperrors "tech-discovery/pkg/errors"
)

// CouponService handles coupon management and validity evaluation
type CouponService struct {
	couponRepo repository.CouponRepository
	now        func() time.Time
}

// NewCouponService creates a new coupon service
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		now:        time.Now,
	}
}

// Create stores a new coupon after bounds-checking the discount
func (s *CouponService) Create(ctx context.Context, req *model.CreateCouponRequest) (string, error) {
	if req.Discount < 0 || req.Discount > 100 {
		return "", apperrors.ErrInvalidDiscount
	}

	coupon := &model.Coupon{
		Code:        req.Code,
		ExpiryDate:  req.ExpiryDate,
		Description: req.Description,
		Discount:    req.Discount,
	}

	return s.couponRepo.Insert(ctx, coupon)
}

// List retrieves every coupon. Expired coupons are never deleted
// automatically, so they show up here.
func (s *CouponService) List(ctx context.Context) ([]model.Coupon, error) {
	return s.couponRepo.FindAll(ctx)
}

// ListValid retrieves coupons that have not expired yet
func (s *CouponService) ListValid(ctx context.Context) ([]model.Coupon, error) {
	return s.couponRepo.FindValid(ctx, s.now())
}

// Update edits a coupon after bounds-checking the discount
func (s *CouponService) Update(ctx context.Context, id string, req *model.UpdateCouponRequest) error {
	if req.Discount < 0 || req.Discount > 100 {
		return apperrors.ErrInvalidDiscount
	}
	return s.couponRepo.Update(ctx, id, req)
}

// Delete removes a coupon by id
func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.couponRepo.Delete(ctx, id)
}

// Validate evaluates whether a code is currently usable. Unknown and
// expired codes are business outcomes, not transport errors.
func (s *CouponService) Validate(ctx context.Context, code string) (*model.CouponValidation, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if err == apperrors.ErrCouponNotFound {
			return &model.CouponValidation{Valid: false, Reason: "invalid"}, nil
		}
		return nil, err
	}

	if coupon.ExpiryDate.Before(s.now()) {
		return &model.CouponValidation{Valid: false, Reason: "expired"}, nil
	}

	return &model.CouponValidation{
		Valid:      true,
		Code:       coupon.Code,
		Discount:   coupon.Discount,
		ExpiryDate: coupon.ExpiryDate,
	}, nil
}

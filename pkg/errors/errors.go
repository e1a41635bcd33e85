package errors

import "errors"

// Domain errors shared by repositories and services. Handlers map these
// to HTTP statuses.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrCouponExpired   = errors.New("coupon expired")

	ErrAlreadyVoted = errors.New("user already voted for this product")
	ErrNotVoted     = errors.New("user has not voted for this product")

	ErrNotEligible = errors.New("user is not eligible to add another product")

	ErrInvalidStatus   = errors.New("status must be Accepted or Rejected")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidDiscount = errors.New("discount must be between 0 and 100")
)

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coupon represents a discount coupon. Expired coupons stay stored and
// are filtered out at query time.
type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Code        string             `bson:"code" json:"code"`
	ExpiryDate  time.Time          `bson:"expiryDate" json:"expiryDate"`
	Description string             `bson:"description" json:"description"`
	Discount    float64            `bson:"discount" json:"discount"`
}

// CreateCouponRequest represents the request to create a coupon
type CreateCouponRequest struct {
	Code        string    `json:"code" binding:"required"`
	ExpiryDate  time.Time `json:"expiryDate" binding:"required"`
	Description string    `json:"description"`
	Discount    float64   `json:"discount"`
}

// UpdateCouponRequest represents the request to edit a coupon
type UpdateCouponRequest struct {
	Code        string    `json:"code" binding:"required"`
	ExpiryDate  time.Time `json:"expiryDate" binding:"required"`
	Description string    `json:"description"`
	Discount    float64   `json:"discount"`
}

// CouponValidation is the business-level outcome of a code check. An
// unknown or expired code is not a transport error.
type CouponValidation struct {
	Valid      bool      `json:"valid"`
	Reason     string    `json:"reason,omitempty"`
	Code       string    `json:"code,omitempty"`
	Discount   float64   `json:"discount,omitempty"`
	ExpiryDate time.Time `json:"expiryDate,omitempty"`
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tech-discovery/internal/model"
	"tech-discovery/internal/service"
)

// CouponHandler exposes coupon management and validation endpoints.
type CouponHandler struct {
	coupons *service.CouponService
	log     *zap.Logger
}

// NewCouponHandler constructs handler.
func NewCouponHandler(coupons *service.CouponService, log *zap.Logger) *CouponHandler {
	return &CouponHandler{coupons: coupons, log: log}
}

// Create handles POST /coupons
func (h *CouponHandler) Create(c *gin.Context) {
	var req model.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "code and expiryDate are required")
		return
	}

	id, err := h.coupons.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"couponId": id})
}

// List handles GET /coupons
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.coupons.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, coupons)
}

// ListValid handles GET /valid
func (h *CouponHandler) ListValid(c *gin.Context) {
	coupons, err := h.coupons.ListValid(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, coupons)
}

// Validate handles GET /coupons/validate?code=
func (h *CouponHandler) Validate(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		badRequest(c, "code is required")
		return
	}

	result, err := h.coupons.Validate(c.Request.Context(), code)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Update handles PATCH /coupons/:id
func (h *CouponHandler) Update(c *gin.Context) {
	var req model.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "code and expiryDate are required")
		return
	}

	if err := h.coupons.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "coupon updated"})
}

// Delete handles DELETE /coupons/:id
func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.coupons.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "coupon deleted"})
}

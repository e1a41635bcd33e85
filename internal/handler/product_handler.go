package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tech-discovery/internal/model"
	"tech-discovery/internal/service"
)

// ProductHandler exposes submission, discovery, voting and moderation
// endpoints.
type ProductHandler struct {
	products *service.ProductService
	log      *zap.Logger
}

// NewProductHandler constructs handler.
func NewProductHandler(products *service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name, description and owner email are required")
		return
	}

	id, err := h.products.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"productId": id})
}

// Search handles GET /product?page=&limit=&search=
func (h *ProductHandler) Search(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	result, err := h.products.Search(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListByOwner handles GET /products?email=
func (h *ProductHandler) ListByOwner(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email is required")
		return
	}

	products, err := h.products.ListByOwner(c.Request.Context(), email)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and description are required")
		return
	}

	if err := h.products.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// Upvote handles PATCH /products/:id/upvote
func (h *ProductHandler) Upvote(c *gin.Context) {
	h.vote(c, h.products.Upvote)
}

// Downvote handles PATCH /products/:id/downvote
func (h *ProductHandler) Downvote(c *gin.Context) {
	h.vote(c, h.products.Downvote)
}

func (h *ProductHandler) vote(c *gin.Context, apply func(ctx context.Context, id, email string) error) {
	var req model.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email is required")
		return
	}

	if err := apply(c.Request.Context(), c.Param("id"), req.Email); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vote recorded"})
}

// Report handles PATCH /products/:id/report
func (h *ProductHandler) Report(c *gin.Context) {
	var req model.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "userEmail and reportReason are required")
		return
	}

	if err := h.products.Report(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report recorded"})
}

// Review handles PATCH /products/:id/review
func (h *ProductHandler) Review(c *gin.Context) {
	var req model.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "reviewDescription, rating and userEmail are required")
		return
	}

	if err := h.products.AddReview(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review recorded"})
}

// Status handles PATCH /products/:id/status
func (h *ProductHandler) Status(c *gin.Context) {
	var req model.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}

	if err := h.products.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// Feature handles PATCH /products/:id/featured
func (h *ProductHandler) Feature(c *gin.Context) {
	if err := h.products.Feature(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product featured"})
}

// ReviewQueue handles GET /products/review-queue
func (h *ProductHandler) ReviewQueue(c *gin.Context) {
	h.list(c, h.products.ReviewQueue)
}

// Trending handles GET /tproducts/trending
func (h *ProductHandler) Trending(c *gin.Context) {
	h.list(c, h.products.Trending)
}

// FeaturedList handles GET /f-products/featured
func (h *ProductHandler) FeaturedList(c *gin.Context) {
	h.list(c, h.products.Featured)
}

func (h *ProductHandler) list(c *gin.Context, fetch func(ctx context.Context) ([]model.Product, error)) {
	products, err := fetch(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// Stats handles GET /admin/stats
func (h *ProductHandler) Stats(c *gin.Context) {
	stats, err := h.products.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tech-discovery/internal/model"
	"tech-discovery/internal/service"
)

// UserHandler exposes registration, role and subscription endpoints.
type UserHandler struct {
	users    *service.UserService
	products *service.ProductService
	log      *zap.Logger
}

// NewUserHandler constructs handler.
func NewUserHandler(users *service.UserService, products *service.ProductService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, products: products, log: log}
}

// Register handles POST /users. Registering an existing email responds
// 200 with a null insertedId; that contract predates this rewrite and
// existing clients rely on it.
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email is required")
		return
	}

	result, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// IsAdmin handles GET /users/admin/:email
func (h *UserHandler) IsAdmin(c *gin.Context) {
	admin, err := h.users.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// IsModerator handles GET /users/moderator/:email
func (h *UserHandler) IsModerator(c *gin.Context) {
	moderator, err := h.users.IsModerator(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"moderator": moderator})
}

// UpdateRole handles PATCH /users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req model.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "role is required")
		return
	}

	if err := h.users.UpdateRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": 1})
}

// Profile handles GET /user/profile?email=
func (h *UserHandler) Profile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email is required")
		return
	}

	user, err := h.users.Profile(c.Request.Context(), email)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Subscribe handles PATCH /user/subscribe
func (h *UserHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email is required")
		return
	}

	if err := h.users.Subscribe(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "subscription activated"})
}

// Eligibility handles GET /user/eligibility?email=
func (h *UserHandler) Eligibility(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email is required")
		return
	}

	canAdd, err := h.products.CanAddProduct(c.Request.Context(), email)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"canAddProduct": canAdd})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tech-discovery/internal/auth"
	"tech-discovery/internal/payment"
)

// PlatformHandler exposes the token and payment endpoints that delegate
// to external collaborators.
type PlatformHandler struct {
	tokens   *auth.TokenManager
	payments *payment.Client
	log      *zap.Logger
}

// NewPlatformHandler constructs handler.
func NewPlatformHandler(tokens *auth.TokenManager, payments *payment.Client, log *zap.Logger) *PlatformHandler {
	return &PlatformHandler{tokens: tokens, payments: payments, log: log}
}

// Root handles GET /
func (h *PlatformHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Tech Discovery is running")
}

// Health handles GET /health
func (h *PlatformHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// IssueToken handles POST /jwt. The posted body becomes the claim set;
// expiry is fixed server-side.
func (h *PlatformHandler) IssueToken(c *gin.Context) {
	var claims map[string]any
	if err := c.ShouldBindJSON(&claims); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

type paymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntent handles POST /create-payment-intent
func (h *PlatformHandler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "price is required")
		return
	}

	clientSecret, err := h.payments.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

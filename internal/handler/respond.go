package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "tech-discovery/pkg/errors"
)

// respondError maps domain errors to HTTP statuses. Anything unmapped
// is a store or gateway failure: logged with the raw error, surfaced
// with a sanitized message.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch err {
	case apperrors.ErrUserNotFound,
		apperrors.ErrProductNotFound,
		apperrors.ErrCouponNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case apperrors.ErrAlreadyVoted,
		apperrors.ErrNotVoted,
		apperrors.ErrUserExists:
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case apperrors.ErrNotEligible:
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case apperrors.ErrInvalidStatus,
		apperrors.ErrInvalidRole,
		apperrors.ErrInvalidRating,
		apperrors.ErrInvalidDiscount:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// RequestTimeout bounds every request context. Mutations stay safe to
// retry after a timeout because they are guarded by the conflict
// checks, not because retrying is attempted here.
func RequestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

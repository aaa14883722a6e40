package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/continuum-hq/model-router/internal/core/domain"
)

// ErrorHandler renders errors attached by handlers. Problems serialize per
// RFC 9457; plain domain errors keep their status code; anything else is a 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		if problem, ok := err.(*domain.Problem); ok {
			if problem.Log != nil {
				logger.Error("Request failed", zap.Error(problem.Log))
			}

			// RFC 9457 dictates the json is at the root
			c.JSON(problem.Status, problem)
			c.Abort()
			return
		}

		if appErr, ok := err.(*domain.Error); ok {
			if appErr.Log != nil {
				logger.Error("Request failed", zap.Error(appErr.Log))
			}
			c.JSON(appErr.Code, gin.H{"message": appErr.Message})
			c.Abort()
			return
		}

		logger.Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An unexpected error occurred.",
		})
		c.Abort()
	}
}

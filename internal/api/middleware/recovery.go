package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"farm-assets-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a logged 500 response
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithContext(c).
					WithError(fmt.Errorf("panic: %v", err)).
					WithFields(map[string]interface{}{
						"method": c.Request.Method,
						"path":   c.Request.URL.Path,
						"stack":  string(debug.Stack()),
					}).
					Error("Panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": GetRequestID(c),
				})
			}
		}()

		c.Next()
	}
}

package middleware

import (
	"time"

	"farm-assets-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request, at a level chosen by the response status class
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if c.Request.URL.RawQuery != "" {
			fields["query"] = c.Request.URL.RawQuery
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		// user_id is only known once the auth middleware has run
		log := logger.WithContext(c).WithFields(fields)
		switch {
		case status >= 500:
			log.Error("Request completed with server error")
		case status >= 400:
			log.Warn("Request completed with client error")
		default:
			log.Info("Request completed")
		}
	}
}

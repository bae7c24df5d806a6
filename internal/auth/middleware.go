package auth

import (
	"strings"

	apperrors "farm-assets-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and sets the user id on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apperrors.ErrTokenNotProvided)
			return
		}

		// "Bearer <token>"; the scheme word itself is not checked
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			abort(c, apperrors.ErrTokenInvalid)
			return
		}

		claims, err := m.service.ValidateJWT(parts[1])
		if err != nil {
			abort(c, apperrors.ErrTokenInvalid)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	status, body := apperrors.Response(err)
	c.AbortWithStatusJSON(status, body)
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint)
	return id, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

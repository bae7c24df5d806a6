package auth

import (
	"net/http"

	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// CreateSession handles POST /sessions
// @Summary Sign in
// @Description Exchange email and password for a bearer token
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body SessionRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 401 {object} map[string]interface{} "User not found or password does not match"
// @Router /sessions [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.CreateSession(&req)
	if err != nil {
		status, body := apperrors.Response(err)
		if status == http.StatusInternalServerError {
			logger.WithContext(c).WithError(err).Error("failed to create session")
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, session)
}

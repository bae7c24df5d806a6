package handlers

import (
	"net/http"
	"strconv"

	"farm-assets-backend/internal/auth"
	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// ValidationErrorResponse represents a 400 caused by request schema violations
type ValidationErrorResponse struct {
	Error    string                   `json:"error" example:"Validations fails"`
	Messages []apperrors.FieldMessage `json:"messages"`
}

// respondError writes the status and body mapped from err. Server-side failures are logged with action.
func respondError(c *gin.Context, err error, action string) {
	status, body := apperrors.Response(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).Error(action)
	}
	c.JSON(status, body)
}

// bindJSON decodes the request body, answering 400 when it is not valid JSON for target
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// pathID parses the :id segment. Anything that is not a positive integer names no record,
// so it is answered with notFound.
func pathID(c *gin.Context, notFound error) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, notFound, "parse id")
		return 0, false
	}
	return uint(id), true
}

// currentUser returns the id set by the auth middleware
func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok || userID == 0 {
		respondError(c, apperrors.ErrTokenInvalid, "resolve user")
		return 0, false
	}
	return userID, true
}

package handlers

import (
	"net/http"

	"farm-assets-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register handles POST /users
// @Summary Sign up
// @Description Create a user. The CPF may be sent formatted and is stored as digits only.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.RegisterUserRequest true "User data"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ValidationErrorResponse "Validation failed, duplicated email or CPF, invalid CPF"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		respondError(c, err, "failed to register user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update handles PUT /users
// @Summary Update the signed in user
// @Description Update name, email and CPF. Changing the password requires oldPassword, password and confirmPassword.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.UpdateUserRequest true "User data"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ValidationErrorResponse "Validation failed, email or CPF taken, invalid CPF, password does not match"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(userID, &req)
	if err != nil {
		respondError(c, err, "failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

package handlers

import (
	"net/http"

	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FarmHandler handles HTTP requests for the signed in user's farms
type FarmHandler struct {
	farmService service.FarmServiceInterface
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmService service.FarmServiceInterface) *FarmHandler {
	return &FarmHandler{
		farmService: farmService,
	}
}

// ListFarms handles GET /farms
// @Summary List farms
// @Description List the signed in user's farms ordered by id
// @Tags farms
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Farms per page" default(5)
// @Param active query bool false "Only active or inactive farms"
// @Success 200 {object} service.FarmListResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Security BearerAuth
// @Router /farms [get]
func (h *FarmHandler) ListFarms(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var query service.FarmListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	farms, err := h.farmService.List(userID, &query)
	if err != nil {
		respondError(c, err, "failed to list farms")
		return
	}

	c.JSON(http.StatusOK, farms)
}

// GetFarm handles GET /farms/:id
// @Summary Get a farm
// @Tags farms
// @Produce json
// @Param id path int true "Farm ID"
// @Success 200 {object} service.FarmResponse
// @Failure 400 {object} ErrorResponse "Farm does not exists"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Security BearerAuth
// @Router /farms/{id} [get]
func (h *FarmHandler) GetFarm(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, apperrors.ErrFarmNotFound)
	if !ok {
		return
	}

	farm, err := h.farmService.GetByID(userID, id)
	if err != nil {
		respondError(c, err, "failed to get farm")
		return
	}

	c.JSON(http.StatusOK, farm)
}

// CreateFarm handles POST /farms
// @Summary Create a farm
// @Description Create a farm owned by the signed in user. Farms are active unless active is false.
// @Tags farms
// @Accept json
// @Produce json
// @Param farm body service.FarmRequest true "Farm data"
// @Success 200 {object} service.FarmResponse
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Security BearerAuth
// @Router /farms [post]
func (h *FarmHandler) CreateFarm(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.FarmRequest
	if !bindJSON(c, &req) {
		return
	}

	farm, err := h.farmService.Create(userID, &req)
	if err != nil {
		respondError(c, err, "failed to create farm")
		return
	}

	c.JSON(http.StatusOK, farm)
}

// UpdateFarm handles PUT /farms/:id
// @Summary Update a farm
// @Tags farms
// @Accept json
// @Produce json
// @Param id path int true "Farm ID"
// @Param farm body service.FarmRequest true "Farm data"
// @Success 200 {object} service.FarmResponse
// @Failure 400 {object} ValidationErrorResponse "Validation failed or farm does not exists"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Security BearerAuth
// @Router /farms/{id} [put]
func (h *FarmHandler) UpdateFarm(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, apperrors.ErrFarmNotFound)
	if !ok {
		return
	}

	var req service.FarmRequest
	if !bindJSON(c, &req) {
		return
	}

	farm, err := h.farmService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err, "failed to update farm")
		return
	}

	c.JSON(http.StatusOK, farm)
}

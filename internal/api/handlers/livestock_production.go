package handlers

import (
	"net/http"

	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LivestockProductionHandler handles HTTP requests for livestock productions
type LivestockProductionHandler struct {
	productionService service.LivestockProductionServiceInterface
}

// NewLivestockProductionHandler creates a new livestock production handler
func NewLivestockProductionHandler(productionService service.LivestockProductionServiceInterface) *LivestockProductionHandler {
	return &LivestockProductionHandler{
		productionService: productionService,
	}
}

// ListProductions handles GET /livestock-production
// @Summary List livestock productions
// @Description List herds kept on at least one farm of the signed in user. Only the user's own farms are embedded.
// @Tags livestock-production
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Productions per page" default(5)
// @Param production_year query int false "Production year"
// @Param animals_species query string false "Species"
// @Success 200 {object} service.LivestockProductionListResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Security BearerAuth
// @Router /livestock-production [get]
func (h *LivestockProductionHandler) ListProductions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var query service.LivestockProductionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	productions, err := h.productionService.List(userID, &query)
	if err != nil {
		respondError(c, err, "failed to list livestock productions")
		return
	}

	c.JSON(http.StatusOK, productions)
}

// GetProduction handles GET /livestock-production/:id
// @Summary Get a livestock production
// @Tags livestock-production
// @Produce json
// @Param id path int true "Livestock production ID"
// @Success 200 {object} service.LivestockProductionResponse
// @Failure 400 {object} ErrorResponse "Livestock does not exists"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Security BearerAuth
// @Router /livestock-production/{id} [get]
func (h *LivestockProductionHandler) GetProduction(c *gin.Context) {
	id, ok := pathID(c, apperrors.ErrLivestockNotFound)
	if !ok {
		return
	}

	production, err := h.productionService.GetByID(id)
	if err != nil {
		respondError(c, err, "failed to get livestock production")
		return
	}

	c.JSON(http.StatusOK, production)
}

// CreateProduction handles POST /livestock-production
// @Summary Create a livestock production
// @Tags livestock-production
// @Accept json
// @Produce json
// @Param production body service.CreateLivestockProductionRequest true "Production data"
// @Success 200 {object} service.LivestockProductionResponse
// @Failure 400 {object} ValidationErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /livestock-production [post]
func (h *LivestockProductionHandler) CreateProduction(c *gin.Context) {
	var req service.CreateLivestockProductionRequest
	if !bindJSON(c, &req) {
		return
	}

	production, err := h.productionService.Create(&req)
	if err != nil {
		respondError(c, err, "failed to create livestock production")
		return
	}

	c.JSON(http.StatusOK, production)
}

// UpdateProduction handles PUT /livestock-production/:id
// @Summary Update a livestock production
// @Description A non-empty farms list replaces the farm set. Without it the farm set is kept.
// @Tags livestock-production
// @Accept json
// @Produce json
// @Param id path int true "Livestock production ID"
// @Param production body service.UpdateLivestockProductionRequest true "Production data"
// @Success 200 {object} service.LivestockProductionResponse
// @Failure 400 {object} ValidationErrorResponse "Validation failed or livestock does not exists"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /livestock-production/{id} [put]
func (h *LivestockProductionHandler) UpdateProduction(c *gin.Context) {
	id, ok := pathID(c, apperrors.ErrLivestockNotFound)
	if !ok {
		return
	}

	var req service.UpdateLivestockProductionRequest
	if !bindJSON(c, &req) {
		return
	}

	production, err := h.productionService.Update(id, &req)
	if err != nil {
		respondError(c, err, "failed to update livestock production")
		return
	}

	c.JSON(http.StatusOK, production)
}

// DeleteProduction handles DELETE /livestock-production/:id
// @Summary Delete a livestock production
// @Description Removes the herd and its farm links. The farms are kept.
// @Tags livestock-production
// @Param id path int true "Livestock production ID"
// @Success 200 "Deleted"
// @Failure 400 {object} ErrorResponse "Livestock does not exists"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /livestock-production/{id} [delete]
func (h *LivestockProductionHandler) DeleteProduction(c *gin.Context) {
	id, ok := pathID(c, apperrors.ErrLivestockNotFound)
	if !ok {
		return
	}

	if err := h.productionService.Delete(id); err != nil {
		respondError(c, err, "failed to delete livestock production")
		return
	}

	c.Status(http.StatusOK)
}

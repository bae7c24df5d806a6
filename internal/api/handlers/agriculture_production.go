package handlers

import (
	"net/http"

	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AgricultureProductionHandler handles HTTP requests for crop productions
type AgricultureProductionHandler struct {
	productionService service.AgricultureProductionServiceInterface
}

// NewAgricultureProductionHandler creates a new agriculture production handler
func NewAgricultureProductionHandler(productionService service.AgricultureProductionServiceInterface) *AgricultureProductionHandler {
	return &AgricultureProductionHandler{
		productionService: productionService,
	}
}

// ListProductions handles GET /agriculture-production
// @Summary List agriculture productions
// @Description List productions planted on at least one farm of the signed in user. Only the user's own farms are embedded.
// @Tags agriculture-production
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Productions per page" default(5)
// @Param planting_year query int false "Planting year"
// @Param planting_crop query string false "Crop name"
// @Success 200 {object} service.AgricultureProductionListResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Security BearerAuth
// @Router /agriculture-production [get]
func (h *AgricultureProductionHandler) ListProductions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var query service.AgricultureProductionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	productions, err := h.productionService.List(userID, &query)
	if err != nil {
		respondError(c, err, "failed to list agriculture productions")
		return
	}

	c.JSON(http.StatusOK, productions)
}

// GetProduction handles GET /agriculture-production/:id
// @Summary Get an agriculture production
// @Tags agriculture-production
// @Produce json
// @Param id path int true "Production ID"
// @Success 200 {object} service.AgricultureProductionResponse
// @Failure 400 {object} ErrorResponse "Production does not exists"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Security BearerAuth
// @Router /agriculture-production/{id} [get]
func (h *AgricultureProductionHandler) GetProduction(c *gin.Context) {
	id, ok := pathID(c, apperrors.ErrProductionNotFound)
	if !ok {
		return
	}

	production, err := h.productionService.GetByID(id)
	if err != nil {
		respondError(c, err, "failed to get agriculture production")
		return
	}

	c.JSON(http.StatusOK, production)
}

// CreateProduction handles POST /agriculture-production
// @Summary Create an agriculture production
// @Description Planted hectares may not exceed the summed land of the given farms
// @Tags agriculture-production
// @Accept json
// @Produce json
// @Param production body service.CreateAgricultureProductionRequest true "Production data"
// @Success 200 {object} service.AgricultureProductionResponse
// @Failure 400 {object} ValidationErrorResponse "Validation failed or hectares planted above farm land"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /agriculture-production [post]
func (h *AgricultureProductionHandler) CreateProduction(c *gin.Context) {
	var req service.CreateAgricultureProductionRequest
	if !bindJSON(c, &req) {
		return
	}

	production, err := h.productionService.Create(&req)
	if err != nil {
		respondError(c, err, "failed to create agriculture production")
		return
	}

	c.JSON(http.StatusOK, production)
}

// UpdateProduction handles PUT /agriculture-production/:id
// @Summary Update an agriculture production
// @Description A non-empty farms list replaces the farm set and is checked against the planted hectares. Without it the farm set is kept.
// @Tags agriculture-production
// @Accept json
// @Produce json
// @Param id path int true "Production ID"
// @Param production body service.UpdateAgricultureProductionRequest true "Production data"
// @Success 200 {object} service.AgricultureProductionResponse
// @Failure 400 {object} ValidationErrorResponse "Validation failed, production does not exists or hectares planted above farm land"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /agriculture-production/{id} [put]
func (h *AgricultureProductionHandler) UpdateProduction(c *gin.Context) {
	id, ok := pathID(c, apperrors.ErrProductionNotFound)
	if !ok {
		return
	}

	var req service.UpdateAgricultureProductionRequest
	if !bindJSON(c, &req) {
		return
	}

	production, err := h.productionService.Update(id, &req)
	if err != nil {
		respondError(c, err, "failed to update agriculture production")
		return
	}

	c.JSON(http.StatusOK, production)
}

// DeleteProduction handles DELETE /agriculture-production/:id
// @Summary Delete an agriculture production
// @Description Removes the production and its farm links. The farms are kept.
// @Tags agriculture-production
// @Param id path int true "Production ID"
// @Success 200 "Deleted"
// @Failure 400 {object} ErrorResponse "Production does not exists"
// @Failure 401 {object} ErrorResponse "Token is not provided or invalid"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /agriculture-production/{id} [delete]
func (h *AgricultureProductionHandler) DeleteProduction(c *gin.Context) {
	id, ok := pathID(c, apperrors.ErrProductionNotFound)
	if !ok {
		return
	}

	if err := h.productionService.Delete(id); err != nil {
		respondError(c, err, "failed to delete agriculture production")
		return
	}

	c.Status(http.StatusOK)
}

package service

import (
	"errors"
	"fmt"
	"time"

	"farm-assets-backend/internal/database/models"
	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/repository"
	"farm-assets-backend/internal/validation"

	"gorm.io/gorm"
)

// AgricultureProductionService coordinates crop production writes. Planted area may not
// exceed the summed land of the farms a write assigns the production to.
type AgricultureProductionService struct {
	repo      repository.AgricultureProductionRepositoryInterface
	farmRepo  repository.FarmRepositoryInterface
	validator *validation.Validator
}

// Ensure AgricultureProductionService implements AgricultureProductionServiceInterface
var _ AgricultureProductionServiceInterface = (*AgricultureProductionService)(nil)

// NewAgricultureProductionService creates a new agriculture production service
func NewAgricultureProductionService(repo repository.AgricultureProductionRepositoryInterface, farmRepo repository.FarmRepositoryInterface, validator *validation.Validator) *AgricultureProductionService {
	return &AgricultureProductionService{
		repo:      repo,
		farmRepo:  farmRepo,
		validator: validator,
	}
}

// CreateAgricultureProductionRequest represents the body of POST /agriculture-production
type CreateAgricultureProductionRequest struct {
	QtyHectaresPlanted *float64 `json:"qty_hectares_planted" validate:"required,gt=0" example:"20"`
	PlantingYear       *int     `json:"planting_year" validate:"required,gt=0" example:"2024"`
	PlantingCrop       string   `json:"planting_crop" validate:"required" example:"Soybean"`
	Farms              []uint   `json:"farms" validate:"required,min=1,dive,gt=0" example:"1,2"`
}

// UpdateAgricultureProductionRequest represents the body of PUT /agriculture-production/:id.
// Leaving farms out, or sending an empty list, keeps the current farm set.
type UpdateAgricultureProductionRequest struct {
	QtyHectaresPlanted *float64 `json:"qty_hectares_planted" validate:"required,gt=0" example:"20"`
	PlantingYear       *int     `json:"planting_year" validate:"required,gt=0" example:"2024"`
	PlantingCrop       string   `json:"planting_crop" validate:"required" example:"Soybean"`
	Farms              []uint   `json:"farms" validate:"omitempty,dive,gt=0" example:"1,2"`
}

// AgricultureProductionListQuery represents the query string of GET /agriculture-production
type AgricultureProductionListQuery struct {
	PageQuery
	PlantingYear *int   `form:"planting_year" json:"planting_year"`
	PlantingCrop string `form:"planting_crop" json:"planting_crop"`
}

// FarmSummary is the farm projection embedded in production responses
type FarmSummary struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Santa Luzia"`
	City  string `json:"city" example:"Ribeirão Preto"`
	State string `json:"state" example:"SP"`
}

// AgricultureProductionResponse represents an agriculture production in API responses
type AgricultureProductionResponse struct {
	ID                 uint          `json:"id" example:"1"`
	QtyHectaresPlanted float64       `json:"qty_hectares_planted" example:"20"`
	PlantingYear       int           `json:"planting_year" example:"2024"`
	PlantingCrop       string        `json:"planting_crop" example:"Soybean"`
	Farms              []FarmSummary `json:"farms"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// AgricultureProductionListResponse represents a page of agriculture productions
type AgricultureProductionListResponse struct {
	Productions []AgricultureProductionResponse `json:"productions"`
	Total       int64                           `json:"total"`
	Page        int                             `json:"page"`
	PerPage     int                             `json:"per_page"`
}

// List returns the productions planted on at least one of userID's farms
func (s *AgricultureProductionService) List(userID uint, query *AgricultureProductionListQuery) (*AgricultureProductionListResponse, error) {
	if query == nil {
		query = &AgricultureProductionListQuery{}
	}
	page, perPage, offset := query.normalize()

	filter := repository.AgricultureFilter{
		PlantingYear: query.PlantingYear,
		PlantingCrop: query.PlantingCrop,
	}
	productions, total, err := s.repo.GetByOwner(userID, filter, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list agriculture productions: %w", err)
	}

	responses := make([]AgricultureProductionResponse, len(productions))
	for i := range productions {
		responses[i] = toAgricultureProductionResponse(&productions[i])
	}

	return &AgricultureProductionListResponse{
		Productions: responses,
		Total:       total,
		Page:        page,
		PerPage:     perPage,
	}, nil
}

// GetByID returns a production with all of its farms
func (s *AgricultureProductionService) GetByID(id uint) (*AgricultureProductionResponse, error) {
	production, err := s.repo.GetWithFarms(id)
	if err != nil {
		return nil, s.lookupError(err)
	}
	resp := toAgricultureProductionResponse(production)
	return &resp, nil
}

// Create checks capacity over req.Farms, then stores the production and its farm links atomically
func (s *AgricultureProductionService) Create(req *CreateAgricultureProductionRequest) (*AgricultureProductionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if err := s.checkCapacity(*req.QtyHectaresPlanted, req.Farms); err != nil {
		return nil, err
	}

	production := &models.AgricultureProduction{
		QtyHectaresPlanted: *req.QtyHectaresPlanted,
		PlantingYear:       *req.PlantingYear,
		PlantingCrop:       req.PlantingCrop,
	}
	if err := s.repo.CreateWithFarms(production, req.Farms); err != nil {
		return nil, err
	}

	return s.GetByID(production.ID)
}

// Update rewrites the production. A non-empty farm list is re-checked for capacity against
// the requested planted area and replaces the current farm set; otherwise the farm set and
// capacity check are both left alone.
func (s *AgricultureProductionService) Update(id uint, req *UpdateAgricultureProductionRequest) (*AgricultureProductionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	production, err := s.repo.GetByID(id)
	if err != nil {
		return nil, s.lookupError(err)
	}

	var farmIDs []uint
	if len(req.Farms) > 0 {
		if err := s.checkCapacity(*req.QtyHectaresPlanted, req.Farms); err != nil {
			return nil, err
		}
		farmIDs = req.Farms
	}

	production.QtyHectaresPlanted = *req.QtyHectaresPlanted
	production.PlantingYear = *req.PlantingYear
	production.PlantingCrop = req.PlantingCrop
	if err := s.repo.UpdateWithFarms(production, farmIDs); err != nil {
		return nil, err
	}

	return s.GetByID(production.ID)
}

// Delete removes the production; its farms are untouched
func (s *AgricultureProductionService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return s.lookupError(err)
	}
	return s.repo.Delete(id)
}

func (s *AgricultureProductionService) checkCapacity(planted float64, farmIDs []uint) error {
	capacity, err := s.farmRepo.SumLandArea(farmIDs)
	if err != nil {
		return fmt.Errorf("failed to sum farm land: %w", err)
	}
	if planted > capacity {
		return apperrors.ErrCapacityExceeded
	}
	return nil
}

func (s *AgricultureProductionService) lookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrProductionNotFound
	}
	return fmt.Errorf("failed to get agriculture production: %w", err)
}

func toAgricultureProductionResponse(production *models.AgricultureProduction) AgricultureProductionResponse {
	return AgricultureProductionResponse{
		ID:                 production.ID,
		QtyHectaresPlanted: production.QtyHectaresPlanted,
		PlantingYear:       production.PlantingYear,
		PlantingCrop:       production.PlantingCrop,
		Farms:              toFarmSummaries(production.Farms),
		CreatedAt:          production.CreatedAt,
		UpdatedAt:          production.UpdatedAt,
	}
}

func toFarmSummaries(farms []models.Farm) []FarmSummary {
	summaries := make([]FarmSummary, len(farms))
	for i, farm := range farms {
		summaries[i] = FarmSummary{
			ID:    farm.ID,
			Name:  farm.Name,
			City:  farm.City,
			State: farm.State,
		}
	}
	return summaries
}

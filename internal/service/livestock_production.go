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

// LivestockProductionService coordinates livestock production writes
type LivestockProductionService struct {
	repo      repository.LivestockProductionRepositoryInterface
	validator *validation.Validator
}

// Ensure LivestockProductionService implements LivestockProductionServiceInterface
var _ LivestockProductionServiceInterface = (*LivestockProductionService)(nil)

// NewLivestockProductionService creates a new livestock production service
func NewLivestockProductionService(repo repository.LivestockProductionRepositoryInterface, validator *validation.Validator) *LivestockProductionService {
	return &LivestockProductionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLivestockProductionRequest represents the body of POST /livestock-production
type CreateLivestockProductionRequest struct {
	QtyAnimals     *int   `json:"qty_animals" validate:"required,gt=0" example:"120"`
	ProductionYear *int   `json:"production_year" validate:"required,gt=0" example:"2024"`
	AnimalsSpecies string `json:"animals_species" validate:"required" example:"Cattle"`
	Farms          []uint `json:"farms" validate:"required,min=1,dive,gt=0" example:"1,2"`
}

// UpdateLivestockProductionRequest represents the body of PUT /livestock-production/:id
type UpdateLivestockProductionRequest struct {
	QtyAnimals     *int   `json:"qty_animals" validate:"required,gt=0" example:"120"`
	ProductionYear *int   `json:"production_year" validate:"required,gt=0" example:"2024"`
	AnimalsSpecies string `json:"animals_species" validate:"required" example:"Cattle"`
	Farms          []uint `json:"farms" validate:"omitempty,dive,gt=0" example:"1,2"`
}

// LivestockProductionListQuery represents the query string of GET /livestock-production
type LivestockProductionListQuery struct {
	PageQuery
	ProductionYear *int   `form:"production_year" json:"production_year"`
	AnimalsSpecies string `form:"animals_species" json:"animals_species"`
}

// LivestockProductionResponse represents a livestock production in API responses
type LivestockProductionResponse struct {
	ID             uint          `json:"id" example:"1"`
	QtyAnimals     int           `json:"qty_animals" example:"120"`
	ProductionYear int           `json:"production_year" example:"2024"`
	AnimalsSpecies string        `json:"animals_species" example:"Cattle"`
	Farms          []FarmSummary `json:"farms"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// LivestockProductionListResponse represents a page of livestock productions
type LivestockProductionListResponse struct {
	Productions []LivestockProductionResponse `json:"productions"`
	Total       int64                         `json:"total"`
	Page        int                           `json:"page"`
	PerPage     int                           `json:"per_page"`
}

// List returns the herds kept on at least one of userID's farms
func (s *LivestockProductionService) List(userID uint, query *LivestockProductionListQuery) (*LivestockProductionListResponse, error) {
	if query == nil {
		query = &LivestockProductionListQuery{}
	}
	page, perPage, offset := query.normalize()

	filter := repository.LivestockFilter{
		ProductionYear: query.ProductionYear,
		AnimalsSpecies: query.AnimalsSpecies,
	}
	productions, total, err := s.repo.GetByOwner(userID, filter, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list livestock productions: %w", err)
	}

	responses := make([]LivestockProductionResponse, len(productions))
	for i := range productions {
		responses[i] = toLivestockProductionResponse(&productions[i])
	}

	return &LivestockProductionListResponse{
		Productions: responses,
		Total:       total,
		Page:        page,
		PerPage:     perPage,
	}, nil
}

// GetByID returns a herd with all of its farms
func (s *LivestockProductionService) GetByID(id uint) (*LivestockProductionResponse, error) {
	production, err := s.repo.GetWithFarms(id)
	if err != nil {
		return nil, s.lookupError(err)
	}
	resp := toLivestockProductionResponse(production)
	return &resp, nil
}

// Create stores the herd and its farm links atomically
func (s *LivestockProductionService) Create(req *CreateLivestockProductionRequest) (*LivestockProductionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	production := &models.LivestockProduction{
		QtyAnimals:     *req.QtyAnimals,
		ProductionYear: *req.ProductionYear,
		AnimalsSpecies: req.AnimalsSpecies,
	}
	if err := s.repo.CreateWithFarms(production, req.Farms); err != nil {
		return nil, err
	}

	return s.GetByID(production.ID)
}

// Update rewrites the herd, replacing its farm set only when a non-empty list is given
func (s *LivestockProductionService) Update(id uint, req *UpdateLivestockProductionRequest) (*LivestockProductionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	production, err := s.repo.GetByID(id)
	if err != nil {
		return nil, s.lookupError(err)
	}

	var farmIDs []uint
	if len(req.Farms) > 0 {
		farmIDs = req.Farms
	}

	production.QtyAnimals = *req.QtyAnimals
	production.ProductionYear = *req.ProductionYear
	production.AnimalsSpecies = req.AnimalsSpecies
	if err := s.repo.UpdateWithFarms(production, farmIDs); err != nil {
		return nil, err
	}

	return s.GetByID(production.ID)
}

// Delete removes the herd; its farms are untouched
func (s *LivestockProductionService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return s.lookupError(err)
	}
	return s.repo.Delete(id)
}

func (s *LivestockProductionService) lookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrLivestockNotFound
	}
	return fmt.Errorf("failed to get livestock production: %w", err)
}

func toLivestockProductionResponse(production *models.LivestockProduction) LivestockProductionResponse {
	return LivestockProductionResponse{
		ID:             production.ID,
		QtyAnimals:     production.QtyAnimals,
		ProductionYear: production.ProductionYear,
		AnimalsSpecies: production.AnimalsSpecies,
		Farms:          toFarmSummaries(production.Farms),
		CreatedAt:      production.CreatedAt,
		UpdatedAt:      production.UpdatedAt,
	}
}

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

// FarmService provides farm-related business logic. Every operation is scoped to the requesting owner.
type FarmService struct {
	repo      repository.FarmRepositoryInterface
	validator *validation.Validator
}

// Ensure FarmService implements FarmServiceInterface
var _ FarmServiceInterface = (*FarmService)(nil)

// NewFarmService creates a new farm service
func NewFarmService(repo repository.FarmRepositoryInterface, validator *validation.Validator) *FarmService {
	return &FarmService{
		repo:      repo,
		validator: validator,
	}
}

// FarmRequest represents the body of farm create and update requests
type FarmRequest struct {
	Name            string   `json:"name" validate:"required" example:"Santa Luzia"`
	City            string   `json:"city" validate:"required" example:"Ribeirão Preto"`
	State           string   `json:"state" validate:"required" example:"SP"`
	QtyHectaresLand *float64 `json:"qty_hectares_land" validate:"required,gt=0" example:"120.5"`
	Active          *bool    `json:"active" example:"true"`
}

// FarmListQuery represents the query string of GET /farms
type FarmListQuery struct {
	PageQuery
	Active *bool `form:"active" json:"active"`
}

// FarmResponse represents a farm in API responses
type FarmResponse struct {
	ID              uint      `json:"id" example:"1"`
	UserID          uint      `json:"user_id" example:"1"`
	Name            string    `json:"name" example:"Santa Luzia"`
	City            string    `json:"city" example:"Ribeirão Preto"`
	State           string    `json:"state" example:"SP"`
	QtyHectaresLand float64   `json:"qty_hectares_land" example:"120.5"`
	Active          bool      `json:"active" example:"true"`
	CreatedAt       time.Time `json:"created_at"`
}

// FarmListResponse represents a page of the requester's farms
type FarmListResponse struct {
	Farms   []FarmResponse `json:"farms"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// List returns a page of userID's farms, optionally filtered by the active flag
func (s *FarmService) List(userID uint, query *FarmListQuery) (*FarmListResponse, error) {
	if query == nil {
		query = &FarmListQuery{}
	}
	page, perPage, offset := query.normalize()

	farms, total, err := s.repo.GetByOwner(userID, repository.FarmFilter{Active: query.Active}, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}

	responses := make([]FarmResponse, len(farms))
	for i := range farms {
		responses[i] = toFarmResponse(&farms[i])
	}

	return &FarmListResponse{
		Farms:   responses,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// GetByID returns one of userID's farms
func (s *FarmService) GetByID(userID, id uint) (*FarmResponse, error) {
	farm, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	resp := toFarmResponse(farm)
	return &resp, nil
}

// Create registers a farm owned by userID. Farms start active unless told otherwise.
func (s *FarmService) Create(userID uint, req *FarmRequest) (*FarmResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	farm := &models.Farm{
		UserID:          userID,
		Name:            req.Name,
		City:            req.City,
		State:           req.State,
		QtyHectaresLand: *req.QtyHectaresLand,
		Active:          true,
	}
	if req.Active != nil {
		farm.Active = *req.Active
	}

	if err := s.repo.Create(farm); err != nil {
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}

	resp := toFarmResponse(farm)
	return &resp, nil
}

// Update rewrites one of userID's farms. The active flag is kept when absent from the request.
func (s *FarmService) Update(userID, id uint, req *FarmRequest) (*FarmResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	farm, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}

	farm.Name = req.Name
	farm.City = req.City
	farm.State = req.State
	farm.QtyHectaresLand = *req.QtyHectaresLand
	if req.Active != nil {
		farm.Active = *req.Active
	}

	if err := s.repo.Update(farm); err != nil {
		return nil, fmt.Errorf("failed to update farm: %w", err)
	}

	resp := toFarmResponse(farm)
	return &resp, nil
}

func (s *FarmService) owned(userID, id uint) (*models.Farm, error) {
	farm, err := s.repo.GetByIDAndOwner(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFarmNotFound
		}
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}
	return farm, nil
}

func toFarmResponse(farm *models.Farm) FarmResponse {
	return FarmResponse{
		ID:              farm.ID,
		UserID:          farm.UserID,
		Name:            farm.Name,
		City:            farm.City,
		State:           farm.State,
		QtyHectaresLand: farm.QtyHectaresLand,
		Active:          farm.Active,
		CreatedAt:       farm.CreatedAt,
	}
}

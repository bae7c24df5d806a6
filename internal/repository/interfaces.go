package repository

import (
	"farm-assets-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByCPF(cpf string) (*models.User, error)
	Update(user *models.User) error
}

// FarmRepositoryInterface defines the interface for farm repository operations
type FarmRepositoryInterface interface {
	Create(farm *models.Farm) error
	GetByID(id uint) (*models.Farm, error)
	GetByIDAndOwner(id, userID uint) (*models.Farm, error)
	GetByOwner(userID uint, filter FarmFilter, limit, offset int) ([]models.Farm, int64, error)
	Update(farm *models.Farm) error
	SumLandArea(farmIDs []uint) (float64, error)
}

// AgricultureProductionRepositoryInterface defines the interface for agriculture production repository operations
type AgricultureProductionRepositoryInterface interface {
	GetByID(id uint) (*models.AgricultureProduction, error)
	GetWithFarms(id uint) (*models.AgricultureProduction, error)
	GetByOwner(userID uint, filter AgricultureFilter, limit, offset int) ([]models.AgricultureProduction, int64, error)
	CreateWithFarms(production *models.AgricultureProduction, farmIDs []uint) error
	UpdateWithFarms(production *models.AgricultureProduction, farmIDs []uint) error
	Delete(id uint) error
}

// LivestockProductionRepositoryInterface defines the interface for livestock production repository operations
type LivestockProductionRepositoryInterface interface {
	GetByID(id uint) (*models.LivestockProduction, error)
	GetWithFarms(id uint) (*models.LivestockProduction, error)
	GetByOwner(userID uint, filter LivestockFilter, limit, offset int) ([]models.LivestockProduction, int64, error)
	CreateWithFarms(production *models.LivestockProduction, farmIDs []uint) error
	UpdateWithFarms(production *models.LivestockProduction, farmIDs []uint) error
	Delete(id uint) error
}

var (
	_ UserRepositoryInterface                  = (*UserRepository)(nil)
	_ FarmRepositoryInterface                  = (*FarmRepository)(nil)
	_ AgricultureProductionRepositoryInterface = (*AgricultureProductionRepository)(nil)
	_ LivestockProductionRepositoryInterface   = (*LivestockProductionRepository)(nil)
)

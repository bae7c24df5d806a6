package repository

import (
	"farm-assets-backend/internal/database/models"

	"gorm.io/gorm"
)

// FarmFilter narrows farm listings
type FarmFilter struct {
	Active *bool
}

// FarmRepository handles database operations for farms
type FarmRepository struct {
	db *gorm.DB
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *gorm.DB) *FarmRepository {
	return &FarmRepository{db: db}
}

// Create creates a new farm
func (r *FarmRepository) Create(farm *models.Farm) error {
	return r.db.Create(farm).Error
}

// GetByID retrieves a farm by ID
func (r *FarmRepository) GetByID(id uint) (*models.Farm, error) {
	var farm models.Farm
	err := r.db.First(&farm, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

// GetByIDAndOwner retrieves a farm by ID only if it belongs to userID
func (r *FarmRepository) GetByIDAndOwner(id, userID uint) (*models.Farm, error) {
	var farm models.Farm
	err := r.db.First(&farm, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

// GetByOwner retrieves the farms of a user with pagination
func (r *FarmRepository) GetByOwner(userID uint, filter FarmFilter, limit, offset int) ([]models.Farm, int64, error) {
	var farms []models.Farm
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if filter.Active != nil {
			db = db.Where("active = ?", *filter.Active)
		}
		return db
	}

	if err := r.db.Model(&models.Farm{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Scopes(scope).Order("id").Limit(limit).Offset(offset).Find(&farms).Error
	return farms, total, err
}

// Update updates an existing farm
func (r *FarmRepository) Update(farm *models.Farm) error {
	return r.db.Save(farm).Error
}

// SumLandArea returns the summed land area of the farms whose id is in farmIDs.
// Unknown ids contribute nothing and duplicates count once.
func (r *FarmRepository) SumLandArea(farmIDs []uint) (float64, error) {
	if len(farmIDs) == 0 {
		return 0, nil
	}

	var total float64
	err := r.db.Model(&models.Farm{}).
		Select("COALESCE(SUM(qty_hectares_land), 0)").
		Where("id IN ?", farmIDs).
		Row().
		Scan(&total)
	return total, err
}

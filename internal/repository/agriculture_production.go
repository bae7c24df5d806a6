package repository

import (
	"farm-assets-backend/internal/database/models"
	apperrors "farm-assets-backend/internal/errors"

	"gorm.io/gorm"
)

// AgricultureFilter narrows agriculture production listings
type AgricultureFilter struct {
	PlantingYear *int
	PlantingCrop string
}

// AgricultureProductionRepository handles database operations for agriculture productions
type AgricultureProductionRepository struct {
	db    *gorm.DB
	farms FarmAssociation
}

// NewAgricultureProductionRepository creates a new agriculture production repository
func NewAgricultureProductionRepository(db *gorm.DB) *AgricultureProductionRepository {
	return &AgricultureProductionRepository{db: db, farms: AgricultureFarms}
}

// GetByID retrieves an agriculture production by ID without its farms
func (r *AgricultureProductionRepository) GetByID(id uint) (*models.AgricultureProduction, error) {
	var production models.AgricultureProduction
	err := r.db.First(&production, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &production, nil
}

// GetWithFarms retrieves an agriculture production by ID together with its farms
func (r *AgricultureProductionRepository) GetWithFarms(id uint) (*models.AgricultureProduction, error) {
	production, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	farms, err := r.farms.Farms(r.db, []uint{id}, nil)
	if err != nil {
		return nil, err
	}
	production.Farms = farms[id]
	return production, nil
}

// GetByOwner retrieves the productions planted on at least one farm of userID.
// Only the owner's farms are attached to each result.
func (r *AgricultureProductionRepository) GetByOwner(userID uint, filter AgricultureFilter, limit, offset int) ([]models.AgricultureProduction, int64, error) {
	var productions []models.AgricultureProduction
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("id IN (?)", r.farms.ownedBy(r.db, userID))
		if filter.PlantingYear != nil {
			db = db.Where("planting_year = ?", *filter.PlantingYear)
		}
		if filter.PlantingCrop != "" {
			db = db.Where("planting_crop = ?", filter.PlantingCrop)
		}
		return db
	}

	if err := r.db.Model(&models.AgricultureProduction{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Scopes(scope).Order("id").Limit(limit).Offset(offset).Find(&productions).Error; err != nil {
		return nil, 0, err
	}

	ids := make([]uint, len(productions))
	for i := range productions {
		ids[i] = productions[i].ID
	}
	farms, err := r.farms.Farms(r.db, ids, &userID)
	if err != nil {
		return nil, 0, err
	}
	for i := range productions {
		productions[i].Farms = farms[productions[i].ID]
	}

	return productions, total, nil
}

// CreateWithFarms inserts the production and links it to farmIDs in one transaction
func (r *AgricultureProductionRepository) CreateWithFarms(production *models.AgricultureProduction, farmIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(production).Error; err != nil {
			return err
		}
		return r.farms.Replace(tx, production.ID, farmIDs)
	})
	if err != nil {
		return apperrors.NewTransactionError("create agriculture production", err)
	}
	return nil
}

// UpdateWithFarms writes the scalar fields of production and, when farmIDs is not nil,
// replaces its farm set, all in one transaction.
func (r *AgricultureProductionRepository) UpdateWithFarms(production *models.AgricultureProduction, farmIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.AgricultureProduction{}).
			Where("id = ?", production.ID).
			Updates(map[string]interface{}{
				"qty_hectares_planted": production.QtyHectaresPlanted,
				"planting_year":        production.PlantingYear,
				"planting_crop":        production.PlantingCrop,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrProductionNotFound
		}

		if farmIDs == nil {
			return nil
		}
		return r.farms.Replace(tx, production.ID, farmIDs)
	})
	if err != nil {
		return apperrors.NewTransactionError("update agriculture production", err)
	}
	return nil
}

// Delete removes the production and its farm links
func (r *AgricultureProductionRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.farms.Clear(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.AgricultureProduction{}, "id = ?", id).Error
	})
	if err != nil {
		return apperrors.NewTransactionError("delete agriculture production", err)
	}
	return nil
}

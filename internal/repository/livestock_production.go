package repository

import (
	"farm-assets-backend/internal/database/models"
	apperrors "farm-assets-backend/internal/errors"

	"gorm.io/gorm"
)

// LivestockFilter narrows livestock production listings
type LivestockFilter struct {
	ProductionYear *int
	AnimalsSpecies string
}

// LivestockProductionRepository handles database operations for livestock productions
type LivestockProductionRepository struct {
	db    *gorm.DB
	farms FarmAssociation
}

// NewLivestockProductionRepository creates a new livestock production repository
func NewLivestockProductionRepository(db *gorm.DB) *LivestockProductionRepository {
	return &LivestockProductionRepository{db: db, farms: LivestockFarms}
}

// GetByID retrieves a livestock production by ID without its farms
func (r *LivestockProductionRepository) GetByID(id uint) (*models.LivestockProduction, error) {
	var production models.LivestockProduction
	err := r.db.First(&production, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &production, nil
}

// GetWithFarms retrieves a livestock production by ID together with its farms
func (r *LivestockProductionRepository) GetWithFarms(id uint) (*models.LivestockProduction, error) {
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

// GetByOwner retrieves the productions raised on at least one farm of userID.
// Only the owner's farms are attached to each result.
func (r *LivestockProductionRepository) GetByOwner(userID uint, filter LivestockFilter, limit, offset int) ([]models.LivestockProduction, int64, error) {
	var productions []models.LivestockProduction
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("id IN (?)", r.farms.ownedBy(r.db, userID))
		if filter.ProductionYear != nil {
			db = db.Where("production_year = ?", *filter.ProductionYear)
		}
		if filter.AnimalsSpecies != "" {
			db = db.Where("animals_species = ?", filter.AnimalsSpecies)
		}
		return db
	}

	if err := r.db.Model(&models.LivestockProduction{}).Scopes(scope).Count(&total).Error; err != nil {
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
func (r *LivestockProductionRepository) CreateWithFarms(production *models.LivestockProduction, farmIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(production).Error; err != nil {
			return err
		}
		return r.farms.Replace(tx, production.ID, farmIDs)
	})
	if err != nil {
		return apperrors.NewTransactionError("create livestock production", err)
	}
	return nil
}

// UpdateWithFarms writes the scalar fields of production and, when farmIDs is not nil,
// replaces its farm set, all in one transaction.
func (r *LivestockProductionRepository) UpdateWithFarms(production *models.LivestockProduction, farmIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.LivestockProduction{}).
			Where("id = ?", production.ID).
			Updates(map[string]interface{}{
				"qty_animals":     production.QtyAnimals,
				"production_year": production.ProductionYear,
				"animals_species": production.AnimalsSpecies,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrLivestockNotFound
		}

		if farmIDs == nil {
			return nil
		}
		return r.farms.Replace(tx, production.ID, farmIDs)
	})
	if err != nil {
		return apperrors.NewTransactionError("update livestock production", err)
	}
	return nil
}

// Delete removes the production and its farm links
func (r *LivestockProductionRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.farms.Clear(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.LivestockProduction{}, "id = ?", id).Error
	})
	if err != nil {
		return apperrors.NewTransactionError("delete livestock production", err)
	}
	return nil
}

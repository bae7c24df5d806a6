package repository

import (
	"fmt"
	"slices"

	"farm-assets-backend/internal/database/models"

	"gorm.io/gorm"
)

// FarmAssociation manages the junction rows linking one kind of production to farms
type FarmAssociation struct {
	table    string
	column   string
	newModel func() interface{}
	newLinks func(productionID uint, farmIDs []uint) interface{}
}

var (
	// AgricultureFarms links agriculture productions to farms
	AgricultureFarms = FarmAssociation{
		table:    "farms_agriculture_productions",
		column:   "agriculture_production_id",
		newModel: func() interface{} { return &models.FarmAgricultureProduction{} },
		newLinks: func(productionID uint, farmIDs []uint) interface{} {
			links := make([]models.FarmAgricultureProduction, len(farmIDs))
			for i := range farmIDs {
				links[i] = models.FarmAgricultureProduction{AgricultureProductionID: productionID, FarmID: &farmIDs[i]}
			}
			return &links
		},
	}
	// LivestockFarms links livestock productions to farms
	LivestockFarms = FarmAssociation{
		table:    "farms_livestock_productions",
		column:   "livestock_production_id",
		newModel: func() interface{} { return &models.FarmLivestockProduction{} },
		newLinks: func(productionID uint, farmIDs []uint) interface{} {
			links := make([]models.FarmLivestockProduction, len(farmIDs))
			for i := range farmIDs {
				links[i] = models.FarmLivestockProduction{LivestockProductionID: productionID, FarmID: &farmIDs[i]}
			}
			return &links
		},
	}
)

type associatedFarm struct {
	ProductionID uint
	models.Farm
}

// Replace makes farmIDs the exact farm set of productionID, in order. It must run on a
// transaction handle; a farm id unknown to the store fails on its foreign key.
// Links that already match are left untouched.
func (a FarmAssociation) Replace(tx *gorm.DB, productionID uint, farmIDs []uint) error {
	ids := distinct(farmIDs)

	unchanged, err := a.matches(tx, productionID, ids)
	if err != nil {
		return err
	}
	if unchanged {
		return nil
	}

	if err := a.Clear(tx, productionID); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return tx.Create(a.newLinks(productionID, ids)).Error
}

// matches reports whether the stored links of productionID are exactly ids, with no
// rows left dangling by a deleted farm
func (a FarmAssociation) matches(tx *gorm.DB, productionID uint, ids []uint) (bool, error) {
	current, err := a.FarmIDs(tx, productionID)
	if err != nil || !slices.Equal(current, ids) {
		return false, err
	}

	var dangling int64
	err = tx.Model(a.newModel()).
		Where(a.column+" = ? AND farm_id IS NULL", productionID).
		Count(&dangling).Error
	return dangling == 0, err
}

// Clear removes every junction row of productionID
func (a FarmAssociation) Clear(tx *gorm.DB, productionID uint) error {
	return tx.Where(a.column+" = ?", productionID).Delete(a.newModel()).Error
}

// FarmIDs returns the farm ids linked to productionID in insertion order
func (a FarmAssociation) FarmIDs(db *gorm.DB, productionID uint) ([]uint, error) {
	var ids []uint
	err := db.Table(a.table).
		Where(a.column+" = ? AND farm_id IS NOT NULL", productionID).
		Order("id").
		Pluck("farm_id", &ids).Error
	return ids, err
}

// Farms loads the farms linked to each of productionIDs. When ownerID is not nil
// only farms belonging to that user are returned.
func (a FarmAssociation) Farms(db *gorm.DB, productionIDs []uint, ownerID *uint) (map[uint][]models.Farm, error) {
	result := make(map[uint][]models.Farm, len(productionIDs))
	if len(productionIDs) == 0 {
		return result, nil
	}

	query := db.Table("farms").
		Select(fmt.Sprintf("farms.*, j.%s AS production_id", a.column)).
		Joins(fmt.Sprintf("JOIN %s j ON j.farm_id = farms.id", a.table)).
		Where("j."+a.column+" IN ?", productionIDs)
	if ownerID != nil {
		query = query.Where("farms.user_id = ?", *ownerID)
	}

	var rows []associatedFarm
	if err := query.Order("j.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ProductionID] = append(result[row.ProductionID], row.Farm)
	}
	return result, nil
}

// ownedBy returns a subquery selecting the productions linked to at least one farm of userID
func (a FarmAssociation) ownedBy(db *gorm.DB, userID uint) *gorm.DB {
	return db.Table(a.table+" j").
		Select("j."+a.column).
		Joins("JOIN farms f ON f.id = j.farm_id").
		Where("f.user_id = ?", userID)
}

func distinct(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

package repository

import (
	"testing"

	"farm-assets-backend/internal/database/models"
	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProductionRepositoryTestSuite tests farms, productions and their junction rows
type ProductionRepositoryTestSuite struct {
	suite.Suite
	openDB      func(t *testing.T) *gorm.DB
	db          *gorm.DB
	farms       *FarmRepository
	agriculture *AgricultureProductionRepository
	livestock   *LivestockProductionRepository
	factories   *testutils.FactorySet
}

// SetupTest runs before each test with an empty schema
func (suite *ProductionRepositoryTestSuite) SetupTest() {
	suite.db = suite.openDB(suite.T())
	suite.farms = NewFarmRepository(suite.db)
	suite.agriculture = NewAgricultureProductionRepository(suite.db)
	suite.livestock = NewLivestockProductionRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ProductionRepositoryTestSuite) ownerWithFarms(hectares ...float64) (*models.User, []uint) {
	user, ids, err := suite.factories.CreateOwnerWithFarms(suite.db, hectares...)
	suite.Require().NoError(err)
	return user, ids
}

func (suite *ProductionRepositoryTestSuite) agricultureFarmIDs(productionID uint) []uint {
	ids, err := AgricultureFarms.FarmIDs(suite.db, productionID)
	suite.Require().NoError(err)
	return ids
}

func (suite *ProductionRepositoryTestSuite) countRows(model interface{}) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

// TestSumLandArea tests the capacity resolver
func (suite *ProductionRepositoryTestSuite) TestSumLandArea() {
	_, ids := suite.ownerWithFarms(10, 20, 30.5)

	tests := []struct {
		name     string
		farmIDs  []uint
		expected float64
	}{
		{"all farms", ids, 60.5},
		{"subset", ids[:2], 30},
		{"duplicates count once", []uint{ids[0], ids[0]}, 10},
		{"unknown ids contribute nothing", []uint{ids[1], 99999}, 20},
		{"only unknown ids", []uint{99999}, 0},
		{"empty set", nil, 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			total, err := suite.farms.SumLandArea(tt.farmIDs)
			suite.NoError(err)
			suite.InDelta(tt.expected, total, 1e-9)
		})
	}
}

// TestFarmOwnership tests owner scoped farm lookups
func (suite *ProductionRepositoryTestSuite) TestFarmOwnership() {
	owner, ids := suite.ownerWithFarms(10, 20)
	other, _ := suite.ownerWithFarms(5)

	farm, err := suite.farms.GetByIDAndOwner(ids[0], owner.ID)
	suite.NoError(err)
	suite.Equal(10.0, farm.QtyHectaresLand)

	_, err = suite.farms.GetByIDAndOwner(ids[0], other.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	farm.Active = false
	suite.Require().NoError(suite.farms.Update(farm))

	active := true
	farms, total, err := suite.farms.GetByOwner(owner.ID, FarmFilter{Active: &active}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(farms, 1)
	suite.Equal(ids[1], farms[0].ID)

	farms, total, err = suite.farms.GetByOwner(owner.ID, FarmFilter{}, 1, 1)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(farms, 1)
	suite.Equal(ids[1], farms[0].ID)
}

// TestCreateWithFarms tests that exactly the named associations are written
func (suite *ProductionRepositoryTestSuite) TestCreateWithFarms() {
	_, ids := suite.ownerWithFarms(10, 10, 10, 10, 10)
	production := suite.factories.AgricultureProduction.Create()

	err := suite.agriculture.CreateWithFarms(production, ids)

	suite.NoError(err)
	suite.NotZero(production.ID)
	suite.Equal(ids, suite.agricultureFarmIDs(production.ID))
}

// TestCreateWithDuplicateFarmIDs tests that a repeated farm id is linked once
func (suite *ProductionRepositoryTestSuite) TestCreateWithDuplicateFarmIDs() {
	_, ids := suite.ownerWithFarms(10, 10)
	production := suite.factories.AgricultureProduction.Create()

	suite.Require().NoError(suite.agriculture.CreateWithFarms(production, []uint{ids[1], ids[0], ids[1]}))

	suite.Equal([]uint{ids[1], ids[0]}, suite.agricultureFarmIDs(production.ID))
}

// TestCreateWithUnknownFarmRollsBack tests that a failed association write leaves no production behind
func (suite *ProductionRepositoryTestSuite) TestCreateWithUnknownFarmRollsBack() {
	_, ids := suite.ownerWithFarms(10)
	production := suite.factories.AgricultureProduction.Create()

	err := suite.agriculture.CreateWithFarms(production, []uint{ids[0], 99999})

	suite.Error(err)
	suite.True(apperrors.IsTransaction(err))
	suite.Zero(suite.countRows(&models.AgricultureProduction{}))
	suite.Zero(suite.countRows(&models.FarmAgricultureProduction{}))
}

// TestUpdateReplacesFarms tests that replacing the farm set is idempotent
func (suite *ProductionRepositoryTestSuite) TestUpdateReplacesFarms() {
	_, ids := suite.ownerWithFarms(10, 20, 30)
	production := suite.factories.AgricultureProduction.Create()
	suite.Require().NoError(suite.agriculture.CreateWithFarms(production, ids[:1]))

	production.PlantingCrop = "Corn"
	for i := 0; i < 2; i++ {
		suite.Require().NoError(suite.agriculture.UpdateWithFarms(production, ids[1:]))
	}

	suite.Equal(ids[1:], suite.agricultureFarmIDs(production.ID))
	suite.Equal(int64(2), suite.countRows(&models.FarmAgricultureProduction{}))

	reloaded, err := suite.agriculture.GetWithFarms(production.ID)
	suite.NoError(err)
	suite.Equal("Corn", reloaded.PlantingCrop)
	suite.Len(reloaded.Farms, 2)
}

func (suite *ProductionRepositoryTestSuite) linkRowIDs() []uint {
	var ids []uint
	suite.Require().NoError(suite.db.Model(&models.FarmAgricultureProduction{}).Order("id").Pluck("id", &ids).Error)
	return ids
}

// TestUpdateWithSameFarmsKeepsLinkRows tests that an unchanged farm set is not rewritten
func (suite *ProductionRepositoryTestSuite) TestUpdateWithSameFarmsKeepsLinkRows() {
	_, ids := suite.ownerWithFarms(10, 20, 30)
	production := suite.factories.AgricultureProduction.Create()
	suite.Require().NoError(suite.agriculture.CreateWithFarms(production, ids))
	before := suite.linkRowIDs()

	suite.Require().NoError(suite.agriculture.UpdateWithFarms(production, []uint{ids[0], ids[1], ids[1], ids[2]}))
	suite.Equal(before, suite.linkRowIDs())

	reordered := []uint{ids[2], ids[0], ids[1]}
	suite.Require().NoError(suite.agriculture.UpdateWithFarms(production, reordered))
	suite.Equal(reordered, suite.agricultureFarmIDs(production.ID))
	suite.Len(suite.linkRowIDs(), 3)
}

// TestUpdateClearsDanglingLinks tests that links left by a deleted farm go away on the next replacement
func (suite *ProductionRepositoryTestSuite) TestUpdateClearsDanglingLinks() {
	_, ids := suite.ownerWithFarms(10, 20)
	production := suite.factories.AgricultureProduction.Create()
	suite.Require().NoError(suite.agriculture.CreateWithFarms(production, ids))
	suite.Require().NoError(suite.db.Delete(&models.Farm{}, ids[0]).Error)

	suite.Require().NoError(suite.agriculture.UpdateWithFarms(production, ids[1:]))

	suite.Equal(ids[1:], suite.agricultureFarmIDs(production.ID))
	suite.Equal(int64(1), suite.countRows(&models.FarmAgricultureProduction{}))
}

// TestUpdateWithoutFarmsKeepsAssociations tests that a nil farm set only touches scalar fields
func (suite *ProductionRepositoryTestSuite) TestUpdateWithoutFarmsKeepsAssociations() {
	_, ids := suite.ownerWithFarms(10, 20)
	production := suite.factories.AgricultureProduction.Create()
	suite.Require().NoError(suite.agriculture.CreateWithFarms(production, ids))

	production.QtyHectaresPlanted = 25
	suite.Require().NoError(suite.agriculture.UpdateWithFarms(production, nil))

	reloaded, err := suite.agriculture.GetByID(production.ID)
	suite.NoError(err)
	suite.Equal(25.0, reloaded.QtyHectaresPlanted)
	suite.Equal(ids, suite.agricultureFarmIDs(production.ID))
}

// TestUpdateWithUnknownFarmRollsBack tests that a failed replacement keeps the previous row and farm set
func (suite *ProductionRepositoryTestSuite) TestUpdateWithUnknownFarmRollsBack() {
	_, ids := suite.ownerWithFarms(10, 20)
	production := suite.factories.AgricultureProduction.Create()
	suite.Require().NoError(suite.agriculture.CreateWithFarms(production, ids[:1]))

	changed := *production
	changed.PlantingCrop = "Wheat"
	err := suite.agriculture.UpdateWithFarms(&changed, []uint{ids[1], 99999})

	suite.True(apperrors.IsTransaction(err))
	reloaded, err := suite.agriculture.GetByID(production.ID)
	suite.NoError(err)
	suite.Equal("Soybean", reloaded.PlantingCrop)
	suite.Equal(ids[:1], suite.agricultureFarmIDs(production.ID))
}

// TestUpdateMissingProduction tests that updating a vanished row reports not found
func (suite *ProductionRepositoryTestSuite) TestUpdateMissingProduction() {
	production := suite.factories.AgricultureProduction.Create()
	production.ID = 4242

	err := suite.agriculture.UpdateWithFarms(production, nil)

	suite.ErrorIs(err, apperrors.ErrProductionNotFound)
	suite.False(apperrors.IsTransaction(err))
}

// TestDeleteRemovesAssociations tests that deleting a production drops its junction rows
func (suite *ProductionRepositoryTestSuite) TestDeleteRemovesAssociations() {
	_, ids := suite.ownerWithFarms(10, 20)
	production := suite.factories.AgricultureProduction.Create()
	suite.Require().NoError(suite.agriculture.CreateWithFarms(production, ids))

	suite.NoError(suite.agriculture.Delete(production.ID))

	_, err := suite.agriculture.GetByID(production.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Zero(suite.countRows(&models.FarmAgricultureProduction{}))
	suite.Equal(int64(2), suite.countRows(&models.Farm{}))
}

// TestFarmDeletionKeepsProduction tests that removing a farm only clears the link
func (suite *ProductionRepositoryTestSuite) TestFarmDeletionKeepsProduction() {
	_, ids := suite.ownerWithFarms(10, 20)
	production := suite.factories.AgricultureProduction.Create()
	suite.Require().NoError(suite.agriculture.CreateWithFarms(production, ids))

	suite.Require().NoError(suite.db.Delete(&models.Farm{}, ids[0]).Error)

	_, err := suite.agriculture.GetByID(production.ID)
	suite.NoError(err)
	suite.Equal(ids[1:], suite.agricultureFarmIDs(production.ID))
	suite.Equal(int64(2), suite.countRows(&models.FarmAgricultureProduction{}))
}

// TestGetByOwner tests owner scoping, filters and pagination of listings
func (suite *ProductionRepositoryTestSuite) TestGetByOwner() {
	owner, ownerFarms := suite.ownerWithFarms(10, 20)
	_, otherFarms := suite.ownerWithFarms(50)

	soy := suite.factories.AgricultureProduction.Create()
	suite.Require().NoError(suite.agriculture.CreateWithFarms(soy, []uint{ownerFarms[0], otherFarms[0]}))

	corn := suite.factories.AgricultureProduction.Create()
	corn.PlantingCrop = "Corn"
	corn.PlantingYear = 2023
	suite.Require().NoError(suite.agriculture.CreateWithFarms(corn, ownerFarms[1:]))

	foreign := suite.factories.AgricultureProduction.Create()
	suite.Require().NoError(suite.agriculture.CreateWithFarms(foreign, otherFarms))

	productions, total, err := suite.agriculture.GetByOwner(owner.ID, AgricultureFilter{}, 5, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(productions, 2)
	suite.Equal(soy.ID, productions[0].ID)
	suite.Require().Len(productions[0].Farms, 1)
	suite.Equal(ownerFarms[0], productions[0].Farms[0].ID)

	year := 2023
	productions, total, err = suite.agriculture.GetByOwner(owner.ID, AgricultureFilter{PlantingYear: &year}, 5, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(productions, 1)
	suite.Equal(corn.ID, productions[0].ID)

	productions, total, err = suite.agriculture.GetByOwner(owner.ID, AgricultureFilter{PlantingCrop: "Soybean"}, 5, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(productions, 1)
	suite.Equal(soy.ID, productions[0].ID)

	productions, total, err = suite.agriculture.GetByOwner(owner.ID, AgricultureFilter{}, 1, 1)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(productions, 1)
	suite.Equal(corn.ID, productions[0].ID)
}

// TestLivestockLifecycle tests the livestock repository over the same junction mechanics
func (suite *ProductionRepositoryTestSuite) TestLivestockLifecycle() {
	owner, ids := suite.ownerWithFarms(10, 20)
	herd := suite.factories.LivestockProduction.Create()

	suite.Require().NoError(suite.livestock.CreateWithFarms(herd, ids))

	herd.QtyAnimals = 300
	suite.Require().NoError(suite.livestock.UpdateWithFarms(herd, ids[1:]))

	reloaded, err := suite.livestock.GetWithFarms(herd.ID)
	suite.NoError(err)
	suite.Equal(300, reloaded.QtyAnimals)
	suite.Require().Len(reloaded.Farms, 1)
	suite.Equal(ids[1], reloaded.Farms[0].ID)

	species := "Cattle"
	herds, total, err := suite.livestock.GetByOwner(owner.ID, LivestockFilter{AnimalsSpecies: species}, 5, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(herds, 1)

	err = suite.livestock.UpdateWithFarms(&models.LivestockProduction{BaseModel: models.BaseModel{ID: 999}}, nil)
	suite.ErrorIs(err, apperrors.ErrLivestockNotFound)

	suite.NoError(suite.livestock.Delete(herd.ID))
	suite.Zero(suite.countRows(&models.FarmLivestockProduction{}))
}

func TestProductionRepositorySQLite(t *testing.T) {
	suite.Run(t, &ProductionRepositoryTestSuite{openDB: testutils.NewSQLiteDB})
}

package database

import (
	"fmt"
	"testing"

	"farm-assets-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeSQLite(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := Initialize(dsn, &Options{Driver: DriverSQLite, MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, Ping(db))

	for _, table := range []string{
		"users",
		"farms",
		"agriculture_productions",
		"livestock_productions",
		"farms_agriculture_productions",
		"farms_livestock_productions",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	t.Run("junction rows follow their production", func(t *testing.T) {
		user := models.User{Name: "Owner", Email: "owner@example.com", CPF: "52998224725", PasswordHash: "x"}
		require.NoError(t, db.Create(&user).Error)
		farm := models.Farm{UserID: user.ID, Name: "North", City: "Campinas", State: "SP", QtyHectaresLand: 10, Active: true}
		require.NoError(t, db.Create(&farm).Error)
		production := models.AgricultureProduction{QtyHectaresPlanted: 5, PlantingYear: 2024, PlantingCrop: "Soy"}
		require.NoError(t, db.Create(&production).Error)
		require.NoError(t, db.Create(&models.FarmAgricultureProduction{AgricultureProductionID: production.ID, FarmID: &farm.ID}).Error)

		require.NoError(t, db.Delete(&models.AgricultureProduction{}, production.ID).Error)

		var count int64
		require.NoError(t, db.Model(&models.FarmAgricultureProduction{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("unknown farm is rejected", func(t *testing.T) {
		production := models.LivestockProduction{QtyAnimals: 10, ProductionYear: 2024, AnimalsSpecies: "Cattle"}
		require.NoError(t, db.Create(&production).Error)

		missing := uint(9999)
		err := db.Create(&models.FarmLivestockProduction{LivestockProductionID: production.ID, FarmID: &missing}).Error
		assert.Error(t, err)
	})
}

func TestInitializeUnknownDriver(t *testing.T) {
	_, err := Initialize("whatever", &Options{Driver: "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

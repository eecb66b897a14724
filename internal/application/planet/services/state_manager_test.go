package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/planet/services"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

func placeBuilding(t *testing.T, db *gorm.DB, gridID, buildingID, level int) {
	t.Helper()
	require.NoError(t, db.Model(&persistence.GridModel{}).
		Where("id = ?", gridID).
		Updates(map[string]interface{}{"building_id": buildingID, "level": level}).Error)
}

func TestStateManager_RecomputesAggregatesFromBuildings(t *testing.T) {
	// Arrange: central (capacity 1000), extractor lv2 (production 120),
	// depot lv1 (capacity 500), bastion lv1 (bonuses 2/1).
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	placeBuilding(t, db, world.ResourceGridID, helpers.ExtractorID, 2)
	placeBuilding(t, db, world.PlainGridIDs[0], helpers.DepotID, 1)
	placeBuilding(t, db, world.PlainGridIDs[1], helpers.BastionID, 1)

	uow := persistence.NewGormUnitOfWork(db)
	manager := services.NewStateManager(uow, helpers.NewStaticCatalogProvider())

	// Act
	require.NoError(t, manager.SyncPlanet(context.Background(), world.PlanetID))

	// Assert
	planets := persistence.NewGormPlanetRepository(db)
	p, err := planets.Find(context.Background(), world.PlanetID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), p.Capacity())
	assert.Equal(t, float64(2), p.DefenseBonus())
	assert.Equal(t, float64(1), p.ConstructionTimeBonus())

	stocks := persistence.NewGormStockRepository(db)
	stock, err := stocks.FindOrCreate(context.Background(), world.PlanetID, helpers.CrystalResourceID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stock.Production())
}

func TestStateManager_SkipsDisabledBuildings(t *testing.T) {
	// Arrange: a disabled extractor contributes nothing.
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	placeBuilding(t, db, world.ResourceGridID, helpers.ExtractorID, 2)
	require.NoError(t, db.Model(&persistence.GridModel{}).
		Where("id = ?", world.ResourceGridID).Update("is_enabled", false).Error)

	uow := persistence.NewGormUnitOfWork(db)
	manager := services.NewStateManager(uow, helpers.NewStaticCatalogProvider())

	// Act
	require.NoError(t, manager.SyncPlanet(context.Background(), world.PlanetID))

	// Assert
	stocks := persistence.NewGormStockRepository(db)
	stock, err := stocks.FindOrCreate(context.Background(), world.PlanetID, helpers.CrystalResourceID)
	require.NoError(t, err)
	assert.Zero(t, stock.Production())
}

func TestStateManager_IsIdempotent(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	placeBuilding(t, db, world.ResourceGridID, helpers.ExtractorID, 1)

	uow := persistence.NewGormUnitOfWork(db)
	manager := services.NewStateManager(uow, helpers.NewStaticCatalogProvider())

	// Act: repeated syncs converge on the same values.
	require.NoError(t, manager.SyncPlanet(context.Background(), world.PlanetID))
	require.NoError(t, manager.SyncPlanet(context.Background(), world.PlanetID))

	// Assert
	planets := persistence.NewGormPlanetRepository(db)
	p, err := planets.Find(context.Background(), world.PlanetID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), p.Capacity())

	stocks := persistence.NewGormStockRepository(db)
	stock, err := stocks.FindOrCreate(context.Background(), world.PlanetID, helpers.CrystalResourceID)
	require.NoError(t, err)
	assert.Equal(t, int64(60), stock.Production())
}

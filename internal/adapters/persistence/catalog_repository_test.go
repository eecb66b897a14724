package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

func TestCatalogRepository_LoadCatalogPreservesSortOrder(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	helpers.SeedWorld(t, db)
	repo := persistence.NewGormCatalogRepository(db)

	// Act
	loaded, err := repo.LoadCatalog(context.Background())

	// Assert
	require.NoError(t, err)

	var ids []int
	for _, b := range loaded.Buildings() {
		ids = append(ids, b.ID())
	}
	assert.Equal(t, []int{
		helpers.CommandCenterID,
		helpers.ExtractorID,
		helpers.RefineryID,
		helpers.DepotID,
		helpers.AcademyID,
		helpers.BastionID,
	}, ids)
}

func TestCatalogRepository_LoadCatalogMapsStats(t *testing.T) {
	db := helpers.NewTestDB(t)
	helpers.SeedWorld(t, db)
	repo := persistence.NewGormCatalogRepository(db)

	loaded, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)

	extractor := loaded.Find(helpers.ExtractorID)
	require.NotNil(t, extractor)
	assert.Equal(t, catalog.BuildingTypeMiner, extractor.Type())
	assert.True(t, extractor.IsRoot())

	base := extractor.ApplyModifiers(catalog.Modifiers{Level: 1})
	assert.Equal(t, int64(50), base.ConstructionCost)
	assert.Equal(t, 30, base.ConstructionTime)
	assert.Equal(t, int64(60), base.Production)

	refinery := loaded.Find(helpers.RefineryID)
	require.NotNil(t, refinery)
	require.NotNil(t, refinery.ParentID())
	assert.Equal(t, helpers.ExtractorID, *refinery.ParentID())
	assert.Equal(t, 2, refinery.Limit())
}

func TestCatalogRepository_FindResourceAndUnit(t *testing.T) {
	db := helpers.NewTestDB(t)
	helpers.SeedWorld(t, db)
	repo := persistence.NewGormCatalogRepository(db)

	resource, err := repo.FindResource(context.Background(), helpers.GasResourceID)
	require.NoError(t, err)
	assert.Equal(t, "Gas", resource.Name())
	assert.Equal(t, 0.5, resource.Efficiency())

	unit, err := repo.FindUnit(context.Background(), helpers.DroneUnitID)
	require.NoError(t, err)
	assert.Equal(t, "Drone", unit.Name())
	assert.Equal(t, int64(25), unit.Cost())

	_, err = repo.FindResource(context.Background(), 99)
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCatalogCache_MemoizesCatalog(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	helpers.SeedWorld(t, db)
	cache := persistence.NewCatalogCache(persistence.NewGormCatalogRepository(db))

	first, err := cache.Catalog(context.Background())
	require.NoError(t, err)

	// Act: mutate the table after the first load; the cache must not
	// observe the change.
	require.NoError(t, db.Delete(&persistence.BuildingModel{}, helpers.BastionID).Error)

	second, err := cache.Catalog(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.NotNil(t, second.Find(helpers.BastionID))
}

func TestCatalogCache_MemoizesResources(t *testing.T) {
	db := helpers.NewTestDB(t)
	helpers.SeedWorld(t, db)
	cache := persistence.NewCatalogCache(persistence.NewGormCatalogRepository(db))

	first, err := cache.Resource(context.Background(), helpers.CrystalResourceID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&persistence.ResourceModel{}, helpers.CrystalResourceID).Error)

	second, err := cache.Resource(context.Background(), helpers.CrystalResourceID)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

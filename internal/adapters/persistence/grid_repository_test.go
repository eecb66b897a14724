package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

func placeBuilding(t *testing.T, db *gorm.DB, gridID, buildingID, level int) {
	t.Helper()
	require.NoError(t, db.Model(&persistence.GridModel{}).
		Where("id = ?", gridID).
		Updates(map[string]interface{}{"building_id": buildingID, "level": level}).Error)
}

func TestGridRepository_SaveReportsDirtyPlanet(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)

	var dirty []int
	repo := persistence.NewGormGridRepository(db, func(planetID int) {
		dirty = append(dirty, planetID)
	})

	grid, err := repo.Find(context.Background(), world.PlainGridIDs[0])
	require.NoError(t, err)

	// Act
	grid.AssignBuilding(helpers.DepotID, 1)
	require.NoError(t, repo.Save(context.Background(), grid))

	// Assert
	assert.Equal(t, []int{world.PlanetID}, dirty)

	reloaded, err := repo.Find(context.Background(), world.PlainGridIDs[0])
	require.NoError(t, err)
	assert.Equal(t, helpers.DepotID, *reloaded.BuildingID())
	assert.Equal(t, 1, reloaded.CurrentLevel())
}

func TestGridRepository_ConstructedCountsGroupsByBuilding(t *testing.T) {
	// Arrange: two depots and the central building.
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	placeBuilding(t, db, world.PlainGridIDs[0], helpers.DepotID, 1)
	placeBuilding(t, db, world.PlainGridIDs[1], helpers.DepotID, 2)

	repo := persistence.NewGormGridRepository(db, nil)

	// Act
	counts, err := repo.ConstructedCounts(context.Background(), world.PlanetID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[int]int{
		helpers.CommandCenterID: 1,
		helpers.DepotID:         2,
	}, counts)
}

func TestGridRepository_CountBuildingElsewhere(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	placeBuilding(t, db, world.PlainGridIDs[0], helpers.DepotID, 1)
	placeBuilding(t, db, world.PlainGridIDs[1], helpers.DepotID, 1)

	repo := persistence.NewGormGridRepository(db, nil)

	// Act
	count, err := repo.CountBuildingElsewhere(context.Background(), world.PlanetID, helpers.DepotID, world.PlainGridIDs[0])

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGridRepository_ConstructedByPlanetSkipsEmptyCells(t *testing.T) {
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	placeBuilding(t, db, world.ResourceGridID, helpers.ExtractorID, 1)

	repo := persistence.NewGormGridRepository(db, nil)

	grids, err := repo.ConstructedByPlanet(context.Background(), world.PlanetID)

	require.NoError(t, err)
	// The pre-built central plus the extractor.
	assert.Len(t, grids, 2)
}

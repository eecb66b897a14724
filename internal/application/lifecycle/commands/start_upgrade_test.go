package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/lifecycle/commands"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

func placeBuilding(t *testing.T, db *gorm.DB, gridID, buildingID, level int) {
	t.Helper()
	require.NoError(t, db.Model(&persistence.GridModel{}).
		Where("id = ?", gridID).
		Updates(map[string]interface{}{"building_id": buildingID, "level": level}).Error)
}

func TestStartUpgrade_ChargesNextLevelCost(t *testing.T) {
	// Arrange: depot at level 1, next level costs 160 and takes 90s.
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	placeBuilding(t, db, world.PlainGridIDs[0], helpers.DepotID, 1)

	uow := persistence.NewGormUnitOfWork(db)
	clock := testClock()
	handler := commands.NewStartUpgradeHandler(uow, helpers.NewStaticCatalogProvider(), clock)

	// Act
	response, err := handler.Handle(context.Background(), &commands.StartUpgradeCommand{
		UserID: world.UserID,
		GridID: world.PlainGridIDs[0],
	})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.StartUpgradeResponse)
	assert.Equal(t, 2, result.TargetLevel)
	assert.Equal(t, clock.Now().Add(90*time.Second), result.EndedAt)

	users := persistence.NewGormUserRepository(db)
	user, err := users.Find(context.Background(), world.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(840), user.Energy())
}

func TestStartUpgrade_EmptyCellRejected(t *testing.T) {
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	uow := persistence.NewGormUnitOfWork(db)
	handler := commands.NewStartUpgradeHandler(uow, helpers.NewStaticCatalogProvider(), testClock())

	_, err := handler.Handle(context.Background(), &commands.StartUpgradeCommand{
		UserID: world.UserID,
		GridID: world.PlainGridIDs[0],
	})

	var invalid *shared.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
}

func TestStartUpgrade_DuplicateUpgradeRejected(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	placeBuilding(t, db, world.PlainGridIDs[0], helpers.DepotID, 1)

	uow := persistence.NewGormUnitOfWork(db)
	handler := commands.NewStartUpgradeHandler(uow, helpers.NewStaticCatalogProvider(), testClock())

	_, err := handler.Handle(context.Background(), &commands.StartUpgradeCommand{
		UserID: world.UserID,
		GridID: world.PlainGridIDs[0],
	})
	require.NoError(t, err)

	// Act
	_, err = handler.Handle(context.Background(), &commands.StartUpgradeCommand{
		UserID: world.UserID,
		GridID: world.PlainGridIDs[0],
	})

	// Assert
	var invalid *shared.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
}

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/producer/commands"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

func seedProducerCell(t *testing.T, db *gorm.DB, world *helpers.World, stockQuantity int64) {
	t.Helper()

	level := 1
	buildingID := helpers.RefineryID
	require.NoError(t, db.Model(&persistence.GridModel{}).
		Where("id = ?", world.PlainGridIDs[0]).
		Updates(map[string]interface{}{"building_id": buildingID, "level": level}).Error)

	require.NoError(t, db.Create(&persistence.StockModel{
		PlanetID:   world.PlanetID,
		ResourceID: helpers.CrystalResourceID,
		Quantity:   stockQuantity,
	}).Error)
}

func TestExchange_GrantsEnergyAtEfficiency(t *testing.T) {
	// Arrange: 10 crystal stocked, efficiency 2.0.
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	seedProducerCell(t, db, world, 10)

	uow := persistence.NewGormUnitOfWork(db)
	handler := commands.NewExchangeHandler(uow, helpers.NewStaticCatalogProvider())

	// Act: exchange 5.
	response, err := handler.Handle(context.Background(), &commands.ExchangeCommand{
		UserID:     world.UserID,
		GridID:     world.PlainGridIDs[0],
		ResourceID: helpers.CrystalResourceID,
		Quantity:   5,
	})

	// Assert: stock 5 left, 10 energy gained on top of the seeded 1000.
	require.NoError(t, err)
	result := response.(*commands.ExchangeResponse)
	assert.Equal(t, int64(10), result.EnergyGained)
	assert.Equal(t, int64(5), result.StockLeft)

	users := persistence.NewGormUserRepository(db)
	user, err := users.Find(context.Background(), world.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1010), user.Energy())
}

func TestExchange_RoundsEnergyHalfUp(t *testing.T) {
	// Arrange: gas efficiency is 0.5, so 5 gas is 2.5 energy.
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)

	level := 1
	buildingID := helpers.RefineryID
	require.NoError(t, db.Model(&persistence.GridModel{}).
		Where("id = ?", world.PlainGridIDs[0]).
		Updates(map[string]interface{}{"building_id": buildingID, "level": level}).Error)
	require.NoError(t, db.Create(&persistence.StockModel{
		PlanetID:   world.PlanetID,
		ResourceID: helpers.GasResourceID,
		Quantity:   5,
	}).Error)

	uow := persistence.NewGormUnitOfWork(db)
	handler := commands.NewExchangeHandler(uow, helpers.NewStaticCatalogProvider())

	// Act
	response, err := handler.Handle(context.Background(), &commands.ExchangeCommand{
		UserID:     world.UserID,
		GridID:     world.PlainGridIDs[0],
		ResourceID: helpers.GasResourceID,
		Quantity:   5,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3), response.(*commands.ExchangeResponse).EnergyGained)
}

func TestExchange_InsufficientStockMutatesNothing(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	seedProducerCell(t, db, world, 10)

	uow := persistence.NewGormUnitOfWork(db)
	handler := commands.NewExchangeHandler(uow, helpers.NewStaticCatalogProvider())

	// Act
	_, err := handler.Handle(context.Background(), &commands.ExchangeCommand{
		UserID:     world.UserID,
		GridID:     world.PlainGridIDs[0],
		ResourceID: helpers.CrystalResourceID,
		Quantity:   11,
	})

	// Assert: stock and energy unchanged.
	var insufficient *shared.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)

	stocks := persistence.NewGormStockRepository(db)
	stock, err := stocks.FindOrCreate(context.Background(), world.PlanetID, helpers.CrystalResourceID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stock.Quantity())

	users := persistence.NewGormUserRepository(db)
	user, err := users.Find(context.Background(), world.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), user.Energy())
}

func TestExchange_NonProducerCellRejected(t *testing.T) {
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)

	uow := persistence.NewGormUnitOfWork(db)
	handler := commands.NewExchangeHandler(uow, helpers.NewStaticCatalogProvider())

	_, err := handler.Handle(context.Background(), &commands.ExchangeCommand{
		UserID:     world.UserID,
		GridID:     world.PlainGridIDs[0],
		ResourceID: helpers.CrystalResourceID,
		Quantity:   1,
	})

	var invalid *shared.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
}

func TestExchange_LockedResourceRejected(t *testing.T) {
	// Arrange: the user's unlocked set is resources 1 and 2 only.
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	seedProducerCell(t, db, world, 10)
	require.NoError(t, db.Model(&persistence.UserModel{}).
		Where("id = ?", world.UserID).Update("resources", "[2]").Error)

	uow := persistence.NewGormUnitOfWork(db)
	handler := commands.NewExchangeHandler(uow, helpers.NewStaticCatalogProvider())

	// Act
	_, err := handler.Handle(context.Background(), &commands.ExchangeCommand{
		UserID:     world.UserID,
		GridID:     world.PlainGridIDs[0],
		ResourceID: helpers.CrystalResourceID,
		Quantity:   1,
	})

	// Assert
	var invalid *shared.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
}

func TestExchange_NonPositiveQuantityRejected(t *testing.T) {
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	seedProducerCell(t, db, world, 10)

	uow := persistence.NewGormUnitOfWork(db)
	handler := commands.NewExchangeHandler(uow, helpers.NewStaticCatalogProvider())

	_, err := handler.Handle(context.Background(), &commands.ExchangeCommand{
		UserID:     world.UserID,
		GridID:     world.PlainGridIDs[0],
		ResourceID: helpers.CrystalResourceID,
		Quantity:   0,
	})

	var invalid *shared.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
}

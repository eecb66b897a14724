package steps

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	lifecyclecommands "github.com/cryptixcoder/galaxyofdrones-online/internal/application/lifecycle/commands"
	planetservices "github.com/cryptixcoder/galaxyofdrones-online/internal/application/planet/services"
	producercommands "github.com/cryptixcoder/galaxyofdrones-online/internal/application/producer/commands"
	surfacecommands "github.com/cryptixcoder/galaxyofdrones-online/internal/application/surface/commands"
	surfacequeries "github.com/cryptixcoder/galaxyofdrones-online/internal/application/surface/queries"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/infrastructure/database"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

// gameWorld is the shared scenario fixture: an in-memory database seeded
// with one colony and a fully wired mediator driven by a mock clock.
type gameWorld struct {
	db       *gorm.DB
	clock    *shared.MockClock
	mediator common.Mediator

	userID         int
	planetID       int
	centralGridID  int
	resourceGridID int
	plainGridIDs   []int
}

// newGameWorld builds a fresh world. Steps panic on setup failure since
// a broken fixture makes every assertion meaningless.
func newGameWorld() *gameWorld {
	db, err := database.NewTestConnection()
	if err != nil {
		panic(fmt.Errorf("failed to open test database: %w", err))
	}

	w := &gameWorld{
		db:    db,
		clock: shared.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	w.seed()
	w.wire()
	return w
}

func (w *gameWorld) seed() {
	mustCreate := func(value interface{}) {
		if err := w.db.Create(value).Error; err != nil {
			panic(fmt.Errorf("failed to seed world: %w", err))
		}
	}

	for i, b := range helpers.NewTestCatalog().Buildings() {
		base := b.ApplyModifiers(catalog.Modifiers{Level: 1})
		mustCreate(&persistence.BuildingModel{
			ID:                    b.ID(),
			ParentID:              b.ParentID(),
			Name:                  b.Name(),
			Type:                  string(b.Type()),
			Limit:                 b.Limit(),
			SortOrder:             i,
			ConstructionCost:      base.ConstructionCost,
			ConstructionTime:      base.ConstructionTime,
			Defense:               base.Defense,
			DefenseBonus:          base.DefenseBonus,
			ConstructionTimeBonus: base.ConstructionTimeBonus,
			Capacity:              base.Capacity,
			Production:            base.Production,
		})
	}
	mustCreate(&persistence.ResourceModel{ID: helpers.CrystalResourceID, Name: "Crystal", Efficiency: 2.0})
	mustCreate(&persistence.ResourceModel{ID: helpers.GasResourceID, Name: "Gas", Efficiency: 0.5})
	mustCreate(&persistence.UnitModel{ID: helpers.DroneUnitID, Name: "Drone", Supply: 1, TrainTime: 10, Cost: 25})

	mustCreate(&persistence.UserModel{ID: 1, Username: "commander", Energy: 1000, Resources: "[1,2]"})
	mustCreate(&persistence.PlanetModel{ID: 1, Name: "Kronos", UserID: 1, ResourceID: helpers.CrystalResourceID})

	centralLevel := 1
	centralBuilding := helpers.CommandCenterID
	grids := []*persistence.GridModel{
		{ID: 1, PlanetID: 1, X: 0, Y: 0, Type: 2, BuildingID: &centralBuilding, Level: &centralLevel, IsEnabled: true},
		{ID: 2, PlanetID: 1, X: 1, Y: 0, Type: 1, IsEnabled: true},
		{ID: 3, PlanetID: 1, X: 0, Y: 1, Type: 0, IsEnabled: true},
		{ID: 4, PlanetID: 1, X: 1, Y: 1, Type: 0, IsEnabled: true},
		{ID: 5, PlanetID: 1, X: 2, Y: 1, Type: 0, IsEnabled: true},
	}
	for _, g := range grids {
		mustCreate(g)
	}

	w.userID = 1
	w.planetID = 1
	w.centralGridID = 1
	w.resourceGridID = 2
	w.plainGridIDs = []int{3, 4, 5}
}

func (w *gameWorld) wire() {
	uow := persistence.NewGormUnitOfWork(w.db)
	provider := helpers.NewStaticCatalogProvider()

	stateManager := planetservices.NewStateManager(uow, provider)
	uow.SetSynchronizer(stateManager)

	mediator := common.NewMediator()
	registrations := []error{
		common.RegisterHandler[*lifecyclecommands.StartConstructionCommand](mediator, lifecyclecommands.NewStartConstructionHandler(uow, provider, w.clock)),
		common.RegisterHandler[*lifecyclecommands.StartUpgradeCommand](mediator, lifecyclecommands.NewStartUpgradeHandler(uow, provider, w.clock)),
		common.RegisterHandler[*lifecyclecommands.StartTrainingCommand](mediator, lifecyclecommands.NewStartTrainingHandler(uow, provider, w.clock)),
		common.RegisterHandler[*lifecyclecommands.FinishConstructionCommand](mediator, lifecyclecommands.NewFinishConstructionHandler(uow)),
		common.RegisterHandler[*lifecyclecommands.FinishUpgradeCommand](mediator, lifecyclecommands.NewFinishUpgradeHandler(uow)),
		common.RegisterHandler[*lifecyclecommands.FinishTrainingCommand](mediator, lifecyclecommands.NewFinishTrainingHandler(uow)),
		common.RegisterHandler[*lifecyclecommands.CancelOperationCommand](mediator, lifecyclecommands.NewCancelOperationHandler(uow)),
		common.RegisterHandler[*surfacecommands.DemolishBuildingCommand](mediator, surfacecommands.NewDemolishBuildingHandler(uow, provider, surfacecommands.RequirementPolicyExcludeCell)),
		common.RegisterHandler[*surfacequeries.ConstructableBuildingsQuery](mediator, surfacequeries.NewConstructableBuildingsHandler(uow, provider)),
		common.RegisterHandler[*producercommands.ExchangeCommand](mediator, producercommands.NewExchangeHandler(uow, provider)),
	}
	for _, err := range registrations {
		if err != nil {
			panic(fmt.Errorf("failed to register handler: %w", err))
		}
	}

	w.mediator = mediator
}

func (w *gameWorld) close() {
	if w.db != nil {
		_ = database.Close(w.db)
	}
}

// buildingIDByName maps feature-file building names to catalog ids.
func buildingIDByName(name string) (int, error) {
	for _, b := range helpers.NewTestCatalog().Buildings() {
		if b.Name() == name {
			return b.ID(), nil
		}
	}
	return 0, fmt.Errorf("unknown building %q", name)
}

// placeBuilding writes a constructed building straight onto a cell,
// bypassing the lifecycle, for scenarios that start from built state.
func (w *gameWorld) placeBuilding(gridID, buildingID, level int) error {
	return w.db.Model(&persistence.GridModel{}).
		Where("id = ?", gridID).
		Updates(map[string]interface{}{"building_id": buildingID, "level": level}).Error
}

func (w *gameWorld) gridModel(gridID int) (*persistence.GridModel, error) {
	var model persistence.GridModel
	if err := w.db.First(&model, gridID).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

func (w *gameWorld) userEnergy() (int64, error) {
	var model persistence.UserModel
	if err := w.db.First(&model, w.userID).Error; err != nil {
		return 0, err
	}
	return model.Energy, nil
}

package cli

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/metrics"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	lifecycleCmd "github.com/cryptixcoder/galaxyofdrones-online/internal/application/lifecycle/commands"
	planetServices "github.com/cryptixcoder/galaxyofdrones-online/internal/application/planet/services"
	producerCmd "github.com/cryptixcoder/galaxyofdrones-online/internal/application/producer/commands"
	surfaceCmd "github.com/cryptixcoder/galaxyofdrones-online/internal/application/surface/commands"
	surfaceQuery "github.com/cryptixcoder/galaxyofdrones-online/internal/application/surface/queries"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/infrastructure/config"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/infrastructure/database"
)

// App holds the wired application: configuration, database, mediator and
// the repositories the infrastructure layer needs directly.
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Mediator common.Mediator
	Pending  lifecycle.Repository
	Clock    shared.Clock
}

// NewApp loads configuration, connects the database and registers every
// command and query handler with the mediator.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	clock := shared.NewRealClock()
	uow := persistence.NewGormUnitOfWork(db)
	catalogCache := persistence.NewCatalogCache(persistence.NewGormCatalogRepository(db))

	// The state manager is both a handler dependency and the post-commit
	// synchronizer for dirty planets.
	stateManager := planetServices.NewStateManager(uow, catalogCache)
	uow.SetSynchronizer(stateManager)

	mediator := common.NewMediator()
	if err := registerHandlers(mediator, uow, catalogCache, clock); err != nil {
		database.Close(db)
		return nil, err
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		collector := metrics.NewLifecycleMetricsCollector()
		if err := collector.Register(metrics.GetRegistry()); err != nil {
			database.Close(db)
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		metrics.SetGlobalCollector(collector)
	}

	return &App{
		Config:   cfg,
		DB:       db,
		Mediator: mediator,
		Pending:  persistence.NewGormPendingOperationRepository(db),
		Clock:    clock,
	}, nil
}

// Close releases the database connection
func (a *App) Close() error {
	return database.Close(a.DB)
}

func registerHandlers(m common.Mediator, uow common.UnitOfWork, catalog common.CatalogProvider, clock shared.Clock) error {
	registrations := []error{
		common.RegisterHandler[*lifecycleCmd.StartConstructionCommand](m, lifecycleCmd.NewStartConstructionHandler(uow, catalog, clock)),
		common.RegisterHandler[*lifecycleCmd.StartUpgradeCommand](m, lifecycleCmd.NewStartUpgradeHandler(uow, catalog, clock)),
		common.RegisterHandler[*lifecycleCmd.StartTrainingCommand](m, lifecycleCmd.NewStartTrainingHandler(uow, catalog, clock)),
		common.RegisterHandler[*lifecycleCmd.FinishConstructionCommand](m, lifecycleCmd.NewFinishConstructionHandler(uow)),
		common.RegisterHandler[*lifecycleCmd.FinishUpgradeCommand](m, lifecycleCmd.NewFinishUpgradeHandler(uow)),
		common.RegisterHandler[*lifecycleCmd.FinishTrainingCommand](m, lifecycleCmd.NewFinishTrainingHandler(uow)),
		common.RegisterHandler[*lifecycleCmd.CancelOperationCommand](m, lifecycleCmd.NewCancelOperationHandler(uow)),
		common.RegisterHandler[*surfaceCmd.DemolishBuildingCommand](m, surfaceCmd.NewDemolishBuildingHandler(uow, catalog, surfaceCmd.RequirementPolicyExcludeCell)),
		common.RegisterHandler[*surfaceQuery.ConstructableBuildingsQuery](m, surfaceQuery.NewConstructableBuildingsHandler(uow, catalog)),
		common.RegisterHandler[*producerCmd.ExchangeCommand](m, producerCmd.NewExchangeHandler(uow, catalog)),
	}
	for _, err := range registrations {
		if err != nil {
			return fmt.Errorf("failed to register handler: %w", err)
		}
	}
	return nil
}

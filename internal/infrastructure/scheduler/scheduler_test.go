package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	lifecyclecommands "github.com/cryptixcoder/galaxyofdrones-online/internal/application/lifecycle/commands"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/infrastructure/config"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

func newTestScheduler(t *testing.T, db *gorm.DB, clock shared.Clock) (*Scheduler, common.Mediator) {
	t.Helper()

	uow := persistence.NewGormUnitOfWork(db)
	catalog := helpers.NewStaticCatalogProvider()

	mediator := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*lifecyclecommands.StartConstructionCommand](
		mediator, lifecyclecommands.NewStartConstructionHandler(uow, catalog, clock)))
	require.NoError(t, common.RegisterHandler[*lifecyclecommands.FinishConstructionCommand](
		mediator, lifecyclecommands.NewFinishConstructionHandler(uow)))
	require.NoError(t, common.RegisterHandler[*lifecyclecommands.FinishUpgradeCommand](
		mediator, lifecyclecommands.NewFinishUpgradeHandler(uow)))
	require.NoError(t, common.RegisterHandler[*lifecyclecommands.FinishTrainingCommand](
		mediator, lifecyclecommands.NewFinishTrainingHandler(uow)))

	cfg := config.SchedulerConfig{Interval: time.Second, Rate: 100, Burst: 10}
	s := New(cfg, mediator, persistence.NewGormPendingOperationRepository(db), clock)
	return s, mediator
}

func TestScheduler_SweepFinishesDueConstruction(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	clock := shared.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s, mediator := newTestScheduler(t, db, clock)

	_, err := mediator.Send(context.Background(), &lifecyclecommands.StartConstructionCommand{
		UserID:     world.UserID,
		GridID:     world.ResourceGridID,
		BuildingID: helpers.ExtractorID,
	})
	require.NoError(t, err)

	// Act: past the 30s construction time.
	clock.Advance(31 * time.Second)
	s.sweep(context.Background())

	// Assert
	repo := persistence.NewGormGridRepository(db, nil)
	grid, err := repo.Find(context.Background(), world.ResourceGridID)
	require.NoError(t, err)
	require.True(t, grid.HasBuilding())
	assert.Equal(t, helpers.ExtractorID, *grid.BuildingID())
}

func TestScheduler_SweepLeavesFutureOperationsPending(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	clock := shared.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s, mediator := newTestScheduler(t, db, clock)

	_, err := mediator.Send(context.Background(), &lifecyclecommands.StartConstructionCommand{
		UserID:     world.UserID,
		GridID:     world.ResourceGridID,
		BuildingID: helpers.ExtractorID,
	})
	require.NoError(t, err)

	// Act: still 1s short of completion.
	clock.Advance(29 * time.Second)
	s.sweep(context.Background())

	// Assert
	repo := persistence.NewGormGridRepository(db, nil)
	grid, err := repo.Find(context.Background(), world.ResourceGridID)
	require.NoError(t, err)
	assert.False(t, grid.HasBuilding())

	var count int64
	require.NoError(t, db.Model(&persistence.PendingOperationModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestScheduler_RunStopsOnContextCancel(t *testing.T) {
	db := helpers.NewTestDB(t)
	helpers.SeedWorld(t, db)
	clock := shared.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s, _ := newTestScheduler(t, db, clock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

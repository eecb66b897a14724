package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/surface/queries"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

func newQueryHandler(t *testing.T) (*queries.ConstructableBuildingsHandler, *helpers.World) {
	t.Helper()
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	uow := persistence.NewGormUnitOfWork(db)
	return queries.NewConstructableBuildingsHandler(uow, helpers.NewStaticCatalogProvider()), world
}

func TestConstructableBuildings_ResourceCellOffersExtractor(t *testing.T) {
	// Arrange
	handler, world := newQueryHandler(t)

	// Act
	response, err := handler.Handle(context.Background(), &queries.ConstructableBuildingsQuery{
		GridID: world.ResourceGridID,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.ConstructableBuildingsResponse)
	require.Len(t, result.Buildings, 1)
	assert.Equal(t, helpers.ExtractorID, result.Buildings[0].ID)
	assert.Equal(t, 1, result.Buildings[0].Level)
}

func TestConstructableBuildings_OccupiedCellYieldsNothing(t *testing.T) {
	// Arrange: the central cell holds the pre-built central building.
	handler, world := newQueryHandler(t)

	// Act
	response, err := handler.Handle(context.Background(), &queries.ConstructableBuildingsQuery{
		GridID: world.CentralGridID,
	})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, response.(*queries.ConstructableBuildingsResponse).Buildings)
}

func TestConstructableBuildings_UnknownGrid(t *testing.T) {
	handler, _ := newQueryHandler(t)

	_, err := handler.Handle(context.Background(), &queries.ConstructableBuildingsQuery{GridID: 9999})

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

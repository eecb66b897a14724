package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

func TestUserRepository_FindSeededUser(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	repo := persistence.NewGormUserRepository(db)

	// Act
	user, err := repo.Find(context.Background(), world.UserID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "commander", user.Username())
	assert.Equal(t, int64(1000), user.Energy())
	assert.True(t, user.HasResource(helpers.CrystalResourceID))
	assert.True(t, user.HasResource(helpers.GasResourceID))
	assert.False(t, user.HasResource(99))
}

func TestUserRepository_SaveRoundTripsResources(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	world := helpers.SeedWorld(t, db)
	repo := persistence.NewGormUserRepository(db)

	user, err := repo.Find(context.Background(), world.UserID)
	require.NoError(t, err)

	// Act
	user.UnlockResource(7)
	require.NoError(t, user.DecrementEnergy(400))
	require.NoError(t, repo.Save(context.Background(), user))

	// Assert
	reloaded, err := repo.Find(context.Background(), world.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(600), reloaded.Energy())
	assert.True(t, reloaded.HasResource(7))
}

func TestUserRepository_FindUnknownUser(t *testing.T) {
	db := helpers.NewTestDB(t)
	helpers.SeedWorld(t, db)
	repo := persistence.NewGormUserRepository(db)

	_, err := repo.Find(context.Background(), 424242)

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

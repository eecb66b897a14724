package planet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

func TestStock_DecrementWithinQuantity(t *testing.T) {
	// Arrange
	stock := planet.ReconstructStock(1, 1, 100, 0)

	// Act
	err := stock.Decrement(40)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(60), stock.Quantity())
}

func TestStock_DecrementToZero(t *testing.T) {
	stock := planet.ReconstructStock(1, 1, 100, 0)

	err := stock.Decrement(100)

	require.NoError(t, err)
	assert.Equal(t, int64(0), stock.Quantity())
}

func TestStock_DecrementBeyondQuantityFailsWithoutMutation(t *testing.T) {
	// Arrange
	stock := planet.ReconstructStock(1, 1, 10, 0)

	// Act
	err := stock.Decrement(11)

	// Assert
	require.Error(t, err)
	var insufficient *shared.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(11), insufficient.Requested)
	assert.Equal(t, int64(10), insufficient.Available)
	assert.Equal(t, int64(10), stock.Quantity())
}

func TestStock_NegativeAmountsRejected(t *testing.T) {
	stock := planet.ReconstructStock(1, 1, 10, 0)

	var invalid *shared.InvalidAmountError
	require.ErrorAs(t, stock.Decrement(-1), &invalid)
	require.ErrorAs(t, stock.Increment(-1), &invalid)
	assert.Equal(t, int64(10), stock.Quantity())
}

func TestStock_HasQuantity(t *testing.T) {
	stock := planet.ReconstructStock(1, 1, 5, 0)

	assert.True(t, stock.HasQuantity(5))
	assert.True(t, stock.HasQuantity(0))
	assert.False(t, stock.HasQuantity(6))
}

func TestPopulation_FollowsLedgerContract(t *testing.T) {
	// Arrange
	population := planet.NewPopulation(1, 1)

	// Act
	require.NoError(t, population.Increment(7))
	require.NoError(t, population.Decrement(3))

	// Assert
	assert.Equal(t, int64(4), population.Quantity())

	var insufficient *shared.InsufficientStockError
	require.ErrorAs(t, population.Decrement(5), &insufficient)
	assert.Equal(t, int64(4), population.Quantity())
}

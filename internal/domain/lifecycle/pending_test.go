package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

func TestNewConstruction_TargetsLevelOne(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Unix(1700000000, 0).UTC())
	start := clock.Now()

	// Act
	op := lifecycle.NewConstruction(7, 3, 4, 90*time.Second, clock)

	// Assert
	assert.Equal(t, lifecycle.KindConstruction, op.Kind())
	assert.Equal(t, 7, op.GridID())
	assert.Equal(t, 3, op.PlanetID())
	assert.Equal(t, 4, *op.BuildingID())
	assert.Equal(t, 1, *op.TargetLevel())
	assert.Equal(t, start, op.StartedAt())
	assert.Equal(t, start.Add(90*time.Second), op.EndedAt())
}

func TestPendingOperation_IsDue(t *testing.T) {
	clock := shared.NewMockClock(time.Unix(1700000000, 0).UTC())
	op := lifecycle.NewUpgrade(7, 3, 2, time.Minute, clock)

	assert.False(t, op.IsDue(clock.Now()))

	clock.Advance(59 * time.Second)
	assert.False(t, op.IsDue(clock.Now()))

	clock.Advance(time.Second)
	assert.True(t, op.IsDue(clock.Now()))
}

func TestValidateExclusive_EmptyCellAcceptsAnything(t *testing.T) {
	require.NoError(t, lifecycle.ValidateExclusive(nil, lifecycle.KindConstruction))
	require.NoError(t, lifecycle.ValidateExclusive(nil, lifecycle.KindUpgrade))
	require.NoError(t, lifecycle.ValidateExclusive(nil, lifecycle.KindTraining))
}

func TestValidateExclusive_DuplicateKindRejected(t *testing.T) {
	err := lifecycle.ValidateExclusive([]lifecycle.Kind{lifecycle.KindTraining}, lifecycle.KindTraining)

	var invalid *shared.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
}

func TestValidateExclusive_ConstructionExcludesEverything(t *testing.T) {
	var invalid *shared.InvalidRequestError

	err := lifecycle.ValidateExclusive([]lifecycle.Kind{lifecycle.KindConstruction}, lifecycle.KindUpgrade)
	require.ErrorAs(t, err, &invalid)

	err = lifecycle.ValidateExclusive([]lifecycle.Kind{lifecycle.KindConstruction}, lifecycle.KindTraining)
	require.ErrorAs(t, err, &invalid)
}

func TestValidateExclusive_UpgradeAndTrainingCoexist(t *testing.T) {
	require.NoError(t, lifecycle.ValidateExclusive([]lifecycle.Kind{lifecycle.KindUpgrade}, lifecycle.KindTraining))
	require.NoError(t, lifecycle.ValidateExclusive([]lifecycle.Kind{lifecycle.KindTraining}, lifecycle.KindUpgrade))
}

func TestParseKind(t *testing.T) {
	kind, err := lifecycle.ParseKind("UPGRADE")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.KindUpgrade, kind)

	_, err = lifecycle.ParseKind("DEMOLITION")
	require.Error(t, err)
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
)

func testBuilding() *catalog.Building {
	return catalog.NewBuilding(1, nil, "Forge", catalog.BuildingTypeProducer, 0, catalog.BaseStats{
		ConstructionCost:      100,
		ConstructionTime:      60,
		Defense:               40,
		DefenseBonus:          2,
		ConstructionTimeBonus: 1,
		Capacity:              500,
		Production:            30,
	})
}

func TestApplyModifiers_ScalesLinearlyWithLevel(t *testing.T) {
	// Arrange
	b := testBuilding()

	// Act
	effective := b.ApplyModifiers(catalog.Modifiers{Level: 3})

	// Assert
	assert.Equal(t, 3, effective.Level)
	assert.Equal(t, int64(300), effective.ConstructionCost)
	assert.Equal(t, 180, effective.ConstructionTime)
	assert.Equal(t, int64(120), effective.Defense)
	assert.Equal(t, float64(6), effective.DefenseBonus)
	assert.Equal(t, float64(3), effective.ConstructionTimeBonus)
	assert.Equal(t, int64(1500), effective.Capacity)
	assert.Equal(t, int64(90), effective.Production)
}

func TestApplyModifiers_LevelBelowOneTreatedAsOne(t *testing.T) {
	b := testBuilding()

	effective := b.ApplyModifiers(catalog.Modifiers{Level: 0})

	assert.Equal(t, 1, effective.Level)
	assert.Equal(t, int64(100), effective.ConstructionCost)
}

func TestApplyModifiers_ConstructionTimeBonusReducesTime(t *testing.T) {
	// Arrange
	b := testBuilding()

	// Act: 25% bonus at level 2 means 120s * 0.75
	effective := b.ApplyModifiers(catalog.Modifiers{Level: 2, ConstructionTimeBonus: 25})

	// Assert
	assert.Equal(t, 90, effective.ConstructionTime)
}

func TestApplyModifiers_TimeBonusOverHundredClampsToZero(t *testing.T) {
	b := testBuilding()

	effective := b.ApplyModifiers(catalog.Modifiers{Level: 1, ConstructionTimeBonus: 150})

	assert.Equal(t, 0, effective.ConstructionTime)
}

func TestApplyModifiers_DefenseBonusRaisesDefense(t *testing.T) {
	b := testBuilding()

	// 40 * 2 * 1.5 = 120
	effective := b.ApplyModifiers(catalog.Modifiers{Level: 2, DefenseBonus: 50})

	assert.Equal(t, int64(120), effective.Defense)
}

func TestApplyModifiers_RoundsHalfUp(t *testing.T) {
	// Arrange: 15s base, 10% time bonus at level 1 is 13.5s
	b := catalog.NewBuilding(2, nil, "Hut", catalog.BuildingTypeContainer, 0, catalog.BaseStats{
		ConstructionCost: 15,
		ConstructionTime: 15,
	})

	// Act
	effective := b.ApplyModifiers(catalog.Modifiers{Level: 1, ConstructionTimeBonus: 10})

	// Assert
	assert.Equal(t, 14, effective.ConstructionTime)
}

func TestApplyModifiers_IsPureAndDeterministic(t *testing.T) {
	b := testBuilding()
	m := catalog.Modifiers{Level: 4, DefenseBonus: 10, ConstructionTimeBonus: 5}

	first := b.ApplyModifiers(m)
	second := b.ApplyModifiers(m)

	assert.Equal(t, first, second)
	// The catalog entry itself is untouched.
	assert.Equal(t, int64(100), b.ApplyModifiers(catalog.Modifiers{Level: 1}).ConstructionCost)
}

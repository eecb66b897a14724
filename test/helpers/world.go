package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
)

// World is the standard seeded game state tests run against: one user
// owning one planet whose central cell is pre-built, plus one resource
// cell and three empty plain cells.
type World struct {
	UserID         int
	PlanetID       int
	CentralGridID  int
	ResourceGridID int
	PlainGridIDs   []int
}

// SeedWorld inserts the standard fixture world, including the catalog
// rows matching NewTestCatalog.
func SeedWorld(t *testing.T, db *gorm.DB) *World {
	t.Helper()

	seedCatalog(t, db)

	user := &persistence.UserModel{
		ID:        1,
		Username:  "commander",
		Energy:    1000,
		Resources: "[1,2]",
	}
	require.NoError(t, db.Create(user).Error)

	p := &persistence.PlanetModel{
		ID:         1,
		Name:       "Kronos",
		UserID:     user.ID,
		ResourceID: CrystalResourceID,
	}
	require.NoError(t, db.Create(p).Error)

	centralLevel := 1
	centralBuilding := CommandCenterID
	grids := []*persistence.GridModel{
		{ID: 1, PlanetID: p.ID, X: 0, Y: 0, Type: 2, BuildingID: &centralBuilding, Level: &centralLevel, IsEnabled: true},
		{ID: 2, PlanetID: p.ID, X: 1, Y: 0, Type: 1, IsEnabled: true},
		{ID: 3, PlanetID: p.ID, X: 0, Y: 1, Type: 0, IsEnabled: true},
		{ID: 4, PlanetID: p.ID, X: 1, Y: 1, Type: 0, IsEnabled: true},
		{ID: 5, PlanetID: p.ID, X: 2, Y: 1, Type: 0, IsEnabled: true},
	}
	for _, g := range grids {
		require.NoError(t, db.Create(g).Error)
	}

	return &World{
		UserID:         user.ID,
		PlanetID:       p.ID,
		CentralGridID:  1,
		ResourceGridID: 2,
		PlainGridIDs:   []int{3, 4, 5},
	}
}

// seedCatalog inserts catalog rows mirroring NewTestCatalog so tests
// exercising the database-backed catalog see the same definitions.
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	for i, b := range NewTestCatalog().Buildings() {
		// Level 1 with no bonuses reproduces the base stats.
		base := b.ApplyModifiers(catalog.Modifiers{Level: 1})
		model := &persistence.BuildingModel{
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
		}
		require.NoError(t, db.Create(model).Error)
	}

	require.NoError(t, db.Create(&persistence.ResourceModel{ID: CrystalResourceID, Name: "Crystal", Efficiency: 2.0}).Error)
	require.NoError(t, db.Create(&persistence.ResourceModel{ID: GasResourceID, Name: "Gas", Efficiency: 0.5}).Error)
	require.NoError(t, db.Create(&persistence.UnitModel{ID: DroneUnitID, Name: "Drone", Supply: 1, TrainTime: 10, Cost: 25}).Error)
}

package helpers

import (
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
)

// Fixture building ids shared across tests
const (
	CommandCenterID = 1
	ExtractorID     = 2
	RefineryID      = 3
	DepotID         = 4
	AcademyID       = 5
	BastionID       = 6
)

// NewTestCatalog builds a small but complete catalog: two roots, a
// limited producer, an unlimited container, a single-instance trainer
// and a defensive building behind it.
func NewTestCatalog() *catalog.Catalog {
	return catalog.NewCatalog([]*catalog.Building{
		catalog.NewBuilding(CommandCenterID, nil, "Command Center", catalog.BuildingTypeCentral, 0, catalog.BaseStats{
			ConstructionCost: 0,
			ConstructionTime: 0,
			Capacity:         1000,
		}),
		catalog.NewBuilding(ExtractorID, nil, "Extractor", catalog.BuildingTypeMiner, 0, catalog.BaseStats{
			ConstructionCost: 50,
			ConstructionTime: 30,
			Production:       60,
		}),
		catalog.NewBuilding(RefineryID, intPtr(ExtractorID), "Refinery", catalog.BuildingTypeProducer, 2, catalog.BaseStats{
			ConstructionCost: 100,
			ConstructionTime: 60,
		}),
		catalog.NewBuilding(DepotID, intPtr(CommandCenterID), "Depot", catalog.BuildingTypeContainer, 0, catalog.BaseStats{
			ConstructionCost: 80,
			ConstructionTime: 45,
			Capacity:         500,
		}),
		catalog.NewBuilding(AcademyID, intPtr(CommandCenterID), "Academy", catalog.BuildingTypeTrainer, 1, catalog.BaseStats{
			ConstructionCost: 200,
			ConstructionTime: 120,
		}),
		catalog.NewBuilding(BastionID, intPtr(AcademyID), "Bastion", catalog.BuildingTypeDefensive, 0, catalog.BaseStats{
			ConstructionCost:      150,
			ConstructionTime:      90,
			Defense:               40,
			DefenseBonus:          2,
			ConstructionTimeBonus: 1,
		}),
	})
}

func intPtr(v int) *int {
	return &v
}

package planet

import "context"

// PlanetRepository persists planets
type PlanetRepository interface {
	Find(ctx context.Context, id int) (*Planet, error)
	Save(ctx context.Context, p *Planet) error
}

// GridRepository persists grid cells. Implementations mark the owning
// planet for post-commit state synchronization on every save.
type GridRepository interface {
	Find(ctx context.Context, id int) (*Grid, error)
	Save(ctx context.Context, g *Grid) error

	// ConstructedByPlanet returns every cell of the planet that holds a
	// building.
	ConstructedByPlanet(ctx context.Context, planetID int) ([]*Grid, error)

	// ConstructedCounts returns, per building id, the number of cells of
	// the planet holding that building.
	ConstructedCounts(ctx context.Context, planetID int) (map[int]int, error)

	// CountBuildingElsewhere returns how many cells of the planet other
	// than excludeGridID hold the given building.
	CountBuildingElsewhere(ctx context.Context, planetID, buildingID, excludeGridID int) (int, error)
}

// StockRepository persists resource stocks
type StockRepository interface {
	FindOrCreate(ctx context.Context, planetID, resourceID int) (*Stock, error)
	FindByPlanet(ctx context.Context, planetID int) ([]*Stock, error)
	Save(ctx context.Context, s *Stock) error
}

// PopulationRepository persists trained unit counts
type PopulationRepository interface {
	FindOrCreate(ctx context.Context, planetID, unitID int) (*Population, error)
	Save(ctx context.Context, p *Population) error
}

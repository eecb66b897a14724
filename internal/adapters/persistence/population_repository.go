package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
)

// GormPopulationRepository implements planet.PopulationRepository using GORM
type GormPopulationRepository struct {
	db *gorm.DB
}

func NewGormPopulationRepository(db *gorm.DB) *GormPopulationRepository {
	return &GormPopulationRepository{db: db}
}

func (r *GormPopulationRepository) FindOrCreate(ctx context.Context, planetID, unitID int) (*planet.Population, error) {
	var model PopulationModel
	result := r.db.WithContext(ctx).
		Where(PopulationModel{PlanetID: planetID, UnitID: unitID}).
		Attrs(PopulationModel{Quantity: 0}).
		FirstOrCreate(&model)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find or create population: %w", result.Error)
	}

	return planet.ReconstructPopulation(model.PlanetID, model.UnitID, model.Quantity), nil
}

func (r *GormPopulationRepository) Save(ctx context.Context, p *planet.Population) error {
	model := &PopulationModel{
		PlanetID: p.PlanetID(),
		UnitID:   p.UnitID(),
		Quantity: p.Quantity(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "planet_id"}, {Name: "unit_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).
		Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save population: %w", result.Error)
	}
	return nil
}

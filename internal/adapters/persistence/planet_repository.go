package persistence

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// GormPlanetRepository implements planet.PlanetRepository using GORM
type GormPlanetRepository struct {
	db *gorm.DB
}

func NewGormPlanetRepository(db *gorm.DB) *GormPlanetRepository {
	return &GormPlanetRepository{db: db}
}

func (r *GormPlanetRepository) Find(ctx context.Context, id int) (*planet.Planet, error) {
	var model PlanetModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("planet", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to find planet: %w", result.Error)
	}

	return modelToPlanet(&model), nil
}

func (r *GormPlanetRepository) Save(ctx context.Context, p *planet.Planet) error {
	model := planetToModel(p)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save planet: %w", result.Error)
	}
	return nil
}

func modelToPlanet(model *PlanetModel) *planet.Planet {
	return planet.ReconstructPlanet(
		model.ID,
		model.Name,
		model.UserID,
		model.ResourceID,
		model.Capacity,
		model.DefenseBonus,
		model.ConstructionTimeBonus,
	)
}

func planetToModel(p *planet.Planet) *PlanetModel {
	return &PlanetModel{
		ID:                    p.ID(),
		Name:                  p.Name(),
		UserID:                p.UserID(),
		ResourceID:            p.ResourceID(),
		Capacity:              p.Capacity(),
		DefenseBonus:          p.DefenseBonus(),
		ConstructionTimeBonus: p.ConstructionTimeBonus(),
	}
}

package persistence

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// GormGridRepository implements planet.GridRepository using GORM.
// Every save reports the owning planet to markDirty so the transaction
// coordinator can synchronize it after commit.
type GormGridRepository struct {
	db        *gorm.DB
	markDirty func(planetID int)
}

func NewGormGridRepository(db *gorm.DB, markDirty func(planetID int)) *GormGridRepository {
	if markDirty == nil {
		markDirty = func(int) {}
	}
	return &GormGridRepository{db: db, markDirty: markDirty}
}

func (r *GormGridRepository) Find(ctx context.Context, id int) (*planet.Grid, error) {
	var model GridModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("grid", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to find grid: %w", result.Error)
	}

	return modelToGrid(&model), nil
}

func (r *GormGridRepository) Save(ctx context.Context, g *planet.Grid) error {
	model := gridToModel(g)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save grid: %w", result.Error)
	}

	r.markDirty(g.PlanetID())
	return nil
}

func (r *GormGridRepository) ConstructedByPlanet(ctx context.Context, planetID int) ([]*planet.Grid, error) {
	var models []GridModel
	result := r.db.WithContext(ctx).
		Where("planet_id = ? AND building_id IS NOT NULL", planetID).
		Order("id").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load constructed grids: %w", result.Error)
	}

	grids := make([]*planet.Grid, len(models))
	for i := range models {
		grids[i] = modelToGrid(&models[i])
	}
	return grids, nil
}

func (r *GormGridRepository) ConstructedCounts(ctx context.Context, planetID int) (map[int]int, error) {
	var rows []struct {
		BuildingID int
		Count      int
	}

	result := r.db.WithContext(ctx).
		Model(&GridModel{}).
		Select("building_id, COUNT(*) AS count").
		Where("planet_id = ? AND building_id IS NOT NULL", planetID).
		Group("building_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to count constructed buildings: %w", result.Error)
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.BuildingID] = row.Count
	}
	return counts, nil
}

func (r *GormGridRepository) CountBuildingElsewhere(ctx context.Context, planetID, buildingID, excludeGridID int) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&GridModel{}).
		Where("planet_id = ? AND building_id = ? AND id <> ?", planetID, buildingID, excludeGridID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count building instances: %w", result.Error)
	}
	return int(count), nil
}

func modelToGrid(model *GridModel) *planet.Grid {
	return planet.ReconstructGrid(
		model.ID,
		model.PlanetID,
		model.X,
		model.Y,
		planet.GridType(model.Type),
		model.BuildingID,
		model.Level,
		model.IsEnabled,
	)
}

func gridToModel(g *planet.Grid) *GridModel {
	return &GridModel{
		ID:         g.ID(),
		PlanetID:   g.PlanetID(),
		X:          g.X(),
		Y:          g.Y(),
		Type:       int(g.Type()),
		BuildingID: g.BuildingID(),
		Level:      g.Level(),
		IsEnabled:  g.IsEnabled(),
	}
}

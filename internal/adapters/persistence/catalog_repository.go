package persistence

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// GormCatalogRepository implements catalog.Repository using GORM.
// Catalog tables are immutable at runtime, so rows map straight to the
// domain's immutable entries.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// LoadCatalog loads every building in canonical order and builds the
// dependency indexes. The sort_order column is the catalog's default
// order; the eligibility engine adds no ordering of its own.
func (r *GormCatalogRepository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var models []BuildingModel
	result := r.db.WithContext(ctx).Order("sort_order, id").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load building catalog: %w", result.Error)
	}

	buildings := make([]*catalog.Building, len(models))
	for i, model := range models {
		buildings[i] = catalog.NewBuilding(
			model.ID,
			model.ParentID,
			model.Name,
			catalog.BuildingType(model.Type),
			model.Limit,
			catalog.BaseStats{
				ConstructionCost:      model.ConstructionCost,
				ConstructionTime:      model.ConstructionTime,
				Defense:               model.Defense,
				DefenseBonus:          model.DefenseBonus,
				ConstructionTimeBonus: model.ConstructionTimeBonus,
				Capacity:              model.Capacity,
				Production:            model.Production,
			},
		)
	}

	return catalog.NewCatalog(buildings), nil
}

func (r *GormCatalogRepository) FindResource(ctx context.Context, id int) (*catalog.Resource, error) {
	var model ResourceModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("resource", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to find resource: %w", result.Error)
	}

	return catalog.NewResource(model.ID, model.Name, model.Efficiency), nil
}

func (r *GormCatalogRepository) FindUnit(ctx context.Context, id int) (*catalog.Unit, error) {
	var model UnitModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("unit", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("failed to find unit: %w", result.Error)
	}

	return catalog.NewUnit(model.ID, model.Name, model.Supply, model.TrainTime, model.Cost), nil
}

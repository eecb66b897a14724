package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
)

// GormStockRepository implements planet.StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// FindOrCreate loads the (planet, resource) stock, creating an empty row
// when none exists. The row lock taken by the enclosing transaction is
// what serializes concurrent decrements on the same stock.
func (r *GormStockRepository) FindOrCreate(ctx context.Context, planetID, resourceID int) (*planet.Stock, error) {
	var model StockModel
	result := r.db.WithContext(ctx).
		Where(StockModel{PlanetID: planetID, ResourceID: resourceID}).
		Attrs(StockModel{Quantity: 0, Production: 0}).
		FirstOrCreate(&model)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find or create stock: %w", result.Error)
	}

	return planet.ReconstructStock(model.PlanetID, model.ResourceID, model.Quantity, model.Production), nil
}

func (r *GormStockRepository) FindByPlanet(ctx context.Context, planetID int) ([]*planet.Stock, error) {
	var models []StockModel
	result := r.db.WithContext(ctx).
		Where("planet_id = ?", planetID).
		Order("resource_id").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load stocks: %w", result.Error)
	}

	stocks := make([]*planet.Stock, len(models))
	for i, model := range models {
		stocks[i] = planet.ReconstructStock(model.PlanetID, model.ResourceID, model.Quantity, model.Production)
	}
	return stocks, nil
}

func (r *GormStockRepository) Save(ctx context.Context, s *planet.Stock) error {
	model := &StockModel{
		PlanetID:   s.PlanetID(),
		ResourceID: s.ResourceID(),
		Quantity:   s.Quantity(),
		Production: s.Production(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "planet_id"}, {Name: "resource_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "production"}),
		}).
		Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save stock: %w", result.Error)
	}
	return nil
}

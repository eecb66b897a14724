package services

import (
	"context"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/metrics"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
)

// StateManager is the planet state synchronizer: it re-derives the
// planet's aggregate attributes from the current set of constructed
// buildings and persists them.
//
// It is invoked by the transaction coordinator after every committed
// mutation that touched a grid, and is safe to call redundantly: the
// recompute always starts from current state, never from deltas.
type StateManager struct {
	uow     common.UnitOfWork
	catalog common.CatalogProvider
}

func NewStateManager(uow common.UnitOfWork, catalogProvider common.CatalogProvider) *StateManager {
	return &StateManager{uow: uow, catalog: catalogProvider}
}

// SyncPlanet recomputes capacity, defense bonus, construction-time bonus
// and the native resource's production rate, and persists them.
func (m *StateManager) SyncPlanet(ctx context.Context, planetID int) error {
	cat, err := m.catalog.Catalog(ctx)
	if err != nil {
		return err
	}

	defer metrics.RecordPlanetSync()

	return m.uow.Execute(ctx, func(ctx context.Context, scope common.TransactionScope) error {
		p, err := scope.Planets().Find(ctx, planetID)
		if err != nil {
			return err
		}

		grids, err := scope.Grids().ConstructedByPlanet(ctx, planetID)
		if err != nil {
			return err
		}

		var capacity, production int64
		var defenseBonus, constructionTimeBonus float64

		for _, g := range grids {
			if !g.IsEnabled() {
				continue
			}

			building := cat.Find(*g.BuildingID())
			if building == nil {
				continue
			}

			effective := building.ApplyModifiers(catalog.Modifiers{Level: g.CurrentLevel()})

			capacity += effective.Capacity
			defenseBonus += effective.DefenseBonus
			constructionTimeBonus += effective.ConstructionTimeBonus

			if building.Type() == catalog.BuildingTypeMiner {
				production += effective.Production
			}
		}

		p.ApplyAggregates(capacity, defenseBonus, constructionTimeBonus)
		if err := scope.Planets().Save(ctx, p); err != nil {
			return err
		}

		stock, err := scope.Stocks().FindOrCreate(ctx, planetID, p.ResourceID())
		if err != nil {
			return err
		}
		stock.SetProduction(production)

		return scope.Stocks().Save(ctx, stock)
	})
}

package queries

import (
	"context"
	"fmt"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
)

// ConstructableBuildingsQuery asks which buildings a cell may construct
type ConstructableBuildingsQuery struct {
	GridID int
}

// ConstructableBuildingsResponse carries the effective buildings in the
// catalog's canonical order
type ConstructableBuildingsResponse struct {
	Buildings []*catalog.EffectiveBuilding
}

// ConstructableBuildingsHandler is the read-only consumer of the grid
// eligibility engine. It needs no locking beyond the store's default
// read consistency.
type ConstructableBuildingsHandler struct {
	uow     common.UnitOfWork
	catalog common.CatalogProvider
}

func NewConstructableBuildingsHandler(uow common.UnitOfWork, catalog common.CatalogProvider) *ConstructableBuildingsHandler {
	return &ConstructableBuildingsHandler{uow: uow, catalog: catalog}
}

func (h *ConstructableBuildingsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ConstructableBuildingsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	cat, err := h.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	surveyor := planet.NewSurveyor(cat)

	response := &ConstructableBuildingsResponse{}

	err = h.uow.Execute(ctx, func(ctx context.Context, scope common.TransactionScope) error {
		grid, err := scope.Grids().Find(ctx, query.GridID)
		if err != nil {
			return err
		}

		owner, err := scope.Planets().Find(ctx, grid.PlanetID())
		if err != nil {
			return err
		}

		pending, err := scope.PendingOperations().FindByGrid(ctx, grid.ID())
		if err != nil {
			return err
		}
		hasConstruction := false
		for _, op := range pending {
			if op.Kind() == lifecycle.KindConstruction {
				hasConstruction = true
			}
		}

		survey, err := common.BuildSurvey(ctx, scope, owner)
		if err != nil {
			return err
		}

		response.Buildings = surveyor.ConstructableBuildings(grid, hasConstruction, survey)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/metrics"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// RequirementPolicy selects how "does this building still exist
// elsewhere" is evaluated when demolishing a root-required building.
// The tie-break across multiple cells holding the same building type is
// a domain policy point, so it is configurable rather than hard-coded.
type RequirementPolicy int

const (
	// RequirementPolicyExcludeCell counts instances on cells other than
	// the one being demolished. Matches the reference behavior: the last
	// remaining instance of a root building is floored at level 1.
	RequirementPolicyExcludeCell RequirementPolicy = iota

	// RequirementPolicyIgnore applies no root-requirement floor.
	RequirementPolicyIgnore
)

// DemolishBuildingCommand lowers a cell's building by the given number of
// levels. Zero levels means the cell's full current level.
type DemolishBuildingCommand struct {
	GridID int
	Levels int
}

// DemolishBuildingResponse reports the resulting level. Demolished is
// false when the command was an idempotent no-op on an empty cell.
type DemolishBuildingResponse struct {
	Demolished bool
	Level      int
}

// DemolishBuildingHandler applies demolition: pending upgrades and
// trainings on the cell are deleted first since they cannot outlive the
// building they target, then the level is reduced respecting the
// root-requirement floor. A cell cleared to zero is detached and
// re-enabled. The grid save triggers planet synchronization after
// commit.
type DemolishBuildingHandler struct {
	uow     common.UnitOfWork
	catalog common.CatalogProvider
	policy  RequirementPolicy
}

func NewDemolishBuildingHandler(uow common.UnitOfWork, catalog common.CatalogProvider, policy RequirementPolicy) *DemolishBuildingHandler {
	return &DemolishBuildingHandler{uow: uow, catalog: catalog, policy: policy}
}

func (h *DemolishBuildingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DemolishBuildingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	cat, err := h.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	response := &DemolishBuildingResponse{}

	err = h.uow.Execute(ctx, func(ctx context.Context, scope common.TransactionScope) error {
		grid, err := scope.Grids().Find(ctx, cmd.GridID)
		if err != nil {
			return err
		}

		// No level or no building: nothing to demolish.
		if !grid.HasBuilding() || grid.CurrentLevel() == 0 {
			return nil
		}

		building := cat.Find(*grid.BuildingID())
		if building == nil {
			return shared.NewInvalidRequestError(
				fmt.Sprintf("building %d is not in the catalog", *grid.BuildingID()))
		}

		if err := scope.PendingOperations().DeleteByGridAndKinds(
			ctx, grid.ID(), lifecycle.KindUpgrade, lifecycle.KindTraining); err != nil {
			return err
		}

		floor, err := h.requirementFloor(ctx, scope, building.IsRoot(), grid)
		if err != nil {
			return err
		}

		levels := cmd.Levels
		if levels <= 0 {
			levels = grid.CurrentLevel()
		}

		response.Demolished = true
		response.Level = grid.ReduceLevel(levels, floor)

		return scope.Grids().Save(ctx, grid)
	})
	if err != nil {
		return nil, err
	}

	if response.Demolished {
		metrics.RecordDemolition()
	}

	return response, nil
}

// requirementFloor computes the minimum level the cell may be reduced to.
// Central cells keep their base building. A root-required building whose
// planet holds no other instance is floored at level 1 so the planet's
// required set never breaks.
func (h *DemolishBuildingHandler) requirementFloor(ctx context.Context, scope common.TransactionScope, isRoot bool, grid *planet.Grid) (int, error) {
	if grid.Type() == planet.GridTypeCentral {
		return 1, nil
	}

	if h.policy == RequirementPolicyIgnore || !isRoot {
		return 0, nil
	}

	elsewhere, err := scope.Grids().CountBuildingElsewhere(ctx, grid.PlanetID(), *grid.BuildingID(), grid.ID())
	if err != nil {
		return 0, err
	}
	if elsewhere == 0 {
		return 1, nil
	}
	return 0, nil
}

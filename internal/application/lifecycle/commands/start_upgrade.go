package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// StartUpgradeCommand begins upgrading the building on a cell to the
// next level.
type StartUpgradeCommand struct {
	UserID int
	GridID int
}

// StartUpgradeResponse returns the created pending operation
type StartUpgradeResponse struct {
	OperationID uuid.UUID
	TargetLevel int
	EndedAt     time.Time
}

// StartUpgradeHandler charges the next level's effective cost and
// creates the pending upgrade, keeping the cell's exclusivity invariant.
type StartUpgradeHandler struct {
	uow     common.UnitOfWork
	catalog common.CatalogProvider
	clock   shared.Clock
}

func NewStartUpgradeHandler(uow common.UnitOfWork, catalog common.CatalogProvider, clock shared.Clock) *StartUpgradeHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &StartUpgradeHandler{uow: uow, catalog: catalog, clock: clock}
}

func (h *StartUpgradeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartUpgradeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	cat, err := h.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	response := &StartUpgradeResponse{}

	err = h.uow.Execute(ctx, func(ctx context.Context, scope common.TransactionScope) error {
		grid, err := scope.Grids().Find(ctx, cmd.GridID)
		if err != nil {
			return err
		}
		if !grid.HasBuilding() {
			return shared.NewInvalidRequestError("cell has no building to upgrade")
		}

		owner, err := scope.Planets().Find(ctx, grid.PlanetID())
		if err != nil {
			return err
		}
		if owner.UserID() != cmd.UserID {
			return shared.NewInvalidRequestError("grid does not belong to the user")
		}

		if err := validateExclusive(ctx, scope, cmd.GridID, lifecycle.KindUpgrade); err != nil {
			return err
		}

		building := cat.Find(*grid.BuildingID())
		if building == nil {
			return shared.NewInvalidRequestError(
				fmt.Sprintf("building %d is not in the catalog", *grid.BuildingID()))
		}

		targetLevel := grid.CurrentLevel() + 1
		effective := building.ApplyModifiers(catalog.Modifiers{
			Level:                 targetLevel,
			DefenseBonus:          owner.DefenseBonus(),
			ConstructionTimeBonus: owner.ConstructionTimeBonus(),
		})

		user, err := scope.Users().Find(ctx, cmd.UserID)
		if err != nil {
			return err
		}
		if err := user.DecrementEnergy(effective.ConstructionCost); err != nil {
			return err
		}
		if err := scope.Users().Save(ctx, user); err != nil {
			return err
		}

		op := lifecycle.NewUpgrade(
			grid.ID(), grid.PlanetID(), targetLevel,
			time.Duration(effective.ConstructionTime)*time.Second, h.clock)

		if err := scope.PendingOperations().Create(ctx, op); err != nil {
			return err
		}

		response.OperationID = op.ID()
		response.TargetLevel = targetLevel
		response.EndedAt = op.EndedAt()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// validateExclusive loads the cell's pending operations and applies the
// domain exclusivity rule for starting next.
func validateExclusive(ctx context.Context, scope common.TransactionScope, gridID int, next lifecycle.Kind) error {
	pending, err := scope.PendingOperations().FindByGrid(ctx, gridID)
	if err != nil {
		return err
	}

	kinds := make([]lifecycle.Kind, 0, len(pending))
	for _, op := range pending {
		kinds = append(kinds, op.Kind())
	}

	return lifecycle.ValidateExclusive(kinds, next)
}

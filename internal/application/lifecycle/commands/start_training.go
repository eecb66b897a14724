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

// StartTrainingCommand begins training units on a trainer building
type StartTrainingCommand struct {
	UserID   int
	GridID   int
	UnitID   int
	Quantity int64
}

// StartTrainingResponse returns the created pending operation
type StartTrainingResponse struct {
	OperationID uuid.UUID
	EndedAt     time.Time
}

// StartTrainingHandler validates the trainer cell, charges the training
// cost and creates the pending training.
type StartTrainingHandler struct {
	uow     common.UnitOfWork
	catalog common.CatalogProvider
	clock   shared.Clock
}

func NewStartTrainingHandler(uow common.UnitOfWork, catalog common.CatalogProvider, clock shared.Clock) *StartTrainingHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &StartTrainingHandler{uow: uow, catalog: catalog, clock: clock}
}

func (h *StartTrainingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartTrainingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if cmd.Quantity <= 0 {
		return nil, shared.NewInvalidRequestError("quantity must be positive")
	}

	cat, err := h.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	unit, err := h.catalog.Unit(ctx, cmd.UnitID)
	if err != nil {
		return nil, err
	}

	response := &StartTrainingResponse{}

	err = h.uow.Execute(ctx, func(ctx context.Context, scope common.TransactionScope) error {
		grid, err := scope.Grids().Find(ctx, cmd.GridID)
		if err != nil {
			return err
		}
		if !grid.HasBuilding() {
			return shared.NewInvalidRequestError("cell has no building")
		}

		building := cat.Find(*grid.BuildingID())
		if building == nil || building.Type() != catalog.BuildingTypeTrainer {
			return shared.NewInvalidRequestError("cell's building cannot train units")
		}

		owner, err := scope.Planets().Find(ctx, grid.PlanetID())
		if err != nil {
			return err
		}
		if owner.UserID() != cmd.UserID {
			return shared.NewInvalidRequestError("grid does not belong to the user")
		}

		if err := validateExclusive(ctx, scope, cmd.GridID, lifecycle.KindTraining); err != nil {
			return err
		}

		user, err := scope.Users().Find(ctx, cmd.UserID)
		if err != nil {
			return err
		}
		if err := user.DecrementEnergy(unit.Cost() * cmd.Quantity); err != nil {
			return err
		}
		if err := scope.Users().Save(ctx, user); err != nil {
			return err
		}

		duration := time.Duration(int64(unit.TrainTime())*cmd.Quantity) * time.Second
		op := lifecycle.NewTraining(grid.ID(), grid.PlanetID(), cmd.UnitID, cmd.Quantity, duration, h.clock)

		if err := scope.PendingOperations().Create(ctx, op); err != nil {
			return err
		}

		response.OperationID = op.ID()
		response.EndedAt = op.EndedAt()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

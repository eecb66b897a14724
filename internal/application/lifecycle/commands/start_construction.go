package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/lifecycle"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/planet"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// StartConstructionCommand begins constructing a building on an empty
// cell. The cost is charged against the acting user's energy.
type StartConstructionCommand struct {
	UserID     int
	GridID     int
	BuildingID int
}

// StartConstructionResponse returns the created pending operation
type StartConstructionResponse struct {
	OperationID uuid.UUID
	EndedAt     time.Time
}

// StartConstructionHandler validates eligibility through the surveyor,
// charges the effective construction cost and creates the pending
// record. The eligibility check runs inside the same transaction that
// creates the record, so the per-building instance limit can never be
// exceeded by concurrent starts.
type StartConstructionHandler struct {
	uow     common.UnitOfWork
	catalog common.CatalogProvider
	clock   shared.Clock
}

func NewStartConstructionHandler(uow common.UnitOfWork, catalog common.CatalogProvider, clock shared.Clock) *StartConstructionHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &StartConstructionHandler{uow: uow, catalog: catalog, clock: clock}
}

func (h *StartConstructionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartConstructionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	cat, err := h.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	surveyor := planet.NewSurveyor(cat)

	response := &StartConstructionResponse{}

	err = h.uow.Execute(ctx, func(ctx context.Context, scope common.TransactionScope) error {
		grid, err := scope.Grids().Find(ctx, cmd.GridID)
		if err != nil {
			return err
		}

		owner, err := scope.Planets().Find(ctx, grid.PlanetID())
		if err != nil {
			return err
		}
		if owner.UserID() != cmd.UserID {
			return shared.NewInvalidRequestError("grid does not belong to the user")
		}

		pending, err := scope.PendingOperations().FindByGrid(ctx, cmd.GridID)
		if err != nil {
			return err
		}

		survey, err := common.BuildSurvey(ctx, scope, owner)
		if err != nil {
			return err
		}

		effective := pickConstructable(surveyor, grid, pending, survey, cmd.BuildingID)
		if effective == nil {
			return shared.NewInvalidRequestError(
				fmt.Sprintf("building %d is not constructable on grid %d", cmd.BuildingID, cmd.GridID))
		}

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

		op := lifecycle.NewConstruction(
			grid.ID(), grid.PlanetID(), cmd.BuildingID,
			time.Duration(effective.ConstructionTime)*time.Second, h.clock)

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

// pickConstructable returns the effective building when buildingID is
// among the cell's constructable set, nil otherwise.
func pickConstructable(
	surveyor *planet.Surveyor,
	grid *planet.Grid,
	pending []*lifecycle.PendingOperation,
	survey planet.Survey,
	buildingID int,
) *catalog.EffectiveBuilding {
	hasConstruction := false
	for _, op := range pending {
		if op.Kind() == lifecycle.KindConstruction {
			hasConstruction = true
		}
	}

	for _, eb := range surveyor.ConstructableBuildings(grid, hasConstruction, survey) {
		if eb.ID == buildingID {
			return eb
		}
	}
	return nil
}

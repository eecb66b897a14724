package commands

import (
	"context"
	"fmt"
	"math"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/metrics"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/catalog"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/domain/shared"
)

// ExchangeCommand converts stocked resource quantity into user energy at
// the resource's efficiency ratio, through a producer building.
type ExchangeCommand struct {
	UserID     int
	GridID     int
	ResourceID int
	Quantity   int64
}

// ExchangeResponse reports the energy gained and the remaining stock
type ExchangeResponse struct {
	EnergyGained int64
	StockLeft    int64
}

// ExchangeHandler validates the producer cell, the user's entitlement
// and the stock sufficiency, then applies the atomic swap: energy up,
// stock down, both or neither.
type ExchangeHandler struct {
	uow     common.UnitOfWork
	catalog common.CatalogProvider
}

func NewExchangeHandler(uow common.UnitOfWork, catalog common.CatalogProvider) *ExchangeHandler {
	return &ExchangeHandler{uow: uow, catalog: catalog}
}

func (h *ExchangeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ExchangeCommand)
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

	resource, err := h.catalog.Resource(ctx, cmd.ResourceID)
	if err != nil {
		return nil, err
	}

	response := &ExchangeResponse{}

	err = h.uow.Execute(ctx, func(ctx context.Context, scope common.TransactionScope) error {
		grid, err := scope.Grids().Find(ctx, cmd.GridID)
		if err != nil {
			return err
		}
		if !grid.HasBuilding() {
			return shared.NewInvalidRequestError("cell has no building")
		}

		building := cat.Find(*grid.BuildingID())
		if building == nil || building.Type() != catalog.BuildingTypeProducer {
			return shared.NewInvalidRequestError("cell's building is not a producer")
		}

		user, err := scope.Users().Find(ctx, cmd.UserID)
		if err != nil {
			return err
		}
		if !user.HasResource(cmd.ResourceID) {
			return shared.NewInvalidRequestError(
				fmt.Sprintf("user %d is not entitled to resource %d", cmd.UserID, cmd.ResourceID))
		}

		stock, err := scope.Stocks().FindOrCreate(ctx, grid.PlanetID(), cmd.ResourceID)
		if err != nil {
			return err
		}

		// Checked decrement first: an insufficient stock aborts before any
		// energy is granted.
		if err := stock.Decrement(cmd.Quantity); err != nil {
			return err
		}

		gained := int64(math.Round(float64(cmd.Quantity) * resource.Efficiency()))
		if err := user.IncrementEnergy(gained); err != nil {
			return err
		}

		if err := scope.Stocks().Save(ctx, stock); err != nil {
			return err
		}
		if err := scope.Users().Save(ctx, user); err != nil {
			return err
		}

		response.EnergyGained = gained
		response.StockLeft = stock.Quantity()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordExchange(response.EnergyGained)

	return response, nil
}

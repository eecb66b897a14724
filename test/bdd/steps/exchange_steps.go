package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/persistence"
	producercommands "github.com/cryptixcoder/galaxyofdrones-online/internal/application/producer/commands"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

type exchangeContext struct {
	world *gameWorld

	gridID     int
	resourceID int
	response   *producercommands.ExchangeResponse
	err        error
}

func (ctx *exchangeContext) reset() {
	if ctx.world != nil {
		ctx.world.close()
	}
	ctx.world = newGameWorld()
	ctx.gridID = 0
	ctx.resourceID = 0
	ctx.response = nil
	ctx.err = nil
}

func (ctx *exchangeContext) resourceIDByName(name string) (int, error) {
	switch name {
	case "Crystal":
		return helpers.CrystalResourceID, nil
	case "Gas":
		return helpers.GasResourceID, nil
	}
	return 0, fmt.Errorf("unknown resource %q", name)
}

// Given steps

func (ctx *exchangeContext) aRefineryOnAPlainCell() error {
	ctx.gridID = ctx.world.plainGridIDs[0]
	return ctx.world.placeBuilding(ctx.gridID, helpers.RefineryID, 1)
}

func (ctx *exchangeContext) thePlanetStocksUnitsOf(quantity int64, resourceName string) error {
	resourceID, err := ctx.resourceIDByName(resourceName)
	if err != nil {
		return err
	}
	ctx.resourceID = resourceID

	return ctx.world.db.Create(&persistence.StockModel{
		PlanetID:   ctx.world.planetID,
		ResourceID: resourceID,
		Quantity:   quantity,
	}).Error
}

// When steps

func (ctx *exchangeContext) iExchangeUnitsOfTheStockedResource(quantity int64) error {
	response, err := ctx.world.mediator.Send(context.Background(), &producercommands.ExchangeCommand{
		UserID:     ctx.world.userID,
		GridID:     ctx.gridID,
		ResourceID: ctx.resourceID,
		Quantity:   quantity,
	})
	ctx.err = err
	if err != nil {
		return nil
	}
	ctx.response = response.(*producercommands.ExchangeResponse)
	return nil
}

// Then steps

func (ctx *exchangeContext) theUserShouldGainEnergy(energy int64) error {
	if ctx.err != nil {
		return fmt.Errorf("exchange failed: %v", ctx.err)
	}
	if ctx.response.EnergyGained != energy {
		return fmt.Errorf("expected %d energy gained, got %d", energy, ctx.response.EnergyGained)
	}
	return nil
}

func (ctx *exchangeContext) theStockShouldHoldUnits(quantity int64) error {
	var model persistence.StockModel
	err := ctx.world.db.
		Where("planet_id = ? AND resource_id = ?", ctx.world.planetID, ctx.resourceID).
		First(&model).Error
	if err != nil {
		return err
	}
	if model.Quantity != quantity {
		return fmt.Errorf("expected stock %d, got %d", quantity, model.Quantity)
	}
	return nil
}

func (ctx *exchangeContext) theUserEnergyShouldBe(energy int64) error {
	actual, err := ctx.world.userEnergy()
	if err != nil {
		return err
	}
	if actual != energy {
		return fmt.Errorf("expected energy %d, got %d", energy, actual)
	}
	return nil
}

func (ctx *exchangeContext) theExchangeShouldFailWithAnErrorContaining(expected string) error {
	if ctx.err == nil {
		return fmt.Errorf("expected error containing %q but exchange succeeded", expected)
	}
	if !strings.Contains(strings.ToLower(ctx.err.Error()), strings.ToLower(expected)) {
		return fmt.Errorf("expected error containing %q, got %v", expected, ctx.err)
	}
	return nil
}

// Register steps

func InitializeExchangeScenario(sc *godog.ScenarioContext) {
	exchangeCtx := &exchangeContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		exchangeCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a refinery on a plain cell$`, exchangeCtx.aRefineryOnAPlainCell)
	sc.Step(`^the planet stocks (\d+) units of "([^"]*)"$`, exchangeCtx.thePlanetStocksUnitsOf)
	sc.Step(`^I exchange (\d+) units of the stocked resource$`, exchangeCtx.iExchangeUnitsOfTheStockedResource)
	sc.Step(`^the user should gain (\d+) energy$`, exchangeCtx.theUserShouldGainEnergy)
	sc.Step(`^the stock should hold (\d+) units$`, exchangeCtx.theStockShouldHoldUnits)
	sc.Step(`^the user energy should be (\d+)$`, exchangeCtx.theUserEnergyShouldBe)
	sc.Step(`^the exchange should fail with an error containing "([^"]*)"$`, exchangeCtx.theExchangeShouldFailWithAnErrorContaining)
}

package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	surfacecommands "github.com/cryptixcoder/galaxyofdrones-online/internal/application/surface/commands"
	"github.com/cryptixcoder/galaxyofdrones-online/test/helpers"
)

type demolitionContext struct {
	world *gameWorld

	gridID   int
	response *surfacecommands.DemolishBuildingResponse
	err      error
}

func (ctx *demolitionContext) reset() {
	if ctx.world != nil {
		ctx.world.close()
	}
	ctx.world = newGameWorld()
	ctx.gridID = 0
	ctx.response = nil
	ctx.err = nil
}

// Given steps

func (ctx *demolitionContext) aPlainCellHoldsAtLevel(buildingName string, level int) error {
	buildingID, err := buildingIDByName(buildingName)
	if err != nil {
		return err
	}
	ctx.gridID = ctx.world.plainGridIDs[0]
	return ctx.world.placeBuilding(ctx.gridID, buildingID, level)
}

func (ctx *demolitionContext) theResourceCellHoldsAtLevel(buildingName string, level int) error {
	buildingID, err := buildingIDByName(buildingName)
	if err != nil {
		return err
	}
	ctx.gridID = ctx.world.resourceGridID
	return ctx.world.placeBuilding(ctx.gridID, buildingID, level)
}

func (ctx *demolitionContext) anotherCellAlsoHolds(buildingName string) error {
	buildingID, err := buildingIDByName(buildingName)
	if err != nil {
		return err
	}
	return ctx.world.placeBuilding(ctx.world.plainGridIDs[1], buildingID, 1)
}

// When steps

func (ctx *demolitionContext) iDemolishLevelsFromTheCell(levels int) error {
	return ctx.demolish(levels)
}

func (ctx *demolitionContext) iDemolishTheCentralCellCompletely() error {
	ctx.gridID = ctx.world.centralGridID
	return ctx.demolish(0)
}

func (ctx *demolitionContext) iDemolishTheCellCompletely() error {
	return ctx.demolish(0)
}

func (ctx *demolitionContext) demolish(levels int) error {
	response, err := ctx.world.mediator.Send(context.Background(), &surfacecommands.DemolishBuildingCommand{
		GridID: ctx.gridID,
		Levels: levels,
	})
	ctx.err = err
	if err != nil {
		return nil
	}
	ctx.response = response.(*surfacecommands.DemolishBuildingResponse)
	return nil
}

// Then steps

func (ctx *demolitionContext) theCellShouldBeAtLevel(level int) error {
	model, err := ctx.world.gridModel(ctx.gridID)
	if err != nil {
		return err
	}
	if model.Level == nil {
		return fmt.Errorf("expected level %d but cell %d has no building", level, ctx.gridID)
	}
	if *model.Level != level {
		return fmt.Errorf("expected level %d, got %d", level, *model.Level)
	}
	return nil
}

func (ctx *demolitionContext) theCellShouldBeEmptyAndEnabled() error {
	model, err := ctx.world.gridModel(ctx.gridID)
	if err != nil {
		return err
	}
	if model.BuildingID != nil {
		return fmt.Errorf("expected cell %d to be cleared", ctx.gridID)
	}
	if !model.IsEnabled {
		return fmt.Errorf("expected cell %d to be re-enabled", ctx.gridID)
	}
	return nil
}

func (ctx *demolitionContext) theCentralBuildingShouldSurviveAtLevel(level int) error {
	model, err := ctx.world.gridModel(ctx.world.centralGridID)
	if err != nil {
		return err
	}
	if model.BuildingID == nil || *model.BuildingID != helpers.CommandCenterID {
		return fmt.Errorf("expected the central building to survive")
	}
	if model.Level == nil || *model.Level != level {
		return fmt.Errorf("expected central level %d", level)
	}
	return nil
}

// Register steps

func InitializeDemolitionScenario(sc *godog.ScenarioContext) {
	demolitionCtx := &demolitionContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		demolitionCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a plain cell holds "([^"]*)" at level (\d+)$`, demolitionCtx.aPlainCellHoldsAtLevel)
	sc.Step(`^the resource cell holds "([^"]*)" at level (\d+)$`, demolitionCtx.theResourceCellHoldsAtLevel)
	sc.Step(`^another cell also holds "([^"]*)"$`, demolitionCtx.anotherCellAlsoHolds)
	sc.Step(`^I demolish (\d+) levels from the cell$`, demolitionCtx.iDemolishLevelsFromTheCell)
	sc.Step(`^I demolish the central cell completely$`, demolitionCtx.iDemolishTheCentralCellCompletely)
	sc.Step(`^I demolish the cell completely$`, demolitionCtx.iDemolishTheCellCompletely)
	sc.Step(`^the cell should be at level (\d+)$`, demolitionCtx.theCellShouldBeAtLevel)
	sc.Step(`^the cell should be empty and enabled$`, demolitionCtx.theCellShouldBeEmptyAndEnabled)
	sc.Step(`^the central building should survive at level (\d+)$`, demolitionCtx.theCentralBuildingShouldSurviveAtLevel)
}

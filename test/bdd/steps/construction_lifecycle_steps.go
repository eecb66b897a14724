package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	lifecyclecommands "github.com/cryptixcoder/galaxyofdrones-online/internal/application/lifecycle/commands"
)

type constructionLifecycleContext struct {
	world *gameWorld

	operationID uuid.UUID
	gridID      int
	response    *lifecyclecommands.BatchFinishResponse
	err         error
}

func (ctx *constructionLifecycleContext) reset() {
	if ctx.world != nil {
		ctx.world.close()
	}
	ctx.world = newGameWorld()
	ctx.operationID = uuid.Nil
	ctx.gridID = 0
	ctx.response = nil
	ctx.err = nil
}

// Given steps

func (ctx *constructionLifecycleContext) aFreshColony() error {
	return nil
}

// When steps

func (ctx *constructionLifecycleContext) iStartConstructingOnTheResourceCell(buildingName string) error {
	buildingID, err := buildingIDByName(buildingName)
	if err != nil {
		return err
	}
	ctx.gridID = ctx.world.resourceGridID

	response, err := ctx.world.mediator.Send(context.Background(), &lifecyclecommands.StartConstructionCommand{
		UserID:     ctx.world.userID,
		GridID:     ctx.gridID,
		BuildingID: buildingID,
	})
	ctx.err = err
	if err != nil {
		return nil
	}

	ctx.operationID = response.(*lifecyclecommands.StartConstructionResponse).OperationID
	return nil
}

func (ctx *constructionLifecycleContext) iTryToStartConstructingOnThePlainCell(buildingName string) error {
	buildingID, err := buildingIDByName(buildingName)
	if err != nil {
		return err
	}
	ctx.gridID = ctx.world.plainGridIDs[0]

	_, ctx.err = ctx.world.mediator.Send(context.Background(), &lifecyclecommands.StartConstructionCommand{
		UserID:     ctx.world.userID,
		GridID:     ctx.gridID,
		BuildingID: buildingID,
	})
	return nil
}

func (ctx *constructionLifecycleContext) secondsPass(seconds int) error {
	ctx.world.clock.Advance(time.Duration(seconds) * time.Second)
	return nil
}

func (ctx *constructionLifecycleContext) theConstructionIsFinished() error {
	response, err := ctx.world.mediator.Send(context.Background(), &lifecyclecommands.FinishConstructionCommand{
		IDs: []uuid.UUID{ctx.operationID},
	})
	if err != nil {
		return err
	}
	ctx.response = response.(*lifecyclecommands.BatchFinishResponse)
	return nil
}

func (ctx *constructionLifecycleContext) theConstructionIsCancelled() error {
	_, err := ctx.world.mediator.Send(context.Background(), &lifecyclecommands.CancelOperationCommand{
		ID: ctx.operationID,
	})
	return err
}

// Then steps

func (ctx *constructionLifecycleContext) theFinishShouldReportFinished() error {
	if ctx.response == nil {
		return fmt.Errorf("no finish response recorded")
	}
	if ctx.response.Finished() != 1 {
		return fmt.Errorf("expected 1 finished operation, got %d", ctx.response.Finished())
	}
	return nil
}

func (ctx *constructionLifecycleContext) theFinishShouldReportNotFound() error {
	if ctx.response == nil {
		return fmt.Errorf("no finish response recorded")
	}
	if len(ctx.response.Results) != 1 {
		return fmt.Errorf("expected 1 result, got %d", len(ctx.response.Results))
	}
	if ctx.response.Results[0].Outcome != lifecyclecommands.OutcomeNotFound {
		return fmt.Errorf("expected NOT_FOUND, got %s", ctx.response.Results[0].Outcome)
	}
	return nil
}

func (ctx *constructionLifecycleContext) theCellShouldHoldAtLevel(buildingName string, level int) error {
	buildingID, err := buildingIDByName(buildingName)
	if err != nil {
		return err
	}

	model, err := ctx.world.gridModel(ctx.gridID)
	if err != nil {
		return err
	}
	if model.BuildingID == nil || *model.BuildingID != buildingID {
		return fmt.Errorf("expected building %s on cell %d", buildingName, ctx.gridID)
	}
	if model.Level == nil || *model.Level != level {
		return fmt.Errorf("expected level %d on cell %d", level, ctx.gridID)
	}
	return nil
}

func (ctx *constructionLifecycleContext) theCellShouldStillBeEmpty() error {
	model, err := ctx.world.gridModel(ctx.gridID)
	if err != nil {
		return err
	}
	if model.BuildingID != nil {
		return fmt.Errorf("expected empty cell %d but found building %d", ctx.gridID, *model.BuildingID)
	}
	return nil
}

func (ctx *constructionLifecycleContext) theUserShouldHaveEnergy(energy int64) error {
	actual, err := ctx.world.userEnergy()
	if err != nil {
		return err
	}
	if actual != energy {
		return fmt.Errorf("expected energy %d, got %d", energy, actual)
	}
	return nil
}

func (ctx *constructionLifecycleContext) theCommandShouldFailWithAnErrorContaining(expected string) error {
	if ctx.err == nil {
		return fmt.Errorf("expected error containing %q but command succeeded", expected)
	}
	if !strings.Contains(strings.ToLower(ctx.err.Error()), strings.ToLower(expected)) {
		return fmt.Errorf("expected error containing %q, got %v", expected, ctx.err)
	}
	return nil
}

// Register steps

func InitializeConstructionLifecycleScenario(sc *godog.ScenarioContext) {
	lifecycleCtx := &constructionLifecycleContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		lifecycleCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a fresh colony$`, lifecycleCtx.aFreshColony)
	sc.Step(`^I start constructing "([^"]*)" on the resource cell$`, lifecycleCtx.iStartConstructingOnTheResourceCell)
	sc.Step(`^I try to start constructing "([^"]*)" on a plain cell$`, lifecycleCtx.iTryToStartConstructingOnThePlainCell)
	sc.Step(`^(\d+) seconds pass$`, lifecycleCtx.secondsPass)
	sc.Step(`^the construction is finished$`, lifecycleCtx.theConstructionIsFinished)
	sc.Step(`^the construction is cancelled$`, lifecycleCtx.theConstructionIsCancelled)
	sc.Step(`^the finish should report it finished$`, lifecycleCtx.theFinishShouldReportFinished)
	sc.Step(`^the finish should report it was not found$`, lifecycleCtx.theFinishShouldReportNotFound)
	sc.Step(`^the cell should hold "([^"]*)" at level (\d+)$`, lifecycleCtx.theCellShouldHoldAtLevel)
	sc.Step(`^the cell should still be empty$`, lifecycleCtx.theCellShouldStillBeEmpty)
	sc.Step(`^the user should have (\d+) energy$`, lifecycleCtx.theUserShouldHaveEnergy)
	sc.Step(`^the command should fail with an error containing "([^"]*)"$`, lifecycleCtx.theCommandShouldFailWithAnErrorContaining)
}

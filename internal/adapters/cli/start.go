package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	lifecycleCmd "github.com/cryptixcoder/galaxyofdrones-online/internal/application/lifecycle/commands"
)

// NewStartCommand creates the start command with per-kind subcommands
func NewStartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a construction, upgrade or training",
	}

	cmd.AddCommand(newStartConstructionCommand())
	cmd.AddCommand(newStartUpgradeCommand())
	cmd.AddCommand(newStartTrainingCommand())

	return cmd
}

func newStartConstructionCommand() *cobra.Command {
	var userID, gridID, buildingID int

	cmd := &cobra.Command{
		Use:   "construction",
		Short: "Start constructing a building on an empty cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Mediator.Send(context.Background(), &lifecycleCmd.StartConstructionCommand{
				UserID:     userID,
				GridID:     gridID,
				BuildingID: buildingID,
			})
			if err != nil {
				return err
			}

			result := response.(*lifecycleCmd.StartConstructionResponse)
			fmt.Printf("Construction %s ends at %s\n", result.OperationID, result.EndedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "Acting user id")
	cmd.Flags().IntVar(&gridID, "grid", 0, "Target grid cell id")
	cmd.Flags().IntVar(&buildingID, "building", 0, "Building id to construct")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("building")
	return cmd
}

func newStartUpgradeCommand() *cobra.Command {
	var userID, gridID int

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Start upgrading a cell's building to the next level",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Mediator.Send(context.Background(), &lifecycleCmd.StartUpgradeCommand{
				UserID: userID,
				GridID: gridID,
			})
			if err != nil {
				return err
			}

			result := response.(*lifecycleCmd.StartUpgradeResponse)
			fmt.Printf("Upgrade %s to level %d ends at %s\n",
				result.OperationID, result.TargetLevel, result.EndedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "Acting user id")
	cmd.Flags().IntVar(&gridID, "grid", 0, "Target grid cell id")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("grid")
	return cmd
}

func newStartTrainingCommand() *cobra.Command {
	var userID, gridID, unitID int
	var quantity int64

	cmd := &cobra.Command{
		Use:   "training",
		Short: "Start training units on a trainer building",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Mediator.Send(context.Background(), &lifecycleCmd.StartTrainingCommand{
				UserID:   userID,
				GridID:   gridID,
				UnitID:   unitID,
				Quantity: quantity,
			})
			if err != nil {
				return err
			}

			result := response.(*lifecycleCmd.StartTrainingResponse)
			fmt.Printf("Training %s ends at %s\n", result.OperationID, result.EndedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "Acting user id")
	cmd.Flags().IntVar(&gridID, "grid", 0, "Trainer grid cell id")
	cmd.Flags().IntVar(&unitID, "unit", 0, "Unit id to train")
	cmd.Flags().Int64Var(&quantity, "quantity", 0, "Number of units to train")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

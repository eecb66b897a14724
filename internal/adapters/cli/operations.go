package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	lifecycleCmd "github.com/cryptixcoder/galaxyofdrones-online/internal/application/lifecycle/commands"
	producerCmd "github.com/cryptixcoder/galaxyofdrones-online/internal/application/producer/commands"
	surfaceCmd "github.com/cryptixcoder/galaxyofdrones-online/internal/application/surface/commands"
	surfaceQuery "github.com/cryptixcoder/galaxyofdrones-online/internal/application/surface/queries"
)

// NewCancelCommand creates the cancel command
func NewCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <operation-id>",
		Short: "Cancel a pending construction, upgrade or training",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid operation id %q: %w", args[0], err)
			}

			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Mediator.Send(context.Background(), &lifecycleCmd.CancelOperationCommand{ID: id})
			if err != nil {
				return err
			}

			if response.(*lifecycleCmd.CancelOperationResponse).Cancelled {
				fmt.Println("Operation cancelled")
			} else {
				fmt.Println("No pending operation with that id")
			}
			return nil
		},
	}
}

// NewDemolishCommand creates the demolish command
func NewDemolishCommand() *cobra.Command {
	var gridID, levels int

	cmd := &cobra.Command{
		Use:   "demolish",
		Short: "Demolish levels of a cell's building",
		Long: `Demolish levels of a cell's building.

Without --levels the building is demolished completely. Buildings the
planet still requires are floored at level 1 instead of being removed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Mediator.Send(context.Background(), &surfaceCmd.DemolishBuildingCommand{
				GridID: gridID,
				Levels: levels,
			})
			if err != nil {
				return err
			}

			result := response.(*surfaceCmd.DemolishBuildingResponse)
			if !result.Demolished {
				fmt.Println("Cell has no building to demolish")
				return nil
			}
			if result.Level == 0 {
				fmt.Println("Building demolished, cell cleared")
			} else {
				fmt.Printf("Building reduced to level %d\n", result.Level)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&gridID, "grid", 0, "Target grid cell id")
	cmd.Flags().IntVar(&levels, "levels", 0, "Levels to demolish (0 = all)")
	_ = cmd.MarkFlagRequired("grid")
	return cmd
}

// NewExchangeCommand creates the producer exchange command
func NewExchangeCommand() *cobra.Command {
	var userID, gridID, resourceID int
	var quantity int64

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Exchange stocked resources for energy through a producer",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Mediator.Send(context.Background(), &producerCmd.ExchangeCommand{
				UserID:     userID,
				GridID:     gridID,
				ResourceID: resourceID,
				Quantity:   quantity,
			})
			if err != nil {
				return err
			}

			result := response.(*producerCmd.ExchangeResponse)
			fmt.Printf("Gained %d energy, %d stock remaining\n", result.EnergyGained, result.StockLeft)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "Acting user id")
	cmd.Flags().IntVar(&gridID, "grid", 0, "Producer grid cell id")
	cmd.Flags().IntVar(&resourceID, "resource", 0, "Resource id to exchange")
	cmd.Flags().Int64Var(&quantity, "quantity", 0, "Quantity to exchange")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

// NewConstructableCommand creates the constructable buildings query command
func NewConstructableCommand() *cobra.Command {
	var gridID int

	cmd := &cobra.Command{
		Use:   "constructable",
		Short: "List the buildings a cell may construct",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Mediator.Send(context.Background(), &surfaceQuery.ConstructableBuildingsQuery{
				GridID: gridID,
			})
			if err != nil {
				return err
			}

			result := response.(*surfaceQuery.ConstructableBuildingsResponse)
			if len(result.Buildings) == 0 {
				fmt.Println("No buildings can be constructed on this cell")
				return nil
			}
			for _, b := range result.Buildings {
				fmt.Printf("%3d  %-20s cost=%d time=%ds\n",
					b.ID, b.Name, b.ConstructionCost, b.ConstructionTime)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&gridID, "grid", 0, "Target grid cell id")
	_ = cmd.MarkFlagRequired("grid")
	return cmd
}

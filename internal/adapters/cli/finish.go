package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	lifecycleCmd "github.com/cryptixcoder/galaxyofdrones-online/internal/application/lifecycle/commands"
	"github.com/cryptixcoder/galaxyofdrones-online/internal/application/common"
)

// NewFinishCommand creates the finish command with per-kind subcommands
func NewFinishCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Finish pending constructions, upgrades or trainings",
		Long: `Finish pending constructions, upgrades or trainings.

Pass explicit operation ids, or --all to finish every pending record of
the kind regardless of its completion time. Unknown or already-finished
ids are reported and skipped.

Examples:
  galaxy finish construction --all
  galaxy finish upgrade 8f14e45f-ceea-4e07-8c3a-40bd9f2c1f11
  galaxy finish training id1 id2 id3`,
	}

	cmd.AddCommand(newFinishKindCommand("construction", func(ids []uuid.UUID, all bool) common.Request {
		return &lifecycleCmd.FinishConstructionCommand{IDs: ids, All: all}
	}))
	cmd.AddCommand(newFinishKindCommand("upgrade", func(ids []uuid.UUID, all bool) common.Request {
		return &lifecycleCmd.FinishUpgradeCommand{IDs: ids, All: all}
	}))
	cmd.AddCommand(newFinishKindCommand("training", func(ids []uuid.UUID, all bool) common.Request {
		return &lifecycleCmd.FinishTrainingCommand{IDs: ids, All: all}
	}))

	return cmd
}

func newFinishKindCommand(kind string, build func(ids []uuid.UUID, all bool) common.Request) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   kind + " [ids...]",
		Short: fmt.Sprintf("Finish pending %s operations", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("pass operation ids or --all")
			}

			ids, err := parseOperationIDs(args)
			if err != nil {
				return err
			}

			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Mediator.Send(context.Background(), build(ids, all))
			if err != nil {
				return err
			}

			batch := response.(*lifecycleCmd.BatchFinishResponse)
			for _, result := range batch.Results {
				fmt.Printf("%s: %s\n", result.ID, result.Outcome)
			}
			fmt.Printf("Finished %d of %d\n", batch.Finished(), len(batch.Results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Finish every pending operation of this kind")
	return cmd
}

func parseOperationIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid operation id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

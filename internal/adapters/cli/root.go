package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galaxy",
		Short: "Galaxy of Drones - planetary construction and training engine",
		Long: `Galaxy of Drones manages planetary construction, upgrades, unit
training and resource exchange.

Examples:
  galaxy migrate
  galaxy scheduler
  galaxy finish construction --all
  galaxy finish upgrade 8f14e45f-ceea-4e07-8c3a-40bd9f2c1f11
  galaxy start construction --user 1 --grid 42 --building 3
  galaxy demolish --grid 42 --levels 2
  galaxy exchange --user 1 --grid 42 --resource 2 --quantity 50
  galaxy constructable --grid 42`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to configuration file (default: search standard paths)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewMigrateCommand())
	rootCmd.AddCommand(NewSchedulerCommand())
	rootCmd.AddCommand(NewFinishCommand())
	rootCmd.AddCommand(NewStartCommand())
	rootCmd.AddCommand(NewCancelCommand())
	rootCmd.AddCommand(NewDemolishCommand())
	rootCmd.AddCommand(NewExchangeCommand())
	rootCmd.AddCommand(NewConstructableCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

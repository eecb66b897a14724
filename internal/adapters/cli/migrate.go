package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptixcoder/galaxyofdrones-online/internal/infrastructure/database"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := database.AutoMigrate(app.DB); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Println("Database schema is up to date")
			return nil
		},
	}
}

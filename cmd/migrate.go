package cmd

import (
	"fmt"

	"inventory-tracker/core/config"
	"inventory-tracker/core/database"
	"inventory-tracker/core/logger"
	"inventory-tracker/feature/inventory"

	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the inventory table.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := inventory.Migrate(db); err != nil {
			return err
		}

		missing, err := inventory.VerifySchema(db)
		if err != nil {
			return fmt.Errorf("failed to inspect schema: %w", err)
		}
		if len(missing) > 0 {
			return fmt.Errorf("schema still lacks columns: %v", missing)
		}

		l.Info("Schema is up to date")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

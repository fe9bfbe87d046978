package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/factogo/internal/wire"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect and migrate the database",
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long:  "Opening the database applies pending migrations; this command forces it and reports the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := wire.Manager().Get(context.Background())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		version, err := schemaVersion(database)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Database is at schema version %d\n", version)
		return nil
	},
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the database location and schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := wire.Config()

		database, err := wire.Manager().Get(context.Background())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		version, err := schemaVersion(database)
		if err != nil {
			return err
		}

		fmt.Printf("Database: %s\n", cfg.DatabasePath)
		fmt.Printf("Version:  %s\n", color.New(color.FgHiGreen).Sprintf("%d", version))
		return nil
	},
}

func schemaVersion(database *sql.DB) (int, error) {
	var version int
	row := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM db_versions")
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbStatusCmd)
}

// DBCmd returns the db command
func DBCmd() *cobra.Command {
	return dbCmd
}

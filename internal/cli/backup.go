package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/factogo/internal/wire"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and restore database backups",
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Copy the database into the backup directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := wire.BackupService().Export()
		if err != nil {
			return fmt.Errorf("failed to export backup: %w", err)
		}

		fmt.Printf("✓ Exported backup to %s\n", path)
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore [file]",
	Short: "Overwrite the database with a backup file",
	Long:  "Replaces the live database with the given backup. Runs on the file level; no connection is opened.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.BackupService().Restore(args[0]); err != nil {
			return fmt.Errorf("failed to restore backup: %w", err)
		}

		fmt.Printf("✓ Restored database from %s\n", args[0])
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}

// BackupCmd returns the backup command
func BackupCmd() *cobra.Command {
	return backupCmd
}

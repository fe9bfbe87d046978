package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/factogo/internal/cli"
	"github.com/example/factogo/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "factogo",
		Short:   "factogo - invoices, quotes, and delivery notes",
		Version: version.String(),
		Long: `factogo manages business documents for one or more stores.
Each store numbers its invoices, quotes, and delivery notes independently,
gap-free within a month. Data lives in a local SQLite database.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.StoreCmd())
	rootCmd.AddCommand(cli.DocumentCmd())
	rootCmd.AddCommand(cli.TemplateCmd())
	rootCmd.AddCommand(cli.SettingsCmd())
	rootCmd.AddCommand(cli.UserCmd())
	rootCmd.AddCommand(cli.DBCmd())
	rootCmd.AddCommand(cli.BackupCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

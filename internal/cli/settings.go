package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/factogo/internal/ports/secondary"
	"github.com/example/factogo/internal/wire"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage per-store company settings",
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a store's company settings (upsert)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		storeID, _ := cmd.Flags().GetInt64("store")
		if storeID == 0 {
			return fmt.Errorf("store id is required")
		}

		rec := &secondary.SettingsRecord{StoreID: storeID}
		if existing, err := wire.SettingsRepository().GetForStore(ctx, storeID); err == nil {
			rec = existing
		} else if !errors.Is(err, secondary.ErrNotFound) {
			return fmt.Errorf("failed to get settings: %w", err)
		}

		if cmd.Flags().Changed("company") {
			rec.CompanyName, _ = cmd.Flags().GetString("company")
		}
		if cmd.Flags().Changed("logo") {
			rec.Logo, _ = cmd.Flags().GetString("logo")
		}
		if cmd.Flags().Changed("manager") {
			rec.ManagerName, _ = cmd.Flags().GetString("manager")
		}
		if cmd.Flags().Changed("signature") {
			rec.Signature, _ = cmd.Flags().GetString("signature")
		}
		if cmd.Flags().Changed("stamp") {
			rec.Stamp, _ = cmd.Flags().GetString("stamp")
		}
		if cmd.Flags().Changed("description") {
			rec.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("informations") {
			rec.Informations, _ = cmd.Flags().GetString("informations")
		}

		if err := wire.SettingsRepository().Save(ctx, rec); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		fmt.Printf("✓ Saved settings for store %d\n", storeID)
		return nil
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a store's company settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		storeID, _ := cmd.Flags().GetInt64("store")
		if storeID == 0 {
			return fmt.Errorf("store id is required")
		}

		rec, err := wire.SettingsRepository().GetForStore(context.Background(), storeID)
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}

		fmt.Printf("Settings for store %d:\n", rec.StoreID)
		fmt.Printf("  Company: %s\n", rec.CompanyName)
		if rec.ManagerName != "" {
			fmt.Printf("  Manager: %s\n", rec.ManagerName)
		}
		if rec.Description != "" {
			fmt.Printf("  Description: %s\n", rec.Description)
		}
		if rec.Informations != "" {
			fmt.Printf("  Informations: %s\n", rec.Informations)
		}
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove a store's company settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		storeID, _ := cmd.Flags().GetInt64("store")
		if storeID == 0 {
			return fmt.Errorf("store id is required")
		}

		if err := wire.SettingsRepository().Clear(context.Background(), storeID); err != nil {
			return fmt.Errorf("failed to clear settings: %w", err)
		}

		fmt.Printf("✓ Cleared settings for store %d\n", storeID)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{settingsSetCmd, settingsShowCmd, settingsClearCmd} {
		c.Flags().Int64P("store", "s", 0, "Store ID")
	}

	settingsSetCmd.Flags().String("company", "", "Company name")
	settingsSetCmd.Flags().String("logo", "", "Logo URL")
	settingsSetCmd.Flags().String("manager", "", "Manager name")
	settingsSetCmd.Flags().String("signature", "", "Signature image URL")
	settingsSetCmd.Flags().String("stamp", "", "Stamp image URL")
	settingsSetCmd.Flags().String("description", "", "Company description")
	settingsSetCmd.Flags().String("informations", "", "Footer informations")

	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsClearCmd)
}

// SettingsCmd returns the settings command
func SettingsCmd() *cobra.Command {
	return settingsCmd
}

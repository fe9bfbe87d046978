package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/factogo/internal/ports/primary"
	"github.com/example/factogo/internal/ports/secondary"
	"github.com/example/factogo/internal/wire"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage stores",
	Long:  "Create, list, update, and archive stores; each store numbers its documents independently",
}

var storeCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		owner, _ := cmd.Flags().GetInt64("owner")
		if owner == 0 {
			owner = wire.Config().OwnerUserID
		}
		logo, _ := cmd.Flags().GetString("logo")
		signature, _ := cmd.Flags().GetString("signature")
		stamp, _ := cmd.Flags().GetString("stamp")
		templateID, _ := cmd.Flags().GetInt64("template")
		customTexts, _ := cmd.Flags().GetString("custom-texts")

		store, err := wire.StoreService().CreateStore(ctx, primary.CreateStoreRequest{
			OwnerUserID:        owner,
			Name:               args[0],
			LogoURL:            logo,
			SignatureURL:       signature,
			StampURL:           stamp,
			DocumentTemplateID: templateID,
			CustomTexts:        customTexts,
		})
		if err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}

		fmt.Printf("✓ Created store %d: %s\n", store.ID, store.Name)
		return nil
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var stores []*primary.Store
		var err error

		if cmd.Flags().Changed("owner") {
			owner, _ := cmd.Flags().GetInt64("owner")
			stores, err = wire.StoreService().ListStoresForUser(ctx, owner)
		} else {
			stores, err = wire.StoreService().ListActiveStores(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to list stores: %w", err)
		}

		if len(stores) == 0 {
			fmt.Println("No stores found.")
			return nil
		}

		fmt.Printf("Found %d store(s):\n\n", len(stores))
		for _, store := range stores {
			fmt.Printf("  %3d  %s\n", store.ID, store.Name)
		}
		return nil
	},
}

var storeShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a store, archived or not",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := wire.StoreService().GetStore(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get store: %w", err)
		}

		status := store.Status
		if status == secondary.StoreStatusArchived {
			status = color.New(color.FgYellow).Sprint(status)
		}
		fmt.Printf("Store %d: %s\n", store.ID, store.Name)
		fmt.Printf("  Owner:    %d\n", store.OwnerUserID)
		fmt.Printf("  Status:   %s\n", status)
		if store.DocumentTemplateID != 0 {
			fmt.Printf("  Template: %d\n", store.DocumentTemplateID)
		}
		if store.LogoURL != "" {
			fmt.Printf("  Logo:     %s\n", store.LogoURL)
		}
		return nil
	},
}

var storeUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a store's editable fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := wire.StoreService().GetStore(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get store: %w", err)
		}

		req := primary.UpdateStoreRequest{
			ID:                 store.ID,
			Name:               store.Name,
			LogoURL:            store.LogoURL,
			SignatureURL:       store.SignatureURL,
			StampURL:           store.StampURL,
			DocumentTemplateID: store.DocumentTemplateID,
			CustomTexts:        store.CustomTexts,
		}

		if cmd.Flags().Changed("name") {
			req.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("logo") {
			req.LogoURL, _ = cmd.Flags().GetString("logo")
		}
		if cmd.Flags().Changed("signature") {
			req.SignatureURL, _ = cmd.Flags().GetString("signature")
		}
		if cmd.Flags().Changed("stamp") {
			req.StampURL, _ = cmd.Flags().GetString("stamp")
		}
		if cmd.Flags().Changed("template") {
			req.DocumentTemplateID, _ = cmd.Flags().GetInt64("template")
		}
		if cmd.Flags().Changed("custom-texts") {
			req.CustomTexts, _ = cmd.Flags().GetString("custom-texts")
		}

		if err := wire.StoreService().UpdateStore(ctx, req); err != nil {
			return fmt.Errorf("failed to update store: %w", err)
		}

		fmt.Printf("✓ Updated store %d\n", id)
		return nil
	},
}

var storeArchiveCmd = &cobra.Command{
	Use:   "archive [id]",
	Short: "Archive a store (soft delete)",
	Long:  "Archived stores disappear from listings but their documents stay intact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.StoreService().ArchiveStore(ctx, id); err != nil {
			return fmt.Errorf("failed to archive store: %w", err)
		}

		fmt.Printf("✓ Archived store %d\n", id)
		return nil
	},
}

func init() {
	// store create flags
	storeCreateCmd.Flags().Int64("owner", 0, "Owner user ID (defaults to the configured user)")
	storeCreateCmd.Flags().String("logo", "", "Logo URL")
	storeCreateCmd.Flags().String("signature", "", "Signature image URL")
	storeCreateCmd.Flags().String("stamp", "", "Stamp image URL")
	storeCreateCmd.Flags().Int64("template", 0, "Document template ID")
	storeCreateCmd.Flags().String("custom-texts", "", "Custom texts (JSON)")

	// store list flags
	storeListCmd.Flags().Int64("owner", 0, "List only this user's stores")

	// store update flags
	storeUpdateCmd.Flags().String("name", "", "New name")
	storeUpdateCmd.Flags().String("logo", "", "New logo URL")
	storeUpdateCmd.Flags().String("signature", "", "New signature image URL")
	storeUpdateCmd.Flags().String("stamp", "", "New stamp image URL")
	storeUpdateCmd.Flags().Int64("template", 0, "New document template ID")
	storeUpdateCmd.Flags().String("custom-texts", "", "New custom texts (JSON)")

	// Register subcommands
	storeCmd.AddCommand(storeCreateCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeShowCmd)
	storeCmd.AddCommand(storeUpdateCmd)
	storeCmd.AddCommand(storeArchiveCmd)
}

// StoreCmd returns the store command
func StoreCmd() *cobra.Command {
	return storeCmd
}

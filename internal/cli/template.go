package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/factogo/internal/wire"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage document templates",
	Long:  "List, show, create, update, and delete the HTML templates documents render with",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := wire.TemplateService().ListTemplates(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}

		if len(templates) == 0 {
			fmt.Println("No templates found.")
			return nil
		}

		for _, tmpl := range templates {
			fmt.Printf("  %3d  %s\n", tmpl.ID, tmpl.Name)
		}
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a template's HTML content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		tmpl, err := wire.TemplateService().GetTemplate(context.Background(), id)
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}

		fmt.Printf("Template %d: %s\n", tmpl.ID, tmpl.Name)
		if tmpl.HTMLContent != "" {
			fmt.Println(tmpl.HTMLContent)
		}
		return nil
	},
}

var templateCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := templateContentFlag(cmd)
		if err != nil {
			return err
		}

		tmpl, err := wire.TemplateService().CreateTemplate(context.Background(), args[0], content)
		if err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		fmt.Printf("✓ Created template %d: %s\n", tmpl.ID, tmpl.Name)
		return nil
	},
}

var templateUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		tmpl, err := wire.TemplateService().GetTemplate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}

		name := tmpl.Name
		if cmd.Flags().Changed("name") {
			name, _ = cmd.Flags().GetString("name")
		}
		content := tmpl.HTMLContent
		if cmd.Flags().Changed("file") {
			content, err = templateContentFlag(cmd)
			if err != nil {
				return err
			}
		}

		if err := wire.TemplateService().UpdateTemplate(ctx, id, name, content); err != nil {
			return fmt.Errorf("failed to update template: %w", err)
		}

		fmt.Printf("✓ Updated template %d\n", id)
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.TemplateService().DeleteTemplate(context.Background(), id); err != nil {
			return fmt.Errorf("failed to delete template: %w", err)
		}

		fmt.Printf("✓ Deleted template %d\n", id)
		return nil
	},
}

func templateContentFlag(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file: %w", err)
	}
	return string(data), nil
}

func init() {
	templateCreateCmd.Flags().StringP("file", "f", "", "Read HTML content from this file")
	templateUpdateCmd.Flags().String("name", "", "New name")
	templateUpdateCmd.Flags().StringP("file", "f", "", "Read replacement HTML content from this file")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateUpdateCmd)
	templateCmd.AddCommand(templateDeleteCmd)
}

// TemplateCmd returns the template command
func TemplateCmd() *cobra.Command {
	return templateCmd
}

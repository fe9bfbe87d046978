package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/factogo/internal/ports/secondary"
	"github.com/example/factogo/internal/wire"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage application users",
}

var userAddCmd = &cobra.Command{
	Use:   "add [username]",
	Short: "Register a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			return fmt.Errorf("password is required")
		}

		id, err := wire.UserRepository().Create(context.Background(), &secondary.UserRecord{
			Username: args[0],
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("✓ Created user %d: %s\n", id, args[0])
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show [username]",
	Short: "Show a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := wire.UserRepository().GetByUsername(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		fmt.Printf("User %d: %s\n", user.ID, user.Username)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringP("password", "p", "", "Password")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userShowCmd)
}

// UserCmd returns the user command
func UserCmd() *cobra.Command {
	return userCmd
}

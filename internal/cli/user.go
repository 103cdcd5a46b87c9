package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/fitlog/internal/wire"
)

// UserCmd returns the user command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
		Long:  "Register and list users of the exercise log",
	}

	cmd.AddCommand(userAddCmd())
	cmd.AddCommand(userListCmd())

	return cmd
}

func userAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [username]",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.UserAdapter().Create(cmd.Context(), args[0])
		},
	}
}

func userListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.UserAdapter().List(cmd.Context())
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeeper/internal/app"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, false, func(a *app.App) error {
				for _, r := range a.Passwords.Passwords() {
					fmt.Fprintln(cmd.OutOrStdout(), r.Label)
				}
				return nil
			})
		},
	}
}

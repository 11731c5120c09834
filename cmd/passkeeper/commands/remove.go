package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"passkeeper/internal/app"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <label>",
		Aliases: []string{"rm"},
		Short:   "Delete a label",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, true, func(a *app.App) error {
				if !a.Passwords.RemovePassword(args[0]) {
					return errors.Errorf("no entry for %q", args[0])
				}
				return nil
			})
		},
	}
}

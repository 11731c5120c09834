package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"passkeeper/internal/app"
)

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <label> <secret>",
		Short: "Replace the secret of an existing label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate(args[0], args[1]); err != nil {
				return err
			}
			return withStore(cmd, true, func(a *app.App) error {
				if !a.Passwords.UpdatePassword(args[0], args[1]) {
					return errors.Errorf("no entry for %q", args[0])
				}
				return nil
			})
		},
	}
}

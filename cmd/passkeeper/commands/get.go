package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"passkeeper/internal/app"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <label>",
		Short: "Print the secret for a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, false, func(a *app.App) error {
				r, ok := a.Passwords.Find(args[0])
				if !ok {
					return errors.Errorf("no entry for %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), r.Secret)
				return nil
			})
		},
	}
}

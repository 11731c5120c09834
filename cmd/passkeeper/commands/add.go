package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"passkeeper/internal/app"
	"passkeeper/internal/crypto"
	"passkeeper/internal/store"
)

func addCmd() *cobra.Command {
	var generate int

	cmd := &cobra.Command{
		Use:   "add <label> [secret]",
		Short: "Add a secret under a new label",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := args[0]
			var secret string
			switch {
			case len(args) == 2 && generate > 0:
				return errors.New("give a secret or --generate, not both")
			case len(args) == 2:
				secret = args[1]
			case generate > 0:
				s, err := crypto.GenerateSecret(generate)
				if err != nil {
					return err
				}
				secret = s
			default:
				return errors.New("secret required (or --generate N)")
			}
			if err := validate(label, secret); err != nil {
				return err
			}

			return withStore(cmd, true, func(a *app.App) error {
				if !a.Passwords.AddPassword(label, secret) {
					return errors.Errorf("%q already exists; use update", label)
				}
				if generate > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), secret)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&generate, "generate", "g", 0, "generate a random secret of this length")
	return cmd
}

func validate(label, secret string) error {
	if err := store.ValidateField("label", label); err != nil {
		return err
	}
	return store.ValidateField("secret", secret)
}

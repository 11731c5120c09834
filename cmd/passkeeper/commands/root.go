package commands

import (
	"github.com/spf13/cobra"

	"passkeeper/internal/app"
)

var (
	home       string
	file       string
	kdfName    string
	cipherName string
	verbose    bool
	passphrase string

	wire *app.Wire
)

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	defaults := app.Defaults()

	root := &cobra.Command{
		Use:          "passkeeper",
		Short:        "Local encrypted label/secret store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config{
				Home:    home,
				File:    file,
				KDF:     kdfName,
				Cipher:  cipherName,
				Verbose: verbose,
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&home, "home", defaults.Home, "store directory (env "+app.HomeEnv+")")
	flags.StringVar(&file, "file", defaults.File, "store file name inside --home")
	flags.StringVar(&kdfName, "kdf", defaults.KDF, "key derivation: scrypt, argon2id or pbkdf2")
	flags.StringVar(&cipherName, "cipher", defaults.Cipher, "cipher: aes-cbc or chacha20poly1305")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	flags.StringVarP(&passphrase, "passphrase", "p", "", "master passphrase (prompted when empty)")

	root.AddCommand(listCmd(), getCmd(), addCmd(), updateCmd(), removeCmd())
	return root
}

// withStore unlocks and loads the store, runs fn, and commits if commit is
// set. The store is scrubbed from memory on return.
func withStore(cmd *cobra.Command, commit bool, fn func(a *app.App) error) error {
	pass, err := readPassphrase(cmd)
	if err != nil {
		return err
	}

	a := app.New(wire.Passwords)
	defer a.Close()

	if err := a.Open(pass); err != nil {
		return err
	}
	if err := fn(a); err != nil {
		return err
	}
	if commit {
		return a.Commit()
	}
	return nil
}

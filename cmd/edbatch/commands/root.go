package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"edbatch/internal/app"
)

var (
	home       string
	passphrase string
	appWire    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "edbatch",
		Short: "Sign and verify data with the legacy edwards25519-sha512-batch scheme",
		Long: "edbatch signs and verifies data with the deprecated " +
			"edwards25519-sha512-batch scheme. The scheme is retained only for " +
			"compatibility with previously signed data; use Ed25519 for anything new.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".edbatch")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			appWire, err = app.NewWire(app.Config{Home: home})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "keystore dir (default ~/.edbatch)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the secret key")

	root.AddCommand(keygenCmd(), signCmd(), openCmd(), fingerprintCmd())
	return root.Execute()
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a keypair and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			_, fp, err := appWire.Ring.Generate(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Keypair created.\nFingerprint: %s\n", fp)
			return nil
		},
	}
}

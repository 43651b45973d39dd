package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with the stored secret key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			message, err := readInput(in)
			if err != nil {
				return err
			}
			signed, err := appWire.Ring.Sign(passphrase, message)
			if err != nil {
				return err
			}
			return writeOutput(out, signed)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "message file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "signed output file (default stdout)")
	return cmd
}

// readInput reads the named file, or stdin when path is empty.
func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes to the named file, or stdout when path is empty.
func writeOutput(path string, b []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

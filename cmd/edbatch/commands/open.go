package commands

import (
	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Verify a signed blob and recover the message",
		RunE: func(cmd *cobra.Command, args []string) error {
			signed, err := readInput(in)
			if err != nil {
				return err
			}
			message, err := appWire.Ring.Open(signed)
			if err != nil {
				return err
			}
			return writeOutput(out, message)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "signed blob file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "recovered message file (default stdout)")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftedsignal/maec"
)

func init() {
	cmd := &cobra.Command{
		Use:   "id <kind>",
		Short: "Mint a MAEC identifier for a kind",
		Long:  "Print a fresh identifier of the form kind--uuid, e.g. 'maec id malware-family'.",
		Args:  cobra.ExactArgs(1),
		RunE:  runID,
	}
	RootCmd.AddCommand(cmd)
}

func runID(cmd *cobra.Command, args []string) error {
	id := maec.GenerateID(args[0])
	if !maec.ValidID(id) {
		return fmt.Errorf("kind %q cannot appear in an identifier", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

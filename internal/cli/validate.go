package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftedsignal/maec"
	"github.com/craftedsignal/maec/internal/log"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a MAEC package document",
		Long:  "Decode a MAEC 5.0 JSON package and check its invariants. Use '-' to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	RootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	pkg, err := maec.DecodePackage(data)
	if err != nil {
		log.ErrorErr(log.CatDecode, "package rejected", err, "input", args[0])
		return fmt.Errorf("%s: %w", args[0], err)
	}

	log.Info(log.CatDecode, "package accepted", "id", pkg.ID, "objects", len(pkg.Objects))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid MAEC %s package (%d objects, %d relationships)\n",
		pkg.ID, pkg.SchemaVersion, len(pkg.Objects), len(pkg.Relationships))
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craftedsignal/maec"
)

func init() {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize the contents of a MAEC package",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	RootCmd.AddCommand(cmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	pkg, err := maec.DecodePackage(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "id:              %s\n", pkg.ID)
	fmt.Fprintf(out, "schema_version:  %s\n", pkg.SchemaVersion)
	fmt.Fprintf(out, "created:         %s\n", pkg.Created.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintf(out, "modified:        %s\n", pkg.Modified.Format("2006-01-02T15:04:05Z07:00"))
	if pkg.CreatedByRef != "" {
		fmt.Fprintf(out, "created_by_ref:  %s\n", pkg.CreatedByRef)
	}
	fmt.Fprintf(out, "families:        %d\n", len(pkg.MalwareFamilies()))
	fmt.Fprintf(out, "instances:       %d\n", len(pkg.MalwareInstances()))
	fmt.Fprintf(out, "behaviors:       %d\n", len(pkg.Behaviors()))
	fmt.Fprintf(out, "actions:         %d\n", len(pkg.MalwareActions()))
	fmt.Fprintf(out, "collections:     %d\n", len(pkg.Collections()))
	fmt.Fprintf(out, "relationships:   %d\n", len(pkg.Relationships))

	for _, obj := range pkg.Objects {
		header := obj.CommonHeader()
		fmt.Fprintf(out, "  %s\n", header.ID)
	}
	return nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/craftedsignal/maec/internal/author"
	"github.com/craftedsignal/maec/internal/log"
)

func init() {
	cmd := &cobra.Command{
		Use:   "compile <brief.yaml>",
		Short: "Compile a YAML brief into a MAEC package",
		Long:  "Read an analyst-written YAML brief, mint MAEC identifiers, resolve relationship names, and emit a validated MAEC 5.0 JSON package.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}
	cmd.Flags().StringP("output", "o", "", "write the package to this file instead of stdout")
	RootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	pkg, err := author.CompileFile(args[0])
	if err != nil {
		log.ErrorErr(log.CatCompile, "brief rejected", err, "input", args[0])
		return err
	}
	log.Info(log.CatCompile, "brief compiled", "id", pkg.ID, "objects", len(pkg.Objects))

	var data []byte
	if viper.GetBool("pretty") {
		data, err = pkg.EncodeIndent()
	} else {
		data, err = pkg.Encode()
	}
	if err != nil {
		return err
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		return os.WriteFile(output, append(data, '\n'), 0644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

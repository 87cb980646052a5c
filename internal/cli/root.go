// Package cli implements the maec CLI commands.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/craftedsignal/maec/internal/log"
)

var (
	version = "dev"
	cfgFile string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:     "maec",
	Short:   "Work with MAEC 5.0 malware characterization packages",
	Long:    "Validate, inspect, and produce MAEC 5.0 packages: the JSON exchange format for malware families, instances, behaviors, and actions.",
	Version: version,
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/maec/config.yaml)")
	RootCmd.PersistentFlags().Bool("pretty", false,
		"indent JSON output")
	RootCmd.PersistentFlags().String("log-file", "",
		"append structured logs to this file")

	_ = viper.BindPFlag("pretty", RootCmd.PersistentFlags().Lookup("pretty"))
	_ = viper.BindPFlag("log_file", RootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	viper.SetDefault("pretty", false)
	viper.SetDefault("log_file", "")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "maec"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Missing config files are fine; defaults apply.
	_ = viper.ReadInConfig()

	if path := viper.GetString("log_file"); path != "" {
		if _, err := log.Init(path); err == nil {
			log.Info(log.CatCLI, "logging started", "path", path)
		}
	}
}

// readInput reads a document from a file path, or from stdin when the
// path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

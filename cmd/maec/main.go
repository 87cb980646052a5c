package main

import (
	"os"

	"github.com/craftedsignal/maec/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"

	"github.com/indaco/cmakemin/internal/cli"
	"github.com/indaco/cmakemin/internal/config"
	"github.com/indaco/cmakemin/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError("Error: " + err.Error())
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command.
func runCLI(args []string) error {
	cfg, err := config.Load(config.DefaultConfigFile)
	if err != nil {
		return err
	}

	return cli.New(cfg).Run(context.Background(), args)
}

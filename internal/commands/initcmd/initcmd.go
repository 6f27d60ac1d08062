// Package initcmd implements the "init" command, creating the
// .cmakemin.yaml configuration file.
package initcmd

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/cmakemin/internal/config"
	"github.com/indaco/cmakemin/internal/printer"
	"github.com/indaco/cmakemin/internal/tui"
	"github.com/urfave/cli/v3"
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a .cmakemin.yaml configuration file",
		UsageText: "cmakemin init [--force]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd)
		},
	}
}

func runInitCmd(_ context.Context, cmd *cli.Command) error {
	path := config.DefaultConfigFile

	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		if !tui.IsInteractive() {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		overwrite, err := tui.Confirm(
			fmt.Sprintf("%s already exists. Overwrite?", path),
			"The current configuration will be replaced.",
		)
		if err != nil {
			return err
		}
		if !overwrite {
			printer.PrintInfo("Aborted.")
			return nil
		}
	}

	cfg := config.Default()

	// Prompt for the common settings when a human is attached; in
	// scripts and CI the defaults are written as-is.
	if tui.IsInteractive() {
		if err := tui.Input(
			"Tools directory",
			"Directory holding the unpacked CMake releases to probe.",
			&cfg.ToolsDirectory,
		); err != nil {
			return err
		}

		latestPatch, err := tui.Confirm(
			"Latest patches only?",
			"Probe only the highest patch release per minor version.",
		)
		if err != nil {
			return err
		}
		cfg.LatestPatch = latestPatch
	}

	if err := config.Save(cfg, path); err != nil {
		return err
	}

	printer.PrintSuccess("Created " + path)
	return nil
}

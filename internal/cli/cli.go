// Package cli wires the cmakemin root command and its subcommands.
package cli

import (
	"context"
	"fmt"

	"github.com/indaco/cmakemin/internal/commands/initcmd"
	"github.com/indaco/cmakemin/internal/commands/listcmd"
	"github.com/indaco/cmakemin/internal/commands/scancmd"
	"github.com/indaco/cmakemin/internal/commands/searchcmd"
	"github.com/indaco/cmakemin/internal/config"
	"github.com/indaco/cmakemin/internal/printer"
	"github.com/indaco/cmakemin/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the cmakemin cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "cmakemin",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Find the minimal CMake version a project really needs",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "tools-directory",
				Aliases:     []string{"t"},
				Usage:       "Path to the unpacked CMake releases",
				Value:       cfg.ToolsDirectory,
				DefaultText: "tools",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag || cfg.NoColor)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			searchcmd.Run(cfg),
			scancmd.Run(cfg),
			listcmd.Run(cfg),
			initcmd.Run(),
		},
	}
}

// Package scancmd implements the "scan" command: a linear sweep over
// every installed CMake version. Slower than bisection but observes
// every candidate, so it also works for projects whose compatibility is
// not monotonic in version order.
package scancmd

import (
	"context"

	"github.com/indaco/cmakemin/internal/clix"
	"github.com/indaco/cmakemin/internal/commands/searchcmd"
	"github.com/indaco/cmakemin/internal/config"
	"github.com/indaco/cmakemin/internal/operations"
	"github.com/urfave/cli/v3"
)

// Run returns the "scan" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Probe every installed CMake version in ascending order",
		UsageText: "cmakemin scan [options] [project-dir]",
		Flags:     clix.SearchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return searchcmd.Execute(ctx, cmd, cfg, operations.ModeLinear)
		},
	}
}

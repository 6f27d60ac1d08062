// Package searchcmd implements the "search" command: bisection over the
// installed CMake versions to find the minimal one that configures a
// project.
package searchcmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/cmakemin/internal/catalog"
	"github.com/indaco/cmakemin/internal/clix"
	"github.com/indaco/cmakemin/internal/config"
	"github.com/indaco/cmakemin/internal/operations"
	"github.com/indaco/cmakemin/internal/printer"
	"github.com/urfave/cli/v3"
)

// Exit codes distinguishable by automated callers. Setup failures
// (missing project, empty catalog, untestable boundary) exit 1 through
// the regular error path.
const exitNoWorkingVersion = 2

// Run returns the "search" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find the minimal working CMake version via bisection",
		UsageText: "cmakemin search [options] [project-dir]",
		Flags:     clix.SearchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return Execute(ctx, cmd, cfg, operations.ModeBisect)
		},
	}
}

// Execute runs a search command with the given mode. Shared with the
// scan command, which differs only in probing strategy.
func Execute(ctx context.Context, cmd *cli.Command, cfg *config.Config, mode operations.Mode) error {
	project := cmd.Args().First()
	if project == "" {
		project = "."
	}
	if info, err := os.Stat(project); err != nil || !info.IsDir() {
		return fmt.Errorf("project directory %q not found", project)
	}

	opts, err := clix.ResolveSearchOptions(cmd, cfg)
	if err != nil {
		return err
	}

	cat, err := clix.BuildCatalog(opts)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyCatalog) {
			return fmt.Errorf("no CMake versions found in %q; unpack candidate releases there first", opts.ToolsDir)
		}
		return err
	}

	printer.PrintFaint(fmt.Sprintf("Found %d CMake binaries from directory %s\n", cat.Count(), opts.ToolsDir))

	result := operations.RunSearch(ctx, cat, project, opts.TrialArgs, mode)
	if !result.Found {
		if result.BoundaryInconclusive() {
			// Environment failure, not a verdict: regular error exit.
			return errors.New("the highest candidate could not be tested")
		}
		return cli.Exit("", exitNoWorkingVersion)
	}
	return nil
}

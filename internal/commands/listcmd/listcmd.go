// Package listcmd implements the "list" command, showing the CMake
// versions discovered in the tools directory.
package listcmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/indaco/cmakemin/internal/catalog"
	"github.com/indaco/cmakemin/internal/clix"
	"github.com/indaco/cmakemin/internal/config"
	"github.com/indaco/cmakemin/internal/discovery"
	"github.com/indaco/cmakemin/internal/printer"
	"github.com/indaco/cmakemin/internal/tui"
	"github.com/urfave/cli/v3"
)

// Run returns the "list" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the CMake versions available for testing",
		UsageText: "cmakemin list [options]",
		Flags:     clix.SearchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runListCmd(ctx, cmd, cfg)
		},
	}
}

func runListCmd(_ context.Context, cmd *cli.Command, cfg *config.Config) error {
	opts, err := clix.ResolveSearchOptions(cmd, cfg)
	if err != nil {
		return err
	}

	var candidates []catalog.Candidate
	var scanErr error
	scan := func() {
		candidates, scanErr = discovery.Discover(opts.ToolsDir, opts.Discovery)
	}

	if tui.IsInteractive() {
		if err := spinner.New().Title("Scanning " + opts.ToolsDir + "...").Action(scan).Run(); err != nil {
			return err
		}
	} else {
		scan()
	}
	if scanErr != nil {
		return scanErr
	}

	if len(candidates) == 0 {
		printer.PrintWarning(fmt.Sprintf("No CMake versions found in %q.", opts.ToolsDir))
		return nil
	}

	printer.PrintBold(fmt.Sprintf("%d CMake version(s) in %s:", len(candidates), opts.ToolsDir))
	for _, cand := range candidates {
		fmt.Printf("  %-12s %s\n", cand.Version, printer.Faint(cand.BinaryPath))
	}
	return nil
}

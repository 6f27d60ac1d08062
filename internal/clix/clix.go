// Package clix provides helpers shared by the CLI commands: flag
// resolution against the loaded configuration and catalog construction
// from the tools directory.
package clix

import (
	"fmt"

	"github.com/indaco/cmakemin/internal/catalog"
	"github.com/indaco/cmakemin/internal/config"
	"github.com/indaco/cmakemin/internal/discovery"
	"github.com/indaco/cmakemin/internal/semver"
	"github.com/urfave/cli/v3"
)

// SearchOptions is the fully resolved input for a search-style command:
// config values overridden by command-line flags.
type SearchOptions struct {
	ToolsDir  string
	Discovery discovery.Options
	TrialArgs []string
}

// ResolveSearchOptions merges the configuration with the command's flags.
// Flags win over config values.
func ResolveSearchOptions(cmd *cli.Command, cfg *config.Config) (*SearchOptions, error) {
	opts := &SearchOptions{
		ToolsDir:  cfg.ToolsDirectory,
		TrialArgs: cfg.TrialArgs,
		Discovery: discovery.Options{
			LatestPatchOnly: cfg.LatestPatch,
		},
	}

	if dir := cmd.String("tools-directory"); dir != "" {
		opts.ToolsDir = dir
	}
	if cmd.Bool("latest-patch") {
		opts.Discovery.LatestPatchOnly = true
	}
	if cmd.Bool("rc") {
		opts.Discovery.IncludeRCs = true
	}
	if len(cmd.StringSlice("trial-arg")) > 0 {
		opts.TrialArgs = cmd.StringSlice("trial-arg")
	}

	if s := cmd.String("min-version"); s != "" {
		v, err := semver.ParseVersion(s)
		if err != nil {
			return nil, fmt.Errorf("invalid --min-version: %w", err)
		}
		opts.Discovery.MinVersion = &v
	}
	if s := cmd.String("max-version"); s != "" {
		v, err := semver.ParseVersion(s)
		if err != nil {
			return nil, fmt.Errorf("invalid --max-version: %w", err)
		}
		opts.Discovery.MaxVersion = &v
	}

	return opts, nil
}

// BuildCatalog discovers installed CMake versions and assembles the
// search catalog. An empty tools directory surfaces as
// catalog.ErrEmptyCatalog.
func BuildCatalog(opts *SearchOptions) (*catalog.Catalog, error) {
	candidates, err := discovery.Discover(opts.ToolsDir, opts.Discovery)
	if err != nil {
		return nil, err
	}
	return catalog.New(candidates)
}

// SearchFlags returns the flags shared by the search and scan commands.
func SearchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "latest-patch",
			Usage: "Only consider the latest patch release per minor version",
		},
		&cli.BoolFlag{
			Name:  "rc",
			Usage: "Also consider release candidates",
		},
		&cli.StringFlag{
			Name:  "min-version",
			Usage: "Only consider versions greater or equal than `VERSION`",
		},
		&cli.StringFlag{
			Name:  "max-version",
			Usage: "Only consider versions less or equal than `VERSION`",
		},
		&cli.StringSliceFlag{
			Name:  "trial-arg",
			Usage: "Extra argument passed to cmake on every trial (repeatable)",
		},
	}
}

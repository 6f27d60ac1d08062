package clix

import (
	"context"
	"testing"

	"github.com/indaco/cmakemin/internal/config"
	"github.com/urfave/cli/v3"
)

// resolve parses args through a command carrying the search flags and
// returns the resolved options.
func resolve(t *testing.T, cfg *config.Config, args ...string) (*SearchOptions, error) {
	t.Helper()

	var opts *SearchOptions
	var resolveErr error
	app := &cli.Command{
		Name: "cmakemin",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tools-directory", Aliases: []string{"t"}, Value: cfg.ToolsDirectory},
		},
		Commands: []*cli.Command{
			{
				Name:  "search",
				Flags: SearchFlags(),
				Action: func(_ context.Context, cmd *cli.Command) error {
					opts, resolveErr = ResolveSearchOptions(cmd, cfg)
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), append([]string{"cmakemin"}, args...)); err != nil {
		t.Fatal(err)
	}
	return opts, resolveErr
}

func TestResolveSearchOptions_Defaults(t *testing.T) {
	cfg := &config.Config{ToolsDirectory: "cfg-tools", TrialArgs: []string{"-GNinja"}}

	opts, err := resolve(t, cfg, "search")
	if err != nil {
		t.Fatal(err)
	}

	if opts.ToolsDir != "cfg-tools" {
		t.Errorf("ToolsDir = %q, want config value", opts.ToolsDir)
	}
	if len(opts.TrialArgs) != 1 || opts.TrialArgs[0] != "-GNinja" {
		t.Errorf("TrialArgs = %v, want config value", opts.TrialArgs)
	}
	if opts.Discovery.LatestPatchOnly || opts.Discovery.IncludeRCs {
		t.Errorf("unexpected discovery filters: %+v", opts.Discovery)
	}
}

func TestResolveSearchOptions_FlagsOverrideConfig(t *testing.T) {
	cfg := &config.Config{ToolsDirectory: "cfg-tools", TrialArgs: []string{"-GNinja"}}

	opts, err := resolve(t, cfg,
		"-t", "flag-tools",
		"search", "--latest-patch", "--rc",
		"--min-version", "3.5", "--max-version", "3.20",
		"--trial-arg", "-DFOO=1", "--trial-arg", "-DBAR=2",
	)
	if err != nil {
		t.Fatal(err)
	}

	if opts.ToolsDir != "flag-tools" {
		t.Errorf("ToolsDir = %q, want flag value", opts.ToolsDir)
	}
	if !opts.Discovery.LatestPatchOnly || !opts.Discovery.IncludeRCs {
		t.Errorf("discovery filters not set: %+v", opts.Discovery)
	}
	if opts.Discovery.MinVersion == nil || opts.Discovery.MinVersion.String() != "3.5.0" {
		t.Errorf("MinVersion = %v, want 3.5.0", opts.Discovery.MinVersion)
	}
	if opts.Discovery.MaxVersion == nil || opts.Discovery.MaxVersion.String() != "3.20.0" {
		t.Errorf("MaxVersion = %v, want 3.20.0", opts.Discovery.MaxVersion)
	}
	if len(opts.TrialArgs) != 2 || opts.TrialArgs[1] != "-DBAR=2" {
		t.Errorf("TrialArgs = %v, want flag values", opts.TrialArgs)
	}
}

func TestResolveSearchOptions_InvalidBounds(t *testing.T) {
	cfg := config.Default()

	if _, err := resolve(t, cfg, "search", "--min-version", "nope"); err == nil {
		t.Error("expected error for invalid --min-version")
	}
	if _, err := resolve(t, cfg, "search", "--max-version", "nope"); err == nil {
		t.Error("expected error for invalid --max-version")
	}
}

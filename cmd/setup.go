package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/whirl-cli/whirl/internal/config"
	"github.com/whirl-cli/whirl/internal/fileutil"
	"github.com/whirl-cli/whirl/internal/logger"
	"github.com/whirl-cli/whirl/internal/spinner"
)

// setup loads the configuration, builds the logger and assembles the
// spinner registry (built-ins plus the optional user definitions file).
// The returned context carries the logger.
func setup(ctx context.Context) (context.Context, *config.Config, *spinner.Registry, error) {
	loader := config.NewConfigLoader(viper.New(), config.WithConfigFile(cfgFile))
	cfg, err := loader.Load()
	if err != nil {
		return ctx, nil, nil, err
	}

	if debug {
		cfg.Debug = true
	}
	if quiet {
		cfg.Quiet = true
	}

	var opts []logger.Option
	if cfg.Debug {
		opts = append(opts, logger.WithDebug())
	}
	if cfg.Quiet {
		opts = append(opts, logger.WithQuiet())
	}
	opts = append(opts, logger.WithFormat(cfg.LogFormat))

	lg := logger.NewLogger(opts...)
	ctx = logger.WithLogger(ctx, lg)

	for _, w := range cfg.Warnings {
		lg.Warn(w)
	}

	reg, err := buildRegistry(ctx, cfg)
	if err != nil {
		return ctx, nil, nil, err
	}

	return ctx, cfg, reg, nil
}

// buildRegistry clones the built-in registry and merges the user
// definitions file over it, if one is configured.
func buildRegistry(ctx context.Context, cfg *config.Config) (*spinner.Registry, error) {
	builtin, err := spinner.Builtin()
	if err != nil {
		return nil, err
	}

	reg := builtin.Clone()
	if cfg.SpinnersFile == "" {
		return reg, nil
	}

	if !fileutil.FileExists(cfg.SpinnersFile) {
		return nil, fmt.Errorf("spinner definitions file does not exist: %s", cfg.SpinnersFile)
	}
	if err := reg.LoadFile(cfg.SpinnersFile, cfg.Matching); err != nil {
		return nil, fmt.Errorf("failed to load spinner definitions: %w", err)
	}
	logger.Debug(ctx, "Loaded spinner definitions", "file", cfg.SpinnersFile, "matching", cfg.Matching.String())

	return reg, nil
}

// lookupSpinner resolves the spinner to animate: the --spinner flag when
// given, the configured default otherwise. A configured interval override
// replaces the definition's own frame period.
func lookupSpinner(cfg *config.Config, reg *spinner.Registry, flagName string) (spinner.Spinner, error) {
	name := flagName
	if name == "" {
		name = cfg.Spinner
	}

	sp, err := reg.Lookup(name)
	if err != nil {
		return spinner.Spinner{}, err
	}

	if cfg.Interval > 0 {
		sp.IntervalMS = int(cfg.Interval.Milliseconds())
	}
	return sp, nil
}

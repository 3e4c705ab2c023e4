// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MartinLundqvist/wine-app-sub000/internal/config"
	"github.com/MartinLundqvist/wine-app-sub000/internal/confusion"
	"github.com/MartinLundqvist/wine-app-sub000/internal/logging"
)

// rootOptions holds the persistent flags and the configuration they produce.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "confusion",
		Short: "Build wine style confusion groups from a catalog snapshot",
		Long: `confusion picks, for a target wine style, the styles a taster is most
likely to mistake it for: an evil twin, a structural match and a
directional match, each with an explanation of how to tell them apart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (json or console)")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newBatchCmd(opts),
		newValidateCmd(opts),
	)
	return cmd
}

// setup loads configuration, applies flag overrides and initializes logging.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.logLevel != "" {
		if !logging.ValidLevel(o.logLevel) {
			return fmt.Errorf("invalid --log-level %q", o.logLevel)
		}
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		if o.logFormat != "json" && o.logFormat != "console" {
			return fmt.Errorf("invalid --log-format %q (want json or console)", o.logFormat)
		}
		cfg.Logging.Format = o.logFormat
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})

	ctx := logging.ContextWithLogger(cmd.Context(), logging.WithComponent("cli"))
	ctx = logging.ContextWithNewRunID(ctx)
	cmd.SetContext(ctx)

	logging.Ctx(ctx).Debug().
		Str("command", cmd.Name()).
		Str("log_level", cfg.Logging.Level).
		Int("workers", cfg.Drills.Workers).
		Msg("Configuration loaded")

	o.cfg = cfg
	return nil
}

// difficulty resolves the --difficulty flag, falling back to the configured default.
func (o *rootOptions) difficulty(flag string) (confusion.Difficulty, error) {
	if flag == "" {
		flag = o.cfg.Drills.Difficulty
	}
	return confusion.ParseDifficulty(flag)
}

// newEngine builds the engine from configuration. A non-empty now pins the
// GeneratedAt clock.
func (o *rootOptions) newEngine(now string) (*confusion.Engine, error) {
	var engineOpts []confusion.Option
	if now != "" {
		t, err := time.Parse(time.RFC3339, now)
		if err != nil {
			return nil, fmt.Errorf("invalid --now %q: %w", now, err)
		}
		engineOpts = append(engineOpts, confusion.WithClock(func() time.Time { return t }))
	}
	return confusion.NewEngine(o.cfg.ToEngineConfig(), logging.Logger(), engineOpts...)
}

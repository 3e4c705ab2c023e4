// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MartinLundqvist/wine-app-sub000/internal/drills"
	"github.com/MartinLundqvist/wine-app-sub000/internal/logging"
	"github.com/MartinLundqvist/wine-app-sub000/internal/metrics"
)

type batchOptions struct {
	catalogPath string
	targets     []string
	difficulty  string
	workers     int
	metricsFile string
	now         string
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Build confusion groups for every style in a catalog",
		Long: `batch runs the engine for every style in the snapshot, or for the styles
named with --target, and prints the groups in catalog order followed by a
summary. Interrupting the command prints the groups that completed.`,
		Example: `  confusion batch --catalog catalog.json --difficulty medium --workers 8
  confusion batch --catalog catalog.json --target barolo --target chablis --metrics-file confusion.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "catalog snapshot JSON file")
	cmd.Flags().StringSliceVar(&opts.targets, "target", nil, "restrict the batch to these style IDs (repeatable)")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "easy, medium or hard (default from config)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "concurrent targets (default from config)")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file (default from config)")
	cmd.Flags().StringVar(&opts.now, "now", "", "fixed RFC 3339 timestamp for generatedAt")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func runBatch(cmd *cobra.Command, root *rootOptions, opts *batchOptions) error {
	difficulty, err := root.difficulty(opts.difficulty)
	if err != nil {
		return err
	}
	snap, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}
	for _, id := range opts.targets {
		if _, err := snap.Find(id); err != nil {
			return err
		}
	}
	engine, err := root.newEngine(opts.now)
	if err != nil {
		return err
	}

	workers := opts.workers
	if workers <= 0 {
		workers = root.cfg.Drills.Workers
	}
	builder, err := drills.NewBuilder(engine, workers, logging.Logger())
	if err != nil {
		return err
	}

	batch, buildErr := builder.Build(cmd.Context(), snap, opts.targets, difficulty)
	if batch != nil {
		if err := writeJSON(cmd.OutOrStdout(), batch); err != nil {
			return err
		}
	}

	metricsFile := opts.metricsFile
	if metricsFile == "" {
		metricsFile = root.cfg.Metrics.TextfilePath
	}
	if metricsFile != "" {
		if err := metrics.WriteTextfile(metricsFile); err != nil {
			return errors.Join(buildErr, err)
		}
		logging.Ctx(cmd.Context()).Debug().Str("path", metricsFile).Msg("Metrics written")
	}

	return buildErr
}

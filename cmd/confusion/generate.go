// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/MartinLundqvist/wine-app-sub000/internal/logging"
	"github.com/MartinLundqvist/wine-app-sub000/internal/metrics"
)

type generateOptions struct {
	catalogPath string
	target      string
	difficulty  string
	now         string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the confusion group for one target style",
		Example: `  confusion generate --catalog catalog.json --target barolo --difficulty hard
  confusion generate --catalog catalog.json --target chablis --now 2026-03-14T09:30:00Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "catalog snapshot JSON file")
	cmd.Flags().StringVar(&opts.target, "target", "", "target style ID")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "easy, medium or hard (default from config)")
	cmd.Flags().StringVar(&opts.now, "now", "", "fixed RFC 3339 timestamp for generatedAt")
	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	difficulty, err := root.difficulty(opts.difficulty)
	if err != nil {
		return err
	}
	snap, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}
	if _, err := snap.Find(opts.target); err != nil {
		return err
	}
	engine, err := root.newEngine(opts.now)
	if err != nil {
		return err
	}

	start := time.Now()
	result, diag := engine.GenerateWithDiagnostics(snap.Request(opts.target, difficulty))
	elapsed := time.Since(start)
	metrics.RecordConfusionGroup(difficulty.String(), diag, len(result.Distractors), result.InsufficientCandidates, elapsed)

	logging.Ctx(cmd.Context()).Info().
		Str("target", opts.target).
		Str("difficulty", difficulty.String()).
		Str("stage", diag.Stage.String()).
		Int("distractors", len(result.Distractors)).
		Bool("insufficient", result.InsufficientCandidates).
		Dur("elapsed", elapsed).
		Msg("Confusion group generated")

	return writeJSON(cmd.OutOrStdout(), result)
}

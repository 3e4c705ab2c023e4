// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package drills

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/MartinLundqvist/wine-app-sub000/internal/catalog"
	"github.com/MartinLundqvist/wine-app-sub000/internal/confusion"
	"github.com/MartinLundqvist/wine-app-sub000/internal/logging"
	"github.com/MartinLundqvist/wine-app-sub000/internal/metrics"
)

// ErrNoEngine is returned by NewBuilder when engine is nil.
var ErrNoEngine = errors.New("drills: engine is required")

// Builder generates confusion groups for batches of targets.
type Builder struct {
	engine  *confusion.Engine
	workers int
	logger  zerolog.Logger
}

// Summary aggregates a batch.
type Summary struct {
	Total        int                    `json:"total"`
	Complete     int                    `json:"complete"`
	Insufficient int                    `json:"insufficient"`
	Cancelled    int                    `json:"cancelled"`
	Roles        map[confusion.Role]int `json:"roles"`
	Stages       map[string]int         `json:"stages"`
	DurationMs   int64                  `json:"durationMs"`
}

// Batch is the output of Build.
type Batch struct {
	RunID      string               `json:"runId,omitempty"`
	Difficulty confusion.Difficulty `json:"difficulty"`
	Groups     []*confusion.Result  `json:"groups"`
	Summary    Summary              `json:"summary"`
}

// outcome is what one worker produced for one target.
type outcome struct {
	result *confusion.Result
	diag   confusion.Diagnostics
}

// NewBuilder creates a builder running at most workers targets concurrently.
// Values below one are treated as one.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBuilder(engine *confusion.Engine, workers int, logger zerolog.Logger) (*Builder, error) {
	if engine == nil {
		return nil, ErrNoEngine
	}
	if workers < 1 {
		workers = 1
	}
	return &Builder{
		engine:  engine,
		workers: workers,
		logger:  logger.With().Str("component", "drills").Logger(),
	}, nil
}

// Workers returns the concurrency limit.
func (b *Builder) Workers() int {
	return b.workers
}

// Build generates a group for every ID in targets, or for every style in the
// snapshot when targets is empty.
func (b *Builder) Build(ctx context.Context, snap *catalog.Snapshot, targets []string, difficulty confusion.Difficulty) (*Batch, error) {
	if len(targets) == 0 {
		targets = snap.IDs()
	}
	start := time.Now()
	ctx = logging.ContextWithLogger(ctx, b.logger)

	logging.Ctx(ctx).Info().
		Int("targets", len(targets)).
		Int("workers", b.workers).
		Str("difficulty", difficulty.String()).
		Msg("Batch started")

	outcomes := make([]*outcome, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, targetID := range targets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tctx := logging.ContextWithNewCorrelationID(gctx)
			outcomes[i] = b.generate(tctx, snap, targetID, difficulty)
			return nil
		})
	}
	err := g.Wait()

	batch := b.collect(difficulty, outcomes)
	batch.RunID = logging.RunIDFromContext(ctx)
	if err == nil && batch.Summary.Cancelled > 0 {
		err = ctx.Err()
	}
	batch.Summary.DurationMs = time.Since(start).Milliseconds()
	metrics.RecordBatch(batch.Summary.Complete, batch.Summary.Insufficient, batch.Summary.Cancelled, time.Since(start))

	event := logging.Ctx(ctx).Info()
	if err != nil {
		event = logging.Ctx(ctx).Warn().Err(err)
	}
	event.
		Int("complete", batch.Summary.Complete).
		Int("insufficient", batch.Summary.Insufficient).
		Int("cancelled", batch.Summary.Cancelled).
		Int64("duration_ms", batch.Summary.DurationMs).
		Msg("Batch finished")

	if err != nil {
		return batch, fmt.Errorf("batch interrupted: %w", err)
	}
	return batch, nil
}

func (b *Builder) generate(ctx context.Context, snap *catalog.Snapshot, targetID string, difficulty confusion.Difficulty) *outcome {
	start := time.Now()
	result, diag := b.engine.GenerateWithDiagnostics(snap.Request(targetID, difficulty))
	elapsed := time.Since(start)

	metrics.RecordConfusionGroup(difficulty.String(), diag, len(result.Distractors), result.InsufficientCandidates, elapsed)

	logging.Ctx(ctx).Debug().
		Str("target", targetID).
		Str("stage", diag.Stage.String()).
		Int("gated", diag.GatedCount).
		Int("distractors", len(result.Distractors)).
		Bool("insufficient", result.InsufficientCandidates).
		Dur("elapsed", elapsed).
		Msg("Confusion group generated")

	return &outcome{result: result, diag: diag}
}

// collect keeps completed groups in target order and tallies the summary.
func (b *Builder) collect(difficulty confusion.Difficulty, outcomes []*outcome) *Batch {
	batch := &Batch{
		Difficulty: difficulty,
		Groups:     make([]*confusion.Result, 0, len(outcomes)),
		Summary: Summary{
			Total:  len(outcomes),
			Roles:  make(map[confusion.Role]int),
			Stages: make(map[string]int),
		},
	}

	for _, o := range outcomes {
		if o == nil {
			batch.Summary.Cancelled++
			continue
		}
		batch.Groups = append(batch.Groups, o.result)
		batch.Summary.Complete++
		if o.result.InsufficientCandidates {
			batch.Summary.Insufficient++
		}
		batch.Summary.Stages[o.diag.Stage.String()]++
		for i := range o.result.Distractors {
			batch.Summary.Roles[o.result.Distractors[i].Role]++
		}
	}
	return batch
}

// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// TimestampLayout formats Result.GeneratedAt: ISO-8601 UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Engine builds confusion groups. It holds only immutable configuration and
// is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	now    func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine. A nil config selects DefaultConfig.
// The config is copied, so later changes by the caller have no effect.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "confusion").Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Generate builds the confusion group for req.TargetID.
func (e *Engine) Generate(req Request) *Result {
	result, _ := e.GenerateWithDiagnostics(req)
	return result
}

// GenerateWithDiagnostics builds the confusion group and reports how the
// candidate pool was narrowed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) GenerateWithDiagnostics(req Request) (*Result, Diagnostics) {
	var diag Diagnostics
	generatedAt := e.now().UTC().Format(TimestampLayout)

	logger := e.logger.With().
		Str("target", req.TargetID).
		Str("difficulty", req.Difficulty.String()).
		Logger()

	targetIdx := indexOf(req.Items, req.TargetID)
	if targetIdx < 0 {
		logger.Debug().Int("items", len(req.Items)).Msg("target style not found")
		return emptyResult(req, generatedAt), diag
	}
	diag.TargetFound = true

	cfg := e.config
	profile := cfg.Profile(req.Difficulty)
	primary := primaryClusterSet(req.Clusters, cfg.PrimarySourceID)

	target := extractFeatures(&req.Items[targetIdx], primary, cfg.ScaleMax)
	pool := make([]*features, 0, len(req.Items))
	for i := range req.Items {
		if i == targetIdx {
			continue
		}
		pool = append(pool, extractFeatures(&req.Items[i], primary, cfg.ScaleMax))
	}
	diag.PoolSize = len(pool)

	gated := gate(target, pool, profile.GateWidth)
	diag.GatedCount = len(gated)

	ranked := scoreAll(target, gated, cfg)
	filtered := applyThresholds(ranked, profile, cfg.Selection.MinCandidates, &diag)

	picks := selectRoles(filtered, cfg.Roles, cfg.Selection.MaxDistractors)
	names := descriptorNameIndex(req.Descriptors)

	distractors := make([]Distractor, 0, len(picks))
	for _, p := range picks {
		distractors = append(distractors, e.buildDistractor(target, p, names))
	}

	logger.Debug().
		Int("pool", diag.PoolSize).
		Int("gated", diag.GatedCount).
		Str("stage", diag.Stage.String()).
		Int("filtered", len(filtered)).
		Int("distractors", len(distractors)).
		Msg("confusion group generated")

	return &Result{
		TargetStyleID:          req.TargetID,
		Difficulty:             req.Difficulty,
		Distractors:            distractors,
		InsufficientCandidates: len(filtered) < cfg.Selection.MinCandidates,
		GeneratedAt:            generatedAt,
	}, diag
}

// buildDistractor enriches a role assignment with pivots, aroma names and
// explanation text.
func (e *Engine) buildDistractor(target *features, a assignment, names map[string]string) Distractor {
	cfg := e.config
	candidate := a.pick.candidate

	pivots := pivotDimensions(target, candidate, cfg.Selection.PivotTolerance, cfg.Selection.MaxPivots)
	aromas := splitAromas(target, candidate, names)
	targetName := displayName(target.item)
	candidateName := displayName(candidate.item)

	return Distractor{
		StyleID:             candidate.item.ID,
		DisplayName:         candidate.item.Name,
		Role:                a.role,
		Similarity:          roundTo2(a.pick.Similarity),
		PivotDimensions:     pivots,
		SharedAromas:        aromas.shared,
		TargetOnlyAromas:    aromas.targetOnly,
		CandidateOnlyAromas: aromas.candidateOnly,
		WhyConfusing:        whyConfusing(a.role, aromas.shared, cfg.Selection.WhyNames),
		HowToDistinguish: howToDistinguish(pivots, aromas.targetOnly, aromas.candidateOnly,
			targetName, candidateName, cfg.Selection.HowNames),
	}
}

// emptyResult is the degenerate result for a missing target.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func emptyResult(req Request, generatedAt string) *Result {
	return &Result{
		TargetStyleID:          req.TargetID,
		Difficulty:             req.Difficulty,
		Distractors:            []Distractor{},
		InsufficientCandidates: true,
		GeneratedAt:            generatedAt,
	}
}

func indexOf(items []CatalogItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// defaultEngine backs the package-level Generate.
var defaultEngine = func() *Engine {
	e, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		panic(fmt.Sprintf("confusion: default config is invalid: %v", err))
	}
	return e
}()

// Generate builds a confusion group with the default policy.
func Generate(items []CatalogItem, clusters []ClusterRow, descriptors []DescriptorRow, targetID string, difficulty Difficulty) *Result {
	return defaultEngine.Generate(Request{
		Items:       items,
		Clusters:    clusters,
		Descriptors: descriptors,
		TargetID:    targetID,
		Difficulty:  difficulty,
	})
}

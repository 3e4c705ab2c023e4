// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

// Package confusion builds "tell these apart" confusion groups for wine styles.
//
// Given a target style and the rest of the catalog, the engine picks up to
// three distractors that a taster is likely to confuse with the target and
// explains, for each, why they are confusing and how to tell them apart.
//
// # Pipeline
//
// Every call runs four pure stages in order:
//
//  1. Feature extraction: each style becomes a normalized 8-dimension
//     structural vector, a 3-dimension direction vector (body, oak,
//     intensity) and the set of its dominant primary aromas.
//  2. Gating: candidates must share the target's color and category and stay
//     within a per-dimension gate whose width depends on difficulty.
//  3. Scoring: a weighted composite distance
//
//     D_total = 0.6*D_struct + 0.3*D_dir + 0.1*d_aroma
//
//     followed by difficulty thresholds on D_dir and aroma similarity, relaxed
//     in two steps when fewer than three candidates survive.
//  4. Role selection: greedy assignment of the evil_twin, structural_match
//     and directional_match roles with pivot dimensions and explanation text.
//
// # Degenerate input
//
// The engine never fails. An unknown target or an empty pool produces a result
// with no distractors and InsufficientCandidates set.
//
// # Thread Safety
//
// An Engine holds only immutable configuration. Generate may be called from
// any number of goroutines.
//
// # Usage
//
//	engine, err := confusion.NewEngine(confusion.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	result := engine.Generate(confusion.Request{
//	    Items:       styles,
//	    Clusters:    clusters,
//	    Descriptors: descriptors,
//	    TargetID:    "barolo",
//	    Difficulty:  confusion.DifficultyHard,
//	})
package confusion

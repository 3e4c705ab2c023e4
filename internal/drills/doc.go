// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

// Package drills generates confusion groups for many targets at once.
//
// A Builder fans targets out over a bounded worker pool. Every target gets
// its own correlation ID in the log stream, and each group is recorded in
// the confusion metrics. Results are returned in target order regardless of
// which worker finished first.
//
// Usage:
//
//	builder, err := drills.NewBuilder(engine, 8, logger)
//	batch, err := builder.Build(ctx, snap, nil, confusion.DifficultyHard)
//
// Cancelling ctx stops scheduling new targets. Build then returns the groups
// that completed together with the context error.
package drills

// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

// Package logging provides the process-wide zerolog logger for the confusion
// tooling.
//
// The global logger is configured once from the CLI (JSON for pipelines,
// console for interactive use) and handed to components by value:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	engineLogger := logging.WithComponent("confusion")
//
// Batch runs attach a run ID and a per-target correlation ID to the context
// so every line of one run can be grouped:
//
//	ctx = logging.ContextWithNewRunID(ctx)
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Info().Str("target", id).Msg("Confusion group built")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging

// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

// Package metrics provides Prometheus instrumentation for confusion group
// generation.
//
// Metrics are registered with the default registry through promauto. The
// engine itself stays free of side effects: callers record a run from the
// engine's Diagnostics after the fact.
//
//	start := time.Now()
//	result, diag := engine.GenerateWithDiagnostics(req)
//	metrics.RecordConfusionGroup(req.Difficulty.String(), diag,
//	    len(result.Distractors), result.InsufficientCandidates, time.Since(start))
//
// The CLI runs as a short-lived job rather than a server, so there is no
// /metrics endpoint. Batch runs write the registry in text exposition format
// for the node_exporter textfile collector instead:
//
//	if err := metrics.WriteTextfile("/var/lib/node_exporter/confusion.prom"); err != nil { ... }
//
// # Available Metrics
//
//	confusion_groups_generated_total{difficulty}
//	confusion_groups_insufficient_total{difficulty}
//	confusion_fallback_stage_total{stage}
//	confusion_target_missing_total
//	confusion_gated_candidates
//	confusion_distractors_returned
//	confusion_generation_duration_seconds{difficulty}
//	confusion_batch_duration_seconds
//	confusion_batch_targets_total{outcome}
package metrics

// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MartinLundqvist/wine-app-sub000/internal/confusion"
)

var (
	// Generation Metrics
	GroupsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confusion_groups_generated_total",
			Help: "Total number of confusion groups generated",
		},
		[]string{"difficulty"},
	)

	GroupsInsufficient = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confusion_groups_insufficient_total",
			Help: "Total number of confusion groups built from fewer than three candidates",
		},
		[]string{"difficulty"},
	)

	FallbackStage = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confusion_fallback_stage_total",
			Help: "Total number of confusion groups by the filtering stage that produced them",
		},
		[]string{"stage"}, // "none", "strict", "direction_only", "unfiltered"
	)

	TargetMissing = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "confusion_target_missing_total",
			Help: "Total number of requests whose target style was not in the catalog",
		},
	)

	GatedCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "confusion_gated_candidates",
			Help:    "Number of candidates surviving the hard gate per request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 25, 50, 100, 250},
		},
	)

	DistractorsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "confusion_distractors_returned",
			Help:    "Number of distractors returned per request",
			Buckets: []float64{0, 1, 2, 3},
		},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "confusion_generation_duration_seconds",
			Help:    "Duration of a single confusion group generation in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}, // In-memory scoring of one catalog
		},
		[]string{"difficulty"},
	)

	// Batch Metrics
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "confusion_batch_duration_seconds",
			Help:    "Duration of a batch drill build in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	BatchTargets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confusion_batch_targets_total",
			Help: "Total number of batch targets by outcome",
		},
		[]string{"outcome"}, // "complete", "insufficient", "cancelled"
	)
)

// RecordConfusionGroup records one engine invocation from its diagnostics.
//
//nolint:gocritic // hugeParam: Diagnostics is a small value type
func RecordConfusionGroup(difficulty string, diag confusion.Diagnostics, distractors int, insufficient bool, duration time.Duration) {
	GroupsGenerated.WithLabelValues(difficulty).Inc()
	GenerationDuration.WithLabelValues(difficulty).Observe(duration.Seconds())
	DistractorsReturned.Observe(float64(distractors))

	if !diag.TargetFound {
		TargetMissing.Inc()
	} else {
		GatedCandidates.Observe(float64(diag.GatedCount))
	}

	FallbackStage.WithLabelValues(diag.Stage.String()).Inc()

	if insufficient {
		GroupsInsufficient.WithLabelValues(difficulty).Inc()
	}
}

// RecordBatch records the outcome counts and wall time of a batch build.
func RecordBatch(complete, insufficient, cancelled int, duration time.Duration) {
	BatchDuration.Observe(duration.Seconds())
	BatchTargets.WithLabelValues("complete").Add(float64(complete))
	BatchTargets.WithLabelValues("insufficient").Add(float64(insufficient))
	BatchTargets.WithLabelValues("cancelled").Add(float64(cancelled))
}

// WriteTextfile writes the default registry to path in the text exposition
// format. The file is written atomically.
func WriteTextfile(path string) error {
	return WriteRegistryTextfile(path, prometheus.DefaultGatherer)
}

// WriteRegistryTextfile writes the metrics gathered from g to path.
func WriteRegistryTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return fmt.Errorf("metrics textfile path is empty")
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import (
	"math"
	"sort"
)

// scored is a gated candidate with its component distances.
type scored struct {
	candidate *features

	// DStruct and DDir are mean absolute differences of the normalized vectors.
	DStruct float64
	DDir    float64

	// JDesc and JCluster are Jaccard indices of the dominant primary aroma sets.
	JDesc    float64
	JCluster float64

	// DAroma is 1 - aroma similarity.
	DAroma float64

	// DTotal is the weighted composite distance and Similarity is 1 - DTotal.
	DTotal     float64
	Similarity float64

	// AromaSim is the blended Jaccard similarity used by the soft threshold.
	AromaSim float64
}

// score computes every distance between target and candidate.
func score(target, candidate *features, cfg *Config) scored {
	s := scored{
		candidate: candidate,
		DStruct:   meanAbsDiff(target.structure[:], candidate.structure[:]),
		DDir:      meanAbsDiff(target.direction[:], candidate.direction[:]),
		JDesc:     jaccard(target.descriptors, candidate.descriptors),
		JCluster:  jaccard(target.clusters, candidate.clusters),
	}

	s.AromaSim = cfg.AromaBlend.Descriptor*s.JDesc + cfg.AromaBlend.Cluster*s.JCluster
	s.DAroma = 1 - s.AromaSim
	s.DTotal = cfg.Weights.Structure*s.DStruct + cfg.Weights.Direction*s.DDir + cfg.Weights.Aroma*s.DAroma
	s.Similarity = 1 - s.DTotal

	return s
}

// meanAbsDiff is the Manhattan distance divided by the vector length.
func meanAbsDiff(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum / float64(len(a))
}

// jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets are identical, so the
// result is 1.
func jaccard(a, b idSet) float64 {
	if a.len() == 0 && b.len() == 0 {
		return 1
	}

	intersection := 0
	for _, id := range a.order {
		if b.has(id) {
			intersection++
		}
	}

	union := a.len() + b.len() - intersection
	return float64(intersection) / float64(union)
}

// scoreAll scores every gated candidate and sorts by descending similarity.
// The sort is stable so ties keep pool order.
func scoreAll(target *features, gated []*features, cfg *Config) []scored {
	out := make([]scored, 0, len(gated))
	for _, c := range gated {
		out = append(out, score(target, c, cfg))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	return out
}

// applyThresholds runs the fallback cascade and returns the pool from the
// first stage that keeps at least minCandidates entries, or the full pool.
// Filtering preserves the input order.
func applyThresholds(ranked []scored, profile DifficultyProfile, minCandidates int, diag *Diagnostics) []scored {
	if len(ranked) == 0 {
		diag.Stage = StageNone
		return ranked
	}

	strict := filterScored(ranked, func(s scored) bool {
		return s.DDir <= profile.DirThreshold && s.AromaSim >= profile.AromaMin
	})
	diag.StrictCount = len(strict)
	if len(strict) >= minCandidates {
		diag.Stage = StageStrict
		return strict
	}

	dirOnly := filterScored(ranked, func(s scored) bool {
		return s.DDir <= profile.DirThreshold
	})
	diag.DirectionOnlyCount = len(dirOnly)
	if len(dirOnly) >= minCandidates {
		diag.Stage = StageDirectionOnly
		return dirOnly
	}

	diag.UnfilteredCount = len(ranked)
	diag.Stage = StageUnfiltered
	return ranked
}

func filterScored(in []scored, keep func(scored) bool) []scored {
	out := make([]scored, 0, len(in))
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

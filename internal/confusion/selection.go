// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import "math"

// assignment pairs a role with the candidate chosen for it.
type assignment struct {
	role Role
	pick scored
}

// selectRoles greedily fills the three roles from the ranked pool.
// The used set lives only for the duration of this call.
//
// Roles are filled in order:
//   - evil_twin: the top-ranked candidate
//   - structural_match: first unused with D_struct < StructuralMaxStruct and
//     D_dir > StructuralMinDir, else the second-ranked candidate
//   - directional_match: first unused with D_dir < DirectionalMaxDir and
//     D_struct > DirectionalMinStruct, else the first unused candidate
func selectRoles(ranked []scored, roles RoleThresholds, limit int) []assignment {
	picks := make([]assignment, 0, 3)
	used := make(map[string]struct{}, 3)

	take := func(role Role, s scored) {
		used[s.candidate.item.ID] = struct{}{}
		picks = append(picks, assignment{role: role, pick: s})
	}
	isUsed := func(s scored) bool {
		_, ok := used[s.candidate.item.ID]
		return ok
	}
	firstUnused := func(match func(scored) bool) (scored, bool) {
		for _, s := range ranked {
			if isUsed(s) {
				continue
			}
			if match == nil || match(s) {
				return s, true
			}
		}
		return scored{}, false
	}

	if len(ranked) > 0 && !isUsed(ranked[0]) {
		take(RoleEvilTwin, ranked[0])
	}

	if s, ok := firstUnused(func(s scored) bool {
		return s.DStruct < roles.StructuralMaxStruct && s.DDir > roles.StructuralMinDir
	}); ok {
		take(RoleStructuralMatch, s)
	} else if len(ranked) > 1 && !isUsed(ranked[1]) {
		take(RoleStructuralMatch, ranked[1])
	}

	if s, ok := firstUnused(func(s scored) bool {
		return s.DDir < roles.DirectionalMaxDir && s.DStruct > roles.DirectionalMinStruct
	}); ok {
		take(RoleDirectionalMatch, s)
	} else if s, ok := firstUnused(nil); ok {
		take(RoleDirectionalMatch, s)
	}

	if len(picks) > limit {
		picks = picks[:limit]
	}
	return picks
}

// pivotDimensions returns up to limit structural dimensions whose normalized
// difference is within tolerance of the largest difference, in vector order.
// Identical vectors tie on every dimension, so the first limit dimensions win.
func pivotDimensions(a, b *features, tolerance float64, limit int) []string {
	var diffs [numStructureDims]float64
	maxDiff := 0.0
	for i := range diffs {
		diffs[i] = math.Abs(a.structure[i] - b.structure[i])
		if diffs[i] > maxDiff {
			maxDiff = diffs[i]
		}
	}

	pivots := make([]string, 0, limit)
	for i, d := range diffs {
		if len(pivots) >= limit {
			break
		}
		if d >= maxDiff-tolerance {
			pivots = append(pivots, structureDims[i])
		}
	}
	return pivots
}

// roundTo2 rounds v to two decimal places.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

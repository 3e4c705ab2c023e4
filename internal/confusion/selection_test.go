// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rankedPool(entries ...scored) []scored { return entries }

func entry(id string, dStruct, dDir float64) scored {
	return scored{candidate: &features{item: &CatalogItem{ID: id}}, DStruct: dStruct, DDir: dDir}
}

type rolePick struct {
	Role Role
	ID   string
}

func picksOf(as []assignment) []rolePick {
	out := make([]rolePick, 0, len(as))
	for _, a := range as {
		out = append(out, rolePick{Role: a.role, ID: a.pick.candidate.item.ID})
	}
	return out
}

func TestSelectRoles(t *testing.T) {
	roles := DefaultConfig().Roles

	tests := []struct {
		name   string
		ranked []scored
		limit  int
		want   []rolePick
	}{
		{
			name:   "empty pool",
			ranked: nil,
			limit:  3,
			want:   []rolePick{},
		},
		{
			name:   "single candidate",
			ranked: rankedPool(entry("a", 0.1, 0.1)),
			limit:  3,
			want:   []rolePick{{RoleEvilTwin, "a"}},
		},
		{
			name: "every role qualifies",
			ranked: rankedPool(
				entry("twin", 0.05, 0.05),
				entry("filler", 0.1, 0.1),
				entry("struct", 0.2, 0.3),
				entry("dir", 0.2, 0.1),
			),
			limit: 3,
			want: []rolePick{
				{RoleEvilTwin, "twin"},
				{RoleStructuralMatch, "struct"},
				{RoleDirectionalMatch, "dir"},
			},
		},
		{
			name: "structural falls back to rank two",
			ranked: rankedPool(
				entry("a", 0.05, 0.05),
				entry("b", 0.1, 0.1),
				entry("c", 0.2, 0.1),
			),
			limit: 3,
			want: []rolePick{
				{RoleEvilTwin, "a"},
				{RoleStructuralMatch, "b"},
				{RoleDirectionalMatch, "c"},
			},
		},
		{
			name: "directional falls back to first unused",
			ranked: rankedPool(
				entry("a", 0.05, 0.05),
				entry("b", 0.1, 0.1),
				entry("c", 0.1, 0.4),
				entry("d", 0.5, 0.5),
			),
			limit: 3,
			want: []rolePick{
				{RoleEvilTwin, "a"},
				{RoleStructuralMatch, "c"},
				{RoleDirectionalMatch, "b"},
			},
		},
		{
			name: "evil twin is not reused for a qualifying role",
			ranked: rankedPool(
				entry("a", 0.2, 0.3),
				entry("b", 0.1, 0.1),
			),
			limit: 3,
			want: []rolePick{
				{RoleEvilTwin, "a"},
				{RoleStructuralMatch, "b"},
			},
		},
		{
			name: "limit truncates in role order",
			ranked: rankedPool(
				entry("a", 0.05, 0.05),
				entry("b", 0.1, 0.1),
				entry("c", 0.2, 0.1),
			),
			limit: 2,
			want: []rolePick{
				{RoleEvilTwin, "a"},
				{RoleStructuralMatch, "b"},
			},
		},
		{
			name: "boundary values do not qualify",
			ranked: rankedPool(
				entry("a", 0.05, 0.05),
				entry("b", 0.1, 0.1),
				entry("c", 0.3, 0.3),
				entry("d", 0.15, 0.2),
			),
			limit: 3,
			want: []rolePick{
				{RoleEvilTwin, "a"},
				{RoleStructuralMatch, "b"},
				{RoleDirectionalMatch, "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := picksOf(selectRoles(tt.ranked, roles, tt.limit))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("selectRoles() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectRoles_UniqueIDs(t *testing.T) {
	roles := DefaultConfig().Roles
	pool := rankedPool(
		entry("a", 0.25, 0.21),
		entry("b", 0.2, 0.24),
		entry("c", 0.16, 0.22),
	)

	seen := make(map[string]bool)
	for _, p := range selectRoles(pool, roles, 3) {
		id := p.pick.candidate.item.ID
		if seen[id] {
			t.Errorf("candidate %s assigned twice", id)
		}
		seen[id] = true
	}
	if len(seen) != 3 {
		t.Errorf("assigned %d candidates, want 3", len(seen))
	}
}

func TestPivotDimensions(t *testing.T) {
	tests := []struct {
		name      string
		a, b      levels
		tolerance float64
		limit     int
		want      []string
	}{
		{
			name:      "single largest difference",
			a:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			b:         levels{3, 3, 3, 3, 3, 1, 3, 2},
			tolerance: 0.01,
			limit:     2,
			want:      []string{DimOak},
		},
		{
			name:      "ties in vector order",
			a:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			b:         levels{3, 3, 3, 3, 3, 2, 4, 3},
			tolerance: 0.01,
			limit:     2,
			want:      []string{DimOak, DimFinish},
		},
		{
			name:      "ties truncated by limit",
			a:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			b:         levels{4, 4, 4, 3, 3, 3, 3, 3},
			tolerance: 0.01,
			limit:     2,
			want:      []string{DimTannin, DimAcidity},
		},
		{
			name:      "within tolerance counts as tie",
			a:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			b:         levels{4, 3, 3, 3.96, 3, 3, 3, 3},
			tolerance: 0.01,
			limit:     2,
			want:      []string{DimTannin, DimAlcohol},
		},
		{
			name:      "outside tolerance is dropped",
			a:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			b:         levels{4, 3, 3, 3.9, 3, 3, 3, 3},
			tolerance: 0.01,
			limit:     2,
			want:      []string{DimTannin},
		},
		{
			name:      "identical vectors tie on every dimension",
			a:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			b:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			tolerance: 0.01,
			limit:     2,
			want:      []string{DimTannin, DimAcidity},
		},
		{
			name:      "near-identical vectors match identical ones",
			a:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			b:         levels{3, 3, 3, 3, 3, 3, 3, 3.025},
			tolerance: 0.01,
			limit:     2,
			want:      []string{DimTannin, DimAcidity},
		},
		{
			name:      "zero limit",
			a:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			b:         levels{3, 3, 3, 3, 3, 3, 3, 3},
			tolerance: 0.01,
			limit:     0,
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := redStill("a", tt.a)
			bi := redStill("b", tt.b)
			got := pivotDimensions(extractFeatures(&ai, nil, 5), extractFeatures(&bi, nil, 5), tt.tolerance, tt.limit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pivotDimensions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTo2(t *testing.T) {
	tests := map[float64]float64{
		0.916666: 0.92,
		0.914:    0.91,
		1:        1,
		0:        0,
		0.005:    0.01,
	}
	for in, want := range tests {
		if got := roundTo2(in); got != want {
			t.Errorf("roundTo2(%f) = %f, want %f", in, got, want)
		}
	}
}

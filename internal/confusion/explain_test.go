// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitAromas(t *testing.T) {
	primary := primaryClusterSet(testClusters(), "primary")
	names := descriptorNameIndex(testDescriptors())

	target := redStill("t", levels{}, "cherry", "rose", "mystery")
	candidate := redStill("c", levels{}, "violet", "cherry", "vanilla")

	got := splitAromas(
		extractFeatures(&target, primary, 5),
		extractFeatures(&candidate, primary, 5),
		names,
	)

	if diff := cmp.Diff([]string{"cherry"}, got.shared); diff != "" {
		t.Errorf("shared mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"rose", "mystery"}, got.targetOnly); diff != "" {
		t.Errorf("targetOnly mismatch (-want +got):\n%s", diff)
	}
	// vanilla belongs to a non-primary cluster.
	if diff := cmp.Diff([]string{"violet"}, got.candidateOnly); diff != "" {
		t.Errorf("candidateOnly mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitAromas_EmptyListsAreNonNil(t *testing.T) {
	target := redStill("t", levels{})
	candidate := redStill("c", levels{})

	got := splitAromas(extractFeatures(&target, nil, 5), extractFeatures(&candidate, nil, 5), nil)
	if got.shared == nil || got.targetOnly == nil || got.candidateOnly == nil {
		t.Errorf("expected non-nil empty slices, got %+v", got)
	}
}

func TestDescriptorNameIndex_FirstRowWins(t *testing.T) {
	names := descriptorNameIndex([]DescriptorRow{
		{ID: "cherry", DisplayName: "black cherry"},
		{ID: "cherry", DisplayName: "sour cherry"},
	})
	if names["cherry"] != "black cherry" {
		t.Errorf("names[cherry] = %q, want %q", names["cherry"], "black cherry")
	}
}

func TestWhyConfusing(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		shared []string
		limit  int
		want   string
	}{
		{
			name:   "evil twin without shared aromas",
			role:   RoleEvilTwin,
			shared: nil,
			limit:  3,
			want:   "Closest match overall, with a near-identical structure and stylistic direction.",
		},
		{
			name:   "structural match with one shared aroma",
			role:   RoleStructuralMatch,
			shared: []string{"cherry"},
			limit:  3,
			want:   "Very similar structure on the palate even though the style leans a different way; both are dominated by cherry.",
		},
		{
			name:   "directional match truncates names",
			role:   RoleDirectionalMatch,
			shared: []string{"cherry", "rose", "violet", "lemon"},
			limit:  3,
			want:   "Same stylistic direction in body, oak and intensity even though the structure differs; both are dominated by cherry, rose and violet.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := whyConfusing(tt.role, tt.shared, tt.limit); got != tt.want {
				t.Errorf("whyConfusing() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHowToDistinguish(t *testing.T) {
	tests := []struct {
		name          string
		pivots        []string
		targetOnly    []string
		candidateOnly []string
		want          string
	}{
		{
			name:          "pivots and aromas on both sides",
			pivots:        []string{DimTannin, DimOak},
			targetOnly:    []string{"rose", "tar", "leather"},
			candidateOnly: []string{"violet"},
			want:          "Focus on tannin level and oak influence, where Barolo and Barbaresco differ most; look for rose and tar in Barolo versus violet in Barbaresco.",
		},
		{
			name:       "target-only aromas",
			pivots:     []string{DimAcidity},
			targetOnly: []string{"rose"},
			want:       "Focus on acidity, where Barolo and Barbaresco differ most; only Barolo shows rose.",
		},
		{
			name:          "candidate-only aromas",
			pivots:        []string{DimBody},
			candidateOnly: []string{"violet"},
			want:          "Focus on body, where Barolo and Barbaresco differ most; only Barbaresco shows violet.",
		},
		{
			name: "no pivots and no aroma difference",
			want: "Barolo and Barbaresco are structurally almost identical; their dominant aromas will not separate them.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := howToDistinguish(tt.pivots, tt.targetOnly, tt.candidateOnly, "Barolo", "Barbaresco", 2)
			if got != tt.want {
				t.Errorf("howToDistinguish() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinNames(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b and c"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.in, "+"), func(t *testing.T) {
			if got := joinNames(tt.in); got != tt.want {
				t.Errorf("joinNames(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName(&CatalogItem{ID: "barolo", Name: "Barolo"}); got != "Barolo" {
		t.Errorf("displayName() = %q, want Barolo", got)
	}
	if got := displayName(&CatalogItem{ID: "barolo"}); got != "barolo" {
		t.Errorf("displayName() = %q, want ID fallback", got)
	}
}

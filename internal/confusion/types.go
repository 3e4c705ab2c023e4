// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for values outside the enum.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty controls how selective the engine is when choosing distractors.
type Difficulty string

const (
	// DifficultyEasy uses a wide gate and no soft thresholds.
	DifficultyEasy Difficulty = "easy"
	// DifficultyMedium narrows the gate and applies moderate thresholds.
	DifficultyMedium Difficulty = "medium"
	// DifficultyHard applies the strictest thresholds.
	DifficultyHard Difficulty = "hard"
)

// Difficulties lists every valid difficulty in increasing order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// String returns the wire representation of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// ParseDifficulty converts a user-supplied string into a Difficulty.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q (want easy, medium or hard)", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Salience describes how prominent an aroma is in a style.
type Salience string

const (
	// SalienceDominant marks a defining aroma of the style.
	SalienceDominant Salience = "dominant"
	// SalienceSupporting marks an aroma that is usually present.
	SalienceSupporting Salience = "supporting"
	// SalienceOccasional marks an aroma that shows up in some examples.
	SalienceOccasional Salience = "occasional"
)

// Role names the slot a distractor fills in a confusion group.
type Role string

const (
	// RoleEvilTwin is the closest candidate overall.
	RoleEvilTwin Role = "evil_twin"
	// RoleStructuralMatch is structurally close but points in a different direction.
	RoleStructuralMatch Role = "structural_match"
	// RoleDirectionalMatch shares the direction but differs in structure.
	RoleDirectionalMatch Role = "directional_match"
)

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// StructureMeasurement is an inclusive range on one structural dimension.
type StructureMeasurement struct {
	// DimensionID identifies the structural dimension (see StructureDimensions).
	DimensionID string `json:"dimensionId" validate:"required"`

	// MinValue is the low end of the range on the 0-5 scale.
	MinValue float64 `json:"minValue" validate:"gte=0,lte=5"`

	// MaxValue is the high end of the range on the 0-5 scale.
	MaxValue float64 `json:"maxValue" validate:"gte=0,lte=5,gtefield=MinValue"`
}

// AromaAssociation links a style to an aroma descriptor.
type AromaAssociation struct {
	// DescriptorID identifies the aroma descriptor.
	DescriptorID string `json:"descriptorId" validate:"required"`

	// ClusterID identifies the descriptor's owning cluster.
	ClusterID string `json:"clusterId" validate:"required"`

	// Salience is dominant, supporting or occasional.
	Salience Salience `json:"salience" validate:"salience"`
}

// CatalogItem is a wine style as materialized by the catalog service.
// The engine never mutates it.
type CatalogItem struct {
	// ID is the unique style identifier.
	ID string `json:"id" validate:"required"`

	// Name is the display name.
	Name string `json:"name"`

	// Color is the categorical color tag (red, white, rosé, ...).
	Color string `json:"color" validate:"required"`

	// WineCategory is the categorical category tag (still, sparkling, fortified, ...).
	WineCategory string `json:"wineCategory" validate:"required"`

	// Structure holds one range per measured dimension.
	Structure []StructureMeasurement `json:"structure" validate:"dive"`

	// Aromas holds the style's aroma associations.
	Aromas []AromaAssociation `json:"aromas" validate:"dive"`
}

// ClusterRow is one aroma cluster from the reference taxonomy.
type ClusterRow struct {
	ID          string `json:"id" validate:"required"`
	DisplayName string `json:"displayName"`
	SourceID    string `json:"sourceId" validate:"required"`
}

// DescriptorRow is one aroma descriptor from the reference taxonomy.
type DescriptorRow struct {
	ID          string `json:"id" validate:"required"`
	DisplayName string `json:"displayName"`
	ClusterID   string `json:"clusterId" validate:"required"`
}

// Request bundles the inputs of a single engine invocation.
type Request struct {
	// Items is the full catalog, target included.
	Items []CatalogItem

	// Clusters and Descriptors are the reference aroma taxonomy.
	Clusters    []ClusterRow
	Descriptors []DescriptorRow

	// TargetID is the style to build the group for.
	TargetID string

	// Difficulty selects the gating and threshold profile.
	Difficulty Difficulty
}

// Distractor is one member of a confusion group.
type Distractor struct {
	// StyleID and DisplayName identify the distractor style.
	StyleID     string `json:"styleId"`
	DisplayName string `json:"displayName"`

	// Role is the slot this distractor fills.
	Role Role `json:"role"`

	// Similarity is 1 - D_total rounded to two decimals.
	Similarity float64 `json:"similarity"`

	// PivotDimensions lists up to two dimensions where the styles differ most.
	PivotDimensions []string `json:"pivotDimensions"`

	// SharedAromas, TargetOnlyAromas and CandidateOnlyAromas hold descriptor
	// display names of dominant primary aromas.
	SharedAromas        []string `json:"sharedAromas"`
	TargetOnlyAromas    []string `json:"targetOnlyAromas"`
	CandidateOnlyAromas []string `json:"candidateOnlyAromas"`

	// WhyConfusing and HowToDistinguish are generated explanations.
	WhyConfusing     string `json:"whyConfusing"`
	HowToDistinguish string `json:"howToDistinguish"`
}

// Result is the confusion group for one target.
type Result struct {
	// TargetStyleID echoes the requested target, even when it was not found.
	TargetStyleID string `json:"targetStyleId"`

	// Difficulty echoes the requested difficulty.
	Difficulty Difficulty `json:"difficulty"`

	// Distractors holds 0-3 entries in role order.
	Distractors []Distractor `json:"distractors"`

	// InsufficientCandidates is set when fewer than three candidates survived
	// the final filtering stage.
	InsufficientCandidates bool `json:"insufficientCandidates"`

	// GeneratedAt is an ISO-8601 UTC timestamp with milliseconds (TimestampLayout).
	GeneratedAt string `json:"generatedAt"`
}

// FallbackStage identifies which filtering stage produced the ranked pool.
type FallbackStage int

const (
	// StageNone means no filtering happened (target missing or pool empty).
	StageNone FallbackStage = iota
	// StageStrict applied both the direction threshold and the aroma minimum.
	StageStrict
	// StageDirectionOnly dropped the aroma minimum.
	StageDirectionOnly
	// StageUnfiltered used every gated candidate.
	StageUnfiltered
)

// String returns a metric-friendly stage name.
func (s FallbackStage) String() string {
	switch s {
	case StageStrict:
		return "strict"
	case StageDirectionOnly:
		return "direction_only"
	case StageUnfiltered:
		return "unfiltered"
	default:
		return "none"
	}
}

// Diagnostics reports how a run narrowed the pool. It is not part of Result.
type Diagnostics struct {
	// TargetFound is false when the target was missing from the items.
	TargetFound bool

	// PoolSize is the number of items other than the target.
	PoolSize int

	// GatedCount is the number of candidates that passed gating.
	GatedCount int

	// StrictCount, DirectionOnlyCount and UnfilteredCount are the pool sizes
	// at each fallback stage. Later stages are only computed when needed.
	StrictCount        int
	DirectionOnlyCount int
	UnfilteredCount    int

	// Stage is the stage whose output was ranked.
	Stage FallbackStage
}

// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import (
	"fmt"
	"math"
)

// Config holds every policy constant of the engine.
type Config struct {
	// ScaleMax is the top of the ordinal structure scale.
	// Default: 5.
	ScaleMax float64 `json:"scale_max"`

	// PrimarySourceID is the taxonomy source whose clusters count as primary.
	// Default: "primary".
	PrimarySourceID string `json:"primary_source_id"`

	// Weights blends the component distances into D_total.
	Weights DistanceWeights `json:"weights"`

	// AromaBlend blends descriptor and cluster Jaccard into aroma similarity.
	AromaBlend AromaBlend `json:"aroma_blend"`

	// Difficulties holds one gating/threshold profile per difficulty.
	Difficulties DifficultyProfiles `json:"difficulties"`

	// Roles holds the cutoffs used by role selection.
	Roles RoleThresholds `json:"roles"`

	// Selection bounds the output.
	Selection SelectionConfig `json:"selection"`
}

// DistanceWeights are the weights of the composite distance.
type DistanceWeights struct {
	// Structure weights D_struct. Default: 0.6.
	Structure float64 `json:"structure"`

	// Direction weights D_dir. Default: 0.3.
	Direction float64 `json:"direction"`

	// Aroma weights d_aroma. Default: 0.1.
	Aroma float64 `json:"aroma"`
}

// AromaBlend splits aroma similarity between descriptor and cluster overlap.
type AromaBlend struct {
	// Descriptor weights the descriptor Jaccard index. Default: 0.5.
	Descriptor float64 `json:"descriptor"`

	// Cluster weights the cluster Jaccard index. Default: 0.5.
	Cluster float64 `json:"cluster"`
}

// DifficultyProfile is the gating and threshold policy of one difficulty.
type DifficultyProfile struct {
	// GateWidth is the maximum raw midpoint difference allowed on any
	// co-measured dimension.
	GateWidth float64 `json:"gate_width"`

	// DirThreshold is the maximum D_dir kept by the soft filter.
	DirThreshold float64 `json:"dir_threshold"`

	// AromaMin is the minimum aroma similarity kept by the soft filter.
	AromaMin float64 `json:"aroma_min"`
}

// DifficultyProfiles holds the three profiles.
type DifficultyProfiles struct {
	Easy   DifficultyProfile `json:"easy"`
	Medium DifficultyProfile `json:"medium"`
	Hard   DifficultyProfile `json:"hard"`
}

// RoleThresholds are the cutoffs for the structural and directional roles.
type RoleThresholds struct {
	// StructuralMaxStruct: a structural match needs D_struct below this. Default: 0.3.
	StructuralMaxStruct float64 `json:"structural_max_struct"`

	// StructuralMinDir: a structural match needs D_dir above this. Default: 0.2.
	StructuralMinDir float64 `json:"structural_min_dir"`

	// DirectionalMaxDir: a directional match needs D_dir below this. Default: 0.25.
	DirectionalMaxDir float64 `json:"directional_max_dir"`

	// DirectionalMinStruct: a directional match needs D_struct above this. Default: 0.15.
	DirectionalMinStruct float64 `json:"directional_min_struct"`
}

// SelectionConfig bounds the size of the output.
type SelectionConfig struct {
	// MaxDistractors caps the distractor list. Default: 3.
	MaxDistractors int `json:"max_distractors"`

	// MinCandidates is the pool size each fallback stage must reach. Default: 3.
	MinCandidates int `json:"min_candidates"`

	// MaxPivots caps the pivot dimensions per distractor. Default: 2.
	MaxPivots int `json:"max_pivots"`

	// PivotTolerance is how close to the maximum difference a dimension must
	// be to count as a pivot. Default: 0.01.
	PivotTolerance float64 `json:"pivot_tolerance"`

	// WhyNames caps the shared aroma names quoted in WhyConfusing. Default: 3.
	WhyNames int `json:"why_names"`

	// HowNames caps the aroma names per side quoted in HowToDistinguish. Default: 2.
	HowNames int `json:"how_names"`
}

// DefaultConfig returns the production policy.
func DefaultConfig() *Config {
	return &Config{
		ScaleMax:        5,
		PrimarySourceID: "primary",
		Weights: DistanceWeights{
			Structure: 0.6,
			Direction: 0.3,
			Aroma:     0.1,
		},
		AromaBlend: AromaBlend{
			Descriptor: 0.5,
			Cluster:    0.5,
		},
		Difficulties: DifficultyProfiles{
			Easy:   DifficultyProfile{GateWidth: 2, DirThreshold: 1, AromaMin: 0},
			Medium: DifficultyProfile{GateWidth: 1, DirThreshold: 0.65, AromaMin: 0.05},
			Hard:   DifficultyProfile{GateWidth: 1, DirThreshold: 0.55, AromaMin: 0.15},
		},
		Roles: RoleThresholds{
			StructuralMaxStruct:  0.3,
			StructuralMinDir:     0.2,
			DirectionalMaxDir:    0.25,
			DirectionalMinStruct: 0.15,
		},
		Selection: SelectionConfig{
			MaxDistractors: 3,
			MinCandidates:  3,
			MaxPivots:      2,
			PivotTolerance: 0.01,
			WhyNames:       3,
			HowNames:       2,
		},
	}
}

// Profile returns the profile for d. Unknown difficulties get the medium
// profile; callers are expected to validate the difficulty first.
func (c *Config) Profile(d Difficulty) DifficultyProfile {
	switch d {
	case DifficultyEasy:
		return c.Difficulties.Easy
	case DifficultyHard:
		return c.Difficulties.Hard
	default:
		return c.Difficulties.Medium
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if c.ScaleMax <= 0 || math.IsInf(c.ScaleMax, 0) || math.IsNaN(c.ScaleMax) {
		return fmt.Errorf("scale_max must be positive and finite, got %f", c.ScaleMax)
	}
	if c.PrimarySourceID == "" {
		return fmt.Errorf("primary_source_id must not be empty")
	}

	if c.Weights.Structure < 0 || c.Weights.Direction < 0 || c.Weights.Aroma < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	if c.Weights.Structure+c.Weights.Direction+c.Weights.Aroma == 0 {
		return fmt.Errorf("weights must not all be zero")
	}
	if c.AromaBlend.Descriptor < 0 || c.AromaBlend.Cluster < 0 {
		return fmt.Errorf("aroma_blend must be non-negative, got %+v", c.AromaBlend)
	}

	profiles := map[string]DifficultyProfile{
		"easy":   c.Difficulties.Easy,
		"medium": c.Difficulties.Medium,
		"hard":   c.Difficulties.Hard,
	}
	for _, name := range []string{"easy", "medium", "hard"} {
		p := profiles[name]
		if p.GateWidth < 0 || p.GateWidth > c.ScaleMax {
			return fmt.Errorf("difficulties.%s.gate_width must be in [0, %g], got %f", name, c.ScaleMax, p.GateWidth)
		}
		if p.DirThreshold < 0 {
			return fmt.Errorf("difficulties.%s.dir_threshold must be non-negative, got %f", name, p.DirThreshold)
		}
		if p.AromaMin < 0 || p.AromaMin > 1 {
			return fmt.Errorf("difficulties.%s.aroma_min must be in [0, 1], got %f", name, p.AromaMin)
		}
	}

	if c.Selection.MaxDistractors < 1 {
		return fmt.Errorf("selection.max_distractors must be positive, got %d", c.Selection.MaxDistractors)
	}
	if c.Selection.MinCandidates < 1 {
		return fmt.Errorf("selection.min_candidates must be positive, got %d", c.Selection.MinCandidates)
	}
	if c.Selection.MaxPivots < 0 {
		return fmt.Errorf("selection.max_pivots must be non-negative, got %d", c.Selection.MaxPivots)
	}
	if c.Selection.PivotTolerance < 0 {
		return fmt.Errorf("selection.pivot_tolerance must be non-negative, got %f", c.Selection.PivotTolerance)
	}
	if c.Selection.WhyNames < 0 || c.Selection.HowNames < 0 {
		return fmt.Errorf("selection name limits must be non-negative, got why=%d how=%d",
			c.Selection.WhyNames, c.Selection.HowNames)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs are value types.
	clone := *c
	return &clone
}

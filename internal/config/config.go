// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package config

import (
	"fmt"

	"github.com/MartinLundqvist/wine-app-sub000/internal/confusion"
	"github.com/MartinLundqvist/wine-app-sub000/internal/validation"
)

// Config holds all settings of the confusion tooling.
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Engine  EngineConfig  `koanf:"engine"`
	Drills  DrillsConfig  `koanf:"drills"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"loglevel"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// EngineConfig mirrors the engine policy in file/env form.
type EngineConfig struct {
	ScaleMax        float64 `koanf:"scale_max" validate:"gt=0"`
	PrimarySourceID string  `koanf:"primary_source_id" validate:"required"`

	Weights    WeightsConfig    `koanf:"weights"`
	AromaBlend AromaBlendConfig `koanf:"aroma_blend"`

	Easy   DifficultyConfig `koanf:"easy"`
	Medium DifficultyConfig `koanf:"medium"`
	Hard   DifficultyConfig `koanf:"hard"`

	Roles RolesConfig `koanf:"roles"`

	MaxDistractors int     `koanf:"max_distractors" validate:"min=1"`
	MinCandidates  int     `koanf:"min_candidates" validate:"min=1"`
	MaxPivots      int     `koanf:"max_pivots" validate:"min=0"`
	PivotTolerance float64 `koanf:"pivot_tolerance" validate:"gte=0"`
	WhyNames       int     `koanf:"why_names" validate:"min=0"`
	HowNames       int     `koanf:"how_names" validate:"min=0"`
}

// WeightsConfig weights the composite distance.
type WeightsConfig struct {
	Structure float64 `koanf:"structure" validate:"gte=0"`
	Direction float64 `koanf:"direction" validate:"gte=0"`
	Aroma     float64 `koanf:"aroma" validate:"gte=0"`
}

// AromaBlendConfig blends descriptor and cluster overlap.
type AromaBlendConfig struct {
	Descriptor float64 `koanf:"descriptor" validate:"gte=0"`
	Cluster    float64 `koanf:"cluster" validate:"gte=0"`
}

// DifficultyConfig is the gate and soft thresholds of one difficulty.
type DifficultyConfig struct {
	GateWidth    float64 `koanf:"gate_width" validate:"gte=0"`
	DirThreshold float64 `koanf:"dir_threshold" validate:"gte=0"`
	AromaMin     float64 `koanf:"aroma_min" validate:"gte=0,lte=1"`
}

// RolesConfig holds the role selection cutoffs.
type RolesConfig struct {
	StructuralMaxStruct  float64 `koanf:"structural_max_struct"`
	StructuralMinDir     float64 `koanf:"structural_min_dir"`
	DirectionalMaxDir    float64 `koanf:"directional_max_dir"`
	DirectionalMinStruct float64 `koanf:"directional_min_struct"`
}

// DrillsConfig holds batch generation settings.
type DrillsConfig struct {
	// Workers bounds concurrent engine calls in a batch.
	Workers int `koanf:"workers" validate:"min=1,max=256"`

	// Difficulty is used when the CLI flag is not given.
	Difficulty string `koanf:"difficulty" validate:"difficulty"`
}

// MetricsConfig holds Prometheus textfile export settings.
type MetricsConfig struct {
	// TextfilePath receives the registry in text format after a batch run.
	// Empty disables the export.
	TextfilePath string `koanf:"textfile_path"`
}

// Validate checks field constraints and the resulting engine policy.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.ToEngineConfig().Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

// ToEngineConfig converts the engine section into the engine's own type.
func (c *Config) ToEngineConfig() *confusion.Config {
	e := c.Engine
	return &confusion.Config{
		ScaleMax:        e.ScaleMax,
		PrimarySourceID: e.PrimarySourceID,
		Weights: confusion.DistanceWeights{
			Structure: e.Weights.Structure,
			Direction: e.Weights.Direction,
			Aroma:     e.Weights.Aroma,
		},
		AromaBlend: confusion.AromaBlend{
			Descriptor: e.AromaBlend.Descriptor,
			Cluster:    e.AromaBlend.Cluster,
		},
		Difficulties: confusion.DifficultyProfiles{
			Easy:   e.Easy.profile(),
			Medium: e.Medium.profile(),
			Hard:   e.Hard.profile(),
		},
		Roles: confusion.RoleThresholds{
			StructuralMaxStruct:  e.Roles.StructuralMaxStruct,
			StructuralMinDir:     e.Roles.StructuralMinDir,
			DirectionalMaxDir:    e.Roles.DirectionalMaxDir,
			DirectionalMinStruct: e.Roles.DirectionalMinStruct,
		},
		Selection: confusion.SelectionConfig{
			MaxDistractors: e.MaxDistractors,
			MinCandidates:  e.MinCandidates,
			MaxPivots:      e.MaxPivots,
			PivotTolerance: e.PivotTolerance,
			WhyNames:       e.WhyNames,
			HowNames:       e.HowNames,
		},
	}
}

func (d DifficultyConfig) profile() confusion.DifficultyProfile {
	return confusion.DifficultyProfile{
		GateWidth:    d.GateWidth,
		DirThreshold: d.DirThreshold,
		AromaMin:     d.AromaMin,
	}
}

func fromDifficultyProfile(p confusion.DifficultyProfile) DifficultyConfig {
	return DifficultyConfig{
		GateWidth:    p.GateWidth,
		DirThreshold: p.DirThreshold,
		AromaMin:     p.AromaMin,
	}
}

// engineDefaults derives the engine section from the engine's own defaults
// so the two cannot drift apart.
func engineDefaults() EngineConfig {
	d := confusion.DefaultConfig()
	return EngineConfig{
		ScaleMax:        d.ScaleMax,
		PrimarySourceID: d.PrimarySourceID,
		Weights: WeightsConfig{
			Structure: d.Weights.Structure,
			Direction: d.Weights.Direction,
			Aroma:     d.Weights.Aroma,
		},
		AromaBlend: AromaBlendConfig{
			Descriptor: d.AromaBlend.Descriptor,
			Cluster:    d.AromaBlend.Cluster,
		},
		Easy:   fromDifficultyProfile(d.Difficulties.Easy),
		Medium: fromDifficultyProfile(d.Difficulties.Medium),
		Hard:   fromDifficultyProfile(d.Difficulties.Hard),
		Roles: RolesConfig{
			StructuralMaxStruct:  d.Roles.StructuralMaxStruct,
			StructuralMinDir:     d.Roles.StructuralMinDir,
			DirectionalMaxDir:    d.Roles.DirectionalMaxDir,
			DirectionalMinStruct: d.Roles.DirectionalMinStruct,
		},
		MaxDistractors: d.Selection.MaxDistractors,
		MinCandidates:  d.Selection.MinCandidates,
		MaxPivots:      d.Selection.MaxPivots,
		PivotTolerance: d.Selection.PivotTolerance,
		WhyNames:       d.Selection.WhyNames,
		HowNames:       d.Selection.HowNames,
	}
}

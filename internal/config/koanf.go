// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/MartinLundqvist/wine-app-sub000/internal/confusion"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"confusion.yaml",
	"confusion.yml",
	"/etc/wine-app/confusion.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Engine: engineDefaults(),
		Drills: DrillsConfig{
			Workers:    4,
			Difficulty: string(confusion.DifficultyMedium),
		},
		Metrics: MetricsConfig{
			TextfilePath: "",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, then validates it. A non-empty explicitPath must
// exist; otherwise the file is searched via findConfigFile.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	configPath := explicitPath
	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Engine
	"confusion_scale_max":         "engine.scale_max",
	"confusion_primary_source":    "engine.primary_source_id",
	"confusion_weight_structure":  "engine.weights.structure",
	"confusion_weight_direction":  "engine.weights.direction",
	"confusion_weight_aroma":      "engine.weights.aroma",
	"confusion_blend_descriptor":  "engine.aroma_blend.descriptor",
	"confusion_blend_cluster":     "engine.aroma_blend.cluster",
	"confusion_easy_gate_width":   "engine.easy.gate_width",
	"confusion_easy_dir_max":      "engine.easy.dir_threshold",
	"confusion_easy_aroma_min":    "engine.easy.aroma_min",
	"confusion_medium_gate_width": "engine.medium.gate_width",
	"confusion_medium_dir_max":    "engine.medium.dir_threshold",
	"confusion_medium_aroma_min":  "engine.medium.aroma_min",
	"confusion_hard_gate_width":   "engine.hard.gate_width",
	"confusion_hard_dir_max":      "engine.hard.dir_threshold",
	"confusion_hard_aroma_min":    "engine.hard.aroma_min",
	"confusion_max_distractors":   "engine.max_distractors",
	"confusion_min_candidates":    "engine.min_candidates",
	"confusion_max_pivots":        "engine.max_pivots",
	"confusion_pivot_tolerance":   "engine.pivot_tolerance",
	"confusion_why_names":         "engine.why_names",
	"confusion_how_names":         "engine.how_names",

	"confusion_structural_max_struct":  "engine.roles.structural_max_struct",
	"confusion_structural_min_dir":     "engine.roles.structural_min_dir",
	"confusion_directional_max_dir":    "engine.roles.directional_max_dir",
	"confusion_directional_min_struct": "engine.roles.directional_min_struct",

	// Drills
	"drills_workers":    "drills.workers",
	"drills_difficulty": "drills.difficulty",

	// Metrics
	"metrics_textfile_path": "metrics.textfile_path",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" so unrelated environment does not leak in.
//
// Examples:
//   - LOG_LEVEL -> logging.level
//   - CONFUSION_WEIGHT_STRUCTURE -> engine.weights.structure
//   - DRILLS_WORKERS -> drills.workers
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

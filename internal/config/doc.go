// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

// Package config loads settings for the confusion tooling with Koanf v2.
//
// Sources are layered, later ones winning:
//
//  1. Built-in defaults (the production engine policy)
//  2. An optional YAML file: the --config flag, then CONFIG_PATH, then
//     confusion.yaml / confusion.yml in the working directory, then
//     /etc/wine-app/confusion.yaml
//  3. Environment variables listed in the mapping table (LOG_LEVEL,
//     CONFUSION_WEIGHT_STRUCTURE, DRILLS_WORKERS, ...)
//
// Example file:
//
//	logging:
//	  level: debug
//	  format: console
//	engine:
//	  weights:
//	    structure: 0.5
//	    direction: 0.4
//	    aroma: 0.1
//	  hard:
//	    aroma_min: 0.2
//	drills:
//	  workers: 8
//	metrics:
//	  textfile_path: /var/lib/node_exporter/confusion.prom
//
// Environment variables not in the mapping table are ignored.
package config

// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

// Package catalog loads catalog snapshots for offline confusion group
// generation.
//
// A snapshot is the JSON export of the catalog service: every wine style
// with its structure ranges and aroma associations, plus the aroma taxonomy.
//
//	{
//	  "styles":      [{"id": "barolo", "name": "Barolo", "color": "red", ...}],
//	  "clusters":    [{"id": "red_fruit", "displayName": "Red fruit", "sourceId": "primary"}],
//	  "descriptors": [{"id": "cherry", "displayName": "cherry", "clusterId": "red_fruit"}]
//	}
//
// Snapshots are immutable once loaded and may be shared between goroutines.
package catalog

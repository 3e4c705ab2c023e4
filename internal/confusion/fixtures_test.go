// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import (
	"time"

	"github.com/rs/zerolog"
)

// Shared fixtures for the confusion tests.

const floatTolerance = 1e-9

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func testClusters() []ClusterRow {
	return []ClusterRow{
		{ID: "citrus", DisplayName: "Citrus", SourceID: "primary"},
		{ID: "red_fruit", DisplayName: "Red fruit", SourceID: "primary"},
		{ID: "floral", DisplayName: "Floral", SourceID: "primary"},
		{ID: "oak_spice", DisplayName: "Oak spice", SourceID: "secondary"},
		{ID: "earth", DisplayName: "Earth", SourceID: "tertiary"},
	}
}

func testDescriptors() []DescriptorRow {
	return []DescriptorRow{
		{ID: "lemon", DisplayName: "lemon", ClusterID: "citrus"},
		{ID: "cherry", DisplayName: "cherry", ClusterID: "red_fruit"},
		{ID: "raspberry", DisplayName: "raspberry", ClusterID: "red_fruit"},
		{ID: "rose", DisplayName: "rose", ClusterID: "floral"},
		{ID: "violet", DisplayName: "violet", ClusterID: "floral"},
		{ID: "vanilla", DisplayName: "vanilla", ClusterID: "oak_spice"},
		{ID: "leather", DisplayName: "leather", ClusterID: "earth"},
	}
}

// descriptorCluster resolves the fixture cluster of a descriptor.
var descriptorCluster = map[string]string{
	"lemon":     "citrus",
	"cherry":    "red_fruit",
	"raspberry": "red_fruit",
	"rose":      "floral",
	"violet":    "floral",
	"vanilla":   "oak_spice",
	"leather":   "earth",
	"mystery":   "floral",
}

// levels lists the eight structural midpoints in vector order.
type levels [numStructureDims]float64

// structure builds point measurements (min == max) for every dimension.
func structure(p levels) []StructureMeasurement {
	out := make([]StructureMeasurement, 0, numStructureDims)
	for i, dim := range structureDims {
		out = append(out, StructureMeasurement{DimensionID: dim, MinValue: p[i], MaxValue: p[i]})
	}
	return out
}

// dominant builds dominant aroma associations.
func dominant(descriptors ...string) []AromaAssociation {
	out := make([]AromaAssociation, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, AromaAssociation{
			DescriptorID: d,
			ClusterID:    descriptorCluster[d],
			Salience:     SalienceDominant,
		})
	}
	return out
}

func redStill(id string, p levels, aromas ...string) CatalogItem {
	return CatalogItem{
		ID:           id,
		Name:         id,
		Color:        "red",
		WineCategory: "still",
		Structure:    structure(p),
		Aromas:       dominant(aromas...),
	}
}

// nebbioloCatalog has a target with exactly three gated red candidates at
// easy difficulty, plus a white that must never be considered.
func nebbioloCatalog() []CatalogItem {
	return []CatalogItem{
		redStill("barolo", levels{5, 4, 4, 4, 4, 3, 4, 1}, "cherry", "rose"),
		redStill("langhe", levels{4, 4, 3, 3, 3, 2, 3, 1}, "cherry", "rose"),
		redStill("barbaresco", levels{4.5, 4, 3.5, 4, 4, 3, 4, 1}, "cherry", "rose", "violet"),
		redStill("brunello", levels{4, 3.5, 4, 4, 4, 3, 4, 1}, "cherry", "raspberry"),
		{
			ID:           "chablis",
			Name:         "Chablis",
			Color:        "white",
			WineCategory: "still",
			Structure:    structure(levels{0, 5, 2, 2, 3, 0, 3, 1}),
			Aromas:       dominant("lemon"),
		},
	}
}

// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

// Structural dimension identifiers as stored by the catalog.
const (
	DimTannin    = "tannin"
	DimAcidity   = "acidity"
	DimBody      = "body"
	DimAlcohol   = "alcohol"
	DimIntensity = "intensity"
	DimOak       = "oak"
	DimFinish    = "finish"
	DimSweetness = "sweetness"
)

// structureDims is the fixed vector layout shared by every style.
// Index i of a structural vector always refers to structureDims[i].
var structureDims = [...]string{
	DimTannin,
	DimAcidity,
	DimBody,
	DimAlcohol,
	DimIntensity,
	DimOak,
	DimFinish,
	DimSweetness,
}

// directionDims is the reduced "stylistic direction" layout.
var directionDims = [...]string{
	DimBody,
	DimOak,
	DimIntensity,
}

// numStructureDims and numDirectionDims size the feature vectors.
const (
	numStructureDims = len(structureDims)
	numDirectionDims = len(directionDims)
)

var dimensionLabels = map[string]string{
	DimTannin:    "tannin level",
	DimAcidity:   "acidity",
	DimBody:      "body",
	DimAlcohol:   "alcohol warmth",
	DimIntensity: "overall intensity",
	DimOak:       "oak influence",
	DimFinish:    "finish length",
	DimSweetness: "sweetness",
}

// StructureDimensions returns the ordered structural dimension identifiers.
func StructureDimensions() []string {
	out := make([]string, numStructureDims)
	copy(out, structureDims[:])
	return out
}

// DirectionDimensions returns the ordered direction dimension identifiers.
func DirectionDimensions() []string {
	out := make([]string, numDirectionDims)
	copy(out, directionDims[:])
	return out
}

// DimensionLabel returns the human-readable name of a structural dimension.
// Unknown identifiers are returned unchanged.
func DimensionLabel(id string) string {
	if label, ok := dimensionLabels[id]; ok {
		return label
	}
	return id
}

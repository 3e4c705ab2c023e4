// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

// idSet is an insertion-ordered set of identifiers.
// Iteration follows first-insertion order so output stays deterministic.
type idSet struct {
	order   []string
	members map[string]struct{}
}

func newIDSet(capacity int) idSet {
	return idSet{
		order:   make([]string, 0, capacity),
		members: make(map[string]struct{}, capacity),
	}
}

func (s *idSet) add(id string) {
	if _, ok := s.members[id]; ok {
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s idSet) has(id string) bool {
	_, ok := s.members[id]
	return ok
}

func (s idSet) len() int {
	return len(s.order)
}

// features is the comparable projection of a catalog item.
type features struct {
	item *CatalogItem

	// midpoints holds the raw (min+max)/2 of every measured dimension.
	// The first measurement of a dimension wins.
	midpoints map[string]float64

	// structure and direction are normalized to [0, 1]; unmeasured dimensions are 0.
	structure [numStructureDims]float64
	direction [numDirectionDims]float64

	// descriptors and clusters hold dominant primary aromas only.
	descriptors idSet
	clusters    idSet
}

// primaryClusterSet returns the IDs of clusters owned by the primary source.
func primaryClusterSet(clusters []ClusterRow, primarySourceID string) map[string]struct{} {
	primary := make(map[string]struct{}, len(clusters))
	for _, c := range clusters {
		if c.SourceID == primarySourceID {
			primary[c.ID] = struct{}{}
		}
	}
	return primary
}

// extractFeatures projects item into its structural vector, direction vector
// and dominant primary aroma sets.
func extractFeatures(item *CatalogItem, primary map[string]struct{}, scaleMax float64) *features {
	f := &features{
		item:        item,
		midpoints:   make(map[string]float64, len(item.Structure)),
		descriptors: newIDSet(len(item.Aromas)),
		clusters:    newIDSet(len(item.Aromas)),
	}

	for _, m := range item.Structure {
		if _, seen := f.midpoints[m.DimensionID]; seen {
			continue
		}
		f.midpoints[m.DimensionID] = (m.MinValue + m.MaxValue) / 2
	}

	for i, dim := range structureDims {
		f.structure[i] = normalizeMidpoint(f.midpoints, dim, scaleMax)
	}
	for i, dim := range directionDims {
		f.direction[i] = normalizeMidpoint(f.midpoints, dim, scaleMax)
	}

	for _, a := range item.Aromas {
		if a.Salience != SalienceDominant {
			continue
		}
		if _, ok := primary[a.ClusterID]; !ok {
			continue
		}
		f.descriptors.add(a.DescriptorID)
		f.clusters.add(a.ClusterID)
	}

	return f
}

// normalizeMidpoint maps a raw midpoint onto [0, 1]. Missing dimensions are 0,
// which makes sparse styles look light on the dimensions they do not report.
func normalizeMidpoint(midpoints map[string]float64, dim string, scaleMax float64) float64 {
	mid, ok := midpoints[dim]
	if !ok {
		return 0
	}
	return clamp01(mid / scaleMax)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

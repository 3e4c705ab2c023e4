// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import (
	"fmt"
	"strings"
)

// aromaSplit holds descriptor display names partitioned by ownership.
type aromaSplit struct {
	shared        []string
	targetOnly    []string
	candidateOnly []string
}

// descriptorNameIndex maps descriptor IDs to display names.
func descriptorNameIndex(descriptors []DescriptorRow) map[string]string {
	names := make(map[string]string, len(descriptors))
	for _, d := range descriptors {
		if _, ok := names[d.ID]; ok {
			continue
		}
		names[d.ID] = d.DisplayName
	}
	return names
}

// splitAromas partitions the dominant primary descriptors of both styles.
// Names fall back to the raw descriptor ID when the taxonomy has none.
func splitAromas(target, candidate *features, names map[string]string) aromaSplit {
	resolve := func(id string) string {
		if n := names[id]; n != "" {
			return n
		}
		return id
	}

	split := aromaSplit{
		shared:        []string{},
		targetOnly:    []string{},
		candidateOnly: []string{},
	}
	for _, id := range target.descriptors.order {
		if candidate.descriptors.has(id) {
			split.shared = append(split.shared, resolve(id))
		} else {
			split.targetOnly = append(split.targetOnly, resolve(id))
		}
	}
	for _, id := range candidate.descriptors.order {
		if !target.descriptors.has(id) {
			split.candidateOnly = append(split.candidateOnly, resolve(id))
		}
	}
	return split
}

// whyConfusing explains what makes the distractor easy to mistake for the target.
func whyConfusing(role Role, shared []string, limit int) string {
	var base string
	switch role {
	case RoleEvilTwin:
		base = "Closest match overall, with a near-identical structure and stylistic direction"
	case RoleStructuralMatch:
		base = "Very similar structure on the palate even though the style leans a different way"
	case RoleDirectionalMatch:
		base = "Same stylistic direction in body, oak and intensity even though the structure differs"
	default:
		base = "Similar profile"
	}

	shared = firstN(shared, limit)
	if len(shared) == 0 {
		return base + "."
	}
	return fmt.Sprintf("%s; both are dominated by %s.", base, joinNames(shared))
}

// howToDistinguish tells the taster where to look to separate the two styles.
func howToDistinguish(pivots, targetOnly, candidateOnly []string, targetName, candidateName string, limit int) string {
	var b strings.Builder

	if len(pivots) > 0 {
		labels := make([]string, len(pivots))
		for i, p := range pivots {
			labels[i] = DimensionLabel(p)
		}
		fmt.Fprintf(&b, "Focus on %s, where %s and %s differ most", joinNames(labels), targetName, candidateName)
	} else {
		fmt.Fprintf(&b, "%s and %s are structurally almost identical", targetName, candidateName)
	}

	targetOnly = firstN(targetOnly, limit)
	candidateOnly = firstN(candidateOnly, limit)
	switch {
	case len(targetOnly) > 0 && len(candidateOnly) > 0:
		fmt.Fprintf(&b, "; look for %s in %s versus %s in %s",
			joinNames(targetOnly), targetName, joinNames(candidateOnly), candidateName)
	case len(targetOnly) > 0:
		fmt.Fprintf(&b, "; only %s shows %s", targetName, joinNames(targetOnly))
	case len(candidateOnly) > 0:
		fmt.Fprintf(&b, "; only %s shows %s", candidateName, joinNames(candidateOnly))
	default:
		b.WriteString("; their dominant aromas will not separate them")
	}
	b.WriteString(".")

	return b.String()
}

// joinNames renders "a", "a and b" or "a, b and c".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

func firstN(names []string, n int) []string {
	if len(names) > n {
		return names[:n]
	}
	return names
}

// displayName falls back to the ID for unnamed styles.
func displayName(item *CatalogItem) string {
	if item.Name != "" {
		return item.Name
	}
	return item.ID
}

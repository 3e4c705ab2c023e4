// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package confusion

import "math"

// gate keeps the candidates that could plausibly be confused with target.
// A candidate must share color and category, must not be the target, and must
// stay within gateWidth on every dimension both styles measure. Pool order is
// preserved.
func gate(target *features, pool []*features, gateWidth float64) []*features {
	kept := make([]*features, 0, len(pool))
	for _, c := range pool {
		if c.item.ID == target.item.ID {
			continue
		}
		if c.item.Color != target.item.Color || c.item.WineCategory != target.item.WineCategory {
			continue
		}
		if !withinGate(target, c, gateWidth) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// withinGate reports whether every co-measured raw midpoint differs by at most
// width. Dimensions missing on either side are skipped.
func withinGate(a, b *features, width float64) bool {
	for dim, av := range a.midpoints {
		bv, ok := b.midpoints[dim]
		if !ok {
			continue
		}
		if math.Abs(av-bv) > width {
			return false
		}
	}
	return true
}

// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/MartinLundqvist/wine-app-sub000/internal/catalog"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadCatalog loads and validates a snapshot.
func loadCatalog(path string) (*catalog.Snapshot, error) {
	snap, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return snap, nil
}

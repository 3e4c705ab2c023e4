// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/MartinLundqvist/wine-app-sub000/internal/confusion"
	"github.com/MartinLundqvist/wine-app-sub000/internal/validation"
)

var (
	// ErrStyleNotFound is returned when a style ID is not in the snapshot.
	ErrStyleNotFound = errors.New("style not found")

	// ErrDuplicateStyle is returned when two styles share an ID.
	ErrDuplicateStyle = errors.New("duplicate style id")
)

// Snapshot is an in-memory copy of the catalog and aroma taxonomy.
type Snapshot struct {
	Styles      []confusion.CatalogItem   `json:"styles" validate:"min=1,dive"`
	Clusters    []confusion.ClusterRow    `json:"clusters" validate:"dive"`
	Descriptors []confusion.DescriptorRow `json:"descriptors" validate:"dive"`

	index map[string]int
}

// Load reads and decodes the snapshot at path. The snapshot is not
// validated; call Validate before trusting it.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return snap, nil
}

// Decode reads a snapshot document from r.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	snap.buildIndex()
	return &snap, nil
}

// buildIndex maps each style ID to its first position.
func (s *Snapshot) buildIndex() {
	s.index = make(map[string]int, len(s.Styles))
	for i := range s.Styles {
		if _, ok := s.index[s.Styles[i].ID]; !ok {
			s.index[s.Styles[i].ID] = i
		}
	}
}

// Validate checks field constraints and rejects duplicate style IDs.
func (s *Snapshot) Validate() error {
	if verr := validation.ValidateStruct(s); verr != nil {
		return fmt.Errorf("invalid catalog: %w", verr)
	}

	seen := make(map[string]struct{}, len(s.Styles))
	for i := range s.Styles {
		id := s.Styles[i].ID
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateStyle, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Find returns the style with the given ID.
func (s *Snapshot) Find(id string) (*confusion.CatalogItem, error) {
	if s.index == nil {
		s.buildIndex()
	}
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, id)
	}
	return &s.Styles[i], nil
}

// IDs returns the style IDs in snapshot order.
func (s *Snapshot) IDs() []string {
	ids := make([]string, len(s.Styles))
	for i := range s.Styles {
		ids[i] = s.Styles[i].ID
	}
	return ids
}

// Request builds an engine request for targetID over the whole snapshot.
func (s *Snapshot) Request(targetID string, difficulty confusion.Difficulty) confusion.Request {
	return confusion.Request{
		Items:       s.Styles,
		Clusters:    s.Clusters,
		Descriptors: s.Descriptors,
		TargetID:    targetID,
		Difficulty:  difficulty,
	}
}

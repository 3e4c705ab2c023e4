// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package drills

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"go.uber.org/goleak"

	"github.com/MartinLundqvist/wine-app-sub000/internal/catalog"
	"github.com/MartinLundqvist/wine-app-sub000/internal/confusion"
	"github.com/MartinLundqvist/wine-app-sub000/internal/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func testEngine(t *testing.T) *confusion.Engine {
	t.Helper()
	engine, err := confusion.NewEngine(nil, zerolog.Nop(), confusion.WithClock(fixedClock))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// testSnapshot builds a catalog of n red still styles whose structure drifts
// slowly, so most targets have several gated neighbours.
func testSnapshot(n int) *catalog.Snapshot {
	dims := confusion.StructureDimensions()
	aromas := []string{"cherry", "raspberry", "rose", "violet"}

	snap := &catalog.Snapshot{
		Clusters: []confusion.ClusterRow{
			{ID: "red_fruit", DisplayName: "Red fruit", SourceID: "primary"},
			{ID: "floral", DisplayName: "Floral", SourceID: "primary"},
		},
		Descriptors: []confusion.DescriptorRow{
			{ID: "cherry", DisplayName: "cherry", ClusterID: "red_fruit"},
			{ID: "raspberry", DisplayName: "raspberry", ClusterID: "red_fruit"},
			{ID: "rose", DisplayName: "rose", ClusterID: "floral"},
			{ID: "violet", DisplayName: "violet", ClusterID: "floral"},
		},
	}
	for i := 0; i < n; i++ {
		item := confusion.CatalogItem{
			ID:           fmt.Sprintf("style_%02d", i),
			Name:         fmt.Sprintf("Style %d", i),
			Color:        "red",
			WineCategory: "still",
		}
		for d, dim := range dims {
			v := float64((i+d)%3) + 2
			item.Structure = append(item.Structure, confusion.StructureMeasurement{DimensionID: dim, MinValue: v, MaxValue: v})
		}
		for k := 0; k < 2; k++ {
			desc := aromas[(i+k)%len(aromas)]
			cluster := "red_fruit"
			if desc == "rose" || desc == "violet" {
				cluster = "floral"
			}
			item.Aromas = append(item.Aromas, confusion.AromaAssociation{
				DescriptorID: desc,
				ClusterID:    cluster,
				Salience:     confusion.SalienceDominant,
			})
		}
		snap.Styles = append(snap.Styles, item)
	}
	return snap
}

func TestNewBuilder(t *testing.T) {
	if _, err := NewBuilder(nil, 4, zerolog.Nop()); !errors.Is(err, ErrNoEngine) {
		t.Errorf("NewBuilder(nil) error = %v, want ErrNoEngine", err)
	}

	tests := []struct {
		workers int
		want    int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{16, 16},
	}
	for _, tt := range tests {
		b, err := NewBuilder(testEngine(t), tt.workers, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewBuilder(%d) error = %v", tt.workers, err)
		}
		if b.Workers() != tt.want {
			t.Errorf("NewBuilder(%d).Workers() = %d, want %d", tt.workers, b.Workers(), tt.want)
		}
	}
}

func TestBuild_MatchesSequentialGeneration(t *testing.T) {
	engine := testEngine(t)
	snap := testSnapshot(24)

	for _, workers := range []int{1, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			b, err := NewBuilder(engine, workers, zerolog.Nop())
			if err != nil {
				t.Fatalf("NewBuilder() error = %v", err)
			}

			batch, err := b.Build(context.Background(), snap, nil, confusion.DifficultyMedium)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			want := make([]*confusion.Result, 0, len(snap.Styles))
			for _, id := range snap.IDs() {
				want = append(want, engine.Generate(snap.Request(id, confusion.DifficultyMedium)))
			}
			if diff := cmp.Diff(want, batch.Groups); diff != "" {
				t.Errorf("Build() groups mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_Summary(t *testing.T) {
	snap := testSnapshot(12)
	b, err := NewBuilder(testEngine(t), 4, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	batch, err := b.Build(context.Background(), snap, nil, confusion.DifficultyEasy)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	s := batch.Summary
	if s.Total != 12 || s.Complete != 12 || s.Cancelled != 0 {
		t.Errorf("Summary = %+v, want 12 total and complete", s)
	}
	if batch.Difficulty != confusion.DifficultyEasy {
		t.Errorf("Difficulty = %s, want easy", batch.Difficulty)
	}

	distractors, insufficient := 0, 0
	for _, g := range batch.Groups {
		distractors += len(g.Distractors)
		if g.InsufficientCandidates {
			insufficient++
		}
	}
	roles := 0
	for _, n := range s.Roles {
		roles += n
	}
	if roles != distractors {
		t.Errorf("role tally = %d, want %d", roles, distractors)
	}
	if s.Insufficient != insufficient {
		t.Errorf("Insufficient = %d, want %d", s.Insufficient, insufficient)
	}
	stages := 0
	for _, n := range s.Stages {
		stages += n
	}
	if stages != s.Complete {
		t.Errorf("stage tally = %d, want %d", stages, s.Complete)
	}
}

func TestBuild_ExplicitTargets(t *testing.T) {
	snap := testSnapshot(6)
	b, err := NewBuilder(testEngine(t), 2, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	targets := []string{"style_04", "missing", "style_01"}
	batch, err := b.Build(context.Background(), snap, targets, confusion.DifficultyHard)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := make([]string, 0, len(batch.Groups))
	for _, g := range batch.Groups {
		got = append(got, g.TargetStyleID)
	}
	if diff := cmp.Diff(targets, got); diff != "" {
		t.Errorf("group order mismatch (-want +got):\n%s", diff)
	}

	missing := batch.Groups[1]
	if len(missing.Distractors) != 0 || !missing.InsufficientCandidates {
		t.Errorf("missing target group = %+v, want empty and insufficient", missing)
	}
	if batch.Summary.Stages["none"] != 1 {
		t.Errorf("Stages = %v, want one none stage", batch.Summary.Stages)
	}
}

func TestBuild_CancelledContext(t *testing.T) {
	snap := testSnapshot(8)
	b, err := NewBuilder(testEngine(t), 2, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := b.Build(ctx, snap, nil, confusion.DifficultyMedium)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Build() error = %v, want context.Canceled", err)
	}
	if batch == nil {
		t.Fatal("Build() returned nil batch on cancellation")
	}
	if batch.Summary.Cancelled != 8 || batch.Summary.Complete != 0 || len(batch.Groups) != 0 {
		t.Errorf("Summary = %+v, groups = %d", batch.Summary, len(batch.Groups))
	}
}

func TestBuild_EmptySnapshot(t *testing.T) {
	b, err := NewBuilder(testEngine(t), 2, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	batch, err := b.Build(context.Background(), &catalog.Snapshot{}, nil, confusion.DifficultyMedium)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if batch.Summary.Total != 0 || len(batch.Groups) != 0 {
		t.Errorf("batch = %+v, want empty", batch)
	}
	if batch.Groups == nil {
		t.Error("Groups is nil, want empty slice")
	}
}

func TestBuild_LogsCorrelationIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger().Level(zerolog.DebugLevel)

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	b, err := NewBuilder(testEngine(t), 2, logger)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	ctx := logging.ContextWithRunID(context.Background(), "run-1")
	batch, err := b.Build(ctx, testSnapshot(3), nil, confusion.DifficultyMedium)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if batch.RunID != "run-1" {
		t.Errorf("RunID = %q, want run-1", batch.RunID)
	}

	out := buf.String()
	for _, want := range []string{
		`"component":"drills"`,
		`"run_id":"run-1"`,
		`"correlation_id":`,
		`"message":"Batch started"`,
		`"message":"Confusion group generated"`,
		`"message":"Batch finished"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "Confusion group generated"); n != 3 {
		t.Errorf("logged %d groups, want 3", n)
	}
}

package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/stagehand/pkg/cache"
	"github.com/matzehuels/stagehand/pkg/errors"
	"github.com/matzehuels/stagehand/pkg/scene"
	"github.com/matzehuels/stagehand/pkg/stage"
)

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Items: []string{"a"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("defaults = %gx%g", opts.Width, opts.Height)
	}
	if opts.Direction != DefaultDirection {
		t.Errorf("direction = %q", opts.Direction)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatText {
		t.Errorf("formats = %v", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("logger default missing")
	}

	// Idempotent.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call: %v", err)
	}
}

func TestOptionsValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no items", Options{}, errors.ErrCodeInvalidInput},
		{"negative width", Options{Items: []string{"a"}, Width: -5, Height: 10}, errors.ErrCodeInvalidStage},
		{"negative margin", Options{Items: []string{"a"}, MarginX: -1}, errors.ErrCodeInvalidInput},
		{"bad direction", Options{Items: []string{"a"}, Direction: "diagonal"}, errors.ErrCodeInvalidDirection},
		{"bad format", Options{Items: []string{"a"}, Formats: []string{"svg"}}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestOptionsStage(t *testing.T) {
	opts := Options{Left: 5, Top: 2, Width: 60, Height: 20}
	want := stage.Stage{Left: 5, Right: 65, Top: 2, Bottom: 22}
	if got := opts.Stage(); got != want {
		t.Errorf("Stage() = %+v, want %+v", got, want)
	}
}

func TestFromScene(t *testing.T) {
	s := &scene.Scene{
		Stage:     stage.Stage{Left: 0, Right: 60, Top: 0, Bottom: 20},
		Direction: scene.DirectionHorizontal,
		MarginX:   2,
		Items:     []string{"a", "b"},
	}
	opts := FromScene(s)
	if opts.Stage() != s.Stage {
		t.Errorf("Stage = %+v, want %+v", opts.Stage(), s.Stage)
	}
	if opts.Direction != scene.DirectionHorizontal || opts.MarginX != 2 {
		t.Errorf("opts = %+v", opts)
	}
}

func TestGenerateLayout(t *testing.T) {
	opts := Options{
		Width:     60,
		Height:    20,
		Direction: scene.DirectionHorizontal,
		Items:     []string{"First", "Second button", "Third interaction"},
	}

	layout, err := GenerateLayout(context.Background(), opts)
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	if len(layout.Placements) != 3 {
		t.Fatalf("placements = %d, want 3", len(layout.Placements))
	}
	if layout.Direction != scene.DirectionHorizontal {
		t.Errorf("direction = %q", layout.Direction)
	}

	// Buttons are label width + 2 borders, stacked with one separator.
	first := layout.Placements[0].Placement
	if first.Left != 0 || first.Right != 7 {
		t.Errorf("first placement = %+v", first)
	}
	second := layout.Placements[1].Placement
	if second.Left != 8 {
		t.Errorf("second placement left = %v, want 8", second.Left)
	}
	if layout.Placements[2].Item != "Third interaction" {
		t.Errorf("third item = %q", layout.Placements[2].Item)
	}
}

func TestGenerateLayoutAdaptive(t *testing.T) {
	// A wide stage stacks horizontally, a tall one vertically.
	wide := Options{Width: 60, Height: 20, Direction: scene.DirectionAuto, Items: []string{"a", "b"}}
	tall := Options{Width: 20, Height: 60, Direction: scene.DirectionAuto, Items: []string{"a", "b"}}

	wl, err := GenerateLayout(context.Background(), wide)
	if err != nil {
		t.Fatalf("wide: %v", err)
	}
	tl, err := GenerateLayout(context.Background(), tall)
	if err != nil {
		t.Fatalf("tall: %v", err)
	}

	if wl.Placements[1].Placement.Left <= wl.Placements[0].Placement.Left {
		t.Error("wide stage should advance along x")
	}
	if tl.Placements[1].Placement.Top <= tl.Placements[0].Placement.Top {
		t.Error("tall stage should advance along y")
	}
	if tl.Placements[1].Placement.Left != tl.Placements[0].Placement.Left {
		t.Error("vertical stacking should keep the left edge")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	opts := Options{Items: []string{"First", "Second"}}
	layout, err := GenerateLayout(context.Background(), opts)
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}

	data, err := MarshalLayout(layout)
	if err != nil {
		t.Fatalf("MarshalLayout: %v", err)
	}
	restored, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if len(restored.Placements) != len(layout.Placements) {
		t.Fatalf("placements = %d, want %d", len(restored.Placements), len(layout.Placements))
	}
	if restored.Cursor != layout.Cursor {
		t.Errorf("cursor = %+v, want %+v", restored.Cursor, layout.Cursor)
	}
}

func TestRenderText(t *testing.T) {
	opts := Options{
		Width:     60,
		Height:    20,
		Direction: scene.DirectionHorizontal,
		Items:     []string{"First", "Second button"},
		Formats:   []string{FormatText},
	}
	layout, err := GenerateLayout(context.Background(), opts)
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}

	artifacts, err := RenderFromLayout(context.Background(), layout, opts)
	if err != nil {
		t.Fatalf("RenderFromLayout: %v", err)
	}

	text := string(artifacts[FormatText])
	if !strings.Contains(text, "|First|") {
		t.Errorf("text output missing first button:\n%s", text)
	}
	if !strings.Contains(text, "|Second button|") {
		t.Errorf("text output missing second button:\n%s", text)
	}
}

func TestRenderJSON(t *testing.T) {
	opts := Options{Items: []string{"a"}, Formats: []string{FormatJSON}}
	layout, err := GenerateLayout(context.Background(), opts)
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}

	artifacts, err := RenderFromLayout(context.Background(), layout, opts)
	if err != nil {
		t.Fatalf("RenderFromLayout: %v", err)
	}
	restored, err := UnmarshalLayout(artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("json artifact should round-trip: %v", err)
	}
	if len(restored.Placements) != 1 {
		t.Errorf("placements = %d", len(restored.Placements))
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	opts := Options{Items: []string{"First", "Second"}}
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.ItemCount != 2 {
		t.Errorf("ItemCount = %d", result.Stats.ItemCount)
	}
	if len(result.Artifacts[FormatText]) == 0 {
		t.Error("missing text artifact")
	}
	if result.LayoutHash == "" {
		t.Error("missing layout hash")
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("null cache should never hit")
	}
}

func TestRunnerCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	ctx := context.Background()
	opts := Options{Items: []string{"First", "Second"}}

	r1, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if r1.CacheInfo.LayoutHit || r1.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	r2, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !r2.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !r2.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if string(r1.Artifacts[FormatText]) != string(r2.Artifacts[FormatText]) {
		t.Error("cached artifact differs from fresh one")
	}

	// Refresh bypasses the layout cache.
	opts.Refresh = true
	r3, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if r3.CacheInfo.LayoutHit {
		t.Error("refresh run should not hit the layout cache")
	}
	if r3.CacheInfo.RenderHit {
		t.Error("refresh run should not hit the artifact cache")
	}
}

func TestRunnerCachingStageOrigin(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	ctx := context.Background()
	items := []string{"First", "Second"}

	a, hitA, err := runner.LayoutWithCacheInfo(ctx, Options{Items: items})
	if err != nil {
		t.Fatalf("first layout: %v", err)
	}
	if hitA {
		t.Error("first run should miss the cache")
	}

	// Same dimensions, shifted origin: a different layout, so it must
	// not be served from the first run's entry.
	b, hitB, err := runner.LayoutWithCacheInfo(ctx, Options{Left: 100, Top: 50, Items: items})
	if err != nil {
		t.Fatalf("shifted layout: %v", err)
	}
	if hitB {
		t.Error("shifted origin should miss the cache")
	}

	want := stage.Stage{Left: 100, Right: 160, Top: 50, Bottom: 70}
	if b.Stage != want {
		t.Errorf("shifted stage = %+v, want %+v", b.Stage, want)
	}
	// Horizontal stacking pins each placement's top edge to the stage.
	if b.Placements[0].Placement.Top != 50 {
		t.Errorf("first placement not pinned to shifted top: %+v", b.Placements[0].Placement)
	}
	if a.Stage == b.Stage {
		t.Error("runs with different origins should not share a stage")
	}
}

func TestRunnerExecuteDeterminism(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{Items: []string{"a", "b", "c"}, Formats: []string{FormatText, FormatJSON}}

	r1, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if r1.LayoutHash != r2.LayoutHash {
		t.Error("layout hash should be deterministic")
	}
	for _, f := range opts.Formats {
		if string(r1.Artifacts[f]) != string(r2.Artifacts[f]) {
			t.Errorf("artifact %s differs between identical runs", f)
		}
	}
}

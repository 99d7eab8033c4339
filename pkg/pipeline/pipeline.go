// Package pipeline provides the layout → render pipeline for Stagehand.
//
// This package wires the negotiation core (pkg/negotiate with the
// pkg/actor performer) into a cached, observable flow that CLI and
// library consumers share. Centralizing the flow keeps behavior
// consistent across entry points.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: negotiate one placement per item across the stage
//  2. Render: turn the placements into output artifacts (text, JSON)
//
// Each stage can be run independently or as part of the complete
// pipeline, and each stage's result is cached keyed by a hash of its
// inputs - negotiation is deterministic, so equal inputs always yield
// equal artifacts.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Width:  60,
//	    Height: 20,
//	    Items:  []string{"First", "Second button"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(result.Artifacts["text"]))
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stagehand/pkg/cache"
	"github.com/matzehuels/stagehand/pkg/errors"
	"github.com/matzehuels/stagehand/pkg/scene"
	"github.com/matzehuels/stagehand/pkg/stage"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library
// =============================================================================

const (
	// DefaultWidth is the default stage width in grid units.
	DefaultWidth = 60.0

	// DefaultHeight is the default stage height in grid units.
	DefaultHeight = 20.0

	// DefaultDirection is the default stacking direction.
	DefaultDirection = scene.DirectionAuto
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidDirections is the set of supported stacking directions.
var ValidDirections = map[string]bool{
	scene.DirectionHorizontal: true,
	scene.DirectionVertical:   true,
	scene.DirectionAuto:       true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// The struct supports JSON serialization for library consumers.
type Options struct {
	// Stage geometry. Left/Top default to 0; Width/Height position
	// Right/Bottom relative to them when Right/Bottom are unset.
	Left   float64 `json:"left,omitempty"`
	Top    float64 `json:"top,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Layout options
	Direction string  `json:"direction,omitempty"`
	MarginX   float64 `json:"margin_x,omitempty"`
	MarginY   float64 `json:"margin_y,omitempty"`

	// Items to place, in order.
	Items []string `json:"items"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache for this run.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// FromScene builds pipeline options from a parsed scene manifest.
func FromScene(s *scene.Scene) Options {
	return Options{
		Left:      s.Stage.Left,
		Top:       s.Stage.Top,
		Width:     s.Stage.Width(),
		Height:    s.Stage.Height(),
		Direction: s.Direction,
		MarginX:   s.MarginX,
		MarginY:   s.MarginY,
		Items:     s.Items,
	}
}

// Stage returns the stage rectangle described by the options.
func (o *Options) Stage() stage.Stage {
	return stage.Stage{
		Left:   o.Left,
		Top:    o.Top,
		Right:  o.Left + o.Width,
		Bottom: o.Top + o.Height,
	}
}

// Cursor returns the initial cursor for a run: zero offsets with the
// configured margins.
func (o *Options) Cursor() stage.Cursor {
	return stage.Cursor{MarginX: o.MarginX, MarginY: o.MarginY}
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	o.SetLayoutDefaults()
	o.SetRenderDefaults()

	if len(o.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one item is required")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidStage,
			"stage dimensions must be positive (width=%g, height=%g)", o.Width, o.Height)
	}
	if o.MarginX < 0 || o.MarginY < 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"margins must not be negative (margin_x=%g, margin_y=%g)", o.MarginX, o.MarginY)
	}
	if err := ValidateDirection(o.Direction); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Direction == "" {
		o.Direction = DefaultDirection
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Direction: o.Direction,
		Left:      o.Left,
		Top:       o.Top,
		Width:     o.Width,
		Height:    o.Height,
		MarginX:   o.MarginX,
		MarginY:   o.MarginY,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDirection checks that a stacking direction is valid.
func ValidateDirection(direction string) error {
	if !ValidDirections[direction] {
		return errors.New(errors.ErrCodeInvalidDirection,
			"invalid direction: %q (must be one of: horizontal, vertical, auto)", direction)
	}
	return nil
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the negotiated layout: one placement per item plus the
	// final cursor.
	Layout LayoutResult

	// LayoutHash is the content hash of the serialized layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

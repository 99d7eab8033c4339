// Package scene loads stage descriptions from TOML manifests.
//
// A scene file declares the stage rectangle, the stacking direction,
// optional margins, and the ordered list of items to place:
//
//	items = ["First", "Second button", "Third interaction"]
//
//	[stage]
//	left = 0
//	right = 60
//	top = 0
//	bottom = 20
//
//	[layout]
//	direction = "auto"
//	margin-x = 0
//	margin-y = 0
//
// Loading validates geometry and direction and reports failures with
// structured error codes from pkg/errors.
package scene

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stagehand/pkg/direct"
	"github.com/matzehuels/stagehand/pkg/errors"
	"github.com/matzehuels/stagehand/pkg/stage"
)

// Directions accepted in a scene manifest.
const (
	DirectionHorizontal = "horizontal"
	DirectionVertical   = "vertical"
	DirectionAuto       = "auto"
)

// DefaultDirection is used when a manifest omits the direction.
const DefaultDirection = DirectionAuto

// Scene is a parsed and validated scene manifest.
type Scene struct {
	Stage     stage.Stage
	Direction string
	MarginX   float64
	MarginY   float64
	Items     []string
}

// Director returns the director policy named by the scene's direction.
func (s *Scene) Director() direct.Director {
	d, _ := direct.ByName(s.Direction)
	return d
}

// Cursor returns the initial cursor for the scene: zero offsets with
// the scene's margins.
func (s *Scene) Cursor() stage.Cursor {
	return stage.Cursor{MarginX: s.MarginX, MarginY: s.MarginY}
}

// manifest mirrors the TOML file layout.
type manifest struct {
	Stage struct {
		Left   float64 `toml:"left"`
		Right  float64 `toml:"right"`
		Top    float64 `toml:"top"`
		Bottom float64 `toml:"bottom"`
	} `toml:"stage"`
	Layout struct {
		Direction string  `toml:"direction"`
		MarginX   float64 `toml:"margin-x"`
		MarginY   float64 `toml:"margin-y"`
	} `toml:"layout"`
	Items []string `toml:"items"`
}

// Load reads and parses a scene manifest from path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "scene file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to read %s", path)
	}
	return Parse(data)
}

// Parse parses a scene manifest from raw TOML.
func Parse(data []byte) (*Scene, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse scene manifest")
	}

	s := &Scene{
		Stage: stage.Stage{
			Left:   m.Stage.Left,
			Right:  m.Stage.Right,
			Top:    m.Stage.Top,
			Bottom: m.Stage.Bottom,
		},
		Direction: m.Layout.Direction,
		MarginX:   m.Layout.MarginX,
		MarginY:   m.Layout.MarginY,
		Items:     m.Items,
	}
	if s.Direction == "" {
		s.Direction = DefaultDirection
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the scene's geometry, direction, and items.
func (s *Scene) Validate() error {
	if s.Stage.Width() <= 0 {
		return errors.New(errors.ErrCodeInvalidStage,
			"stage width must be positive (left=%g, right=%g)", s.Stage.Left, s.Stage.Right)
	}
	if s.Stage.Height() <= 0 {
		return errors.New(errors.ErrCodeInvalidStage,
			"stage height must be positive (top=%g, bottom=%g)", s.Stage.Top, s.Stage.Bottom)
	}
	if _, ok := direct.ByName(s.Direction); !ok {
		return errors.New(errors.ErrCodeInvalidDirection,
			"invalid direction: %q (must be one of: horizontal, vertical, auto)", s.Direction)
	}
	if s.MarginX < 0 || s.MarginY < 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"margins must not be negative (margin-x=%g, margin-y=%g)", s.MarginX, s.MarginY)
	}
	if len(s.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "scene has no items")
	}
	return nil
}

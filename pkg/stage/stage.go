// Package stage defines the geometry and layout state threaded through
// a negotiation run: the Stage rectangle, the Placement a performer
// reports back, and the Cursor that carries offsets between placements.
package stage

// Aspect describes the dominant orientation of a stage.
type Aspect int

const (
	// AspectHorizontal means the stage is wider than it is tall.
	AspectHorizontal Aspect = iota
	// AspectVertical means the stage is at least as tall as it is wide.
	AspectVertical
)

// String returns the aspect name for logging and test output.
func (a Aspect) String() string {
	if a == AspectHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Stage is an absolute rectangular region on a shared canvas, the total
// space available for placing items. All coordinates are in user units.
type Stage struct {
	Left, Right float64
	Top, Bottom float64
}

// Width returns the horizontal span of the stage.
func (s Stage) Width() float64 { return s.Right - s.Left }

// Height returns the vertical span of the stage.
func (s Stage) Height() float64 { return s.Bottom - s.Top }

// Aspect reports the stage's dominant orientation. Ties resolve to
// vertical; the comparison is a strict > for horizontal.
func (s Stage) Aspect() Aspect {
	if s.Width() > s.Height() {
		return AspectHorizontal
	}
	return AspectVertical
}

// Placement is the resolved rectangle describing where an item ended
// up. It is stage-shaped: all four edges in absolute coordinates.
type Placement = Stage

// Cursor is the layout state carried between placements. Offsets track
// where the next item's strict edge should begin, sizes accumulate the
// total space consumed, and margins are constant configuration set at
// construction. Cursors are replaced wholesale after every step, never
// mutated in place, and are never validated for internal consistency.
type Cursor struct {
	XOffset float64
	YOffset float64
	MarginX float64
	MarginY float64
	XSize   float64
	YSize   float64
}

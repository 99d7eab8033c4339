// Package direct provides the director policies that drive a layout
// negotiation.
//
// A Director is a stateless pair of pure functions: Next derives the
// instruction for the upcoming item from the stage and the current
// cursor, and Advance derives the next cursor from the stage, the
// placement the performer reported, and the prior cursor. Directors
// are plain values, not a type hierarchy - the same Director is reused
// across every item in a run and carries no per-call state.
//
// Three policies ship with the package: Horizontal stacks items left to
// right, Vertical stacks them top to bottom, and Adaptive picks one of
// the two from the stage's aspect ratio. Because the stage never
// changes within a run, Adaptive is consistent: a single run always
// takes the same branch.
package direct

import (
	"github.com/matzehuels/stagehand/pkg/bound"
	"github.com/matzehuels/stagehand/pkg/stage"
)

// NextFunc computes the instruction for the next item.
type NextFunc func(stage.Stage, stage.Cursor) bound.Instruction

// AdvanceFunc computes the cursor for the step after a placement.
type AdvanceFunc func(stage.Stage, stage.Placement, stage.Cursor) stage.Cursor

// Director is a stateless layout policy: an instruction step and a
// cursor-advance step. Custom policies satisfy the same two-function
// contract as the built-in ones.
type Director struct {
	Next    NextFunc
	Advance AdvanceFunc
}

// Horizontal stacks items left to right. The next item's left edge is
// pinned exactly after the previous item plus the horizontal margin; it
// may extend up to the stage's right edge. Vertically the item is
// pinned to the stage top and may use up to the full stage height.
var Horizontal = Director{
	Next: func(s stage.Stage, c stage.Cursor) bound.Instruction {
		return bound.Instruction{
			Horizontal: bound.Range(bound.Fixed(c.XOffset+c.MarginX), bound.Flexible(s.Right)),
			Vertical:   bound.Range(bound.Fixed(s.Top), bound.Flexible(s.Bottom)),
		}
	},
	Advance: func(_ stage.Stage, p stage.Placement, c stage.Cursor) stage.Cursor {
		next := c
		// The +1 is the one-unit separator baked into the stacking
		// rule; it is not a margin.
		next.XOffset += (p.Right - p.Left) + 1 + c.MarginX
		next.XSize += p.Left + p.Right
		return next
	},
}

// Vertical stacks items top to bottom, the axis-symmetric counterpart
// of Horizontal.
var Vertical = Director{
	Next: func(s stage.Stage, c stage.Cursor) bound.Instruction {
		return bound.Instruction{
			Horizontal: bound.Range(bound.Fixed(s.Left), bound.Flexible(s.Right)),
			Vertical:   bound.Range(bound.Fixed(c.YOffset+c.MarginY), bound.Flexible(s.Bottom)),
		}
	},
	Advance: func(_ stage.Stage, p stage.Placement, c stage.Cursor) stage.Cursor {
		next := c
		next.YOffset += (p.Bottom - p.Top) + 1 + c.MarginY
		next.YSize += p.Top + p.Bottom + 1
		return next
	},
}

// Adaptive delegates to Horizontal on a wide stage and Vertical
// otherwise, re-reading the aspect on every call.
var Adaptive = Director{
	Next: func(s stage.Stage, c stage.Cursor) bound.Instruction {
		if s.Aspect() == stage.AspectHorizontal {
			return Horizontal.Next(s, c)
		}
		return Vertical.Next(s, c)
	},
	Advance: func(s stage.Stage, p stage.Placement, c stage.Cursor) stage.Cursor {
		if s.Aspect() == stage.AspectHorizontal {
			return Horizontal.Advance(s, p, c)
		}
		return Vertical.Advance(s, p, c)
	},
}

// ByName returns the built-in director for a direction name:
// "horizontal", "vertical", or "auto". The second return is false for
// any other name.
func ByName(name string) (Director, bool) {
	switch name {
	case "horizontal":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	case "auto":
		return Adaptive, true
	default:
		return Director{}, false
	}
}

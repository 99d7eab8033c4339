// Package actor provides the reference performer: it turns a
// director's instruction plus a text label into a bordered button
// placement and a deferred draw operation.
//
// The performer negotiates its extent through the bound package: the
// button wants to be as wide as its label plus borders, but a flexible
// upper bound clamps it and a fixed one overrules it entirely. The
// height is one text row plus the borders, resolved the same way
// against the vertical range.
//
// Drawing is deferred. Button returns a DrawFunc token closed over the
// resolved rectangle; the caller decides when (and whether) to apply
// the accumulated draws to a screen.
package actor

import (
	"strings"

	"github.com/matzehuels/stagehand/pkg/bound"
	"github.com/matzehuels/stagehand/pkg/errors"
	"github.com/matzehuels/stagehand/pkg/screen"
	"github.com/matzehuels/stagehand/pkg/stage"
)

const (
	// textRows is the vertical space needed by the label itself.
	textRows = 1.0
	// borderSize is the border thickness per side, in grid units.
	borderSize = 1.0
)

// DrawFunc is the render token a performer hands back: a deferred draw
// closed over the resolved rectangle and label.
type DrawFunc func(*screen.Screen)

// Button resolves an instruction and a label into a button placement
// plus its draw token. The instruction carries absolute positions: the
// high bounds are not relative to the low ones.
//
// Button fails with ErrCodeDegenerateGeometry when the resolved
// rectangle cannot hold a bordered button (left edge at or past the
// right edge, or no room for the two border columns).
func Button(instr bound.Instruction, label string) (stage.Placement, DrawFunc, error) {
	xStart := instr.Horizontal.Low.Value
	xAbsoluteEnd := instr.Horizontal.High.Value
	yStart := instr.Vertical.Low.Value

	xAvailable := xAbsoluteEnd - xStart
	xWanted := xStart + min(float64(len(label)), xAvailable) + borderSize*2
	xEnd := bound.Resolve(instr.Horizontal.High, xWanted)
	yEnd := yStart + bound.Resolve(instr.Vertical.High, textRows+borderSize*2)

	// Bottom is the last occupied row, hence the -1.
	placement := stage.Placement{Left: xStart, Right: xEnd, Top: yStart, Bottom: yEnd - 1}

	if xStart >= xEnd {
		return stage.Placement{}, nil, errors.New(errors.ErrCodeDegenerateGeometry,
			"resolved left edge %.0f is not before right edge %.0f", xStart, xEnd)
	}
	if xEnd-xStart < borderSize*2 {
		return stage.Placement{}, nil, errors.New(errors.ErrCodeDegenerateGeometry,
			"resolved width %.0f cannot hold a bordered button", xEnd-xStart)
	}

	return placement, Draw(label, placement), nil
}

// Draw builds the deferred render operation for a label that has
// already been resolved to a placement. Button calls it internally;
// it is also the way to rebuild draw tokens for placements restored
// from a cache, since a token is fully determined by the label and
// the resolved rectangle.
func Draw(label string, p stage.Placement) DrawFunc {
	return func(scr *screen.Screen) {
		colStart := int(p.Left)
		colEnd := int(p.Right)
		width := colEnd - colStart
		inner := width - int(borderSize)*2

		rowTop := int(p.Top)
		rowBottom := int(p.Bottom)
		rowText := rowTop + (rowBottom-rowTop)/2

		final := label
		if len(final) > inner {
			final = final[:inner]
		}
		padLeft, padRight := splitPadding(width - len(final))

		borderRow := "|" + strings.Repeat("-", inner) + "|"
		fillerRow := "|" + strings.Repeat(" ", inner) + "|"

		scr.SetString(rowTop, colStart, borderRow)
		for row := rowTop + 1; row < rowText; row++ {
			scr.SetString(row, colStart, fillerRow)
		}

		scr.Set(rowText, colStart, '|')
		scr.SetString(rowText, colStart+padLeft, final)
		scr.SetString(rowText, colStart+padLeft+len(final), strings.Repeat(" ", padRight-int(borderSize))+"|")

		for row := rowText + 1; row < rowBottom; row++ {
			scr.SetString(row, colStart, fillerRow)
		}
		scr.SetString(rowBottom, colStart, borderRow)
	}
}

// splitPadding splits n into a floor/ceil pair, the smaller half first.
func splitPadding(n int) (left, right int) {
	return n / 2, n/2 + n%2
}

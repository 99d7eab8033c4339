package actor

import (
	"strings"
	"testing"

	"github.com/matzehuels/stagehand/pkg/bound"
	"github.com/matzehuels/stagehand/pkg/errors"
	"github.com/matzehuels/stagehand/pkg/screen"
	"github.com/matzehuels/stagehand/pkg/stage"
)

func buttonInstruction(s stage.Stage, xOffset float64) bound.Instruction {
	return bound.Instruction{
		Horizontal: bound.Range(bound.Fixed(xOffset), bound.Flexible(s.Right)),
		Vertical:   bound.Range(bound.Fixed(s.Top), bound.Flexible(s.Bottom)),
	}
}

func TestButtonPlacement(t *testing.T) {
	s := stage.Stage{Left: 0, Right: 60, Top: 0, Bottom: 20}

	p, draw, err := Button(buttonInstruction(s, 0), "First")
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	if draw == nil {
		t.Fatal("Button returned nil draw token")
	}

	// Label width 5 plus one border column per side.
	want := stage.Placement{Left: 0, Right: 7, Top: 0, Bottom: 2}
	if p != want {
		t.Errorf("placement = %+v, want %+v", p, want)
	}
}

func TestButtonDraw(t *testing.T) {
	s := stage.Stage{Left: 0, Right: 60, Top: 0, Bottom: 20}
	_, draw, err := Button(buttonInstruction(s, 0), "First")
	if err != nil {
		t.Fatalf("Button: %v", err)
	}

	scr := screen.New(10, 4)
	draw(scr)

	wantRows := []string{
		"|-----|   ",
		"|First|   ",
		"|-----|   ",
		"          ",
	}
	for i, want := range wantRows {
		if got := scr.Row(i); got != want {
			t.Errorf("row %d = %q, want %q", i, got, want)
		}
	}
}

func TestButtonCentersShortLabel(t *testing.T) {
	// A doubly-fixed horizontal axis forces the width regardless of
	// the label, so the draw pads the label to the forced extent.
	instr := bound.Instruction{
		Horizontal: bound.Range(bound.Fixed(0), bound.Fixed(9)),
		Vertical:   bound.Range(bound.Fixed(0), bound.Flexible(20)),
	}
	p, draw, err := Button(instr, "ok")
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	if p.Right != 9 {
		t.Errorf("fixed upper bound should win: right = %v, want 9", p.Right)
	}

	scr := screen.New(9, 3)
	draw(scr)

	// width 9, label 2: pad 7 → 3 left, 4 right.
	if got := scr.Row(1); got != "|  ok   |" {
		t.Errorf("text row = %q", got)
	}
}

func TestButtonTruncatesLongLabel(t *testing.T) {
	s := stage.Stage{Left: 0, Right: 12, Top: 0, Bottom: 20}
	p, draw, err := Button(buttonInstruction(s, 0), "a very long interaction")
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	if p.Right != 12 {
		t.Errorf("right = %v, want clamp at stage edge 12", p.Right)
	}

	scr := screen.New(12, 3)
	draw(scr)
	if got := scr.Row(1); got != "|a very lon|" {
		t.Errorf("text row = %q", got)
	}
}

func TestButtonStackedPair(t *testing.T) {
	// Second button placed after the first plus the separator unit.
	s := stage.Stage{Left: 0, Right: 60, Top: 0, Bottom: 20}

	_, draw1, err := Button(buttonInstruction(s, 0), "First")
	if err != nil {
		t.Fatalf("first Button: %v", err)
	}
	_, draw2, err := Button(buttonInstruction(s, 8), "Second")
	if err != nil {
		t.Fatalf("second Button: %v", err)
	}

	scr := screen.New(20, 3)
	draw1(scr)
	draw2(scr)

	if got := scr.Row(1); got != "|First| |Second|    " {
		t.Errorf("text row = %q", got)
	}
}

func TestButtonDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name  string
		instr bound.Instruction
	}{
		{
			"left at right",
			bound.Instruction{
				Horizontal: bound.Range(bound.Fixed(10), bound.Fixed(10)),
				Vertical:   bound.Range(bound.Fixed(0), bound.Flexible(20)),
			},
		},
		{
			"left past right",
			bound.Instruction{
				Horizontal: bound.Range(bound.Fixed(30), bound.Fixed(10)),
				Vertical:   bound.Range(bound.Fixed(0), bound.Flexible(20)),
			},
		},
		{
			"no room for borders",
			bound.Instruction{
				Horizontal: bound.Range(bound.Fixed(0), bound.Fixed(1)),
				Vertical:   bound.Range(bound.Fixed(0), bound.Flexible(20)),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Button(tt.instr, "x")
			if err == nil {
				t.Fatal("expected degenerate geometry error")
			}
			if !errors.Is(err, errors.ErrCodeDegenerateGeometry) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeDegenerateGeometry)
			}
		})
	}
}

func TestButtonDrawClipsOffScreen(t *testing.T) {
	s := stage.Stage{Left: 0, Right: 60, Top: 0, Bottom: 20}
	_, draw, err := Button(buttonInstruction(s, 55), "overflow")
	if err != nil {
		t.Fatalf("Button: %v", err)
	}

	// The grid is narrower than the stage: drawing past its edge
	// clips instead of panicking.
	scr := screen.New(58, 3)
	draw(scr)
	if !strings.HasSuffix(scr.Row(0), "|--") {
		t.Errorf("row 0 = %q, want clipped border", scr.Row(0))
	}
}

package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/stagehand/pkg/actor"
	"github.com/matzehuels/stagehand/pkg/direct"
	"github.com/matzehuels/stagehand/pkg/negotiate"
	"github.com/matzehuels/stagehand/pkg/observability"
	"github.com/matzehuels/stagehand/pkg/stage"
)

// LayoutResult is the serializable outcome of a negotiation run: one
// placement per item in input order, plus the final cursor. Draw
// tokens are not stored - they are rebuilt from item and placement at
// render time, which is what makes cached layouts renderable.
type LayoutResult struct {
	Stage      stage.Stage     `json:"stage"`
	Direction  string          `json:"direction"`
	Placements []ItemPlacement `json:"placements"`
	Cursor     stage.Cursor    `json:"cursor"`
}

// ItemPlacement pairs one item with its resolved rectangle.
type ItemPlacement struct {
	Item      string          `json:"item"`
	Placement stage.Placement `json:"placement"`
}

// MarshalLayout serializes a layout result to JSON.
func MarshalLayout(l LayoutResult) ([]byte, error) {
	return json.Marshal(l)
}

// UnmarshalLayout deserializes a layout result from JSON.
func UnmarshalLayout(data []byte) (LayoutResult, error) {
	var l LayoutResult
	err := json.Unmarshal(data, &l)
	return l, err
}

// GenerateLayout negotiates placements for every item in opts. The
// stage, director, and performer are fixed for the whole run; only the
// cursor threads through.
//
// Placements are never clamped against the stage: a run that does not
// fit keeps placing items past the stage's edge, and the overflow is
// only logged.
func GenerateLayout(ctx context.Context, opts Options) (LayoutResult, error) {
	opts.SetLayoutDefaults()

	st := opts.Stage()
	director, ok := direct.ByName(opts.Direction)
	if !ok {
		return LayoutResult{}, ValidateDirection(opts.Direction)
	}

	start := time.Now()
	observability.Negotiation().OnRunStart(ctx, opts.Direction, len(opts.Items))

	scenes, final, err := negotiate.Run(st, opts.Cursor(), director, actor.Button, opts.Items)

	observability.Negotiation().OnRunComplete(ctx, opts.Direction, len(opts.Items), time.Since(start), err)
	if err != nil {
		return LayoutResult{}, err
	}

	result := LayoutResult{
		Stage:      st,
		Direction:  opts.Direction,
		Placements: make([]ItemPlacement, len(scenes)),
		Cursor:     final,
	}
	overflow := false
	for i, sc := range scenes {
		result.Placements[i] = ItemPlacement{Item: opts.Items[i], Placement: sc.Placement}
		observability.Negotiation().OnStep(ctx, i,
			sc.Placement.Left, sc.Placement.Right, sc.Placement.Top, sc.Placement.Bottom)
		if sc.Placement.Right > st.Right || sc.Placement.Bottom > st.Bottom {
			overflow = true
		}
	}
	if overflow {
		opts.Logger.Debug("placements exceed stage bounds",
			"stage_right", st.Right,
			"stage_bottom", st.Bottom)
	}

	return result, nil
}

package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/stagehand/pkg/actor"
	"github.com/matzehuels/stagehand/pkg/observability"
	"github.com/matzehuels/stagehand/pkg/screen"
)

// RenderFromLayout turns a layout result into one artifact per
// requested format.
//
// The text format replays every item's draw token onto a character
// grid sized from the stage and returns the framed output. Draw tokens
// are rebuilt from item and placement, so a layout restored from cache
// renders identically to a fresh one. The json format serializes the
// placements with indentation.
func RenderFromLayout(ctx context.Context, layout LayoutResult, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var err error
	for _, format := range opts.Formats {
		switch format {
		case FormatText:
			artifacts[format] = renderText(layout)
		case FormatJSON:
			artifacts[format], err = json.MarshalIndent(layout, "", "  ")
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			break
		}
	}

	observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// renderText draws every placement onto a grid sized from the stage
// and returns the framed screen. Placements past the stage edge clip.
func renderText(layout LayoutResult) []byte {
	scr := screen.New(int(layout.Stage.Right), int(layout.Stage.Bottom))
	for _, ip := range layout.Placements {
		actor.Draw(ip.Item, ip.Placement)(scr)
	}
	return []byte(scr.String())
}

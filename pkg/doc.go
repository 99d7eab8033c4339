// Package pkg provides the core libraries for Stagehand layout negotiation.
//
// # Overview
//
// Stagehand places labelled boxes on a rectangular stage by negotiating
// each box's extent against the space that remains. The pkg directory is
// organized into four main areas:
//
//  1. Geometry primitives ([bound], [stage]) - bounds, ranges, rectangles, cursors
//  2. Negotiation ([direct], [negotiate]) - direction policies and the layout fold
//  3. Reference performer ([actor], [screen]) - bordered text buttons on a rune grid
//  4. Orchestration ([pipeline], [scene], [cache]) - manifests, caching, render sinks
//
// # Architecture
//
// The typical data flow through Stagehand:
//
//	Scene Manifest / Options
//	         ↓
//	    [direct] package (pick a direction policy)
//	         ↓
//	    [negotiate] package (fold items into placements)
//	         ↓
//	    [pipeline] package (render placements to text / JSON)
//	         ↓
//	    stdout / files / cache
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Items: []string{"First", "Second button"},
//	})
//
// [bound]: github.com/matzehuels/stagehand/pkg/bound
// [stage]: github.com/matzehuels/stagehand/pkg/stage
// [direct]: github.com/matzehuels/stagehand/pkg/direct
// [negotiate]: github.com/matzehuels/stagehand/pkg/negotiate
// [actor]: github.com/matzehuels/stagehand/pkg/actor
// [screen]: github.com/matzehuels/stagehand/pkg/screen
// [pipeline]: github.com/matzehuels/stagehand/pkg/pipeline
// [scene]: github.com/matzehuels/stagehand/pkg/scene
// [cache]: github.com/matzehuels/stagehand/pkg/cache
package pkg

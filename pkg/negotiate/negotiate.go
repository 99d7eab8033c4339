// Package negotiate runs the sequential layout negotiation: a strict
// left-to-right fold that drives a director and a performer across an
// ordered list of content items.
//
// Each step asks the director for an instruction, hands it with one
// item to the performer, and feeds the resulting placement back into
// the director to advance the cursor. The stage and director are
// invariant across a run; only the cursor changes, and it is replaced
// wholesale at every step. Steps cannot be skipped, reordered, or
// parallelized: each instruction depends on the cursor produced by the
// previous advance.
//
// The loop itself has no failure modes. The only error path is the
// performer's - a performer error aborts the run and is returned with
// the failing item's index, uninterpreted.
package negotiate

import (
	"fmt"

	"github.com/matzehuels/stagehand/pkg/bound"
	"github.com/matzehuels/stagehand/pkg/direct"
	"github.com/matzehuels/stagehand/pkg/stage"
)

// Performer resolves an instruction plus one content item into a
// concrete placement and a render token. The token type T is opaque to
// the loop and forwarded untouched to the caller; in the reference
// performer it is a deferred draw operation closed over the resolved
// rectangle. The returned placement's edges must be consistent with the
// instruction (obtainable via the bound package's resolution rules) -
// the loop does not verify this.
type Performer[I, T any] func(bound.Instruction, I) (stage.Placement, T, error)

// Scene is one negotiated result: where an item ended up, and the
// performer's render token for it.
type Scene[T any] struct {
	Placement stage.Placement
	Token     T
}

// Run folds items through the director and performer, starting from cur.
// It returns one scene per item in input order plus the final cursor.
//
// Every item is placed; there is no early termination and no clamping
// against the stage, so a run can place items past the stage's physical
// bounds without error. If the performer fails, Run stops and returns
// the scenes negotiated so far, the cursor before the failing step, and
// the performer's error wrapped with the item index.
func Run[I, T any](st stage.Stage, cur stage.Cursor, d direct.Director, perform Performer[I, T], items []I) ([]Scene[T], stage.Cursor, error) {
	scenes := make([]Scene[T], 0, len(items))

	for i, item := range items {
		instr := d.Next(st, cur)

		placement, token, err := perform(instr, item)
		if err != nil {
			return scenes, cur, fmt.Errorf("item %d: %w", i, err)
		}

		cur = d.Advance(st, placement, cur)
		scenes = append(scenes, Scene[T]{Placement: placement, Token: token})
	}

	return scenes, cur, nil
}

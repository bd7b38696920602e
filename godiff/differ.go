// Package godiff implements the text-diff oracle using sergi/go-diff's
// diff-match-patch algorithm.
package godiff

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.TextDiffer = (*Differ)(nil)

// Differ computes character-level edit scripts with semantic cleanup, which
// merges trivial single-character fragments into larger, word-shaped runs.
type Differ struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{dmp: diffmatchpatch.New()}
}

// Diff returns the edit script transforming old into new.
func (d *Differ) Diff(old, new string) []docdiff.Edit {
	diffs := d.dmp.DiffMain(old, new, false)
	diffs = d.dmp.DiffCleanupSemantic(diffs)

	edits := make([]docdiff.Edit, 0, len(diffs))
	for _, df := range diffs {
		var op docdiff.EditOp
		switch df.Type {
		case diffmatchpatch.DiffEqual:
			op = docdiff.OpEqual
		case diffmatchpatch.DiffInsert:
			op = docdiff.OpInsert
		case diffmatchpatch.DiffDelete:
			op = docdiff.OpDelete
		}
		edits = append(edits, docdiff.Edit{Op: op, Text: df.Text})
	}
	return edits
}

package godiff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/godiff"
)

// Compile-time check that Differ implements docdiff.TextDiffer.
var _ docdiff.TextDiffer = (*godiff.Differ)(nil)

// reconstruct rebuilds the old and new strings from an edit script.
func reconstruct(edits []docdiff.Edit) (old, new string) {
	var ob, nb strings.Builder
	for _, e := range edits {
		switch e.Op {
		case docdiff.OpEqual:
			ob.WriteString(e.Text)
			nb.WriteString(e.Text)
		case docdiff.OpDelete:
			ob.WriteString(e.Text)
		case docdiff.OpInsert:
			nb.WriteString(e.Text)
		}
	}
	return ob.String(), nb.String()
}

func TestDiffer_Diff_Identical(t *testing.T) {
	t.Parallel()

	d := godiff.NewDiffer()

	edits := d.Diff("hello world", "hello world")

	require.Len(t, edits, 1)
	assert.Equal(t, docdiff.Edit{Op: docdiff.OpEqual, Text: "hello world"}, edits[0])
}

func TestDiffer_Diff_ReconstructsBothSides(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		old, new string
	}{
		{"word replaced", "the quick brown fox", "the slow brown fox"},
		{"suffix added", "paragraph", "paragraph with more"},
		{"prefix removed", "intro and body", "body"},
		{"disjoint", "alpha beta", "gamma delta"},
		{"old empty", "", "something"},
		{"new empty", "something", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			edits := godiff.NewDiffer().Diff(tc.old, tc.new)

			old, new := reconstruct(edits)
			assert.Equal(t, tc.old, old, "concatenating equal+delete must rebuild the old string")
			assert.Equal(t, tc.new, new, "concatenating equal+insert must rebuild the new string")
		})
	}
}

func TestDiffer_Diff_SemanticCleanupMergesFragments(t *testing.T) {
	t.Parallel()

	d := godiff.NewDiffer()

	// Without semantic cleanup this pair degenerates into many tiny
	// single-character runs; cleanup should collapse it into one delete and
	// one insert around the shared structure.
	edits := d.Diff("The cat in the hat.", "The dog in the house.")

	for _, e := range edits {
		if e.Op == docdiff.OpEqual {
			continue
		}
		assert.GreaterOrEqual(t, len(e.Text), 2,
			"changed runs should be merged into word-sized fragments, got %q", e.Text)
	}
}

func TestDiffer_Diff_BothEmpty(t *testing.T) {
	t.Parallel()

	d := godiff.NewDiffer()

	assert.Empty(t, d.Diff("", ""))
}

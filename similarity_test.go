package docdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/godiff"
)

func TestTextsEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "hello world", "hello world", true},
		{"case insensitive", "Hello World", "hello world", true},
		{"surrounding whitespace", "  hello world\n", "hello world", true},
		{"collapsed internal runs", "hello \t\n world", "hello world", true},
		{"different words", "hello world", "hello there", false},
		{"both empty", "", "", true},
		{"one empty", "", "x", false},
		{"whitespace only vs empty", " \t ", "", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, docdiff.TextsEqual(tc.a, tc.b))
		})
	}
}

func TestComparer_Similarity_Bounds(t *testing.T) {
	t.Parallel()

	c := docdiff.NewComparer(godiff.NewDiffer(), docdiff.StructComparer{})

	assert.Equal(t, 1.0, c.Similarity("some paragraph text", "some paragraph text"),
		"identical non-empty strings score 1")
	assert.Equal(t, 1.0, c.Similarity("", ""), "two empty strings score 1")
	assert.Equal(t, 0.0, c.Similarity("", "x"), "one empty string scores 0")
	assert.Equal(t, 0.0, c.Similarity("x", ""), "one empty string scores 0")
}

func TestComparer_Similarity_PartialOverlap(t *testing.T) {
	t.Parallel()

	c := docdiff.NewComparer(godiff.NewDiffer(), docdiff.StructComparer{})

	// 8 of 10 characters are shared in order: exactly 0.8.
	got := c.Similarity("abcdefgh12", "abcdefgh34")
	assert.InDelta(t, 0.8, got, 1e-9)

	// Sharing rewards common substrings; unrelated strings score low.
	low := c.Similarity("the quick brown fox jumps", "completely unrelated words here")
	assert.Less(t, low, 0.5)

	// Scores stay within [0, 1] and penalize pure length mismatch.
	short := c.Similarity("abc", "abc plus a much longer continuation")
	assert.Greater(t, short, 0.0)
	assert.Less(t, short, 0.5)
}

func TestComparer_Similarity_NilDiffer(t *testing.T) {
	t.Parallel()

	c := &docdiff.Comparer{}

	assert.Equal(t, 1.0, c.Similarity("", ""))
	assert.Equal(t, 0.0, c.Similarity("abc", "abc"),
		"without an oracle only the empty fast path can score")
}

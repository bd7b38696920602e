package html_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/godiff"
	"github.com/fwojciec/docdiff/html"
	"github.com/fwojciec/docdiff/mock"
)

func renderResult(t *testing.T, result *docdiff.Result) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, html.NewRenderer().Render(&buf, result))
	return buf.String()
}

func TestRenderer_Render_SummaryAndRows(t *testing.T) {
	t.Parallel()

	c := docdiff.NewComparer(godiff.NewDiffer(), docdiff.StructComparer{})
	left := []docdiff.Block{{Kind: docdiff.BlockText, PlainText: "unchanged paragraph"}}
	right := []docdiff.Block{
		{Kind: docdiff.BlockText, PlainText: "unchanged paragraph"},
		{Kind: docdiff.BlockText, PlainText: "a brand new paragraph"},
	}

	out := renderResult(t, c.Compare(left, right))

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "1 addition")
	assert.Contains(t, out, "0 deletions")
	assert.Contains(t, out, "1 change</div>")
	assert.Contains(t, out, `<td class="added">a brand new paragraph</td>`)
	assert.Contains(t, out, `<td class="placeholder">[text] a brand new paragraph</td>`)
	assert.Equal(t, 2, strings.Count(out, "<tr>"), "one row per aligned pair")
}

func TestRenderer_Render_InlineSpans(t *testing.T) {
	t.Parallel()

	differ := &mock.Differ{
		DiffFn: func(old, new string) []docdiff.Edit {
			return []docdiff.Edit{
				{Op: docdiff.OpEqual, Text: "hello "},
				{Op: docdiff.OpDelete, Text: "world"},
				{Op: docdiff.OpInsert, Text: "universe"},
			}
		},
	}
	c := docdiff.NewComparer(differ, docdiff.StructComparer{})

	out := renderResult(t, c.Compare(
		[]docdiff.Block{{Kind: docdiff.BlockText, PlainText: "hello world"}},
		[]docdiff.Block{{Kind: docdiff.BlockText, PlainText: "hello universe"}},
	))

	assert.Contains(t, out, "<del>world</del>")
	assert.Contains(t, out, "<ins>universe</ins>")
	assert.Contains(t, out, `<span class="ghost">universe</span>`)
	assert.Contains(t, out, `<span class="ghost">world</span>`)
}

func TestRenderer_Render_EscapesContent(t *testing.T) {
	t.Parallel()

	c := docdiff.NewComparer(godiff.NewDiffer(), docdiff.StructComparer{})

	out := renderResult(t, c.Compare(
		[]docdiff.Block{{Kind: docdiff.BlockText, PlainText: "a <script> tag"}},
		[]docdiff.Block{{Kind: docdiff.BlockText, PlainText: "a <script> tag"}},
	))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderer_Render_StructuralBlocks(t *testing.T) {
	t.Parallel()

	c := docdiff.NewComparer(godiff.NewDiffer(), docdiff.StructComparer{})
	left := []docdiff.Block{
		{Kind: docdiff.BlockTable, Table: &docdiff.TableData{Rows: [][]string{{"a", "b"}}}},
		{Kind: docdiff.BlockImage, Image: &docdiff.ImageData{Src: "logo.png", Alt: "logo"}},
	}

	out := renderResult(t, c.Compare(left, left))

	assert.Contains(t, out, `<table class="inner"><tr><td>a</td><td>b</td></tr></table>`)
	assert.Contains(t, out, `<img src="logo.png" alt="logo">`)
}

func TestRenderer_Render_PropagatesWriteError(t *testing.T) {
	t.Parallel()

	c := docdiff.NewComparer(godiff.NewDiffer(), docdiff.StructComparer{})
	err := html.NewRenderer().Render(failWriter{}, c.Compare(nil, nil))

	assert.Error(t, err)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

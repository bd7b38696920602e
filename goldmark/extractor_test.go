package goldmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/goldmark"
)

func TestExtractor_Extract_DocumentStructure(t *testing.T) {
	t.Parallel()

	source := []byte(`# Release Notes

The first paragraph describes
the release in two source lines.

| name | value |
| ---- | ----- |
| alpha | 1 |
| beta | 2 |

- first item
- second item

![the logo](logo.png)

> quoted wisdom
`)

	blocks, err := goldmark.NewExtractor().Extract(source)
	require.NoError(t, err)
	require.Len(t, blocks, 7)

	assert.Equal(t, docdiff.BlockText, blocks[0].Kind)
	assert.Equal(t, "Release Notes", blocks[0].PlainText)

	assert.Equal(t, docdiff.BlockText, blocks[1].Kind)
	assert.Equal(t, "The first paragraph describes the release in two source lines.",
		blocks[1].PlainText, "soft line breaks join with spaces")

	require.Equal(t, docdiff.BlockTable, blocks[2].Kind)
	require.NotNil(t, blocks[2].Table)
	assert.Equal(t, [][]string{
		{"name", "value"},
		{"alpha", "1"},
		{"beta", "2"},
	}, blocks[2].Table.Rows)
	assert.Empty(t, blocks[2].PlainText)

	assert.Equal(t, docdiff.BlockText, blocks[3].Kind)
	assert.Equal(t, "first item", blocks[3].PlainText)
	assert.Equal(t, docdiff.BlockText, blocks[4].Kind)
	assert.Equal(t, "second item", blocks[4].PlainText)

	require.Equal(t, docdiff.BlockImage, blocks[5].Kind)
	require.NotNil(t, blocks[5].Image)
	assert.Equal(t, "logo.png", blocks[5].Image.Src)
	assert.Equal(t, "the logo", blocks[5].Image.Alt)
	assert.Empty(t, blocks[5].PlainText)

	assert.Equal(t, docdiff.BlockText, blocks[6].Kind)
	assert.Equal(t, "quoted wisdom", blocks[6].PlainText)

	for i, b := range blocks {
		assert.Equal(t, i, b.Position)
	}
}

func TestExtractor_Extract_FencedCode(t *testing.T) {
	t.Parallel()

	source := []byte("Intro paragraph.\n\n```go\nfmt.Println(\"hi\")\n```\n")

	blocks, err := goldmark.NewExtractor().Extract(source)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, docdiff.BlockText, blocks[1].Kind)
	assert.Equal(t, "fmt.Println(\"hi\")", blocks[1].PlainText)
	assert.Equal(t, blocks[1].PlainText, blocks[1].Markup,
		"code blocks compare on their literal content")
}

func TestExtractor_Extract_MultiLineMarkup(t *testing.T) {
	t.Parallel()

	source := []byte("line one\nline two\n\n```\nfirst\nsecond\n```\n")

	blocks, err := goldmark.NewExtractor().Extract(source)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, "line one\nline two", blocks[0].Markup,
		"paragraph markup reassembles every source line")
	assert.Equal(t, "first\nsecond", blocks[1].PlainText)
	assert.Equal(t, blocks[1].PlainText, blocks[1].Markup)
}

func TestExtractor_Extract_InlineFormattingFlattens(t *testing.T) {
	t.Parallel()

	blocks, err := goldmark.NewExtractor().Extract([]byte("Some **bold** and *italic* words.\n"))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, "Some bold and italic words.", blocks[0].PlainText)
	assert.Equal(t, "Some **bold** and *italic* words.", blocks[0].Markup,
		"markup keeps the original source line")
}

func TestExtractor_Extract_SkipsStructuralNoise(t *testing.T) {
	t.Parallel()

	blocks, err := goldmark.NewExtractor().Extract([]byte("before\n\n---\n\nafter\n"))
	require.NoError(t, err)

	require.Len(t, blocks, 2)
	assert.Equal(t, "before", blocks[0].PlainText)
	assert.Equal(t, "after", blocks[1].PlainText)
}

func TestExtractor_Extract_Empty(t *testing.T) {
	t.Parallel()

	blocks, err := goldmark.NewExtractor().Extract(nil)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestExtractor_Extract_ImageWithSurroundingTextStaysText(t *testing.T) {
	t.Parallel()

	blocks, err := goldmark.NewExtractor().Extract([]byte("See ![chart](c.png) for details.\n"))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, docdiff.BlockText, blocks[0].Kind,
		"an inline image inside prose is part of the paragraph")
	assert.Equal(t, "See chart for details.", blocks[0].PlainText)
}

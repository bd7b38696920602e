// Package docdiff compares two revisions of a structured document and
// produces an annotated, block-aligned rendering of the differences.
//
// A document is an ordered sequence of content blocks (paragraphs, headings,
// list items, tables, images) produced by an Extractor. The Comparer aligns
// the two sequences, classifies each aligned pair as unchanged or modified
// with word-level highlighting inside modified text blocks, and synthesizes
// placeholder annotations so that both sides render with equal vertical
// structure.
package docdiff

import (
	"context"
	"io"
)

// BlockKind identifies the structural type of a content block.
type BlockKind int

// Block kinds. Headings, paragraphs and list items all collapse to BlockText
// for alignment purposes; tables and images are structurally distinct and
// compared through a StructuralComparer.
const (
	BlockText BlockKind = iota
	BlockTable
	BlockImage
)

// String returns a short lowercase name for the kind.
func (k BlockKind) String() string {
	switch k {
	case BlockTable:
		return "table"
	case BlockImage:
		return "image"
	default:
		return "text"
	}
}

// Block is one unit of document structure as produced by an Extractor.
type Block struct {
	Kind      BlockKind
	PlainText string     // markup-stripped, whitespace-trimmed content
	Markup    string     // serialized content, opaque to the aligner
	Position  int        // 0-based index in the source document's block list
	Table     *TableData // structure for table blocks, nil otherwise
	Image     *ImageData // structure for image blocks, nil otherwise
}

// TableData holds the cell text of a table block, row by row.
type TableData struct {
	Rows [][]string
}

// ImageData holds the comparable attributes of an image block.
type ImageData struct {
	Src string
	Alt string
}

// EditOp classifies one step of a text edit script.
type EditOp int

// Edit operations.
const (
	OpEqual EditOp = iota
	OpInsert
	OpDelete
)

// Edit is one step of the edit script between two plain-text strings.
// Concatenating the Text of all OpEqual and OpDelete edits reconstructs the
// old string; OpEqual and OpInsert reconstruct the new one.
type Edit struct {
	Op   EditOp
	Text string
}

// TextDiffer computes an edit script between two plain-text strings.
// Implementations are expected to post-process the script so that trivial
// single-character fragments are merged into larger runs.
type TextDiffer interface {
	Diff(old, new string) []Edit
}

// Extractor parses raw document markup into an ordered list of blocks.
// Positions must be contiguous from 0 in document order, and content nested
// inside a table or image must not be reported as separate blocks.
type Extractor interface {
	Extract(source []byte) ([]Block, error)
}

// StructuralComparer decides equality for table and image blocks.
// Implementations must return false, never panic, when a block or its
// structural payload is missing.
type StructuralComparer interface {
	TablesEqual(a, b *Block) bool
	ImagesEqual(a, b *Block) bool
}

// Renderer turns a comparison result into final markup.
type Renderer interface {
	Render(w io.Writer, result *Result) error
}

// Viewer displays a comparison result interactively.
type Viewer interface {
	View(ctx context.Context, result *Result) error
}

// Package goldmark implements document block extraction for Markdown
// sources using yuin/goldmark.
package goldmark

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.Extractor = (*Extractor)(nil)

// Extractor parses Markdown into comparison blocks. Pipe tables need the GFM
// table extension, so the parser is constructed with it enabled.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// Extract parses source and flattens its top-level structure into blocks.
// Lists contribute one text block per item so edited or reordered items
// align independently.
func (e *Extractor) Extract(source []byte) ([]docdiff.Block, error) {
	root := e.md.Parser().Parse(text.NewReader(source))

	var blocks []docdiff.Block
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		blocks = collect(blocks, node, source)
	}
	for i := range blocks {
		blocks[i].Position = i
	}
	return blocks, nil
}

func collect(blocks []docdiff.Block, node ast.Node, source []byte) []docdiff.Block {
	switch n := node.(type) {
	case *east.Table:
		return append(blocks, tableBlock(n, source))
	case *ast.List:
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			blocks = appendText(blocks, nodeText(item, source), rawMarkup(item, source))
		}
		return blocks
	case *ast.Paragraph:
		if img := soleImage(n); img != nil {
			return append(blocks, imageBlock(img, source))
		}
		return appendText(blocks, nodeText(n, source), rawMarkup(n, source))
	case *ast.Heading, *ast.Blockquote:
		return appendText(blocks, nodeText(node, source), rawMarkup(node, source))
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		code := codeText(node, source)
		return appendText(blocks, code, code)
	default:
		// Thematic breaks and raw HTML blocks carry no comparable content.
		return blocks
	}
}

func appendText(blocks []docdiff.Block, plain, markup string) []docdiff.Block {
	if plain == "" && markup == "" {
		return blocks
	}
	return append(blocks, docdiff.Block{Kind: docdiff.BlockText, PlainText: plain, Markup: markup})
}

func tableBlock(table *east.Table, source []byte) docdiff.Block {
	var rows [][]string
	for section := table.FirstChild(); section != nil; section = section.NextSibling() {
		switch section.(type) {
		case *east.TableHeader, *east.TableRow:
			rows = append(rows, cellTexts(section, source))
		}
	}
	return docdiff.Block{
		Kind:  docdiff.BlockTable,
		Table: &docdiff.TableData{Rows: rows},
	}
}

func cellTexts(row ast.Node, source []byte) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		cells = append(cells, nodeText(cell, source))
	}
	return cells
}

func imageBlock(img *ast.Image, source []byte) docdiff.Block {
	return docdiff.Block{
		Kind: docdiff.BlockImage,
		Image: &docdiff.ImageData{
			Src: string(img.Destination),
			Alt: nodeText(img, source),
		},
	}
}

// soleImage returns the paragraph's image when the image is its only child,
// which is how standalone figures appear in Markdown.
func soleImage(p *ast.Paragraph) *ast.Image {
	if p.ChildCount() != 1 {
		return nil
	}
	img, _ := p.FirstChild().(*ast.Image)
	return img
}

// nodeText flattens a node's inline text content, joining line breaks with
// spaces.
func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// rawMarkup reassembles the source lines covered by a node, descending into
// container nodes that carry no lines of their own.
func rawMarkup(node ast.Node, source []byte) string {
	var sb strings.Builder
	writeLines(&sb, node, source)
	return strings.TrimRight(sb.String(), "\n")
}

func writeLines(sb *strings.Builder, node ast.Node, source []byte) {
	if lines := node.Lines(); lines != nil && lines.Len() > 0 {
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			sb.Write(seg.Value(source))
		}
		return
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		writeLines(sb, child, source)
	}
}

func codeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}

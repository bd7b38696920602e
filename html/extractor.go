// Package html implements document block extraction and static side-by-side
// rendering for HTML using golang.org/x/net/html.
package html

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.Extractor = (*Extractor)(nil)

// Extractor parses HTML into comparison blocks. It walks the body and turns
// the block-level elements it recognizes into blocks, descending through
// sectioning containers.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses source and flattens the document body into blocks. List
// items become individual text blocks, mirroring the Markdown extractor, so
// both formats align the same way.
func (e *Extractor) Extract(source []byte) ([]docdiff.Block, error) {
	doc, err := html.Parse(bytes.NewReader(source))
	if err != nil {
		return nil, err
	}

	var blocks []docdiff.Block
	if body := findElement(doc, "body"); body != nil {
		blocks = collect(blocks, body)
	}
	for i := range blocks {
		blocks[i].Position = i
	}
	return blocks, nil
}

func collect(blocks []docdiff.Block, n *html.Node) []docdiff.Block {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		switch child.Data {
		case "table":
			blocks = append(blocks, tableBlock(child))
		case "figure":
			blocks = append(blocks, figureBlock(child))
		case "img":
			blocks = append(blocks, imageBlock(child, ""))
		case "ul", "ol":
			for li := child.FirstChild; li != nil; li = li.NextSibling {
				if li.Type == html.ElementNode && li.Data == "li" {
					blocks = appendText(blocks, li)
				}
			}
		case "p":
			if img := soleImage(child); img != nil {
				blocks = append(blocks, imageBlock(img, ""))
				continue
			}
			blocks = appendText(blocks, child)
		case "h1", "h2", "h3", "h4", "h5", "h6", "pre", "blockquote":
			blocks = appendText(blocks, child)
		case "div", "section", "article", "main", "header", "footer", "aside", "nav":
			blocks = collect(blocks, child)
		}
	}
	return blocks
}

func appendText(blocks []docdiff.Block, n *html.Node) []docdiff.Block {
	plain := nodeText(n)
	if plain == "" {
		return blocks
	}
	return append(blocks, docdiff.Block{
		Kind:      docdiff.BlockText,
		PlainText: plain,
		Markup:    renderNode(n),
	})
}

func tableBlock(table *html.Node) docdiff.Block {
	var rows [][]string
	walkElements(table, func(n *html.Node) bool {
		if n.Data != "tr" {
			return true
		}
		var cells []string
		for cell := n.FirstChild; cell != nil; cell = cell.NextSibling {
			if cell.Type == html.ElementNode && (cell.Data == "th" || cell.Data == "td") {
				cells = append(cells, nodeText(cell))
			}
		}
		rows = append(rows, cells)
		return false
	})
	return docdiff.Block{
		Kind:  docdiff.BlockTable,
		Table: &docdiff.TableData{Rows: rows},
	}
}

// figureBlock extracts the figure's image with its caption as the block's
// plain text. A figure without an image degrades to a text block.
func figureBlock(figure *html.Node) docdiff.Block {
	img := findElement(figure, "img")
	if img == nil {
		return docdiff.Block{
			Kind:      docdiff.BlockText,
			PlainText: nodeText(figure),
			Markup:    renderNode(figure),
		}
	}
	var caption string
	if fc := findElement(figure, "figcaption"); fc != nil {
		caption = nodeText(fc)
	}
	return imageBlock(img, caption)
}

func imageBlock(img *html.Node, caption string) docdiff.Block {
	return docdiff.Block{
		Kind:      docdiff.BlockImage,
		PlainText: caption,
		Image: &docdiff.ImageData{
			Src: attr(img, "src"),
			Alt: attr(img, "alt"),
		},
	}
}

// soleImage returns the paragraph's image when the image is its only
// non-whitespace content.
func soleImage(p *html.Node) *html.Node {
	var img *html.Node
	for child := p.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.TextNode && strings.TrimSpace(child.Data) == "":
		case child.Type == html.ElementNode && child.Data == "img" && img == nil:
			img = child
		default:
			return nil
		}
	}
	return img
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// findElement returns the first descendant element with the given tag name,
// depth first.
func findElement(n *html.Node, name string) *html.Node {
	var found *html.Node
	walkElements(n, func(el *html.Node) bool {
		if found == nil && el.Data == name {
			found = el
			return false
		}
		return found == nil
	})
	return found
}

// walkElements visits every descendant element of n. The callback returns
// whether to descend into the visited element's children.
func walkElements(n *html.Node, visit func(*html.Node) bool) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		if visit(child) {
			walkElements(child, visit)
		}
	}
}

// nodeText flattens the text content under n with whitespace runs collapsed.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteByte(' ')
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func renderNode(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

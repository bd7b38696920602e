package html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.Renderer = (*Renderer)(nil)

// Renderer writes a comparison as a standalone side-by-side HTML page. The
// page is self-contained: styling is embedded so the output can be opened or
// attached as a single file.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

const pageCSS = `body { font-family: sans-serif; margin: 2rem; color: #1a1a1a; }
.summary { margin-bottom: 1rem; font-size: 0.9rem; color: #555; }
.summary .additions { color: #1a7f37; }
.summary .deletions { color: #cf222e; }
table.diff { width: 100%; border-collapse: collapse; table-layout: fixed; }
table.diff > tbody > tr > td { width: 50%; vertical-align: top; padding: 0.5rem 0.75rem; border: 1px solid #d0d7de; }
td.added { background: #dafbe1; }
td.removed { background: #ffebe9; }
td.modified { background: #fff8c5; }
td.placeholder { background: #f6f8fa; color: #888; font-style: italic; }
ins { background: #aceebb; text-decoration: none; }
del { background: #ffcecb; text-decoration: none; }
span.ghost { color: #aaa; font-style: italic; }
table.inner { border-collapse: collapse; font-size: 0.85rem; }
table.inner td, table.inner th { border: 1px solid #d0d7de; padding: 0.15rem 0.4rem; }
img { max-width: 100%; }`

// Render writes result to w as a complete HTML document.
func (r *Renderer) Render(w io.Writer, result *docdiff.Result) error {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>Document comparison</title>\n<style>\n")
	sb.WriteString(pageCSS)
	sb.WriteString("\n</style>\n</head>\n<body>\n")

	s := result.Summary
	fmt.Fprintf(&sb, "<div class=\"summary\"><span class=\"additions\">%d addition%s</span>, "+
		"<span class=\"deletions\">%d deletion%s</span>, %d change%s</div>\n",
		s.Additions, plural(s.Additions), s.Deletions, plural(s.Deletions),
		s.Changes(), plural(s.Changes()))

	sb.WriteString("<table class=\"diff\">\n<tbody>\n")
	for i := range result.Left {
		sb.WriteString("<tr>")
		writeCell(&sb, result.Left[i], true)
		writeCell(&sb, result.Right[i], false)
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n</body>\n</html>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeCell(sb *strings.Builder, a docdiff.Annotated, left bool) {
	fmt.Fprintf(sb, "<td class=%q>", cellClass(a.Highlight))
	switch {
	case a.Placeholder():
		fmt.Fprintf(sb, "[%s] %s", a.Kind, html.EscapeString(a.Preview))
	case a.Block.Kind == docdiff.BlockTable:
		writeTable(sb, a.Block.Table)
	case a.Block.Kind == docdiff.BlockImage:
		writeImage(sb, a.Block.Image)
	case len(a.Spans) > 0:
		writeSpans(sb, a.Spans, left)
	default:
		sb.WriteString(html.EscapeString(a.Block.PlainText))
	}
	sb.WriteString("</td>")
}

func cellClass(h docdiff.Highlight) string {
	switch h {
	case docdiff.HighlightAdded:
		return "added"
	case docdiff.HighlightRemoved:
		return "removed"
	case docdiff.HighlightModified:
		return "modified"
	case docdiff.HighlightPlaceholderAdded, docdiff.HighlightPlaceholderRemoved:
		return "placeholder"
	default:
		return "context"
	}
}

// writeSpans emits the inline payload. A side's own changed runs render as
// del on the left and ins on the right; ghost previews of the opposite
// side's content are dimmed.
func writeSpans(sb *strings.Builder, spans []docdiff.Span, left bool) {
	for _, span := range spans {
		text := html.EscapeString(span.Text)
		switch span.Kind {
		case docdiff.SpanEqual:
			sb.WriteString(text)
		case docdiff.SpanChanged:
			if left {
				fmt.Fprintf(sb, "<del>%s</del>", text)
			} else {
				fmt.Fprintf(sb, "<ins>%s</ins>", text)
			}
		case docdiff.SpanGhost:
			fmt.Fprintf(sb, "<span class=\"ghost\">%s</span>", text)
		}
	}
}

func writeTable(sb *strings.Builder, table *docdiff.TableData) {
	if table == nil {
		return
	}
	sb.WriteString("<table class=\"inner\">")
	for _, row := range table.Rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(sb, "<td>%s</td>", html.EscapeString(cell))
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
}

func writeImage(sb *strings.Builder, img *docdiff.ImageData) {
	if img == nil {
		return
	}
	fmt.Fprintf(sb, "<img src=\"%s\" alt=\"%s\">",
		html.EscapeString(img.Src), html.EscapeString(img.Alt))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

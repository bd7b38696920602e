package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/docdiff"
)

// renderConfig holds all rendering parameters for renderResult.
type renderConfig struct {
	result   *docdiff.Result
	styles   docdiff.Styles
	renderer *lipgloss.Renderer
	width    int
}

const (
	columnGap      = " │ "
	minColumnWidth = 20
	// summaryHeight is the header line plus its trailing blank line.
	summaryHeight = 2
)

// renderResult converts a comparison result to a styled side-by-side string.
// It also returns the line offset of every changed row so the model can jump
// between changes.
func renderResult(cfg renderConfig) (string, []int) {
	res := cfg.result
	if res == nil {
		return "", nil
	}

	colWidth := (cfg.width - lipgloss.Width(columnGap)) / 2
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}

	summaryStyle := styleFromColorPair(cfg.styles.Summary, cfg.renderer)
	gapStyle := styleFromColorPair(cfg.styles.Placeholder, cfg.renderer)

	var sb strings.Builder
	s := res.Summary
	sb.WriteString(summaryStyle.Render(fmt.Sprintf(
		"%d additions, %d deletions, %d changes", s.Additions, s.Deletions, s.Changes())))
	sb.WriteString("\n\n")

	var changeLines []int
	line := summaryHeight
	for i := range res.Left {
		row := renderRow(res.Left[i], res.Right[i], colWidth, gapStyle, cfg)
		if res.Left[i].Highlight != docdiff.HighlightNone ||
			res.Right[i].Highlight != docdiff.HighlightNone {
			changeLines = append(changeLines, line)
		}
		sb.WriteString(row)
		sb.WriteString("\n")
		line += lipgloss.Height(row)
	}
	return sb.String(), changeLines
}

func renderRow(left, right docdiff.Annotated, colWidth int, gapStyle lipgloss.Style, cfg renderConfig) string {
	l := renderCell(left, true, colWidth, cfg)
	r := renderCell(right, false, colWidth, cfg)

	height := lipgloss.Height(l)
	if h := lipgloss.Height(r); h > height {
		height = h
	}
	gap := strings.TrimSuffix(strings.Repeat(gapStyle.Render(columnGap)+"\n", height), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, l, gap, r)
}

func renderCell(a docdiff.Annotated, left bool, width int, cfg renderConfig) string {
	if len(a.Spans) > 0 {
		return renderSpans(a.Spans, left, width, cfg)
	}

	base := styleFromColorPair(cellColors(a.Highlight, cfg.styles), cfg.renderer).Width(width)

	var content string
	switch {
	case a.Placeholder():
		content = strings.TrimSpace(fmt.Sprintf("[%s] %s", a.Kind, a.Preview))
	case a.Block.Kind == docdiff.BlockTable:
		content = tableText(a.Block.Table)
	case a.Block.Kind == docdiff.BlockImage:
		content = imageText(a.Block)
	default:
		content = a.Block.PlainText
	}
	return base.Render(content)
}

// renderSpans renders a modified text block's inline payload. Changed runs
// get the side's highlight colors, ghost previews are dimmed, and the result
// is wrapped to the column width.
func renderSpans(spans []docdiff.Span, left bool, width int, cfg renderConfig) string {
	base := styleFromColorPair(cfg.styles.Modified, cfg.renderer)
	ghost := styleFromColorPair(cfg.styles.Ghost, cfg.renderer)
	highlight := styleFromColorPair(cfg.styles.AddedHighlight, cfg.renderer)
	if left {
		highlight = styleFromColorPair(cfg.styles.RemovedHighlight, cfg.renderer)
	}

	var sb strings.Builder
	for _, span := range spans {
		switch span.Kind {
		case docdiff.SpanEqual:
			sb.WriteString(base.Render(span.Text))
		case docdiff.SpanChanged:
			sb.WriteString(highlight.Render(span.Text))
		case docdiff.SpanGhost:
			sb.WriteString(ghost.Render(span.Text))
		}
	}
	return newStyle(cfg.renderer).Width(width).Render(sb.String())
}

func cellColors(h docdiff.Highlight, styles docdiff.Styles) docdiff.ColorPair {
	switch h {
	case docdiff.HighlightAdded:
		return styles.Added
	case docdiff.HighlightRemoved:
		return styles.Removed
	case docdiff.HighlightModified:
		return styles.Modified
	case docdiff.HighlightPlaceholderAdded, docdiff.HighlightPlaceholderRemoved:
		return styles.Placeholder
	default:
		return styles.Context
	}
}

func tableText(table *docdiff.TableData) string {
	if table == nil {
		return "[table]"
	}
	lines := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		lines[i] = strings.Join(row, " | ")
	}
	return strings.Join(lines, "\n")
}

func imageText(b *docdiff.Block) string {
	if b.Image == nil {
		return "[image]"
	}
	text := fmt.Sprintf("[image] %s", b.Image.Src)
	if b.Image.Alt != "" {
		text += fmt.Sprintf(" (%s)", b.Image.Alt)
	}
	if b.PlainText != "" {
		text += "\n" + b.PlainText
	}
	return text
}

// newStyle creates a lipgloss style bound to the given renderer, falling
// back to the package default.
func newStyle(renderer *lipgloss.Renderer) lipgloss.Style {
	if renderer != nil {
		return renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
func styleFromColorPair(cp docdiff.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	style := newStyle(renderer)
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

package docdiff

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a rendered
// comparison.
type Styles struct {
	Added            ColorPair // blocks present only in the new revision
	Removed          ColorPair // blocks present only in the old revision
	Modified         ColorPair // matched blocks whose content changed
	Context          ColorPair // unchanged blocks
	Placeholder      ColorPair // structural gaps standing in for the other side
	Ghost            ColorPair // inline previews of the other side's content
	AddedHighlight   ColorPair // changed words within new-side text
	RemovedHighlight ColorPair // changed words within old-side text
	Summary          ColorPair // the additions/deletions/changes header
}

// Theme provides styles for rendering comparisons.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}

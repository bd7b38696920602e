package docdiff

// Highlight tags an annotated block's change status.
type Highlight int

// Highlight tags. The placeholder variants mark synthetic blocks standing in
// for a counterpart that exists only on the opposite side.
const (
	HighlightNone Highlight = iota
	HighlightAdded
	HighlightRemoved
	HighlightModified
	HighlightPlaceholderAdded
	HighlightPlaceholderRemoved
)

// SpanKind classifies a run within a modified text block's inline payload.
type SpanKind int

// Span kinds. SpanGhost marks a compact preview of content that exists only
// on the opposite side; it keeps each side's block height close to its own
// content while still signaling that something changed here.
const (
	SpanEqual SpanKind = iota
	SpanChanged
	SpanGhost
)

// Span is one run of a modified text block's inline diff payload.
type Span struct {
	Kind SpanKind
	Text string
}

// Annotated is the per-side output unit of a comparison. Block is nil for
// placeholders; Kind and Preview then describe the opposite side's block so
// rendering can size the gap consistently with its kind.
type Annotated struct {
	Block     *Block
	Kind      BlockKind
	Highlight Highlight
	Spans     []Span // inline payload for modified text pairs
	Preview   string // truncated counterpart text for placeholders
}

// Placeholder reports whether the annotation has no underlying block.
func (a Annotated) Placeholder() bool { return a.Block == nil }

// Summary tallies changes across a whole comparison run. A modified block
// counts as one addition-equivalent and one deletion-equivalent.
type Summary struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// Changes is always recomputed as the sum of additions and deletions.
func (s Summary) Changes() int { return s.Additions + s.Deletions }

// Result holds both annotated sequences, the alignment decisions that
// produced them, and the change totals. Left and Right always have equal
// length: every decision contributes exactly one entry per side.
type Result struct {
	Left      []Annotated
	Right     []Annotated
	Decisions []Decision
	Summary   Summary
}

// Presentation constants for placeholder and inline ghost previews.
const (
	previewLength = 40
	ghostLength   = 16
)

// Comparer aligns and classifies two block sequences. Differ supplies the
// text edit scripts, Structural decides table and image equality, and
// Window overrides the lookahead depth when positive. A Comparer is
// stateless across calls: every comparison allocates fresh output.
type Comparer struct {
	Differ     TextDiffer
	Structural StructuralComparer
	Window     int
}

// NewComparer returns a Comparer using the given text differ and structural
// comparer.
func NewComparer(differ TextDiffer, structural StructuralComparer) *Comparer {
	return &Comparer{Differ: differ, Structural: structural}
}

// Compare aligns left against right and classifies every decision into one
// annotated block per side. The output is deterministic for identical
// inputs.
func (c *Comparer) Compare(left, right []Block) *Result {
	decisions := c.Align(left, right)
	res := &Result{
		Left:      make([]Annotated, 0, len(decisions)),
		Right:     make([]Annotated, 0, len(decisions)),
		Decisions: decisions,
	}

	for _, d := range decisions {
		switch d.Kind {
		case DecisionMatch:
			la, ra := c.classify(&left[d.Left], &right[d.Right], &res.Summary)
			res.Left = append(res.Left, la)
			res.Right = append(res.Right, ra)
		case DecisionInsertion:
			r := &right[d.Right]
			res.Right = append(res.Right, Annotated{Block: r, Kind: r.Kind, Highlight: HighlightAdded})
			res.Left = append(res.Left, placeholder(r, HighlightPlaceholderAdded))
			res.Summary.Additions++
		case DecisionDeletion:
			l := &left[d.Left]
			res.Left = append(res.Left, Annotated{Block: l, Kind: l.Kind, Highlight: HighlightRemoved})
			res.Right = append(res.Right, placeholder(l, HighlightPlaceholderRemoved))
			res.Summary.Deletions++
		}
	}
	return res
}

// classify decides unchanged vs modified for a matched pair and updates the
// summary accordingly.
func (c *Comparer) classify(l, r *Block, sum *Summary) (Annotated, Annotated) {
	la := Annotated{Block: l, Kind: l.Kind}
	ra := Annotated{Block: r, Kind: r.Kind}

	modified := func() (Annotated, Annotated) {
		la.Highlight = HighlightModified
		ra.Highlight = HighlightModified
		sum.Additions++
		sum.Deletions++
		return la, ra
	}

	switch {
	case l.Kind == BlockTable && r.Kind == BlockTable:
		if c.structural().TablesEqual(l, r) {
			return la, ra
		}
		return modified()
	case l.Kind == BlockImage && r.Kind == BlockImage:
		if c.structural().ImagesEqual(l, r) {
			return la, ra
		}
		return modified()
	case l.Kind != r.Kind:
		// Forced low-confidence pairing across kinds: content-level diffing
		// is meaningless, so no span payload.
		return modified()
	}

	if TextsEqual(l.PlainText, r.PlainText) {
		return la, ra
	}
	if c.Differ != nil {
		la.Spans, ra.Spans = spansFromEdits(c.Differ.Diff(l.PlainText, r.PlainText))
	}
	return modified()
}

func (c *Comparer) structural() StructuralComparer {
	if c.Structural == nil {
		return StructComparer{}
	}
	return c.Structural
}

// spansFromEdits builds each side's inline payload from an edit script.
// Equal runs appear verbatim on both sides; a side's own exclusive runs are
// marked changed, while the opposite side gets a compact ghost preview.
// Adjacent equal and changed runs are merged.
func spansFromEdits(edits []Edit) (left, right []Span) {
	for _, e := range edits {
		switch e.Op {
		case OpEqual:
			left = appendSpan(left, Span{Kind: SpanEqual, Text: e.Text})
			right = appendSpan(right, Span{Kind: SpanEqual, Text: e.Text})
		case OpDelete:
			left = appendSpan(left, Span{Kind: SpanChanged, Text: e.Text})
			right = appendSpan(right, Span{Kind: SpanGhost, Text: truncate(e.Text, ghostLength)})
		case OpInsert:
			right = appendSpan(right, Span{Kind: SpanChanged, Text: e.Text})
			left = appendSpan(left, Span{Kind: SpanGhost, Text: truncate(e.Text, ghostLength)})
		}
	}
	return left, right
}

func appendSpan(spans []Span, s Span) []Span {
	if n := len(spans); n > 0 && spans[n-1].Kind == s.Kind && s.Kind != SpanGhost {
		spans[n-1].Text += s.Text
		return spans
	}
	return append(spans, s)
}

// placeholder synthesizes the structural counterpart annotation for a block
// that exists on one side only.
func placeholder(b *Block, tag Highlight) Annotated {
	return Annotated{Kind: b.Kind, Highlight: tag, Preview: truncate(b.PlainText, previewLength)}
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

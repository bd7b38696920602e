package docdiff

// DecisionKind classifies one step of the alignment output.
type DecisionKind int

// Alignment decision kinds.
const (
	DecisionMatch DecisionKind = iota
	DecisionInsertion
	DecisionDeletion
)

// Decision records the correspondence verdict for one alignment step. Left
// and Right index into the input block lists; -1 marks the absent side
// (insertions have no left index, deletions no right index).
type Decision struct {
	Kind  DecisionKind
	Left  int
	Right int
}

// DefaultWindow is the lookahead depth used when Comparer.Window is unset.
// A block that moved further than this is reported as an unmatched
// deletion/insertion pair instead of a match.
const DefaultWindow = 3

// matchThreshold is the similarity above which two blocks are considered a
// confident correspondence. The comparison is strict: exactly-threshold
// pairs go through lookahead instead.
const matchThreshold = 0.8

// Align decides which blocks in left correspond to which blocks in right.
// It runs a single forward pass with one cursor per side; when the current
// pair is not a confident match it scores each block against a bounded
// window of upcoming blocks on the opposite side to detect insertions and
// deletions before they desynchronize the cursors. Every input block
// appears in exactly one decision, and each iteration advances at least one
// cursor, so at most len(left)+len(right) decisions are produced.
func (c *Comparer) Align(left, right []Block) []Decision {
	window := c.Window
	if window <= 0 {
		window = DefaultWindow
	}

	var decisions []Decision
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		switch {
		case i >= len(left):
			decisions = append(decisions, Decision{Kind: DecisionInsertion, Left: -1, Right: j})
			j++
		case j >= len(right):
			decisions = append(decisions, Decision{Kind: DecisionDeletion, Left: i, Right: -1})
			i++
		default:
			l, r := &left[i], &right[j]
			if TextsEqual(l.PlainText, r.PlainText) || c.Similarity(l.PlainText, r.PlainText) > matchThreshold {
				decisions = append(decisions, Decision{Kind: DecisionMatch, Left: i, Right: j})
				i++
				j++
				continue
			}

			// The current pair disagrees: check whether either block's real
			// counterpart sits a little further along the opposite side.
			leftAhead, _ := c.bestMatch(l.PlainText, ahead(right, j, window))
			rightAhead, _ := c.bestMatch(r.PlainText, ahead(left, i, window))
			switch {
			case leftAhead > rightAhead && leftAhead > matchThreshold:
				// l's counterpart lies beyond r, so r has no partner on the
				// left; consuming it alone lets l be re-evaluated next round.
				decisions = append(decisions, Decision{Kind: DecisionInsertion, Left: -1, Right: j})
				j++
			case rightAhead > matchThreshold:
				decisions = append(decisions, Decision{Kind: DecisionDeletion, Left: i, Right: -1})
				i++
			default:
				// Neither side has a strong match nearby: pair them anyway so
				// the pass keeps moving.
				decisions = append(decisions, Decision{Kind: DecisionMatch, Left: i, Right: j})
				i++
				j++
			}
		}
	}
	return decisions
}

// ahead returns up to window blocks following position pos.
func ahead(blocks []Block, pos, window int) []Block {
	lo := pos + 1
	if lo >= len(blocks) {
		return nil
	}
	return blocks[lo:min(lo+window, len(blocks))]
}

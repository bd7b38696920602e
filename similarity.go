package docdiff

import "strings"

// TextsEqual reports whether a and b are equal after trimming, collapsing
// internal whitespace runs to a single space, and lower-casing. It is the
// fast path used before the costlier similarity metric.
func TextsEqual(a, b string) bool {
	return normalizeText(a) == normalizeText(b)
}

func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Similarity scores how alike two strings are in [0, 1]: the total length of
// the edit script's equal spans divided by the longer string's length. This
// rewards strings sharing large common substrings in order and penalizes
// pure length mismatch. Two empty strings score 1; exactly one empty string
// scores 0.
func (c *Comparer) Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	if c.Differ == nil {
		// Without an oracle only the exact fast path can match.
		return 0.0
	}
	equal := 0
	for _, e := range c.Differ.Diff(a, b) {
		if e.Op == OpEqual {
			equal += len(e.Text)
		}
	}
	return float64(equal) / float64(max(len(a), len(b)))
}

// bestMatch scores target against each candidate's plain text and returns
// the strictly highest score with its index. Ties keep the first candidate;
// an empty candidate list returns (0, -1).
func (c *Comparer) bestMatch(target string, candidates []Block) (float64, int) {
	best, idx := 0.0, -1
	for i := range candidates {
		if s := c.Similarity(target, candidates[i].PlainText); s > best {
			best, idx = s, i
		}
	}
	return best, idx
}

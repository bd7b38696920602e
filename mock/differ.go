package mock

import "github.com/fwojciec/docdiff"

// Compile-time interface verification.
var _ docdiff.TextDiffer = (*Differ)(nil)

// Differ is a mock implementation of docdiff.TextDiffer.
type Differ struct {
	DiffFn func(old, new string) []docdiff.Edit
}

func (d *Differ) Diff(old, new string) []docdiff.Edit {
	return d.DiffFn(old, new)
}

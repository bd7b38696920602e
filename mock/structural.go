package mock

import "github.com/fwojciec/docdiff"

// Compile-time interface verification.
var _ docdiff.StructuralComparer = (*Structural)(nil)

// Structural is a mock implementation of docdiff.StructuralComparer.
type Structural struct {
	TablesEqualFn func(a, b *docdiff.Block) bool
	ImagesEqualFn func(a, b *docdiff.Block) bool
}

func (s *Structural) TablesEqual(a, b *docdiff.Block) bool {
	return s.TablesEqualFn(a, b)
}

func (s *Structural) ImagesEqual(a, b *docdiff.Block) bool {
	return s.ImagesEqualFn(a, b)
}

package mock

import "github.com/fwojciec/docdiff"

// Compile-time interface verification.
var _ docdiff.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docdiff.Extractor.
type Extractor struct {
	ExtractFn func(source []byte) ([]docdiff.Block, error)
}

func (e *Extractor) Extract(source []byte) ([]docdiff.Block, error) {
	return e.ExtractFn(source)
}

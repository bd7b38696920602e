package mock

import (
	"io"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docdiff.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, result *docdiff.Result) error
}

func (r *Renderer) Render(w io.Writer, result *docdiff.Result) error {
	return r.RenderFn(w, result)
}

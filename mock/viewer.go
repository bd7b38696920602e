package mock

import (
	"context"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of docdiff.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, result *docdiff.Result) error
}

func (v *Viewer) View(ctx context.Context, result *docdiff.Result) error {
	return v.ViewFn(ctx, result)
}

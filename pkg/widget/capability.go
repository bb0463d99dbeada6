package widget

import (
	"context"
	"errors"
)

// ErrNotFound is returned by an AssetResolver when no asset matches the
// requested filename.
var ErrNotFound = errors.New("asset not found")

// Typesetter renders formula text into a displayable string.
// Render may fail synchronously; callers must catch the error and degrade
// to raw-text display rather than propagate it.
type Typesetter interface {
	Render(formula string, display bool) (string, error)
}

// AssetResolver resolves an embed filename to a displayable resource
// location. Resolution may be slow and may be invoked many times
// concurrently without coordination.
type AssetResolver interface {
	Resolve(ctx context.Context, filename string) (string, error)
}

// RenderMath typesets a math descriptor through ts. On failure the raw
// formula text is returned with failed=true so the host can tag it with
// an error style; the error never propagates.
func RenderMath(ts Typesetter, desc Math) (text string, failed bool) {
	if ts == nil {
		return desc.Formula, true
	}
	out, err := ts.Render(desc.Formula, desc.Display)
	if err != nil {
		return desc.Formula, true
	}
	return out, false
}

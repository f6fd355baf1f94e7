package fur

import "errors"

var (
	// ErrConfiguration reports a surface that cannot render or groom at all:
	// missing mesh, materials or pattern, or invalid pattern settings. It
	// disables the surface until the next Activate.
	ErrConfiguration = errors.New("fur: configuration error")

	// ErrResource reports a transient draw failure. Only the failing draw is
	// skipped; the next frame retries.
	ErrResource = errors.New("fur: resource error")
)

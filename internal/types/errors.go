package types

import "errors"

// Sentinel errors for the core error taxonomy. Packages wrap these with
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is.
var (
	// ErrInvalidConfiguration indicates a configuration value that is
	// rejected before any processing starts (e.g. a non-positive chunk
	// budget or an unknown simplification level).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidInput indicates a caller contract violation such as
	// out-of-range match offsets or a missing input source.
	ErrInvalidInput = errors.New("invalid input")
)

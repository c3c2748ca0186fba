package draw

import "errors"

// Sentinel kinds for selection errors.
var (
	ErrEmptyPool = errors.New("selection pool exhausted")
)

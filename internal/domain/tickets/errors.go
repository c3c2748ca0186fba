package tickets

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrInvalidRange = errors.New("invalid ticket range")
)

package repository

import "errors"

// Sentinel kinds for history store errors.
var (
	ErrEmptyHistory = errors.New("history is empty")
)

// Package repository defines the draw history store interface and errors.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithMaxSize caps the ledger length; the oldest entries fall off the tail.
// Zero or negative means unbounded, which is the user-facing contract.
func WithMaxSize(n int) Option {
	return func(s *MemStore) {
		s.maxSize = n
	}
}

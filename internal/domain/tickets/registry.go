// Package tickets holds the set of ticket identifiers eligible for draws.
package tickets

import (
	"strconv"
)

// Registry is an insertion-ordered set of ticket identifiers. It contains
// no duplicates regardless of duplicate inputs; iteration follows the order
// of first appearance so callers get deterministic listings.
//
// The registry is not internally synchronized: the service owning the
// raffle state serializes all access behind a single lock.
type Registry struct {
	seen  map[string]struct{}
	order []string
}

// NewRegistry creates an empty ticket registry.
func NewRegistry() *Registry {
	return &Registry{
		seen: make(map[string]struct{}),
	}
}

// Add inserts each identifier not already present and returns how many were
// newly added. Duplicates among the input or against existing state are
// silently deduplicated.
func (r *Registry) Add(ids ...string) int {
	added := 0
	for _, id := range ids {
		if _, ok := r.seen[id]; ok {
			continue
		}
		r.seen[id] = struct{}{}
		r.order = append(r.order, id)
		added++
	}
	return added
}

// AddRange generates consecutive integer identifiers from start to end
// inclusive, as strings, and adds them. Returns ErrInvalidRange when
// end < start.
func (r *Registry) AddRange(start, end int) (int, error) {
	if end < start {
		return 0, ErrInvalidRange
	}
	ids := make([]string, 0, end-start+1)
	for n := start; n <= end; n++ {
		ids = append(ids, strconv.Itoa(n))
	}
	return r.Add(ids...), nil
}

// Remove deletes the given identifiers if present and returns how many were
// actually removed. Absent identifiers are ignored.
func (r *Registry) Remove(ids ...string) int {
	removed := 0
	for _, id := range ids {
		if _, ok := r.seen[id]; !ok {
			continue
		}
		delete(r.seen, id)
		removed++
	}
	if removed > 0 {
		r.compact()
	}
	return removed
}

// compact rebuilds the order slice after removals.
func (r *Registry) compact() {
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.seen[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept
}

// Contains reports whether the identifier is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.seen[id]
	return ok
}

// All returns the identifiers in first-appearance order. The slice is a
// copy and safe to retain.
func (r *Registry) All() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	return len(r.seen)
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.seen = make(map[string]struct{})
	r.order = nil
}

// Package categories holds the set of valid prize category labels.
package categories

import "strings"

// DefaultLabels is the fixed set restored by a full reset.
var DefaultLabels = []string{"A", "B", "C"} //nolint:gochecknoglobals // fixed default set

// Set is an insertion-ordered set of normalized category labels. Labels are
// opaque beyond normalization; the engine attaches no semantics to the
// default three.
//
// The prize-reference guard on deletion lives in the service layer, which
// can see both the category set and the prize catalog.
type Set struct {
	labels   []string
	defaults []string
}

// NewSet creates a Set seeded with the given defaults, falling back to
// DefaultLabels when none are provided. Reset restores the same defaults.
func NewSet(defaults ...string) *Set {
	s := &Set{}
	for _, d := range defaults {
		if label := Normalize(d); label != "" {
			s.defaults = append(s.defaults, label)
		}
	}
	if len(s.defaults) == 0 {
		s.defaults = append(s.defaults, DefaultLabels...)
	}
	s.Reset()
	return s
}

// Normalize trims and upper-cases a label the way the set stores it.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Add normalizes the label and appends it. Returns false without mutation
// when the label is empty after trimming or already present.
func (s *Set) Add(name string) bool {
	label := Normalize(name)
	if label == "" || s.Has(label) {
		return false
	}
	s.labels = append(s.labels, label)
	return true
}

// Delete removes the label. Returns false when absent.
func (s *Set) Delete(name string) bool {
	label := Normalize(name)
	for i, l := range s.labels {
		if l == label {
			s.labels = append(s.labels[:i], s.labels[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether the normalized label is present.
func (s *Set) Has(name string) bool {
	label := Normalize(name)
	for _, l := range s.labels {
		if l == label {
			return true
		}
	}
	return false
}

// All returns the labels in insertion order. The slice is a copy.
func (s *Set) All() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of labels.
func (s *Set) Len() int {
	return len(s.labels)
}

// Reset restores the default label set.
func (s *Set) Reset() {
	s.labels = make([]string, len(s.defaults))
	copy(s.labels, s.defaults)
}

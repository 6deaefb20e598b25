package cache

import "strings"

// Key identifies one fetchable remote resource as an ordered tuple of
// segments (domain, operation, parameters). Equality is structural.
type Key struct {
	segments []string
}

func NewKey(segments ...string) Key {
	copied := make([]string, len(segments))
	copy(copied, segments)
	return Key{segments: copied}
}

func (k Key) Segments() []string {
	copied := make([]string, len(k.segments))
	copy(copied, k.segments)
	return copied
}

func (k Key) IsZero() bool {
	return len(k.segments) == 0
}

// String returns the canonical form used as the store's map key.
// Segments must not contain '/'.
func (k Key) String() string {
	return strings.Join(k.segments, "/")
}

func (k Key) Equal(other Key) bool {
	if len(k.segments) != len(other.segments) {
		return false
	}
	for i, s := range k.segments {
		if other.segments[i] != s {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the first len(prefix) segments of k match
// prefix, e.g. NewKey("branches", "detail", "b1") matches NewKey("branches").
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix.segments) > len(k.segments) {
		return false
	}
	for i, s := range prefix.segments {
		if k.segments[i] != s {
			return false
		}
	}
	return true
}

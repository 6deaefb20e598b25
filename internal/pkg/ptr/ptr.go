package ptr

// To returns a pointer to v; shorthand for building patch structs and test fixtures
func To[T any](v T) *T {
	return &v
}

func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

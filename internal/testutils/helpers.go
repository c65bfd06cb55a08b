package testutils

// Ptr returns a pointer to v, for building optional fields in test inputs.
func Ptr[T any](v T) *T {
	return &v
}

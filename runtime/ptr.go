package runtime

// Ptr returns a pointer to v. Generated code uses it to seed defaults for
// optional (pointer-typed) fields.
func Ptr[T any](v T) *T {
	return &v
}

package runtime

import "os"

// Source is an opaque, case-sensitive string-keyed lookup of configuration
// values. Generated accessors read exactly the variable names declared in
// the schema, nothing else.
type Source interface {
	// Lookup returns the raw value for key and whether it is present.
	// An empty string that is present is a value, not an absence.
	Lookup(key string) (string, bool)
}

// EnvSource reads values from process environment variables.
type EnvSource struct{}

func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource serves values from a plain map. Intended for tests.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]

	return v, ok
}

package common

import "sort"

// SortedKeys returns the keys of a map in ascending order. Schema handling
// sorts every map traversal so that generated output never depends on Go's
// randomized map iteration.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

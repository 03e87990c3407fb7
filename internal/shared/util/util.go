package util

import "sort"

// SortedKeys returns the map's keys in sorted order. Analysis results are
// keyed by module name; iterating sorted keys keeps output deterministic.
func SortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// DedupPreserveOrder removes duplicates keeping the first occurrence.
func DedupPreserveOrder[T comparable](values []T) []T {
	seen := make(map[T]bool, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Package filter narrows locally held lists by a search term.
package filter

import "strings"

// Match reports whether any field contains term, ignoring case. An empty term
// matches everything. Surrounding spaces are part of the term.
func Match(term string, fields ...string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Slice returns the items whose fields match term. The input is not modified.
func Slice[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Match(term, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}

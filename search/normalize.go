// Package search implements the coworking search-and-ranking engine: a pure,
// synchronous computation over the static catalog with no I/O and no shared
// mutable state.
package search

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases s and applies Unicode compatibility decomposition
// (NFKD). Every substring comparison in the engine goes through it, which is
// what makes "café" match a query for "cafe".
func Normalize(s string) string {
	return norm.NFKD.String(strings.ToLower(s))
}

// ContainsNormalized reports whether needle occurs in haystack after both
// are normalized. An empty needle matches everything: an absent query
// filters nothing.
func ContainsNormalized(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

package tools

import (
	"unicode"

	"coworkly/models"
)

// unpricedSentinel stands in for display prices with no embedded integer,
// e.g. "Contact for pricing"; any realistic ceiling excludes it. Revisit if
// a record ever legitimately has no numeric price.
const unpricedSentinel = 999

// priceValue extracts the first embedded integer from a display price like
// "$25/day".
func priceValue(price string) int {
	value, digits := 0, false
	for _, r := range price {
		if unicode.IsDigit(r) {
			value = value*10 + int(r-'0')
			digits = true
		} else if digits {
			break
		}
	}
	if !digits {
		return unpricedSentinel
	}
	return value
}

// filterByMaxPrice drops records above the ceiling without reordering the
// survivors. Applied after ranking, so it affects membership only. A zero
// ceiling means no filter.
func filterByMaxPrice(spaces []models.CoworkingSpace, maxPrice int) []models.CoworkingSpace {
	if maxPrice <= 0 {
		return spaces
	}
	out := make([]models.CoworkingSpace, 0, len(spaces))
	for _, cw := range spaces {
		if priceValue(cw.Price) <= maxPrice {
			out = append(out, cw)
		}
	}
	return out
}

package search

import "coworkly/models"

// Matches reports whether the already-normalized query hits any searchable
// field of the record. One hit anywhere is enough.
func Matches(cw models.CoworkingSpace, query string) bool {
	if query == "" {
		return true
	}
	if ContainsNormalized(cw.Name, query) ||
		ContainsNormalized(cw.Address, query) ||
		ContainsNormalized(cw.District, query) ||
		ContainsNormalized(cw.Wifi, query) ||
		ContainsNormalized(cw.Price, query) {
		return true
	}
	for _, a := range cw.Amenities {
		if ContainsNormalized(a, query) {
			return true
		}
	}
	return false
}

// HitCount counts how many field checks the query hits. Each matching
// amenity counts on its own, so it is not capped at one per record. Used
// for scoring only, never for filtering.
func HitCount(cw models.CoworkingSpace, query string) int {
	if query == "" {
		return 0
	}
	hits := 0
	for _, field := range []string{cw.Name, cw.Address, cw.District, cw.Wifi, cw.Price} {
		if ContainsNormalized(field, query) {
			hits++
		}
	}
	for _, a := range cw.Amenities {
		if ContainsNormalized(a, query) {
			hits++
		}
	}
	return hits
}

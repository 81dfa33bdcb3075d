package search

import "coworkly/models"

// Scoring weights. A district match dominates: 2.0 beats the rating term
// (at most 1.0) plus typical keyword hits, so an explicit neighbourhood
// request reliably surfaces that neighbourhood first. Rating orders records
// within a district; keyword hits are a minor nudge since the matching step
// already filtered the pool.
const (
	districtBonus = 2.0
	ratingDivisor = 5.0
	hitWeight     = 0.25
)

// Score computes the composite relevance of a record as a plain weighted
// sum. Both district and query must already be normalized. Higher is more
// relevant.
func Score(cw models.CoworkingSpace, district, query string) float64 {
	var s float64
	if district != "" && ContainsNormalized(cw.District, district) {
		s += districtBonus
	}
	s += cw.Rating / ratingDivisor
	s += float64(HitCount(cw, query)) * hitWeight
	return s
}

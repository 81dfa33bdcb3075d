package search

import (
	"testing"

	"coworkly/models"

	"github.com/stretchr/testify/assert"
)

func sampleSpace() models.CoworkingSpace {
	return models.CoworkingSpace{
		Name:      "Crew Collective & Café",
		Address:   "360 Rue Saint-Jacques, Montreal, QC",
		District:  "Old Montreal",
		Wifi:      "1 Gbps fiber",
		Price:     "$30/day",
		Amenities: []string{"Coffee bar", "Meeting room", "Parking 24/7"},
		Rating:    4.8,
		Image:     "https://example.com/crew.jpg",
	}
}

func TestMatches(t *testing.T) {
	cw := sampleSpace()

	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"name hit", Normalize("crew"), true},
		{"diacritic-insensitive name hit", Normalize("cafe"), true},
		{"address hit", Normalize("saint-jacques"), true},
		{"district hit", Normalize("old montreal"), true},
		{"wifi hit", Normalize("fiber"), true},
		{"price hit", Normalize("$30"), true},
		{"amenity hit", Normalize("parking"), true},
		{"no hit anywhere", Normalize("sauna"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Matches(cw, tc.query))
		})
	}
}

func TestHitCount(t *testing.T) {
	cw := sampleSpace()

	// "montreal" appears in address and district.
	assert.Equal(t, 2, HitCount(cw, Normalize("montreal")))

	// Each matching amenity counts separately.
	cw.Amenities = []string{"Parking 24/7", "Underground parking", "Bike room"}
	assert.Equal(t, 2, HitCount(cw, Normalize("parking")))

	assert.Equal(t, 0, HitCount(cw, ""))
	assert.Equal(t, 0, HitCount(cw, Normalize("sauna")))
}

package search

import (
	"testing"

	"coworkly/catalog"
	"coworkly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func space(name, district string, rating float64, amenities ...string) models.CoworkingSpace {
	if amenities == nil {
		amenities = []string{}
	}
	return models.CoworkingSpace{
		Name:      name,
		Address:   "100 Rue Test, Montreal, QC",
		District:  district,
		Wifi:      "500 Mbps",
		Price:     "$25/day",
		Amenities: amenities,
		Rating:    rating,
		Image:     "https://example.com/" + name + ".jpg",
	}
}

func names(spaces []models.CoworkingSpace) []string {
	out := make([]string, 0, len(spaces))
	for _, cw := range spaces {
		out = append(out, cw.Name)
	}
	return out
}

func TestSearchOrdersByRatingWhenNoQuery(t *testing.T) {
	store := catalog.NewStore([]models.CoworkingSpace{
		space("Alpha", "", 4.5),
		space("Beta", "", 3.0),
		space("Gamma", "", 5.0),
	})
	engine := NewEngine(store)

	res, err := engine.Search(models.SearchRequest{City: "Montreal", Max: 5})
	require.NoError(t, err)

	assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, names(res.Coworkings))
	assert.Empty(t, res.Fallback)
}

func TestSearchDistrictDominatesRating(t *testing.T) {
	store := catalog.NewStore([]models.CoworkingSpace{
		space("HighRated", "Mile End", 5.0),
		space("Plateau Spot", "Plateau", 3.5),
		space("AlsoHigh", "Downtown", 4.9),
		space("MidTown", "Downtown", 4.0),
		space("LowTown", "Griffintown", 3.0),
	})
	engine := NewEngine(store)

	res, err := engine.Search(models.SearchRequest{
		City:     "Montreal",
		District: "Plateau",
		Max:      2,
	})
	require.NoError(t, err)

	// Only the Plateau record survives the query filter; it leads regardless
	// of rating, and the shortfall of 1 is filled from the rest by rating.
	require.Len(t, res.Coworkings, 1)
	assert.Equal(t, "Plateau Spot", res.Coworkings[0].Name)
	require.Len(t, res.Fallback, 1)
	assert.Equal(t, "HighRated", res.Fallback[0].Name)
}

func TestSearchDistrictBonusOutranksEqualCandidate(t *testing.T) {
	// Two records hit the query "plateau" (one via district, one via its
	// name); the district match must rank strictly higher despite the
	// lower rating.
	store := catalog.NewStore([]models.CoworkingSpace{
		space("Plateau Coffee Works", "Mile End", 5.0),
		space("Quiet Corner", "Plateau", 3.0),
	})
	engine := NewEngine(store)

	res, err := engine.Search(models.SearchRequest{
		City:     "Montreal",
		District: "Plateau",
		Max:      5,
	})
	require.NoError(t, err)
	require.Len(t, res.Coworkings, 2)
	assert.Equal(t, "Quiet Corner", res.Coworkings[0].Name)
}

func TestSearchAmenityMatchingIsDiacriticInsensitive(t *testing.T) {
	store := catalog.NewStore([]models.CoworkingSpace{
		space("Garage", "", 4.0, "Parking 24/7"),
		space("Loft", "", 4.8, "Coffee bar"),
	})
	engine := NewEngine(store)

	res, err := engine.Search(models.SearchRequest{
		City:  "Montreal",
		Query: "parking",
		Max:   5,
	})
	require.NoError(t, err)
	require.Len(t, res.Coworkings, 1)
	assert.Equal(t, "Garage", res.Coworkings[0].Name)
	// Loft pads the shortfall through the fallback set instead.
	require.Len(t, res.Fallback, 1)
	assert.Equal(t, "Loft", res.Fallback[0].Name)
}

func TestSearchCapsAndDisjointness(t *testing.T) {
	var spaces []models.CoworkingSpace
	for _, s := range []struct {
		name   string
		rating float64
	}{
		{"A", 4.1}, {"B", 4.2}, {"C", 4.3}, {"D", 4.4},
		{"E", 4.5}, {"F", 4.6}, {"G", 4.7},
	} {
		spaces = append(spaces, space(s.name, "", s.rating))
	}
	store := catalog.NewStore(spaces)
	engine := NewEngine(store)

	for _, max := range []int{1, 3, 5, 10} {
		res, err := engine.Search(models.SearchRequest{City: "Montreal", Max: max})
		require.NoError(t, err)

		assert.LessOrEqual(t, len(res.Coworkings), max)
		assert.LessOrEqual(t, len(res.Fallback), max-len(res.Coworkings))

		seen := make(map[string]bool)
		for _, cw := range res.Coworkings {
			seen[cw.Name] = true
		}
		for _, cw := range res.Fallback {
			assert.False(t, seen[cw.Name], "record %q in both sets", cw.Name)
		}
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	store := catalog.NewStore([]models.CoworkingSpace{
		space("One", "Plateau", 4.2, "Coffee"),
		space("Two", "Mile End", 4.7, "Parking"),
		space("Three", "Plateau", 3.9),
	})
	engine := NewEngine(store)
	req := models.SearchRequest{City: "Montreal", District: "Plateau", Query: "coffee", Max: 2}

	first, err := engine.Search(req)
	require.NoError(t, err)
	second, err := engine.Search(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearchStableOrderOnTies(t *testing.T) {
	// Identical scores across the board: dataset order must win.
	store := catalog.NewStore([]models.CoworkingSpace{
		space("First", "", 4.0),
		space("Second", "", 4.0),
		space("Third", "", 4.0),
	})
	engine := NewEngine(store)

	res, err := engine.Search(models.SearchRequest{City: "Montreal", Max: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second", "Third"}, names(res.Coworkings))
}

func TestSearchDefaultsAndClamping(t *testing.T) {
	store := catalog.NewStore([]models.CoworkingSpace{space("Solo", "", 4.0)})
	engine := NewEngine(store)

	// City defaults to Montreal, max to 5.
	res, err := engine.Search(models.SearchRequest{})
	require.NoError(t, err)
	assert.Len(t, res.Coworkings, 1)

	// Max above the ceiling clamps to 10.
	req := models.SearchRequest{Max: 50}
	req.ApplyDefaults()
	assert.Equal(t, 10, req.Max)

	req = models.SearchRequest{Max: -3}
	req.ApplyDefaults()
	assert.Equal(t, 1, req.Max)
}

func TestSearchUnknownCityReturnsEmpty(t *testing.T) {
	store := catalog.NewStore([]models.CoworkingSpace{space("Here", "", 4.0)})
	engine := NewEngine(store)

	res, err := engine.Search(models.SearchRequest{City: "Toronto", Max: 5})
	require.NoError(t, err)
	assert.Empty(t, res.Coworkings)
	assert.Empty(t, res.Fallback)
}

func TestSearchCorruptRecordIsFatal(t *testing.T) {
	bad := space("Broken", "", 4.0)
	bad.Rating = 7.5 // out of range
	store := catalog.NewStore([]models.CoworkingSpace{bad})
	engine := NewEngine(store)

	_, err := engine.Search(models.SearchRequest{City: "Montreal", Max: 5})
	assert.Error(t, err)
}

package search

import (
	"fmt"
	"sort"
	"strings"

	"coworkly/catalog"
	"coworkly/models"
)

// Engine runs searches over the static catalog. It holds no mutable state,
// so a single instance serves concurrent requests without locking.
type Engine struct {
	store *catalog.Store
}

// NewEngine returns an engine bound to the given catalog.
func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Search filters the catalog by city, then by the combined district+query
// string, ranks the survivors by composite score, and pads scarce results
// with rating-ranked alternatives from the same city. The two result sets
// are disjoint by name. Equal scores keep dataset order (stable sort).
//
// A validation failure on a result record means the catalog itself is
// corrupt and aborts the whole call.
func (e *Engine) Search(req models.SearchRequest) (*models.SearchResult, error) {
	req.ApplyDefaults()

	// City containment check against the address line. This pool feeds both
	// the primary and the fallback sets.
	var base []models.CoworkingSpace
	for _, cw := range e.store.All() {
		if ContainsNormalized(cw.Address, req.City) {
			base = append(base, cw)
		}
	}

	// District and free-text query fold into one search string.
	var parts []string
	for _, p := range []string{req.District, req.Query} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	q := Normalize(strings.TrimSpace(strings.Join(parts, " ")))

	filtered := base
	if q != "" {
		filtered = nil
		for _, cw := range base {
			if Matches(cw, q) {
				filtered = append(filtered, cw)
			}
		}
	}

	d := Normalize(req.District)

	type scored struct {
		cw    models.CoworkingSpace
		score float64
	}
	ranked := make([]scored, 0, len(filtered))
	for _, cw := range filtered {
		ranked = append(ranked, scored{cw: cw, score: Score(cw, d, q)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	n := req.Max
	if len(ranked) < n {
		n = len(ranked)
	}
	coworkings := make([]models.CoworkingSpace, 0, n)
	for _, sc := range ranked[:n] {
		coworkings = append(coworkings, sc.cw)
	}

	// Fallback fires only when primary results are scarce; it is never
	// populated just because alternatives exist.
	fallback := []models.CoworkingSpace{}
	if shortfall := req.Max - len(coworkings); shortfall > 0 {
		taken := make(map[string]bool, len(coworkings))
		for _, cw := range coworkings {
			taken[cw.Name] = true
		}
		rest := make([]models.CoworkingSpace, 0, len(base))
		for _, cw := range base {
			if !taken[cw.Name] {
				rest = append(rest, cw)
			}
		}
		// Rating only; no district bonus or keyword hits here.
		sort.SliceStable(rest, func(i, j int) bool {
			return rest[i].Rating > rest[j].Rating
		})
		if len(rest) > shortfall {
			rest = rest[:shortfall]
		}
		fallback = rest
	}

	for _, set := range [][]models.CoworkingSpace{coworkings, fallback} {
		for _, cw := range set {
			if err := cw.Validate(); err != nil {
				return nil, fmt.Errorf("corrupt catalog record in search results: %w", err)
			}
		}
	}

	return &models.SearchResult{Coworkings: coworkings, Fallback: fallback}, nil
}

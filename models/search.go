package models

// Team size hints accepted by the search tool.
const (
	TeamSolo  = "solo"
	TeamSmall = "small"
	TeamLarge = "large"
)

// Bounds applied to SearchRequest.Max.
const (
	SearchMaxDefault = 5
	SearchMaxFloor   = 1
	SearchMaxCeiling = 10
)

// DefaultCity is assumed when a request does not name one.
const DefaultCity = "Montreal"

// SearchRequest is one search call into the engine. Transient.
type SearchRequest struct {
	City     string `json:"city"`
	District string `json:"district,omitempty"`
	Query    string `json:"query,omitempty"`
	Max      int    `json:"max"`
}

// ApplyDefaults fills the city and clamps Max into its allowed range.
func (r *SearchRequest) ApplyDefaults() {
	if r.City == "" {
		r.City = DefaultCity
	}
	if r.Max == 0 {
		r.Max = SearchMaxDefault
	}
	if r.Max < SearchMaxFloor {
		r.Max = SearchMaxFloor
	}
	if r.Max > SearchMaxCeiling {
		r.Max = SearchMaxCeiling
	}
}

// SearchResult carries the two ordered result sets. Coworkings holds the
// ranked primary matches; Fallback pads up to the requested count with
// rating-ranked alternatives when primary matches are scarce. The two sets
// are disjoint by name.
type SearchResult struct {
	Coworkings []CoworkingSpace `json:"coworkings"`
	Fallback   []CoworkingSpace `json:"fallback"`
}

// SearchToolArgs is the agent-facing superset of SearchRequest with the
// tool-layer post-filters.
type SearchToolArgs struct {
	City      string   `json:"city"`
	District  string   `json:"district,omitempty"`
	Query     string   `json:"query,omitempty"`
	Max       int      `json:"max,omitempty"`
	MaxPrice  int      `json:"maxPrice,omitempty"`
	TeamSize  string   `json:"teamSize,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// AppliedFilters reports which post-filters were actually applied, so the
// caller can render an "applied filters" summary.
type AppliedFilters struct {
	MaxPrice  int      `json:"maxPrice,omitempty"`
	TeamSize  string   `json:"teamSize,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// SearchToolResult is the uniform payload returned to the agent layer.
type SearchToolResult struct {
	Success        bool             `json:"success"`
	Coworkings     []CoworkingSpace `json:"coworkings"`
	Fallback       []CoworkingSpace `json:"fallback"`
	Total          int              `json:"total"`
	AppliedFilters *AppliedFilters  `json:"appliedFilters,omitempty"`
	Error          string           `json:"error,omitempty"`
}

// Package catalog holds the static coworking-space dataset. The dataset is
// embedded in the binary, validated once at startup, and read-only for the
// lifetime of the process, so any number of searches may read it
// concurrently without locking.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"coworkly/models"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed coworkings.montreal.json
var montrealDataset []byte

//go:embed coworking.schema.json
var recordSchema []byte

// Store is the immutable in-memory coworking catalog.
type Store struct {
	spaces []models.CoworkingSpace
}

// Load parses the embedded dataset and validates every record against the
// catalog schema. Schema violations are rejected here, never coerced.
func Load() (*Store, error) {
	return loadFrom(montrealDataset)
}

func loadFrom(raw []byte) (*Store, error) {
	var rawRecords []json.RawMessage
	if err := json.Unmarshal(raw, &rawRecords); err != nil {
		return nil, fmt.Errorf("failed to parse catalog dataset: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(recordSchema)

	spaces := make([]models.CoworkingSpace, 0, len(rawRecords))
	for i, rec := range rawRecords {
		result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(rec))
		if err != nil {
			return nil, fmt.Errorf("failed to validate catalog record %d: %w", i, err)
		}
		if !result.Valid() {
			return nil, fmt.Errorf("catalog record %d violates schema: %v", i, result.Errors())
		}

		var cw models.CoworkingSpace
		if err := json.Unmarshal(rec, &cw); err != nil {
			return nil, fmt.Errorf("failed to decode catalog record %d: %w", i, err)
		}
		if err := cw.Validate(); err != nil {
			return nil, fmt.Errorf("catalog record %d: %w", i, err)
		}
		spaces = append(spaces, cw)
	}

	return &Store{spaces: spaces}, nil
}

// NewStore wraps an already-validated slice of records. Intended for tests
// and for callers that source records elsewhere; Load is the production path.
func NewStore(spaces []models.CoworkingSpace) *Store {
	return &Store{spaces: spaces}
}

// All returns the full catalog in dataset order. The returned slice is the
// store's own backing array; callers must copy before reordering it.
func (s *Store) All() []models.CoworkingSpace {
	return s.spaces
}

// Len returns the number of records in the catalog.
func (s *Store) Len() int {
	return len(s.spaces)
}

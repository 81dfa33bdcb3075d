package models

import (
	"fmt"
	"net/url"
)

// CoworkingSpace is a single record from the static catalog. Records are
// loaded once at startup and never mutated afterwards.
type CoworkingSpace struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	District  string   `json:"district,omitempty"`
	Wifi      string   `json:"wifi"`
	Price     string   `json:"price"`
	DayPass   float64  `json:"dayPass,omitempty"`
	Monthly   float64  `json:"monthly,omitempty"`
	Amenities []string `json:"amenities"`
	Rating    float64  `json:"rating"`
	Image     string   `json:"image"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
}

// Validate enforces the record invariants. A failure here means the static
// catalog itself is corrupt; callers must treat it as fatal, not skip the
// record.
func (cw CoworkingSpace) Validate() error {
	if cw.Name == "" {
		return fmt.Errorf("coworking record has no name")
	}
	if cw.Address == "" {
		return fmt.Errorf("coworking %q has no address", cw.Name)
	}
	if cw.Wifi == "" {
		return fmt.Errorf("coworking %q has no wifi description", cw.Name)
	}
	if cw.Price == "" {
		return fmt.Errorf("coworking %q has no price", cw.Name)
	}
	if cw.Amenities == nil {
		return fmt.Errorf("coworking %q has no amenities list", cw.Name)
	}
	if cw.Rating < 0 || cw.Rating > 5 {
		return fmt.Errorf("coworking %q rating %v out of range [0,5]", cw.Name, cw.Rating)
	}
	if u, err := url.Parse(cw.Image); err != nil || !u.IsAbs() {
		return fmt.Errorf("coworking %q image %q is not a valid URL", cw.Name, cw.Image)
	}
	return nil
}

package regions

import (
	"strconv"
)

// Region is a statically known administrative area (a Nigerian state or the
// FCT). Regions are loaded once and never mutated.
type Region struct {
	Name      string   `yaml:"name" json:"name"`
	Capital   string   `yaml:"capital" json:"capital"`
	Group     string   `yaml:"region" json:"region"`
	Latitude  float64  `yaml:"latitude" json:"latitude"`
	Longitude float64  `yaml:"longitude" json:"longitude"`
	Popular   bool     `yaml:"popular" json:"popular"`
	Aliases   []string `yaml:"aliases" json:"aliases,omitempty"`
}

// Coordinates returns the "lat,lon" pair sent to the weather provider.
func (r Region) Coordinates() string {
	return strconv.FormatFloat(r.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(r.Longitude, 'f', -1, 64)
}

// LocationQuery is the resolved input for one weather lookup: either the
// caller's free text or the coordinate pair of a matched Region.
type LocationQuery struct {
	Text   string
	Region *Region
}

// IsCoordinate reports whether Text came from a matched Region.
func (q LocationQuery) IsCoordinate() bool {
	return q.Region != nil
}

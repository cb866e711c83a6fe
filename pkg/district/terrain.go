package district

import (
	"math"

	"github.com/urbanclimate/uwgo/pkg/errors"
	"github.com/urbanclimate/uwgo/pkg/simulation"
)

// Terrain is the ground plane of the urban area. Its area sets the
// characteristic length of the district: the side of a square that would
// encompass the neighborhood.
type Terrain struct {
	// Area is the horizontal extent of the terrain in square meters.
	Area float64 `json:"area" yaml:"area"`
	// Pavement describes the ground material between buildings.
	Pavement simulation.PavementParameter `json:"pavement" yaml:"pavement"`
}

// NewTerrain builds a terrain of the given horizontal area with default
// asphalt pavement.
func NewTerrain(area float64) (*Terrain, error) {
	if area <= 0 {
		return nil, errors.NewValidationError("area", area, "must be positive")
	}
	return &Terrain{Area: area, Pavement: simulation.DefaultPavement()}, nil
}

// CharacteristicLength returns the linear dimension in meters of the side
// of a square with the terrain's area.
func (t *Terrain) CharacteristicLength() float64 {
	return math.Sqrt(t.Area)
}

// Validate checks the area and the pavement makeup.
func (t *Terrain) Validate() error {
	if t.Area <= 0 {
		return errors.NewValidationError("area", t.Area, "must be positive")
	}
	return t.Pavement.Validate()
}

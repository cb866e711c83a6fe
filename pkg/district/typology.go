// Package district models the urban fabric that the Urban Weather
// Generator morphs weather for: building typologies grouped by DOE
// program and construction era, the district that aggregates them, and
// the terrain they sit on.
package district

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/urbanclimate/uwgo/pkg/bldgtypes"
	"github.com/urbanclimate/uwgo/pkg/errors"
)

// DefaultFloorToFloor is the assumed distance between floors in meters
// when a typology does not specify one.
const DefaultFloorToFloor = 3.05

// Typology is a group of buildings sharing a DOE program and construction
// era, described by bulk geometry rather than individual building
// footprints.
//
// SHGC left at zero is resolved from the construction era and the climate
// zone of the district that hosts the typology.
type Typology struct {
	Program       bldgtypes.Program `json:"program" yaml:"program"`
	Era           bldgtypes.Era     `json:"era" yaml:"era"`
	AverageHeight float64           `json:"average_height" yaml:"average_height"`
	FootprintArea float64           `json:"footprint_area" yaml:"footprint_area"`
	FacadeArea    float64           `json:"facade_area" yaml:"facade_area"`
	FloorToFloor  float64           `json:"floor_to_floor" yaml:"floor_to_floor"`
	FloorArea     float64           `json:"floor_area" yaml:"floor_area"`
	GlazingRatio  float64           `json:"glazing_ratio" yaml:"glazing_ratio"`

	HeatToCanyon    float64 `json:"fract_heat_to_canyon" yaml:"fract_heat_to_canyon"`
	SHGC            float64 `json:"shgc,omitempty" yaml:"shgc,omitempty"`
	WallAlbedo      float64 `json:"wall_albedo" yaml:"wall_albedo"`
	RoofAlbedo      float64 `json:"roof_albedo" yaml:"roof_albedo"`
	RoofVegFraction float64 `json:"roof_veg_fraction" yaml:"roof_veg_fraction"`
}

// NewTypology builds a typology from its bulk geometry, filling every
// construction property with the DOE reference default for the program
// and era.
func NewTypology(program, era string, averageHeight, footprintArea,
	facadeArea float64) (*Typology, error) {
	prog, err := bldgtypes.CheckProgram(program)
	if err != nil {
		return nil, err
	}
	bldgEra, err := bldgtypes.CheckEra(era)
	if err != nil {
		return nil, err
	}
	if averageHeight <= 0 {
		return nil, errors.NewValidationError(
			"average_height", averageHeight, "must be positive")
	}
	if footprintArea <= 0 {
		return nil, errors.NewValidationError(
			"footprint_area", footprintArea, "must be positive")
	}
	if facadeArea <= 0 {
		return nil, errors.NewValidationError(
			"facade_area", facadeArea, "must be positive")
	}

	glz, err := bldgtypes.DefaultGlazingRatio(prog)
	if err != nil {
		return nil, err
	}
	wallAlb, err := bldgtypes.DefaultWallAlbedo(prog)
	if err != nil {
		return nil, err
	}
	roofAlb, err := bldgtypes.DefaultRoofAlbedo(bldgEra)
	if err != nil {
		return nil, err
	}

	t := &Typology{
		Program:       prog,
		Era:           bldgEra,
		AverageHeight: averageHeight,
		FootprintArea: footprintArea,
		FacadeArea:    facadeArea,
		FloorToFloor:  DefaultFloorToFloor,
		GlazingRatio:  glz,
		HeatToCanyon:  0.5,
		WallAlbedo:    wallAlb,
		RoofAlbedo:    roofAlb,
	}
	t.FloorArea = footprintArea * float64(t.Stories())
	return t, nil
}

// Stories returns the average number of stories implied by the height and
// floor-to-floor distance.
func (t *Typology) Stories() int {
	stories := int(math.Round(t.AverageHeight / t.FloorToFloor))
	if stories < 1 {
		return 1
	}
	return stories
}

// Key returns the "Program,Era" string that identifies this typology
// within a district.
func (t *Typology) Key() string {
	return fmt.Sprintf("%s,%s", t.Program, t.Era)
}

// GlassArea returns the glazed portion of the facade area.
func (t *Typology) GlassArea() float64 {
	return t.FacadeArea * t.GlazingRatio
}

// Validate checks the geometry and the fractional construction properties.
func (t *Typology) Validate() error {
	if _, err := bldgtypes.ProgramIndex(t.Program); err != nil {
		return err
	}
	if _, err := bldgtypes.EraIndex(t.Era); err != nil {
		return err
	}
	if t.AverageHeight <= 0 {
		return errors.NewValidationError(
			"average_height", t.AverageHeight, "must be positive")
	}
	if t.FootprintArea <= 0 {
		return errors.NewValidationError(
			"footprint_area", t.FootprintArea, "must be positive")
	}
	if t.FacadeArea <= 0 {
		return errors.NewValidationError(
			"facade_area", t.FacadeArea, "must be positive")
	}
	if t.FloorToFloor <= 0 {
		return errors.NewValidationError(
			"floor_to_floor", t.FloorToFloor, "must be positive")
	}
	if t.FloorArea < t.FootprintArea {
		return errors.NewValidationError(
			"floor_area", t.FloorArea, "must not be smaller than the footprint area")
	}
	for name, v := range map[string]float64{
		"glazing_ratio":        t.GlazingRatio,
		"fract_heat_to_canyon": t.HeatToCanyon,
		"shgc":                 t.SHGC,
		"wall_albedo":          t.WallAlbedo,
		"roof_albedo":          t.RoofAlbedo,
		"roof_veg_fraction":    t.RoofVegFraction,
	} {
		if v < 0 || v > 1 {
			return errors.NewValidationError(name, v, "must be between 0 and 1")
		}
	}
	return nil
}

// resolveSHGC returns the SHGC, falling back to the DOE reference default
// for the era in the given climate zone when unset.
func (t *Typology) resolveSHGC(zone bldgtypes.Zone) (float64, error) {
	if t.SHGC != 0 {
		return t.SHGC, nil
	}
	return bldgtypes.DefaultSHGC(t.Era, zone)
}

// Merge combines two typologies of the same program and era. Areas are
// totalled; heights, floor distances, and construction properties are
// averaged weighted by the area they apply to.
func Merge(a, b *Typology) (*Typology, error) {
	if a.Program != b.Program || a.Era != b.Era {
		return nil, errors.NewValidationError(
			"typology", b.Key(),
			fmt.Sprintf("cannot merge with %s: program and era must match", a.Key()))
	}

	footprint := a.FootprintArea + b.FootprintArea
	facade := a.FacadeArea + b.FacadeArea
	floor := a.FloorArea + b.FloorArea
	glassA, glassB := a.GlassArea(), b.GlassArea()

	merged := &Typology{
		Program:       a.Program,
		Era:           a.Era,
		FootprintArea: footprint,
		FacadeArea:    facade,
		FloorArea:     floor,
		AverageHeight: (a.AverageHeight*a.FootprintArea +
			b.AverageHeight*b.FootprintArea) / footprint,
		FloorToFloor: (a.FloorToFloor*a.FloorArea +
			b.FloorToFloor*b.FloorArea) / floor,
		GlazingRatio: (a.GlazingRatio*a.FacadeArea +
			b.GlazingRatio*b.FacadeArea) / facade,
		HeatToCanyon: (a.HeatToCanyon*a.FloorArea +
			b.HeatToCanyon*b.FloorArea) / floor,
		WallAlbedo: (a.WallAlbedo*a.FacadeArea +
			b.WallAlbedo*b.FacadeArea) / facade,
		RoofAlbedo: (a.RoofAlbedo*a.FootprintArea +
			b.RoofAlbedo*b.FootprintArea) / footprint,
		RoofVegFraction: (a.RoofVegFraction*a.FootprintArea +
			b.RoofVegFraction*b.FootprintArea) / footprint,
	}
	if a.SHGC != 0 && b.SHGC != 0 && glassA+glassB > 0 {
		merged.SHGC = (a.SHGC*glassA + b.SHGC*glassB) / (glassA + glassB)
	}
	return merged, nil
}

// UnmarshalJSON fills unset optional fields with the DOE reference
// defaults for the typology's program and era.
func (t *Typology) UnmarshalJSON(data []byte) error {
	type alias Typology
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	prog, err := bldgtypes.CheckProgram(string(raw.Program))
	if err != nil {
		return err
	}
	raw.Program = prog
	era, err := bldgtypes.CheckEra(string(raw.Era))
	if err != nil {
		return err
	}
	raw.Era = era

	if raw.FloorToFloor == 0 {
		raw.FloorToFloor = DefaultFloorToFloor
	}
	if raw.GlazingRatio == 0 {
		if raw.GlazingRatio, err = bldgtypes.DefaultGlazingRatio(prog); err != nil {
			return err
		}
	}
	if raw.HeatToCanyon == 0 {
		raw.HeatToCanyon = 0.5
	}
	if raw.WallAlbedo == 0 {
		if raw.WallAlbedo, err = bldgtypes.DefaultWallAlbedo(prog); err != nil {
			return err
		}
	}
	if raw.RoofAlbedo == 0 {
		if raw.RoofAlbedo, err = bldgtypes.DefaultRoofAlbedo(era); err != nil {
			return err
		}
	}
	*t = Typology(raw)
	if t.FloorArea == 0 && t.FootprintArea > 0 && t.AverageHeight > 0 {
		t.FloorArea = t.FootprintArea * float64(t.Stories())
	}
	return nil
}

// String summarizes the typology.
func (t *Typology) String() string {
	return fmt.Sprintf("Typology: %s [%.0f m2 over %d stories]",
		t.Key(), t.FloorArea, t.Stories())
}

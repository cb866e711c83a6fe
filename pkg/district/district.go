package district

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/urbanclimate/uwgo/pkg/bldgtypes"
	"github.com/urbanclimate/uwgo/pkg/errors"
	"github.com/urbanclimate/uwgo/pkg/simulation"
)

// DefaultCharacteristicLength is the linear dimension in meters assumed
// for a district built from bulk geometry ratios. 500 m was found to be
// representative of a typical mid-density urban area (Street 2013).
const DefaultCharacteristicLength = 500.0

// ratioTolerance is how far the sum of building type ratios may drift
// from 1 before the district is rejected.
const ratioTolerance = 1e-3

// District is an urban area: its building typologies, ground cover, and
// traffic. Typologies sharing a program and era are merged on
// construction, so every element of Typologies has a unique Key.
type District struct {
	Typologies  []*Typology    `json:"building_typologies" yaml:"building_typologies"`
	SiteArea    float64        `json:"site_area" yaml:"site_area"`
	ClimateZone bldgtypes.Zone `json:"climate_zone" yaml:"climate_zone"`

	// TreeCoverage and GrassCoverage are fractions of the urban area,
	// including both pavement and roofs, covered by trees and grass.
	TreeCoverage  float64 `json:"tree_coverage_ratio" yaml:"tree_coverage_ratio"`
	GrassCoverage float64 `json:"grass_coverage_ratio" yaml:"grass_coverage_ratio"`

	Traffic  simulation.TrafficParameter  `json:"traffic_parameters" yaml:"traffic_parameters"`
	Pavement simulation.PavementParameter `json:"pavement_parameters" yaml:"pavement_parameters"`

	// CharacteristicLength is the side in meters of a square encompassing
	// the neighborhood. Zero means the square root of the site area.
	CharacteristicLength float64 `json:"characteristic_length,omitempty" yaml:"characteristic_length,omitempty"`
}

// New builds a district from typologies and a site area, merging
// typologies that share a program and era.
func New(typologies []*Typology, siteArea float64, climateZone string) (*District, error) {
	if len(typologies) == 0 {
		return nil, errors.NewValidationError(
			"building_typologies", len(typologies), "district needs at least one typology")
	}
	if siteArea <= 0 {
		return nil, errors.NewValidationError("site_area", siteArea, "must be positive")
	}
	zone, err := bldgtypes.CheckZone(climateZone)
	if err != nil {
		return nil, err
	}

	merged, err := mergeByKey(typologies)
	if err != nil {
		return nil, err
	}

	d := &District{
		Typologies:           merged,
		SiteArea:             siteArea,
		ClimateZone:          zone,
		Traffic:              simulation.DefaultTraffic(),
		Pavement:             simulation.DefaultPavement(),
		CharacteristicLength: math.Sqrt(siteArea),
	}
	return d, d.Validate()
}

// FromTerrain builds a district whose site geometry and pavement come from
// a terrain.
func FromTerrain(typologies []*Typology, terrain *Terrain, climateZone string) (*District, error) {
	if terrain == nil {
		return nil, errors.NewValidationError("terrain", nil, "terrain is required")
	}
	if err := terrain.Validate(); err != nil {
		return nil, err
	}
	d, err := New(typologies, terrain.Area, climateZone)
	if err != nil {
		return nil, err
	}
	d.Pavement = terrain.Pavement
	d.CharacteristicLength = terrain.CharacteristicLength()
	return d, nil
}

// FromGeoParams builds a district from bulk urban geometry parameters
// rather than explicit typologies.
//
// ratios maps "Program,Era" keys to the fraction of the district's floor
// area each typology occupies; the fractions must sum to 1. The site area
// is the square of the characteristic length; pass zero to assume a
// typical mid-density neighborhood of 500 m.
func FromGeoParams(averageHeight, siteCoverage, facadeToSite float64,
	ratios map[string]float64, climateZone string,
	characteristicLength float64) (*District, error) {
	if averageHeight <= 0 {
		return nil, errors.NewValidationError(
			"average_height", averageHeight, "must be positive")
	}
	if siteCoverage <= 0 || siteCoverage > 1 {
		return nil, errors.NewValidationError(
			"site_coverage_ratio", siteCoverage, "must be between 0 and 1")
	}
	if facadeToSite <= 0 {
		return nil, errors.NewValidationError(
			"facade_to_site_ratio", facadeToSite, "must be positive")
	}
	if characteristicLength == 0 {
		characteristicLength = DefaultCharacteristicLength
	} else if characteristicLength < 0 {
		return nil, errors.NewValidationError(
			"characteristic_length", characteristicLength, "must be positive")
	}

	total := 0.0
	for _, fract := range ratios {
		total += fract
	}
	if math.Abs(total-1) > ratioTolerance {
		return nil, errors.NewValidationError(
			"bldg_type_ratios", total, "building type ratios must sum to 1")
	}

	// deterministic typology order regardless of map iteration
	keys := make([]string, 0, len(ratios))
	for key := range ratios {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	siteArea := characteristicLength * characteristicLength
	typologies := make([]*Typology, 0, len(keys))
	for _, key := range keys {
		program, era, err := splitTypeKey(key)
		if err != nil {
			return nil, err
		}
		fract := ratios[key]
		typ, err := NewTypology(program, era, averageHeight,
			siteArea*siteCoverage*fract, siteArea*facadeToSite*fract)
		if err != nil {
			return nil, err
		}
		typologies = append(typologies, typ)
	}

	d, err := New(typologies, siteArea, climateZone)
	if err != nil {
		return nil, err
	}
	d.CharacteristicLength = characteristicLength
	return d, nil
}

func splitTypeKey(key string) (program, era string, err error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 {
		return "", "", errors.NewValidationError(
			"bldg_type_ratios", key, `key must be in the format "Program,Era"`)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

func mergeByKey(typologies []*Typology) ([]*Typology, error) {
	index := make(map[string]int)
	var merged []*Typology
	for _, typ := range typologies {
		if err := typ.Validate(); err != nil {
			return nil, err
		}
		key := typ.Key()
		if i, ok := index[key]; ok {
			combined, err := Merge(merged[i], typ)
			if err != nil {
				return nil, err
			}
			merged[i] = combined
		} else {
			index[key] = len(merged)
			copied := *typ
			merged = append(merged, &copied)
		}
	}
	return merged, nil
}

// Validate checks the district's geometry, coverage fractions, parameter
// groups, and every typology.
func (d *District) Validate() error {
	if len(d.Typologies) == 0 {
		return errors.NewValidationError(
			"building_typologies", 0, "district needs at least one typology")
	}
	if d.SiteArea <= 0 {
		return errors.NewValidationError("site_area", d.SiteArea, "must be positive")
	}
	if _, err := bldgtypes.ZoneIndex(d.ClimateZone); err != nil {
		return err
	}
	if d.TreeCoverage < 0 || d.TreeCoverage > 1 {
		return errors.NewValidationError(
			"tree_coverage_ratio", d.TreeCoverage, "must be between 0 and 1")
	}
	if d.GrassCoverage < 0 || d.GrassCoverage > 1 {
		return errors.NewValidationError(
			"grass_coverage_ratio", d.GrassCoverage, "must be between 0 and 1")
	}
	if d.CharacteristicLength < 0 {
		return errors.NewValidationError(
			"characteristic_length", d.CharacteristicLength, "must be positive")
	}
	seen := make(map[string]bool, len(d.Typologies))
	for _, typ := range d.Typologies {
		if err := typ.Validate(); err != nil {
			return err
		}
		if seen[typ.Key()] {
			return errors.NewValidationError(
				"building_typologies", typ.Key(), "duplicate typology key")
		}
		seen[typ.Key()] = true
	}
	if err := d.Traffic.Validate(); err != nil {
		return err
	}
	return d.Pavement.Validate()
}

// AverageHeight returns the average building height in meters, weighted
// by footprint area.
func (d *District) AverageHeight() float64 {
	var weighted, footprint float64
	for _, typ := range d.Typologies {
		weighted += typ.AverageHeight * typ.FootprintArea
		footprint += typ.FootprintArea
	}
	return weighted / footprint
}

// SiteCoverageRatio returns the fraction of the terrain occupied by
// building footprints.
func (d *District) SiteCoverageRatio() float64 {
	var footprint float64
	for _, typ := range d.Typologies {
		footprint += typ.FootprintArea
	}
	return footprint / d.SiteArea
}

// FacadeToSiteRatio returns the ratio of vertical wall area to terrain
// area. May exceed 1 for dense districts.
func (d *District) FacadeToSiteRatio() float64 {
	var facade float64
	for _, typ := range d.Typologies {
		facade += typ.FacadeArea
	}
	return facade / d.SiteArea
}

// FloorHeight returns the average floor-to-floor distance in meters,
// weighted by floor area.
func (d *District) FloorHeight() float64 {
	var weighted, floor float64
	for _, typ := range d.Typologies {
		weighted += typ.FloorToFloor * typ.FloorArea
		floor += typ.FloorArea
	}
	return weighted / floor
}

// GlazingRatio returns the average window-to-wall ratio, weighted by
// facade area.
func (d *District) GlazingRatio() float64 {
	var weighted, facade float64
	for _, typ := range d.Typologies {
		weighted += typ.GlazingRatio * typ.FacadeArea
		facade += typ.FacadeArea
	}
	return weighted / facade
}

// HeatToCanyon returns the average fraction of building heat rejected to
// the urban canyon, weighted by floor area.
func (d *District) HeatToCanyon() float64 {
	var weighted, floor float64
	for _, typ := range d.Typologies {
		weighted += typ.HeatToCanyon * typ.FloorArea
		floor += typ.FloorArea
	}
	return weighted / floor
}

// SHGC returns the average window solar heat gain coefficient, weighted
// by glass area. Typologies without an explicit SHGC fall back to the DOE
// reference default for their era in the district's climate zone.
func (d *District) SHGC() (float64, error) {
	return d.SHGCInZone(d.ClimateZone)
}

// SHGCInZone is like SHGC but resolves typology defaults against the
// given climate zone instead of the district's own.
func (d *District) SHGCInZone(zone bldgtypes.Zone) (float64, error) {
	var weighted, glass float64
	for _, typ := range d.Typologies {
		shgc, err := typ.resolveSHGC(zone)
		if err != nil {
			return 0, err
		}
		area := typ.GlassArea()
		weighted += shgc * area
		glass += area
	}
	if glass == 0 {
		return 0, errors.NewValidationError(
			"glazing_ratio", 0, "district has no glazed area")
	}
	return weighted / glass, nil
}

// WallAlbedo returns the average wall albedo, weighted by facade area.
func (d *District) WallAlbedo() float64 {
	var weighted, facade float64
	for _, typ := range d.Typologies {
		weighted += typ.WallAlbedo * typ.FacadeArea
		facade += typ.FacadeArea
	}
	return weighted / facade
}

// RoofAlbedo returns the average roof albedo, weighted by footprint area.
func (d *District) RoofAlbedo() float64 {
	var weighted, footprint float64
	for _, typ := range d.Typologies {
		weighted += typ.RoofAlbedo * typ.FootprintArea
		footprint += typ.FootprintArea
	}
	return weighted / footprint
}

// RoofVegFraction returns the average vegetated roof fraction, weighted
// by footprint area.
func (d *District) RoofVegFraction() float64 {
	var weighted, footprint float64
	for _, typ := range d.Typologies {
		weighted += typ.RoofVegFraction * typ.FootprintArea
		footprint += typ.FootprintArea
	}
	return weighted / footprint
}

// ResolvedCharacteristicLength returns the characteristic length, falling
// back to the square root of the site area.
func (d *District) ResolvedCharacteristicLength() float64 {
	if d.CharacteristicLength > 0 {
		return d.CharacteristicLength
	}
	return math.Sqrt(d.SiteArea)
}

// TrafficWatts returns the peak traffic heat flux, estimating it from the
// average building height when left to autocalculate.
func (d *District) TrafficWatts() float64 {
	return d.Traffic.ResolveWattsPerArea(d.AverageHeight())
}

// TypeRatios maps "Program,Era" keys to the fraction of the district's
// floor area each typology occupies.
func (d *District) TypeRatios() map[string]float64 {
	var total float64
	for _, typ := range d.Typologies {
		total += typ.FloorArea
	}
	ratios := make(map[string]float64, len(d.Typologies))
	for _, typ := range d.Typologies {
		ratios[typ.Key()] = typ.FloorArea / total
	}
	return ratios
}

// BuildingMatrix returns the 16 x 3 matrix of floor area fractions by
// program and era that the UWG engine consumes. Fractions are rounded to
// three decimal places.
func (d *District) BuildingMatrix() ([16][3]float64, error) {
	var matrix [16][3]float64
	for key, fract := range d.TypeRatios() {
		program, era, err := splitTypeKey(key)
		if err != nil {
			return matrix, err
		}
		prog, err := bldgtypes.CheckProgram(program)
		if err != nil {
			return matrix, err
		}
		bldgEra, err := bldgtypes.CheckEra(era)
		if err != nil {
			return matrix, err
		}
		row, err := bldgtypes.ProgramIndex(prog)
		if err != nil {
			return matrix, err
		}
		col, err := bldgtypes.EraIndex(bldgEra)
		if err != nil {
			return matrix, err
		}
		matrix[row][col] = math.Round(fract*1000) / 1000
	}
	return matrix, nil
}

// UnmarshalJSON fills absent parameter groups with their defaults and
// normalizes the climate zone.
func (d *District) UnmarshalJSON(data []byte) error {
	type alias District
	raw := alias{
		Traffic:  simulation.DefaultTraffic(),
		Pavement: simulation.DefaultPavement(),
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	zone, err := bldgtypes.CheckZone(string(raw.ClimateZone))
	if err != nil {
		return err
	}
	raw.ClimateZone = zone
	*d = District(raw)
	return nil
}

// String summarizes the district.
func (d *District) String() string {
	return fmt.Sprintf(
		"District: %d typologies [height: %.0f m] [coverage: %.2f] [zone: %s]",
		len(d.Typologies), d.AverageHeight(), d.SiteCoverageRatio(), d.ClimateZone)
}

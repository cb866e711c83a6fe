package district

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanclimate/uwgo/pkg/bldgtypes"
)

func mustTypology(t *testing.T, program, era string,
	height, footprint, facade float64) *Typology {
	t.Helper()
	typ, err := NewTypology(program, era, height, footprint, facade)
	require.NoError(t, err)
	return typ
}

func testDistrict(t *testing.T) *District {
	t.Helper()
	office := mustTypology(t, "LargeOffice", "NewConstruction", 30.5, 2000, 8000)
	apartment := mustTypology(t, "MidRiseApartment", "1980sPresent", 12.2, 3000, 9000)
	d, err := New([]*Typology{office, apartment}, 10000, "5A")
	require.NoError(t, err)
	return d
}

func TestNewTypologyDefaults(t *testing.T) {
	typ := mustTypology(t, "LargeOffice", "NewConstruction", 30.5, 2000, 8000)

	assert.Equal(t, bldgtypes.LargeOffice, typ.Program)
	assert.Equal(t, bldgtypes.NewConstruction, typ.Era)
	assert.Equal(t, 10, typ.Stories())
	assert.InDelta(t, 20000.0, typ.FloorArea, 1e-9)
	assert.InDelta(t, DefaultFloorToFloor, typ.FloorToFloor, 1e-9)
	assert.InDelta(t, 0.38, typ.GlazingRatio, 1e-9)
	assert.InDelta(t, 0.5, typ.HeatToCanyon, 1e-9)
	assert.InDelta(t, 0.08, typ.WallAlbedo, 1e-9)
	assert.InDelta(t, 0.7, typ.RoofAlbedo, 1e-9)
	assert.Zero(t, typ.RoofVegFraction)
	assert.Equal(t, "LargeOffice,NewConstruction", typ.Key())
}

func TestNewTypologyInvalid(t *testing.T) {
	_, err := NewTypology("SpaceStation", "NewConstruction", 30, 2000, 8000)
	assert.Error(t, err)
	_, err = NewTypology("LargeOffice", "Medieval", 30, 2000, 8000)
	assert.Error(t, err)
	_, err = NewTypology("LargeOffice", "NewConstruction", 0, 2000, 8000)
	assert.Error(t, err)
	_, err = NewTypology("LargeOffice", "NewConstruction", 30, -1, 8000)
	assert.Error(t, err)
}

func TestMergeTypologies(t *testing.T) {
	a := mustTypology(t, "LargeOffice", "NewConstruction", 30.5, 2000, 8000)
	b := mustTypology(t, "LargeOffice", "NewConstruction", 15.25, 1000, 3000)

	merged, err := Merge(a, b)
	require.NoError(t, err)

	assert.InDelta(t, 3000.0, merged.FootprintArea, 1e-9)
	assert.InDelta(t, 11000.0, merged.FacadeArea, 1e-9)
	assert.InDelta(t, a.FloorArea+b.FloorArea, merged.FloorArea, 1e-9)
	// height weighted by footprint
	wantHeight := (30.5*2000 + 15.25*1000) / 3000
	assert.InDelta(t, wantHeight, merged.AverageHeight, 1e-9)
	// same program keeps the program glazing ratio
	assert.InDelta(t, 0.38, merged.GlazingRatio, 1e-9)

	c := mustTypology(t, "Hospital", "NewConstruction", 30, 2000, 8000)
	_, err = Merge(a, c)
	assert.Error(t, err)
}

func TestNewDistrictMergesDuplicates(t *testing.T) {
	a := mustTypology(t, "LargeOffice", "NewConstruction", 30.5, 2000, 8000)
	b := mustTypology(t, "LargeOffice", "NewConstruction", 30.5, 1000, 4000)
	c := mustTypology(t, "Hospital", "Pre1980s", 15.25, 1500, 5000)

	d, err := New([]*Typology{a, b, c}, 10000, "4A")
	require.NoError(t, err)
	require.Len(t, d.Typologies, 2)
	assert.InDelta(t, 3000.0, d.Typologies[0].FootprintArea, 1e-9)
}

func TestDistrictAggregates(t *testing.T) {
	d := testDistrict(t)

	assert.InDelta(t, 19.52, d.AverageHeight(), 1e-9)
	assert.InDelta(t, 0.5, d.SiteCoverageRatio(), 1e-9)
	assert.InDelta(t, 1.7, d.FacadeToSiteRatio(), 1e-9)
	assert.InDelta(t, DefaultFloorToFloor, d.FloorHeight(), 1e-9)
	assert.InDelta(t, 100.0, d.ResolvedCharacteristicLength(), 1e-9)

	wantGlz := (0.38*8000 + 0.1499*9000) / 17000
	assert.InDelta(t, wantGlz, d.GlazingRatio(), 1e-9)

	wantWall := (0.08*8000 + 0.15*9000) / 17000
	assert.InDelta(t, wantWall, d.WallAlbedo(), 1e-9)

	wantRoof := (0.7*2000 + 0.2*3000) / 5000
	assert.InDelta(t, wantRoof, d.RoofAlbedo(), 1e-9)

	assert.InDelta(t, 0.5, d.HeatToCanyon(), 1e-9)
	assert.Zero(t, d.RoofVegFraction())

	// SHGC autocalculated per era in zone 5A, weighted by glass area
	glassOffice := 8000 * 0.38
	glassApt := 9000 * 0.1499
	wantSHGC := (0.385*glassOffice + 0.392*glassApt) / (glassOffice + glassApt)
	shgc, err := d.SHGC()
	require.NoError(t, err)
	assert.InDelta(t, wantSHGC, shgc, 1e-9)

	// 19.52 m average height falls in the mid-rise traffic band
	assert.InDelta(t, 8.0, d.TrafficWatts(), 1e-9)
}

func TestDistrictTypeRatios(t *testing.T) {
	d := testDistrict(t)

	ratios := d.TypeRatios()
	require.Len(t, ratios, 2)
	assert.InDelta(t, 0.625, ratios["LargeOffice,NewConstruction"], 1e-9)
	assert.InDelta(t, 0.375, ratios["MidRiseApartment,1980sPresent"], 1e-9)

	matrix, err := d.BuildingMatrix()
	require.NoError(t, err)
	assert.InDelta(t, 0.625, matrix[3][2], 1e-9)
	assert.InDelta(t, 0.375, matrix[5][1], 1e-9)

	var total float64
	for _, row := range matrix {
		for _, fract := range row {
			total += fract
		}
	}
	assert.InDelta(t, 1.0, total, 1e-3)
}

func TestFromGeoParams(t *testing.T) {
	ratios := map[string]float64{
		"LargeOffice,NewConstruction":   0.75,
		"MidRiseApartment,1980sPresent": 0.25,
	}
	d, err := FromGeoParams(35, 0.5, 1.2, ratios, "5A", 0)
	require.NoError(t, err)

	assert.InDelta(t, DefaultCharacteristicLength, d.CharacteristicLength, 1e-9)
	assert.InDelta(t, 250000.0, d.SiteArea, 1e-9)
	require.Len(t, d.Typologies, 2)
	assert.InDelta(t, 35.0, d.AverageHeight(), 1e-9)
	assert.InDelta(t, 0.5, d.SiteCoverageRatio(), 1e-9)
	assert.InDelta(t, 1.2, d.FacadeToSiteRatio(), 1e-9)

	// floor area ratios survive the round trip through typologies
	got := d.TypeRatios()
	assert.InDelta(t, 0.75, got["LargeOffice,NewConstruction"], 1e-9)
	assert.InDelta(t, 0.25, got["MidRiseApartment,1980sPresent"], 1e-9)
}

func TestFromGeoParamsInvalid(t *testing.T) {
	good := map[string]float64{"LargeOffice,NewConstruction": 1}

	_, err := FromGeoParams(0, 0.5, 1.2, good, "5A", 0)
	assert.Error(t, err)
	_, err = FromGeoParams(35, 1.5, 1.2, good, "5A", 0)
	assert.Error(t, err)
	_, err = FromGeoParams(35, 0.5, 1.2,
		map[string]float64{"LargeOffice,NewConstruction": 0.8}, "5A", 0)
	assert.Error(t, err, "ratios not summing to 1")
	_, err = FromGeoParams(35, 0.5, 1.2,
		map[string]float64{"LargeOffice": 1}, "5A", 0)
	assert.Error(t, err, "malformed key")
	_, err = FromGeoParams(35, 0.5, 1.2, good, "9X", 0)
	assert.Error(t, err)
}

func TestDistrictValidate(t *testing.T) {
	d := testDistrict(t)
	require.NoError(t, d.Validate())

	d.TreeCoverage = 1.5
	assert.Error(t, d.Validate())
	d.TreeCoverage = 0.2
	d.GrassCoverage = -0.1
	assert.Error(t, d.Validate())
	d.GrassCoverage = 0.3
	require.NoError(t, d.Validate())
}

func TestTypologyJSONDefaults(t *testing.T) {
	raw := []byte(`{
		"program": "large office",
		"era": "New Construction",
		"average_height": 30.5,
		"footprint_area": 2000,
		"facade_area": 8000
	}`)
	var typ Typology
	require.NoError(t, json.Unmarshal(raw, &typ))

	assert.Equal(t, bldgtypes.LargeOffice, typ.Program)
	assert.Equal(t, bldgtypes.NewConstruction, typ.Era)
	assert.InDelta(t, DefaultFloorToFloor, typ.FloorToFloor, 1e-9)
	assert.InDelta(t, 0.38, typ.GlazingRatio, 1e-9)
	assert.InDelta(t, 0.5, typ.HeatToCanyon, 1e-9)
	assert.InDelta(t, 20000.0, typ.FloorArea, 1e-9)
}

func TestDistrictJSONRoundTrip(t *testing.T) {
	d := testDistrict(t)
	d.TreeCoverage = 0.15
	d.GrassCoverage = 0.25

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var got District
	require.NoError(t, json.Unmarshal(raw, &got))
	require.NoError(t, got.Validate())

	assert.Equal(t, d.ClimateZone, got.ClimateZone)
	assert.InDelta(t, d.SiteArea, got.SiteArea, 1e-9)
	assert.InDelta(t, d.TreeCoverage, got.TreeCoverage, 1e-9)
	require.Len(t, got.Typologies, len(d.Typologies))
	assert.InDelta(t, d.AverageHeight(), got.AverageHeight(), 1e-9)
}

func TestDistrictJSONDefaults(t *testing.T) {
	raw := []byte(`{
		"building_typologies": [{
			"program": "LargeOffice",
			"era": "NewConstruction",
			"average_height": 30.5,
			"footprint_area": 2000,
			"facade_area": 8000
		}],
		"site_area": 10000,
		"climate_zone": "5a"
	}`)
	var d District
	require.NoError(t, json.Unmarshal(raw, &d))
	require.NoError(t, d.Validate())

	assert.Equal(t, bldgtypes.Zone5A, d.ClimateZone)
	// absent parameter groups get their defaults
	assert.InDelta(t, 0.1, d.Pavement.Albedo, 1e-9)
	assert.InDelta(t, 0.9, d.Traffic.WeekdaySchedule[7], 1e-9)
	assert.InDelta(t, 100.0, d.ResolvedCharacteristicLength(), 1e-9)
}

func TestTerrain(t *testing.T) {
	terrain, err := NewTerrain(40000)
	require.NoError(t, err)
	require.NoError(t, terrain.Validate())
	assert.InDelta(t, 200.0, terrain.CharacteristicLength(), 1e-9)
	assert.InDelta(t, 0.1, terrain.Pavement.Albedo, 1e-9)

	_, err = NewTerrain(0)
	assert.Error(t, err)

	terrain.Area = math.Pi * 100 * 100
	assert.InDelta(t, 100*math.SqrtPi, terrain.CharacteristicLength(), 1e-9)
}

func TestFromTerrain(t *testing.T) {
	terrain, err := NewTerrain(40000)
	require.NoError(t, err)
	terrain.Pavement.Albedo = 0.3

	office := mustTypology(t, "LargeOffice", "NewConstruction", 30.5, 2000, 8000)
	d, err := FromTerrain([]*Typology{office}, terrain, "5A")
	require.NoError(t, err)

	assert.InDelta(t, 40000.0, d.SiteArea, 1e-9)
	assert.InDelta(t, 200.0, d.CharacteristicLength, 1e-9)
	assert.InDelta(t, 0.3, d.Pavement.Albedo, 1e-9)

	_, err = FromTerrain([]*Typology{office}, nil, "5A")
	assert.Error(t, err)

	terrain.Area = -1
	_, err = FromTerrain([]*Typology{office}, terrain, "5A")
	assert.Error(t, err)
}

func TestDistrictJSONRejectsBadScheduleLength(t *testing.T) {
	doc := `{
  "building_typologies": [
    {"program": "LargeOffice", "era": "NewConstruction",
     "average_height": 30.5, "footprint_area": 2000, "facade_area": 8000}
  ],
  "site_area": 10000,
  "climate_zone": "5A",
  "traffic_parameters": {"weekday_schedule": [0.5, 0.5, 0.5]}
}`
	var d District
	err := json.Unmarshal([]byte(doc), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 24 values")
}

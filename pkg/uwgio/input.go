// Package uwgio translates districts and simulation parameters into the
// input files the Urban Weather Generator engine consumes: the JSON input
// of the modern engine and the legacy .uwg text format.
package uwgio

import (
	"github.com/urbanclimate/uwgo/pkg/bldgtypes"
	"github.com/urbanclimate/uwgo/pkg/district"
	"github.com/urbanclimate/uwgo/pkg/epw"
	"github.com/urbanclimate/uwgo/pkg/errors"
	"github.com/urbanclimate/uwgo/pkg/simulation"
)

// Fixed engine settings that the district and parameter objects do not
// expose. Values follow the UWG defaults for commercial buildings.
const (
	weatherTimestep   = 3600
	sensibleOccupant  = 100
	latentFractOcc    = 0.3
	radiantFractOcc   = 0.2
	radiantFractEquip = 0.5
	radiantFractLight = 0.7
	maxDayThreshold   = 150
	maxNightThreshold = 20
	minWindSpeed      = 1
)

// vegetationThreshold is the monthly mean temperature in Celsius above
// which vegetation is assumed to evapotranspire.
const vegetationThreshold = 10.0

// Input is a complete, simulate-able UWG engine input. Field names follow
// the engine's JSON schema.
type Input struct {
	Type string `json:"type"`

	// urban geometry
	BldHeight  float64        `json:"bldheight"`
	BldDensity float64        `json:"blddensity"`
	VerToHor   float64        `json:"vertohor"`
	CharLength float64        `json:"charlength"`
	Bld        [16][3]float64 `json:"bld"`
	FloorHgt   float64        `json:"flr_h"`
	HMix       float64        `json:"h_mix"`

	// building envelope
	Glzr    float64 `json:"glzr"`
	SHGC    float64 `json:"shgc"`
	AlbWall float64 `json:"albwall"`
	AlbRoof float64 `json:"albroof"`
	VegRoof float64 `json:"vegroof"`

	// pavement
	AlbRoad float64 `json:"albroad"`
	DRoad   float64 `json:"droad"`
	KRoad   float64 `json:"kroad"`
	CRoad   float64 `json:"croad"`

	// traffic
	SensAnth   float64        `json:"sensanth"`
	SchTraffic [3][24]float64 `json:"schtraffic"`

	// site and vegetation
	Zone        bldgtypes.Zone `json:"zone"`
	GrassCover  float64        `json:"grasscover"`
	TreeCover   float64        `json:"treecover"`
	VegStart    int            `json:"vegstart"`
	VegEnd      int            `json:"vegend"`
	AlbVeg      float64        `json:"albveg"`
	LatGrss     float64        `json:"latgrss"`
	LatTree     float64        `json:"lattree"`
	RurVegCover float64        `json:"rurvegcover"`

	// run period
	Month int `json:"month"`
	Day   int `json:"day"`
	NDay  int `json:"nday"`
	DtSim int `json:"dtsim"`

	// boundary layer
	HUbl1 float64 `json:"h_ubl1"`
	HUbl2 float64 `json:"h_ubl2"`
	HRef  float64 `json:"h_ref"`
	HTemp float64 `json:"h_temp"`
	HWind float64 `json:"h_wind"`
	CCirc float64 `json:"c_circ"`
	CExch float64 `json:"c_exch"`
	HObs  float64 `json:"h_obs"`

	// engine settings not exposed on the parameter objects
	DtWeather int     `json:"dtweather"`
	Autosize  bool    `json:"autosize"`
	SensOcc   float64 `json:"sensocc"`
	LatFOcc   float64 `json:"latfocc"`
	RadFOcc   float64 `json:"radfocc"`
	RadFEquip float64 `json:"radfequip"`
	RadFLight float64 `json:"radflight"`
	MaxDay    float64 `json:"maxday"`
	MaxNight  float64 `json:"maxnight"`
	WindMin   float64 `json:"windmin"`
}

// Translate builds a complete engine input from a district, simulation
// parameters, and the rural weather file being morphed. The weather file
// fills every autocalculated field: the climate zone and the vegetation
// start and end months. It may be nil when the parameters specify all of
// those directly.
func Translate(d *district.District, par simulation.Parameter,
	weather *epw.Weather) (*Input, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := par.Validate(); err != nil {
		return nil, err
	}

	zone := par.ClimateZone
	vegStart, vegEnd := par.Vegetation.StartMonth, par.Vegetation.EndMonth
	if zone == "" || vegStart == simulation.Autocalculate ||
		vegEnd == simulation.Autocalculate {
		if weather == nil {
			return nil, errors.NewValidationError(
				"weather", nil,
				"a weather file is required to autocalculate the climate zone and vegetation months")
		}
		if zone == "" {
			zone = weather.ClimateZone()
		}
		start, end := weather.VegetationMonths(vegetationThreshold)
		if vegStart == simulation.Autocalculate {
			vegStart = start
		}
		if vegEnd == simulation.Autocalculate {
			vegEnd = end
		}
	}

	matrix, err := d.BuildingMatrix()
	if err != nil {
		return nil, err
	}
	shgc, err := d.SHGCInZone(zone)
	if err != nil {
		return nil, err
	}

	in := &Input{
		Type: "UWG",

		BldHeight:  d.AverageHeight(),
		BldDensity: d.SiteCoverageRatio(),
		VerToHor:   d.FacadeToSiteRatio(),
		CharLength: d.ResolvedCharacteristicLength(),
		Bld:        matrix,
		FloorHgt:   d.FloorHeight(),
		HMix:       d.HeatToCanyon(),

		Glzr:    d.GlazingRatio(),
		SHGC:    shgc,
		AlbWall: d.WallAlbedo(),
		AlbRoof: d.RoofAlbedo(),
		VegRoof: d.RoofVegFraction(),

		AlbRoad: d.Pavement.Albedo,
		DRoad:   d.Pavement.Thickness,
		KRoad:   d.Pavement.Conductivity,
		CRoad:   d.Pavement.VolumetricHeatCapacity,

		SensAnth:   d.TrafficWatts(),
		SchTraffic: d.Traffic.Matrix(),

		Zone:        zone,
		GrassCover:  d.GrassCoverage,
		TreeCover:   d.TreeCoverage,
		VegStart:    vegStart,
		VegEnd:      vegEnd,
		AlbVeg:      par.Vegetation.Albedo,
		LatGrss:     par.Vegetation.GrassLatentFraction,
		LatTree:     par.Vegetation.TreeLatentFraction,
		RurVegCover: par.ReferenceSite.VegetationCoverage,

		Month: par.RunPeriod.StartMonth,
		Day:   par.RunPeriod.StartDay,
		NDay:  par.RunPeriod.DayCount(),
		DtSim: par.TimestepSeconds(),

		HUbl1: par.BoundaryLayer.DayHeight,
		HUbl2: par.BoundaryLayer.NightHeight,
		HRef:  par.BoundaryLayer.InversionHeight,
		HTemp: par.ReferenceSite.TempMeasureHeight,
		HWind: par.ReferenceSite.WindMeasureHeight,
		CCirc: par.BoundaryLayer.CirculationCoefficient,
		CExch: par.BoundaryLayer.ExchangeCoefficient,
		HObs:  par.ReferenceSite.AverageObstacleHeight,

		DtWeather: weatherTimestep,
		Autosize:  false,
		SensOcc:   sensibleOccupant,
		LatFOcc:   latentFractOcc,
		RadFOcc:   radiantFractOcc,
		RadFEquip: radiantFractEquip,
		RadFLight: radiantFractLight,
		MaxDay:    maxDayThreshold,
		MaxNight:  maxNightThreshold,
		WindMin:   minWindSpeed,
	}
	return in, nil
}

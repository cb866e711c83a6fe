package bldgtypes

import (
	"github.com/urbanclimate/uwgo/pkg/errors"
)

// Default construction properties derived from the DOE commercial building
// reference models. Glazing ratios come from an analysis of the reference
// geometry; albedos and solar heat gain coefficients from the reference
// constructions for each era and climate zone.

// glazingRatio holds the default window-to-wall ratio per program.
var glazingRatio = map[Program]float64{
	FullServiceRestaurant:  0.182,
	Hospital:               0.1461,
	LargeHotel:             0.2663,
	LargeOffice:            0.38,
	MediumOffice:           0.33,
	MidRiseApartment:       0.1499,
	OutPatient:             0.1985,
	PrimarySchool:          0.35,
	QuickServiceRestaurant: 0.14,
	SecondarySchool:        0.34,
	SmallHotel:             0.1087,
	SmallOffice:            0.212,
	StandAloneRetail:       0.071,
	StripMall:              0.105,
	SuperMarket:            0.109,
	Warehouse:              0.0058,
}

// wallAlbedo holds the default exterior wall albedo per program.
var wallAlbedo = map[Program]float64{
	FullServiceRestaurant:  0.15,
	Hospital:               0.08,
	LargeHotel:             0.08,
	LargeOffice:            0.08,
	MediumOffice:           0.15,
	MidRiseApartment:       0.15,
	OutPatient:             0.15,
	PrimarySchool:          0.15,
	QuickServiceRestaurant: 0.22,
	SecondarySchool:        0.15,
	SmallHotel:             0.15,
	SmallOffice:            0.08,
	StandAloneRetail:       0.08,
	StripMall:              0.08,
	SuperMarket:            0.08,
	Warehouse:              0.08,
}

// roofAlbedo holds the default roof albedo per construction era. New
// construction assumes a cool roof.
var roofAlbedo = map[Era]float64{
	Pre1980s:        0.2,
	Era1980sPresent: 0.2,
	NewConstruction: 0.7,
}

// shgc holds the default window solar heat gain coefficient per era and
// climate zone. Zone 3B-CA is not distinguished from 3B here.
var shgc = map[Era]map[Zone]float64{
	Pre1980s: {
		Zone1A: 0.54, Zone2A: 0.54, Zone2B: 0.54, Zone3A: 0.54,
		Zone3B: 0.54, Zone3C: 0.54, Zone4A: 0.54, Zone4B: 0.54,
		Zone4C: 0.54, Zone5A: 0.54, Zone5B: 0.407, Zone6A: 0.407,
		Zone6B: 0.407, Zone7: 0.407, Zone8: 0.407,
	},
	Era1980sPresent: {
		Zone1A: 0.251, Zone2A: 0.251, Zone2B: 0.251, Zone3A: 0.255,
		Zone3B: 0.44, Zone3C: 0.251, Zone4A: 0.392, Zone4B: 0.355,
		Zone4C: 0.362, Zone5A: 0.392, Zone5B: 0.385, Zone6A: 0.385,
		Zone6B: 0.385, Zone7: 0.385, Zone8: 0.487,
	},
	NewConstruction: {
		Zone1A: 0.251, Zone2A: 0.251, Zone2B: 0.251, Zone3A: 0.252,
		Zone3B: 0.252, Zone3C: 0.252, Zone4A: 0.39, Zone4B: 0.385,
		Zone4C: 0.385, Zone5A: 0.385, Zone5B: 0.385, Zone6A: 0.385,
		Zone6B: 0.385, Zone7: 0.385, Zone8: 0.487,
	},
}

// DefaultGlazingRatio returns the default window-to-wall ratio for a program.
func DefaultGlazingRatio(p Program) (float64, error) {
	if r, ok := glazingRatio[p]; ok {
		return r, nil
	}
	return 0, errors.NewValidationError("program", p, "unknown program")
}

// DefaultWallAlbedo returns the default exterior wall albedo for a program.
func DefaultWallAlbedo(p Program) (float64, error) {
	if a, ok := wallAlbedo[p]; ok {
		return a, nil
	}
	return 0, errors.NewValidationError("program", p, "unknown program")
}

// DefaultRoofAlbedo returns the default roof albedo for a construction era.
func DefaultRoofAlbedo(e Era) (float64, error) {
	if a, ok := roofAlbedo[e]; ok {
		return a, nil
	}
	return 0, errors.NewValidationError("era", e, "unknown era")
}

// DefaultSHGC returns the default window solar heat gain coefficient for a
// construction era in a climate zone.
func DefaultSHGC(e Era, z Zone) (float64, error) {
	table, ok := shgc[e]
	if !ok {
		return 0, errors.NewValidationError("era", e, "unknown era")
	}
	if z == Zone3BCA {
		z = Zone3B
	}
	if v, ok := table[z]; ok {
		return v, nil
	}
	return 0, errors.NewValidationError("climate_zone", z, "unknown climate zone")
}

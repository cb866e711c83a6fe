package simulation

import (
	"github.com/urbanclimate/uwgo/pkg/errors"
)

// PavementParameter describes the makeup of pavement within the urban
// area. Defaults represent asphalt.
type PavementParameter struct {
	Albedo                 float64 `json:"albedo" yaml:"albedo"`
	Thickness              float64 `json:"thickness" yaml:"thickness"`
	Conductivity           float64 `json:"conductivity" yaml:"conductivity"`
	VolumetricHeatCapacity float64 `json:"volumetric_heat_capacity" yaml:"volumetric_heat_capacity"`
}

// DefaultPavement returns pavement parameters for typical asphalt: 0.5 m
// thick with a conductivity of 1 W/m-K and a volumetric heat capacity of
// 1,600,000 J/m3-K.
func DefaultPavement() PavementParameter {
	return PavementParameter{
		Albedo:                 0.1,
		Thickness:              0.5,
		Conductivity:           1.0,
		VolumetricHeatCapacity: 1.6e6,
	}
}

// Validate checks the albedo fraction and that physical properties are
// positive.
func (p PavementParameter) Validate() error {
	if p.Albedo < 0 || p.Albedo > 1 {
		return errors.NewValidationError("albedo", p.Albedo, "must be between 0 and 1")
	}
	if p.Thickness <= 0 {
		return errors.NewValidationError("thickness", p.Thickness, "must be positive")
	}
	if p.Conductivity <= 0 {
		return errors.NewValidationError(
			"conductivity", p.Conductivity, "must be positive")
	}
	if p.VolumetricHeatCapacity <= 0 {
		return errors.NewValidationError(
			"volumetric_heat_capacity", p.VolumetricHeatCapacity, "must be positive")
	}
	return nil
}

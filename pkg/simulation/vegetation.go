package simulation

import (
	"github.com/urbanclimate/uwgo/pkg/errors"
)

// VegetationParameter describes the behavior of vegetation within the
// urban area.
//
// StartMonth and EndMonth bound the period of evapotranspiration (leaves
// out through leaves off). Leave them at Autocalculate to derive them from
// the weather file as the months with an average temperature above 10C.
type VegetationParameter struct {
	Albedo              float64 `json:"vegetation_albedo" yaml:"vegetation_albedo"`
	StartMonth          int     `json:"start_month,omitempty" yaml:"start_month,omitempty"`
	EndMonth            int     `json:"end_month,omitempty" yaml:"end_month,omitempty"`
	TreeLatentFraction  float64 `json:"tree_latent_fraction" yaml:"tree_latent_fraction"`
	GrassLatentFraction float64 `json:"grass_latent_fraction" yaml:"grass_latent_fraction"`
}

// DefaultVegetation returns generic vegetation parameters with the
// evapotranspiration period left to be derived from the weather file.
func DefaultVegetation() VegetationParameter {
	return VegetationParameter{
		Albedo:              0.25,
		StartMonth:          Autocalculate,
		EndMonth:            Autocalculate,
		TreeLatentFraction:  0.7,
		GrassLatentFraction: 0.5,
	}
}

// Validate checks the fractional values and month bounds.
func (v VegetationParameter) Validate() error {
	if v.Albedo < 0 || v.Albedo > 1 {
		return errors.NewValidationError(
			"vegetation_albedo", v.Albedo, "must be between 0 and 1")
	}
	if v.TreeLatentFraction < 0 || v.TreeLatentFraction > 1 {
		return errors.NewValidationError(
			"tree_latent_fraction", v.TreeLatentFraction, "must be between 0 and 1")
	}
	if v.GrassLatentFraction < 0 || v.GrassLatentFraction > 1 {
		return errors.NewValidationError(
			"grass_latent_fraction", v.GrassLatentFraction, "must be between 0 and 1")
	}
	if v.StartMonth != Autocalculate && (v.StartMonth < 1 || v.StartMonth > 12) {
		return errors.NewValidationError(
			"start_month", v.StartMonth, "must be between 1 and 12")
	}
	if v.EndMonth != Autocalculate && (v.EndMonth < 1 || v.EndMonth > 12) {
		return errors.NewValidationError(
			"end_month", v.EndMonth, "must be between 1 and 12")
	}
	return nil
}

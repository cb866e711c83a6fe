package simulation

import (
	"github.com/urbanclimate/uwgo/pkg/errors"
)

// BoundaryLayerParameter describes the urban boundary layer: the heights
// to which the urban meteorological conditions are stable and
// representative of the overall urban area. Boundary layer heights
// typically increase with the height of the buildings. The circulation and
// exchange coefficient defaults follow Bueno (2012, 2014).
type BoundaryLayerParameter struct {
	DayHeight              float64 `json:"day_boundary_layer_height" yaml:"day_boundary_layer_height"`
	NightHeight            float64 `json:"night_boundary_layer_height" yaml:"night_boundary_layer_height"`
	InversionHeight        float64 `json:"inversion_height" yaml:"inversion_height"`
	CirculationCoefficient float64 `json:"circulation_coefficient" yaml:"circulation_coefficient"`
	ExchangeCoefficient    float64 `json:"exchange_coefficient" yaml:"exchange_coefficient"`
}

// DefaultBoundaryLayer returns generic boundary layer parameters.
func DefaultBoundaryLayer() BoundaryLayerParameter {
	return BoundaryLayerParameter{
		DayHeight:              1000,
		NightHeight:            80,
		InversionHeight:        150,
		CirculationCoefficient: 1.2,
		ExchangeCoefficient:    1.0,
	}
}

// Validate checks that all heights and coefficients are positive.
func (b BoundaryLayerParameter) Validate() error {
	if b.DayHeight <= 0 {
		return errors.NewValidationError(
			"day_boundary_layer_height", b.DayHeight, "must be positive")
	}
	if b.NightHeight <= 0 {
		return errors.NewValidationError(
			"night_boundary_layer_height", b.NightHeight, "must be positive")
	}
	if b.InversionHeight <= 0 {
		return errors.NewValidationError(
			"inversion_height", b.InversionHeight, "must be positive")
	}
	if b.CirculationCoefficient <= 0 {
		return errors.NewValidationError(
			"circulation_coefficient", b.CirculationCoefficient, "must be positive")
	}
	if b.ExchangeCoefficient <= 0 {
		return errors.NewValidationError(
			"exchange_coefficient", b.ExchangeCoefficient, "must be positive")
	}
	return nil
}

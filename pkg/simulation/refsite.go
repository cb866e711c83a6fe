package simulation

import (
	"github.com/urbanclimate/uwgo/pkg/errors"
)

// ReferenceEPWSite describes the site where the input rural EPW was
// recorded. Defaults represent a typical open airport weather station with
// temperature and wind measured at the standard 10 m height.
type ReferenceEPWSite struct {
	AverageObstacleHeight float64 `json:"average_obstacle_height" yaml:"average_obstacle_height"`
	VegetationCoverage    float64 `json:"vegetation_coverage" yaml:"vegetation_coverage"`
	TempMeasureHeight     float64 `json:"temp_measure_height" yaml:"temp_measure_height"`
	WindMeasureHeight     float64 `json:"wind_measure_height" yaml:"wind_measure_height"`
}

// DefaultReferenceSite returns generic airport reference site properties.
func DefaultReferenceSite() ReferenceEPWSite {
	return ReferenceEPWSite{
		AverageObstacleHeight: 0.1,
		VegetationCoverage:    0.9,
		TempMeasureHeight:     10,
		WindMeasureHeight:     10,
	}
}

// Validate checks that heights are non-negative and coverage is a fraction.
func (r ReferenceEPWSite) Validate() error {
	if r.AverageObstacleHeight < 0 {
		return errors.NewValidationError(
			"average_obstacle_height", r.AverageObstacleHeight, "must not be negative")
	}
	if r.VegetationCoverage < 0 || r.VegetationCoverage > 1 {
		return errors.NewValidationError(
			"vegetation_coverage", r.VegetationCoverage, "must be between 0 and 1")
	}
	if r.TempMeasureHeight <= 0 {
		return errors.NewValidationError(
			"temp_measure_height", r.TempMeasureHeight, "must be positive")
	}
	if r.WindMeasureHeight <= 0 {
		return errors.NewValidationError(
			"wind_measure_height", r.WindMeasureHeight, "must be positive")
	}
	return nil
}

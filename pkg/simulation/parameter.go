package simulation

import (
	"github.com/urbanclimate/uwgo/pkg/bldgtypes"
	"github.com/urbanclimate/uwgo/pkg/errors"
)

// ValidTimesteps lists the accepted numbers of simulation timesteps per
// hour; each must divide the hour evenly.
var ValidTimesteps = []int{1, 2, 3, 4, 5, 6, 10, 12, 15, 20, 30, 60}

// Parameter is the complete set of settings for a UWG simulation.
//
// ClimateZone sets the default constructions for buildings. Leave it empty
// to estimate it from the weather file being morphed.
type Parameter struct {
	ClimateZone   bldgtypes.Zone         `json:"climate_zone,omitempty" yaml:"climate_zone,omitempty"`
	RunPeriod     RunPeriod              `json:"run_period" yaml:"run_period"`
	Timestep      int                    `json:"timestep" yaml:"timestep"`
	Vegetation    VegetationParameter    `json:"vegetation_parameter" yaml:"vegetation_parameter"`
	ReferenceSite ReferenceEPWSite       `json:"reference_epw_site" yaml:"reference_epw_site"`
	BoundaryLayer BoundaryLayerParameter `json:"boundary_layer_parameter" yaml:"boundary_layer_parameter"`
}

// DefaultParameter returns simulation settings for a whole-year run at 12
// timesteps per hour with generic vegetation, reference site, and boundary
// layer properties, and the climate zone left to be estimated from the
// weather file.
func DefaultParameter() Parameter {
	return Parameter{
		RunPeriod:     WholeYear(),
		Timestep:      12,
		Vegetation:    DefaultVegetation(),
		ReferenceSite: DefaultReferenceSite(),
		BoundaryLayer: DefaultBoundaryLayer(),
	}
}

// Validate checks every parameter group and the timestep.
func (p Parameter) Validate() error {
	if p.ClimateZone != "" {
		if _, err := bldgtypes.CheckZone(string(p.ClimateZone)); err != nil {
			return err
		}
	}
	if err := p.RunPeriod.Validate(); err != nil {
		return err
	}
	valid := false
	for _, t := range ValidTimesteps {
		if p.Timestep == t {
			valid = true
			break
		}
	}
	if !valid {
		return errors.NewValidationError(
			"timestep", p.Timestep, "must divide the hour evenly")
	}
	if err := p.Vegetation.Validate(); err != nil {
		return err
	}
	if err := p.ReferenceSite.Validate(); err != nil {
		return err
	}
	return p.BoundaryLayer.Validate()
}

// TimestepSeconds returns the simulation timestep in seconds.
func (p Parameter) TimestepSeconds() int {
	return (60 / p.Timestep) * 60
}

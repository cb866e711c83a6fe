// Package simulation defines the parameter groups that drive an Urban
// Weather Generator simulation: traffic heat, vegetation, pavement, the
// rural reference site, the urban boundary layer, and the run period.
//
// Zero values are not meaningful for these types. Use the Default
// constructors and adjust fields from there; every type carries a Validate
// method that reports the first out-of-range field.
package simulation

import (
	"encoding/json"
	"fmt"

	"github.com/urbanclimate/uwgo/pkg/errors"
)

// Autocalculate marks a numeric field whose value should be derived from
// the model or the weather file rather than set directly.
const Autocalculate = 0

// Default traffic schedules for a commercial urban area. Values are
// fractions of the peak sensible heat flux for each hour of the day.
var (
	DefaultWeekdaySchedule = [24]float64{
		0.2, 0.2, 0.2, 0.2, 0.2, 0.4, 0.7, 0.9, 0.9, 0.6, 0.6, 0.6,
		0.6, 0.6, 0.7, 0.8, 0.9, 0.9, 0.8, 0.8, 0.7, 0.3, 0.2, 0.2,
	}
	DefaultSaturdaySchedule = [24]float64{
		0.2, 0.2, 0.2, 0.2, 0.2, 0.3, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.6, 0.7, 0.7, 0.7, 0.7, 0.5, 0.4, 0.3, 0.2, 0.2,
	}
	DefaultSundaySchedule = [24]float64{
		0.2, 0.2, 0.2, 0.2, 0.2, 0.3, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4,
		0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.3, 0.3, 0.2, 0.2,
	}
)

// TrafficParameter describes the sensible anthropogenic heat flux of an
// urban area that does not originate from buildings: automobiles, street
// lighting, human metabolism.
//
// WattsPerArea is the peak flux in W/m2. Typical values range from 4 W/m2
// for a residential area to 20 W/m2 for a dense downtown (Sailor 2011).
// Leave it at Autocalculate to estimate it from the average building
// height of the district.
type TrafficParameter struct {
	WattsPerArea     float64     `json:"watts_per_area,omitempty" yaml:"watts_per_area,omitempty"`
	WeekdaySchedule  [24]float64 `json:"weekday_schedule" yaml:"weekday_schedule"`
	SaturdaySchedule [24]float64 `json:"saturday_schedule" yaml:"saturday_schedule"`
	SundaySchedule   [24]float64 `json:"sunday_schedule" yaml:"sunday_schedule"`
}

// DefaultTraffic returns traffic parameters with the commercial-area
// schedules and an autocalculated peak flux.
func DefaultTraffic() TrafficParameter {
	return TrafficParameter{
		WattsPerArea:     Autocalculate,
		WeekdaySchedule:  DefaultWeekdaySchedule,
		SaturdaySchedule: DefaultSaturdaySchedule,
		SundaySchedule:   DefaultSundaySchedule,
	}
}

// Validate checks that the peak flux is non-negative and that every
// schedule value is a fraction.
func (t TrafficParameter) Validate() error {
	if t.WattsPerArea < 0 {
		return errors.NewValidationError(
			"watts_per_area", t.WattsPerArea, "must not be negative")
	}
	schedules := map[string][24]float64{
		"weekday_schedule":  t.WeekdaySchedule,
		"saturday_schedule": t.SaturdaySchedule,
		"sunday_schedule":   t.SundaySchedule,
	}
	for name, sched := range schedules {
		for hour, v := range sched {
			if v < 0 || v > 1 {
				return errors.NewValidationError(
					name, v, fmt.Sprintf("hour %d must be between 0 and 1", hour))
			}
		}
	}
	return nil
}

// UnmarshalJSON decodes a traffic document over the current values.
// Schedules must carry exactly 24 values; a fixed-length array would
// silently pad or truncate them instead.
func (t *TrafficParameter) UnmarshalJSON(data []byte) error {
	var doc struct {
		WattsPerArea *float64  `json:"watts_per_area"`
		Weekday      []float64 `json:"weekday_schedule"`
		Saturday     []float64 `json:"saturday_schedule"`
		Sunday       []float64 `json:"sunday_schedule"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.WattsPerArea != nil {
		t.WattsPerArea = *doc.WattsPerArea
	}
	for _, sched := range []struct {
		name   string
		values []float64
		dst    *[24]float64
	}{
		{"weekday_schedule", doc.Weekday, &t.WeekdaySchedule},
		{"saturday_schedule", doc.Saturday, &t.SaturdaySchedule},
		{"sunday_schedule", doc.Sunday, &t.SundaySchedule},
	} {
		if sched.values == nil {
			continue
		}
		if len(sched.values) != 24 {
			return errors.NewValidationError(
				sched.name, len(sched.values), "schedule must have exactly 24 values")
		}
		copy(sched.dst[:], sched.values)
	}
	return nil
}

// Matrix returns the weekday, Saturday, and Sunday schedules as the 3x24
// matrix the engine consumes.
func (t TrafficParameter) Matrix() [3][24]float64 {
	return [3][24]float64{t.WeekdaySchedule, t.SaturdaySchedule, t.SundaySchedule}
}

// HourlyHeat returns the sensible heat flux in W/m2 for each hour of the
// three day types, scaling the schedule fractions by the peak flux.
// averageHeight feeds the autocalculated peak.
func (t TrafficParameter) HourlyHeat(averageHeight float64) [3][24]float64 {
	watts := t.ResolveWattsPerArea(averageHeight)
	heat := t.Matrix()
	for day := range heat {
		for hour := range heat[day] {
			heat[day][hour] *= watts
		}
	}
	return heat
}

// AverageHeat returns the week-averaged sensible heat flux in W/m2,
// weighting the weekday schedule for its five days.
func (t TrafficParameter) AverageHeat(averageHeight float64) float64 {
	heat := t.HourlyHeat(averageHeight)
	var total float64
	for hour := 0; hour < 24; hour++ {
		total += 5*heat[0][hour] + heat[1][hour] + heat[2][hour]
	}
	return total / (7 * 24)
}

// ResolveWattsPerArea returns the peak flux, estimating it from the average
// building height of the district when set to Autocalculate. Short
// residential fabric gets 4 W/m2, mid-rise 8 W/m2, and tall downtown
// fabric 10 W/m2.
func (t TrafficParameter) ResolveWattsPerArea(averageHeight float64) float64 {
	if t.WattsPerArea != Autocalculate {
		return t.WattsPerArea
	}
	switch {
	case averageHeight <= 10:
		return 4
	case averageHeight <= 25:
		return 8
	default:
		return 10
	}
}

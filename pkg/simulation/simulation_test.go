package simulation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTraffic(t *testing.T) {
	traffic := DefaultTraffic()
	require.NoError(t, traffic.Validate())
	assert.Equal(t, float64(Autocalculate), traffic.WattsPerArea)
	assert.InDelta(t, 0.9, traffic.WeekdaySchedule[7], 1e-9)
	assert.InDelta(t, 0.7, traffic.SaturdaySchedule[15], 1e-9)
	assert.InDelta(t, 0.4, traffic.SundaySchedule[12], 1e-9)
}

func TestTrafficValidate(t *testing.T) {
	traffic := DefaultTraffic()
	traffic.WattsPerArea = -1
	assert.Error(t, traffic.Validate())

	traffic = DefaultTraffic()
	traffic.SundaySchedule[3] = 1.5
	assert.Error(t, traffic.Validate())
}

func TestTrafficResolveWattsPerArea(t *testing.T) {
	traffic := DefaultTraffic()
	assert.Equal(t, 4.0, traffic.ResolveWattsPerArea(9))
	assert.Equal(t, 8.0, traffic.ResolveWattsPerArea(20))
	assert.Equal(t, 10.0, traffic.ResolveWattsPerArea(60))

	traffic.WattsPerArea = 15
	assert.Equal(t, 15.0, traffic.ResolveWattsPerArea(9))
}

func TestTrafficUnmarshalRejectsBadScheduleLength(t *testing.T) {
	traffic := DefaultTraffic()
	err := json.Unmarshal([]byte(`{"weekday_schedule": [0.5, 0.5, 0.5]}`), &traffic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 24 values")

	traffic = DefaultTraffic()
	long := `{"sunday_schedule": [` + strings.Repeat("0.5,", 24) + `0.5]}`
	err = json.Unmarshal([]byte(long), &traffic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 24 values")
}

func TestTrafficUnmarshalOverDefaults(t *testing.T) {
	traffic := DefaultTraffic()
	doc := `{"watts_per_area": 15, "saturday_schedule": [` +
		strings.Repeat("0.1,", 23) + `0.1]}`
	require.NoError(t, json.Unmarshal([]byte(doc), &traffic))

	assert.Equal(t, 15.0, traffic.WattsPerArea)
	assert.InDelta(t, 0.1, traffic.SaturdaySchedule[12], 1e-9)
	// omitted schedules keep their defaults
	assert.Equal(t, DefaultWeekdaySchedule, traffic.WeekdaySchedule)
	assert.Equal(t, DefaultSundaySchedule, traffic.SundaySchedule)
}

func TestTrafficMatrix(t *testing.T) {
	traffic := DefaultTraffic()
	matrix := traffic.Matrix()
	assert.Equal(t, traffic.WeekdaySchedule, matrix[0])
	assert.Equal(t, traffic.SaturdaySchedule, matrix[1])
	assert.Equal(t, traffic.SundaySchedule, matrix[2])
}

func TestTrafficHourlyHeat(t *testing.T) {
	traffic := DefaultTraffic()
	traffic.WattsPerArea = 10

	heat := traffic.HourlyHeat(20)
	assert.InDelta(t, 9.0, heat[0][7], 1e-9)  // weekday peak 0.9 x 10
	assert.InDelta(t, 7.0, heat[1][15], 1e-9) // saturday 0.7 x 10
	assert.InDelta(t, 4.0, heat[2][12], 1e-9) // sunday 0.4 x 10

	// autocalculated peak follows the height bands
	traffic.WattsPerArea = Autocalculate
	heat = traffic.HourlyHeat(9)
	assert.InDelta(t, 3.6, heat[0][7], 1e-9) // 0.9 x 4
}

func TestTrafficAverageHeat(t *testing.T) {
	traffic := TrafficParameter{WattsPerArea: 10}
	for i := range traffic.WeekdaySchedule {
		traffic.WeekdaySchedule[i] = 0.7
		traffic.SaturdaySchedule[i] = 0.7
		traffic.SundaySchedule[i] = 0.7
	}
	assert.InDelta(t, 7.0, traffic.AverageHeat(20), 1e-9)

	// weekdays weigh five of the seven days
	traffic = TrafficParameter{WattsPerArea: 7}
	for i := range traffic.WeekdaySchedule {
		traffic.WeekdaySchedule[i] = 1
	}
	assert.InDelta(t, 5.0, traffic.AverageHeat(20), 1e-9)
}

func TestDefaultVegetation(t *testing.T) {
	veg := DefaultVegetation()
	require.NoError(t, veg.Validate())
	assert.InDelta(t, 0.25, veg.Albedo, 1e-9)
	assert.Equal(t, Autocalculate, veg.StartMonth)
	assert.Equal(t, Autocalculate, veg.EndMonth)
	assert.InDelta(t, 0.7, veg.TreeLatentFraction, 1e-9)
	assert.InDelta(t, 0.5, veg.GrassLatentFraction, 1e-9)

	veg.StartMonth = 13
	assert.Error(t, veg.Validate())
	veg.StartMonth = 5
	require.NoError(t, veg.Validate())
	veg.Albedo = 1.2
	assert.Error(t, veg.Validate())
}

func TestDefaultPavement(t *testing.T) {
	pav := DefaultPavement()
	require.NoError(t, pav.Validate())
	assert.InDelta(t, 0.1, pav.Albedo, 1e-9)
	assert.InDelta(t, 0.5, pav.Thickness, 1e-9)
	assert.InDelta(t, 1.0, pav.Conductivity, 1e-9)
	assert.InDelta(t, 1.6e6, pav.VolumetricHeatCapacity, 1e-3)

	pav.Thickness = 0
	assert.Error(t, pav.Validate())
}

func TestDefaultReferenceSite(t *testing.T) {
	site := DefaultReferenceSite()
	require.NoError(t, site.Validate())
	assert.InDelta(t, 0.1, site.AverageObstacleHeight, 1e-9)
	assert.InDelta(t, 0.9, site.VegetationCoverage, 1e-9)
	assert.InDelta(t, 10.0, site.TempMeasureHeight, 1e-9)
	assert.InDelta(t, 10.0, site.WindMeasureHeight, 1e-9)

	site.VegetationCoverage = -0.1
	assert.Error(t, site.Validate())
}

func TestDefaultBoundaryLayer(t *testing.T) {
	bnd := DefaultBoundaryLayer()
	require.NoError(t, bnd.Validate())
	assert.InDelta(t, 1000.0, bnd.DayHeight, 1e-9)
	assert.InDelta(t, 80.0, bnd.NightHeight, 1e-9)
	assert.InDelta(t, 150.0, bnd.InversionHeight, 1e-9)
	assert.InDelta(t, 1.2, bnd.CirculationCoefficient, 1e-9)
	assert.InDelta(t, 1.0, bnd.ExchangeCoefficient, 1e-9)

	bnd.InversionHeight = 0
	assert.Error(t, bnd.Validate())
}

func TestRunPeriod(t *testing.T) {
	rp := WholeYear()
	require.NoError(t, rp.Validate())
	assert.Equal(t, 365, rp.DayCount())
	assert.Equal(t, "1 Jan - 31 Dec", rp.String())

	summer := RunPeriod{StartMonth: 6, StartDay: 1, EndMonth: 8, EndDay: 31}
	require.NoError(t, summer.Validate())
	assert.Equal(t, 92, summer.DayCount())

	oneDay := RunPeriod{StartMonth: 3, StartDay: 12, EndMonth: 3, EndDay: 12}
	require.NoError(t, oneDay.Validate())
	assert.Equal(t, 1, oneDay.DayCount())
}

func TestRunPeriodValidate(t *testing.T) {
	tests := []struct {
		name string
		rp   RunPeriod
	}{
		{"bad month", RunPeriod{StartMonth: 0, StartDay: 1, EndMonth: 12, EndDay: 31}},
		{"bad day", RunPeriod{StartMonth: 2, StartDay: 30, EndMonth: 12, EndDay: 31}},
		{"reversed", RunPeriod{StartMonth: 8, StartDay: 1, EndMonth: 6, EndDay: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.rp.Validate())
		})
	}
}

func TestDefaultParameter(t *testing.T) {
	par := DefaultParameter()
	require.NoError(t, par.Validate())
	assert.Empty(t, par.ClimateZone)
	assert.Equal(t, 12, par.Timestep)
	assert.Equal(t, 300, par.TimestepSeconds())
	assert.Equal(t, 365, par.RunPeriod.DayCount())

	par.Timestep = 7
	assert.Error(t, par.Validate())
	par.Timestep = 60
	require.NoError(t, par.Validate())
	assert.Equal(t, 60, par.TimestepSeconds())

	par.ClimateZone = "9X"
	assert.Error(t, par.Validate())
	par.ClimateZone = "5A"
	require.NoError(t, par.Validate())
}

func TestParameterJSONRoundTrip(t *testing.T) {
	par := DefaultParameter()
	par.ClimateZone = "4A"
	par.Timestep = 20
	par.Vegetation.StartMonth = 4
	par.Vegetation.EndMonth = 10

	raw, err := json.Marshal(par)
	require.NoError(t, err)

	// unmarshal over defaults so absent keys keep their default values
	got := DefaultParameter()
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, par, got)
}

func TestParameterPartialJSON(t *testing.T) {
	raw := []byte(`{"timestep": 6, "vegetation_parameter": {"vegetation_albedo": 0.3}}`)
	got := DefaultParameter()
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, 6, got.Timestep)
	assert.InDelta(t, 0.3, got.Vegetation.Albedo, 1e-9)
	// untouched groups keep their defaults
	assert.InDelta(t, 0.9, got.ReferenceSite.VegetationCoverage, 1e-9)
	assert.Equal(t, 365, got.RunPeriod.DayCount())
}

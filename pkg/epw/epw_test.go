package epw

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanclimate/uwgo/pkg/bldgtypes"
	"github.com/urbanclimate/uwgo/pkg/errors"
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// buildEPW generates a minimal EPW with a constant dry bulb temperature
// for each month.
func buildEPW(monthTemps [12]float64) string {
	var b strings.Builder
	b.WriteString("LOCATION,Boston Logan Intl Arpt,MA,USA,TMY3,725090,42.37,-71.02,-5.0,6.0\n")
	b.WriteString("DESIGN CONDITIONS,0\n")
	b.WriteString("TYPICAL/EXTREME PERIODS,0\n")
	b.WriteString("GROUND TEMPERATURES,0\n")
	b.WriteString("HOLIDAYS/DAYLIGHT SAVINGS,No,0,0,0\n")
	b.WriteString("COMMENTS 1,generated for testing\n")
	b.WriteString("COMMENTS 2,\n")
	b.WriteString("DATA PERIODS,1,1,Data,Sunday,1/1,12/31\n")
	for m := 0; m < 12; m++ {
		for d := 1; d <= monthDays[m]; d++ {
			for h := 1; h <= 24; h++ {
				fmt.Fprintf(&b, "1999,%d,%d,%d,0,A_A_A,%.1f", m+1, d, h, monthTemps[m])
				// pad the remaining fields of the 35-field row
				b.WriteString(strings.Repeat(",0", 28))
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

var bostonLikeTemps = [12]float64{-5, -3, 2, 8, 12, 18, 22, 21, 15, 9, 4, -2}

func TestParse(t *testing.T) {
	w, err := Parse(strings.NewReader(buildEPW(bostonLikeTemps)))
	require.NoError(t, err)

	assert.Equal(t, "Boston Logan Intl Arpt", w.Location.City)
	assert.Equal(t, "MA", w.Location.State)
	assert.Equal(t, "USA", w.Location.Country)
	assert.Equal(t, "725090", w.Location.WMO)
	assert.InDelta(t, 42.37, w.Location.Latitude, 1e-9)
	assert.InDelta(t, -71.02, w.Location.Longitude, 1e-9)
	assert.InDelta(t, -5.0, w.Location.TimeZone, 1e-9)
	assert.InDelta(t, 6.0, w.Location.Elevation, 1e-9)
	assert.Len(t, w.DryBulb, 8760)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("DESIGN CONDITIONS,0\n"))
	assert.Error(t, err, "missing LOCATION header")

	truncated := "LOCATION,City,ST,USA,TMY3,000000,0,0,0,0\nDESIGN CONDITIONS,0\n"
	_, err = Parse(strings.NewReader(truncated))
	assert.Error(t, err, "file ends inside the header")

	short := buildEPW(bostonLikeTemps)
	short += "1999,1,1,1,0,A,10.0,0,0\n"
	_, err = Parse(strings.NewReader(short))
	assert.Error(t, err, "data row with too few fields")
}

func TestLoadRejectsNonEPW(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.csv")
	require.NoError(t, os.WriteFile(path, []byte(buildEPW(bostonLikeTemps)), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	epwPath := filepath.Join(t.TempDir(), "weather.epw")
	require.NoError(t, os.WriteFile(epwPath, []byte(buildEPW(bostonLikeTemps)), 0o644))
	w, err := Load(epwPath)
	require.NoError(t, err)
	assert.Len(t, w.DryBulb, 8760)
}

func TestMonthlyMeans(t *testing.T) {
	w, err := Parse(strings.NewReader(buildEPW(bostonLikeTemps)))
	require.NoError(t, err)

	means := w.MonthlyMeans()
	for m, want := range bostonLikeTemps {
		assert.InDelta(t, want, means[m], 1e-9, "month %d", m+1)
	}
}

func TestVegetationMonths(t *testing.T) {
	w, err := Parse(strings.NewReader(buildEPW(bostonLikeTemps)))
	require.NoError(t, err)

	// first month above 10C is May; October falls back below
	start, end := w.VegetationMonths(10)
	assert.Equal(t, 5, start)
	assert.Equal(t, 10, end)

	// tropical profile stays warm all year
	var tropical [12]float64
	for m := range tropical {
		tropical[m] = 25
	}
	warm, err := Parse(strings.NewReader(buildEPW(tropical)))
	require.NoError(t, err)
	start, end = warm.VegetationMonths(10)
	assert.Equal(t, 1, start)
	assert.Equal(t, 12, end)
}

func TestDegreeDays(t *testing.T) {
	w, err := Parse(strings.NewReader(buildEPW(bostonLikeTemps)))
	require.NoError(t, err)

	hdd, cdd := w.DegreeDays(18, 10)
	// hand-computed from the constant monthly temperatures
	assert.InDelta(t, 3692.0, hdd, 1e-6)
	assert.InDelta(t, 1165.0, cdd, 1e-6)
}

func TestClimateZone(t *testing.T) {
	w, err := Parse(strings.NewReader(buildEPW(bostonLikeTemps)))
	require.NoError(t, err)
	assert.Equal(t, bldgtypes.Zone5A, w.ClimateZone())

	var tropical [12]float64
	for m := range tropical {
		tropical[m] = 28
	}
	hot, err := Parse(strings.NewReader(buildEPW(tropical)))
	require.NoError(t, err)
	// 18C above the cooling base all year is over 6500 CDD
	assert.Equal(t, bldgtypes.Zone1A, hot.ClimateZone())

	var arctic [12]float64
	for m := range arctic {
		arctic[m] = -10
	}
	cold, err := Parse(strings.NewReader(buildEPW(arctic)))
	require.NoError(t, err)
	assert.Equal(t, bldgtypes.Zone8, cold.ClimateZone())
}

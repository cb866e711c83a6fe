// Package epw reads the parts of an EnergyPlus weather file that the
// Urban Weather Generator workflow needs: the station location and the
// hourly dry bulb temperature. It is not a general EPW library; fields
// beyond those are passed through to the engine untouched.
package epw

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urbanclimate/uwgo/pkg/bldgtypes"
	"github.com/urbanclimate/uwgo/pkg/errors"
)

// EPW data rows carry 35 fields; files with fewer are rejected.
const minDataFields = 35

// headerLines is the number of header rows before hourly data begins.
const headerLines = 8

// missingDryBulb is the EPW sentinel for a missing dry bulb reading.
const missingDryBulb = 99.9

// Location is the weather station site from the LOCATION header row.
type Location struct {
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Source    string  `json:"source"`
	WMO       string  `json:"wmo"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  float64 `json:"time_zone"`
	Elevation float64 `json:"elevation"`
}

// Weather holds the parsed contents of an EPW file.
type Weather struct {
	Location Location
	// DryBulb is the hourly dry bulb temperature in Celsius.
	DryBulb []float64
	// months records the month of each hourly row.
	months []int
}

// Load reads and parses an EPW file from disk.
func Load(path string) (*Weather, error) {
	if !strings.EqualFold(filepath.Ext(path), ".epw") {
		return nil, errors.NewValidationError(
			"epw", path, "file must have an .epw extension")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	w, err := Parse(f)
	if err != nil {
		return nil, errors.WrapIO("parse", path, err)
	}
	return w, nil
}

// Parse reads an EPW from a reader.
func Parse(r io.Reader) (*Weather, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, errors.NewValidationError("epw", "", "file is empty")
	}
	loc, err := parseLocation(scanner.Text())
	if err != nil {
		return nil, err
	}

	for i := 1; i < headerLines; i++ {
		if !scanner.Scan() {
			return nil, errors.NewValidationError(
				"epw", i, "file ends inside the header")
		}
	}

	w := &Weather{Location: loc}
	line := headerLines
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}
		fields := strings.Split(row, ",")
		if len(fields) < minDataFields {
			return nil, errors.NewValidationError(
				"epw", line, "data row has too few fields")
		}
		month, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil || month < 1 || month > 12 {
			return nil, errors.NewValidationError(
				"epw", line, "data row has an invalid month")
		}
		temp, err := strconv.ParseFloat(strings.TrimSpace(fields[6]), 64)
		if err != nil {
			return nil, errors.NewValidationError(
				"epw", line, "data row has an invalid dry bulb temperature")
		}
		w.DryBulb = append(w.DryBulb, temp)
		w.months = append(w.months, month)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(w.DryBulb) == 0 {
		return nil, errors.NewValidationError("epw", 0, "file has no data rows")
	}
	return w, nil
}

func parseLocation(line string) (Location, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 10 || !strings.EqualFold(strings.TrimSpace(fields[0]), "LOCATION") {
		return Location{}, errors.NewValidationError(
			"epw", line, "first row must be a LOCATION header")
	}
	loc := Location{
		City:    strings.TrimSpace(fields[1]),
		State:   strings.TrimSpace(fields[2]),
		Country: strings.TrimSpace(fields[3]),
		Source:  strings.TrimSpace(fields[4]),
		WMO:     strings.TrimSpace(fields[5]),
	}
	numeric := []struct {
		name  string
		field string
		dst   *float64
	}{
		{"latitude", fields[6], &loc.Latitude},
		{"longitude", fields[7], &loc.Longitude},
		{"time_zone", fields[8], &loc.TimeZone},
		{"elevation", fields[9], &loc.Elevation},
	}
	for _, n := range numeric {
		v, err := strconv.ParseFloat(strings.TrimSpace(n.field), 64)
		if err != nil {
			return Location{}, errors.NewValidationError(
				n.name, n.field, "LOCATION header value is not a number")
		}
		*n.dst = v
	}
	return loc, nil
}

// MonthlyMeans returns the average dry bulb temperature of each month.
// Missing readings are excluded from the average.
func (w *Weather) MonthlyMeans() [12]float64 {
	var sums [12]float64
	var counts [12]int
	for i, temp := range w.DryBulb {
		if temp == missingDryBulb {
			continue
		}
		m := w.months[i] - 1
		sums[m] += temp
		counts[m]++
	}
	var means [12]float64
	for m := range means {
		if counts[m] > 0 {
			means[m] = sums[m] / float64(counts[m])
		}
	}
	return means
}

// VegetationMonths returns the start and end month of vegetation
// evapotranspiration: the first month whose mean temperature rises above
// the threshold and the month it falls back below. A fully warm year
// yields 1 and 12.
func (w *Weather) VegetationMonths(threshold float64) (start, end int) {
	means := w.MonthlyMeans()
	start, end = 1, 12
	started := false
	for i, t := range means {
		if t > threshold && !started {
			start, started = i+1, true
		} else if t < threshold && started {
			end, started = i+1, false
		}
	}
	return start, end
}

// DegreeDays returns the heating and cooling degree days of the weather
// file, computed from daily mean temperatures against the given base
// temperatures in Celsius.
func (w *Weather) DegreeDays(heatingBase, coolingBase float64) (hdd, cdd float64) {
	for day := 0; day+24 <= len(w.DryBulb); day += 24 {
		var sum float64
		count := 0
		for _, t := range w.DryBulb[day : day+24] {
			if t == missingDryBulb {
				continue
			}
			sum += t
			count++
		}
		if count == 0 {
			continue
		}
		mean := sum / float64(count)
		if mean < heatingBase {
			hdd += heatingBase - mean
		}
		if mean > coolingBase {
			cdd += mean - coolingBase
		}
	}
	return hdd, cdd
}

// ClimateZone estimates the ASHRAE climate zone from heating degree days
// below 18C and cooling degree days above 10C, following the thermal
// criteria of ASHRAE 169. The humidity letter defaults to "A" since
// moisture data is not analyzed.
func (w *Weather) ClimateZone() bldgtypes.Zone {
	hdd, cdd := w.DegreeDays(18, 10)
	switch {
	case cdd > 5000:
		return bldgtypes.Zone1A
	case cdd > 3500:
		return bldgtypes.Zone2A
	case hdd > 7000:
		return bldgtypes.Zone8
	case hdd > 5000:
		return bldgtypes.Zone7
	case hdd > 4000:
		return bldgtypes.Zone6A
	case hdd > 3000:
		return bldgtypes.Zone5A
	case hdd > 2000:
		return bldgtypes.Zone4A
	default:
		return bldgtypes.Zone3A
	}
}

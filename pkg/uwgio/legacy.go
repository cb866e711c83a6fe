package uwgio

import (
	"fmt"
	"strings"

	"github.com/urbanclimate/uwgo/pkg/bldgtypes"
)

// LegacyString renders an engine input in the legacy .uwg text format
// understood by the original MATLAB and early Python engines. The layout,
// parameter names, and inline comments mirror the files those engines
// shipped with.
func LegacyString(in *Input) (string, error) {
	zoneIdx, err := bldgtypes.ZoneIndex(in.Zone)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# =================================================\n")
	b.WriteString("# UWG INPUT PARAMETERS\n")
	b.WriteString("# =================================================\n\n")

	b.WriteString("# Urban characteristics\n")
	fmt.Fprintf(&b, "bldHeight,%s,     # average building height (m)\n", num(in.BldHeight))
	fmt.Fprintf(&b, "bldDensity,%s,   # urban area building plan density (0-1)\n", num(in.BldDensity))
	fmt.Fprintf(&b, "verToHor,%s,     # urban area vertical to horizontal ratio\n", num(in.VerToHor))
	fmt.Fprintf(&b, "h_mix,%s,       # fraction of building HVAC heat output to street canyon\n", num(in.HMix))
	fmt.Fprintf(&b, "charLength,%s, # dimension of a square that encompasses the district (m)\n", num(in.CharLength))
	fmt.Fprintf(&b, "albRoad,%s,      # road albedo (0 - 1)\n", num(in.AlbRoad))
	fmt.Fprintf(&b, "dRoad,%s,        # road pavement thickness (m)\n", num(in.DRoad))
	fmt.Fprintf(&b, "kRoad,%s,          # road pavement conductivity (W/m K)\n", num(in.KRoad))
	fmt.Fprintf(&b, "cRoad,%s,    # road volumetric heat capacity (J/m^3 K)\n", num(in.CRoad))
	fmt.Fprintf(&b, "sensAnth,%s,  # non-building sensible heat at street level (W/m^2)\n", num(in.SensAnth))
	b.WriteString("latAnth,0,   # non-building latent heat (W/m^2) (not used)\n\n")
	fmt.Fprintf(&b, "zone,%d,    # Climate zone index (ie. 4=3A, 11=5A, 16=8)\n\n", zoneIdx+1)

	b.WriteString("# Vegetation parameters\n")
	fmt.Fprintf(&b, "vegCover,%s,     # Fraction of the district covered in grass/shrub (0-1)\n", num(in.GrassCover))
	fmt.Fprintf(&b, "treeCoverage,%s, # Fraction of the district covered in trees (0-1)\n", num(in.TreeCover))
	fmt.Fprintf(&b, "vegStart,%d,    # The month in which vegetation starts to evapotranspire\n", in.VegStart)
	fmt.Fprintf(&b, "vegEnd,%d,        # The month in which vegetation stops evapotranspiring\n", in.VegEnd)
	fmt.Fprintf(&b, "albVeg,%s,      # Vegetation albedo\n", num(in.AlbVeg))
	fmt.Fprintf(&b, "rurVegCover,%s,  # Fraction of the rural ground covered by vegetation\n", num(in.RurVegCover))
	fmt.Fprintf(&b, "latGrss,%s,    # Fraction of the heat absorbed by grass as latent\n", num(in.LatGrss))
	fmt.Fprintf(&b, "latTree,%s,    # Fraction of the heat absorbed by trees as latent\n\n", num(in.LatTree))

	b.WriteString("# Traffic schedule [1 to 24 hour]\n")
	b.WriteString("SchTraffic,\n")
	fmt.Fprintf(&b, "%s, # weekday\n", row(in.SchTraffic[0][:]))
	fmt.Fprintf(&b, "%s, # saturday\n", row(in.SchTraffic[1][:]))
	fmt.Fprintf(&b, "%s, # sunday\n\n", row(in.SchTraffic[2][:]))

	b.WriteString("# Fraction of building stock for each era (Pre80, Pst80, new)\n")
	b.WriteString("# Note that sum(bld) must be equal to 1\n")
	for i, program := range bldgtypes.Programs() {
		fmt.Fprintf(&b, "%s  #%s\n", row(in.Bld[i][:]), program)
	}
	b.WriteByte('\n')

	b.WriteString("# Simulation parameters,\n")
	fmt.Fprintf(&b, "Month,%d,        # starting month (1-12)\n", in.Month)
	fmt.Fprintf(&b, "Day,%d,          # starting day (1-31)\n", in.Day)
	fmt.Fprintf(&b, "nDay,%d,        # number of days to run simultion\n", in.NDay)
	fmt.Fprintf(&b, "dtSim,%d,      # simulation time step (s)\n", in.DtSim)
	fmt.Fprintf(&b, "dtWeather,%d.0, # weather time step (s)\n\n", in.DtWeather)

	b.WriteString("# HVAC system and internal loads\n")
	fmt.Fprintf(&b, "autosize,%d,     # autosize HVAC (1 for yes; 0 for no)\n", boolInt(in.Autosize))
	fmt.Fprintf(&b, "sensOcc,%s,    # Sensible heat per occupant (W)\n", num(in.SensOcc))
	fmt.Fprintf(&b, "LatFOcc,%s,    # Latent heat fraction from occupant (normally 0.3)\n", num(in.LatFOcc))
	fmt.Fprintf(&b, "RadFOcc,%s,    # Radiant heat fraction from occupant (normally 0.2)\n", num(in.RadFOcc))
	fmt.Fprintf(&b, "RadFEquip,%s,  # Radiant heat fraction from equipment (normally 0.5)\n", num(in.RadFEquip))
	fmt.Fprintf(&b, "RadFLight,%s,  # Radiant heat fraction from light (normally 0.7)\n\n", num(in.RadFLight))

	b.WriteString("#Urban climate parameters\n")
	fmt.Fprintf(&b, "h_ubl1,%s,    # ubl height - day (m)\n", num(in.HUbl1))
	fmt.Fprintf(&b, "h_ubl2,%s,      # ubl height - night (m)\n", num(in.HUbl2))
	fmt.Fprintf(&b, "h_ref,%s,      # inversion height (m)\n", num(in.HRef))
	fmt.Fprintf(&b, "h_temp,%s,       # temperature height (m)\n", num(in.HTemp))
	fmt.Fprintf(&b, "h_wind,%s,      # wind height (m)\n", num(in.HWind))
	fmt.Fprintf(&b, "c_circ,%s,     # circulation coefficient (default = 1.2; Bruno (2012))\n", num(in.CCirc))
	fmt.Fprintf(&b, "c_exch,%s,       # exchange coefficient (default = 1; Bruno (2014))\n", num(in.CExch))
	fmt.Fprintf(&b, "maxDay,%s,     # max day threshold (W/m^2)\n", num(in.MaxDay))
	fmt.Fprintf(&b, "maxNight,%s,    # max night threshold (W/m^2)\n", num(in.MaxNight))
	fmt.Fprintf(&b, "windMin,%s,      # min wind speed (m/s)\n", num(in.WindMin))
	fmt.Fprintf(&b, "h_obs,%s,      # rural average obstacle height (m)\n", num(in.HObs))

	return b.String(), nil
}

// num formats a float the shortest way that round-trips.
func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", v), "0"), ".")
}

func row(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = num(v)
	}
	return strings.Join(parts, ", ")
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

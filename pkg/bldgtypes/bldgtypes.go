// Package bldgtypes holds the reference vocabulary shared by every part of
// uwgo: the DOE commercial building programs, the construction eras that set
// default constructions, and the ASHRAE climate zones understood by the
// Urban Weather Generator.
package bldgtypes

import (
	"strings"

	"github.com/urbanclimate/uwgo/pkg/errors"
)

// Program identifies one of the 16 DOE commercial reference building programs.
type Program string

// String returns the string representation of a Program.
func (p Program) String() string {
	return string(p)
}

// The DOE commercial reference building programs, in UWG index order.
const (
	FullServiceRestaurant  Program = "FullServiceRestaurant"
	Hospital               Program = "Hospital"
	LargeHotel             Program = "LargeHotel"
	LargeOffice            Program = "LargeOffice"
	MediumOffice           Program = "MediumOffice"
	MidRiseApartment       Program = "MidRiseApartment"
	OutPatient             Program = "OutPatient"
	PrimarySchool          Program = "PrimarySchool"
	QuickServiceRestaurant Program = "QuickServiceRestaurant"
	SecondarySchool        Program = "SecondarySchool"
	SmallHotel             Program = "SmallHotel"
	SmallOffice            Program = "SmallOffice"
	StandAloneRetail       Program = "StandAloneRetail"
	StripMall              Program = "StripMall"
	SuperMarket            Program = "SuperMarket"
	Warehouse              Program = "Warehouse"
)

// programOrder lists programs by the row index the UWG assigns them in its
// 16 x 3 building-fraction matrix.
var programOrder = [16]Program{
	FullServiceRestaurant, Hospital, LargeHotel, LargeOffice,
	MediumOffice, MidRiseApartment, OutPatient, PrimarySchool,
	QuickServiceRestaurant, SecondarySchool, SmallHotel, SmallOffice,
	StandAloneRetail, StripMall, SuperMarket, Warehouse,
}

var programIndex = func() map[Program]int {
	m := make(map[Program]int, len(programOrder))
	for i, p := range programOrder {
		m[p] = i
	}
	return m
}()

// Era identifies the construction era of a group of buildings. The era
// determines which international building code governs the default
// constructions of walls, roofs, and windows.
type Era string

// String returns the string representation of an Era.
func (e Era) String() string {
	return string(e)
}

// The accepted construction eras, in UWG index order.
const (
	Pre1980s        Era = "Pre1980s"
	Era1980sPresent Era = "1980sPresent"
	NewConstruction Era = "NewConstruction"
)

var eraOrder = [3]Era{Pre1980s, Era1980sPresent, NewConstruction}

var eraIndex = map[Era]int{
	Pre1980s:        0,
	Era1980sPresent: 1,
	NewConstruction: 2,
}

// uwgEraName maps eras to the abbreviated names the UWG engine uses.
var uwgEraName = map[Era]string{
	Pre1980s:        "Pre80",
	Era1980sPresent: "Pst80",
	NewConstruction: "New",
}

// eraFromUWG maps the UWG engine's abbreviated era names back to eras.
var eraFromUWG = map[string]Era{
	"Pre80": Pre1980s,
	"Pst80": Era1980sPresent,
	"New":   NewConstruction,
}

// Zone identifies an ASHRAE climate zone (eg. "5A").
type Zone string

// String returns the string representation of a Zone.
func (z Zone) String() string {
	return string(z)
}

// The climate zones understood by the UWG, in index order.
const (
	Zone1A   Zone = "1A"
	Zone2A   Zone = "2A"
	Zone2B   Zone = "2B"
	Zone3A   Zone = "3A"
	Zone3BCA Zone = "3B-CA"
	Zone3B   Zone = "3B"
	Zone3C   Zone = "3C"
	Zone4A   Zone = "4A"
	Zone4B   Zone = "4B"
	Zone4C   Zone = "4C"
	Zone5A   Zone = "5A"
	Zone5B   Zone = "5B"
	Zone6A   Zone = "6A"
	Zone6B   Zone = "6B"
	Zone7    Zone = "7"
	Zone8    Zone = "8"
)

var zoneOrder = [16]Zone{
	Zone1A, Zone2A, Zone2B, Zone3A, Zone3BCA, Zone3B, Zone3C, Zone4A,
	Zone4B, Zone4C, Zone5A, Zone5B, Zone6A, Zone6B, Zone7, Zone8,
}

var zoneIndex = func() map[Zone]int {
	m := make(map[Zone]int, len(zoneOrder))
	for i, z := range zoneOrder {
		m[z] = i
	}
	return m
}()

// zoneAliases folds the climate zone sub-classes that the UWG does not
// distinguish into the zones it does.
var zoneAliases = map[string]Zone{
	"1": Zone1A, "1B": Zone1A, "1C": Zone1A,
	"2": Zone2A, "2C": Zone2A,
	"3": Zone3A,
	"4": Zone4A,
	"5": Zone5A, "5C": Zone5A,
	"6": Zone6A, "6C": Zone6A,
	"7A": Zone7, "7B": Zone7, "7C": Zone7,
	"8A": Zone8, "8B": Zone8, "8C": Zone8,
}

// programAliases accepts the spellings found in the wild for each program.
// Keys are upper-cased before lookup.
var programAliases = map[string]Program{
	"FULLSERVICERESTAURANT":    FullServiceRestaurant,
	"HOSPITAL":                 Hospital,
	"LARGEHOTEL":               LargeHotel,
	"LARGEOFFICE":              LargeOffice,
	"MEDIUMOFFICE":             MediumOffice,
	"MEDOFFICE":                MediumOffice,
	"MIDRISEAPARTMENT":         MidRiseApartment,
	"OUTPATIENT":               OutPatient,
	"PRIMARYSCHOOL":            PrimarySchool,
	"QUICKSERVICERESTAURANT":   QuickServiceRestaurant,
	"SECONDARYSCHOOL":          SecondarySchool,
	"SMALLHOTEL":               SmallHotel,
	"SMALLOFFICE":              SmallOffice,
	"STANDALONERETAIL":         StandAloneRetail,
	"STRIPMALL":                StripMall,
	"SUPERMARKET":              SuperMarket,
	"WAREHOUSE":                Warehouse,
	"FULL SERVICE RESTAURANT":  FullServiceRestaurant,
	"LARGE HOTEL":              LargeHotel,
	"LARGE OFFICE":             LargeOffice,
	"MEDIUM OFFICE":            MediumOffice,
	"MIDRISE APARTMENT":        MidRiseApartment,
	"OUT PATIENT":              OutPatient,
	"PRIMARY SCHOOL":           PrimarySchool,
	"QUICK SERVICE RESTAURANT": QuickServiceRestaurant,
	"SECONDARY SCHOOL":         SecondarySchool,
	"SMALL HOTEL":              SmallHotel,
	"SMALL OFFICE":             SmallOffice,
	"STANDALONE RETAIL":        StandAloneRetail,
	"STRIP MALL":               StripMall,
	"OFFICE":                   LargeOffice,
	"RETAIL":                   StandAloneRetail,
	"0":                        LargeOffice,
	"1":                        StandAloneRetail,
	"2":                        MidRiseApartment,
	"3":                        PrimarySchool,
	"4":                        SecondarySchool,
	"5":                        SmallHotel,
	"6":                        LargeHotel,
	"7":                        Hospital,
	"8":                        OutPatient,
	"9":                        Warehouse,
	"10":                       SuperMarket,
	"11":                       FullServiceRestaurant,
	"12":                       QuickServiceRestaurant,
}

var eraAliases = map[string]Era{
	"PRE1980S":         Pre1980s,
	"1980SPRESENT":     Era1980sPresent,
	"NEWCONSTRUCTION":  NewConstruction,
	"0":                Pre1980s,
	"1":                Era1980sPresent,
	"2":                NewConstruction,
	"PRE-1980'S":       Pre1980s,
	"1980'S-PRESENT":   Era1980sPresent,
	"NEW CONSTRUCTION": NewConstruction,
}

// CheckProgram normalizes and validates a building program input.
func CheckProgram(input string) (Program, error) {
	if p, ok := programAliases[strings.ToUpper(strings.TrimSpace(input))]; ok {
		return p, nil
	}
	return "", errors.NewValidationError(
		"program", input, "not a recognized DOE building program")
}

// CheckEra normalizes and validates a construction era input.
func CheckEra(input string) (Era, error) {
	if e, ok := eraAliases[strings.ToUpper(strings.TrimSpace(input))]; ok {
		return e, nil
	}
	return "", errors.NewValidationError(
		"era", input, "not a recognized construction era")
}

// CheckZone normalizes and validates an ASHRAE climate zone input.
func CheckZone(input string) (Zone, error) {
	key := strings.ToUpper(strings.TrimSpace(input))
	if _, ok := zoneIndex[Zone(key)]; ok {
		return Zone(key), nil
	}
	if z, ok := zoneAliases[key]; ok {
		return z, nil
	}
	return "", errors.NewValidationError(
		"climate_zone", input, "not a recognized ASHRAE climate zone")
}

// Programs returns all building programs in UWG index order.
func Programs() []Program {
	return programOrder[:]
}

// Eras returns all construction eras in UWG index order.
func Eras() []Era {
	return eraOrder[:]
}

// Zones returns all climate zones in UWG index order.
func Zones() []Zone {
	return zoneOrder[:]
}

// ProgramIndex returns the row index of a program in the UWG building matrix.
func ProgramIndex(p Program) (int, error) {
	if i, ok := programIndex[p]; ok {
		return i, nil
	}
	return 0, errors.NewValidationError("program", p, "unknown program")
}

// EraIndex returns the column index of an era in the UWG building matrix.
func EraIndex(e Era) (int, error) {
	if i, ok := eraIndex[e]; ok {
		return i, nil
	}
	return 0, errors.NewValidationError("era", e, "unknown era")
}

// ZoneIndex returns the UWG index of a climate zone.
func ZoneIndex(z Zone) (int, error) {
	if i, ok := zoneIndex[z]; ok {
		return i, nil
	}
	return 0, errors.NewValidationError("climate_zone", z, "unknown climate zone")
}

// ZoneFromIndex returns the climate zone at the given UWG index.
func ZoneFromIndex(i int) (Zone, error) {
	if i < 0 || i >= len(zoneOrder) {
		return "", errors.NewValidationError(
			"climate_zone", i, "climate zone index out of range")
	}
	return zoneOrder[i], nil
}

// UWGEraName returns the abbreviated era name the UWG engine expects.
func UWGEraName(e Era) string {
	return uwgEraName[e]
}

// EraFromUWGName resolves the UWG engine's abbreviated era name.
func EraFromUWGName(name string) (Era, error) {
	if e, ok := eraFromUWG[name]; ok {
		return e, nil
	}
	return "", errors.NewValidationError("era", name, "unknown UWG era name")
}

package bldgtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanclimate/uwgo/pkg/errors"
)

func TestCheckProgram(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Program
		wantErr bool
	}{
		{"canonical", "LargeOffice", LargeOffice, false},
		{"case insensitive", "largeoffice", LargeOffice, false},
		{"spaced alias", "Large Office", LargeOffice, false},
		{"legacy med office", "MedOffice", MediumOffice, false},
		{"numeric honeybee index", "2", MidRiseApartment, false},
		{"generic office", "Office", LargeOffice, false},
		{"whitespace trimmed", "  Warehouse  ", Warehouse, false},
		{"unknown", "SpaceStation", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckProgram(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckEra(t *testing.T) {
	tests := []struct {
		input   string
		want    Era
		wantErr bool
	}{
		{"Pre1980s", Pre1980s, false},
		{"pre1980s", Pre1980s, false},
		{"Pre-1980's", Pre1980s, false},
		{"1980sPresent", Era1980sPresent, false},
		{"New Construction", NewConstruction, false},
		{"0", Pre1980s, false},
		{"2", NewConstruction, false},
		{"Medieval", "", true},
	}
	for _, tt := range tests {
		got, err := CheckEra(tt.input)
		if tt.wantErr {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestCheckZone(t *testing.T) {
	tests := []struct {
		input   string
		want    Zone
		wantErr bool
	}{
		{"5A", Zone5A, false},
		{"5a", Zone5A, false},
		{"3B-CA", Zone3BCA, false},
		{"3b-ca", Zone3BCA, false},
		{"1", Zone1A, false},
		{"5C", Zone5A, false},
		{"7B", Zone7, false},
		{"8", Zone8, false},
		{"9X", "", true},
	}
	for _, tt := range tests {
		got, err := CheckZone(tt.input)
		if tt.wantErr {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestIndexRoundTrips(t *testing.T) {
	require.Len(t, Programs(), 16)
	require.Len(t, Eras(), 3)
	require.Len(t, Zones(), 16)

	for i, p := range Programs() {
		idx, err := ProgramIndex(p)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
	for i, z := range Zones() {
		idx, err := ZoneIndex(z)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		back, err := ZoneFromIndex(idx)
		require.NoError(t, err)
		assert.Equal(t, z, back)
	}

	idx, err := ZoneIndex(Zone3BCA)
	require.NoError(t, err)
	assert.Equal(t, 4, idx)

	_, err = ZoneFromIndex(16)
	assert.Error(t, err)
	_, err = ProgramIndex(Program("Bunker"))
	assert.Error(t, err)
}

func TestUWGEraNames(t *testing.T) {
	assert.Equal(t, "Pre80", UWGEraName(Pre1980s))
	assert.Equal(t, "Pst80", UWGEraName(Era1980sPresent))
	assert.Equal(t, "New", UWGEraName(NewConstruction))

	for _, e := range Eras() {
		back, err := EraFromUWGName(UWGEraName(e))
		require.NoError(t, err)
		assert.Equal(t, e, back)
	}
	_, err := EraFromUWGName("Future")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	glz, err := DefaultGlazingRatio(LargeOffice)
	require.NoError(t, err)
	assert.InDelta(t, 0.38, glz, 1e-9)

	// every program has a glazing ratio and wall albedo
	for _, p := range Programs() {
		_, err := DefaultGlazingRatio(p)
		require.NoError(t, err)
		_, err = DefaultWallAlbedo(p)
		require.NoError(t, err)
	}

	alb, err := DefaultRoofAlbedo(NewConstruction)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, alb, 1e-9)

	shgc, err := DefaultSHGC(Pre1980s, Zone5B)
	require.NoError(t, err)
	assert.InDelta(t, 0.407, shgc, 1e-9)

	// 3B-CA folds into 3B
	caSHGC, err := DefaultSHGC(Era1980sPresent, Zone3BCA)
	require.NoError(t, err)
	bSHGC, err := DefaultSHGC(Era1980sPresent, Zone3B)
	require.NoError(t, err)
	assert.Equal(t, bSHGC, caSHGC)

	_, err = DefaultSHGC(Era("Medieval"), Zone5A)
	assert.Error(t, err)
}

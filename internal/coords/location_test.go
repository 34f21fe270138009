package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name      string
		planet    int
		system    int
		x, y, z   int
		wantField string
	}{
		{name: "origin", planet: 0, system: 0},
		{name: "all maxima", planet: 6, system: 4095, x: 2047, y: 127, z: 2047},
		{name: "all minima", planet: 0, system: 0, x: -2047, y: -127, z: -2047},
		{name: "planet 7", planet: 7, wantField: FieldPlanet},
		{name: "negative planet", planet: -1, wantField: FieldPlanet},
		{name: "system 4096", system: 4096, wantField: FieldSystem},
		{name: "x 2048", x: 2048, wantField: FieldVoxelX},
		{name: "x -2048", x: -2048, wantField: FieldVoxelX},
		{name: "y 128", y: 128, wantField: FieldVoxelY},
		{name: "y -128", y: -128, wantField: FieldVoxelY},
		{name: "z 2048", z: 2048, wantField: FieldVoxelZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := NewLocation(tt.planet, tt.system, tt.x, tt.y, tt.z)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.planet, loc.Planet())
				assert.Equal(t, tt.system, loc.StarSystem())
				assert.Equal(t, tt.x, loc.X())
				assert.Equal(t, tt.y, loc.Y())
				assert.Equal(t, tt.z, loc.Z())
				return
			}
			require.ErrorIs(t, err, ErrRange)
			var rerr *RangeError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.wantField, rerr.Field)
			assert.Empty(t, rerr.Raw)
		})
	}
}

func TestMustLocation_Panics(t *testing.T) {
	assert.Panics(t, func() { MustLocation(7, 0, 0, 0, 0) })
	assert.NotPanics(t, func() { MustLocation(6, 0, 0, 0, 0) })
}

func TestRangeError_Message(t *testing.T) {
	err := &RangeError{Field: FieldPlanet, Value: 15, Raw: "F", Min: 0, Max: 6}
	assert.Equal(t, `planetIndex 15 (raw "F") out of range 0..6`, err.Error())

	err = &RangeError{Field: FieldVoxelY, Value: -128, Min: -127, Max: 127}
	assert.Equal(t, "voxelY -128 out of range -127..127", err.Error())
}

func TestBiasSymmetry(t *testing.T) {
	for x := -MaxVoxelXZ; x <= MaxVoxelXZ; x++ {
		stored := biased(x, biasXZ)
		if stored < 0 || stored > 0xFFE {
			t.Fatalf("stored x %d for %d outside 0..4094", stored, x)
		}
		if got := unbiased(stored, biasXZ); got != x {
			t.Fatalf("x %d: recovered %d", x, got)
		}
		if got := fromTwosComplement(twosComplement(x, 12), 12); got != x {
			t.Fatalf("x %d: portal round trip gave %d", x, got)
		}
	}
	for y := -MaxVoxelY; y <= MaxVoxelY; y++ {
		stored := biased(y, biasY)
		if stored < 0 || stored > 0xFE {
			t.Fatalf("stored y %d for %d outside 0..254", stored, y)
		}
		if got := unbiased(stored, biasY); got != y {
			t.Fatalf("y %d: recovered %d", y, got)
		}
		if got := fromTwosComplement(twosComplement(y, 8), 8); got != y {
			t.Fatalf("y %d: portal round trip gave %d", y, got)
		}
	}
}

func TestDerive(t *testing.T) {
	loc, err := Parse("00380256EC6B")
	require.NoError(t, err)

	signed := loc.Derive(SpaceSigned)
	assert.Equal(t, Derived{Space: SpaceSigned, X: -917, Y: 2, Z: 1390, StarSystem: 56, Planet: 0}, signed)
	assert.Equal(t, "0056", signed.StarSystemLabel(false))
	assert.Equal(t, "0x038", signed.StarSystemLabel(true))

	galactic := loc.Derive(SpaceGalactic)
	assert.Equal(t, 0x46A, galactic.X)
	assert.Equal(t, 0x81, galactic.Y)
	assert.Equal(t, 0xD6D, galactic.Z)
	assert.Equal(t, signed.StarSystem, galactic.StarSystem)
	assert.Equal(t, signed.Planet, galactic.Planet)
}

func TestParseSpace(t *testing.T) {
	for name, want := range map[string]Space{
		"signed":   SpaceSigned,
		"Portal":   SpaceSigned,
		"":         SpaceSigned,
		"GALACTIC": SpaceGalactic,
	} {
		got, err := ParseSpace(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseSpace("polar")
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    int
		hex  bool
		want string
	}{
		{-917, false, "-917"},
		{1390, false, "1390"},
		{-917, true, "-0x395"},
		{1390, true, "0x56E"},
		{0, true, "0x0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v, tt.hex), "FormatNumber(%d, %v)", tt.v, tt.hex)
	}
}

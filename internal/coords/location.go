// Package coords converts between the three textual forms of a galactic
// location: Portal Address (PSSSYYZZZXXX), Galactic Coordinates
// (XXXX:YYYY:ZZZZ:PSSS) and Signal Booster Code (GGGGG:XXXX:YYYY:ZZZZ).
//
// All three forms describe the same five fields. Galactic and booster groups
// store the voxel offsets with a +2047 (X, Z) or +127 (Y) bias; the portal
// address stores them as two's complement. Everything in this package is a
// pure function of its arguments and safe for concurrent use.
package coords

import "fmt"

// Field bounds.
const (
	MaxPlanet  = 6
	MaxSystem  = 0xFFF
	MaxVoxelXZ = 0x7FF
	MaxVoxelY  = 0x7F
)

// Field names used in RangeError.
const (
	FieldPlanet = "planetIndex"
	FieldSystem = "systemIndex"
	FieldVoxelX = "voxelX"
	FieldVoxelY = "voxelY"
	FieldVoxelZ = "voxelZ"
)

// Location is a validated, immutable galactic location.
type Location struct {
	planet int
	system int
	x      int
	y      int
	z      int
}

// NewLocation validates the field tuple and returns the location. It never
// clamps: any field outside its bound yields a *RangeError.
func NewLocation(planet, system, x, y, z int) (Location, error) {
	checks := []struct {
		field    string
		value    int
		min, max int
	}{
		{FieldPlanet, planet, 0, MaxPlanet},
		{FieldSystem, system, 0, MaxSystem},
		{FieldVoxelX, x, -MaxVoxelXZ, MaxVoxelXZ},
		{FieldVoxelY, y, -MaxVoxelY, MaxVoxelY},
		{FieldVoxelZ, z, -MaxVoxelXZ, MaxVoxelXZ},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return Location{}, &RangeError{Field: c.field, Value: c.value, Min: c.min, Max: c.max}
		}
	}
	return Location{planet: planet, system: system, x: x, y: y, z: z}, nil
}

// MustLocation is like NewLocation but panics on invalid fields.
func MustLocation(planet, system, x, y, z int) Location {
	loc, err := NewLocation(planet, system, x, y, z)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l Location) Planet() int     { return l.planet }
func (l Location) StarSystem() int { return l.system }

// X, Y and Z are the signed voxel offsets from the galactic centre.
func (l Location) X() int { return l.x }
func (l Location) Y() int { return l.y }
func (l Location) Z() int { return l.z }

func (l Location) String() string {
	return l.Galactic()
}

// GoString prints the decoded fields, mostly for test failures.
func (l Location) GoString() string {
	return fmt.Sprintf("<x: %d y: %d z: %d system: %d planet: %d>", l.x, l.y, l.z, l.system, l.planet)
}

// biased converts a signed offset to the galactic stored value.
func biased(v, bias int) int {
	return v + bias
}

func unbiased(stored, bias int) int {
	return stored - bias
}

// twosComplement converts a signed offset to a bits-wide portal value.
func twosComplement(v int, bits uint) int {
	return v & (1<<bits - 1)
}

func fromTwosComplement(stored int, bits uint) int {
	if stored >= 1<<(bits-1) {
		return stored - 1<<bits
	}
	return stored
}

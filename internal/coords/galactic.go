package coords

import (
	"fmt"
	"strings"
)

const (
	biasXZ = MaxVoxelXZ
	biasY  = MaxVoxelY
)

// decodeGroups decodes the X, Y and Z groups shared by galactic coordinates
// and booster codes. Reserved high bits must be clear.
func decodeGroups(input string, form Form, xg, yg, zg string, values map[string]int, raw map[string]string) error {
	groups := []struct {
		field string
		tok   string
		bits  uint
		bias  int
	}{
		{FieldVoxelX, xg, 12, biasXZ},
		{FieldVoxelY, yg, 8, biasY},
		{FieldVoxelZ, zg, 12, biasXZ},
	}
	for _, g := range groups {
		stored := hexValue(g.tok)
		if stored>>g.bits != 0 {
			return malformed(input, g.tok, form, fmt.Sprintf("has reserved bits set (%s uses the low %d bits)", g.field, g.bits))
		}
		values[g.field] = unbiased(stored, g.bias)
		raw[g.field] = g.tok
	}
	return nil
}

// decodeGalactic decodes shape-checked groups XXXX, YYYY, ZZZZ, PSSS.
func decodeGalactic(input string, groups []string) (Location, error) {
	values := make(map[string]int, 5)
	raw := make(map[string]string, 5)
	if err := decodeGroups(input, FormGalactic, groups[0], groups[1], groups[2], values, raw); err != nil {
		return Location{}, err
	}
	pss := groups[3]
	values[FieldPlanet] = hexValue(pss[:1])
	values[FieldSystem] = hexValue(pss[1:])
	raw[FieldPlanet] = pss[:1]
	raw[FieldSystem] = pss[1:]
	return locationFromFields(values, raw)
}

// Galactic renders XXXX:YYYY:ZZZZ:PSSS.
func (l Location) Galactic() string {
	return l.GalacticWithSeparator(separator)
}

// GalacticWithSeparator renders the galactic coordinates joined by sep.
func (l Location) GalacticWithSeparator(sep string) string {
	return strings.Join(append(l.xyzGroups(), fmt.Sprintf("%X%03X", l.planet, l.system)), sep)
}

// XYZ renders XXXX:YYYY:ZZZZ, the galactic coordinates without the system
// group. This is the point format the plotting scripts read.
func (l Location) XYZ() string {
	return strings.Join(l.xyzGroups(), separator)
}

func (l Location) xyzGroups() []string {
	return []string{
		fmt.Sprintf("%04X", biased(l.x, biasXZ)),
		fmt.Sprintf("%04X", biased(l.y, biasY)),
		fmt.Sprintf("%04X", biased(l.z, biasXZ)),
	}
}

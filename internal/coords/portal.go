package coords

import "fmt"

// Portal address nibble layout, most significant first: PSSSYYZZZXXX.
var portalFields = []struct {
	field string
	width int
}{
	{FieldPlanet, 1},
	{FieldSystem, 3},
	{FieldVoxelY, 2},
	{FieldVoxelZ, 3},
	{FieldVoxelX, 3},
}

// decodePortal decodes a shape-checked portal address.
func decodePortal(s string) (Location, error) {
	values := make(map[string]int, len(portalFields))
	raw := make(map[string]string, len(portalFields))
	pos := 0
	for _, f := range portalFields {
		tok := s[pos : pos+f.width]
		pos += f.width
		raw[f.field] = tok
		stored := hexValue(tok)
		switch f.field {
		case FieldVoxelX, FieldVoxelZ, FieldVoxelY:
			values[f.field] = fromTwosComplement(stored, uint(4*f.width))
		default:
			values[f.field] = stored
		}
	}
	return locationFromFields(values, raw)
}

// Portal renders the location as a 12-digit portal address.
func (l Location) Portal() string {
	return fmt.Sprintf("%X%03X%02X%03X%03X",
		l.planet,
		l.system,
		twosComplement(l.y, 8),
		twosComplement(l.z, 12),
		twosComplement(l.x, 12),
	)
}

// PortalGlyphs returns the dial glyphs for the portal address, in dialling
// order.
func (l Location) PortalGlyphs() []PortalGlyph {
	code := l.Portal()
	glyphs := make([]PortalGlyph, len(code))
	for i := 0; i < len(code); i++ {
		glyphs[i] = PortalGlyph(hexValue(code[i : i+1]))
	}
	return glyphs
}

// locationFromFields validates decoded fields, attaching the raw token to any
// range error.
func locationFromFields(values map[string]int, raw map[string]string) (Location, error) {
	loc, err := NewLocation(values[FieldPlanet], values[FieldSystem], values[FieldVoxelX], values[FieldVoxelY], values[FieldVoxelZ])
	if rerr, ok := err.(*RangeError); ok {
		rerr.Raw = raw[rerr.Field]
		return Location{}, rerr
	}
	return loc, err
}

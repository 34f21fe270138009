package coords

import "strings"

// decodeBooster decodes shape-checked groups GGGGG, XXXX, YYYY, ZZZZ. The
// glyph prefix carries planet (first glyph) and system (next three); the
// last glyph is reserved and must stand for zero.
func decodeBooster(input string, groups []string) (Location, error) {
	prefix := groups[0]
	nibbles := make([]int, len(prefix))
	for i := 0; i < len(prefix); i++ {
		nibbles[i], _ = GlyphNibble(prefix[i])
	}
	if nibbles[4] != 0 {
		return Location{}, malformed(input, prefix[4:], FormBooster, "has reserved bits set (last glyph must be "+string(NibbleGlyph(0))+")")
	}

	values := make(map[string]int, 5)
	raw := make(map[string]string, 5)
	if err := decodeGroups(input, FormBooster, groups[1], groups[2], groups[3], values, raw); err != nil {
		return Location{}, err
	}
	values[FieldPlanet] = nibbles[0]
	values[FieldSystem] = nibbles[1]<<8 | nibbles[2]<<4 | nibbles[3]
	raw[FieldPlanet] = prefix[:1]
	raw[FieldSystem] = prefix[1:4]
	return locationFromFields(values, raw)
}

// Booster renders GGGGG:XXXX:YYYY:ZZZZ.
func (l Location) Booster() string {
	return l.BoosterWithSeparator(separator)
}

// BoosterWithSeparator renders the booster code joined by sep.
func (l Location) BoosterWithSeparator(sep string) string {
	return strings.Join(append([]string{l.boosterGlyphs()}, l.xyzGroups()...), sep)
}

func (l Location) boosterGlyphs() string {
	return string([]byte{
		NibbleGlyph(l.planet),
		NibbleGlyph(l.system >> 8),
		NibbleGlyph(l.system >> 4),
		NibbleGlyph(l.system),
		NibbleGlyph(0),
	})
}

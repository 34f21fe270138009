package coords

// boosterGlyphs is the signal booster alphabet, indexed by nibble value.
// I and O are left out so a booster prefix never reads as digits.
var boosterGlyphs = [16]byte{
	'A', 'E', 'H', 'K', 'L', 'M', 'N', 'P',
	'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y',
}

// glyphNibble is the reverse of boosterGlyphs; -1 marks characters outside
// the alphabet. Lowercase letters decode like their uppercase glyph.
var glyphNibble [128]int8

func init() {
	for i := range glyphNibble {
		glyphNibble[i] = -1
	}
	for i, c := range boosterGlyphs {
		glyphNibble[c] = int8(i)
		glyphNibble[c+('a'-'A')] = int8(i)
	}
}

// GlyphNibble returns the nibble a booster glyph stands for.
func GlyphNibble(c byte) (int, bool) {
	if c >= 128 || glyphNibble[c] < 0 {
		return 0, false
	}
	return int(glyphNibble[c]), true
}

// NibbleGlyph returns the booster glyph for the low 4 bits of n.
func NibbleGlyph(n int) byte {
	return boosterGlyphs[n&0xF]
}

func isGlyph(c byte) bool {
	_, ok := GlyphNibble(c)
	return ok
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isHexString(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHex(s[i]) {
			return false
		}
	}
	return true
}

// hexValue parses a token already checked with isHexString.
func hexValue(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a':
			v = v<<4 | int(c-'a'+10)
		case c >= 'A':
			v = v<<4 | int(c-'A'+10)
		default:
			v = v<<4 | int(c-'0')
		}
	}
	return v
}

// PortalGlyph is one of the sixteen symbols shown on a portal dial. Each
// stands for one hex digit of a Portal Address.
type PortalGlyph uint8

const (
	GlyphSunset PortalGlyph = iota
	GlyphBird
	GlyphFace
	GlyphDiplo
	GlyphEclipse
	GlyphBalloon
	GlyphBoat
	GlyphBug
	GlyphDragonfly
	GlyphGalaxy
	GlyphVoxel
	GlyphFish
	GlyphTent
	GlyphRocket
	GlyphTree
	GlyphAtlas
)

var portalGlyphNames = [16]string{
	"Sunset", "Bird", "Face", "Diplo", "Eclipse", "Balloon", "Boat", "Bug",
	"Dragonfly", "Galaxy", "Voxel", "Fish", "Tent", "Rocket", "Tree", "Atlas",
}

func (g PortalGlyph) String() string {
	return portalGlyphNames[g&0xF]
}

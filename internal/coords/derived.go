package coords

import (
	"fmt"
	"strconv"
	"strings"
)

// Space selects how X, Y and Z are reported.
type Space int

const (
	// SpaceSigned reports the signed voxel offsets (portal space).
	SpaceSigned Space = iota
	// SpaceGalactic reports the biased values shown in galactic coordinates.
	SpaceGalactic
)

func (s Space) String() string {
	switch s {
	case SpaceSigned:
		return "signed"
	case SpaceGalactic:
		return "galactic"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// ParseSpace parses "signed" or "galactic" (case-insensitive). "portal" is
// accepted as an alias for signed.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "signed", "portal", "":
		return SpaceSigned, nil
	case "galactic":
		return SpaceGalactic, nil
	}
	return SpaceSigned, fmt.Errorf("unknown coordinate space %q (want signed or galactic)", name)
}

// Derived is the projection of a Location into reporting values.
type Derived struct {
	Space      Space
	X, Y, Z    int
	StarSystem int
	Planet     int
}

// Derive projects l into the requested space.
func (l Location) Derive(space Space) Derived {
	d := Derived{
		Space:      space,
		X:          l.x,
		Y:          l.y,
		Z:          l.z,
		StarSystem: l.system,
		Planet:     l.planet,
	}
	if space == SpaceGalactic {
		d.X = biased(l.x, biasXZ)
		d.Y = biased(l.y, biasY)
		d.Z = biased(l.z, biasXZ)
	}
	return d
}

// StarSystemLabel renders the system index as a fixed-width label, either
// decimal ("0056") or hex ("0x038").
func (d Derived) StarSystemLabel(hex bool) string {
	if hex {
		return fmt.Sprintf("0x%03X", d.StarSystem)
	}
	return fmt.Sprintf("%04d", d.StarSystem)
}

// FormatNumber renders v in decimal, or in hex with the sign ahead of the
// prefix ("-0x395").
func FormatNumber(v int, hex bool) string {
	if !hex {
		return strconv.Itoa(v)
	}
	if v < 0 {
		return fmt.Sprintf("-0x%X", -v)
	}
	return fmt.Sprintf("0x%X", v)
}

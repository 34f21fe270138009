package theme

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"nmskit/internal/coords"
)

func TestDefaultThemeIsTelix(t *testing.T) {
	if name := GetThemeManager().Current().Name(); name != "telix" {
		t.Errorf("Expected default theme telix, got %s", name)
	}
}

func TestAvailableThemes(t *testing.T) {
	names := GetThemeManager().Available()
	if len(names) != 2 || names[0] != "atlas" || names[1] != "telix" {
		t.Errorf("Expected [atlas telix], got %v", names)
	}

	tm := NewThemeManager()
	if err := tm.SetTheme("atlas"); err != nil {
		t.Fatalf("SetTheme(atlas) failed: %v", err)
	}
	if tm.Current().Name() != "atlas" {
		t.Errorf("Expected atlas to be current, got %s", tm.Current().Name())
	}
	err := tm.SetTheme("missing")
	if err == nil {
		t.Fatalf("Expected error for unknown theme")
	}
	if !strings.Contains(err.Error(), "available: atlas, telix") {
		t.Errorf("Expected available themes in error, got %v", err)
	}
}

func TestStateColors(t *testing.T) {
	for _, th := range []Theme{NewTelixTheme(), NewAtlasTheme()} {
		sc := th.StateColors()
		seen := make(map[tcell.Color]coords.State)
		for _, st := range []coords.State{coords.StateEmpty, coords.StateIncomplete, coords.StateComplete, coords.StateInvalid} {
			c := sc.For(st)
			if prev, dup := seen[c]; dup {
				t.Errorf("%s: states %s and %s share a colour", th.Name(), prev, st)
			}
			seen[c] = st
		}
	}

	telix := NewTelixTheme().StateColors()
	r, g, b := telix.For(coords.StateComplete).RGB()
	if r != 0 || g != 255 || b != 0 {
		t.Errorf("Expected bright green for complete codes, got RGB(%d,%d,%d)", r, g, b)
	}
}

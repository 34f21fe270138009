package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"nmskit/internal/coords"
	"nmskit/internal/theme"
)

// displayOptions are the editor's toggles that affect the details panel
type displayOptions struct {
	hex   bool
	space coords.Space
}

const emptyHelp = `Type a code in any of these forms:

  Portal address        00380256EC6B
  Galactic coordinates  046A:0081:0D6D:0038
  Signal booster code   HUKYA:046A:0081:0D6D`

// renderDetails renders the details panel text, with tview colour tags,
// for the current parse status
func renderDetails(st coords.Status, opts displayOptions, th theme.Theme) string {
	var b strings.Builder
	stateColor := colorTag(th.StateColors().For(st.State))

	switch st.State {
	case coords.StateEmpty:
		fmt.Fprintf(&b, "[%s]%s[-]\n\n%s", stateColor, st.State, emptyHelp)

	case coords.StateIncomplete:
		fmt.Fprintf(&b, "[%s]%s[-] %s, keep typing", stateColor, st.State, st.Form)

	case coords.StateInvalid:
		fmt.Fprintf(&b, "[%s]%s[-]\n\n%s", stateColor, st.State, tview.Escape(st.Err.Error()))

	case coords.StateComplete:
		loc := st.Location
		d := loc.Derive(opts.space)
		fmt.Fprintf(&b, "[%s]%s[-] %s\n\n", stateColor, st.State, st.Form)
		rows := [][2]string{
			{"Portal", loc.Portal()},
			{"Glyphs", glyphNames(loc.PortalGlyphs())},
			{"Galactic", loc.Galactic()},
			{"Booster", loc.Booster()},
			{"Space", d.Space.String()},
			{"X", coords.FormatNumber(d.X, opts.hex)},
			{"Y", coords.FormatNumber(d.Y, opts.hex)},
			{"Z", coords.FormatNumber(d.Z, opts.hex)},
			{"Star system", d.StarSystemLabel(opts.hex)},
			{"Planet", coords.FormatNumber(d.Planet, opts.hex)},
		}
		for _, row := range rows {
			fmt.Fprintf(&b, "%-12s %s\n", row[0], row[1])
		}
	}
	return b.String()
}

func glyphNames(glyphs []coords.PortalGlyph) string {
	names := make([]string, len(glyphs))
	for i, g := range glyphs {
		names[i] = g.String()
	}
	return strings.Join(names, " ")
}

func colorTag(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}

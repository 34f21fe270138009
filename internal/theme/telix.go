package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Standard ANSI 16-color palette using correct hex values
// This ensures consistent colors regardless of terminal color scheme
var (
	DOSBlack     = tcell.NewHexColor(0x000000)
	DOSRed       = tcell.NewHexColor(0x800000)
	DOSGreen     = tcell.NewHexColor(0x008000)
	DOSBlue      = tcell.NewHexColor(0x000080)
	DOSLightGray = tcell.NewHexColor(0xC0C0C0)

	DOSDarkGray   = tcell.NewHexColor(0x808080)
	DOSLightRed   = tcell.NewHexColor(0xFF0000)
	DOSLightGreen = tcell.NewHexColor(0x00FF00)
	DOSYellow     = tcell.NewHexColor(0xFFFF00)
	DOSLightCyan  = tcell.NewHexColor(0x00FFFF)
	DOSWhite      = tcell.NewHexColor(0xFFFFFF)
)

// TelixTheme implements the classic Telix DOS terminal theme
type TelixTheme struct{}

// NewTelixTheme creates a new Telix theme instance
func NewTelixTheme() *TelixTheme {
	return &TelixTheme{}
}

// Name returns the theme name
func (t *TelixTheme) Name() string {
	return "telix"
}

// DefaultColors returns the default color scheme
func (t *TelixTheme) DefaultColors() DefaultColors {
	return DefaultColors{
		Background: DOSBlack,
		Foreground: DOSLightGray,
		Muted:      DOSDarkGray,
	}
}

// DialogColors returns the dialog color scheme
func (t *TelixTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: DOSBlue,
		Foreground: DOSWhite,
		Border:     DOSWhite,
		Title:      DOSWhite,
		FieldBg:    tcell.NewHexColor(0x000040), // darker blue
		FieldFg:    DOSWhite,
	}
}

// StatusColors returns the status bar color scheme
func (t *TelixTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: DOSBlue,
		Foreground: DOSLightGray,
		ErrorFg:    DOSLightRed,
	}
}

// StateColors returns the code state colours
func (t *TelixTheme) StateColors() StateColors {
	return StateColors{
		Empty:      DOSLightCyan,
		Incomplete: DOSYellow,
		Complete:   DOSLightGreen,
		Invalid:    DOSLightRed,
	}
}

// BorderStyle returns the border styling
func (t *TelixTheme) BorderStyle() BorderStyle {
	return BorderStyle{
		Color:      DOSLightGray,
		TitleColor: DOSLightGray,
		Padding:    0,
	}
}

package theme

import (
	"github.com/gdamore/tcell/v2"
)

// AtlasTheme uses the colours of the in-game glyph pad
type AtlasTheme struct{}

// NewAtlasTheme creates a new Atlas theme instance
func NewAtlasTheme() *AtlasTheme {
	return &AtlasTheme{}
}

func (t *AtlasTheme) Name() string {
	return "atlas"
}

func (t *AtlasTheme) DefaultColors() DefaultColors {
	return DefaultColors{
		Background: tcell.NewHexColor(0x101418),
		Foreground: tcell.NewHexColor(0xE0E6EA),
		Muted:      tcell.NewHexColor(0x6C7A86),
	}
}

func (t *AtlasTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: tcell.NewHexColor(0x101418),
		Foreground: tcell.NewHexColor(0xE0E6EA),
		Border:     tcell.NewHexColor(0x37B4B4),
		Title:      tcell.NewHexColor(0xFF9E4E),
		FieldBg:    tcell.NewHexColor(0x1C242C),
		FieldFg:    tcell.NewHexColor(0xFFFFFF),
	}
}

func (t *AtlasTheme) StatusColors() StatusColors {
	return StatusColors{
		Background: tcell.NewHexColor(0x1C242C),
		Foreground: tcell.NewHexColor(0xE0E6EA),
		ErrorFg:    tcell.NewHexColor(0xE04848),
	}
}

func (t *AtlasTheme) StateColors() StateColors {
	return StateColors{
		Empty:      tcell.NewHexColor(0x37B4B4),
		Incomplete: tcell.NewHexColor(0xFF9E4E),
		Complete:   tcell.NewHexColor(0x39B339),
		Invalid:    tcell.NewHexColor(0xE04848),
	}
}

func (t *AtlasTheme) BorderStyle() BorderStyle {
	return BorderStyle{
		Color:      tcell.NewHexColor(0x37B4B4),
		TitleColor: tcell.NewHexColor(0xFF9E4E),
		Padding:    1,
	}
}

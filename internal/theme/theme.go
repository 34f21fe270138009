package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"nmskit/internal/coords"
)

// DefaultColors defines default text colors for general use
type DefaultColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Muted      tcell.Color // Hints and labels
}

// DialogColors defines color scheme for the editor input field
type DialogColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	FieldBg    tcell.Color // Input field background
	FieldFg    tcell.Color // Input field text
}

// StatusColors defines color scheme for the status bar
type StatusColors struct {
	Background tcell.Color
	Foreground tcell.Color
	ErrorFg    tcell.Color
}

// StateColors colours a code by how far it parses
type StateColors struct {
	Empty      tcell.Color
	Incomplete tcell.Color
	Complete   tcell.Color
	Invalid    tcell.Color
}

// For returns the colour for a parse state
func (s StateColors) For(state coords.State) tcell.Color {
	switch state {
	case coords.StateEmpty:
		return s.Empty
	case coords.StateIncomplete:
		return s.Incomplete
	case coords.StateComplete:
		return s.Complete
	default:
		return s.Invalid
	}
}

// BorderStyle defines border styling options
type BorderStyle struct {
	Color      tcell.Color
	TitleColor tcell.Color
	Padding    int
}

// Theme interface defines all theming properties
type Theme interface {
	// Name returns the theme name
	Name() string

	DefaultColors() DefaultColors
	DialogColors() DialogColors
	StatusColors() StatusColors
	StateColors() StateColors

	// Border styling
	BorderStyle() BorderStyle
}

// ThemeManager manages theme selection and application
type ThemeManager struct {
	currentTheme Theme
	themes       map[string]Theme
}

// NewThemeManager creates a new theme manager
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes: make(map[string]Theme),
	}

	// Register built-in themes
	tm.RegisterTheme(NewTelixTheme())
	tm.RegisterTheme(NewAtlasTheme())

	// Set default theme
	tm.SetTheme("telix")

	return tm
}

// RegisterTheme registers a new theme
func (tm *ThemeManager) RegisterTheme(theme Theme) {
	tm.themes[theme.Name()] = theme
}

// SetTheme sets the current theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	if theme, exists := tm.themes[name]; exists {
		tm.currentTheme = theme
		return nil
	}
	return fmt.Errorf("theme '%s' not found (available: %s)", name, strings.Join(tm.Available(), ", "))
}

// Current returns the current theme
func (tm *ThemeManager) Current() Theme {
	return tm.currentTheme
}

// Available returns the sorted list of available theme names
func (tm *ThemeManager) Available() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global theme manager instance
var defaultThemeManager = NewThemeManager()

// GetThemeManager returns the global theme manager
func GetThemeManager() *ThemeManager {
	return defaultThemeManager
}

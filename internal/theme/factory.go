package theme

import (
	"github.com/rivo/tview"
)

// ThemedComponents provides convenience factory functions for creating themed components
// while still allowing manual styling using theme properties
type ThemedComponents struct {
	theme Theme
}

// NewThemedComponents creates a new themed components factory
func NewThemedComponents(theme Theme) *ThemedComponents {
	return &ThemedComponents{theme: theme}
}

// NewTextView creates a new bordered text view with theme applied
func (tc *ThemedComponents) NewTextView() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.DefaultColors()
	border := tc.theme.BorderStyle()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetBorderColor(border.Color)
	textView.SetTitleColor(border.TitleColor)
	textView.SetBorder(true)
	textView.SetBorderPadding(border.Padding, border.Padding, border.Padding, border.Padding)
	textView.SetDynamicColors(true)

	return textView
}

// NewInputField creates a new input field with theme applied
func (tc *ThemedComponents) NewInputField() *tview.InputField {
	input := tview.NewInputField()
	colors := tc.theme.DialogColors()

	input.SetBackgroundColor(colors.Background)
	input.SetFieldBackgroundColor(colors.FieldBg)
	input.SetFieldTextColor(colors.FieldFg)
	input.SetLabelColor(colors.Foreground)
	input.SetBorderColor(colors.Border)
	input.SetTitleColor(colors.Title)
	input.SetBorder(true)

	return input
}

// NewStatusBar creates a new text view styled for status bars
func (tc *ThemedComponents) NewStatusBar() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.StatusColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetDynamicColors(true)

	return textView
}

package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"nmskit/internal/config"
	"nmskit/internal/coords"
	"nmskit/internal/log"
	"nmskit/internal/theme"
)

// maxCodeLength fits the longest form with a little slack for spaces.
const maxCodeLength = 24

// GlyphEditor is the interactive code editor: one input line, a details
// panel that follows every keystroke and a status bar with shortcuts
type GlyphEditor struct {
	app       *tview.Application
	theme     theme.Theme
	shortcuts *ShortcutManager

	input   *tview.InputField
	details *tview.TextView
	status  *tview.TextView
	layout  *tview.Flex

	opts displayOptions
	last coords.Status
}

// NewGlyphEditor creates and configures the editor application
func NewGlyphEditor(cfg config.Config) (*GlyphEditor, error) {
	return newGlyphEditor(cfg, tview.NewApplication())
}

func newGlyphEditor(cfg config.Config, app *tview.Application) (*GlyphEditor, error) {
	tm := theme.GetThemeManager()
	if err := tm.SetTheme(strings.ToLower(cfg.UI.Theme)); err != nil {
		return nil, err
	}
	space, err := coords.ParseSpace(cfg.Output.CoordinateSpace)
	if err != nil {
		return nil, err
	}

	e := &GlyphEditor{
		app:       app,
		theme:     tm.Current(),
		shortcuts: NewShortcutManager(),
		opts: displayOptions{
			hex:   strings.EqualFold(cfg.Output.NumberFormat, config.FormatHex),
			space: space,
		},
	}
	e.setupUI()
	e.setupShortcuts()
	e.setCode(cfg.UI.InitialCode)
	return e, nil
}

// setupUI configures the layout
func (e *GlyphEditor) setupUI() {
	components := theme.NewThemedComponents(e.theme)

	e.input = components.NewInputField()
	e.input.SetTitle(" Code ")
	e.input.SetLabel("> ")
	e.input.SetAcceptanceFunc(tview.InputFieldMaxLength(maxCodeLength))
	e.input.SetChangedFunc(e.update)

	e.details = components.NewTextView()
	e.details.SetTitle(" Location ")

	e.status = components.NewStatusBar()

	e.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(e.input, 3, 0, true).
		AddItem(e.details, 0, 1, false).
		AddItem(e.status, 1, 0, false)

	e.app.SetRoot(e.layout, true).SetFocus(e.input)
}

// setupShortcuts registers the editor key bindings
func (e *GlyphEditor) setupShortcuts() {
	e.shortcuts.RegisterShortcut("f2", "dec/hex", e.toggleHex)
	e.shortcuts.RegisterShortcut("f3", "space", e.toggleSpace)
	e.shortcuts.RegisterShortcut("f5", "clear", e.clear)
	e.shortcuts.RegisterShortcut("esc", "quit", e.exit)

	e.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if e.shortcuts.HandleKeyEvent(event) {
			return nil
		}
		return event
	})
	e.refreshStatus()
}

// Run starts the editor
func (e *GlyphEditor) Run() error {
	return e.app.Run()
}

// update re-inspects the code after every change
func (e *GlyphEditor) update(text string) {
	st := coords.Inspect(text)
	if st.State != e.last.State {
		log.Debug("code state changed", "from", e.last.State.String(), "to", st.State.String(), "form", st.Form.String())
	}
	e.last = st

	color := e.theme.StateColors().For(st.State)
	e.input.SetFieldTextColor(color)
	e.input.SetBorderColor(color)
	e.details.SetText(renderDetails(st, e.opts, e.theme))
}

func (e *GlyphEditor) toggleHex() {
	e.opts.hex = !e.opts.hex
	e.rerender()
}

func (e *GlyphEditor) toggleSpace() {
	if e.opts.space == coords.SpaceSigned {
		e.opts.space = coords.SpaceGalactic
	} else {
		e.opts.space = coords.SpaceSigned
	}
	e.rerender()
}

// setCode replaces the input text
func (e *GlyphEditor) setCode(text string) {
	e.input.SetText(text)
	e.update(text)
}

func (e *GlyphEditor) clear() {
	e.setCode("")
}

func (e *GlyphEditor) exit() {
	e.app.Stop()
}

func (e *GlyphEditor) rerender() {
	e.details.SetText(renderDetails(e.last, e.opts, e.theme))
	e.refreshStatus()
}

func (e *GlyphEditor) refreshStatus() {
	format := "dec"
	if e.opts.hex {
		format = "hex"
	}
	e.status.SetText(" " + e.shortcuts.HelpLine() + "  │ " + format + ", " + e.opts.space.String())
}

package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// shortcut is a registered key binding
type shortcut struct {
	key      string
	help     string
	callback func()
}

// ShortcutManager maps key strings like "f2" or "alt+h" to callbacks.
// It is only used from the tview event loop, so it needs no locking.
type ShortcutManager struct {
	shortcuts map[string]shortcut
	order     []string
}

// NewShortcutManager creates a new shortcut manager
func NewShortcutManager() *ShortcutManager {
	return &ShortcutManager{
		shortcuts: make(map[string]shortcut),
	}
}

// RegisterShortcut registers a shortcut with its callback and a short help text
func (sm *ShortcutManager) RegisterShortcut(key, help string, callback func()) {
	if key == "" {
		return
	}
	key = normalizeShortcut(key)
	if _, exists := sm.shortcuts[key]; !exists {
		sm.order = append(sm.order, key)
	}
	sm.shortcuts[key] = shortcut{key: key, help: help, callback: callback}
}

// HandleKeyEvent runs the callback bound to the event, reporting whether
// there was one
func (sm *ShortcutManager) HandleKeyEvent(event *tcell.EventKey) bool {
	shortcutString := keyEventToString(event)
	if shortcutString == "" {
		return false
	}
	if s, exists := sm.shortcuts[shortcutString]; exists {
		s.callback()
		return true
	}
	return false
}

// HelpLine renders the shortcuts in registration order, e.g. "F2 hex  Esc quit"
func (sm *ShortcutManager) HelpLine() string {
	parts := make([]string, 0, len(sm.order))
	for _, key := range sm.order {
		parts = append(parts, displayKey(key)+" "+sm.shortcuts[key].help)
	}
	return strings.Join(parts, "  ")
}

func displayKey(key string) string {
	parts := strings.Split(key, "+")
	for i, p := range parts {
		switch {
		case len(p) > 1 && p[0] == 'f':
			parts[i] = strings.ToUpper(p)
		default:
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "+")
}

// keyEventToString converts a tcell.EventKey to a shortcut string
func keyEventToString(event *tcell.EventKey) string {
	var parts []string

	// Handle modifiers
	if event.Modifiers()&tcell.ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if event.Modifiers()&tcell.ModAlt != 0 {
		parts = append(parts, "alt")
	}

	if event.Key() == tcell.KeyRune {
		parts = append(parts, strings.ToLower(string(event.Rune())))
		return strings.Join(parts, "+")
	}

	// Special key
	switch event.Key() {
	case tcell.KeyF1:
		parts = append(parts, "f1")
	case tcell.KeyF2:
		parts = append(parts, "f2")
	case tcell.KeyF3:
		parts = append(parts, "f3")
	case tcell.KeyF4:
		parts = append(parts, "f4")
	case tcell.KeyF5:
		parts = append(parts, "f5")
	case tcell.KeyF10:
		parts = append(parts, "f10")
	case tcell.KeyEnter:
		parts = append(parts, "enter")
	case tcell.KeyEscape:
		parts = append(parts, "esc")
	case tcell.KeyTab:
		parts = append(parts, "tab")
	default:
		return "" // Unknown key
	}

	return strings.Join(parts, "+")
}

// normalizeShortcut converts a shortcut string to a consistent format
func normalizeShortcut(shortcut string) string {
	return strings.ToLower(strings.TrimSpace(shortcut))
}

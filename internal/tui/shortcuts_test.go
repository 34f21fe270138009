package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyEventToString(t *testing.T) {
	tests := []struct {
		event    *tcell.EventKey
		expected string
	}{
		{tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), "f2"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{tcell.NewEventKey(tcell.KeyRune, 'H', tcell.ModNone), "h"},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x"},
		{tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), ""},
	}

	for _, tt := range tests {
		if got := keyEventToString(tt.event); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestShortcutManager(t *testing.T) {
	sm := NewShortcutManager()
	calls := 0
	sm.RegisterShortcut("F2", "dec/hex", func() { calls++ })
	sm.RegisterShortcut("esc", "quit", func() {})
	sm.RegisterShortcut("", "ignored", func() { t.Errorf("empty shortcut should not register") })

	if !sm.HandleKeyEvent(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)) {
		t.Errorf("Expected F2 to be handled")
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
	if sm.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Errorf("Expected typed characters to pass through")
	}

	if got := sm.HelpLine(); got != "F2 dec/hex  Esc quit" {
		t.Errorf("Unexpected help line %q", got)
	}
}

package ansi

import "testing"

func TestColourCodes(t *testing.T) {
	if got := Red.Code(false); got != "\x1b[31m" {
		t.Errorf("Expected red code, got %q", got)
	}
	if got := Blue.Code(true); got != "\x1b[94m" {
		t.Errorf("Expected bright blue code, got %q", got)
	}
}

func TestPainter_Label(t *testing.T) {
	tests := []struct {
		name     string
		painter  Painter
		colour   Colour
		label    string
		value    any
		expected string
	}{
		{
			name:     "plain",
			painter:  Painter{},
			colour:   Red,
			label:    "Portal code",
			value:    "00380256EC6B",
			expected: "Portal code: 00380256EC6B",
		},
		{
			name:     "plain number",
			painter:  Painter{},
			colour:   Green,
			label:    "X",
			value:    -917,
			expected: "X: -917",
		},
		{
			name:     "coloured",
			painter:  Painter{Colour: true},
			colour:   Red,
			label:    "Portal code",
			value:    "00380256EC6B",
			expected: "\x1b[31mPortal code: \x1b[91m00380256EC6B\x1b[0m",
		},
		{
			name:     "coloured blue",
			painter:  Painter{Colour: true},
			colour:   Blue,
			label:    "Planet",
			value:    0,
			expected: "\x1b[34mPlanet: \x1b[94m0\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.painter.Label(tt.colour, tt.label, tt.value); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

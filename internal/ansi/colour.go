package ansi

import (
	"fmt"
	"strconv"
)

// Colour is one of the eight basic terminal colours
type Colour int

const (
	Black Colour = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Reset clears all colour attributes
const Reset = "\x1b[0m"

// Code returns the SGR escape sequence for the colour; bright selects the
// high-intensity variant
func (c Colour) Code(bright bool) string {
	base := 30
	if bright {
		base = 90
	}
	return "\x1b[" + strconv.Itoa(base+int(c)) + "m"
}

// Painter renders report lines. The zero value writes plain text, for output
// that is not a terminal.
type Painter struct {
	Colour bool
}

// Label renders "name: value" with the name in the colour and the value in
// its bright variant
func (p Painter) Label(c Colour, name string, value any) string {
	if !p.Colour {
		return fmt.Sprintf("%s: %v", name, value)
	}
	return fmt.Sprintf("%s%s: %s%v%s", c.Code(false), name, c.Code(true), value, Reset)
}

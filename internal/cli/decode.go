package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"nmskit/internal/ansi"
	"nmskit/internal/config"
	"nmskit/internal/coords"
)

// DecodeCoords prints every form and the derived values of each code. With
// no codes, or the single code "-", codes are read from stdin one per line.
func DecodeCoords(args []string, streams Streams) int {
	c := newCommand("decode_coords", "[flags] [CODE...]", streams)
	format := c.flags.String("f", "", "number format: dec or hex (default from config)")
	space := c.flags.String("s", "", "coordinate space for X, Y and Z: signed or galactic (default from config)")
	colour := c.flags.String("colour", "", "colour output: auto, always or never (default from config)")
	if code, ok := c.parse(args); !ok {
		return code
	}

	cfg := c.cfg
	out := &cfg.Output
	if *format != "" {
		out.NumberFormat = *format
	}
	if *space != "" {
		out.CoordinateSpace = *space
	}
	if *colour != "" {
		out.Colour = *colour
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(streams.Err, "decode_coords: %v\n", err)
		return ExitUsage
	}
	sp, err := coords.ParseSpace(out.CoordinateSpace)
	if err != nil {
		fmt.Fprintf(streams.Err, "decode_coords: %v\n", err)
		return ExitUsage
	}

	r := reporter{
		w:       streams.Out,
		painter: ansi.Painter{Colour: useColour(out.Colour, streams.OutIsTerminal)},
		space:   sp,
		hex:     strings.EqualFold(out.NumberFormat, config.FormatHex),
	}

	codes := c.flags.Args()
	if len(codes) == 0 || (len(codes) == 1 && codes[0] == "-") {
		return c.decodeStream(streams.In, r)
	}
	for i, input := range codes {
		if code := c.decodeOne(r, input, i > 0); code != ExitOK {
			return code
		}
	}
	return ExitOK
}

// reporter holds the output settings shared by every report
type reporter struct {
	w       io.Writer
	painter ansi.Painter
	space   coords.Space
	hex     bool
}

func (c *command) decodeStream(in io.Reader, r reporter) int {
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if code := c.decodeOne(r, input, n > 0); code != ExitOK {
			return code
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(c.streams.Err, "decode_coords: reading stdin: %v\n", err)
		return ExitUsage
	}
	return ExitOK
}

// decodeOne writes the report for one code, or nothing if it fails.
func (c *command) decodeOne(r reporter, input string, separate bool) int {
	res, err := c.convert(input, r.space)
	if err != nil {
		return c.fail(input, err)
	}

	var buf bytes.Buffer
	if separate {
		buf.WriteString("\n")
	}
	r.write(&buf, res)
	if _, err := r.w.Write(buf.Bytes()); err != nil {
		fmt.Fprintf(c.streams.Err, "decode_coords: %v\n", err)
		return ExitUsage
	}
	return ExitOK
}

func (r reporter) write(w io.Writer, res *coords.Result) {
	d := res.Derived
	p, hex := r.painter, r.hex
	lines := []string{
		p.Label(ansi.Red, "Portal code", res.Codes[coords.FormPortal]),
		p.Label(ansi.Red, "Galactic coords", res.Codes[coords.FormGalactic]),
		p.Label(ansi.Red, "Booster code", res.Codes[coords.FormBooster]),
		p.Label(ansi.Red, "XYZ", res.Location.XYZ()),
		p.Label(ansi.Green, "Coord space", d.Space),
		p.Label(ansi.Green, "X", coords.FormatNumber(d.X, hex)),
		p.Label(ansi.Green, "Y", coords.FormatNumber(d.Y, hex)),
		p.Label(ansi.Green, "Z", coords.FormatNumber(d.Z, hex)),
		p.Label(ansi.Blue, "Star system", d.StarSystemLabel(hex)),
		p.Label(ansi.Blue, "Planet", coords.FormatNumber(d.Planet, hex)),
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func useColour(mode string, terminal bool) bool {
	switch strings.ToLower(mode) {
	case config.ColourAlways:
		return true
	case config.ColourNever:
		return false
	default:
		return terminal
	}
}

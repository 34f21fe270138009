package cli

import (
	"fmt"

	"nmskit/internal/coords"
)

// Booster2Portal prints the portal address for a signal booster code (or
// any other form).
func Booster2Portal(args []string, streams Streams) int {
	c := newCommand("booster2portal", "[flags] <BOOSTER CODE>", streams)
	if code, ok := c.parse(args); !ok {
		return code
	}
	input, ok := c.singleCode()
	if !ok {
		return ExitUsage
	}

	res, err := c.convert(input, coords.SpaceSigned, coords.FormPortal)
	if err != nil {
		return c.fail(input, err)
	}
	fmt.Fprintln(streams.Out, res.Codes[coords.FormPortal])
	return ExitOK
}

// Portal2Booster prints the signal booster code for a portal address (or any
// other form). -g prints galactic coordinates instead.
func Portal2Booster(args []string, streams Streams) int {
	c := newCommand("portal2booster", "[flags] <PORTAL CODE>", streams)
	sep := c.flags.String("s", "", "output group separator (default from config)")
	galactic := c.flags.Bool("g", false, "print galactic coordinates instead of the booster code")
	if code, ok := c.parse(args); !ok {
		return code
	}
	input, ok := c.singleCode()
	if !ok {
		return ExitUsage
	}
	if *sep == "" {
		*sep = c.cfg.Output.Separator
	}

	res, err := c.convert(input, coords.SpaceSigned)
	if err != nil {
		return c.fail(input, err)
	}
	if *galactic {
		fmt.Fprintln(streams.Out, res.Location.GalacticWithSeparator(*sep))
	} else {
		fmt.Fprintln(streams.Out, res.Location.BoosterWithSeparator(*sep))
	}
	return ExitOK
}

// XYZ prints XXXX:YYYY:ZZZZ for the plotting scripts.
func XYZ(args []string, streams Streams) int {
	c := newCommand("xyz", "[flags] <CODE>", streams)
	if code, ok := c.parse(args); !ok {
		return code
	}
	input, ok := c.singleCode()
	if !ok {
		return ExitUsage
	}

	res, err := c.convert(input, coords.SpaceSigned, coords.FormGalactic)
	if err != nil {
		return c.fail(input, err)
	}
	fmt.Fprintln(streams.Out, res.Location.XYZ())
	return ExitOK
}

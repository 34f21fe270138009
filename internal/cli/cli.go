// Package cli implements the coordinate command line tools. Each command is
// a function over its arguments and streams so it can be tested without a
// process; cmd/<name>/main.go only wires os.Args and the real streams.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"nmskit/internal/config"
	"nmskit/internal/coords"
	"nmskit/internal/log"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1 // malformed input or out-of-range field
	ExitUsage = 2
)

// Streams bundles the process streams a command uses.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// OutIsTerminal enables colour when output.colour is auto.
	OutIsTerminal bool
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{
		In:            os.Stdin,
		Out:           os.Stdout,
		Err:           os.Stderr,
		OutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// command holds the flags every tool shares.
type command struct {
	name       string
	usage      string
	flags      *flag.FlagSet
	configPath *string
	verbose    *bool
	streams    Streams
	cfg        config.Config
}

func newCommand(name, usage string, streams Streams) *command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(streams.Err)
	c := &command{
		name:       name,
		usage:      usage,
		flags:      fs,
		configPath: fs.String("config", config.DefaultPath, "path to YAML config"),
		verbose:    fs.Bool("v", false, "debug logging to stderr"),
		streams:    streams,
	}
	fs.Usage = func() {
		fmt.Fprintf(streams.Err, "usage: %s %s\n", name, usage)
		fs.PrintDefaults()
	}
	return c
}

// parse parses flags and loads config. When ok is false the command stops
// and returns code; -h stops with ExitOK.
func (c *command) parse(args []string) (code int, ok bool) {
	if err := c.flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK, false
		}
		return ExitUsage, false
	}

	cfg, err := config.Load(*c.configPath)
	if err != nil {
		fmt.Fprintf(c.streams.Err, "%s: %v\n", c.name, err)
		return ExitUsage, false
	}
	c.cfg = cfg

	log.SetOutput(c.streams.Err)
	if cfg.Log.File != "" {
		if err := log.SetFileOutput(cfg.Log.File); err != nil {
			log.Warn("could not open log file, logging to stderr", "command", c.name, "file", cfg.Log.File, "error", err)
		}
	}
	level := cfg.Log.Level
	if *c.verbose {
		level = "debug"
	}
	if err := log.SetLevel(level); err != nil {
		fmt.Fprintf(c.streams.Err, "%s: %v\n", c.name, err)
		return ExitUsage, false
	}
	return ExitOK, true
}

// singleCode returns the only positional argument.
func (c *command) singleCode() (string, bool) {
	if c.flags.NArg() != 1 {
		c.flags.Usage()
		return "", false
	}
	return c.flags.Arg(0), true
}

// fail reports a conversion error verbatim and returns the exit code.
func (c *command) fail(input string, err error) int {
	log.Debug("conversion failed", "command", c.name, "input", input, "error", err)
	fmt.Fprintln(c.streams.Err, err)
	if errors.Is(err, coords.ErrMalformedInput) || errors.Is(err, coords.ErrRange) {
		return ExitError
	}
	return ExitUsage
}

// convert runs the codec and logs what was detected.
func (c *command) convert(input string, space coords.Space, targets ...coords.Form) (*coords.Result, error) {
	res, err := coords.Convert(input, space, targets...)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded", "command", c.name, "input", input, "form", res.Source.String(), "location", fmt.Sprintf("%#v", res.Location))
	return res, nil
}

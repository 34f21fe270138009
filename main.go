package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/mattn/go-isatty"

	"nmskit/internal/config"
	"nmskit/internal/log"
	"nmskit/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to YAML config")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("nmskit %s (%s, %s)\n", version, commit, date)
		return
	}

	// Set up global panic handler first
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "Application crashed. See nmskit_debug.log for details.\n")
			os.Exit(1)
		}
	}()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nmskit: %v\n", err)
		os.Exit(2)
	}

	// The editor owns the terminal, so logs always go to a file
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "nmskit_debug.log"
	}
	if err := log.SetFileOutput(logFile); err != nil {
		fmt.Printf("Warning: Could not configure debug logging to file: %v\n", err)
	}
	defer log.Close()
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "nmskit: %v\n", err)
		os.Exit(2)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		log.Error("SIGNAL RECEIVED", "signal", sig.String())
		os.Exit(1)
	}()

	// Check if we have a proper TTY
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("nmskit glyph editor")
		fmt.Println("This application requires a terminal/TTY to run properly.")
		fmt.Println("Use booster2portal, portal2booster, xyz or decode_coords for scripting.")
		os.Exit(1)
	}

	editor, err := tui.NewGlyphEditor(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nmskit: %v\n", err)
		os.Exit(2)
	}
	log.Info("glyph editor starting", "version", version, "theme", cfg.UI.Theme)
	if err := editor.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

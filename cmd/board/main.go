package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/board/internal/config"
	"github.com/idilsaglam/board/internal/tui"
)

func main() {
	// Root flags override the config file and env.
	theme := flag.String("theme", "", "color theme (classic|mono)")
	noMouse := flag.Bool("no-mouse", false, "disable mouse drag and drop")
	debug := flag.String("debug", "", "write a debug log to this file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *noMouse {
		cfg.Mouse = false
	}
	if *debug != "" {
		cfg.Debug = *debug
	}

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

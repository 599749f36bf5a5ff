// Command clothsim runs the cloth simulation in a terminal.
//
// Mouse: button 1 grabs the nearest point (or releases it), buttons 2/3 pin
// or free the held point. Keys: g regenerate, t cycle spring view, +/-
// iterations, [/] stiffness, q or Esc quit.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "clothsim: %v\n", err)
		os.Exit(2)
	}

	// The terminal belongs to tcell; the log goes to a file or nowhere.
	log.SetOutput(io.Discard)
	if o.logTo != "" {
		f, err := os.OpenFile(o.logTo, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "clothsim: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	log.Printf("start: %dx%d pin=%s iterations=%d", o.cfg.Width, o.cfg.Height, o.cfg.Pin, o.cfg.Iterations)

	a, err := newApp(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}

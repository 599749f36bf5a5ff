package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/cloth2d/builder"
	"github.com/katalvlaran/cloth2d/cloth"
)

// options are the host settings collected from the command line.
type options struct {
	cfg   cloth.Config
	tick  time.Duration
	sound bool
	logTo string
}

// parseFlags reads args (without the program name) into options.
func parseFlags(args []string) (options, error) {
	def := cloth.DefaultConfig()
	o := options{cfg: def}
	var pin string

	fs := flag.NewFlagSet("clothsim", flag.ContinueOnError)
	fs.IntVar(&o.cfg.Width, "width", def.Width, "points per row")
	fs.IntVar(&o.cfg.Height, "height", def.Height, "points per column")
	fs.Float64Var(&o.cfg.SpacingX, "dx", def.SpacingX, "horizontal spacing")
	fs.Float64Var(&o.cfg.SpacingY, "dy", def.SpacingY, "vertical spacing")
	fs.Float64Var(&o.cfg.Mass, "mass", def.Mass, "point mass")
	fs.Float64Var(&o.cfg.Stiffness, "stiffness", def.Stiffness, "spring stiffness")
	fs.Float64Var(&o.cfg.TearThreshold, "tear", def.TearThreshold, "tear distance")
	fs.IntVar(&o.cfg.Iterations, "iterations", def.Iterations, "relaxation passes per tick")
	fs.Float64Var(&o.cfg.MouseRadius, "radius", def.MouseRadius, "grab radius in world units")
	fs.Float64Var(&o.cfg.Gravity, "gravity", def.Gravity, "vertical acceleration")
	fs.StringVar(&pin, "pin", def.Pin.String(), `pinned points: "none" or top-row|top-right|top-corners`)
	fs.DurationVar(&o.tick, "tick", 16*time.Millisecond, "simulation step")
	fs.BoolVar(&o.sound, "sound", false, "click when springs tear")
	fs.StringVar(&o.logTo, "log", "", "write the log to this file")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	p, err := parsePin(pin)
	if err != nil {
		return options{}, err
	}
	o.cfg.Pin = p
	if o.tick <= 0 {
		return options{}, fmt.Errorf("tick must be > 0, got %s", o.tick)
	}

	return o, o.cfg.Validate()
}

// parsePin parses the PinPolicy.String form; "," also separates rules.
func parsePin(s string) (builder.PinPolicy, error) {
	p := builder.PinNone
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		switch strings.TrimSpace(part) {
		case "none":
		case "top-row":
			p |= builder.PinTopRow
		case "top-right":
			p |= builder.PinTopRight
		case "top-corners":
			p |= builder.PinTopCorners
		default:
			return builder.PinNone, fmt.Errorf("unknown pin rule %q", part)
		}
	}

	return p, nil
}

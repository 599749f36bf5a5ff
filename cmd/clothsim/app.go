package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/cloth2d/cloth"
	"github.com/katalvlaran/cloth2d/core"
)

// Stiffness and iteration steps for the live-tuning keys.
const (
	stiffnessStep = 0.005
	iterationStep = 1
)

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	stylePoint  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatic = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHeld   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	springStyles = map[core.Category]tcell.Style{
		core.Structural: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		core.Shear:      tcell.StyleDefault.Foreground(tcell.ColorTeal),
		core.Flexion:    tcell.StyleDefault.Foreground(tcell.ColorPurple),
	}
)

// app couples a cloth System to a tcell screen.
type app struct {
	screen tcell.Screen
	sys    *cloth.System
	sound  *clicker
	tick   time.Duration

	view    cloth.View
	vp      viewport
	mouse   mgl64.Vec2 // world position under the pointer
	buttons tcell.ButtonMask
	frags   int
}

func newApp(o options) (*app, error) {
	sys, err := cloth.New(o.cfg)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	a := &app{screen: screen, sys: sys, tick: o.tick, sound: &clicker{}}
	if o.sound {
		s, err := newClicker()
		if err != nil {
			// Non-fatal, the cloth runs without sound
			log.Printf("audio init failed: %v", err)
		}
		a.sound = s
	}
	a.refit()
	a.frags = sys.Stats().Fragments

	return a, nil
}

// refit frames the configured cloth in the current screen.
func (a *app) refit() {
	cols, rows := a.screen.Size()
	cfg := a.sys.Config()
	a.vp = fitViewport(cols, rows,
		float64(cfg.Width-1)*cfg.SpacingX,
		float64(cfg.Height-1)*cfg.SpacingY)
}

func (a *app) run() {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	dt := a.tick.Seconds()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			torn := a.sys.Step(dt, a.mouse)
			if torn > 0 {
				a.sound.click(torn)
				if frags := a.sys.Stats().Fragments; frags != a.frags {
					log.Printf("cloth split: %d fragments", frags)
					a.frags = frags
				}
			}
			a.draw()
		}
	}
}

// handleEvent applies one input event; false means quit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		a.refit()
	}

	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	cfg := a.sys.Config()
	var err error
	switch ev.Rune() {
	case 'q':
		return false
	case 'g':
		if err = a.sys.Regenerate(); err == nil {
			a.refit()
			a.frags = a.sys.Stats().Fragments
			log.Printf("regenerated: generation %d", a.sys.Stats().Generation)
		}
	case 't':
		a.view = a.view.Next()
	case '+', '=':
		err = a.sys.SetIterations(cfg.Iterations + iterationStep)
	case '-':
		err = a.sys.SetIterations(cfg.Iterations - iterationStep)
	case ']':
		err = a.sys.SetStiffness(cfg.Stiffness + stiffnessStep)
	case '[':
		err = a.sys.SetStiffness(cfg.Stiffness - stiffnessStep)
	}
	if err != nil {
		log.Printf("key %q: %v", ev.Rune(), err)
	}

	return true
}

// handleMouse tracks the pointer and reacts to button presses (not holds):
// button 1 grabs or releases, buttons 2 and 3 pin or free the held point.
func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	a.mouse = a.vp.toWorld(x, y)

	pressed := ev.Buttons() &^ a.buttons
	a.buttons = ev.Buttons()

	switch {
	case pressed&tcell.Button1 != 0:
		if _, held := a.sys.Hold().Held(); held {
			a.sys.Release()
		} else if a.sys.Grab(a.mouse) {
			log.Printf("grab %s at %v", a.sys.Hold(), a.mouse)
		}
	case pressed&(tcell.Button2|tcell.Button3) != 0:
		a.sys.ToggleHeldStatic()
	}
}

func (a *app) draw() {
	a.screen.Clear()

	points := a.sys.Points()
	for _, sp := range a.sys.VisibleSprings(a.view) {
		x0, y0 := a.vp.toCell(points[sp.A].Pos)
		x1, y1 := a.vp.toCell(points[sp.B].Pos)
		style := springStyles[sp.Category]
		line(x0, y0, x1, y1, func(x, y int) {
			a.screen.SetContent(x, y, '·', nil, style)
		})
	}

	held, isHeld := a.sys.Hold().Held()
	for _, p := range points {
		x, y := a.vp.toCell(p.Pos)
		switch {
		case isHeld && p.ID == held:
			a.screen.SetContent(x, y, '@', nil, styleHeld)
		case p.Static:
			a.screen.SetContent(x, y, 'O', nil, styleStatic)
		default:
			a.screen.SetContent(x, y, 'o', nil, stylePoint)
		}
	}

	a.drawStatus()
	a.screen.Show()
}

func (a *app) drawStatus() {
	st := a.sys.Stats()
	cfg := a.sys.Config()
	text := fmt.Sprintf(" gen %d | points %d | springs %d/%d torn %d | pieces %d | iter %d k %.3f | view %s | %s | g t +- [] q ",
		st.Generation, st.Points, st.Active, st.Springs, st.Torn, a.frags,
		cfg.Iterations, cfg.Stiffness, a.view, a.sys.Hold())

	cols, _ := a.screen.Size()
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		a.screen.SetContent(x, 0, r, nil, styleStatus)
	}
}

func (a *app) cleanup() {
	a.sound.close()
	a.screen.Fini()
}

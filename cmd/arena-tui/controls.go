package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

// holdFrames is how long one key press keeps the player moving. Terminals
// report repeats but never releases.
const holdFrames = 8

// controls turns key presses into intents. Aim always follows the
// autopilot's target because a terminal has no cursor to aim with.
type controls struct {
	move      game.Vec2
	holdLeft  int
	fire      bool
	autopilot bool
}

func (c *controls) press(dir game.Vec2) {
	c.move = dir
	c.holdLeft = holdFrames
}

// frame ages the held direction by one frame.
func (c *controls) frame() {
	if c.holdLeft == 0 {
		return
	}
	c.holdLeft--
	if c.holdLeft == 0 {
		c.move = game.Vec2{}
	}
}

func (c *controls) intent(r *game.Run, ap *game.Autopilot) game.Intent {
	in := ap.Intent(r)
	if c.autopilot {
		return in
	}
	in.Move = c.move
	in.Fire = c.fire
	return in
}

// app is the terminal session around one Run.
type app struct {
	run    *game.Run
	pilot  *game.Autopilot
	ctl    controls
	paused bool

	status     string
	statusLeft int
}

// statusFrames is how long a status message stays on screen.
const statusFrames = 120

func (a *app) setStatus(msg string) {
	a.status = msg
	a.statusLeft = statusFrames
}

func newApp(r *game.Run, autopilot bool) *app {
	return &app{run: r, pilot: game.NewAutopilot(), ctl: controls{autopilot: autopilot, fire: true}}
}

// key applies one key press and reports whether the session continues.
func (a *app) key(k tcell.Key, ch rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.ctl.autopilot = !a.ctl.autopilot
		return true
	case tcell.KeyUp:
		a.ctl.press(game.V(0, -1))
		return true
	case tcell.KeyDown:
		a.ctl.press(game.V(0, 1))
		return true
	case tcell.KeyLeft:
		a.ctl.press(game.V(-1, 0))
		return true
	case tcell.KeyRight:
		a.ctl.press(game.V(1, 0))
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ch {
	case 'q':
		return false
	case 'w':
		a.ctl.press(game.V(0, -1))
	case 's':
		a.ctl.press(game.V(0, 1))
	case 'a':
		a.ctl.press(game.V(-1, 0))
	case 'd':
		a.ctl.press(game.V(1, 0))
	case ' ':
		a.ctl.fire = !a.ctl.fire
	case 'p':
		a.paused = !a.paused
	case 'r':
		if a.run.Over() {
			a.run = a.run.Restart()
			a.paused = false
			a.setStatus("new run")
		}
	case 'b':
		a.setStatus(a.shop())
	}
	return true
}

// shop spends the coins on the cheapest upgrades first.
func (a *app) shop() string {
	bought := a.pilot.Shop(a.run)
	if len(bought) == 0 {
		return "nothing affordable"
	}
	spent := 0
	for _, p := range bought {
		spent += p.Cost
	}
	return fmt.Sprintf("bought %d upgrades for %d", len(bought), spent)
}

// advance moves the run forward by one frame of dt seconds.
func (a *app) advance(dt float64) {
	a.ctl.frame()
	if a.statusLeft > 0 {
		a.statusLeft--
	}
	a.run.SetPaused(a.paused)
	a.run.Advance(dt, a.ctl.intent(a.run, a.pilot))
}

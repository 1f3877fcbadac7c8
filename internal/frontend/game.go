// Package frontend is the ebiten window for the arena: it decodes input into
// intents, advances the run at a fixed tick rate and draws every population,
// the HUD and the shop, item, console and admin panels.
package frontend

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

// borderWidth is the pixel gap between the window edge and the arena.
const borderWidth = 16

// statusFrames is how long a status line stays on screen.
const statusFrames = 150

var digitKeys = [10]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var numpadKeys = [10]ebiten.Key{
	ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
	ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
}

// Game implements ebiten.Game around one Run. Restarting swaps the Run but
// keeps its dispatcher, so listeners attached once stay attached.
type Game struct {
	run *game.Run

	width  int
	height int
	offX   int
	offY   int

	history *History
	console *Console
	admin   *AdminPanel
	shop    Shop

	userPaused bool
	quitting   bool

	status     string
	statusLeft int
	frame      int

	face *text.GoXFace
	runs int
}

// New wraps r in a window-sized game. The run should already carry the
// restored profile.
func New(r *game.Run) *Game {
	h := NewHistory(historyCapacity)
	r.Events.SubscribeAll(h)
	g := &Game{
		run:     r,
		width:   int(r.Bounds.W) + 2*borderWidth,
		height:  int(r.Bounds.H) + 2*borderWidth,
		offX:    borderWidth,
		offY:    borderWidth,
		history: h,
		console: NewConsole(h),
		admin:   NewAdminPanel(),
		face:    text.NewGoXFace(basicfont.Face7x13),
		runs:    1,
	}
	h.Add(0, "game", "F1 console  F2 admin  B shop  N items  Esc pause")
	return g
}

// Run returns the live run.
func (g *Game) Run() *game.Run { return g.run }

// Size is the window size in pixels.
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	g.frame++
	if g.statusLeft > 0 {
		g.statusLeft--
	}
	g.handleInput()
	if g.quitting {
		return ebiten.Termination
	}

	g.run.SetPaused(g.frozen())
	g.run.Advance(1/float64(ebiten.TPS()), g.intent())
	return nil
}

// frozen is true while any overlay holds the simulation still.
func (g *Game) frozen() bool {
	return g.userPaused || g.shop.Mode != PanelNone || g.console.Open || g.admin.Open
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func (g *Game) setStatus(msg string) {
	if msg == "" {
		return
	}
	g.status = msg
	g.statusLeft = statusFrames
}

func (g *Game) restart() {
	g.run = g.run.Restart()
	g.runs++
	g.userPaused = false
	g.shop.Close()
	g.history.Add(0, "game", fmt.Sprintf("run %d started", g.runs))
}

// justPressedDigit reports the digit key pressed this frame, if any.
func justPressedDigit() (int, bool) {
	for d := 0; d < 10; d++ {
		if inpututil.IsKeyJustPressed(digitKeys[d]) || inpututil.IsKeyJustPressed(numpadKeys[d]) {
			return d, true
		}
	}
	return 0, false
}

func enterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

// handleInput processes edge-triggered keys. Overlays capture input in the
// order console, admin panel, pause menu, purchase panels.
func (g *Game) handleInput() {
	if g.console.Open {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyF1), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.console.Toggle()
		case enterPressed():
			g.console.Submit(g.run)
		case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
			g.console.Backspace()
		default:
			g.console.Type(ebiten.AppendInputChars(nil))
		}
		return
	}

	if g.admin.Open {
		g.handleAdminInput()
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.console.Toggle()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		g.admin.Show()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.userPaused = !g.userPaused
		g.shop.Close()
		return
	}

	if g.userPaused || g.run.Over() {
		switch {
		case g.userPaused && inpututil.IsKeyJustPressed(ebiten.KeyP):
			g.userPaused = false
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.restart()
		case g.userPaused && inpututil.IsKeyJustPressed(ebiten.KeyQ):
			g.quitting = true
		}
		if g.userPaused {
			return
		}
	}

	if g.run.Player.Alive() {
		if inpututil.IsKeyJustPressed(ebiten.KeyB) {
			g.shop.Toggle(PanelShop)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.shop.Toggle(PanelItems)
		}
	}
	if g.shop.Mode == PanelNone {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.shop.SetPage(g.shop.Page - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.shop.SetPage(g.shop.Page + 1)
	}
	if d, ok := justPressedDigit(); ok {
		if id, ok := g.shop.Select(d); ok {
			g.buy(id)
		}
	}
}

func (g *Game) handleAdminInput() {
	a := g.admin
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.Hide()
		return
	}
	if !a.Authenticated {
		switch {
		case enterPressed():
			if a.Submit() {
				g.setStatus("admin unlocked")
			} else {
				g.setStatus("wrong password")
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
			a.Backspace()
		default:
			a.Type(ebiten.AppendInputChars(nil))
		}
		return
	}
	if d, ok := justPressedDigit(); ok {
		g.setStatus(a.Action(g.run, g.history, d))
	}
}

func (g *Game) buy(id game.UpgradeID) {
	res := g.run.Buy(id)
	if !res.OK {
		g.setStatus(fmt.Sprintf("%s: %s", id, res.Reason))
		return
	}
	msg := fmt.Sprintf("bought %s for %d", id, res.Cost)
	if id == game.ItemChest {
		msg = "chest: " + res.Reason
	}
	g.setStatus(msg)
}

// intent decodes movement, aim and fire for the next tick. Aim is the cursor
// in arena coordinates.
func (g *Game) intent() game.Intent {
	var in game.Intent
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Move.X++
	}
	mx, my := ebiten.CursorPosition()
	in.Aim = game.V(float64(mx-g.offX), float64(my-g.offY))
	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	return in
}

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

// hudRows is the number of terminal rows reserved under the arena.
const hudRows = 2

var (
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleGod     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleShooter = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleCoin    = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleBlast   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

type cell struct {
	ch    rune
	style tcell.Style
}

// frame is an off-screen character buffer the run is drawn into before it
// is copied to the terminal.
type frame struct {
	w, h  int
	cells []cell
}

func newFrame(w, h int) *frame {
	f := &frame{w: max(w, 0), h: max(h, 0)}
	f.cells = make([]cell, f.w*f.h)
	f.clear()
	return f
}

func (f *frame) clear() {
	for i := range f.cells {
		f.cells[i] = cell{ch: ' ', style: tcell.StyleDefault}
	}
}

func (f *frame) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.cells[y*f.w+x] = cell{ch: ch, style: style}
}

func (f *frame) at(x, y int) rune {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return 0
	}
	return f.cells[y*f.w+x].ch
}

func (f *frame) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		f.set(x, y, ch, style)
		x++
	}
}

// blit copies the frame to the screen. The caller calls Show.
func (f *frame) blit(s tcell.Screen) {
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			c := f.cells[y*f.w+x]
			s.SetContent(x, y, c.ch, nil, c.style)
		}
	}
}

// viewport maps arena coordinates onto the terminal cells inside the border.
type viewport struct {
	bounds     game.Bounds
	cols, rows int // interior size in cells
}

func newViewport(b game.Bounds, screenW, screenH int) viewport {
	return viewport{bounds: b, cols: max(screenW-2, 1), rows: max(screenH-2-hudRows, 1)}
}

func (v viewport) cell(p game.Vec2) (int, int) {
	x := int(p.X / v.bounds.W * float64(v.cols))
	y := int(p.Y / v.bounds.H * float64(v.rows))
	return 1 + min(max(x, 0), v.cols-1), 1 + min(max(y, 0), v.rows-1)
}

// drawRun renders r into f. Later layers overwrite earlier ones so the
// player and enemies stay visible over bullets and coins.
func drawRun(f *frame, r *game.Run, autopilot bool) {
	f.clear()
	v := newViewport(r.Bounds, f.w, f.h)
	drawBorder(f, v)

	for _, c := range r.Coins {
		x, y := v.cell(c.Pos)
		f.set(x, y, '$', styleCoin)
	}
	for _, ex := range r.Explosions {
		x, y := v.cell(ex.Pos)
		f.set(x, y, '*', styleBlast)
	}
	for _, b := range r.Bullets {
		x, y := v.cell(b.Pos)
		f.set(x, y, '.', styleBullet)
	}
	for _, eb := range r.EnemyBullets {
		x, y := v.cell(eb.Pos)
		f.set(x, y, 'o', styleShot)
	}
	for _, e := range r.EnemyViews() {
		x, y := v.cell(e.Pos)
		switch e.Kind {
		case game.EnemyBoss:
			f.set(x, y, 'B', styleBoss)
		case game.EnemyShooter:
			f.set(x, y, 's', styleShooter)
		default:
			f.set(x, y, 'e', styleEnemy)
		}
	}
	if r.Player.Alive() {
		x, y := v.cell(r.Player.Pos)
		st := stylePlayer
		if r.Player.GodMode {
			st = styleGod
		}
		f.set(x, y, '@', st)
	}

	drawHUD(f, r.HUD(), autopilot)
}

func drawBorder(f *frame, v viewport) {
	right, bottom := v.cols+1, v.rows+1
	for x := 1; x < right; x++ {
		f.set(x, 0, '-', styleBorder)
		f.set(x, bottom, '-', styleBorder)
	}
	for y := 1; y < bottom; y++ {
		f.set(0, y, '|', styleBorder)
		f.set(right, y, '|', styleBorder)
	}
	for _, c := range [][2]int{{0, 0}, {right, 0}, {0, bottom}, {right, bottom}} {
		f.set(c[0], c[1], '+', styleBorder)
	}
}

func drawHUD(f *frame, h game.HUDView, autopilot bool) {
	y := f.h - hudRows
	line := fmt.Sprintf("HP %d/%d  AR %d  $%d  score %d  lvl %d  kills %d/%d",
		h.Health, h.MaxHealth, h.Armor, h.Coins, h.Score, h.Level, h.Kills, h.KillsRequired)
	if h.GodMode {
		line += "  GOD"
	}
	f.text(1, y, line, styleHUD)

	var status string
	switch {
	case !h.Alive:
		status = "GAME OVER  r restart  q quit"
	case h.Paused:
		status = "PAUSED  p resume  q quit"
	case h.BossBanner:
		status = "BOSS INCOMING"
	case h.LevelTransition:
		status = fmt.Sprintf("LEVEL %d", h.Level)
	case autopilot:
		status = "autopilot  tab manual  b shop  p pause"
	default:
		status = "wasd/arrows move  space fire  tab autopilot  b shop  p pause"
	}
	st := styleHUD
	if !h.Alive || h.BossBanner || h.LevelTransition {
		st = styleBanner
	}
	f.text(1, y+1, status, st)
}

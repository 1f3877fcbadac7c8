package frontend

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

const (
	lineHeight = 15
	gridSize   = 48
)

var (
	colBackdrop   = color.RGBA{R: 12, G: 14, B: 18, A: 255}
	colArena      = color.RGBA{R: 22, G: 26, B: 34, A: 255}
	colGrid       = color.RGBA{R: 34, G: 40, B: 52, A: 255}
	colBorder     = color.RGBA{R: 70, G: 90, B: 120, A: 255}
	colText       = color.RGBA{R: 225, G: 230, B: 240, A: 255}
	colDim        = color.RGBA{R: 140, G: 150, B: 165, A: 255}
	colAccent     = color.RGBA{R: 240, G: 90, B: 90, A: 255}
	colPlayer     = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	colGodRing    = color.RGBA{R: 255, G: 215, B: 80, A: 255}
	colMagnet     = color.RGBA{R: 90, G: 170, B: 255, A: 40}
	colBullet     = color.RGBA{R: 250, G: 250, B: 210, A: 255}
	colEnemyShot  = color.RGBA{R: 255, G: 120, B: 60, A: 255}
	colPlain      = color.RGBA{R: 220, G: 70, B: 80, A: 255}
	colShooter    = color.RGBA{R: 240, G: 150, B: 50, A: 255}
	colBoss       = color.RGBA{R: 170, G: 80, B: 220, A: 255}
	colCoin       = color.RGBA{R: 255, G: 210, B: 60, A: 255}
	colArmor      = color.RGBA{R: 150, G: 190, B: 210, A: 255}
	colEmptyHeart = color.RGBA{R: 80, G: 90, B: 100, A: 255}
	colPanel      = color.RGBA{R: 8, G: 10, B: 14, A: 230}
	colPanelEdge  = color.RGBA{R: 70, G: 100, B: 140, A: 200}
	colShade      = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackdrop)
	r := g.run
	ox, oy := float32(g.offX), float32(g.offY)
	w, h := float32(r.Bounds.W), float32(r.Bounds.H)

	vector.FillRect(screen, ox, oy, w, h, colArena, false)
	drawGridOffset(screen, g.offX, g.offY, int(r.Bounds.W), int(r.Bounds.H), gridSize, colGrid)
	vector.StrokeRect(screen, ox-1, oy-1, w+2, h+2, 2.0, colBorder, false)

	g.drawWorld(screen)
	g.drawHUD(screen)

	switch {
	case g.console.Open:
		g.drawConsole(screen)
	case g.admin.Open:
		g.drawAdmin(screen)
	case g.shop.Mode != PanelNone:
		g.drawShop(screen)
	case g.userPaused:
		g.drawCentered(screen, []string{"PAUSED", "", "P / Esc  resume", "R  restart", "Q  save and quit"})
	case r.Over():
		g.drawCentered(screen, []string{
			"GAME OVER",
			fmt.Sprintf("score %d  level %d", r.Score, r.Spawner.Level),
			"",
			"R  restart (upgrades and coins are kept)",
		})
	}
	if g.statusLeft > 0 {
		g.drawText(screen, g.status, float64(g.offX+8), float64(g.height-g.offY-lineHeight-4), colText)
	}
}

// drawWorld renders every population in arena coordinates.
func (g *Game) drawWorld(screen *ebiten.Image) {
	r := g.run
	ox, oy := float32(g.offX), float32(g.offY)
	at := func(v game.Vec2) (float32, float32) { return ox + float32(v.X), oy + float32(v.Y) }

	for _, c := range r.Coins {
		x, y := at(c.Pos)
		vector.FillCircle(screen, x, y, float32(c.Radius), colCoin, true)
	}
	for _, x := range r.Explosions {
		cx, cy := at(x.Pos)
		fade := color.RGBA{R: 255, G: 160, B: 60, A: uint8(200 * x.Fade())}
		vector.StrokeCircle(screen, cx, cy, float32(x.Radius), 3, fade, true)
	}

	p := r.Player
	px, py := at(p.Pos)
	vector.StrokeCircle(screen, px, py, float32(p.MagnetRadius), 1, colMagnet, true)

	for _, b := range r.Bullets {
		x, y := at(b.Pos)
		vector.FillCircle(screen, x, y, float32(b.Radius), colBullet, true)
	}
	for _, b := range r.EnemyBullets {
		x, y := at(b.Pos)
		vector.FillCircle(screen, x, y, float32(b.Radius), colEnemyShot, true)
	}

	for _, e := range r.EnemyViews() {
		x, y := at(e.Pos)
		col := colPlain
		switch e.Kind {
		case game.EnemyShooter:
			col = colShooter
		case game.EnemyBoss:
			col = colBoss
		}
		vector.FillCircle(screen, x, y, float32(e.Radius), col, true)
		if e.MaxHealth > 1 {
			frac := float32(e.Health) / float32(e.MaxHealth)
			bw := float32(e.Radius) * 2
			vector.FillRect(screen, x-bw/2, y-float32(e.Radius)-8, bw, 4, colEmptyHeart, false)
			vector.FillRect(screen, x-bw/2, y-float32(e.Radius)-8, bw*frac, 4, col, false)
		}
	}

	if p.Alive() {
		// Blink while invulnerable.
		if p.Invuln <= 0 || (g.frame/4)%2 == 0 {
			vector.FillCircle(screen, px, py, float32(p.Radius), colPlayer, true)
		}
		if p.GodMode {
			vector.StrokeCircle(screen, px, py, float32(p.Radius)+4, 2, colGodRing, true)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := g.run.HUD()
	x := float64(g.offX + 10)
	y := float64(g.offY + 8)

	g.drawText(screen, fmt.Sprintf("Score: %d   Coins: %d   Level: %d", hud.Score, hud.Coins, hud.Level), x, y, colText)

	const heartW, heartH, gap = 18, 10, 6
	hy := float32(y) + lineHeight + 6
	for i := 0; i < hud.MaxHealth; i++ {
		col := colEmptyHeart
		if i < hud.Health {
			col = colAccent
		}
		vector.FillRect(screen, float32(x)+float32(i*(heartW+gap)), hy, heartW, heartH, col, false)
	}
	for i := 0; i < hud.Armor && i < 20; i++ {
		vector.FillRect(screen, float32(x)+float32(i*(heartW/2+3)), hy+heartH+5, heartW/2, heartH/2, colArmor, false)
	}

	// Kill progress toward the boss.
	by := hy + heartH + 16
	const barW = 160
	vector.FillRect(screen, float32(x), by, barW, 5, colEmptyHeart, false)
	vector.FillRect(screen, float32(x), by, barW*float32(hud.BossProgress()), 5, colBoss, false)
	label := fmt.Sprintf("boss %d/%d", hud.Kills, hud.KillsRequired)
	if hud.BossActive {
		label = "boss fight"
	}
	g.drawText(screen, label, x+barW+8, float64(by)-5, colDim)

	if p := g.run.Player; p.Levels.Regen > 0 && p.Health < p.MaxHealth() {
		frac := float32(p.RegenProgress() / p.RegenInterval())
		vector.FillRect(screen, float32(x), by+9, barW*min(frac, 1), 3, colAccent, false)
	}
	if hud.GodMode {
		g.drawText(screen, "GOD", float64(g.width-g.offX-40), y, colGodRing)
	}

	cx := float64(g.width) / 2
	switch {
	case hud.BossBanner:
		g.drawTextCentered(screen, "BOSS INCOMING", cx, float64(g.height)/3, colBoss)
	case hud.LevelTransition:
		g.drawTextCentered(screen, fmt.Sprintf("LEVEL %d", hud.Level), cx, float64(g.height)/3, colText)
	}
}

func (g *Game) drawShop(screen *ebiten.Image) {
	title := "SHOP  (1-8 buy, arrows page, B close)"
	if g.shop.Mode == PanelItems {
		title = "ITEMS  (1-9, 0 buy, N close)"
	}
	lines := []string{title, fmt.Sprintf("coins: %d", g.run.Player.Coins), ""}
	rows := g.shop.Rows(g.run)
	for _, row := range rows {
		lines = append(lines, row.String())
	}
	if g.shop.Mode == PanelShop {
		lines = append(lines, "", fmt.Sprintf("page %d/2", g.shop.Page+1))
	}
	bx, by, _, _ := g.drawPanel(screen, lines, 420)
	// Tint affordable rows.
	for i, row := range rows {
		if !row.Affordable {
			continue
		}
		ry := float32(by) + float32((3+i)*lineHeight) + 8
		vector.FillRect(screen, float32(bx)+4, ry+2, 3, lineHeight-4, colCoin, false)
	}
}

func (g *Game) drawConsole(screen *ebiten.Image) {
	entries := g.history.Recent()
	maxVisible := (g.height/2)/lineHeight - 2
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	panelH := float32((maxVisible + 2) * lineHeight)
	vector.FillRect(screen, 0, 0, float32(g.width), panelH, colPanel, false)
	vector.StrokeLine(screen, 0, panelH, float32(g.width), panelH, 1, colPanelEdge, false)
	y := 6.0
	for _, e := range entries {
		col := colDim
		if e.Source == "console" {
			col = colText
		}
		g.drawText(screen, e.Message, 10, y, col)
		y += lineHeight
	}
	cursor := " "
	if (g.frame/30)%2 == 0 {
		cursor = "_"
	}
	g.drawText(screen, "> "+g.console.Input+cursor, 10, float64(panelH)-lineHeight-4, colCoin)
}

func (g *Game) drawAdmin(screen *ebiten.Image) {
	a := g.admin
	var lines []string
	if !a.Authenticated {
		lines = []string{"ADMIN", "", "password: " + strings.Repeat("*", len(a.Input)), "", "Enter unlock  Esc close"}
	} else {
		lines = []string{"ADMIN (unlocked)", ""}
		for i, label := range adminActions {
			lines = append(lines, fmt.Sprintf("[%d] %s", i+1, label))
		}
		lines = append(lines, "", "Esc close")
	}
	g.drawPanel(screen, lines, 320)
}

// drawCentered shades the arena and shows a small centred menu.
func (g *Game) drawCentered(screen *ebiten.Image, lines []string) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), colShade, false)
	g.drawPanel(screen, lines, 360)
}

// drawPanel draws lines in a bordered box centred on screen and returns the
// box rectangle.
func (g *Game) drawPanel(screen *ebiten.Image, lines []string, width int) (x, y, w, h int) {
	w = width
	h = len(lines)*lineHeight + 16
	x = (g.width - w) / 2
	y = (g.height - h) / 2
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colPanel, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1.5, colPanelEdge, false)
	for i, line := range lines {
		col := colText
		if i == 0 {
			col = colCoin
		}
		g.drawText(screen, line, float64(x+12), float64(y+8+i*lineHeight), col)
	}
	return x, y, w, h
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineHeight
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawTextCentered(dst *ebiten.Image, s string, cx, y float64, c color.Color) {
	w, _ := text.Measure(s, g.face, lineHeight)
	g.drawText(dst, s, cx-w/2, y, c)
}

func drawGridOffset(screen *ebiten.Image, offX, offY, w, h, spacing int, c color.Color) {
	if spacing <= 0 {
		return
	}
	ox, oy := float32(offX), float32(offY)
	for x := 0; x <= w; x += spacing {
		xf := ox + float32(x)
		vector.StrokeLine(screen, xf, oy, xf, oy+float32(h), 1.0, c, false)
	}
	for y := 0; y <= h; y += spacing {
		yf := oy + float32(y)
		vector.StrokeLine(screen, ox, yf, ox+float32(w), yf, 1.0, c, false)
	}
}

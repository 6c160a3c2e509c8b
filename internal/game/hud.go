package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/Garsondee/Last-Hope/internal/sim"
)

// Palette.
var (
	colBackdrop   = color.RGBA{R: 26, G: 26, B: 34, A: 255}
	colMidGray    = color.RGBA{R: 44, G: 44, B: 58, A: 255}
	colLightGray  = color.RGBA{R: 71, G: 71, B: 88, A: 255}
	colNeonPink   = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	colNeonBlue   = color.RGBA{R: 119, G: 233, B: 255, A: 255}
	colCoinGold   = color.RGBA{R: 254, G: 213, B: 82, A: 255}
	colHeatOrange = color.RGBA{R: 255, G: 180, B: 120, A: 255}
)

// Text scales applied to the 7x13 bitmap face.
const (
	smallScale = 1
	uiScale    = 2
	bigScale   = 5
)

var menuLines = []string{
	"dear dystopia journal: still no pizza",
	"this sim exists so people remember",
	"press SPACE to patrol the lunch plaza",
}

func drawText(dst *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	drawTextScaled(dst, face, s, x, y, smallScale, clr)
}

func drawTextScaled(dst *ebiten.Image, face text.Face, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawTextCentered draws s with its horizontal centre at cx.
func drawTextCentered(dst *ebiten.Image, face text.Face, s string, cx, y, scale float64, clr color.Color) {
	w := text.Advance(s, face) * scale
	drawTextScaled(dst, face, s, cx-w/2, y, scale, clr)
}

// heatColor ramps from dull orange at no heat to red at the cap.
func heatColor(ratio float64) color.RGBA {
	ratio = clamp01(ratio)
	return color.RGBA{
		R: uint8(min(255, 150+int(ratio*105))),
		G: uint8(max(0, 100-int(ratio*100))),
		B: 40,
		A: 255,
	}
}

// cardColor greys out cards the bank cannot cover.
func cardColor(cost, bank int) color.RGBA {
	if bank >= cost {
		return color.RGBA{R: 200, G: 255, B: 220, A: 255}
	}
	return color.RGBA{R: 130, G: 130, B: 130, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// drawHUD renders the bars and counters over the arena.
func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	t := g.cfg.Tuning
	p := &s.Player

	// Health bar.
	vector.FillRect(screen, 30, 30, 340, 26, color.RGBA{R: 55, G: 35, B: 45, A: 255}, false)
	vector.FillRect(screen, 30, 30, float32(340*clamp01(p.Health/p.MaxHealth)), 26, colNeonPink, false)
	drawTextScaled(screen, g.face, fmt.Sprintf("HP %d/%d", int(p.Health), int(p.MaxHealth)), 40, 30, uiScale, colornames.White)

	// Trigger gate.
	switch t.FireGate {
	case sim.FireGateAmmo:
		drawTextScaled(screen, g.face, fmt.Sprintf("%d/%d", p.Ammo, p.MaxAmmo), 40, 60, uiScale, colornames.White)
		if p.Reloading {
			progress := clamp01(1 - p.Reload/t.ReloadTime)
			vector.FillRect(screen, 120, 70, 100, 10, color.RGBA{R: 50, G: 50, B: 60, A: 255}, false)
			vector.FillRect(screen, 120, 70, float32(100*progress), 10, colNeonBlue, false)
		}
	case sim.FireGateHeat:
		drawTextScaled(screen, g.face, "vent", 40, 60, uiScale, colornames.White)
	}

	// Heat meter.
	ratio := clamp01(p.Heat / t.HeatCap)
	vector.FillRect(screen, 40, 90, 100, 8, color.RGBA{R: 50, G: 40, B: 45, A: 255}, false)
	if ratio > 0 {
		vector.FillRect(screen, 40, 90, float32(100*ratio), 8, heatColor(ratio), false)
	}

	// Run counters.
	right := float64(g.width - 230)
	drawTextScaled(screen, g.face, fmt.Sprintf("score %d", s.Score), right, 30, uiScale, color.RGBA{R: 215, G: 255, B: 200, A: 255})
	drawTextScaled(screen, g.face, fmt.Sprintf("coins %d", s.Bank), right, 62, uiScale, colCoinGold)
	drawTextScaled(screen, g.face, fmt.Sprintf("wave %d", s.Wave), right, 94, uiScale, color.RGBA{R: 200, G: 220, B: 255, A: 255})
	if s.CoinBonus > 1 {
		drawTextScaled(screen, g.face, fmt.Sprintf("coin x%d", s.CoinBonus), right, 126, smallScale, colCoinGold)
	}

	if s.Shop.Message != "" {
		drawTextCentered(screen, g.face, s.Shop.Message, float64(g.width)/2, 12, uiScale, colornames.White)
	}

	switch {
	case p.Heat > t.OverheatThreshold:
		drawText(screen, g.face, "OVERHEAT! SLOWED", 40, 106, colHeatOrange)
	case t.FireGate == sim.FireGateHeat && p.Heat >= t.HeatCap:
		drawText(screen, g.face, "TRIGGER LOCKED", 40, 106, colHeatOrange)
	}

	if g.sound.Muted() {
		drawText(screen, g.face, "muted (M)", 40, float64(g.height-20), colLightGray)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	cx := float64(g.width) / 2
	drawTextCentered(screen, g.face, "LAST HOPE", cx, 160, bigScale, colNeonBlue)
	for i, line := range menuLines {
		drawTextCentered(screen, g.face, line, cx, float64(260+40*i), uiScale, color.RGBA{R: 230, G: 230, B: 230, A: 255})
	}
	drawTextCentered(screen, g.face, fmt.Sprintf("profile %s  |  WASD move  shift sprint  E dash  R reload  M mute", g.cfg.Profile),
		cx, float64(260+40*len(menuLines)+20), smallScale, colLightGray)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	cx, cy := float64(g.width)/2, float64(g.height)/2
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: 140}, false)
	drawTextCentered(screen, g.face, "system failure", cx, cy-120, bigScale, colHeatOrange)
	drawTextCentered(screen, g.face, "press R to reboot the rebellion", cx, cy-40, uiScale, colornames.White)

	lines := strings.Split(strings.TrimRight(g.session.Report().String(), "\n"), "\n")
	for i, line := range lines {
		drawTextCentered(screen, g.face, line, cx, cy+20+float64(i*16), smallScale, colornames.Lightgray)
	}
	drawTextCentered(screen, g.face, "F2 copies this report", cx, cy+30+float64(len(lines)*16), smallScale, colLightGray)
}

// drawShop renders the card panel above the player.
func (g *Game) drawShop(screen *ebiten.Image) {
	s := g.session
	p := &s.Player
	cards := s.Shop.Cards

	const panelW = 560
	panelH := 70 + len(cards)*60 + 30
	px := p.Pos.X - panelW/2
	px = max(40, min(float64(g.width-panelW-40), px))
	py := max(80, p.Pos.Y-p.Radius-float64(panelH)-20)
	x, y := float32(px), float32(py)

	vector.FillRect(screen, x, y, panelW, float32(panelH), color.RGBA{R: 30, G: 30, B: 40, A: 240}, false)
	vector.StrokeRect(screen, x, y, panelW, float32(panelH), 3, colNeonBlue, false)

	skip := len(cards) + 1
	drawTextScaled(screen, g.face, fmt.Sprintf("pop-up shop: pick (1-%d) or skip (%d)", len(cards), skip), px+18, py+14, uiScale, colornames.White)
	for i, card := range cards {
		cy := py + 60 + float64(i*60)
		drawTextScaled(screen, g.face, fmt.Sprintf("%d) %s [%dc]", i+1, card.Name, card.Cost), px+24, cy, uiScale, cardColor(card.Cost, s.Bank))
		drawText(screen, g.face, card.Desc, px+32, cy+30, color.RGBA{R: 180, G: 180, B: 200, A: 255})
	}
	drawTextScaled(screen, g.face, fmt.Sprintf("%d) close shop", skip), px+24, py+float64(panelH)-40, uiScale, colornames.White)
}

package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Last-Hope/internal/anim"
)

// drawBackground paints the backdrop, the street and the skyline.
func (g *Game) drawBackground(screen *ebiten.Image) {
	t := g.cfg.Tuning
	screen.Fill(colBackdrop)
	vector.FillRect(screen, 0, float32(t.Floor), float32(t.Width), float32(t.Height-t.Floor), colMidGray, false)

	for i := 0; i < 7; i++ {
		const gap = 110
		baseX := (i*gap + (i%2)*30) % g.width
		h := 120 + (i * 27 % 180)
		top := float32(t.Floor) - float32(h)
		vector.FillRect(screen, float32(baseX), top, 70, float32(h), colLightGray, false)
		vector.FillRect(screen, float32(baseX+15), top-16, 40, 18, color.RGBA{R: 90, G: 90, B: 120, A: 255}, false)
	}
}

func (g *Game) drawCoins(screen *ebiten.Image) {
	for _, c := range g.session.Coins {
		x, y := float32(c.Pos.X), float32(c.Pos.Y)
		vector.FillCircle(screen, x, y, float32(c.Radius), colCoinGold, true)
		vector.FillCircle(screen, x, y, 4, color.White, true)
	}
}

func (g *Game) drawEnemies(screen *ebiten.Image) {
	for _, e := range g.session.Enemies {
		x, y := float32(e.Pos.X), float32(e.Pos.Y)
		tint := min(150, int(e.Mood*20))
		body := color.RGBA{R: uint8(min(255, 120+tint)), G: 40, B: 60, A: 255}
		vector.FillCircle(screen, x, y, float32(e.Size), body, true)
		vector.FillCircle(screen, x, y, 4, color.Black, true)
	}
}

func (g *Game) drawShots(screen *ebiten.Image) {
	for _, sh := range g.session.Shots {
		vector.FillCircle(screen, float32(sh.Pos.X), float32(sh.Pos.Y), float32(sh.Radius), colNeonPink, true)
	}
}

// pose is the procedural sprite's shape for one animation frame.
type pose struct {
	bob    float64 // vertical offset
	scale  float64 // body radius multiplier
	flash  bool    // muzzle flash
	orbit  float64 // reload spinner angle, radians; <0 hides it
	stride float64 // leg swing, -1..1
	body   color.RGBA
}

// poseFor maps an animation state and frame to the sprite's shape.
func poseFor(state anim.State, frame, frames int) pose {
	if frames <= 0 {
		frames = 1
	}
	phase := float64(frame%frames) / float64(frames)
	ps := pose{scale: 1, orbit: -1, body: colNeonBlue}

	switch state {
	case anim.StateIdle:
		ps.bob = math.Sin(phase*2*math.Pi) * 1.5
	case anim.StateRun:
		ps.bob = -math.Abs(math.Sin(phase*2*math.Pi)) * 4
		ps.stride = math.Sin(phase * 2 * math.Pi)
	case anim.StateReload:
		ps.orbit = phase * 2 * math.Pi
	case anim.StateShoot:
		ps.flash = frame < 2
	case anim.StateDeath:
		k := float64(frame) / float64(max(1, frames-1))
		ps.scale = 1 - 0.6*k
		ps.body = color.RGBA{
			R: uint8(119 - 60*k),
			G: uint8(233 - 170*k),
			B: uint8(255 - 175*k),
			A: 255,
		}
	}
	return ps
}

// drawPlayer renders the player sprite for the animator's current frame.
func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := &g.session.Player
	ps := poseFor(g.anim.State, g.anim.Frame, g.clips[g.anim.State].Frames)

	face := float64(p.Facing)
	if face == 0 {
		face = 1
	}
	r := p.Radius * ps.scale
	x, y := p.Pos.X, p.Pos.Y+ps.bob

	// Legs.
	legY := float32(p.Pos.Y + p.Radius*0.6)
	for _, side := range []float64{-1, 1} {
		lx := x + side*r*0.35
		swing := ps.stride * side * r * 0.3
		vector.StrokeLine(screen, float32(lx), float32(y), float32(lx+swing), legY, 6, colLightGray, true)
	}

	vector.FillCircle(screen, float32(x), float32(y), float32(r), ps.body, true)
	vector.FillCircle(screen, float32(x+face*r*0.4), float32(y-r*0.2), float32(max(2, r*0.12)), colBackdrop, true)

	if ps.flash {
		mx := x + face*(r+10)
		vector.FillCircle(screen, float32(mx), float32(y), 8, colHeatOrange, true)
		vector.FillCircle(screen, float32(mx), float32(y), 4, color.White, true)
	}
	if ps.orbit >= 0 {
		ox := x + math.Cos(ps.orbit)*(r+12)
		oy := y + math.Sin(ps.orbit)*(r+12)
		vector.FillCircle(screen, float32(ox), float32(oy), 5, colNeonBlue, true)
	}
	if p.Dash > 0 {
		vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), 2, color.RGBA{R: 180, G: 255, B: 255, A: 255}, true)
	}
}

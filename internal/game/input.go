package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Last-Hope/internal/sim"
)

// keySnapshot is the raw device state for one frame. Edge detection compares
// it with the previous frame's snapshot.
type keySnapshot struct {
	up, down, left, right bool
	sprint                bool
	fire                  bool
	reload                bool
	dash                  bool
	start                 bool
	confirm               bool
	cancel                bool
	digits                [10]bool // index = the number on the key
	aimX, aimY            int
}

var digitKeys = [10][2]ebiten.Key{
	{ebiten.Key0, ebiten.KeyNumpad0},
	{ebiten.Key1, ebiten.KeyNumpad1},
	{ebiten.Key2, ebiten.KeyNumpad2},
	{ebiten.Key3, ebiten.KeyNumpad3},
	{ebiten.Key4, ebiten.KeyNumpad4},
	{ebiten.Key5, ebiten.KeyNumpad5},
	{ebiten.Key6, ebiten.KeyNumpad6},
	{ebiten.Key7, ebiten.KeyNumpad7},
	{ebiten.Key8, ebiten.KeyNumpad8},
	{ebiten.Key9, ebiten.KeyNumpad9},
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readKeys polls the keyboard and mouse.
func readKeys() keySnapshot {
	var k keySnapshot
	k.up = anyPressed(ebiten.KeyW, ebiten.KeyArrowUp)
	k.down = anyPressed(ebiten.KeyS, ebiten.KeyArrowDown)
	k.left = anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft)
	k.right = anyPressed(ebiten.KeyD, ebiten.KeyArrowRight)
	k.sprint = anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight)
	k.fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || anyPressed(ebiten.KeySpace)
	k.reload = anyPressed(ebiten.KeyR)
	k.dash = anyPressed(ebiten.KeyE) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	k.start = anyPressed(ebiten.KeySpace, ebiten.KeyEnter)
	k.confirm = anyPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter)
	k.cancel = anyPressed(ebiten.KeyEscape)
	for i, keys := range digitKeys {
		k.digits[i] = anyPressed(keys[0], keys[1])
	}
	k.aimX, k.aimY = ebiten.CursorPosition()
	return k
}

// buildInput turns two consecutive snapshots into the simulation's intent.
// Held controls pass straight through; menu, shop, reload and dash controls
// fire once per press.
func buildInput(cur, prev keySnapshot, mode sim.Mode) sim.Input {
	pressed := func(now, before bool) bool { return now && !before }

	in := sim.Input{
		Up:     cur.up,
		Down:   cur.down,
		Left:   cur.left,
		Right:  cur.right,
		Sprint: cur.sprint,
		Fire:   cur.fire,
		Aim:    sim.Vec2{X: float64(cur.aimX), Y: float64(cur.aimY)},
		Reload: pressed(cur.reload, prev.reload),
		Dash:   pressed(cur.dash, prev.dash),
	}

	switch mode {
	case sim.ModeMenu:
		in.Start = pressed(cur.start, prev.start)
	case sim.ModeShop:
		for n := 1; n < len(cur.digits); n++ {
			if pressed(cur.digits[n], prev.digits[n]) {
				in.ShopChoice = n
				break
			}
		}
		in.ShopCancel = pressed(cur.cancel, prev.cancel) || pressed(cur.confirm, prev.confirm)
	}
	return in
}

// triggerLatch holds the trigger off after a start press until fire is
// released, so the Space that left the menu does not also shoot.
type triggerLatch struct {
	held bool
}

func (l *triggerLatch) apply(in *sim.Input, cur keySnapshot) {
	if in.Start {
		l.held = true
	}
	if !l.held {
		return
	}
	if cur.fire {
		in.Fire = false
		return
	}
	l.held = false
}

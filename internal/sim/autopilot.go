package sim

import "math"

// Autopilot is a scripted player used by headless runs. It shoots the
// nearest enemy, backs away from anything inside its comfort radius,
// wanders toward coins otherwise, and buys the cheapest card it can afford.
type Autopilot struct {
	ComfortRadius float64 // retreat when an enemy is closer than this
	DashRadius    float64 // dash away when an enemy is closer than this
	Sprint        bool
}

// DefaultAutopilot is tuned to survive a few waves on the classic profile.
func DefaultAutopilot() Autopilot {
	return Autopilot{ComfortRadius: 220, DashRadius: 110, Sprint: false}
}

// Decide returns the input for the next frame of s.
func (a Autopilot) Decide(s *Session) Input {
	var in Input
	switch s.Mode() {
	case ModeMenu:
		in.Start = true
		return in
	case ModeShop:
		return a.shop(s)
	case ModeGameOver:
		return in
	}

	p := &s.Player
	target, dist, ok := nearestEnemy(s.Enemies, p.Pos)
	if ok {
		in.Fire = true
		in.Aim = target.Pos
	} else {
		in.Aim = p.Pos.Add(Vec2{X: 1})
	}

	var want Vec2
	switch {
	case ok && dist < a.ComfortRadius:
		want = target.Pos.DirTo(p.Pos)
		if dist < a.DashRadius {
			in.Dash = true
		}
	case len(s.Coins) > 0:
		c := nearestCoin(s.Coins, p.Pos)
		want = p.Pos.DirTo(c.Pos)
	}
	// Pinned against a wall, slide along it instead of pushing into it.
	t := &s.tuning
	if (p.Pos.X <= p.Radius+1 && want.X < 0) || (p.Pos.X >= t.Width-p.Radius-1 && want.X > 0) {
		want.X = 0
		want.Y = math.Copysign(1, want.Y)
	}
	if (p.Pos.Y <= p.Radius+1 && want.Y < 0) || (p.Pos.Y >= t.Floor-p.Radius-1 && want.Y > 0) {
		want.Y = 0
		want.X = math.Copysign(1, want.X)
	}
	const deadzone = 0.3
	in.Left = want.X < -deadzone
	in.Right = want.X > deadzone
	in.Up = want.Y < -deadzone
	in.Down = want.Y > deadzone
	in.Sprint = a.Sprint && p.Heat < t.OverheatThreshold-0.5

	if t.FireGate == FireGateAmmo && !ok && p.Ammo < p.MaxAmmo {
		in.Reload = true
	}
	return in
}

func (a Autopilot) shop(s *Session) Input {
	best, bestCost := -1, math.MaxInt
	for i, c := range s.Shop.Cards {
		if c.Cost <= s.Bank && c.Cost < bestCost {
			best, bestCost = i, c.Cost
		}
	}
	if best < 0 {
		return Input{ShopCancel: true}
	}
	return Input{ShopChoice: best + 1}
}

func nearestEnemy(enemies []Enemy, from Vec2) (Enemy, float64, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, e := range enemies {
		if d := e.Pos.Dist(from) - e.Size; d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Enemy{}, 0, false
	}
	return enemies[best], bestDist, true
}

func nearestCoin(coins []Coin, from Vec2) Coin {
	best, bestDist := 0, math.Inf(1)
	for i, c := range coins {
		if d := c.Pos.Dist(from); d < bestDist {
			best, bestDist = i, d
		}
	}
	return coins[best]
}

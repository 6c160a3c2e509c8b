package sim

import "math"

// updateShots advances projectiles and drops any that expired or left the
// padded arena.
func (s *Session) updateShots(dt float64) {
	t := &s.tuning
	pad := t.ShotBoundsPad
	kept := s.Shots[:0]
	for _, sh := range s.Shots {
		sh.Pos = sh.Pos.Add(sh.Vel.Scale(dt))
		sh.Life -= dt
		if sh.Life <= 0 {
			continue
		}
		if sh.Pos.X <= -pad || sh.Pos.X >= t.Width+pad || sh.Pos.Y <= -pad || sh.Pos.Y >= t.Height+pad {
			continue
		}
		kept = append(kept, sh)
	}
	s.Shots = kept
}

// stepCoin integrates one coin under gravity and bounces it off the floor.
// Each crossing keeps a quarter of the vertical speed, so bounces die out
// geometrically.
func stepCoin(t *Tuning, c *Coin, dt float64) {
	c.Vel.Y += t.CoinGravity * dt
	c.Pos = c.Pos.Add(c.Vel.Scale(dt))
	rest := t.Floor - c.Radius
	if c.Pos.Y > rest {
		c.Pos.Y = rest
		c.Vel.Y *= -t.CoinRestitution
		c.Vel.X *= t.CoinFriction
	}
}

// settleCoin zeroes the vertical speed of a coin lying on the floor so it
// does not jitter.
func settleCoin(t *Tuning, c *Coin) {
	if c.Pos.Y >= t.Floor-c.Radius && math.Abs(c.Vel.Y) < t.CoinRestSpeed {
		c.Vel.Y = 0
	}
}

// updateCoins moves coins and banks the ones the player touches. A coin is
// tested once per frame and removed on pickup.
func (s *Session) updateCoins(dt float64) {
	t := &s.tuning
	p := &s.Player
	kept := s.Coins[:0]
	for _, c := range s.Coins {
		stepCoin(t, &c, dt)
		if c.Pos.Dist(p.Pos) < c.Radius+p.Radius {
			credit := c.Value * s.CoinBonus
			s.Bank += credit
			s.Stats.CoinsCollected++
			s.Stats.CoinsEarned += credit
			s.emit(Event{Kind: EventCoinPickup, Pos: c.Pos, Value: float64(credit)})
			continue
		}
		settleCoin(t, &c)
		kept = append(kept, c)
	}
	s.Coins = kept
}

package sim

import (
	"fmt"
	"math"
)

// resolveCollisions applies shot hits, kills, coin drops and contact damage,
// then checks for death.
//
// Shots are consumed by the first enemy (in slice order) they overlap, so a
// shot never damages two enemies. An enemy killed this frame does not touch
// the player.
func (s *Session) resolveCollisions(dt float64) {
	t := &s.tuning
	p := &s.Player

	alive := s.Enemies[:0]
	for _, e := range s.Enemies {
		s.Shots = s.hitEnemy(&e, s.Shots)

		if e.HP <= 0 {
			s.Score += t.KillScore
			s.Stats.Kills++
			s.emit(Event{Kind: EventEnemyKilled, Pos: e.Pos, Value: float64(t.KillScore)})
			s.dropCoins(e.Pos)
			continue
		}

		if e.Pos.Dist(p.Pos) < e.Size+p.Radius {
			dmg := math.Min(p.Health, t.ContactDPS*dt)
			p.Health -= dmg
			p.Heat = math.Min(t.HeatCap, p.Heat+t.ContactHeatPerSec*dt)
			s.Stats.DamageTaken += dmg
			s.emit(Event{Kind: EventPlayerHurt, Pos: p.Pos, Value: dmg})
		}
		alive = append(alive, e)
	}
	s.Enemies = alive

	if p.Health <= 0 && !s.GameOver {
		p.Health = 0
		p.Dead = true
		p.ShootTimer = 0
		s.GameOver = true
		s.Shop.Active = false
		s.emit(Event{Kind: EventGameOver, Pos: p.Pos, Value: float64(s.Score), Label: fmt.Sprintf("wave %d", s.Wave)})
	}
}

// hitEnemy tests every live shot against e, applies damage and returns the
// shots that missed.
func (s *Session) hitEnemy(e *Enemy, shots []Shot) []Shot {
	t := &s.tuning
	kept := shots[:0]
	for _, sh := range shots {
		if e.Pos.Dist(sh.Pos) < e.Size+sh.Radius {
			e.HP -= sh.Damage
			s.Score += t.HitScore
			s.Stats.ShotsHit++
			s.emit(Event{Kind: EventEnemyHit, Pos: sh.Pos, Value: float64(sh.Damage)})
			continue
		}
		kept = append(kept, sh)
	}
	return kept
}

// dropCoins scatters 1–3 coins at a kill site.
func (s *Session) dropCoins(at Vec2) {
	t := &s.tuning
	n := intBetween(s.rng, t.CoinDropMin, t.CoinDropMax)
	for i := 0; i < n; i++ {
		s.Coins = append(s.Coins, newCoin(t, s.rng, at))
	}
	s.emit(Event{Kind: EventCoinDropped, Pos: at, Value: float64(n)})
}

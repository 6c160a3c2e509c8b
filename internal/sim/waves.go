package sim

import (
	"fmt"
	"math"
)

// updateWaves runs the spawn clock and the score-driven wave counter.
func (s *Session) updateWaves(dt float64) {
	t := &s.tuning
	s.SpawnTimer -= dt
	if s.SpawnTimer <= 0 {
		s.spawnEnemy()
		s.SpawnTimer = t.SpawnInterval(s.Wave)
	}

	if s.Score > s.Wave*t.WaveScoreStep {
		s.Wave++
		p := &s.Player
		p.Health = math.Min(p.MaxHealth, p.Health+t.WaveHeal)
		if s.Wave > s.Stats.PeakWave {
			s.Stats.PeakWave = s.Wave
		}
		s.emit(Event{Kind: EventWaveAdvanced, Pos: p.Pos, Value: float64(s.Wave), Label: fmt.Sprintf("wave %d", s.Wave)})
	}
}

// spawnEnemy adds one enemy at an arena edge unless the cap is reached.
func (s *Session) spawnEnemy() bool {
	if len(s.Enemies) >= s.tuning.MaxEnemies {
		return false
	}
	e := newEnemy(&s.tuning, s.rng, s.Wave)
	s.Enemies = append(s.Enemies, e)
	s.emit(Event{Kind: EventEnemySpawned, Pos: e.Pos, Value: float64(e.HP)})
	return true
}

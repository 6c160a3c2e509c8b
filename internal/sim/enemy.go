package sim

// updateEnemies steers every enemy straight at the player's current
// position. There is no separation between enemies.
func (s *Session) updateEnemies(dt float64) {
	target := s.Player.Pos
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.Pos = e.Pos.Add(e.Pos.DirTo(target).Scale(e.Speed * dt))
		e.Mood += dt * s.tuning.EnemyMoodRate
	}
}

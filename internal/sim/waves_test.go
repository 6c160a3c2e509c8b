package sim

import (
	"math"
	"testing"
)

func TestWaves_AdvanceOnScore(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		health     float64
		wantWave   int
		wantHealth float64
	}{
		{"at threshold stays", 220, 100, 1, 100},
		{"past threshold advances", 221, 100, 2, 120},
		{"heal capped at max", 221, 125, 2, 130},
		{"one wave per frame", 5000, 50, 2, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := quietSim()
			s := ts.Session
			s.Score = tt.score
			s.Player.Health = tt.health

			s.updateWaves(ts.DT)

			if s.Wave != tt.wantWave {
				t.Fatalf("wave = %d, want %d", s.Wave, tt.wantWave)
			}
			if s.Player.Health != tt.wantHealth {
				t.Fatalf("health = %.1f, want %.1f", s.Player.Health, tt.wantHealth)
			}
		})
	}
}

func TestWaves_CatchUpOverFrames(t *testing.T) {
	ts := quietSim()
	s := ts.Session
	s.Score = 700 // past 220, 440 and 660
	for i := 0; i < 5; i++ {
		s.updateWaves(ts.DT)
	}
	if s.Wave != 4 {
		t.Fatalf("wave = %d, want 4", s.Wave)
	}
	if s.Stats.PeakWave != 4 {
		t.Fatalf("peak wave = %d, want 4", s.Stats.PeakWave)
	}
	if got := ts.SimLog.Count("wave", "wave_advanced"); got != 3 {
		t.Fatalf("wave_advanced logged %d times, want 3", got)
	}
}

func TestTuning_SpawnInterval(t *testing.T) {
	tn := DefaultTuning()
	tests := []struct {
		wave int
		want float64
	}{
		{1, 1.32},
		{5, 1.0},
		{11, 0.52},
		{12, 0.45},
		{40, 0.45},
	}
	for _, tt := range tests {
		if got := tn.SpawnInterval(tt.wave); !approx(got, tt.want, 1e-9) {
			t.Errorf("SpawnInterval(%d) = %.4f, want %.4f", tt.wave, got, tt.want)
		}
	}
}

func TestTuning_WaveHP(t *testing.T) {
	tn := DefaultTuning()
	for wave, want := range map[int]int{1: 2, 2: 2, 3: 3, 5: 3, 6: 4, 30: 12} {
		if got := tn.WaveHP(wave); got != want {
			t.Errorf("WaveHP(%d) = %d, want %d", wave, got, want)
		}
	}
}

func TestNewEnemy_SpawnsOnAnEdge(t *testing.T) {
	tn := DefaultTuning()
	r := NewRand(99)
	const n = 4000
	wave := 4
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		e := newEnemy(&tn, r, wave)
		switch {
		case e.Pos.Y == -tn.EnemySpawnPad && e.Pos.X >= 0 && e.Pos.X <= tn.Width:
			counts["top"]++
		case e.Pos.Y == tn.Height+tn.EnemySpawnPad && e.Pos.X >= 0 && e.Pos.X <= tn.Width:
			counts["bottom"]++
		case e.Pos.X == -tn.EnemySpawnPad && e.Pos.Y >= 0 && e.Pos.Y <= tn.Height:
			counts["left"]++
		case e.Pos.X == tn.Width+tn.EnemySpawnPad && e.Pos.Y >= 0 && e.Pos.Y <= tn.Height:
			counts["right"]++
		default:
			t.Fatalf("enemy spawned off every edge: %v", e.Pos)
		}

		lo, hi := 100+7*float64(wave), 190+7*float64(wave)
		if e.Speed < lo || e.Speed >= hi {
			t.Fatalf("speed %.2f outside [%.0f, %.0f)", e.Speed, lo, hi)
		}
		if e.Size < 18 || e.Size > 32 {
			t.Fatalf("size %.0f outside [18, 32]", e.Size)
		}
		if e.HP != 3 {
			t.Fatalf("hp = %d at wave 4, want 3", e.HP)
		}
	}
	// Each edge should land near a quarter of the rolls.
	for edge, c := range counts {
		if frac := float64(c) / n; frac < 0.2 || frac > 0.3 {
			t.Errorf("%s edge got %.3f of spawns", edge, frac)
		}
	}
}

func TestWaves_SpawnTimer(t *testing.T) {
	ts := NewTestSim(WithoutShop())
	s := ts.Session

	ts.RunTicks(28, Input{})
	if len(s.Enemies) != 0 {
		t.Fatalf("enemy spawned before the initial delay: %d", len(s.Enemies))
	}
	ts.RunTicks(4, Input{})
	if len(s.Enemies) != 1 {
		t.Fatalf("enemies after initial delay = %d, want 1", len(s.Enemies))
	}
	if s.SpawnTimer <= 1.2 || s.SpawnTimer > 1.32 {
		t.Fatalf("spawn timer reset to %.3f, want about 1.32", s.SpawnTimer)
	}
	if got := ts.SimLog.Count("combat", "enemy_spawned"); got != 1 {
		t.Fatalf("enemy_spawned logged %d times", got)
	}
}

func TestWaves_SpawnCap(t *testing.T) {
	tn := DefaultTuning()
	tn.MaxEnemies = 2
	ts := NewTestSim(WithTuning(tn), WithoutShop())
	s := ts.Session
	if !s.spawnEnemy() || !s.spawnEnemy() {
		t.Fatal("spawn under cap refused")
	}
	if s.spawnEnemy() {
		t.Fatal("spawn over cap accepted")
	}
	if len(s.Enemies) != 2 {
		t.Fatalf("enemies = %d, want 2", len(s.Enemies))
	}
}

func TestEnemies_SeekPlayer(t *testing.T) {
	ts := quietSim(WithEnemy(100, 360, 3, 120, 20))
	s := ts.Session
	before := s.Enemies[0].Pos.Dist(s.Player.Pos)

	ts.Step(Input{})

	e := s.Enemies[0]
	after := e.Pos.Dist(s.Player.Pos)
	if !approx(before-after, 120*ts.DT, 1e-9) {
		t.Fatalf("enemy closed %.4f, want %.4f", before-after, 120*ts.DT)
	}
	if e.Pos.Y != 360 {
		t.Fatalf("enemy drifted off the line: %v", e.Pos)
	}
	if !approx(e.Mood, 3*ts.DT, 1e-12) {
		t.Fatalf("mood = %.4f, want %.4f", e.Mood, 3*ts.DT)
	}
}

func TestEnemies_OnPlayerDoesNotNaN(t *testing.T) {
	ts := quietSim()
	s := ts.Session
	s.Enemies = []Enemy{{Pos: s.Player.Pos, Speed: 100, HP: 3, Size: 20}}
	s.updateEnemies(ts.DT)
	e := s.Enemies[0]
	if math.IsNaN(e.Pos.X) || math.IsNaN(e.Pos.Y) {
		t.Fatalf("enemy position became NaN: %v", e.Pos)
	}
}

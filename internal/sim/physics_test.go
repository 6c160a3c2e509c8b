package sim

import (
	"math"
	"testing"
)

func TestStepCoin_BouncesOffFloor(t *testing.T) {
	tn := DefaultTuning()
	rest := tn.Floor - tn.CoinRadius
	c := Coin{Pos: Vec2{X: 200, Y: rest - 1}, Vel: Vec2{X: 100, Y: 400}, Radius: tn.CoinRadius}
	dt := 1.0 / 60.0

	stepCoin(&tn, &c, dt)

	if c.Pos.Y != rest {
		t.Fatalf("coin y = %.3f, want clamped to %.3f", c.Pos.Y, rest)
	}
	wantVY := -(400 + 250*dt) * 0.25
	if !approx(c.Vel.Y, wantVY, 1e-9) {
		t.Fatalf("vy = %.4f, want %.4f", c.Vel.Y, wantVY)
	}
	if !approx(c.Vel.X, 75, 1e-9) {
		t.Fatalf("vx = %.4f, want 75", c.Vel.X)
	}
}

func TestStepCoin_NeverBelowFloor(t *testing.T) {
	tn := DefaultTuning()
	r := NewRand(7)
	for i := 0; i < 50; i++ {
		c := newCoin(&tn, r, Vec2{X: 500, Y: 300})
		for f := 0; f < 600; f++ {
			stepCoin(&tn, &c, 1.0/60.0)
			settleCoin(&tn, &c)
			if c.Pos.Y > tn.Floor-c.Radius {
				t.Fatalf("coin %d below floor at frame %d: y=%.3f", i, f, c.Pos.Y)
			}
		}
	}
}

func TestStepCoin_ClampsCoinBelowFloor(t *testing.T) {
	tn := DefaultTuning()
	rest := tn.Floor - tn.CoinRadius
	dt := 1.0 / 60.0
	for _, vy := range []float64{-300, 0, 120} {
		c := Coin{Pos: Vec2{X: 300, Y: tn.Floor + 115}, Vel: Vec2{X: 40, Y: vy}, Radius: tn.CoinRadius}

		stepCoin(&tn, &c, dt)

		if c.Pos.Y != rest {
			t.Fatalf("vy0=%.0f: coin y = %.3f, want %.3f after one step", vy, c.Pos.Y, rest)
		}
		wantVY := -(vy + tn.CoinGravity*dt) * tn.CoinRestitution
		if !approx(c.Vel.Y, wantVY, 1e-9) {
			t.Fatalf("vy0=%.0f: vy = %.4f, want %.4f", vy, c.Vel.Y, wantVY)
		}
	}
}

func TestUpdateCoins_KillBelowFloorClampsNextFrame(t *testing.T) {
	ts := quietSim(WithSeed(3), WithEnemy(300, 705, 1, 0, 20))
	s := ts.Session
	tn := s.Tuning()
	s.Shots = []Shot{{Pos: Vec2{X: 300, Y: 705}, Damage: 1, Radius: 6, Life: 1}}

	ts.Step(Input{})
	if len(s.Enemies) != 0 || len(s.Coins) == 0 {
		t.Fatalf("kill not resolved: enemies=%d coins=%d", len(s.Enemies), len(s.Coins))
	}
	if got := droppedThisFrame(s); got != len(s.Coins) {
		t.Fatalf("dropped this frame = %d, coins = %d", got, len(s.Coins))
	}
	if bad := checkFrame(s); len(bad) > 0 {
		t.Fatalf("fresh coins flagged: %v", bad)
	}

	ts.Step(Input{})
	for i, c := range s.Coins {
		if c.Pos.Y != tn.Floor-c.Radius {
			t.Fatalf("coin %d at y=%.3f, want clamped to %.3f", i, c.Pos.Y, tn.Floor-c.Radius)
		}
	}
	if bad := checkFrame(s); len(bad) > 0 {
		t.Fatalf("tick %d: %v", s.Tick, bad)
	}
}

func TestUpdateCoins_SettlesWithoutJitter(t *testing.T) {
	ts := quietSim(WithCoin(100, 300, 1))
	tn := ts.Session.Tuning()
	ts.RunTicks(600, Input{})

	if len(ts.Session.Coins) != 1 {
		t.Fatalf("coin vanished: %d left", len(ts.Session.Coins))
	}
	c := ts.Session.Coins[0]
	if c.Pos.Y != tn.Floor-tn.CoinRadius || c.Vel.Y != 0 {
		t.Fatalf("coin not at rest: pos=%v vel=%v", c.Pos, c.Vel)
	}

	// Resting stays resting.
	for i := 0; i < 30; i++ {
		ts.Step(Input{})
		c = ts.Session.Coins[0]
		if c.Vel.Y != 0 || c.Pos.Y != tn.Floor-tn.CoinRadius {
			t.Fatalf("rest coin jittered on frame %d: pos=%v vel=%v", i, c.Pos, c.Vel)
		}
	}
}

func TestUpdateCoins_Pickup(t *testing.T) {
	tests := []struct {
		name  string
		value int
		bonus int
		want  int
	}{
		{"single", 1, 1, 1},
		{"double", 2, 1, 2},
		{"double with bonus", 2, 3, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := quietSim()
			p := ts.Session.Player.Pos
			ts.Session.Coins = append(ts.Session.Coins, Coin{Pos: p, Value: tt.value, Radius: 10})
			ts.Session.CoinBonus = tt.bonus

			ts.Step(Input{})

			if ts.Session.Bank != tt.want {
				t.Fatalf("bank = %d, want %d", ts.Session.Bank, tt.want)
			}
			if len(ts.Session.Coins) != 0 {
				t.Fatal("picked-up coin still present")
			}
			ts.Step(Input{})
			if ts.Session.Bank != tt.want {
				t.Fatalf("coin credited twice: bank = %d", ts.Session.Bank)
			}
			if ts.Session.Stats.CoinsCollected != 1 || ts.Session.Stats.CoinsEarned != tt.want {
				t.Fatalf("stats = %+v", ts.Session.Stats)
			}
		})
	}
}

func TestUpdateCoins_OutOfReachStays(t *testing.T) {
	ts := quietSim(WithCoin(60, 500, 1), WithPlayerAt(900, 300))
	ts.Step(Input{})
	if len(ts.Session.Coins) != 1 || ts.Session.Bank != 0 {
		t.Fatalf("distant coin picked up: coins=%d bank=%d", len(ts.Session.Coins), ts.Session.Bank)
	}
}

func TestUpdateShots_LifeExpiry(t *testing.T) {
	ts := quietSim()
	ts.Session.Shots = []Shot{{Pos: Vec2{X: 100, Y: 100}, Vel: Vec2{X: 10}, Life: 0.5, Radius: 6, Damage: 1}}

	for i := 0; i < 25; i++ {
		ts.Session.updateShots(ts.DT)
	}
	if len(ts.Session.Shots) != 1 {
		t.Fatal("shot expired early")
	}
	for i := 0; i < 10; i++ {
		ts.Session.updateShots(ts.DT)
	}
	if len(ts.Session.Shots) != 0 {
		t.Fatalf("shot outlived its life: %+v", ts.Session.Shots)
	}
}

func TestUpdateShots_LeavesPaddedBounds(t *testing.T) {
	tn := DefaultTuning()
	tests := []struct {
		name string
		pos  Vec2
		vel  Vec2
	}{
		{"right", Vec2{X: tn.Width + 55}, Vec2{X: 600}},
		{"left", Vec2{X: -55, Y: 100}, Vec2{X: -600}},
		{"top", Vec2{X: 100, Y: -55}, Vec2{Y: -600}},
		{"bottom", Vec2{X: 100, Y: tn.Height + 55}, Vec2{Y: 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := quietSim()
			ts.Session.Shots = []Shot{{Pos: tt.pos, Vel: tt.vel, Life: 5}}
			ts.Session.updateShots(ts.DT)
			if len(ts.Session.Shots) != 0 {
				t.Fatalf("shot at %v kept", ts.Session.Shots[0].Pos)
			}
		})
	}

	// Inside the pad is still alive.
	ts := quietSim()
	ts.Session.Shots = []Shot{{Pos: Vec2{X: tn.Width + 10, Y: 100}, Vel: Vec2{X: 60}, Life: 5}}
	ts.Session.updateShots(ts.DT)
	if len(ts.Session.Shots) != 1 {
		t.Fatal("shot inside the pad was dropped")
	}
}

func TestUpdateShots_Integrates(t *testing.T) {
	ts := quietSim()
	ts.Session.Shots = []Shot{{Pos: Vec2{X: 100, Y: 100}, Vel: Vec2{X: 600, Y: -300}, Life: 1}}
	ts.Session.updateShots(0.5)
	sh := ts.Session.Shots[0]
	if sh.Pos != (Vec2{X: 400, Y: -50}) || math.Abs(sh.Life-0.5) > eps {
		t.Fatalf("shot after 0.5s: pos=%v life=%.3f", sh.Pos, sh.Life)
	}
}

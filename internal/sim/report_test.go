package sim

import (
	"strings"
	"testing"
)

func TestReporter_CollectsOnInterval(t *testing.T) {
	ts := quietSim()
	rep := NewReporter(30)
	for i := 0; i < 120; i++ {
		ts.Step(Input{})
		rep.Collect(ts.Session)
	}
	h := rep.History()
	if len(h) != 4 {
		t.Fatalf("collected %d snapshots, want 4", len(h))
	}
	for i, snap := range h {
		if snap.Tick != (i+1)*30 {
			t.Fatalf("snapshot %d at tick %d", i, snap.Tick)
		}
	}
}

func TestReporter_DefaultInterval(t *testing.T) {
	if r := NewReporter(0); r.intervalTicks != reportIntervalTicks {
		t.Fatalf("interval = %d", r.intervalTicks)
	}
}

func TestReporter_Summarize(t *testing.T) {
	rep := &Reporter{intervalTicks: 1, history: []Snapshot{
		{Tick: 10, Health: 130, Heat: 1, Enemies: 2, Score: 0},
		{Tick: 20, Health: 90, Heat: 2, Enemies: 6, Score: 36, ShopActive: true},
		{Tick: 30, Health: 110, Heat: 0, Enemies: 4, Score: 72},
		{Tick: 40, Health: 50, Heat: 3, Enemies: 9, Score: 200},
	}}

	ws := rep.Summarize(10, 30)
	if ws.Samples != 3 || ws.PeakEnemies != 6 || ws.MinHealth != 90 || ws.ScoreGained != 72 || ws.ShopSamples != 1 {
		t.Fatalf("summary = %+v", ws)
	}
	if !approx(ws.AvgEnemies, 4, 1e-12) || !approx(ws.AvgHeat, 1, 1e-12) {
		t.Fatalf("averages = %.3f enemies %.3f heat", ws.AvgEnemies, ws.AvgHeat)
	}

	empty := rep.Summarize(100, 200)
	if empty.Samples != 0 || empty.MinHealth != 0 {
		t.Fatalf("empty window = %+v", empty)
	}
}

func TestReport_AccuracyAndOutcome(t *testing.T) {
	ts := quietSim()
	s := ts.Session
	if r := s.Report(); r.Outcome != OutcomeInProgress || r.Accuracy() != 0 {
		t.Fatalf("fresh report: %+v", r)
	}
	s.Stats.ShotsFired, s.Stats.ShotsHit = 8, 6
	s.GameOver = true
	r := s.Report()
	if r.Outcome != OutcomeOverrun || !approx(r.Accuracy(), 0.75, 1e-12) {
		t.Fatalf("outcome=%s accuracy=%.2f", r.Outcome, r.Accuracy())
	}
	out := r.String()
	for _, want := range []string{"outcome=overrun", "acc=75%", "gate=ammo"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

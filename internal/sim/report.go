package sim

import (
	"fmt"
	"strings"
)

// reportIntervalTicks is the default snapshot cadence (~1s at 60TPS).
const reportIntervalTicks = 60

// RunOutcome classifies how a run ended, or that it has not.
type RunOutcome int

const (
	OutcomeInProgress RunOutcome = iota
	OutcomeOverrun               // player died
	OutcomeSurvived              // still alive when the run was cut off
)

func (o RunOutcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeOverrun:
		return "overrun"
	case OutcomeSurvived:
		return "survived"
	default:
		return "unknown"
	}
}

// Snapshot captures the headline numbers of a session at one tick.
type Snapshot struct {
	Tick       int
	Health     float64
	Heat       float64
	Ammo       int
	Enemies    int
	Shots      int
	Coins      int
	Score      int
	Bank       int
	Wave       int
	ShopActive bool
}

// Snapshot returns the session's current headline numbers.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.Tick,
		Health:     s.Player.Health,
		Heat:       s.Player.Heat,
		Ammo:       s.Player.Ammo,
		Enemies:    len(s.Enemies),
		Shots:      len(s.Shots),
		Coins:      len(s.Coins),
		Score:      s.Score,
		Bank:       s.Bank,
		Wave:       s.Wave,
		ShopActive: s.Shop.Active,
	}
}

// WindowSummary aggregates snapshots over a tick range.
type WindowSummary struct {
	FromTick, ToTick int
	Samples          int
	AvgEnemies       float64
	PeakEnemies      int
	MinHealth        float64
	AvgHeat          float64
	ScoreGained      int
	ShopSamples      int
}

// Reporter collects periodic snapshots and summarises them.
type Reporter struct {
	history       []Snapshot
	intervalTicks int
}

// NewReporter creates a reporter that samples every intervalTicks.
func NewReporter(intervalTicks int) *Reporter {
	if intervalTicks <= 0 {
		intervalTicks = reportIntervalTicks
	}
	return &Reporter{intervalTicks: intervalTicks}
}

// Collect samples s if its tick falls on the reporter's cadence.
func (r *Reporter) Collect(s *Session) {
	if s.Tick%r.intervalTicks != 0 {
		return
	}
	r.history = append(r.history, s.Snapshot())
}

// History returns every snapshot collected so far.
func (r *Reporter) History() []Snapshot {
	return r.history
}

// Summarize aggregates the snapshots whose tick is in [fromTick, toTick].
func (r *Reporter) Summarize(fromTick, toTick int) WindowSummary {
	ws := WindowSummary{FromTick: fromTick, ToTick: toTick, MinHealth: -1}
	firstScore, lastScore := -1, 0
	totalEnemies, totalHeat := 0, 0.0
	for _, snap := range r.history {
		if snap.Tick < fromTick || snap.Tick > toTick {
			continue
		}
		ws.Samples++
		totalEnemies += snap.Enemies
		totalHeat += snap.Heat
		if snap.Enemies > ws.PeakEnemies {
			ws.PeakEnemies = snap.Enemies
		}
		if ws.MinHealth < 0 || snap.Health < ws.MinHealth {
			ws.MinHealth = snap.Health
		}
		if snap.ShopActive {
			ws.ShopSamples++
		}
		if firstScore < 0 {
			firstScore = snap.Score
		}
		lastScore = snap.Score
	}
	if ws.Samples == 0 {
		ws.MinHealth = 0
		return ws
	}
	ws.AvgEnemies = float64(totalEnemies) / float64(ws.Samples)
	ws.AvgHeat = totalHeat / float64(ws.Samples)
	ws.ScoreGained = lastScore - firstScore
	return ws
}

// RunReport is the end-of-run summary shown on the game-over screen, copied
// to the clipboard and printed by the headless report.
type RunReport struct {
	Tick      int
	Elapsed   float64
	Outcome   RunOutcome
	Score     int
	Wave      int
	Bank      int
	CoinBonus int
	Stats     RunStats

	MaxHealth float64
	Damage    int
	Speed     float64
	FireDelay float64
	CoolRate  float64
	FireGate  FireGate
}

// Accuracy is hits per shot fired, 0 when nothing was fired.
func (r RunReport) Accuracy() float64 {
	if r.Stats.ShotsFired == 0 {
		return 0
	}
	return float64(r.Stats.ShotsHit) / float64(r.Stats.ShotsFired)
}

// Report summarises the session so far.
func (s *Session) Report() RunReport {
	outcome := OutcomeInProgress
	if s.GameOver {
		outcome = OutcomeOverrun
	}
	p := &s.Player
	return RunReport{
		Tick:      s.Tick,
		Elapsed:   s.Elapsed,
		Outcome:   outcome,
		Score:     s.Score,
		Wave:      s.Wave,
		Bank:      s.Bank,
		CoinBonus: s.CoinBonus,
		Stats:     s.Stats,
		MaxHealth: p.MaxHealth,
		Damage:    p.Damage,
		Speed:     p.Speed,
		FireDelay: p.FireDelay,
		CoolRate:  p.CoolRate,
		FireGate:  s.tuning.FireGate,
	}
}

// String formats the report as a short multi-line block.
func (r RunReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "outcome=%s time=%.1fs ticks=%d gate=%s\n", r.Outcome, r.Elapsed, r.Tick, r.FireGate)
	fmt.Fprintf(&b, "score=%d wave=%d bank=%d coin_bonus=x%d\n", r.Score, r.Wave, r.Bank, r.CoinBonus)
	fmt.Fprintf(&b, "shots=%d hits=%d acc=%.0f%% kills=%d\n",
		r.Stats.ShotsFired, r.Stats.ShotsHit, r.Accuracy()*100, r.Stats.Kills)
	fmt.Fprintf(&b, "coins picked=%d earned=%d spent=%d purchases=%d\n",
		r.Stats.CoinsCollected, r.Stats.CoinsEarned, r.Stats.CoinsSpent, r.Stats.Purchases)
	fmt.Fprintf(&b, "damage_taken=%.0f max_hp=%.0f dmg=%d speed=%.0f fire_delay=%.2f cool_rate=%.2f\n",
		r.Stats.DamageTaken, r.MaxHealth, r.Damage, r.Speed, r.FireDelay, r.CoolRate)
	return b.String()
}

package game

import (
	"github.com/rs/zerolog"

	"github.com/Garsondee/Last-Hope/internal/sim"
)

// eventLevel picks the log level for an event kind. Per-frame events go to
// trace so debug stays readable.
func eventLevel(k sim.EventKind) zerolog.Level {
	switch k {
	case sim.EventShotRejected, sim.EventPlayerHurt:
		return zerolog.TraceLevel
	case sim.EventShot, sim.EventEnemyHit, sim.EventEnemySpawned, sim.EventCoinDropped,
		sim.EventCoinPickup, sim.EventReloadStart, sim.EventReloadDone, sim.EventDash,
		sim.EventEnemyKilled:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// logEvents writes one record per event of the current frame.
func (g *Game) logEvents(evs []sim.Event) {
	tick := g.session.Tick
	for _, ev := range evs {
		e := g.log.WithLevel(eventLevel(ev.Kind)).
			Int("tick", tick).
			Str("category", ev.Kind.Category()).
			Float64("value", ev.Value)
		if ev.Label != "" {
			e = e.Str("label", ev.Label)
		}
		e.Msg(ev.Kind.String())

		if ev.Kind == sim.EventGameOver {
			g.logReport()
		}
	}
}

// logReport writes the end-of-run summary.
func (g *Game) logReport() {
	r := g.session.Report()
	g.log.Info().
		Stringer("outcome", r.Outcome).
		Int("score", r.Score).
		Int("wave", r.Wave).
		Float64("survived_s", r.Elapsed).
		Int("kills", r.Stats.Kills).
		Float64("accuracy", r.Accuracy()).
		Int("purchases", r.Stats.Purchases).
		Msg("run over")
}

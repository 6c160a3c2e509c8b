// Package anim picks and steps the player's sprite animation from the
// simulation's presentation flags.
package anim

import "github.com/Garsondee/Last-Hope/internal/sim"

// State is the animation clip being played.
type State int

const (
	StateIdle State = iota
	StateRun
	StateReload
	StateShoot
	StateDeath
	numStates
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	case StateReload:
		return "reload"
	case StateShoot:
		return "shoot"
	case StateDeath:
		return "death"
	default:
		return "unknown"
	}
}

// defaultFrameTime is used for a clip with no configured duration.
const defaultFrameTime = 0.12

// Clip describes one animation: how many frames it has and how long each
// is shown.
type Clip struct {
	Frames    int
	FrameTime float64
}

// Set is the clip table for one character.
type Set [numStates]Clip

// DefaultSet matches the procedural player sprite drawn by the host.
func DefaultSet() Set {
	var s Set
	s[StateIdle] = Clip{Frames: 4, FrameTime: 0.22}
	s[StateRun] = Clip{Frames: 6, FrameTime: 0.08}
	s[StateReload] = Clip{Frames: 6, FrameTime: 0.12}
	s[StateShoot] = Clip{Frames: 3, FrameTime: 0.12}
	s[StateDeath] = Clip{Frames: 5, FrameTime: 0.28}
	return s
}

// Animator tracks the current clip and frame.
type Animator struct {
	clips Set

	State State
	Frame int

	timer       float64
	deathPlayed bool
}

// New returns an animator at the first idle frame.
func New(clips Set) *Animator {
	return &Animator{clips: clips}
}

// Desired is the clip the flags call for, by priority: death, reload,
// shoot, run, idle. Clips with no frames fall back to idle.
func (a *Animator) Desired(p *sim.Player) State {
	want := StateIdle
	switch {
	case p.Dead:
		want = StateDeath
	case p.Reloading:
		want = StateReload
	case p.ShootTimer > 0:
		want = StateShoot
	case p.Moving:
		want = StateRun
	}
	if a.clips[want].Frames == 0 {
		return StateIdle
	}
	return want
}

// Update switches clip if needed and advances the frame by dt. Death plays
// once and holds its last frame; everything else loops.
func (a *Animator) Update(p *sim.Player, dt float64) {
	want := a.Desired(p)
	if want != a.State {
		a.State = want
		a.Frame = 0
		a.timer = 0
		a.deathPlayed = false
	}

	clip := a.clips[a.State]
	if clip.Frames == 0 {
		return
	}
	ft := clip.FrameTime
	if ft <= 0 {
		ft = defaultFrameTime
	}
	a.timer += dt

	if a.State == StateDeath {
		last := clip.Frames - 1
		if a.deathPlayed {
			a.Frame = last
			return
		}
		for a.timer >= ft && a.Frame < last {
			a.timer -= ft
			a.Frame++
		}
		if a.Frame >= last {
			a.deathPlayed = true
		}
		return
	}

	for a.timer >= ft {
		a.timer -= ft
		a.Frame = (a.Frame + 1) % clip.Frames
	}
}

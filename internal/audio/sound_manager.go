// Package audio plays synthesized sound cues for simulation events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Last-Hope/internal/sim"
)

const (
	sampleRate = beep.SampleRate(44100)

	// hurtCooldown limits the contact cue, which fires every frame of contact.
	hurtCooldown = 250 * time.Millisecond

	// maxVoices caps how many cues may overlap in the mixer.
	maxVoices = 16
)

var cueFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// SoundManager owns the speaker and a mixer of in-flight cues. A zero or
// failed manager is silent; every method is safe to call regardless.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	cache       map[Cue]*beep.Buffer

	lastHurt time.Time
	now      func() time.Time
}

// NewSoundManager creates a manager at the given master volume (0..1).
func NewSoundManager(volume float64, muted bool) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
		muted:  muted,
		cache:  make(map[Cue]*beep.Buffer),
		now:    time.Now,
	}
}

// Initialize opens the speaker. A muted manager never touches the device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and stops the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// SetMuted toggles output without closing the device.
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = m
	if m && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// Muted reports whether output is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts c on the mixer.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	buf := sm.rendered(c)
	if buf == nil {
		return
	}
	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(buf.Streamer(0, buf.Len()))
	}
	speaker.Unlock()
}

// PlayEvents plays the cue for each event of one frame. A frame plays each
// cue at most once.
func (sm *SoundManager) PlayEvents(evs []sim.Event) {
	var played [cueCount]bool
	for _, ev := range evs {
		c, ok := CueFor(ev.Kind)
		if !ok || played[c] {
			continue
		}
		if c == CueHurt && !sm.hurtReady() {
			continue
		}
		played[c] = true
		sm.Play(c)
	}
}

func (sm *SoundManager) hurtReady() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	now := sm.now()
	if now.Sub(sm.lastHurt) < hurtCooldown {
		return false
	}
	sm.lastHurt = now
	return true
}

// rendered returns c pre-rendered at the manager's volume.
func (sm *SoundManager) rendered(c Cue) *beep.Buffer {
	if buf, ok := sm.cache[c]; ok {
		return buf
	}
	s := BuildCue(c, sampleRate, sm.volume)
	if s == nil {
		return nil
	}
	buf := beep.NewBuffer(cueFormat)
	buf.Append(s)
	sm.cache[c] = buf
	return buf
}

// CueFor maps a simulation event to its sound, if it has one.
func CueFor(k sim.EventKind) (Cue, bool) {
	switch k {
	case sim.EventShot:
		return CueShot, true
	case sim.EventPurchaseDenied:
		return CueDenied, true
	case sim.EventReloadStart:
		return CueReload, true
	case sim.EventDash:
		return CueDash, true
	case sim.EventEnemyHit:
		return CueHit, true
	case sim.EventEnemyKilled:
		return CueKill, true
	case sim.EventCoinPickup:
		return CueCoin, true
	case sim.EventPlayerHurt:
		return CueHurt, true
	case sim.EventWaveAdvanced:
		return CueWave, true
	case sim.EventShopOpened:
		return CueShop, true
	case sim.EventPurchase:
		return CuePurchase, true
	case sim.EventGameOver:
		return CueDeath, true
	}
	return 0, false
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

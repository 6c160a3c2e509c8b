package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue is one short synthesized sound effect.
type Cue int

const (
	CueShot Cue = iota
	CueDenied
	CueReload
	CueDash
	CueHit
	CueKill
	CueCoin
	CueHurt
	CueWave
	CueShop
	CuePurchase
	CueDeath
	cueCount
)

var cueNames = [...]string{
	CueShot:     "shot",
	CueDenied:   "denied",
	CueReload:   "reload",
	CueDash:     "dash",
	CueHit:      "hit",
	CueKill:     "kill",
	CueCoin:     "coin",
	CueHurt:     "hurt",
	CueWave:     "wave",
	CueShop:     "shop",
	CuePurchase: "purchase",
	CueDeath:    "death",
}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave, optionally sliding in pitch.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
}

// NewOscillator creates a tone of the given length.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a tone whose pitch slides linearly from freq to endFreq.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1 // #nosec G404 -- audio noise
		}
		samples[i][0] = val
		samples[i][1] = val

		f := o.freq + (o.endFreq-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release shaping over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so 0 is silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator with a 5ms attack.
func tone(freq, endFreq float64, d, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(freq, endFreq, d, wave, rate), d, 5*time.Millisecond, release, rate)
}

// cueVolume balances cues against each other before the master volume.
var cueVolume = [cueCount]float64{
	CueShot:     0.25,
	CueDenied:   0.35,
	CueReload:   0.3,
	CueDash:     0.3,
	CueHit:      0.3,
	CueKill:     0.45,
	CueCoin:     0.35,
	CueHurt:     0.25,
	CueWave:     0.5,
	CueShop:     0.45,
	CuePurchase: 0.5,
	CueDeath:    0.6,
}

// BuildCue synthesizes c at the given rate and master volume. It returns nil
// for an unknown cue.
func BuildCue(c Cue, rate beep.SampleRate, master float64) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	var s beep.Streamer
	switch c {
	case CueShot:
		s = tone(1400, 500, ms(70), ms(50), WaveSquare, rate)
	case CueDenied:
		s = tone(110, 90, ms(160), ms(60), WaveSaw, rate)
	case CueReload:
		s = beep.Seq(
			tone(300, 300, ms(40), ms(20), WaveSquare, rate),
			beep.Silence(rate.N(ms(60))),
			tone(450, 450, ms(40), ms(20), WaveSquare, rate),
		)
	case CueDash:
		s = tone(0, 0, ms(120), ms(90), WaveNoise, rate)
	case CueHit:
		s = tone(220, 160, ms(50), ms(30), WaveSquare, rate)
	case CueKill:
		s = beep.Mix(
			tone(0, 0, ms(180), ms(150), WaveNoise, rate),
			newVolume(tone(160, 60, ms(180), ms(120), WaveSine, rate), 0.8),
		)
	case CueCoin:
		s = beep.Seq(
			tone(987.77, 987.77, ms(60), ms(30), WaveSquare, rate),
			tone(1318.51, 1318.51, ms(120), ms(90), WaveSquare, rate),
		)
	case CueHurt:
		s = tone(90, 70, ms(80), ms(40), WaveSaw, rate)
	case CueWave:
		s = beep.Seq(
			tone(523.25, 523.25, ms(90), ms(30), WaveSine, rate),
			tone(659.25, 659.25, ms(90), ms(30), WaveSine, rate),
			tone(783.99, 783.99, ms(200), ms(150), WaveSine, rate),
		)
	case CueShop:
		s = beep.Mix(
			tone(880, 880, ms(250), ms(200), WaveSine, rate),
			newVolume(tone(1760, 1760, ms(250), ms(120), WaveSine, rate), 0.3),
		)
	case CuePurchase:
		s = beep.Seq(
			tone(659.25, 659.25, ms(70), ms(30), WaveSquare, rate),
			tone(987.77, 987.77, ms(70), ms(30), WaveSquare, rate),
			tone(1318.51, 1318.51, ms(160), ms(120), WaveSquare, rate),
		)
	case CueDeath:
		s = tone(220, 40, ms(900), ms(500), WaveSaw, rate)
	default:
		return nil
	}
	return newVolume(s, cueVolume[c]*master)
}

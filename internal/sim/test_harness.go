package sim

// TestSim is a headless harness used by tests and the headless report. It
// wraps a Session with seeded randomness, a SimLog, and a fixed step.
type TestSim struct {
	Session *Session
	SimLog  *SimLog
	DT      float64

	tuning  Tuning
	seed    int64
	verbose bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // applied before the session exists
	simOptEntity                      // applied to the built session
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithTuning replaces the default tuning.
func WithTuning(t Tuning) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning = t
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose records high-frequency events in the SimLog too.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithoutSpawning stops the wave director from adding enemies. Enemies
// placed with WithEnemy are unaffected.
func WithoutSpawning() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning.MaxEnemies = 0
	}}
}

// WithoutShop pushes the first shop opening out of reach.
func WithoutShop() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning.ShopFirstDelay = 1e9
	}}
}

// WithPlayerAt moves the player before the first step.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Session.Player.Pos = Vec2{X: x, Y: y}
	}}
}

// WithEnemy places an enemy with explicit stats.
func WithEnemy(x, y float64, hp int, speed, size float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Session.Enemies = append(ts.Session.Enemies, Enemy{
			Pos:   Vec2{X: x, Y: y},
			Speed: speed,
			HP:    hp,
			Size:  size,
		})
	}}
}

// WithCoin places a coin at rest velocity.
func WithCoin(x, y float64, value int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Session.Coins = append(ts.Session.Coins, Coin{
			Pos:    Vec2{X: x, Y: y},
			Value:  value,
			Radius: ts.tuning.CoinRadius,
		})
	}}
}

// WithBank seeds the coin bank.
func WithBank(coins int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Session.Bank = coins
	}}
}

// InMenu leaves the session on the title menu instead of skipping it.
func InMenu() SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Session.Menu = true
	}}
}

// NewTestSim constructs a TestSim from the given options in two passes:
//  1. Infrastructure (tuning, seed, verbose)
//  2. Session construction, then entity placement
//
// The session starts past the title menu unless InMenu is given.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		DT:     1.0 / 60.0,
		tuning: DefaultTuning(),
		seed:   1,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.SimLog = NewSimLog(ts.verbose)
	ts.Session = NewSession(ts.tuning, NewRand(ts.seed))
	ts.Session.Log = ts.SimLog
	ts.Session.Menu = false
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// Step advances one frame with the given input.
func (ts *TestSim) Step(in Input) {
	ts.Session.Advance(ts.DT, in)
}

// RunTicks advances n frames holding the same input.
func (ts *TestSim) RunTicks(n int, in Input) {
	for i := 0; i < n; i++ {
		ts.Session.Advance(ts.DT, in)
	}
}

// RunUntil advances with the same input until cond holds or maxTicks pass.
// It reports whether cond was met.
func (ts *TestSim) RunUntil(maxTicks int, in Input, cond func(*Session) bool) bool {
	for i := 0; i < maxTicks; i++ {
		if cond(ts.Session) {
			return true
		}
		ts.Session.Advance(ts.DT, in)
	}
	return cond(ts.Session)
}

// RunAutopilot lets ap drive the session for up to maxTicks frames or
// until the run ends. A non-nil reporter samples every frame.
func (ts *TestSim) RunAutopilot(ap Autopilot, maxTicks int, rep *Reporter) {
	for i := 0; i < maxTicks && !ts.Session.GameOver; i++ {
		ts.Session.Advance(ts.DT, ap.Decide(ts.Session))
		if rep != nil {
			rep.Collect(ts.Session)
		}
	}
}

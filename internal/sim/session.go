package sim

// Mode is the coarse phase a session is in.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeShop
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeShop:
		return "shop"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is the host's per-frame intent snapshot. Movement, sprint and fire
// are held states; the rest are edge-triggered by the host.
type Input struct {
	Up, Down, Left, Right bool
	Sprint                bool
	Fire                  bool
	Aim                   Vec2
	Reload                bool
	Dash                  bool

	// ShopChoice is the 1-based number pressed while the shop is open, 0 for none.
	ShopChoice int
	ShopCancel bool
	Start      bool
}

// Shop is the pop-up upgrade store.
type Shop struct {
	Active    bool
	Timer     float64 // seconds until the next opening
	Cards     []ShopCard
	Message   string
	NoteTimer float64 // seconds until Message clears; 0 = sticky
}

// RunStats tallies a session for reports.
type RunStats struct {
	ShotsFired     int
	ShotsHit       int
	Kills          int
	CoinsCollected int
	CoinsEarned    int
	CoinsSpent     int
	Purchases      int
	DamageTaken    float64
	PeakWave       int
}

// Session is the complete state of one run. Restarting means building a new
// Session; nothing is reset in place.
type Session struct {
	tuning Tuning
	rng    Rand

	Player  Player
	Shots   []Shot
	Enemies []Enemy
	Coins   []Coin

	Score     int
	Bank      int
	CoinBonus int
	Wave      int

	SpawnTimer float64
	Shop       Shop

	Menu     bool
	GameOver bool

	Tick    int
	Elapsed float64 // seconds of unpaused play
	Stats   RunStats

	// Log, when set, receives every event with its tick. Nil in the desktop host.
	Log *SimLog

	events []Event
}

// NewSession builds a fresh run sitting at the title menu.
func NewSession(t Tuning, rng Rand) *Session {
	t.Catalog = append([]ShopCard(nil), t.Catalog...)
	s := &Session{
		tuning:     t,
		rng:        rng,
		CoinBonus:  1,
		Wave:       1,
		SpawnTimer: t.InitialSpawnDelay,
		Menu:       true,
	}
	s.Player = newPlayer(&s.tuning)
	s.Shop.Timer = t.ShopFirstDelay
	s.Stats.PeakWave = 1
	return s
}

// Tuning returns the constants this session was built with.
func (s *Session) Tuning() Tuning {
	return s.tuning
}

// Events returns what happened during the most recent Advance. The slice is
// reused by the next call.
func (s *Session) Events() []Event {
	return s.events
}

// Mode reports the current phase.
func (s *Session) Mode() Mode {
	switch {
	case s.Menu:
		return ModeMenu
	case s.GameOver:
		return ModeGameOver
	case s.Shop.Active:
		return ModeShop
	default:
		return ModePlaying
	}
}

// Advance runs one frame. Within a playing frame the order is fixed: player,
// enemy steering, shots and coins, collisions, waves, shop timer.
func (s *Session) Advance(dt float64, in Input) {
	s.events = s.events[:0]
	if dt < 0 {
		dt = 0
	}
	s.Tick++

	switch s.Mode() {
	case ModeMenu:
		if in.Start {
			s.Menu = false
			s.emit(Event{Kind: EventStart})
		}
	case ModeGameOver:
		// Frozen until the host replaces the session.
	case ModeShop:
		s.handleShopInput(in)
		s.updateShopNote(dt)
	case ModePlaying:
		s.Elapsed += dt
		s.updatePlayer(dt, in)
		s.updateEnemies(dt)
		s.updateShots(dt)
		s.updateCoins(dt)
		s.resolveCollisions(dt)
		if s.GameOver {
			return
		}
		s.updateWaves(dt)
		s.updateShopTimer(dt)
		s.updateShopNote(dt)
	}
}

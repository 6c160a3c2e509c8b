package sim

// EventKind names something that happened during one Advance.
type EventKind int

const (
	EventStart EventKind = iota
	EventShot
	EventShotRejected
	EventReloadStart
	EventReloadDone
	EventDash
	EventEnemySpawned
	EventEnemyHit
	EventEnemyKilled
	EventCoinDropped
	EventCoinPickup
	EventPlayerHurt
	EventWaveAdvanced
	EventShopOpened
	EventShopClosed
	EventPurchase
	EventPurchaseDenied
	EventGameOver
)

var eventNames = [...]string{
	EventStart:          "start",
	EventShot:           "shot",
	EventShotRejected:   "shot_rejected",
	EventReloadStart:    "reload_start",
	EventReloadDone:     "reload_done",
	EventDash:           "dash",
	EventEnemySpawned:   "enemy_spawned",
	EventEnemyHit:       "enemy_hit",
	EventEnemyKilled:    "enemy_killed",
	EventCoinDropped:    "coin_dropped",
	EventCoinPickup:     "coin_pickup",
	EventPlayerHurt:     "player_hurt",
	EventWaveAdvanced:   "wave_advanced",
	EventShopOpened:     "shop_opened",
	EventShopClosed:     "shop_closed",
	EventPurchase:       "purchase",
	EventPurchaseDenied: "purchase_denied",
	EventGameOver:       "game_over",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Category groups event kinds for log filtering.
func (k EventKind) Category() string {
	switch k {
	case EventShot, EventShotRejected, EventReloadStart, EventReloadDone, EventDash:
		return "player"
	case EventEnemySpawned, EventEnemyHit, EventEnemyKilled, EventPlayerHurt, EventGameOver:
		return "combat"
	case EventCoinDropped, EventCoinPickup:
		return "coin"
	case EventWaveAdvanced:
		return "wave"
	case EventShopOpened, EventShopClosed, EventPurchase, EventPurchaseDenied:
		return "shop"
	default:
		return "session"
	}
}

// Event is one record handed to the host after an Advance. Hosts use it for
// sound cues and on-screen feed lines; the simulation never reads it back.
type Event struct {
	Kind  EventKind
	Pos   Vec2
	Value float64
	Label string
}

// emit records ev for this frame and, if attached, in the session log.
func (s *Session) emit(ev Event) {
	s.events = append(s.events, ev)
	if s.Log == nil {
		return
	}
	// Per-frame contact damage and rejected triggers would swamp the log.
	if ev.Kind == EventPlayerHurt || ev.Kind == EventShotRejected {
		s.Log.AddVerbose(s.Tick, ev.Kind.Category(), ev.Kind.String(), ev.Label, ev.Value)
		return
	}
	s.Log.Add(s.Tick, ev.Kind.Category(), ev.Kind.String(), ev.Label, ev.Value)
}

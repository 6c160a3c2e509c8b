package sim

import (
	"fmt"
	"strings"
)

// SimLogEntry is one event a session recorded, flattened for assertions and
// the headless report.
type SimLogEntry struct {
	Tick     int
	Category string  // player, combat, coin, wave, shop, session
	Key      string  // event kind, e.g. enemy_killed
	Value    string  // label: card name, wave name
	NumVal   float64 // event value: score, coins, damage
}

//	[T=0042] combat  enemy_killed     +30
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-7s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// SimLog is an append-only record of a session's events. Contact damage and
// refused triggers arrive every frame, so they are kept only when verbose.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

func (sl *SimLog) Add(tick int, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{tick, category, key, value, numVal})
}

// AddVerbose is Add for per-frame noise.
func (sl *SimLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if sl.verbose {
		sl.Add(tick, category, key, value, numVal)
	}
}

func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Count reports how many entries match; an empty category or key matches
// anything.
func (sl *SimLog) Count(category, key string) int {
	n := 0
	for _, e := range sl.entries {
		if e.matches(category, key) {
			n++
		}
	}
	return n
}

// LastOf returns the newest matching entry.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		if sl.entries[i].matches(category, key) {
			return sl.entries[i], true
		}
	}
	return SimLogEntry{}, false
}

func (e SimLogEntry) matches(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// Dump renders the whole log for a failing test.
func (sl *SimLog) Dump() string {
	var b strings.Builder
	for _, e := range sl.entries {
		fmt.Fprintln(&b, e)
	}
	return b.String()
}

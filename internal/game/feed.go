package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/Garsondee/Last-Hope/internal/sim"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 60
	feedLineHeight = 15
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick     int
	Category string // event category, or "host" for notes from the host
	Message  string
}

// EventFeed is a ring buffer of notable events rendered beside the arena.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (f *EventFeed) Add(tick int, category, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Category: category, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// AddEvents records the feed-worthy events of one frame.
func (f *EventFeed) AddEvents(tick int, evs []sim.Event) {
	for _, ev := range evs {
		if msg, ok := describe(ev); ok {
			f.Add(tick, ev.Kind.Category(), msg)
		}
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// describe renders ev as a feed line. Per-shot and per-frame events are
// left out.
func describe(ev sim.Event) (string, bool) {
	switch ev.Kind {
	case sim.EventStart:
		return "patrol started", true
	case sim.EventReloadStart:
		return "reloading", true
	case sim.EventReloadDone:
		return fmt.Sprintf("reloaded (%d)", int(ev.Value)), true
	case sim.EventDash:
		return "dash", true
	case sim.EventEnemyKilled:
		return fmt.Sprintf("enemy down +%d", int(ev.Value)), true
	case sim.EventCoinPickup:
		return fmt.Sprintf("+%d coin", int(ev.Value)), true
	case sim.EventWaveAdvanced:
		return fmt.Sprintf("%s incoming", ev.Label), true
	case sim.EventShopOpened:
		return "shop opened", true
	case sim.EventShopClosed:
		return fmt.Sprintf("shop closed, next in %.0fs", ev.Value), true
	case sim.EventPurchase:
		return fmt.Sprintf("bought %s (-%d)", ev.Label, int(ev.Value)), true
	case sim.EventPurchaseDenied:
		return fmt.Sprintf("can't afford %s", ev.Label), true
	case sim.EventGameOver:
		return fmt.Sprintf("overrun on %s, score %d", ev.Label, int(ev.Value)), true
	}
	return "", false
}

func feedColor(category string) color.Color {
	switch category {
	case "combat":
		return colNeonPink
	case "coin":
		return colCoinGold
	case "wave":
		return colNeonBlue
	case "shop":
		return colornames.Palegreen
	case "host":
		return colHeatOrange
	default:
		return colornames.Lightgray
	}
}

// Draw renders the feed panel at panelX, newest entry at the bottom.
func (f *EventFeed) Draw(screen *ebiten.Image, face text.Face, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, feedPanelWidth, float32(panelH), color.RGBA{R: 14, G: 14, B: 20, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, colMidGray, false)

	vector.FillRect(screen, float32(panelX), 0, feedPanelWidth, 20, colMidGray, false)
	drawText(screen, face, "EVENT FEED", float64(panelX+8), 4, colNeonBlue)

	entries := f.Recent()
	maxVisible := (panelH - 28) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	const recent = 3
	y := 26
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y-1), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 40, G: 40, B: 56, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, feedColor(e.Category), false)
		drawText(screen, face, fmt.Sprintf("%5d %s", e.Tick, e.Message), float64(panelX+12), float64(y), colornames.White)
		y += feedLineHeight
	}
}

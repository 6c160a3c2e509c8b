// Package game is the desktop host. It polls the keyboard and mouse, runs
// one simulation frame per tick, and draws the arena, the HUD and the
// event feed.
package game

import (
	"fmt"
	"math"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Last-Hope/internal/anim"
	"github.com/Garsondee/Last-Hope/internal/audio"
	"github.com/Garsondee/Last-Hope/internal/config"
	"github.com/Garsondee/Last-Hope/internal/sim"
)

type Game struct {
	cfg   config.Config
	base  zerolog.Logger // without the per-session fields
	log   zerolog.Logger
	sound *audio.SoundManager

	session   *sim.Session
	sessionID uuid.UUID
	runs      int // sessions started, including the current one

	clips    anim.Set
	anim     *anim.Animator
	feed     *EventFeed
	prevKeys keySnapshot
	trigger  triggerLatch
	dt       float64

	width  int // arena width; the feed panel sits to the right
	height int
	face   text.Face

	copyText func(string) error
}

// New builds the host around a fresh session at the title menu.
func New(cfg config.Config, sound *audio.SoundManager, logger zerolog.Logger) *Game {
	t := cfg.Tuning
	g := &Game{
		cfg:      cfg,
		base:     logger,
		sound:    sound,
		clips:    anim.DefaultSet(),
		feed:     NewEventFeed(),
		dt:       1 / t.RefFPS,
		width:    int(t.Width),
		height:   int(t.Height),
		face:     text.NewGoXFace(basicfont.Face7x13),
		copyText: clipboard.WriteAll,
	}
	g.newSession()
	return g
}

// TPS is the tick rate the per-frame step was tuned for.
func (g *Game) TPS() int {
	return int(math.Round(g.cfg.Tuning.RefFPS))
}

// WindowSize is the initial window size at the configured scale.
func (g *Game) WindowSize() (int, int) {
	w, h := g.Layout(0, 0)
	return int(float64(w) * g.cfg.Host.Scale), int(float64(h) * g.cfg.Host.Scale)
}

// newSession replaces the session wholesale. A fixed seed is offset by the
// run number so restarts differ but stay reproducible.
func (g *Game) newSession() {
	seed := g.cfg.Host.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += int64(g.runs)
	}
	g.runs++

	g.session = sim.NewSession(g.cfg.Tuning, sim.NewRand(seed))
	g.sessionID = uuid.New()
	g.anim = anim.New(g.clips)
	g.log = g.base.With().Str("session", g.sessionID.String()).Logger()
	g.log.Info().
		Int64("seed", seed).
		Str("profile", g.cfg.Profile).
		Int("run", g.runs).
		Msg("session started")
}

func (g *Game) Update() error {
	mode := g.session.Mode()

	// Escape closes the shop through the input path; anywhere else it quits.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && mode != sim.ModeShop {
		g.log.Info().Int("tick", g.session.Tick).Msg("quit")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyReport()
	}
	if mode == sim.ModeGameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.newSession()
		g.feed.Add(0, "host", fmt.Sprintf("run %d", g.runs))
		return nil
	}

	cur := readKeys()
	in := buildInput(cur, g.prevKeys, mode)
	g.trigger.apply(&in, cur)
	g.prevKeys = cur
	g.step(in)
	return nil
}

// step advances the session one frame and fans its events out to the
// animator, the feed, the speaker and the log.
func (g *Game) step(in sim.Input) {
	s := g.session
	s.Advance(g.dt, in)
	evs := s.Events()

	g.anim.Update(&s.Player, g.dt)
	g.feed.AddEvents(s.Tick, evs)
	g.sound.PlayEvents(evs)
	g.logEvents(evs)
}

func (g *Game) toggleMute() {
	muted := !g.sound.Muted()
	g.sound.SetMuted(muted)
	if !muted {
		if err := g.sound.Initialize(); err != nil {
			g.log.Warn().Err(err).Msg("audio unavailable, staying muted")
			g.sound.SetMuted(true)
			return
		}
	}
	g.log.Info().Bool("muted", muted).Msg("audio toggled")
}

// copyReport puts the run report on the clipboard.
func (g *Game) copyReport() {
	body := fmt.Sprintf("session=%s profile=%s\n%s", g.sessionID, g.cfg.Profile, g.session.Report())
	if err := g.copyText(body); err != nil {
		g.log.Warn().Err(err).Msg("clipboard copy failed")
		g.feed.Add(g.session.Tick, "host", "clipboard unavailable")
		return
	}
	g.feed.Add(g.session.Tick, "host", "report copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawCoins(screen)
	g.drawEnemies(screen)
	g.drawShots(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)

	switch g.session.Mode() {
	case sim.ModeMenu:
		g.drawMenu(screen)
	case sim.ModeShop:
		g.drawShop(screen)
	case sim.ModeGameOver:
		g.drawGameOver(screen)
	}

	g.feed.Draw(screen, g.face, g.width, g.height)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width + feedPanelWidth, g.height
}

package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Last-Hope/internal/anim"
	"github.com/Garsondee/Last-Hope/internal/audio"
	"github.com/Garsondee/Last-Hope/internal/config"
	"github.com/Garsondee/Last-Hope/internal/sim"
)

func testGame(t *testing.T) *Game {
	t.Helper()
	cfg, err := config.Profile("classic")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Host.Seed = 7
	return New(cfg, audio.NewSoundManager(0, true), zerolog.Nop())
}

func lastFeed(t *testing.T, g *Game) FeedEntry {
	t.Helper()
	recent := g.feed.Recent()
	if len(recent) == 0 {
		t.Fatal("feed is empty")
	}
	return recent[len(recent)-1]
}

func TestGame_Layout(t *testing.T) {
	g := testGame(t)
	w, h := g.Layout(0, 0)
	if w != 1100+feedPanelWidth || h != 720 {
		t.Fatalf("layout = %dx%d", w, h)
	}
	g.cfg.Host.Scale = 0.5
	if ww, wh := g.WindowSize(); ww != w/2 || wh != h/2 {
		t.Fatalf("window = %dx%d", ww, wh)
	}
	if g.TPS() != 60 {
		t.Fatalf("tps = %d", g.TPS())
	}
}

func TestGame_StepLeavesMenu(t *testing.T) {
	g := testGame(t)
	if g.session.Mode() != sim.ModeMenu {
		t.Fatalf("mode = %s", g.session.Mode())
	}
	g.step(sim.Input{Start: true})
	if g.session.Mode() != sim.ModePlaying {
		t.Fatalf("mode after start = %s", g.session.Mode())
	}
	if e := lastFeed(t, g); e.Message != "patrol started" {
		t.Fatalf("feed = %+v", e)
	}
}

func TestGame_AnimatorFollowsPlayer(t *testing.T) {
	g := testGame(t)
	g.step(sim.Input{Start: true})
	p := g.session.Player.Pos
	g.step(sim.Input{Fire: true, Aim: sim.Vec2{X: p.X + 100, Y: p.Y}})
	if g.anim.State != anim.StateShoot {
		t.Fatalf("anim = %s after firing", g.anim.State)
	}
	for i := 0; i < 20; i++ {
		g.step(sim.Input{Right: true})
	}
	if g.anim.State != anim.StateRun {
		t.Fatalf("anim = %s while walking", g.anim.State)
	}
}

func TestGame_NewSessionReplacesRun(t *testing.T) {
	g := testGame(t)
	g.step(sim.Input{Start: true})
	oldID, old := g.sessionID, g.session

	g.newSession()
	if g.session == old || g.sessionID == oldID {
		t.Fatal("restart kept the old session")
	}
	if g.runs != 2 || g.session.Mode() != sim.ModeMenu {
		t.Fatalf("runs=%d mode=%s", g.runs, g.session.Mode())
	}
}

func TestGame_CopyReport(t *testing.T) {
	g := testGame(t)
	var got string
	g.copyText = func(s string) error {
		got = s
		return nil
	}
	g.copyReport()
	if !strings.Contains(got, g.sessionID.String()) || !strings.Contains(got, "outcome=in_progress") {
		t.Fatalf("clipboard body:\n%s", got)
	}
	if e := lastFeed(t, g); e.Message != "report copied" || e.Category != "host" {
		t.Fatalf("feed = %+v", e)
	}

	g.copyText = func(string) error { return errors.New("no display") }
	g.copyReport()
	if e := lastFeed(t, g); e.Message != "clipboard unavailable" {
		t.Fatalf("feed = %+v", e)
	}
}

func TestBuildInput_HeldControls(t *testing.T) {
	cur := keySnapshot{up: true, left: true, sprint: true, fire: true, aimX: 300, aimY: 200}
	in := buildInput(cur, cur, sim.ModePlaying)
	if !in.Up || !in.Left || in.Down || in.Right || !in.Sprint || !in.Fire {
		t.Fatalf("held controls = %+v", in)
	}
	if in.Aim != (sim.Vec2{X: 300, Y: 200}) {
		t.Fatalf("aim = %+v", in.Aim)
	}
}

func TestBuildInput_EdgeTriggered(t *testing.T) {
	down := keySnapshot{reload: true, dash: true}
	first := buildInput(down, keySnapshot{}, sim.ModePlaying)
	if !first.Reload || !first.Dash {
		t.Fatalf("press not seen: %+v", first)
	}
	held := buildInput(down, down, sim.ModePlaying)
	if held.Reload || held.Dash {
		t.Fatalf("held key repeated: %+v", held)
	}
}

func TestBuildInput_StartOnlyInMenu(t *testing.T) {
	cur := keySnapshot{start: true}
	if !buildInput(cur, keySnapshot{}, sim.ModeMenu).Start {
		t.Fatal("start ignored at the menu")
	}
	if buildInput(cur, keySnapshot{}, sim.ModePlaying).Start {
		t.Fatal("start reported during play")
	}
}

func TestTriggerLatch_SpaceStartDoesNotShoot(t *testing.T) {
	g := testGame(t)
	space := keySnapshot{start: true, fire: true, aimX: 700, aimY: 300}

	frames := []keySnapshot{space, space, space, {}, space}
	for i, cur := range frames {
		in := buildInput(cur, g.prevKeys, g.session.Mode())
		g.trigger.apply(&in, cur)
		g.prevKeys = cur
		g.step(in)
		if i < 4 && g.session.Stats.ShotsFired != 0 {
			t.Fatalf("frame %d: held start key fired a shot", i)
		}
	}
	if g.session.Mode() != sim.ModePlaying {
		t.Fatalf("mode = %s", g.session.Mode())
	}
	if g.session.Stats.ShotsFired != 1 {
		t.Fatalf("shots after release and press = %d, want 1", g.session.Stats.ShotsFired)
	}
}

func TestBuildInput_Shop(t *testing.T) {
	var cur keySnapshot
	cur.digits[3] = true

	if in := buildInput(cur, keySnapshot{}, sim.ModeShop); in.ShopChoice != 3 {
		t.Fatalf("choice = %d, want 3", in.ShopChoice)
	}
	if in := buildInput(cur, cur, sim.ModeShop); in.ShopChoice != 0 {
		t.Fatalf("held digit chose %d", in.ShopChoice)
	}
	if in := buildInput(cur, keySnapshot{}, sim.ModePlaying); in.ShopChoice != 0 {
		t.Fatalf("digit outside the shop chose %d", in.ShopChoice)
	}

	var zero keySnapshot
	zero.digits[0] = true
	if in := buildInput(zero, keySnapshot{}, sim.ModeShop); in.ShopChoice != 0 {
		t.Fatalf("0 key chose %d", in.ShopChoice)
	}

	for _, k := range []keySnapshot{{cancel: true}, {confirm: true}} {
		if !buildInput(k, keySnapshot{}, sim.ModeShop).ShopCancel {
			t.Fatalf("%+v did not close the shop", k)
		}
	}
}

func TestEventFeed_RingBuffer(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+10; i++ {
		f.Add(i, "host", "line")
	}
	recent := f.Recent()
	if len(recent) != feedMaxEntries {
		t.Fatalf("len = %d", len(recent))
	}
	if recent[0].Tick != 10 || recent[len(recent)-1].Tick != feedMaxEntries+9 {
		t.Fatalf("order: first=%d last=%d", recent[0].Tick, recent[len(recent)-1].Tick)
	}
}

func TestEventFeed_SkipsPerFrameEvents(t *testing.T) {
	f := NewEventFeed()
	f.AddEvents(5, []sim.Event{
		{Kind: sim.EventShot},
		{Kind: sim.EventShotRejected},
		{Kind: sim.EventPlayerHurt, Value: 0.5},
		{Kind: sim.EventEnemyHit},
		{Kind: sim.EventEnemyKilled, Value: 30},
	})
	recent := f.Recent()
	if len(recent) != 1 {
		t.Fatalf("entries = %+v", recent)
	}
	if recent[0].Message != "enemy down +30" || recent[0].Category != "combat" || recent[0].Tick != 5 {
		t.Fatalf("entry = %+v", recent[0])
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		ev   sim.Event
		want string
	}{
		{sim.Event{Kind: sim.EventPurchase, Label: "heat sink", Value: 6}, "bought heat sink (-6)"},
		{sim.Event{Kind: sim.EventPurchaseDenied, Label: "coin printer"}, "can't afford coin printer"},
		{sim.Event{Kind: sim.EventWaveAdvanced, Label: "wave 3"}, "wave 3 incoming"},
		{sim.Event{Kind: sim.EventCoinPickup, Value: 2}, "+2 coin"},
		{sim.Event{Kind: sim.EventGameOver, Label: "wave 2", Value: 420}, "overrun on wave 2, score 420"},
	}
	for _, tt := range tests {
		got, ok := describe(tt.ev)
		if !ok || got != tt.want {
			t.Errorf("describe(%s) = %q, %v; want %q", tt.ev.Kind, got, ok, tt.want)
		}
	}
}

func TestHeatColorRamp(t *testing.T) {
	if c := heatColor(0); c.R != 150 || c.G != 100 || c.B != 40 {
		t.Fatalf("cold = %+v", c)
	}
	if c := heatColor(1); c.R != 255 || c.G != 0 {
		t.Fatalf("hot = %+v", c)
	}
	if heatColor(4) != heatColor(1) || heatColor(-1) != heatColor(0) {
		t.Fatal("ramp not clamped")
	}
}

func TestCardColor(t *testing.T) {
	if cardColor(6, 6) == cardColor(6, 5) {
		t.Fatal("affordable and unaffordable cards share a colour")
	}
}

func TestPoseFor(t *testing.T) {
	if ps := poseFor(anim.StateShoot, 0, 3); !ps.flash {
		t.Fatal("no muzzle flash on the first shoot frame")
	}
	if ps := poseFor(anim.StateShoot, 2, 3); ps.flash {
		t.Fatal("muzzle flash on the last shoot frame")
	}
	if ps := poseFor(anim.StateReload, 3, 6); ps.orbit < 0 {
		t.Fatal("reload spinner hidden")
	}
	if ps := poseFor(anim.StateIdle, 0, 4); ps.orbit >= 0 || ps.flash {
		t.Fatalf("idle pose = %+v", ps)
	}

	prev := 2.0
	for f := 0; f < 5; f++ {
		ps := poseFor(anim.StateDeath, f, 5)
		if ps.scale >= prev {
			t.Fatalf("death frame %d scale %.2f did not shrink", f, ps.scale)
		}
		prev = ps.scale
	}
}

func TestEventLevel(t *testing.T) {
	if eventLevel(sim.EventPlayerHurt) != zerolog.TraceLevel {
		t.Fatal("contact damage should log at trace")
	}
	if eventLevel(sim.EventShot) != zerolog.DebugLevel {
		t.Fatal("shots should log at debug")
	}
	if eventLevel(sim.EventPurchase) != zerolog.InfoLevel {
		t.Fatal("purchases should log at info")
	}
}

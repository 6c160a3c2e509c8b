package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Last-Hope/internal/config"
	"github.com/Garsondee/Last-Hope/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64

	firstKillTick     int
	firstPurchaseTick int
	firstWaveTick     int
	deathTick         int

	shopVisits int
	purchases  map[string]int

	report        sim.RunReport
	windowSummary sim.WindowSummary
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var profile string
	var path string

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 5*60*60, "tick cap per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&profile, "profile", "", "tuning profile ("+strings.Join(config.Profiles(), ", ")+")")
	flag.StringVar(&path, "config", "", "YAML file layered over the profile")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	cfg, err := config.Load(profile, path)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Headless Survival Report ===\n")
	fmt.Printf("profile=%s gate=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		cfg.Profile, cfg.Tuning.FireGate, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runAutopilot(i+1, seed, ticks, cfg.Tuning)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runAutopilot plays one seeded run with the scripted player.
func runAutopilot(runIndex int, seed int64, ticks int, t sim.Tuning) runStats {
	ts := sim.NewTestSim(
		sim.WithTuning(t),
		sim.WithSeed(seed),
	)
	rep := sim.NewReporter(60)
	ts.RunAutopilot(sim.DefaultAutopilot(), ticks, rep)

	report := ts.Session.Report()
	if report.Outcome == sim.OutcomeInProgress {
		report.Outcome = sim.OutcomeSurvived
	}

	entries := ts.SimLog.Entries()
	purchases := map[string]int{}
	for _, e := range entries {
		if e.Category == "shop" && e.Key == "purchase" {
			purchases[e.Value]++
		}
	}

	return runStats{
		runIndex:          runIndex,
		seed:              seed,
		firstKillTick:     firstTick(entries, "combat", "enemy_killed"),
		firstPurchaseTick: firstTick(entries, "shop", "purchase"),
		firstWaveTick:     firstTick(entries, "wave", "wave_advanced"),
		deathTick:         firstTick(entries, "combat", "game_over"),
		shopVisits:        ts.SimLog.Count("shop", "shop_opened"),
		purchases:         purchases,
		report:            report,
		windowSummary:     rep.Summarize(0, ts.Session.Tick),
	}
}

func firstTick(entries []sim.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Print(rs.report.String())
	fmt.Printf("phase_markers: first_kill=%d first_wave=%d first_purchase=%d death=%d\n",
		rs.firstKillTick, rs.firstWaveTick, rs.firstPurchaseTick, rs.deathTick)
	fmt.Printf("shop: visits=%d bought=[%s]\n", rs.shopVisits, joinCounts(rs.purchases))
	ws := rs.windowSummary
	fmt.Printf("window: samples=%d avg_enemies=%.1f peak_enemies=%d min_hp=%.0f avg_heat=%.2f\n",
		ws.Samples, ws.AvgEnemies, ws.PeakEnemies, ws.MinHealth, ws.AvgHeat)
	if turtled, reason := detectTurtle(rs); turtled {
		fmt.Printf("note: turtle run (%s)\n", reason)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalKills := 0
	totalPurchases := 0
	totalTime := 0.0
	peakWave := 0
	hits, fired := 0, 0

	deathTicks := make([]int, 0, len(all))
	killTicks := make([]int, 0, len(all))
	cards := map[string]int{}

	for _, rs := range all {
		r := rs.report
		totalScore += r.Score
		totalKills += r.Stats.Kills
		totalPurchases += r.Stats.Purchases
		totalTime += r.Elapsed
		hits += r.Stats.ShotsHit
		fired += r.Stats.ShotsFired
		if r.Wave > peakWave {
			peakWave = r.Wave
		}
		if rs.deathTick >= 0 {
			deathTicks = append(deathTicks, rs.deathTick)
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		for name, n := range rs.purchases {
			cards[name] += n
		}
	}

	overrun, survived := outcomeCounts(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d overrun=%d survived=%d\n", len(all), overrun, survived)
	fmt.Printf("avg_per_run: score=%.1f kills=%.1f purchases=%.1f time=%.1fs\n",
		avg(totalScore, len(all)), avg(totalKills, len(all)), avg(totalPurchases, len(all)), totalTime/float64(len(all)))
	fmt.Printf("accuracy=%.0f%% peak_wave=%d\n", ratio(hits, fired)*100, peakWave)
	fmt.Printf("phase_marker_avg_ticks: first_kill=%s death=%s\n", avgTickString(killTicks), avgTickString(deathTicks))
	if top := topCard(cards); top != "" {
		fmt.Printf("favourite_card=%s\n", top)
	}
}

// outcomeCounts splits runs into deaths and runs cut off alive.
func outcomeCounts(all []runStats) (overrun, survived int) {
	for _, rs := range all {
		switch rs.report.Outcome {
		case sim.OutcomeOverrun:
			overrun++
		case sim.OutcomeSurvived:
			survived++
		}
	}
	return overrun, survived
}

// detectTurtle flags runs that lived to the cutoff without pressing on:
// few kills for the time played and no shop use.
func detectTurtle(rs runStats) (bool, string) {
	r := rs.report
	if r.Outcome != sim.OutcomeSurvived {
		return false, "not_survived"
	}
	minutes := r.Elapsed / 60
	if minutes <= 0 {
		return false, "no_time"
	}
	killRate := float64(r.Stats.Kills) / minutes
	var reasons []string
	if killRate < 10 {
		reasons = append(reasons, fmt.Sprintf("low_kill_rate=%.1f/min", killRate))
	}
	if r.Stats.Purchases == 0 {
		reasons = append(reasons, "no_purchases")
	}
	if len(reasons) < 2 {
		return false, strings.Join(reasons, ",")
	}
	return true, strings.Join(reasons, ",")
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

// topCard returns the most bought card, ties broken by name.
func topCard(counts map[string]int) string {
	best := ""
	bestN := 0
	for k, v := range counts {
		if v > bestN || (v == bestN && k < best) {
			best = k
			bestN = v
		}
	}
	return best
}

func joinCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}

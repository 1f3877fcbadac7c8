package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstShooterTick int
	firstBossTick    int
	firstHitTick     int
	firstBossKill    int
	deathTick        int

	killsByKind map[string]int
	pickups     int
	dodges      int

	report    game.RunReport
	purchases []game.PurchaseResult // bought with this run's coins before the next run
}

type options struct {
	runs     int
	ticks    int
	seedBase int64
	seedStep int64
	carry    bool
	tun      game.Tuning
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var tuningPath string
	var carry bool
	var copyOut bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 7200, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&tuningPath, "tuning", "", "YAML balance file (defaults when empty)")
	flag.BoolVar(&carry, "carry", true, "carry the profile and shop between runs")
	flag.BoolVar(&copyOut, "copy", false, "copy the whole report to the clipboard")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	tun := game.DefaultTuning()
	if tuningPath != "" {
		var err error
		if tun, err = game.LoadTuning(tuningPath); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	out := report(options{
		runs:     runs,
		ticks:    ticks,
		seedBase: seedBase,
		seedStep: seedStep,
		carry:    carry,
		tun:      tun,
	})
	fmt.Print(out)

	if copyOut {
		if err := clipboard.WriteAll(out); err != nil {
			log.Printf("clipboard unavailable: %v", err)
		}
	}
}

// report runs the batch and renders the full text.
func report(o options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Headless Arena Report ===\n")
	fmt.Fprintf(&sb, "runs=%d ticks=%d seed_base=%d seed_step=%d carry=%t\n\n", o.runs, o.ticks, o.seedBase, o.seedStep, o.carry)

	all := make([]runStats, 0, o.runs)
	profile := game.DefaultSnapshot(o.tun)
	for i := 0; i < o.runs; i++ {
		seed := o.seedBase + int64(i)*o.seedStep
		if !o.carry {
			profile = game.DefaultSnapshot(o.tun)
		}
		stats, next := runAutopilot(i+1, seed, o.ticks, o.tun, profile)
		profile = next
		all = append(all, stats)
		sb.WriteString(formatRun(stats))
	}
	sb.WriteString(formatAggregate(all))
	return sb.String()
}

// runAutopilot plays one seeded run from profile, then shops with what it
// earned and returns the profile for the next run.
func runAutopilot(runIndex int, seed int64, ticks int, tun game.Tuning, profile game.Snapshot) (runStats, game.Snapshot) {
	ts := game.NewTestSim(
		game.WithTuning(tun),
		game.WithSeed(seed),
		game.WithSnapshot(profile),
		game.WithAutopilot(),
	)
	ts.RunTicks(ticks)

	stats := collect(runIndex, seed, ts.SimLog.Entries())
	stats.report = ts.Report()
	stats.purchases = ts.Autopilot.Shop(ts.Run)
	return stats, ts.Run.Snapshot()
}

func collect(runIndex int, seed int64, entries []game.SimLogEntry) runStats {
	rs := runStats{
		runIndex:         runIndex,
		seed:             seed,
		firstShooterTick: firstTick(entries, "spawn", "shooter"),
		firstBossTick:    firstTick(entries, "spawn", "boss"),
		firstHitTick:     firstTick(entries, "combat", "player_hit"),
		firstBossKill:    firstTick(entries, "combat", "boss_kill"),
		deathTick:        firstTick(entries, "run", "end"),
		killsByKind:      map[string]int{},
	}
	for _, e := range entries {
		switch e.Category {
		case "combat":
			switch e.Key {
			case "kill":
				rs.killsByKind[e.Entity]++
			case "boss_kill":
				rs.killsByKind["boss"]++
			case "dodge":
				rs.dodges++
			}
		case "economy":
			if e.Key == "pickup" {
				rs.pickups++
			}
		}
	}
	return rs
}

func firstTick(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func formatRun(rs runStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	sb.WriteString(rs.report.Format())
	fmt.Fprintf(&sb, "phase_markers: first_shooter=%d first_boss=%d first_hit=%d first_boss_kill=%d death=%d\n",
		rs.firstShooterTick, rs.firstBossTick, rs.firstHitTick, rs.firstBossKill, rs.deathTick)
	fmt.Fprintf(&sb, "kills_by_kind: %s pickups=%d dodges=%d\n", joinCounts(rs.killsByKind), rs.pickups, rs.dodges)
	if rs.report.Window != nil {
		sb.WriteString(rs.report.Window.Format())
	}
	fmt.Fprintf(&sb, "shopping: %s\n\n", formatPurchases(rs.purchases))
	return sb.String()
}

func formatAggregate(all []runStats) string {
	reports := make([]game.RunReport, 0, len(all))
	shooterTicks := make([]int, 0, len(all))
	bossTicks := make([]int, 0, len(all))
	hitTicks := make([]int, 0, len(all))
	kinds := map[string]int{}
	bought := map[string]int{}
	for _, rs := range all {
		reports = append(reports, rs.report)
		if rs.firstShooterTick >= 0 {
			shooterTicks = append(shooterTicks, rs.firstShooterTick)
		}
		if rs.firstBossTick >= 0 {
			bossTicks = append(bossTicks, rs.firstBossTick)
		}
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
		for k, n := range rs.killsByKind {
			kinds[k] += n
		}
		for _, p := range rs.purchases {
			bought[string(p.ID)]++
		}
	}

	var sb strings.Builder
	sb.WriteString("=== Aggregate ===\n")
	sb.WriteString(game.Aggregate(reports).Format())
	fmt.Fprintf(&sb, "phase_marker_avg_ticks: first_shooter=%s first_boss=%s first_hit=%s\n",
		avgTickString(shooterTicks), avgTickString(bossTicks), avgTickString(hitTicks))
	fmt.Fprintf(&sb, "kills_by_kind: %s\n", joinCounts(kinds))
	fmt.Fprintf(&sb, "purchases: %s\n", joinCounts(bought))
	return sb.String()
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

func formatPurchases(ps []game.PurchaseResult) string {
	if len(ps) == 0 {
		return "none"
	}
	spent := 0
	counts := map[string]int{}
	for _, p := range ps {
		spent += p.Cost
		counts[string(p.ID)]++
	}
	return fmt.Sprintf("%s spent=%d", joinCounts(counts), spent)
}

// joinCounts renders a count map as sorted key=n pairs.
func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, ",")
}

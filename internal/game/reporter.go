package game

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the default sliding window for recent-pressure reports (~10s at 60TPS).
const reportWindowTicks = 600

// PressureSample captures the arena load at one tick.
type PressureSample struct {
	Tick          int
	Enemies       int
	Shooters      int
	EnemyBullets  int
	Coins         int
	Health        int
	Armor         int
	SpawnInterval float64
	Level         int
	BossActive    bool
}

// SimReporter collects periodic samples from a run and summarises them over a
// sliding window.
type SimReporter struct {
	history     []PressureSample
	windowTicks int
}

// NewSimReporter creates a reporter with the given window size.
func NewSimReporter(windowTicks int) *SimReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SimReporter{windowTicks: windowTicks}
}

// Collect samples the current run. Call it periodically (e.g. every 60 ticks).
func (sr *SimReporter) Collect(r *Run) {
	s := PressureSample{
		Tick:          r.Tick,
		Enemies:       len(r.Enemies),
		EnemyBullets:  len(r.EnemyBullets),
		Coins:         len(r.Coins),
		Health:        r.Player.Health,
		Armor:         r.Player.Armor,
		SpawnInterval: r.Spawner.Interval,
		Level:         r.Spawner.Level,
		BossActive:    r.Spawner.BossActive,
	}
	for _, e := range r.Enemies {
		if e.HasShootBehavior() {
			s.Shooters++
		}
	}
	sr.history = append(sr.history, s)
}

// Latest returns the most recent sample, or nil if none collected yet.
func (sr *SimReporter) Latest() *PressureSample {
	if len(sr.history) == 0 {
		return nil
	}
	return &sr.history[len(sr.history)-1]
}

// WindowSummary averages the samples inside the recent window.
func (sr *SimReporter) WindowSummary() *WindowReport {
	if len(sr.history) == 0 {
		return nil
	}
	cutoff := sr.history[len(sr.history)-1].Tick - sr.windowTicks
	var window []PressureSample
	for i := len(sr.history) - 1; i >= 0; i-- {
		if sr.history[i].Tick < cutoff {
			break
		}
		window = append(window, sr.history[i])
	}

	n := float64(len(window))
	wr := &WindowReport{
		FromTick:    window[len(window)-1].Tick,
		ToTick:      window[0].Tick,
		SampleCount: len(window),
		MinHealth:   window[0].Health,
	}
	for _, s := range window {
		wr.AvgEnemies += float64(s.Enemies)
		wr.AvgShooters += float64(s.Shooters)
		wr.AvgEnemyBullets += float64(s.EnemyBullets)
		wr.AvgCoins += float64(s.Coins)
		wr.AvgHealth += float64(s.Health)
		wr.MinHealth = minInt(wr.MinHealth, s.Health)
		wr.PeakEnemies = maxInt(wr.PeakEnemies, s.Enemies)
		if s.BossActive {
			wr.BossSamples++
		}
	}
	wr.AvgEnemies /= n
	wr.AvgShooters /= n
	wr.AvgEnemyBullets /= n
	wr.AvgCoins /= n
	wr.AvgHealth /= n
	wr.SpawnInterval = window[0].SpawnInterval
	return wr
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	AvgEnemies      float64
	AvgShooters     float64
	AvgEnemyBullets float64
	AvgCoins        float64
	AvgHealth       float64

	PeakEnemies   int
	MinHealth     int
	BossSamples   int
	SpawnInterval float64 // at the end of the window
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Pressure Report (T=%d..%d, %d samples) ===\n", wr.FromTick, wr.ToTick, wr.SampleCount)
	fmt.Fprintf(&sb, "  enemies      avg=%.1f peak=%d shooters=%.1f\n", wr.AvgEnemies, wr.PeakEnemies, wr.AvgShooters)
	fmt.Fprintf(&sb, "  enemy_shots  avg=%.1f\n", wr.AvgEnemyBullets)
	fmt.Fprintf(&sb, "  coins_loose  avg=%.1f\n", wr.AvgCoins)
	fmt.Fprintf(&sb, "  health       avg=%.1f min=%d\n", wr.AvgHealth, wr.MinHealth)
	fmt.Fprintf(&sb, "  boss_samples %d  spawn_interval=%.3fs\n", wr.BossSamples, wr.SpawnInterval)
	return sb.String()
}

// RunReport summarises one finished (or truncated) run.
type RunReport struct {
	RunID    string
	Seed     int64
	Ticks    int
	Died     bool
	Score    int
	MaxLevel int
	Stats    RunStats
	Coins    int // balance at the end
	Window   *WindowReport
}

// NewRunReport builds the report for r.
func NewRunReport(r *Run, seed int64, reporter *SimReporter) RunReport {
	rep := RunReport{
		RunID:    r.ID.String(),
		Seed:     seed,
		Ticks:    r.Tick,
		Died:     r.Over(),
		Score:    r.Score,
		MaxLevel: maxInt(r.Stats.MaxLevel, r.Spawner.Level),
		Stats:    r.Stats,
		Coins:    r.Player.Coins,
	}
	if reporter != nil {
		rep.Window = reporter.WindowSummary()
	}
	return rep
}

// Format renders the report as key=value lines.
func (rr RunReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run_id=%s seed=%d ticks=%d died=%t\n", rr.RunID, rr.Seed, rr.Ticks, rr.Died)
	fmt.Fprintf(&sb, "score=%d max_level=%d boss_kills=%d kills=%d\n", rr.Score, rr.MaxLevel, rr.Stats.BossKills, rr.Stats.Kills)
	fmt.Fprintf(&sb, "shots=%d hits_taken=%d dodges=%d coins_collected=%d coins_end=%d purchases=%d\n",
		rr.Stats.ShotsFired, rr.Stats.HitsTaken, rr.Stats.Dodges, rr.Stats.CoinsCollected, rr.Coins, rr.Stats.Purchases)
	return sb.String()
}

// AggregateReport averages a batch of runs.
type AggregateReport struct {
	Runs          int
	Deaths        int
	AvgScore      float64
	AvgMaxLevel   float64
	AvgBossKills  float64
	AvgCoins      float64
	AvgHitsTaken  float64
	AvgSurvival   float64 // ticks
	BestScore     int
	BestScoreSeed int64
}

// Aggregate folds run reports into averages.
func Aggregate(reports []RunReport) AggregateReport {
	agg := AggregateReport{Runs: len(reports)}
	if len(reports) == 0 {
		return agg
	}
	for i, rr := range reports {
		if rr.Died {
			agg.Deaths++
		}
		agg.AvgScore += float64(rr.Score)
		agg.AvgMaxLevel += float64(rr.MaxLevel)
		agg.AvgBossKills += float64(rr.Stats.BossKills)
		agg.AvgCoins += float64(rr.Stats.CoinsCollected)
		agg.AvgHitsTaken += float64(rr.Stats.HitsTaken)
		agg.AvgSurvival += float64(rr.Ticks)
		if i == 0 || rr.Score > agg.BestScore {
			agg.BestScore, agg.BestScoreSeed = rr.Score, rr.Seed
		}
	}
	n := float64(len(reports))
	agg.AvgScore /= n
	agg.AvgMaxLevel /= n
	agg.AvgBossKills /= n
	agg.AvgCoins /= n
	agg.AvgHitsTaken /= n
	agg.AvgSurvival /= n
	return agg
}

// Format renders the aggregate as key=value lines.
func (a AggregateReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "runs=%d deaths=%d\n", a.Runs, a.Deaths)
	fmt.Fprintf(&sb, "avg: score=%.1f max_level=%.2f boss_kills=%.2f coins=%.1f hits_taken=%.1f survival_ticks=%.0f\n",
		a.AvgScore, a.AvgMaxLevel, a.AvgBossKills, a.AvgCoins, a.AvgHitsTaken, a.AvgSurvival)
	fmt.Fprintf(&sb, "best: score=%d seed=%d\n", a.BestScore, a.BestScoreSeed)
	return sb.String()
}

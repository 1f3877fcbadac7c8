package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Arena-Shooter/internal/game"
)

func TestCollect_PhaseMarkersAndKills(t *testing.T) {
	entries := []game.SimLogEntry{
		{Tick: 10, Entity: "plain", Category: "spawn", Key: "enemy"},
		{Tick: 40, Entity: "shooter", Category: "spawn", Key: "shooter"},
		{Tick: 55, Entity: "plain", Category: "combat", Key: "kill"},
		{Tick: 60, Entity: "shooter", Category: "combat", Key: "kill"},
		{Tick: 61, Entity: "plain", Category: "combat", Key: "kill"},
		{Tick: 70, Entity: "player", Category: "economy", Key: "pickup"},
		{Tick: 90, Entity: "player", Category: "combat", Key: "dodge"},
		{Tick: 95, Entity: "player", Category: "combat", Key: "player_hit"},
		{Tick: 99, Entity: "player", Category: "combat", Key: "player_hit"},
	}

	rs := collect(3, 77, entries)
	if rs.runIndex != 3 || rs.seed != 77 {
		t.Fatalf("identity not kept: %+v", rs)
	}
	if rs.firstShooterTick != 40 || rs.firstHitTick != 95 {
		t.Fatalf("markers shooter=%d hit=%d", rs.firstShooterTick, rs.firstHitTick)
	}
	if rs.firstBossTick != -1 || rs.firstBossKill != -1 || rs.deathTick != -1 {
		t.Fatal("absent markers should be -1")
	}
	if rs.killsByKind["plain"] != 2 || rs.killsByKind["shooter"] != 1 {
		t.Fatalf("kills = %v", rs.killsByKind)
	}
	if rs.pickups != 1 || rs.dodges != 1 {
		t.Fatalf("pickups=%d dodges=%d", rs.pickups, rs.dodges)
	}
}

func TestJoinCounts_Sorted(t *testing.T) {
	if got := joinCounts(nil); got != "none" {
		t.Fatalf("empty = %q", got)
	}
	got := joinCounts(map[string]int{"shooter": 2, "boss": 1, "plain": 9})
	if got != "boss=1,plain=9,shooter=2" {
		t.Fatalf("got %q", got)
	}
}

func TestAvgTickString(t *testing.T) {
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("empty = %q", got)
	}
	if got := avgTickString([]int{10, 20, 40}); got != "23.3" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPurchases_Spent(t *testing.T) {
	ps := []game.PurchaseResult{
		{OK: true, ID: game.UpSpeed, Cost: 10},
		{OK: true, ID: game.UpMagnet, Cost: 10},
		{OK: true, ID: game.UpSpeed, Cost: 20},
	}
	if got := formatPurchases(ps); got != "magnet=1,speed=2 spent=40" {
		t.Fatalf("got %q", got)
	}
}

func TestRunAutopilot_ShopsBetweenRuns(t *testing.T) {
	tun := game.DefaultTuning()
	profile := game.DefaultSnapshot(tun)
	profile.Coins = 100

	stats, next := runAutopilot(1, 42, 120, tun, profile)
	if len(stats.purchases) == 0 {
		t.Fatal("100 coins should buy at least one upgrade")
	}
	spent := 0
	for _, p := range stats.purchases {
		if !p.OK {
			t.Fatalf("declined purchase reported: %+v", p)
		}
		spent += p.Cost
	}
	if next.Coins != stats.report.Coins-spent {
		t.Fatalf("carried coins %d, want %d-%d", next.Coins, stats.report.Coins, spent)
	}
	if stats.report.Ticks == 0 || stats.report.Seed != 42 {
		t.Fatalf("report = %+v", stats.report)
	}
}

func TestReport_Layout(t *testing.T) {
	out := report(options{runs: 2, ticks: 300, seedBase: 5, seedStep: 3, carry: true, tun: game.DefaultTuning()})
	for _, want := range []string{
		"=== Headless Arena Report ===",
		"--- Run 1 (seed=5) ---",
		"--- Run 2 (seed=8) ---",
		"phase_markers:",
		"=== Aggregate ===",
		"runs=2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report misses %q:\n%s", want, out)
		}
	}
}

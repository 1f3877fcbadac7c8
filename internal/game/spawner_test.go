package game

import (
	"math"
	"testing"
)

func newTestSpawner() *Spawner {
	tun := DefaultTuning()
	return NewSpawner(&tun, tun.Bounds())
}

func TestSpawner_IntervalMonotoneAndFloored(t *testing.T) {
	s := newTestSpawner()
	const dt = 1.0 / 60
	prev := s.Interval
	for i := 0; i < 200000; i++ {
		s.Update(dt)
		if s.ShouldSpawn() {
			s.ResetTimer()
		}
		if s.Interval > prev {
			t.Fatalf("interval grew at tick %d: %v -> %v", i, prev, s.Interval)
		}
		if s.Interval < s.tun.SpawnIntervalFloor {
			t.Fatalf("interval %v fell below floor at tick %d", s.Interval, i)
		}
		prev = s.Interval
	}
	if s.Interval != s.tun.SpawnIntervalFloor {
		t.Fatalf("interval after a long run = %v, want floor", s.Interval)
	}
}

func TestSpawner_AccelSchedule(t *testing.T) {
	s := newTestSpawner()
	s.Update(19.5)
	if s.Interval != 1.1 {
		t.Fatalf("interval tightened early: %v", s.Interval)
	}
	s.Update(0.5)
	if math.Abs(s.Interval-1.1*0.92) > 1e-12 || s.AccelTimer != 0 {
		t.Fatalf("interval=%v accel=%v after 20s", s.Interval, s.AccelTimer)
	}
}

func TestSpawner_BossGating(t *testing.T) {
	s := newTestSpawner()
	rng := NewRand(3)

	s.KillsThisLevel = 29
	if s.ShouldSpawnBoss() {
		t.Fatal("boss before threshold")
	}
	s.KillsThisLevel = 35
	if !s.ShouldSpawnBoss() {
		t.Fatal("boss expected at 35/30 kills")
	}
	boss := s.SpawnBoss(rng)
	if !boss.IsBoss || boss.Health != 280 || boss.Radius != 34 {
		t.Fatalf("unexpected boss %+v", boss)
	}
	if s.ShouldSpawnBoss() {
		t.Fatal("second boss while one is active")
	}

	s.OnBossKilled()
	if s.Level != 2 || s.KillsThisLevel != 0 || s.BossActive {
		t.Fatalf("after boss kill: level=%d kills=%d active=%t", s.Level, s.KillsThisLevel, s.BossActive)
	}
	if s.ShouldSpawnBoss() {
		t.Fatal("boss gate must close right after a boss kill")
	}
	s.KillsThisLevel = 39
	if s.ShouldSpawnBoss() {
		t.Fatal("level 2 needs 40 kills")
	}
	s.KillsThisLevel = 40
	if !s.ShouldSpawnBoss() {
		t.Fatal("boss expected at 40 kills on level 2")
	}
	if boss := s.SpawnBoss(rng); boss.Health != 400 {
		t.Fatalf("level 2 boss health = %d, want 400", boss.Health)
	}
}

func TestSpawner_LevelTransitionFreezes(t *testing.T) {
	s := newTestSpawner()
	s.OnBossKilled()
	if s.State() != StateLevelTransition {
		t.Fatalf("state = %s, want level_transition", s.State())
	}
	if math.Abs(s.Interval-1.1*0.95) > 1e-12 || s.Timer != s.Interval {
		t.Fatalf("interval=%v timer=%v after boss kill", s.Interval, s.Timer)
	}

	s.Timer = -1
	if s.ShouldSpawn() {
		t.Fatal("no spawns during a level transition")
	}
	s.Update(0.5)
	if s.Timer != -1 || s.AccelTimer != 0 {
		t.Fatalf("timers advanced during transition: timer=%v accel=%v", s.Timer, s.AccelTimer)
	}
	s.Update(0.8)
	if s.State() != StateSpawning || !s.ShouldSpawn() {
		t.Fatalf("transition should be over: left=%v", s.TransitionLeft)
	}
}

func TestSpawner_SpawnEnemyPlain(t *testing.T) {
	s := newTestSpawner()
	rng := newScriptedRand([]float64{0.5, 0.5}, []int{0})
	e := s.SpawnEnemy(rng)
	if e.Kind() != EnemyPlain || e.Health != 1 || e.MaxHealth != 1 {
		t.Fatalf("level 1 spawn: kind=%s hp=%d", e.Kind(), e.Health)
	}
	if e.Pos.Y != -28 || e.Pos.X != 480 {
		t.Fatalf("top-edge spawn at %+v, want (480,-28)", e.Pos)
	}
	if e.Speed != 110 {
		t.Fatalf("speed = %v, want 110", e.Speed)
	}
}

func TestSpawner_SpawnEnemyScalesWithLevel(t *testing.T) {
	s := newTestSpawner()
	s.Level = 7
	// Edge, position, speed, then a failed shooter roll.
	rng := newScriptedRand([]float64{0.5, 0.0, 0.99}, []int{2})
	e := s.SpawnEnemy(rng)
	if e.Kind() != EnemyPlain || e.Health != 3 {
		t.Fatalf("level 7 plain: kind=%s hp=%d, want plain/3", e.Kind(), e.Health)
	}
	if math.Abs(e.Speed-80*1.36) > 1e-9 {
		t.Fatalf("speed = %v, want %v", e.Speed, 80*1.36)
	}
	if e.Pos.X != -28 {
		t.Fatalf("left-edge spawn at %+v", e.Pos)
	}
}

func TestSpawner_SpawnShooter(t *testing.T) {
	s := newTestSpawner()
	s.Level = 5
	rng := newScriptedRand([]float64{0.5, 0.0, 0.1}, []int{3})
	e := s.SpawnEnemy(rng)
	if !e.HasShootBehavior() {
		t.Fatal("roll 0.1 under 0.32 should spawn a shooter")
	}
	if e.Health != 5 || e.Radius != 16 {
		t.Fatalf("shooter hp=%d radius=%v, want 5/16", e.Health, e.Radius)
	}
	if math.Abs(e.Shoot.Cooldown-1.3) > 1e-12 || e.Shoot.Timer != e.Shoot.Cooldown {
		t.Fatalf("shooter cooldown=%v timer=%v", e.Shoot.Cooldown, e.Shoot.Timer)
	}
	if math.Abs(e.Speed-80*1.24*0.95) > 1e-9 {
		t.Fatalf("shooter speed = %v", e.Speed)
	}
}

func TestSpawner_ShooterChance(t *testing.T) {
	s := newTestSpawner()
	cases := map[int]float64{1: 0, 2: 0.20, 5: 0.32, 11: 0.55, 40: 0.55}
	for lvl, want := range cases {
		s.Level = lvl
		if got := s.ShooterChance(); math.Abs(got-want) > 1e-12 {
			t.Errorf("level %d shooter chance = %v, want %v", lvl, got, want)
		}
	}
}

func TestSpawner_BannerCountsDown(t *testing.T) {
	s := newTestSpawner()
	s.SpawnBoss(NewRand(1))
	s.Update(0.4)
	if s.BannerLeft <= 0 {
		t.Fatal("banner cleared too early")
	}
	s.Update(0.7)
	if s.BannerLeft != 0 {
		t.Fatalf("banner = %v, want 0", s.BannerLeft)
	}
}

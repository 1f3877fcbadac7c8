package game

import "math"

const (
	levelTransitionDuration = 1.2 // seconds of frozen spawning after a boss kill
	bossBannerDuration      = 1.0
	bossKillTighten         = 0.95 // spawn interval factor applied on boss kill

	bossRadius      = 34.0
	bossSpeedMin    = 100.0
	bossSpeedMax    = 140.0
	bossHealthBase  = 280
	bossHealthLevel = 120

	shooterChanceBase  = 0.20
	shooterChanceLevel = 0.04
	shooterChanceCap   = 0.55
	shooterSpeedFactor = 0.95
	shooterExtraRadius = 2.0

	levelSpeedScale = 0.06 // enemy speed gain per level above 1
)

// SpawnerState names the progression phase for views.
type SpawnerState int

const (
	StateSpawning SpawnerState = iota
	StateLevelTransition
	StateBossActive
)

func (s SpawnerState) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateLevelTransition:
		return "level_transition"
	case StateBossActive:
		return "boss_active"
	default:
		return "unknown"
	}
}

// Spawner owns enemy cadence, the difficulty ramp and level/boss progression.
type Spawner struct {
	Timer          float64 // seconds until the next regular spawn
	Interval       float64 // current spawn interval; only shrinks
	AccelTimer     float64
	Level          int
	KillsThisLevel int
	BossActive     bool
	TransitionLeft float64
	BannerLeft     float64

	tun    *Tuning
	bounds Bounds
}

// NewSpawner starts at level 1 with the configured interval.
func NewSpawner(tun *Tuning, bounds Bounds) *Spawner {
	return &Spawner{
		Timer:    tun.SpawnEvery,
		Interval: tun.SpawnEvery,
		Level:    1,
		tun:      tun,
		bounds:   bounds,
	}
}

// State reports the current phase. A transition takes precedence.
func (s *Spawner) State() SpawnerState {
	switch {
	case s.TransitionLeft > 0:
		return StateLevelTransition
	case s.BossActive:
		return StateBossActive
	default:
		return StateSpawning
	}
}

// Update advances timers. During a level transition only the transition
// timer moves.
func (s *Spawner) Update(dt float64) {
	if s.BannerLeft > 0 {
		s.BannerLeft = math.Max(0, s.BannerLeft-dt)
	}
	if s.TransitionLeft > 0 {
		s.TransitionLeft -= dt
		return
	}
	s.Timer -= dt
	s.AccelTimer += dt
	if s.AccelTimer >= s.tun.SpawnAccelEvery {
		s.AccelTimer = 0
		s.Interval = math.Max(s.tun.SpawnIntervalFloor, s.Interval*s.tun.SpawnAccelFactor)
	}
}

// ShouldSpawn is true once the spawn timer has elapsed outside a transition.
func (s *Spawner) ShouldSpawn() bool {
	return s.Timer <= 0 && s.TransitionLeft <= 0
}

// ResetTimer rearms the spawn timer with the current interval.
func (s *Spawner) ResetTimer() {
	s.Timer = s.Interval
}

// ShooterChance is the probability a regular spawn is a shooter.
func (s *Spawner) ShooterChance() float64 {
	if s.Level < 2 {
		return 0
	}
	return math.Min(shooterChanceBase+shooterChanceLevel*float64(s.Level-2), shooterChanceCap)
}

// edgePoint picks a random point just outside one of the four edges.
func (s *Spawner) edgePoint(rng Rand, offset float64) Vec2 {
	switch rng.Intn(4) {
	case 0:
		return V(uniform(rng, 0, s.bounds.W), -offset)
	case 1:
		return V(uniform(rng, 0, s.bounds.W), s.bounds.H+offset)
	case 2:
		return V(-offset, uniform(rng, 0, s.bounds.H))
	default:
		return V(s.bounds.W+offset, uniform(rng, 0, s.bounds.H))
	}
}

// enemySpeed rolls a regular enemy speed scaled for the current level.
func (s *Spawner) enemySpeed(rng Rand) float64 {
	return uniform(rng, s.tun.EnemySpeedMin, s.tun.EnemySpeedMax) * (1 + levelSpeedScale*float64(s.Level-1))
}

// SpawnEnemy creates a regular enemy off a random edge.
func (s *Spawner) SpawnEnemy(rng Rand) *Enemy {
	pos := s.edgePoint(rng, s.tun.EnemyRadius*2)
	speed := s.enemySpeed(rng)
	if s.Level >= 2 && chance(rng, s.ShooterChance()) {
		cooldown := math.Max(0.9, 1.6-0.06*float64(s.Level))
		return NewShooter(pos, speed*shooterSpeedFactor, s.tun.EnemyRadius+shooterExtraRadius, 3+s.Level/2, cooldown)
	}
	hp := 1 + (s.Level-1)/3
	return NewEnemy(pos, speed, s.tun.EnemyRadius, hp)
}

// KillsRequired is the kill count that summons this level's boss.
func (s *Spawner) KillsRequired() int {
	return s.tun.KillsToBossBase + (s.Level-1)*s.tun.KillsToBossInc
}

// RecordKill counts a non-boss kill toward the boss threshold.
func (s *Spawner) RecordKill() {
	s.KillsThisLevel++
}

// ShouldSpawnBoss is true when the threshold is met and no boss is active.
func (s *Spawner) ShouldSpawnBoss() bool {
	return !s.BossActive && s.KillsThisLevel >= s.KillsRequired()
}

// SpawnBoss marks the boss active and creates it at the middle of a random
// edge.
func (s *Spawner) SpawnBoss(rng Rand) *Enemy {
	s.BossActive = true
	s.BannerLeft = bossBannerDuration

	off := s.tun.EnemyRadius * 4
	var pos Vec2
	switch rng.Intn(4) {
	case 0:
		pos = V(s.bounds.W/2, -off)
	case 1:
		pos = V(s.bounds.W/2, s.bounds.H+off)
	case 2:
		pos = V(-off, s.bounds.H/2)
	default:
		pos = V(s.bounds.W+off, s.bounds.H/2)
	}
	hp := bossHealthBase + bossHealthLevel*(s.Level-1)
	boss := NewEnemy(pos, uniform(rng, bossSpeedMin, bossSpeedMax), bossRadius, hp)
	boss.IsBoss = true
	return boss
}

// OnBossKilled advances the level and enters the transition freeze.
func (s *Spawner) OnBossKilled() {
	s.Level++
	s.KillsThisLevel = 0
	s.BossActive = false
	s.Interval = math.Max(s.tun.SpawnIntervalFloor, s.Interval*bossKillTighten)
	s.Timer = s.Interval
	s.TransitionLeft = levelTransitionDuration
}

// SetLevel jumps to level n (at least 1) and clears the kill count.
func (s *Spawner) SetLevel(n int) {
	s.Level = maxInt(1, n)
	s.KillsThisLevel = 0
}

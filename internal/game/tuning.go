package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the balance constants of a run. Formula coefficients that are
// part of the progression curves (regen interval, shooter odds, boss health)
// live next to the code that uses them; Tuning carries the base values.
type Tuning struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // fixed simulation steps per second

	PlayerSpeed     float64 `yaml:"player_speed"` // px/s
	PlayerRadius    float64 `yaml:"player_radius"`
	PlayerMaxHealth int     `yaml:"player_max_health"`
	InvulnOnHit     float64 `yaml:"invuln_on_hit"` // seconds after a non-dodged hit
	MagnetRadius    float64 `yaml:"magnet_radius"` // starting coin magnet radius

	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletRadius   float64 `yaml:"bullet_radius"`
	BulletCooldown float64 `yaml:"bullet_cooldown"`
	BulletLifetime float64 `yaml:"bullet_lifetime"`

	EnemySpeedMin float64 `yaml:"enemy_speed_min"`
	EnemySpeedMax float64 `yaml:"enemy_speed_max"`
	EnemyRadius   float64 `yaml:"enemy_radius"`

	SpawnEvery         float64 `yaml:"spawn_every"`          // initial spawn interval
	SpawnAccelEvery    float64 `yaml:"spawn_accel_every"`    // seconds between interval tightenings
	SpawnAccelFactor   float64 `yaml:"spawn_accel_factor"`   // <1
	SpawnIntervalFloor float64 `yaml:"spawn_interval_floor"` // interval never drops below this

	KillsToBossBase  int     `yaml:"kills_to_boss_base"`
	KillsToBossInc   int     `yaml:"kills_to_boss_inc"`
	NormalDropChance float64 `yaml:"normal_drop_chance"`
}

// DefaultTuning returns the stock balance.
func DefaultTuning() Tuning {
	return Tuning{
		Width:    960,
		Height:   540,
		TickRate: 60,

		PlayerSpeed:     280,
		PlayerRadius:    16,
		PlayerMaxHealth: 5,
		InvulnOnHit:     0.6,
		MagnetRadius:    60,

		BulletSpeed:    600,
		BulletRadius:   4,
		BulletCooldown: 0.12,
		BulletLifetime: 1.2,

		EnemySpeedMin: 80,
		EnemySpeedMax: 140,
		EnemyRadius:   14,

		SpawnEvery:         1.1,
		SpawnAccelEvery:    20,
		SpawnAccelFactor:   0.92,
		SpawnIntervalFloor: 0.25,

		KillsToBossBase:  30,
		KillsToBossInc:   10,
		NormalDropChance: 0.30,
	}
}

// Bounds returns the play area described by the tuning.
func (t Tuning) Bounds() Bounds {
	return Bounds{W: t.Width, H: t.Height}
}

// TickDT is the fixed step length in seconds.
func (t Tuning) TickDT() float64 {
	return 1.0 / float64(t.TickRate)
}

// Validate reports the first inconsistent value.
func (t Tuning) Validate() error {
	switch {
	case t.Width <= 0 || t.Height <= 0:
		return fmt.Errorf("play area must be positive, got %gx%g", t.Width, t.Height)
	case t.TickRate <= 0:
		return fmt.Errorf("tick_rate must be positive, got %d", t.TickRate)
	case t.PlayerRadius <= 0 || t.BulletRadius <= 0 || t.EnemyRadius <= 0:
		return errors.New("radii must be positive")
	case t.PlayerMaxHealth < 1:
		return fmt.Errorf("player_max_health must be >= 1, got %d", t.PlayerMaxHealth)
	case t.BulletCooldown <= 0 || t.BulletLifetime <= 0:
		return errors.New("bullet cooldown and lifetime must be positive")
	case t.EnemySpeedMin <= 0 || t.EnemySpeedMax < t.EnemySpeedMin:
		return fmt.Errorf("enemy speed range invalid: [%g, %g]", t.EnemySpeedMin, t.EnemySpeedMax)
	case t.SpawnEvery <= 0 || t.SpawnAccelEvery <= 0:
		return errors.New("spawn timings must be positive")
	case t.SpawnAccelFactor <= 0 || t.SpawnAccelFactor >= 1:
		return fmt.Errorf("spawn_accel_factor must be in (0,1), got %g", t.SpawnAccelFactor)
	case t.SpawnIntervalFloor <= 0 || t.SpawnIntervalFloor > t.SpawnEvery:
		return fmt.Errorf("spawn_interval_floor must be in (0, spawn_every], got %g", t.SpawnIntervalFloor)
	case t.KillsToBossBase < 1 || t.KillsToBossInc < 0:
		return errors.New("boss kill thresholds invalid")
	case t.NormalDropChance < 0 || t.NormalDropChance > 1:
		return fmt.Errorf("normal_drop_chance must be in [0,1], got %g", t.NormalDropChance)
	}
	return nil
}

// ParseTuning decodes YAML on top of DefaultTuning, so a file only needs the
// keys it overrides.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML balance file.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// YAML renders the tuning as a balance file.
func (t Tuning) YAML() ([]byte, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tuning: %w", err)
	}
	return out, nil
}

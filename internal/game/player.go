package game

import "math"

const (
	dodgeInvuln     = 0.2  // seconds of grace after a dodged hit
	dodgePerLevel   = 0.05 // dodge probability per level
	dodgeCap        = 0.5
	regenBase       = 12.0 // seconds per HP at regen level 0
	regenPerLevel   = 1.6
	regenFloor      = 4.0
	lifestealBase   = 5 // kills per HP at lifesteal level 0
	minFireCooldown = 0.02
	bulletSizeStep  = 0.35 // radius growth per size level
	bulletSpeedStep = 0.08 // speed growth per bullet-speed level
	timerEpsilon    = 1e-9
)

// HitOutcome describes what TakeHit did.
type HitOutcome int

const (
	HitIgnored HitOutcome = iota // invulnerable or god mode
	HitDodged
	HitArmor  // one armor consumed
	HitHealth // one health lost
)

func (h HitOutcome) String() string {
	switch h {
	case HitIgnored:
		return "ignored"
	case HitDodged:
		return "dodged"
	case HitArmor:
		return "armor"
	case HitHealth:
		return "health"
	default:
		return "unknown"
	}
}

// UpgradeLevels counts purchases per upgrade. Shop-tier counters drive the
// cost tables; item-tier counters drive the scaled item prices.
type UpgradeLevels struct {
	// Shop tier.
	Speed        int `json:"speed_levels"`
	FireRate     int `json:"firerate_levels"`
	Pierce       int `json:"bullet_pierce_level"`
	Size         int `json:"bullet_size_level"`
	Magnet       int `json:"magnet_levels"`
	MaxHealth    int `json:"hp_levels"`
	BulletDamage int `json:"bullet_damage_level"`
	CoinGain     int `json:"coin_gain_level"`

	// Item tier.
	Dodge       int `json:"dodge_level"`
	Regen       int `json:"regen_level"`
	Lifesteal   int `json:"lifesteal_level"`
	Crit        int `json:"crit_level"`
	AOEOnKill   int `json:"aoe_on_kill_level"`
	MagnetBonus int `json:"magnet_bonus_level"`
	BulletSpeed int `json:"bullet_speed_level"`
}

// Player is the controlled avatar plus its persistent progression.
type Player struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64

	Health int
	Armor  int

	Invuln       float64 // seconds of post-hit invulnerability left
	FireCooldown float64 // seconds until the next shot is allowed

	Coins int

	SpeedMultiplier       float64
	FireRateMultiplier    float64 // >1 shoots faster
	BulletSpeedMultiplier float64
	MagnetRadius          float64
	MaxHealthBonus        int
	Levels                UpgradeLevels

	GodMode bool

	regenTimer     float64
	lifestealKills int

	tun    *Tuning
	bounds Bounds
}

// NewPlayer creates a fresh avatar at pos with baseline stats.
func NewPlayer(pos Vec2, tun *Tuning, bounds Bounds) *Player {
	p := &Player{
		Pos:                   pos,
		Radius:                tun.PlayerRadius,
		SpeedMultiplier:       1,
		FireRateMultiplier:    1,
		BulletSpeedMultiplier: 1,
		MagnetRadius:          tun.MagnetRadius,
		tun:                   tun,
		bounds:                bounds,
	}
	p.Health = p.MaxHealth()
	return p
}

// MaxHealth is the base health plus purchased bonus.
func (p *Player) MaxHealth() int {
	return p.tun.PlayerMaxHealth + p.MaxHealthBonus
}

// Alive reports whether the run is still going.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Heal restores up to n health, capped at MaxHealth.
func (p *Player) Heal(n int) {
	p.Health = minInt(p.MaxHealth(), p.Health+n)
}

// RegenInterval is the seconds per regenerated HP at the current regen level.
func (p *Player) RegenInterval() float64 {
	return math.Max(regenFloor, regenBase-regenPerLevel*float64(p.Levels.Regen))
}

// LifestealInterval is the kills per healed HP at the current lifesteal level.
func (p *Player) LifestealInterval() int {
	return maxInt(1, lifestealBase-p.Levels.Lifesteal)
}

// DodgeChance is the probability a hit is avoided entirely.
func (p *Player) DodgeChance() float64 {
	return math.Min(dodgeCap, dodgePerLevel*float64(p.Levels.Dodge))
}

// Update moves the player along the intent and advances its timers.
func (p *Player) Update(dt float64, move Vec2) {
	p.Vel = Vec2{}
	if dir, ok := move.Normalize(); ok {
		p.Vel = dir.Scale(p.tun.PlayerSpeed * p.SpeedMultiplier)
	}
	p.Pos = p.bounds.ClampInset(p.Pos.Add(p.Vel.Scale(dt)), p.Radius)

	p.Invuln = math.Max(0, p.Invuln-dt)
	p.FireCooldown = math.Max(0, p.FireCooldown-dt)

	if p.Levels.Regen > 0 && p.Health < p.MaxHealth() {
		p.regenTimer += dt
		if p.regenTimer+timerEpsilon >= p.RegenInterval() {
			p.regenTimer = 0
			p.Heal(1)
		}
	}
}

// RegenProgress exposes the regen accumulator (seconds).
func (p *Player) RegenProgress() float64 {
	return p.regenTimer
}

// TryShoot fires toward aim. It returns false while on cooldown or when aim
// sits on the player (no direction).
func (p *Player) TryShoot(aim Vec2) (*Bullet, bool) {
	if p.FireCooldown > 0 {
		return nil, false
	}
	dir, ok := aim.Sub(p.Pos).Normalize()
	if !ok {
		return nil, false
	}
	speed := p.tun.BulletSpeed * p.BulletSpeedMultiplier * (1 + bulletSpeedStep*float64(p.Levels.BulletSpeed))
	p.FireCooldown = math.Max(minFireCooldown, p.tun.BulletCooldown/p.FireRateMultiplier)
	return &Bullet{
		Pos:    p.Pos,
		Vel:    dir.Scale(speed),
		Radius: p.tun.BulletRadius * (1 + bulletSizeStep*float64(p.Levels.Size)),
		Pierce: p.Levels.Pierce,
		Life:   p.tun.BulletLifetime,
		Damage: 1 + p.Levels.BulletDamage,
	}, true
}

// TakeHit applies one point of incoming damage. Armor absorbs before health.
func (p *Player) TakeHit(rng Rand) HitOutcome {
	if p.GodMode || p.Invuln > 0 {
		return HitIgnored
	}
	if p.Levels.Dodge > 0 && chance(rng, p.DodgeChance()) {
		p.Invuln = dodgeInvuln
		return HitDodged
	}
	out := HitHealth
	if p.Armor > 0 {
		p.Armor--
		out = HitArmor
	} else {
		p.Health = maxInt(0, p.Health-1)
	}
	p.Invuln = p.tun.InvulnOnHit
	return out
}

// OnKill advances lifesteal. It reports whether a heal was granted.
func (p *Player) OnKill() bool {
	if p.Levels.Lifesteal <= 0 {
		return false
	}
	p.lifestealKills++
	if p.lifestealKills >= p.LifestealInterval() {
		p.lifestealKills = 0
		p.Heal(1)
		return true
	}
	return false
}

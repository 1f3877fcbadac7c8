package game

// Snapshot is the persistent player profile. Field names match the save file
// so older saves keep loading. Health is not stored; a restored player starts
// at full health.
type Snapshot struct {
	Coins                 int     `json:"coins"`
	SpeedMultiplier       float64 `json:"speed_multiplier"`
	FireRateMultiplier    float64 `json:"fire_rate_multiplier"`
	BulletSpeedMultiplier float64 `json:"bullet_speed_multiplier"`
	MagnetRadius          float64 `json:"magnet_radius"`
	MaxHealthBonus        int     `json:"max_health_bonus"`
	Armor                 int     `json:"armor"`

	UpgradeLevels

	// Legacy shop counters, written alongside the bullet levels they mirror.
	PierceLevels int `json:"pierce_levels"`
	SizeLevels   int `json:"size_levels"`

	LastRunID string `json:"last_run_id,omitempty"`
}

// DefaultSnapshot is the baseline profile. Decoding a save on top of it leaves
// absent fields at their baseline.
func DefaultSnapshot(tun Tuning) Snapshot {
	return Snapshot{
		SpeedMultiplier:       1,
		FireRateMultiplier:    1,
		BulletSpeedMultiplier: 1,
		MagnetRadius:          tun.MagnetRadius,
	}
}

// Normalize repairs out-of-range values: negative counters become 0 and
// non-positive multipliers or radius fall back to baseline.
func (s *Snapshot) Normalize(tun Tuning) {
	nonNeg := func(p *int) {
		if *p < 0 {
			*p = 0
		}
	}
	one := func(p *float64) {
		if *p <= 0 {
			*p = 1
		}
	}
	nonNeg(&s.Coins)
	nonNeg(&s.MaxHealthBonus)
	nonNeg(&s.Armor)
	nonNeg(&s.PierceLevels)
	nonNeg(&s.SizeLevels)
	one(&s.SpeedMultiplier)
	one(&s.FireRateMultiplier)
	one(&s.BulletSpeedMultiplier)
	if s.MagnetRadius <= 0 {
		s.MagnetRadius = tun.MagnetRadius
	}

	l := &s.UpgradeLevels
	for _, id := range append(append([]UpgradeID{}, ShopUpgrades...), ItemUpgrades...) {
		if p := l.level(id); p != nil {
			nonNeg(p)
		}
	}
	l.Pierce = maxInt(l.Pierce, s.PierceLevels)
	l.Size = maxInt(l.Size, s.SizeLevels)
	s.PierceLevels, s.SizeLevels = l.Pierce, l.Size
}

// Snapshot captures the persistent profile of the current player.
func (r *Run) Snapshot() Snapshot {
	p := r.Player
	return Snapshot{
		Coins:                 p.Coins,
		SpeedMultiplier:       p.SpeedMultiplier,
		FireRateMultiplier:    p.FireRateMultiplier,
		BulletSpeedMultiplier: p.BulletSpeedMultiplier,
		MagnetRadius:          p.MagnetRadius,
		MaxHealthBonus:        p.MaxHealthBonus,
		Armor:                 p.Armor,
		UpgradeLevels:         p.Levels,
		PierceLevels:          p.Levels.Pierce,
		SizeLevels:            p.Levels.Size,
		LastRunID:             r.ID.String(),
	}
}

// ApplySnapshot restores a profile onto the player and heals to full.
func (r *Run) ApplySnapshot(s Snapshot) {
	s.Normalize(*r.tun)
	p := r.Player
	p.Coins = s.Coins
	p.SpeedMultiplier = s.SpeedMultiplier
	p.FireRateMultiplier = s.FireRateMultiplier
	p.BulletSpeedMultiplier = s.BulletSpeedMultiplier
	p.MagnetRadius = s.MagnetRadius
	p.MaxHealthBonus = s.MaxHealthBonus
	p.Armor = s.Armor
	p.Levels = s.UpgradeLevels
	p.Health = p.MaxHealth()
}

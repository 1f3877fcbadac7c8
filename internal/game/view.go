package game

// HUDView is the read-only status line shown by frontends.
type HUDView struct {
	Score         int
	Health        int
	MaxHealth     int
	Armor         int
	Coins         int
	Level         int
	Kills         int
	KillsRequired int

	BossActive      bool
	BossBanner      bool
	LevelTransition bool
	State           SpawnerState

	Alive   bool
	Paused  bool
	GodMode bool
}

// BossProgress is kills toward the boss as a fraction in [0,1].
func (h HUDView) BossProgress() float64 {
	if h.KillsRequired <= 0 {
		return 0
	}
	return clamp01(float64(h.Kills) / float64(h.KillsRequired))
}

// HUD captures the current status.
func (r *Run) HUD() HUDView {
	p, s := r.Player, r.Spawner
	return HUDView{
		Score:           r.Score,
		Health:          p.Health,
		MaxHealth:       p.MaxHealth(),
		Armor:           p.Armor,
		Coins:           p.Coins,
		Level:           s.Level,
		Kills:           minInt(s.KillsThisLevel, s.KillsRequired()),
		KillsRequired:   s.KillsRequired(),
		BossActive:      s.BossActive,
		BossBanner:      s.BannerLeft > 0,
		LevelTransition: s.TransitionLeft > 0,
		State:           s.State(),
		Alive:           p.Alive(),
		Paused:          r.paused,
		GodMode:         p.GodMode,
	}
}

// EnemyView is a drawable copy of one enemy.
type EnemyView struct {
	Pos       Vec2
	Radius    float64
	Health    int
	MaxHealth int
	Kind      EnemyKind
}

// EnemyViews copies the enemy population.
func (r *Run) EnemyViews() []EnemyView {
	out := make([]EnemyView, 0, len(r.Enemies))
	for _, e := range r.Enemies {
		out = append(out, EnemyView{Pos: e.Pos, Radius: e.Radius, Health: e.Health, MaxHealth: e.MaxHealth, Kind: e.Kind()})
	}
	return out
}

// Boss returns the live boss, if any.
func (r *Run) Boss() (*Enemy, bool) {
	for _, e := range r.Enemies {
		if e.IsBoss {
			return e, true
		}
	}
	return nil, false
}

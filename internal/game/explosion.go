package game

const (
	// explosionGrowWindow is the fixed growth time of every explosion ring.
	// Growth is measured against this window, not the explosion's own
	// starting lifetime.
	explosionGrowWindow = 0.3

	aoeRadiusBase     = 40.0
	aoeRadiusPerLevel = 10.0
)

// Explosion is the area-of-effect marker left by an AOE-on-kill trigger. The
// resolver does not collide it; Damage is carried for views.
type Explosion struct {
	Pos       Vec2
	Radius    float64
	MaxRadius float64
	Damage    int
	Life      float64
}

// NewAOEExplosion sizes the ring for the given AOE-on-kill level.
func NewAOEExplosion(pos Vec2, level int) *Explosion {
	return &Explosion{
		Pos:       pos,
		MaxRadius: aoeRadiusBase + aoeRadiusPerLevel*float64(level),
		Damage:    1 + level,
		Life:      explosionGrowWindow,
	}
}

// Update burns lifetime and grows the ring toward MaxRadius.
func (x *Explosion) Update(dt float64) {
	x.Life -= dt
	x.Radius = x.MaxRadius * clamp01(1-x.Life/explosionGrowWindow)
}

// Alive reports whether the ring is still showing.
func (x *Explosion) Alive() bool {
	return x.Life > 0
}

// Fade is the remaining opacity in [0,1], for renderers.
func (x *Explosion) Fade() float64 {
	return clamp01(x.Life / explosionGrowWindow)
}

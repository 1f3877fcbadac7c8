package game

const (
	bulletMargin      = 50.0 // player bullets survive this far outside the play area
	enemyBulletMargin = 20.0

	enemyBulletRadius   = 3.0
	enemyBulletLifetime = 3.0
	enemyBulletSpeed    = 220.0 // px/s at level 0
	enemyBulletPerLevel = 6.0
)

// Bullet is a player-fired projectile.
type Bullet struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Pierce int     // further enemies it may pass through; only decreases
	Life   float64 // seconds left
	Damage int
}

// Update integrates position and burns lifetime.
func (b *Bullet) Update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Life -= dt
}

// Alive requires remaining lifetime and a position within bounds plus margin.
func (b *Bullet) Alive(bounds Bounds) bool {
	return b.Life > 0 && bounds.ContainsMargin(b.Pos, bulletMargin)
}

// consume spends one pierce charge, or expires the bullet when none are left.
func (b *Bullet) consume() {
	if b.Pierce > 0 {
		b.Pierce--
		return
	}
	b.Life = 0
}

// EnemyBullet is fired by shooter enemies; it never pierces.
type EnemyBullet struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Life   float64
}

// NewEnemyBullet aims a shot from origin at target. It returns false when the
// two points coincide.
func NewEnemyBullet(origin, target Vec2, level int) (*EnemyBullet, bool) {
	dir, ok := target.Sub(origin).Normalize()
	if !ok {
		return nil, false
	}
	speed := enemyBulletSpeed + enemyBulletPerLevel*float64(level)
	return &EnemyBullet{
		Pos:    origin,
		Vel:    dir.Scale(speed),
		Radius: enemyBulletRadius,
		Life:   enemyBulletLifetime,
	}, true
}

func (b *EnemyBullet) Update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Life -= dt
}

func (b *EnemyBullet) Alive(bounds Bounds) bool {
	return b.Life > 0 && bounds.ContainsMargin(b.Pos, enemyBulletMargin)
}

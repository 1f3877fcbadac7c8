package game

// EnemyKind tags the enemy variant for views and logs.
type EnemyKind int

const (
	EnemyPlain EnemyKind = iota
	EnemyShooter
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyPlain:
		return "plain"
	case EnemyShooter:
		return "shooter"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// ShootBehavior is the optional payload that turns an enemy into a shooter.
type ShootBehavior struct {
	Cooldown float64 // seconds between shots
	Timer    float64 // seconds until the next shot
}

// Enemy chases the player. Shooters carry a ShootBehavior; bosses set IsBoss.
type Enemy struct {
	Pos       Vec2
	Speed     float64
	Radius    float64
	Health    int
	MaxHealth int
	IsBoss    bool
	Shoot     *ShootBehavior
}

// NewEnemy builds a plain enemy at full health.
func NewEnemy(pos Vec2, speed, radius float64, health int) *Enemy {
	return &Enemy{Pos: pos, Speed: speed, Radius: radius, Health: health, MaxHealth: health}
}

// NewShooter builds a shooter whose first shot comes after one full cooldown.
func NewShooter(pos Vec2, speed, radius float64, health int, cooldown float64) *Enemy {
	e := NewEnemy(pos, speed, radius, health)
	e.Shoot = &ShootBehavior{Cooldown: cooldown, Timer: cooldown}
	return e
}

// Kind classifies the enemy.
func (e *Enemy) Kind() EnemyKind {
	switch {
	case e.IsBoss:
		return EnemyBoss
	case e.Shoot != nil:
		return EnemyShooter
	default:
		return EnemyPlain
	}
}

// HasShootBehavior is the capability check used instead of a subtype test.
func (e *Enemy) HasShootBehavior() bool {
	return e.Shoot != nil
}

// Dead reports whether health is exhausted.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

// Update steps toward target at Speed. A shooter also runs down its timer.
func (e *Enemy) Update(dt float64, target Vec2) {
	if dir, ok := target.Sub(e.Pos).Normalize(); ok {
		e.Pos = e.Pos.Add(dir.Scale(e.Speed * dt))
	}
	if e.Shoot != nil {
		e.Shoot.Timer -= dt
	}
}

// ReadyToShoot is true for a shooter whose timer has elapsed.
func (e *Enemy) ReadyToShoot() bool {
	return e.Shoot != nil && e.Shoot.Timer <= 0
}

// ResetShoot restarts the shot timer after firing.
func (e *Enemy) ResetShoot() {
	if e.Shoot != nil {
		e.Shoot.Timer = e.Shoot.Cooldown
	}
}

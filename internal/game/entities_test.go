package game

import (
	"math"
	"testing"
)

func TestBullet_AliveMargins(t *testing.T) {
	bounds := Bounds{W: 960, H: 540}
	b := &Bullet{Pos: V(-49, 10), Life: 1}
	if !b.Alive(bounds) {
		t.Fatal("player bullet 49px outside should survive the 50px margin")
	}
	b.Pos = V(-51, 10)
	if b.Alive(bounds) {
		t.Fatal("player bullet 51px outside must be dead")
	}

	eb := &EnemyBullet{Pos: V(-19, 10), Life: 1}
	if !eb.Alive(bounds) {
		t.Fatal("enemy bullet 19px outside should survive the 20px margin")
	}
	eb.Pos = V(-21, 10)
	if eb.Alive(bounds) {
		t.Fatal("enemy bullet 21px outside must be dead")
	}
}

func TestBullet_UpdateExpires(t *testing.T) {
	b := &Bullet{Pos: V(100, 100), Vel: V(60, 0), Life: 0.5}
	b.Update(0.25)
	if b.Pos.X != 115 || b.Life != 0.25 {
		t.Fatalf("after update: pos=%+v life=%v", b.Pos, b.Life)
	}
	b.Update(0.25)
	if b.Alive(Bounds{W: 960, H: 540}) {
		t.Fatal("bullet with zero lifetime must be dead")
	}
}

func TestBullet_ConsumeSpendsPierceFirst(t *testing.T) {
	b := &Bullet{Pierce: 1, Life: 1}
	b.consume()
	if b.Pierce != 0 || b.Life != 1 {
		t.Fatalf("first consume: pierce=%d life=%v", b.Pierce, b.Life)
	}
	b.consume()
	if b.Life != 0 {
		t.Fatalf("second consume should expire the bullet, life=%v", b.Life)
	}
}

func TestNewEnemyBullet(t *testing.T) {
	eb, ok := NewEnemyBullet(V(0, 0), V(0, 10), 5)
	if !ok {
		t.Fatal("expected a bullet")
	}
	if eb.Vel.Y != 250 || eb.Radius != 3 || eb.Life != 3 {
		t.Fatalf("unexpected enemy bullet %+v", eb)
	}
	if _, ok := NewEnemyBullet(V(5, 5), V(5, 5), 1); ok {
		t.Fatal("coincident origin and target must not fire")
	}
}

func TestEnemy_UpdateChases(t *testing.T) {
	e := NewEnemy(V(0, 0), 100, 14, 1)
	e.Update(0.5, V(100, 0))
	if e.Pos.X != 50 || e.Pos.Y != 0 {
		t.Fatalf("pos = %+v, want (50,0)", e.Pos)
	}
	at := e.Pos
	e.Update(0.5, at)
	if !e.Pos.Equal(at) {
		t.Fatalf("enemy on target moved to %+v", e.Pos)
	}
}

func TestEnemy_ShooterTimer(t *testing.T) {
	plain := NewEnemy(V(0, 0), 100, 14, 1)
	if plain.HasShootBehavior() || plain.ReadyToShoot() || plain.Kind() != EnemyPlain {
		t.Fatal("plain enemy must not shoot")
	}

	s := NewShooter(V(0, 0), 100, 16, 3, 1.0)
	if s.Kind() != EnemyShooter || !s.HasShootBehavior() {
		t.Fatal("expected shooter kind")
	}
	s.Update(0.6, V(100, 0))
	if s.ReadyToShoot() {
		t.Fatal("ready before cooldown elapsed")
	}
	s.Update(0.4, V(100, 0))
	if !s.ReadyToShoot() {
		t.Fatalf("not ready after cooldown, timer=%v", s.Shoot.Timer)
	}
	s.ResetShoot()
	if s.Shoot.Timer != 1.0 {
		t.Fatalf("timer = %v after reset, want 1", s.Shoot.Timer)
	}
}

func TestCoin_DragIsFrameRateIndependent(t *testing.T) {
	bounds := Bounds{W: 960, H: 540}
	far := V(900, 500)

	a := NewCoin(V(100, 100), V(100, 0), 1)
	for i := 0; i < 60; i++ {
		a.Update(1.0/60, far, 60, bounds)
	}
	b := NewCoin(V(100, 100), V(100, 0), 1)
	for i := 0; i < 120; i++ {
		b.Update(1.0/120, far, 60, bounds)
	}
	want := 100 * math.Pow(0.98, 60)
	if math.Abs(a.Vel.X-want) > 1e-9 || math.Abs(b.Vel.X-want) > 1e-9 {
		t.Fatalf("velocities after 1s: 60Hz=%v 120Hz=%v want %v", a.Vel.X, b.Vel.X, want)
	}
}

func TestCoin_MagnetPullsTowardPlayer(t *testing.T) {
	c := NewCoin(V(130, 100), Vec2{}, 1)
	c.Update(1.0/60, V(100, 100), 60, Bounds{W: 960, H: 540})
	if c.Vel.X >= 0 || math.Abs(c.Vel.X+10) > 1e-9 {
		t.Fatalf("vel = %+v, want (-10,0)", c.Vel)
	}
	if c.Pos.X >= 130 {
		t.Fatalf("coin did not move toward the player: %+v", c.Pos)
	}

	out := NewCoin(V(300, 100), Vec2{}, 1)
	out.Update(1.0/60, V(100, 100), 60, Bounds{W: 960, H: 540})
	if out.Vel.LenSq() != 0 {
		t.Fatal("coin outside the magnet radius must not be pulled")
	}
}

func TestCoin_WallClampZeroesVelocity(t *testing.T) {
	bounds := Bounds{W: 960, H: 540}
	c := NewCoin(V(3, 535), V(-50, 80), 1)
	c.Update(1.0/60, V(500, 270), 60, bounds)
	if c.Pos.X != c.Radius || c.Vel.X != 0 {
		t.Fatalf("left wall: pos=%+v vel=%+v", c.Pos, c.Vel)
	}
	if c.Pos.Y != bounds.H-c.Radius || c.Vel.Y != 0 {
		t.Fatalf("bottom wall: pos=%+v vel=%+v", c.Pos, c.Vel)
	}
}

func TestExplosion_GrowsOverFixedWindow(t *testing.T) {
	x := NewAOEExplosion(V(0, 0), 1)
	if x.MaxRadius != 50 || x.Damage != 2 {
		t.Fatalf("level 1 explosion: max=%v dmg=%d", x.MaxRadius, x.Damage)
	}
	x.Update(0.15)
	if math.Abs(x.Radius-25) > 1e-9 {
		t.Fatalf("radius at half window = %v, want 25", x.Radius)
	}
	x.Update(0.15)
	if x.Alive() {
		t.Fatal("explosion must expire after the window")
	}
	if math.Abs(x.Radius-50) > 1e-9 {
		t.Fatalf("final radius = %v, want 50", x.Radius)
	}
}

func TestExplosion_LongLifetimeStillUsesWindow(t *testing.T) {
	x := &Explosion{MaxRadius: 100, Life: 0.6}
	x.Update(0.1)
	if x.Radius != 0 {
		t.Fatalf("radius = %v, want 0 while life exceeds the growth window", x.Radius)
	}
}

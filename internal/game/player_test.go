package game

import (
	"math"
	"testing"
)

func newTestPlayer() *Player {
	tun := DefaultTuning()
	b := tun.Bounds()
	return NewPlayer(b.Center(), &tun, b)
}

func TestPlayer_TakeHit_ArmorBeforeHealth(t *testing.T) {
	p := newTestPlayer()
	p.Armor = 2
	rng := newScriptedRand(nil, nil)

	if out := p.TakeHit(rng); out != HitArmor {
		t.Fatalf("first hit outcome = %s, want armor", out)
	}
	if p.Armor != 1 || p.Health != 5 {
		t.Fatalf("after 1 hit: armor=%d health=%d, want 1/5", p.Armor, p.Health)
	}
	for i := 0; i < 2; i++ {
		p.Invuln = 0
		p.TakeHit(rng)
	}
	if p.Armor != 0 || p.Health != 4 {
		t.Fatalf("after 3 hits: armor=%d health=%d, want 0/4", p.Armor, p.Health)
	}
}

func TestPlayer_TakeHit_InvulnerableIsNoop(t *testing.T) {
	p := newTestPlayer()
	p.TakeHit(newScriptedRand(nil, nil))
	if p.Invuln != p.tun.InvulnOnHit {
		t.Fatalf("invuln = %v, want %v", p.Invuln, p.tun.InvulnOnHit)
	}
	hp := p.Health
	if out := p.TakeHit(newScriptedRand(nil, nil)); out != HitIgnored || p.Health != hp {
		t.Fatalf("hit while invulnerable: outcome=%s health=%d", out, p.Health)
	}
}

func TestPlayer_TakeHit_Dodge(t *testing.T) {
	p := newTestPlayer()
	p.Levels.Dodge = 20 // capped at 0.5
	if got := p.DodgeChance(); got != 0.5 {
		t.Fatalf("dodge chance = %v, want cap 0.5", got)
	}

	if out := p.TakeHit(newScriptedRand([]float64{0.49}, nil)); out != HitDodged {
		t.Fatalf("roll 0.49 should dodge, got %s", out)
	}
	if p.Health != 5 || p.Invuln != dodgeInvuln {
		t.Fatalf("dodge must not hurt: health=%d invuln=%v", p.Health, p.Invuln)
	}

	p.Invuln = 0
	if out := p.TakeHit(newScriptedRand([]float64{0.5}, nil)); out != HitHealth {
		t.Fatalf("roll 0.5 should land, got %s", out)
	}
	if p.Health != 4 {
		t.Fatalf("health = %d, want 4", p.Health)
	}
}

func TestPlayer_GodModeIgnoresHits(t *testing.T) {
	p := newTestPlayer()
	p.GodMode = true
	if out := p.TakeHit(newScriptedRand(nil, nil)); out != HitIgnored || p.Health != 5 {
		t.Fatalf("god mode hit: outcome=%s health=%d", out, p.Health)
	}
}

func TestPlayer_Regen(t *testing.T) {
	p := newTestPlayer()
	p.Levels.Regen = 1
	p.Health = 3
	if got := p.RegenInterval(); math.Abs(got-10.4) > 1e-12 {
		t.Fatalf("regen interval = %v, want 10.4", got)
	}

	const dt = 1.0 / 60
	for i := 0; i < 623; i++ {
		p.Update(dt, Vec2{})
	}
	if p.Health != 3 {
		t.Fatalf("healed early: health=%d after %.4fs", p.Health, p.RegenProgress())
	}
	p.Update(dt, Vec2{})
	if p.Health != 4 {
		t.Fatalf("health = %d after 10.4s, want 4", p.Health)
	}
	if p.RegenProgress() != 0 {
		t.Fatalf("regen accumulator = %v, want 0", p.RegenProgress())
	}
}

func TestPlayer_RegenIntervalFloor(t *testing.T) {
	p := newTestPlayer()
	p.Levels.Regen = 50
	if got := p.RegenInterval(); got != regenFloor {
		t.Fatalf("regen interval = %v, want floor %v", got, regenFloor)
	}
}

func TestPlayer_RegenIdleAtFullHealth(t *testing.T) {
	p := newTestPlayer()
	p.Levels.Regen = 3
	p.Update(1, Vec2{})
	if p.RegenProgress() != 0 || p.Health != p.MaxHealth() {
		t.Fatalf("regen must not accumulate at full health: progress=%v", p.RegenProgress())
	}
}

func TestPlayer_Lifesteal(t *testing.T) {
	p := newTestPlayer()
	if p.OnKill() {
		t.Fatal("lifesteal level 0 must never heal")
	}
	p.Levels.Lifesteal = 1
	p.Health = 3
	for i := 0; i < 3; i++ {
		if p.OnKill() {
			t.Fatalf("healed after %d kills, want 4", i+1)
		}
	}
	if !p.OnKill() || p.Health != 4 {
		t.Fatalf("4th kill should heal: health=%d", p.Health)
	}
}

func TestPlayer_UpdateClampsToBounds(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 600; i++ {
		p.Update(1.0/60, V(-1, -1))
	}
	if p.Pos.X != p.Radius || p.Pos.Y != p.Radius {
		t.Fatalf("pos = %+v, want clamped to (%v,%v)", p.Pos, p.Radius, p.Radius)
	}
}

func TestPlayer_UpdateZeroMoveStaysPut(t *testing.T) {
	p := newTestPlayer()
	start := p.Pos
	p.Update(0.5, Vec2{})
	if !p.Pos.Equal(start) || p.Vel.LenSq() != 0 {
		t.Fatalf("zero intent moved player to %+v", p.Pos)
	}
}

func TestPlayer_TimersFloorAtZero(t *testing.T) {
	p := newTestPlayer()
	p.Invuln = 0.1
	p.FireCooldown = 0.05
	p.Update(1, Vec2{})
	if p.Invuln != 0 || p.FireCooldown != 0 {
		t.Fatalf("timers = %v/%v, want 0/0", p.Invuln, p.FireCooldown)
	}
}

func TestPlayer_TryShoot(t *testing.T) {
	p := newTestPlayer()
	if _, ok := p.TryShoot(p.Pos); ok {
		t.Fatal("aim on the player must not fire")
	}
	if p.FireCooldown != 0 {
		t.Fatal("a failed shot must not start the cooldown")
	}

	p.Levels.Size = 2
	p.Levels.Pierce = 1
	p.Levels.BulletDamage = 3
	p.Levels.BulletSpeed = 1
	b, ok := p.TryShoot(p.Pos.Add(V(100, 0)))
	if !ok {
		t.Fatal("expected a shot")
	}
	if math.Abs(b.Radius-4*1.7) > 1e-9 {
		t.Fatalf("radius = %v, want 6.8", b.Radius)
	}
	if b.Pierce != 1 || b.Damage != 4 {
		t.Fatalf("pierce=%d damage=%d, want 1/4", b.Pierce, b.Damage)
	}
	if math.Abs(b.Vel.X-600*1.08) > 1e-9 || b.Vel.Y != 0 {
		t.Fatalf("velocity = %+v, want (648,0)", b.Vel)
	}
	if math.Abs(p.FireCooldown-0.12) > 1e-12 {
		t.Fatalf("cooldown = %v, want 0.12", p.FireCooldown)
	}
	if _, ok := p.TryShoot(p.Pos.Add(V(100, 0))); ok {
		t.Fatal("must not fire during cooldown")
	}
}

func TestPlayer_TryShootCooldownFloor(t *testing.T) {
	p := newTestPlayer()
	p.FireRateMultiplier = 1000
	if _, ok := p.TryShoot(p.Pos.Add(V(0, 10))); !ok {
		t.Fatal("expected a shot")
	}
	if p.FireCooldown != minFireCooldown {
		t.Fatalf("cooldown = %v, want floor %v", p.FireCooldown, minFireCooldown)
	}
}

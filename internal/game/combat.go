package game

import "fmt"

// --- Resolver constants ---

const (
	enemyKnockback = 12.0 // px an overlapping enemy is pushed off the player

	bossCoinCount     = 14
	bossCoinValue     = 2
	bossCoinScatter   = 180.0 // max |velocity| per axis of boss coins
	bossArmorChance   = 0.5
	normalCoinScatter = 40.0
	normalCoinLowOdds = 0.85 // chance a normal drop is worth 1 rather than 2
)

// Resolve performs one collision pass over the current populations:
//
//  1. player bullets vs enemies (kills, drops, on-kill hooks)
//  2. purge dead enemies and spent bullets
//  3. boss gate
//  4. enemies vs player (hit + knockback)
//  5. enemy bullets vs player
//  6. coin pickup
//
// It does nothing once the player is dead. Each later pass is skipped if an
// earlier one ended the run.
func (r *Run) Resolve() {
	if !r.Player.Alive() {
		return
	}
	r.resolveBulletsVsEnemies()
	r.purgeDeadEnemies()
	r.purgeBullets()

	if r.Spawner.ShouldSpawnBoss() {
		r.spawnBoss()
	}

	r.resolveEnemiesVsPlayer()
	if !r.Player.Alive() {
		return
	}
	r.resolveEnemyBulletsVsPlayer()
	if !r.Player.Alive() {
		return
	}
	r.resolvePickups()
}

// resolveBulletsVsEnemies lets each enemy take at most one bullet per tick.
// A hit always removes exactly one health point.
func (r *Run) resolveBulletsVsEnemies() {
	for _, e := range r.Enemies {
		for _, b := range r.Bullets {
			if !b.Alive(r.Bounds) {
				continue
			}
			if !circlesOverlap(e.Pos, e.Radius, b.Pos, b.Radius) {
				continue
			}
			e.Health--
			if e.Dead() {
				r.onEnemyKilled(e)
			}
			b.consume()
			break
		}
	}
}

// onEnemyKilled applies score, on-kill effects and drops for one kill.
func (r *Run) onEnemyKilled(e *Enemy) {
	r.Score++
	r.Stats.Kills++
	if r.Player.OnKill() {
		r.Log.Add(r.Tick, "player", "combat", "lifesteal", fmt.Sprintf("hp=%d", r.Player.Health), float64(r.Player.Health))
	}
	if lvl := r.Player.Levels.AOEOnKill; lvl > 0 {
		r.Explosions = append(r.Explosions, NewAOEExplosion(e.Pos, lvl))
	}

	if e.IsBoss {
		r.dropBossLoot(e.Pos)
		r.Spawner.OnBossKilled()
		r.Stats.BossKills++
		r.Stats.MaxLevel = maxInt(r.Stats.MaxLevel, r.Spawner.Level)
		r.Log.Add(r.Tick, "boss", "combat", "boss_kill", fmt.Sprintf("score=%d", r.Score), float64(r.Score))
		r.Log.Add(r.Tick, "--", "level", "advance", fmt.Sprintf("level=%d interval=%.3f", r.Spawner.Level, r.Spawner.Interval), float64(r.Spawner.Level))
		r.emit(Event{Type: BossKilled, Pos: e.Pos, Value: r.Score})
		r.emit(Event{Type: LevelStarted, Value: r.Spawner.Level})
		return
	}

	r.dropNormalLoot(e.Pos)
	r.Spawner.RecordKill()
	r.Log.Add(r.Tick, e.Kind().String(), "combat", "kill",
		fmt.Sprintf("score=%d kills=%d/%d", r.Score, r.Spawner.KillsThisLevel, r.Spawner.KillsRequired()), float64(r.Score))
	r.emit(Event{Type: EnemyKilled, Pos: e.Pos, Value: r.Score, Detail: e.Kind().String()})
}

func (r *Run) dropBossLoot(at Vec2) {
	at = r.Bounds.ClampInset(at, coinRadius)
	for i := 0; i < bossCoinCount; i++ {
		vel := V(uniform(r.rng, -bossCoinScatter, bossCoinScatter), uniform(r.rng, -bossCoinScatter, bossCoinScatter))
		r.Coins = append(r.Coins, NewCoin(at, vel, bossCoinValue))
	}
	if chance(r.rng, bossArmorChance) {
		r.Player.Armor++
		r.Log.Add(r.Tick, "player", "economy", "armor_drop", fmt.Sprintf("armor=%d", r.Player.Armor), float64(r.Player.Armor))
	}
}

func (r *Run) dropNormalLoot(at Vec2) {
	if !chance(r.rng, r.tun.NormalDropChance) {
		return
	}
	at = r.Bounds.ClampInset(at, coinRadius)
	value := 2
	if chance(r.rng, normalCoinLowOdds) {
		value = 1
	}
	vel := V(uniform(r.rng, -normalCoinScatter, normalCoinScatter), uniform(r.rng, -normalCoinScatter, normalCoinScatter))
	r.Coins = append(r.Coins, NewCoin(at, vel, value))
}

func (r *Run) spawnBoss() {
	boss := r.Spawner.SpawnBoss(r.rng)
	r.Enemies = append(r.Enemies, boss)
	r.Log.Add(r.Tick, "boss", "spawn", "boss", fmt.Sprintf("level=%d hp=%d", r.Spawner.Level, boss.Health), float64(boss.Health))
	r.emit(Event{Type: BossSpawned, Pos: boss.Pos, Value: r.Spawner.Level})
}

// resolveEnemiesVsPlayer hits the player once per overlapping enemy and
// pushes that enemy away.
func (r *Run) resolveEnemiesVsPlayer() {
	p := r.Player
	for _, e := range r.Enemies {
		if !circlesOverlap(p.Pos, p.Radius, e.Pos, e.Radius) {
			continue
		}
		r.hitPlayer(e.Kind().String())
		if dir, ok := e.Pos.Sub(p.Pos).Normalize(); ok {
			e.Pos = e.Pos.Add(dir.Scale(enemyKnockback))
		}
	}
}

// resolveEnemyBulletsVsPlayer removes every enemy bullet touching the player,
// whether or not the hit landed.
func (r *Run) resolveEnemyBulletsVsPlayer() {
	p := r.Player
	kept := r.EnemyBullets[:0]
	for _, eb := range r.EnemyBullets {
		if circlesOverlap(p.Pos, p.Radius, eb.Pos, eb.Radius) {
			r.hitPlayer("bullet")
			continue
		}
		kept = append(kept, eb)
	}
	clearTail(r.EnemyBullets, len(kept))
	r.EnemyBullets = kept
}

// hitPlayer applies one incoming hit and records its outcome.
func (r *Run) hitPlayer(source string) {
	p := r.Player
	switch out := p.TakeHit(r.rng); out {
	case HitDodged:
		r.Stats.Dodges++
		r.Log.Add(r.Tick, "player", "combat", "dodge", "from="+source, 0)
		r.emit(Event{Type: PlayerDodged, Pos: p.Pos, Detail: source})
	case HitArmor, HitHealth:
		r.Stats.HitsTaken++
		r.Log.Add(r.Tick, "player", "combat", "player_hit",
			fmt.Sprintf("from=%s took=%s hp=%d armor=%d", source, out, p.Health, p.Armor), float64(p.Health))
		r.emit(Event{Type: PlayerHit, Pos: p.Pos, Value: p.Health, Detail: out.String()})
	}
}

// resolvePickups collects coins within the pickup radius. One CoinsCollected
// event is raised per tick with the total value.
func (r *Run) resolvePickups() {
	p := r.Player
	reach := p.Radius + coinPickupMargin
	total := 0
	kept := r.Coins[:0]
	for _, c := range r.Coins {
		if circlesOverlap(p.Pos, reach, c.Pos, c.Radius) {
			total += c.Value
			continue
		}
		kept = append(kept, c)
	}
	clearTail(r.Coins, len(kept))
	r.Coins = kept
	if total == 0 {
		return
	}
	p.Coins += total
	r.Stats.CoinsCollected += total
	r.Log.Add(r.Tick, "player", "economy", "pickup", fmt.Sprintf("+%d total=%d", total, p.Coins), float64(total))
	r.emit(Event{Type: CoinsCollected, Pos: p.Pos, Value: total})
}

func (r *Run) purgeDeadEnemies() {
	kept := r.Enemies[:0]
	for _, e := range r.Enemies {
		if !e.Dead() {
			kept = append(kept, e)
		}
	}
	clearTail(r.Enemies, len(kept))
	r.Enemies = kept
}

func (r *Run) purgeBullets() {
	kept := r.Bullets[:0]
	for _, b := range r.Bullets {
		if b.Alive(r.Bounds) {
			kept = append(kept, b)
		}
	}
	clearTail(r.Bullets, len(kept))
	r.Bullets = kept
}

// clearTail nils out the slots past n so filtered-out pointers can be
// collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}

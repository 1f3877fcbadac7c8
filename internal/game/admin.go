package game

import "fmt"

// Admin operations invoked by the console and the admin panel. Each one runs
// between ticks and logs under the "admin" category.

// SetGodMode toggles invulnerability. Enabling it also fills health.
func (r *Run) SetGodMode(on bool) {
	r.Player.GodMode = on
	if on {
		r.Player.Health = r.Player.MaxHealth()
	}
	r.Log.Add(r.Tick, "player", "admin", "god", fmt.Sprintf("on=%t", on), boolNum(on))
}

// ToggleGodMode flips god mode and returns the new state.
func (r *Run) ToggleGodMode() bool {
	r.SetGodMode(!r.Player.GodMode)
	return r.Player.GodMode
}

// AddCurrency grants n coins. Negative n is ignored.
func (r *Run) AddCurrency(n int) {
	if n <= 0 {
		return
	}
	r.Player.Coins += n
	r.Log.Add(r.Tick, "player", "admin", "money", fmt.Sprintf("+%d total=%d", n, r.Player.Coins), float64(n))
}

// SetLevel jumps the spawner to level n (at least 1) and records it as reached.
func (r *Run) SetLevel(n int) {
	r.Spawner.SetLevel(n)
	r.Stats.MaxLevel = maxInt(r.Stats.MaxLevel, r.Spawner.Level)
	r.Log.Add(r.Tick, "--", "admin", "level", fmt.Sprintf("level=%d", r.Spawner.Level), float64(r.Spawner.Level))
	r.emit(Event{Type: LevelStarted, Value: r.Spawner.Level})
	r.flush()
}

// ClearEnemies removes every enemy without awarding kills. Shots already in
// flight stay. A removed boss frees the boss slot for this level.
func (r *Run) ClearEnemies() int {
	n := len(r.Enemies)
	for _, e := range r.Enemies {
		if e.IsBoss {
			r.Spawner.BossActive = false
		}
	}
	clearTail(r.Enemies, 0)
	r.Enemies = r.Enemies[:0]
	r.Log.Add(r.Tick, "--", "admin", "killall", fmt.Sprintf("removed=%d", n), float64(n))
	return n
}

// SpawnEnemies adds n plain enemies just off random edges.
func (r *Run) SpawnEnemies(n int) {
	for i := 0; i < n; i++ {
		pos := r.Spawner.edgePoint(r.rng, r.tun.EnemyRadius)
		speed := uniform(r.rng, r.tun.EnemySpeedMin, r.tun.EnemySpeedMax)
		r.Enemies = append(r.Enemies, NewEnemy(pos, speed, r.tun.EnemyRadius, 1))
	}
	r.Log.Add(r.Tick, "--", "admin", "spawn", fmt.Sprintf("count=%d", n), float64(n))
}

// HealFull restores the player to max health.
func (r *Run) HealFull() {
	r.Player.Health = r.Player.MaxHealth()
	r.Log.Add(r.Tick, "player", "admin", "heal", fmt.Sprintf("hp=%d", r.Player.Health), float64(r.Player.Health))
}

// AddArmor grants n armor. Negative n is ignored.
func (r *Run) AddArmor(n int) {
	if n <= 0 {
		return
	}
	r.Player.Armor += n
	r.Log.Add(r.Tick, "player", "admin", "armor", fmt.Sprintf("+%d total=%d", n, r.Player.Armor), float64(n))
}

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

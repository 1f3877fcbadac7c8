package game

import (
	"fmt"

	"github.com/google/uuid"
)

// maxStepsPerFrame caps catch-up work when a frame arrives late.
const maxStepsPerFrame = 5

// Intent is the decoded player input for one tick.
type Intent struct {
	Move Vec2 // any length; normalized by the player
	Aim  Vec2 // world position
	Fire bool
}

// RunStats are counters kept for reports and the end screen.
type RunStats struct {
	Kills          int
	BossKills      int
	ShotsFired     int
	CoinsCollected int
	HitsTaken      int
	Dodges         int
	Purchases      int
	MaxLevel       int
}

// Run owns every population of one play session and advances them in a fixed
// order. Collaborators read it between ticks and submit intents, purchases and
// admin operations; nothing mutates it mid-tick.
type Run struct {
	ID     uuid.UUID
	Bounds Bounds

	Player       *Player
	Spawner      *Spawner
	Enemies      []*Enemy
	Bullets      []*Bullet
	EnemyBullets []*EnemyBullet
	Coins        []*Coin
	Explosions   []*Explosion

	Score int
	Tick  int
	Stats RunStats

	Log    *SimLog
	Events *Dispatcher

	tun       *Tuning
	rng       Rand
	paused    bool
	ended     bool
	tickAccum float64
	pending   []Event
}

// NewRun starts a fresh session with a full-health player at the centre.
func NewRun(tun Tuning, rng Rand) *Run {
	t := tun
	bounds := t.Bounds()
	r := &Run{
		ID:     uuid.New(),
		Bounds: bounds,
		Log:    NewSimLog(false),
		Events: NewDispatcher(),
		tun:    &t,
		rng:    rng,
	}
	r.Player = NewPlayer(bounds.Center(), r.tun, bounds)
	r.Spawner = NewSpawner(r.tun, bounds)
	r.Stats.MaxLevel = 1
	return r
}

// Tuning returns the balance the run was created with.
func (r *Run) Tuning() Tuning { return *r.tun }

// Rand exposes the run's random source to collaborators that must stay on the
// same seed (autopilot shopping).
func (r *Run) Rand() Rand { return r.rng }

func (r *Run) Paused() bool { return r.paused }

// SetPaused freezes or resumes the simulation at the next tick boundary.
func (r *Run) SetPaused(p bool) {
	r.paused = p
	if p {
		r.tickAccum = 0
	}
}

// Over reports whether the player has died.
func (r *Run) Over() bool { return !r.Player.Alive() }

// Advance converts frame time into fixed steps, all driven by the same intent.
// It returns the number of ticks run.
func (r *Run) Advance(frameDt float64, in Intent) int {
	if r.paused || r.Over() {
		return 0
	}
	step := r.tun.TickDT()
	r.tickAccum += frameDt
	n := 0
	for r.tickAccum >= step && n < maxStepsPerFrame {
		r.tickAccum -= step
		r.Step(in)
		n++
	}
	if n == maxStepsPerFrame {
		r.tickAccum = 0
	}
	return n
}

// Step runs exactly one simulation tick. Frozen runs are left untouched.
func (r *Run) Step(in Intent) {
	if r.paused || r.Over() {
		return
	}
	r.Tick++
	dt := r.tun.TickDT()

	// 1. SPAWN: cadence, difficulty ramp, regular spawns.
	r.Spawner.Update(dt)
	if r.Spawner.ShouldSpawn() {
		r.addEnemy(r.Spawner.SpawnEnemy(r.rng))
		r.Spawner.ResetTimer()
	}

	// 2. PLAYER: movement, timers, firing.
	r.Player.Update(dt, in.Move)
	if in.Fire {
		if b, ok := r.Player.TryShoot(in.Aim); ok {
			r.Bullets = append(r.Bullets, b)
			r.Stats.ShotsFired++
			r.emit(Event{Type: ShotFired, Pos: b.Pos})
		}
	}
	r.Log.AddVerbose(r.Tick, "player", "move", "pos",
		fmt.Sprintf("(%.0f,%.0f) hp=%d", r.Player.Pos.X, r.Player.Pos.Y, r.Player.Health), float64(r.Player.Health))

	// 3. PROJECTILES.
	for _, b := range r.Bullets {
		b.Update(dt)
	}
	for _, eb := range r.EnemyBullets {
		eb.Update(dt)
	}

	// 4. ENEMIES: chase, shooters fire.
	for _, e := range r.Enemies {
		e.Update(dt, r.Player.Pos)
		if !e.ReadyToShoot() {
			continue
		}
		if eb, ok := NewEnemyBullet(e.Pos, r.Player.Pos, r.Spawner.Level); ok {
			r.EnemyBullets = append(r.EnemyBullets, eb)
		}
		e.ResetShoot()
	}

	// 5. PICKUPS and effects.
	for _, c := range r.Coins {
		c.Update(dt, r.Player.Pos, r.Player.MagnetRadius, r.Bounds)
	}
	for _, x := range r.Explosions {
		x.Update(dt)
	}

	// 6. COLLISIONS.
	r.Resolve()

	// 7. CLEANUP.
	r.purgeBullets()
	r.purgeEnemyBullets()
	r.purgeExplosions()

	if r.Over() {
		r.endRun()
	}
	r.flush()
}

func (r *Run) addEnemy(e *Enemy) {
	r.Enemies = append(r.Enemies, e)
	key := "enemy"
	if e.HasShootBehavior() {
		key = "shooter"
	}
	r.Log.Add(r.Tick, e.Kind().String(), "spawn", key,
		fmt.Sprintf("(%.0f,%.0f) hp=%d speed=%.0f", e.Pos.X, e.Pos.Y, e.Health, e.Speed), e.Speed)
}

func (r *Run) purgeEnemyBullets() {
	kept := r.EnemyBullets[:0]
	for _, eb := range r.EnemyBullets {
		if eb.Alive(r.Bounds) {
			kept = append(kept, eb)
		}
	}
	clearTail(r.EnemyBullets, len(kept))
	r.EnemyBullets = kept
}

func (r *Run) purgeExplosions() {
	kept := r.Explosions[:0]
	for _, x := range r.Explosions {
		if x.Alive() {
			kept = append(kept, x)
		}
	}
	clearTail(r.Explosions, len(kept))
	r.Explosions = kept
}

func (r *Run) endRun() {
	if r.ended {
		return
	}
	r.ended = true
	r.Log.Add(r.Tick, "--", "run", "end",
		fmt.Sprintf("score=%d level=%d coins=%d", r.Score, r.Spawner.Level, r.Player.Coins), float64(r.Score))
	r.emit(Event{Type: RunEnded, Value: r.Score})
}

// emit queues an event for dispatch at the end of the current operation.
func (r *Run) emit(ev Event) {
	ev.Tick = r.Tick
	r.pending = append(r.pending, ev)
}

// flush dispatches queued events. Listeners run with the tick complete.
func (r *Run) flush() {
	if len(r.pending) == 0 {
		return
	}
	evs := r.pending
	r.pending = nil
	for _, ev := range evs {
		r.Events.Dispatch(ev)
	}
}

// Buy purchases id for the player and reports the outcome.
func (r *Run) Buy(id UpgradeID) PurchaseResult {
	res := Purchase(r.Player, id, r.rng)
	if !res.OK {
		r.Log.Add(r.Tick, "player", "economy", "declined", fmt.Sprintf("%s: %s", id, res.Reason), float64(res.Cost))
		return res
	}
	r.Stats.Purchases++
	r.Log.Add(r.Tick, "player", "economy", "purchase",
		fmt.Sprintf("%s cost=%d coins=%d %s", id, res.Cost, r.Player.Coins, res.Reason), float64(res.Cost))
	r.emit(Event{Type: PurchaseMade, Value: res.Cost, Detail: string(id)})
	r.flush()
	return res
}

// Costs prices every upgrade for the current player.
func (r *Run) Costs() CostTable {
	return ComputeCosts(r.Player.Levels)
}

// Restart begins a new session that keeps the player's persistent profile.
// The event dispatcher and log verbosity carry over.
func (r *Run) Restart() *Run {
	snap := r.Snapshot()
	next := NewRun(*r.tun, r.rng)
	next.Events = r.Events
	next.Log = NewSimLog(r.Log.Verbose())
	next.ApplySnapshot(snap)
	return next
}

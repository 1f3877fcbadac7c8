package game

// TestSim is a headless harness around a Run. It is used by tests and by
// the headless report, supports deterministic seeding and records every
// dispatched event.
type TestSim struct {
	Run       *Run
	SimLog    *SimLog
	Reporter  *SimReporter
	Autopilot *Autopilot
	Events    []Event // every dispatched event, in order

	Seed   int64
	Intent Intent // used every tick when no autopilot is set

	tuning Tuning
	rng    Rand
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // tuning, bounds, seed, verbose: applied before the run exists
	simOptEntity                      // player placement, enemies, bullets: applied to the new run
	simOptDriver                      // autopilot, fixed intent
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Seed = seed
		ts.rng = NewRand(seed)
	}}
}

// WithRand injects a random source, typically a scripted double.
func WithRand(r Rand) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = r
	}}
}

// WithTuning replaces the whole balance.
func WithTuning(t Tuning) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning = t
	}}
}

// WithBounds sets the play area dimensions.
func WithBounds(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning.Width = w
		ts.tuning.Height = h
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithPlayerAt moves the player before the first tick.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Run.Player.Pos = V(x, y)
	}}
}

// WithEnemy places a prepared enemy.
func WithEnemy(e *Enemy) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Run.Enemies = append(ts.Run.Enemies, e)
	}}
}

// WithBullet places a prepared player bullet.
func WithBullet(b *Bullet) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Run.Bullets = append(ts.Run.Bullets, b)
	}}
}

// WithSnapshot restores a profile onto the fresh run.
func WithSnapshot(s Snapshot) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Run.ApplySnapshot(s)
	}}
}

// WithAutopilot lets the Autopilot decide every tick's intent.
func WithAutopilot() SimOption {
	return SimOption{simOptDriver, func(ts *TestSim) {
		ts.Autopilot = NewAutopilot()
	}}
}

// WithIntent fixes the intent used for every tick.
func WithIntent(in Intent) SimOption {
	return SimOption{simOptDriver, func(ts *TestSim) {
		ts.Intent = in
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (tuning, bounds, seed, verbose)
//  2. Build the Run
//  3. Entities
//  4. Drivers
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		tuning:   DefaultTuning(),
		SimLog:   NewSimLog(false),
		Reporter: NewSimReporter(reportWindowTicks),
		Seed:     1,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if ts.rng == nil {
		ts.rng = NewRand(ts.Seed)
	}
	ts.Run = NewRun(ts.tuning, ts.rng)
	ts.Run.Log = ts.SimLog
	ts.Run.Events.SubscribeAll(ListenerFunc(func(ev Event) {
		ts.Events = append(ts.Events, ev)
	}))
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptDriver {
			o.fn(ts)
		}
	}
	return ts
}

// RunTicks advances the run n ticks. It stops early once the run is over.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n && !ts.Run.Over(); i++ {
		ts.runOneTick()
	}
}

// RunUntil advances the run up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks && !ts.Run.Over(); i++ {
		ts.runOneTick()
		if predicate(ts) {
			return ts.Run.Tick
		}
	}
	return -1
}

func (ts *TestSim) runOneTick() {
	in := ts.Intent
	if ts.Autopilot != nil {
		in = ts.Autopilot.Intent(ts.Run)
	}
	ts.Run.Step(in)
	if ts.Run.Tick%ts.tuning.TickRate == 0 {
		ts.Reporter.Collect(ts.Run)
	}
}

// CountEvents returns how many recorded events have type t.
func (ts *TestSim) CountEvents(t EventType) int {
	n := 0
	for _, ev := range ts.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// Report summarises the run so far.
func (ts *TestSim) Report() RunReport {
	return NewRunReport(ts.Run, ts.Seed, ts.Reporter)
}

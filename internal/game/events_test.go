package game

import "testing"

type countingListener struct {
	seen []EventType
}

func (c *countingListener) OnEvent(ev Event) { c.seen = append(c.seen, ev.Type) }

func TestDispatcher_SubscribeAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	other := &countingListener{}
	d.Subscribe(EnemyKilled, l)
	d.Subscribe(EnemyKilled, other)
	d.Subscribe(BossKilled, l)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: ShotFired})
	d.Dispatch(Event{Type: BossKilled})
	if len(l.seen) != 2 || len(other.seen) != 1 {
		t.Fatalf("deliveries: l=%v other=%v", l.seen, other.seen)
	}

	d.Unsubscribe(EnemyKilled, l)
	d.Dispatch(Event{Type: EnemyKilled})
	if len(l.seen) != 2 || len(other.seen) != 2 {
		t.Fatalf("after unsubscribe: l=%v other=%v", l.seen, other.seen)
	}
}

func TestDispatcher_SubscribeAll(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	d.SubscribeAll(ListenerFunc(func(ev Event) { got = append(got, ev.Type) }))
	d.Dispatch(Event{Type: ShotFired})
	d.Dispatch(Event{Type: RunEnded})
	if len(got) != 2 || got[1] != RunEnded {
		t.Fatalf("catch-all got %v", got)
	}
}

func TestRun_EventsDeliveredAfterTick(t *testing.T) {
	ts := NewTestSim(
		WithEnemy(farEnemy(1)),
		WithBullet(&Bullet{Pos: V(100, 100), Radius: 4, Life: 1, Damage: 1}),
	)
	r := ts.Run
	var enemiesAtDelivery = -1
	var tickAtDelivery int
	r.Events.Subscribe(EnemyKilled, ListenerFunc(func(ev Event) {
		enemiesAtDelivery = len(r.Enemies)
		tickAtDelivery = ev.Tick
	}))

	r.Step(Intent{})

	if enemiesAtDelivery != 0 {
		t.Fatalf("listener saw %d enemies, want the purged population", enemiesAtDelivery)
	}
	if tickAtDelivery != 1 || r.Tick != 1 {
		t.Fatalf("event tick=%d run tick=%d, want 1/1", tickAtDelivery, r.Tick)
	}
}

func TestDispatcher_UnsubscribeFuncIsNoop(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	fn := ListenerFunc(func(Event) { calls++ })
	l := &countingListener{}
	d.Subscribe(PlayerHit, fn)
	d.Subscribe(PlayerHit, l)

	d.Unsubscribe(PlayerHit, fn)
	d.Unsubscribe(PlayerHit, nil)
	d.Dispatch(Event{Type: PlayerHit})
	if calls != 1 || len(l.seen) != 1 {
		t.Fatalf("calls=%d seen=%d, want both still subscribed", calls, len(l.seen))
	}

	d.Unsubscribe(PlayerHit, l)
	d.Dispatch(Event{Type: PlayerHit})
	if calls != 2 || len(l.seen) != 1 {
		t.Fatalf("calls=%d seen=%d after removing the pointer listener", calls, len(l.seen))
	}
}

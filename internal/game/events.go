package game

import "reflect"

// EventType names a simulation event.
type EventType string

const (
	ShotFired      EventType = "ShotFired"
	EnemyKilled    EventType = "EnemyKilled"
	BossSpawned    EventType = "BossSpawned"
	BossKilled     EventType = "BossKilled"
	LevelStarted   EventType = "LevelStarted"
	PlayerHit      EventType = "PlayerHit"
	PlayerDodged   EventType = "PlayerDodged"
	CoinsCollected EventType = "CoinsCollected" // persistence checkpoint
	PurchaseMade   EventType = "PurchaseMade"
	RunEnded       EventType = "RunEnded"
)

// Event is a notification raised by the Run. Value carries the count or amount
// that matters for the type (coins collected, new level, purchase cost).
type Event struct {
	Type   EventType
	Tick   int
	Pos    Vec2
	Value  int
	Detail string
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) OnEvent(ev Event) { f(ev) }

// Dispatcher fans events out to subscribers by type.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe registers l for one event type.
func (d *Dispatcher) Subscribe(t EventType, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// SubscribeAll registers l for every event type.
func (d *Dispatcher) SubscribeAll(l Listener) {
	d.all = append(d.all, l)
}

// Unsubscribe removes l from one event type. Listeners that cannot be
// compared, such as a ListenerFunc, cannot be identified and are left in place;
// use a pointer type for listeners that need removing.
func (d *Dispatcher) Unsubscribe(t EventType, l Listener) {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return
	}
	ls := d.listeners[t]
	for i, x := range ls {
		if x == l {
			d.listeners[t] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to its subscribers, then to the catch-all listeners.
func (d *Dispatcher) Dispatch(ev Event) {
	for _, l := range d.listeners[ev.Type] {
		l.OnEvent(ev)
	}
	for _, l := range d.all {
		l.OnEvent(ev)
	}
}

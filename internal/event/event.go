// Package event provides a synchronous publish/subscribe dispatcher for
// arena events. Dispatch runs listeners inline on the caller's goroutine.
package event

// Type identifies an event.
type Type string

const (
	EnemyKilled    Type = "enemy_killed"
	PickupConsumed Type = "pickup_consumed"
	LevelUp        Type = "level_up"
	AbilityChosen  Type = "ability_chosen"
	WaveSpawned    Type = "wave_spawned"
	GameOver       Type = "game_over"
)

// Event is a single notification. Data carries a type-specific payload.
type Event struct {
	Type Type
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribers in subscription order.
type Dispatcher struct {
	listeners map[Type][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe registers l for events of type t.
func (d *Dispatcher) Subscribe(t Type, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// SubscribeAll registers l for every known event type.
func (d *Dispatcher) SubscribeAll(l Listener) {
	for _, t := range []Type{EnemyKilled, PickupConsumed, LevelUp, AbilityChosen, WaveSpawned, GameOver} {
		d.Subscribe(t, l)
	}
}

// Dispatch delivers e to every listener subscribed to e.Type.
// A nil dispatcher drops the event.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}

// Payloads.

// Kill is the payload of EnemyKilled.
type Kill struct {
	Name     string
	XPReward int
	Total    int
}

// Pickup is the payload of PickupConsumed.
type Pickup struct {
	Experience int
}

// Offer is the payload of LevelUp.
type Offer struct {
	PlayerLevel int
	Candidates  int
}

// Choice is the payload of AbilityChosen.
type Choice struct {
	Title    string
	Level    int
	Upgraded bool
}

// Wave is the payload of WaveSpawned.
type Wave struct {
	Count      int
	RosterSize int
}

// Outcome is the payload of GameOver.
type Outcome struct {
	Result      string
	Kills       int
	PlayerLevel int
	Survived    float64 // seconds of game time
}

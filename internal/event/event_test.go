package event

import "testing"

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe(LevelUp, ListenerFunc(func(e Event) { got = append(got, "a") }))
	d.Subscribe(LevelUp, ListenerFunc(func(e Event) { got = append(got, "b") }))
	d.Subscribe(GameOver, ListenerFunc(func(e Event) { got = append(got, "over") }))

	d.Dispatch(Event{Type: LevelUp})

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Dispatch(LevelUp) called %v, want [a b]", got)
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	count := 0
	d.SubscribeAll(ListenerFunc(func(e Event) { count++ }))

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: WaveSpawned})
	d.Dispatch(Event{Type: Type("unknown")})

	if count != 2 {
		t.Errorf("listener called %d times, want 2", count)
	}
}

func TestNilDispatcherDrops(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameOver}) // must not panic
}

package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want Command
	}{
		{tcell.KeyEscape, 0, CommandQuit},
		{tcell.KeyCtrlC, 0, CommandQuit},
		{tcell.KeyRune, 'q', CommandQuit},
		{tcell.KeyRune, 'p', CommandPause},
		{tcell.KeyEnter, 0, CommandConfirm},
		{tcell.KeyRune, ' ', CommandConfirm},
		{tcell.KeyUp, 0, CommandUp},
		{tcell.KeyRune, 'w', CommandUp},
		{tcell.KeyRune, 'S', CommandDown},
		{tcell.KeyLeft, 0, CommandLeft},
		{tcell.KeyRune, 'd', CommandRight},
		{tcell.KeyRune, 'x', CommandNone},
		{tcell.KeyTab, 0, CommandNone},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
		if got := Translate(ev); got != tt.want {
			t.Errorf("Translate(%v %q) = %v, want %v", tt.key, tt.ch, got, tt.want)
		}
	}
}

func TestHeldExpires(t *testing.T) {
	s := NewState(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	s.Press(Up, t0)

	if !s.Held(Up, t0.Add(100*time.Millisecond)) {
		t.Error("Held() = false within the timeout")
	}
	if s.Held(Up, t0.Add(101*time.Millisecond)) {
		t.Error("Held() = true after the timeout")
	}
	if s.Held(Down, t0) {
		t.Error("Held(Down) = true without a press")
	}
}

func TestAxis(t *testing.T) {
	s := NewState(time.Second)
	t0 := time.Unix(1000, 0)

	s.Press(Up, t0)
	s.Press(Right, t0)
	if x, y := s.Axis(t0); x != 1 || y != 1 {
		t.Errorf("Axis() = (%v, %v), want (1, 1)", x, y)
	}

	s.Press(Left, t0)
	if x, y := s.Axis(t0); x != 0 || y != 1 {
		t.Errorf("Axis() with opposing keys = (%v, %v), want (0, 1)", x, y)
	}

	s.Clear()
	if x, y := s.Axis(t0); x != 0 || y != 0 {
		t.Errorf("Axis() after Clear = (%v, %v), want (0, 0)", x, y)
	}
}

func TestHandleKeyPresses(t *testing.T) {
	s := NewState(0)
	ev := tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)

	if got := s.HandleKey(ev); got != CommandDown {
		t.Fatalf("HandleKey() = %v, want CommandDown", got)
	}
	if !s.Held(Down, ev.When()) {
		t.Error("direction not held after HandleKey")
	}
}

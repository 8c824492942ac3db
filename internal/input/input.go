// Package input turns terminal key events into polled key state.
//
// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held until HoldTimeout passes without a repeat.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// HoldTimeout covers the gap before a terminal's first auto-repeat.
const HoldTimeout = 180 * time.Millisecond

// Direction is one of the four movement keys.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	numDirections
)

// Command is the meaning of a key event.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandConfirm
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
)

// State tracks which directions are held.
type State struct {
	hold time.Duration
	last [numDirections]time.Time
}

// NewState creates a key state with the given hold timeout.
func NewState(hold time.Duration) *State {
	if hold <= 0 {
		hold = HoldTimeout
	}
	return &State{hold: hold}
}

// Press records a press or auto-repeat of d at time at.
func (s *State) Press(d Direction, at time.Time) {
	if d >= 0 && d < numDirections {
		s.last[d] = at
	}
}

// Held reports whether d was pressed within the hold timeout before now.
func (s *State) Held(d Direction, now time.Time) bool {
	if d < 0 || d >= numDirections || s.last[d].IsZero() {
		return false
	}
	return now.Sub(s.last[d]) <= s.hold
}

// Axis returns the held input as X (right) and Y (forward), each in -1..1.
func (s *State) Axis(now time.Time) (x, y float32) {
	if s.Held(Right, now) {
		x++
	}
	if s.Held(Left, now) {
		x--
	}
	if s.Held(Up, now) {
		y++
	}
	if s.Held(Down, now) {
		y--
	}
	return x, y
}

// Clear releases every direction.
func (s *State) Clear() {
	s.last = [numDirections]time.Time{}
}

// HandleKey records movement keys and returns the command for ev.
func (s *State) HandleKey(ev *tcell.EventKey) Command {
	cmd := Translate(ev)
	switch cmd {
	case CommandUp:
		s.Press(Up, ev.When())
	case CommandDown:
		s.Press(Down, ev.When())
	case CommandLeft:
		s.Press(Left, ev.When())
	case CommandRight:
		s.Press(Right, ev.When())
	}
	return cmd
}

// Translate maps a key event to a command. Arrows and WASD move.
func Translate(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyEnter:
		return CommandConfirm
	case tcell.KeyUp:
		return CommandUp
	case tcell.KeyDown:
		return CommandDown
	case tcell.KeyLeft:
		return CommandLeft
	case tcell.KeyRight:
		return CommandRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return CommandQuit
		case 'p', 'P':
			return CommandPause
		case ' ':
			return CommandConfirm
		case 'w', 'W':
			return CommandUp
		case 's', 'S':
			return CommandDown
		case 'a', 'A':
			return CommandLeft
		case 'd', 'D':
			return CommandRight
		}
	}
	return CommandNone
}

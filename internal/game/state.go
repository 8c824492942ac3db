package game

// Menu is the cursor over the open level-up offer.
type Menu struct {
	Cursor int
}

// Move shifts the cursor by delta over n entries, wrapping at both ends.
func (m *Menu) Move(delta, n int) {
	if n <= 0 {
		m.Cursor = 0
		return
	}
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}

// Reset puts the cursor back on the first entry.
func (m *Menu) Reset() {
	m.Cursor = 0
}

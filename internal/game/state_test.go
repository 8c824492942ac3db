package game

import "testing"

func TestMenuMove(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		n     int
		want  int
	}{
		{"down", 0, 1, 15, 1},
		{"wraps past the end", 14, 1, 15, 0},
		{"wraps before the start", 0, -1, 15, 14},
		{"empty menu", 3, 1, 0, 0},
	}
	for _, tt := range tests {
		m := Menu{Cursor: tt.start}
		m.Move(tt.delta, tt.n)
		if m.Cursor != tt.want {
			t.Errorf("%s: Cursor = %d, want %d", tt.name, m.Cursor, tt.want)
		}
	}
}

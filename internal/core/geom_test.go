package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last column", 29, 12, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(11, 7, 9, 7)

	if r.Right() != 20 {
		t.Errorf("Right() = %d, expected 20", r.Right())
	}
	if r.Bottom() != 14 {
		t.Errorf("Bottom() = %d, expected 14", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 10 {
		t.Errorf("Center() = (%d, %d), expected (15, 10)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 1, 8, 5}, // within range
		{0, 1, 8, 1}, // below lo
		{9, 1, 8, 8}, // above hi
		{1, 1, 8, 1}, // at lo
		{8, 1, 8, 8}, // at hi
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{5, 5}, {-5, 5}, {0, 0}} {
		if got := Abs(tc.in); got != tc.want {
			t.Errorf("Abs(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%s should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionStart, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%s should not be a direction", a)
		}
	}
}

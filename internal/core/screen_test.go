package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(30, 22)

	if s.Width() != 30 || s.Height() != 22 {
		t.Fatalf("size = %dx%d, expected 30x22", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank default", x, y, c)
			}
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	// None of these may panic.
	s.Set(-1, 0, 'A')
	s.SetColor(100, 0, 'A', ColorRed)
	s.DrawTextColor(8, 9, "overflow", ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if c := s.GetCell(0, 100); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v", c)
	}
	if s.Get(8, 9) != 'o' || s.Get(9, 9) != 'v' {
		t.Errorf("clipped text: row 9 = %q", s.Row(9))
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColor(3, 2, '@', ColorSnakeHead)

	c := s.GetCell(3, 2)
	if c.Rune != '@' || c.Color != ColorSnakeHead {
		t.Errorf("GetCell(3, 2) = %+v, expected '@' in snake head color", c)
	}

	// Set resets the color.
	s.Set(3, 2, 'o')
	if c := s.GetCell(3, 2); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(1, 1, '#', ColorWall)
	s.Clear()

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear, cell = %+v", c)
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColor(2, 1, "★x2", ColorYellow)

	// Multi-byte runes take one cell each.
	want := []rune("★x2")
	for i, r := range want {
		c := s.GetCell(2+i, 1)
		if c.Rune != r || c.Color != ColorYellow {
			t.Errorf("cell %d = %+v, expected %q yellow", i, c, r)
		}
	}
	if s.Get(2+len(want), 1) != ' ' {
		t.Error("text should occupy exactly one cell per rune")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge broken at x=%d", x)
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColor(1, 1, '*', ColorOrange)
	s.SetColor(4, 4, '*', ColorOrange)
	s.Resize(3, 3)

	if c := s.GetCell(1, 1); c.Rune != '*' || c.Color != ColorOrange {
		t.Errorf("resize lost cell (1, 1): %+v", c)
	}
	if s.Width() != 3 || s.Height() != 3 {
		t.Errorf("size after resize = %dx%d", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cde")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "ab " || lines[1] != "cde" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightGreen, "10"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tt.c, got, tt.want)
		}
	}
}

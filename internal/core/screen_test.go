package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("new screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '@', ColorRed)
	if s.Get(3, 4) != '@' {
		t.Errorf("Get(3, 4) = %q, expected '@'", s.Get(3, 4))
	}
	if s.ColorAt(3, 4) != ColorRed {
		t.Errorf("ColorAt(3, 4) = %v, expected ColorRed", s.ColorAt(3, 4))
	}
	if s.ColorAt(0, 0) != ColorDefault {
		t.Error("untouched cell should carry the default color")
	}
	if s.ColorAt(-1, 0) != ColorDefault {
		t.Error("out of bounds ColorAt should return the default color")
	}

	s.Clear()
	if s.ColorAt(3, 4) != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("after Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "HELLO")
	if got := strings.TrimRight(s.Row(1), " "); got != "  HELLO" {
		t.Errorf("Row(1) = %q, expected %q", got, "  HELLO")
	}

	// Clipped at the right edge without panicking.
	s.DrawText(17, 2, "WORLD")
	if got := s.Row(2)[17:]; got != "WOR" {
		t.Errorf("clipped text = %q, expected %q", got, "WOR")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "ABC")

	if s.Get(4, 1) != 'A' || s.Get(5, 1) != 'B' || s.Get(6, 1) != 'C' {
		t.Errorf("centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawRect(NewRect(2, 2, 3, 2), '#')
	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect missed (%d, %d)", x, y)
			}
		}
	}
	if s.Get(5, 2) == '#' || s.Get(2, 4) == '#' {
		t.Error("DrawRect painted outside its bounds")
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 5, 4))
	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox edges are wrong")
	}
	if s.Get(2, 2) != ' ' {
		t.Error("DrawBox should leave the interior empty")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 3, 'X', ColorGreen)
	s.Set(9, 9, 'Y')

	s.Resize(5, 5)
	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("size after Resize = %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(3, 3) != 'X' || s.ColorAt(3, 3) != ColorGreen {
		t.Error("Resize should preserve surviving cells with their colors")
	}

	s.Resize(12, 12)
	if s.Get(3, 3) != 'X' {
		t.Error("growing Resize should keep existing content")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("cells dropped by a shrink should not reappear on growth")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "AB")
	s.Set(2, 1, 'C')

	want := "AB \n  C"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "WXYZ")

	if got := s.Row(0); got != "WXYZ" {
		t.Errorf("Row(0) = %q, expected %q", got, "WXYZ")
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected blank row", got)
	}
}

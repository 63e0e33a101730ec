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
			if s.Get(x, y).Rune != ' ' {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	cell := s.Get(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("Get(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return a blank cell")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Héllo", ColorCyan)

	if got := s.Row(1)[2:]; !strings.HasPrefix(got, "Héllo") {
		t.Errorf("DrawText row = %q", got)
	}
	if s.Get(3, 1).Rune != 'é' {
		t.Errorf("multi-byte runes should occupy one cell each, got %q", s.Get(3, 1).Rune)
	}

	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0).Rune != 'H' || s.Get(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2).Rune != 'H' || s.Get(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y).Rune; got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if s.Get(3, 1).Rune != '─' || s.Get(1, 2).Rune != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenFillRectAndClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', ColorGray)

	if s.Get(4, 4).Rune != '#' {
		t.Error("FillRect should fill inside area")
	}
	if s.Get(5, 5).Rune != ' ' {
		t.Error("FillRect should not affect outside area")
	}

	s.Clear()
	if s.Get(3, 3).Rune != ' ' {
		t.Error("Clear should blank the screen")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "        " {
		t.Errorf("Resize should start from a blank buffer, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != "        " {
		t.Error("Out of bounds row should be spaces")
	}
}

func TestScreenFaint(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, 'o', ColorRed)
	s.SetFaint(1, 1, true)
	s.SetFaint(9, 9, true) // ignored

	if c := s.Get(1, 1); !c.Faint || c.Rune != 'o' || c.Color != ColorRed {
		t.Errorf("cell = %+v, expected faint red 'o'", c)
	}
	s.Set(1, 1, 'x', ColorRed)
	if s.Get(1, 1).Faint {
		t.Error("Set should draw at full strength")
	}
	s.SetFaint(2, 0, true)
	s.Clear()
	if s.Get(2, 0).Faint {
		t.Error("Clear should reset the tone")
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("String() = %q", got)
	}
	for _, size := range [][2]int{{-1, 5}, {0, 3}, {7, 0}} {
		if got := NewScreen(size[0], size[1]).String(); got != "" {
			t.Errorf("NewScreen(%d, %d).String() = %q, want empty", size[0], size[1], got)
		}
	}
}

func TestScreenSetAndClip(t *testing.T) {
	s := NewScreen(5, 2)
	s.SetColored(1, 1, '@', ColorRed)
	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(5, 0, 'x', ColorRed)
	s.SetColored(0, 2, 'x', ColorRed)

	if c := s.GetCell(1, 1); c.Rune != '@' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v", c)
	}
	if c := s.GetCell(9, 9); c != blankCell {
		t.Errorf("out of bounds cell = %+v, want blank", c)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds writes must be dropped")
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(7, 0, "Lives", ColorBrightWhite)
	s.DrawTextCentered(2, "Ab", ColorYellow)

	rows := strings.Split(s.String(), "\n")
	if rows[0] != "       Liv" {
		t.Errorf("clipped row = %q", rows[0])
	}
	if rows[2] != "    Ab    " {
		t.Errorf("centered row = %q", rows[2])
	}
	if s.GetCell(4, 2).Color != ColorYellow {
		t.Error("centered text lost its color")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(4, 2, 5, 5), '#', ColorGreen)

	want := "      \n      \n    ##\n    ##"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBoxColored(NewRect(0, 0, 4, 3), ColorGreen)

	want := "┌──┐ \n│  │ \n└──┘ \n     "
	if got := s.String(); got != want {
		t.Errorf("box =\n%s\nwant\n%s", got, want)
	}

	s.Clear()
	s.DrawBoxColored(Rect{}, ColorGreen)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("empty rect should draw nothing")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(8, 4)
	s.SetColored(0, 0, 'x', ColorRed)

	s.Resize(3, 2)
	if s.String() != "   \n   " {
		t.Errorf("after shrink = %q", s.String())
	}
	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 || strings.TrimSpace(s.String()) != "" {
		t.Errorf("after grow = %q", s.String())
	}
}

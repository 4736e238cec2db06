package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 6)
	for y := range 3 {
		if row := s.Row(y); row != want {
			t.Errorf("Row(%d) = %q, want blank", y, row)
		}
	}
}

func TestScreenSetClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 2}} {
		s.Set(p[0], p[1], '#')
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Errorf("out-of-bounds writes leaked into the buffer:\n%s", s.String())
	}
	if got := s.Get(10, 10); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 2)

	s.SetColor(3, 1, '@', ColorYellow)
	if cell := s.GetCell(3, 1); cell.Rune != '@' || cell.Color != ColorYellow {
		t.Errorf("GetCell = %+v, want '@' in yellow", cell)
	}

	s.Set(3, 1, 'x')
	if s.GetCell(3, 1).Color != ColorDefault {
		t.Error("Set should reset the cell color")
	}

	s.DrawTextColor(0, 0, "ab", ColorRed)
	if s.GetCell(0, 0).Color != ColorRed || s.GetCell(1, 0).Color != ColorRed {
		t.Error("DrawTextColor should color every rune")
	}

	s.Clear()
	if s.GetCell(0, 0) != (Cell{Rune: ' '}) {
		t.Errorf("Clear left %+v", s.GetCell(0, 0))
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "abc") }, " abc    "},
		{"clipped", func(s *Screen) { s.DrawText(6, 0, "abc") }, "      ab"},
		{"negative start", func(s *Screen) { s.DrawText(-1, 0, "abc") }, "bc      "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "ab") }, "   ab   "},
		{"centered multibyte", func(s *Screen) { s.DrawTextCentered(0, "··") }, "   ··   "},
		{"hline", func(s *Screen) { s.DrawHLine(2, 0, 3, '─') }, "  ───   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			tt.draw(s)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenBoxOverRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 1, "xxxxxx")

	box := NewRect(1, 0, 4, 4)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	want := strings.Join([]string{
		" ┌──┐ ",
		"x│  │x",
		" │  │ ",
		" └──┘ ",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)

	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("String() = %q", got)
	}
}

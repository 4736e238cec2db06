package pacman

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

func TestParseClassicMaze(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	m, err := ParseMaze(cfg.Maze, cfg.Board.TileSize, cfg.Board.FoodSize)
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}

	if m.Cols != 19 || m.Rows != 21 {
		t.Errorf("size = %dx%d, want 19x21", m.Cols, m.Rows)
	}
	if len(m.Ghosts) != 4 {
		t.Errorf("ghosts = %d, want 4", len(m.Ghosts))
	}
	if m.Lethal == nil || m.Lethal.Col != 13 || m.Lethal.Row != 9 {
		t.Errorf("lethal = %+v, want col 13 row 9", m.Lethal)
	}
	if m.Player.Col != 9 || m.Player.Row != 15 {
		t.Errorf("player = %+v, want col 9 row 15", m.Player)
	}

	walls, skips := 0, 0
	for _, line := range cfg.Maze.Layout {
		walls += strings.Count(line, "X")
		skips += strings.Count(line, "O")
	}
	if len(m.Walls) != walls {
		t.Errorf("walls = %d, want %d", len(m.Walls), walls)
	}
	// Everything that is not a wall, skip cell, ghost, lethal ghost or player is food.
	wantFood := m.Cols*m.Rows - walls - skips - 4 - 1 - 1
	if len(m.Food) != wantFood {
		t.Errorf("food = %d, want %d", len(m.Food), wantFood)
	}

	names := map[string]bool{}
	for _, g := range m.Ghosts {
		names[g.Name] = true
	}
	for _, want := range []string{"blue", "orange", "pink", "red"} {
		if !names[want] {
			t.Errorf("missing ghost %q", want)
		}
	}
}

func TestParseMazeErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		want   error
	}{
		{"empty", nil, ErrEmptyMaze},
		{"too small", []string{"XP", "XX"}, ErrMazeTooSmall},
		{"ragged", []string{"XXXX", "XP X", "XXX"}, ErrRaggedMaze},
		{"no player", []string{"XXX", "X X", "XXX"}, ErrNoPlayer},
		{"two players", []string{"XXXX", "XPPX", "XXXX"}, ErrMultiplePlayers},
		{"two lethal", []string{"XXXXX", "XPggX", "XXXXX"}, ErrMultipleLethal},
		{"no food", []string{"XXXXX", "XPOOX", "XXXXX"}, ErrNoFood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMaze(config.MazeConfig{Layout: tt.layout}, 32, 4)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseMazeUnknownCharIsFood(t *testing.T) {
	m, err := ParseMaze(config.MazeConfig{Layout: []string{
		"XXXXX",
		"XP#.X",
		"XXXXX",
	}}, 32, 4)
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}
	if len(m.Food) != 2 {
		t.Errorf("food = %d, want 2", len(m.Food))
	}
}

func TestMazeGeometry(t *testing.T) {
	m, err := ParseMaze(config.MazeConfig{Layout: []string{
		"XXXXX",
		"XP  X",
		"XXXXX",
	}}, 32, 4)
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}

	if m.Width() != 160 || m.Height() != 96 {
		t.Errorf("pixels = %dx%d, want 160x96", m.Width(), m.Height())
	}

	tile := m.TileRect(2, 1)
	if tile.X != 64 || tile.Y != 32 || tile.W != 32 || tile.H != 32 {
		t.Errorf("TileRect(2,1) = %+v", tile)
	}

	food := m.FoodRect(2, 1)
	if food.X != 78 || food.Y != 46 || food.W != 4 || food.H != 4 {
		t.Errorf("FoodRect(2,1) = %+v, want inset 14", food)
	}
	if col, row := m.TileOf(food); col != 2 || row != 1 {
		t.Errorf("TileOf(food) = %d,%d, want 2,1", col, row)
	}
}

func TestPopulateIsFresh(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	m, err := ParseMaze(cfg.Maze, cfg.Board.TileSize, cfg.Board.FoodSize)
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}

	a := m.Populate()
	a.Player.X += 100
	a.Food = a.Food[:0]

	b := m.Populate()
	if b.Player.X != m.Player.Col*m.TileSize {
		t.Errorf("player moved between populations: x=%d", b.Player.X)
	}
	if len(b.Food) != len(m.Food) {
		t.Errorf("food = %d, want %d", len(b.Food), len(m.Food))
	}
	if b.Player.Moving() {
		t.Error("player should start stationary")
	}
	if b.Lethal == nil || !b.Lethal.IsLethal() {
		t.Error("lethal ghost missing")
	}
}

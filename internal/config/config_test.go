package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parsePacman(GetDefaultYAML("pacman"))
	if err != nil {
		t.Fatalf("parsePacman(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultPacmanConfig()) {
		t.Errorf("embedded defaults differ from DefaultPacmanConfig():\n%+v\n%+v", cfg, DefaultPacmanConfig())
	}
}

func TestDefaultTiming(t *testing.T) {
	cfg := DefaultPacmanConfig()

	if cfg.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 50ms", cfg.TickInterval())
	}
	if cfg.FruitInterval() != 10*time.Second {
		t.Errorf("FruitInterval() = %v, expected 10s", cfg.FruitInterval())
	}
	if cfg.TickRate() != 20 {
		t.Errorf("TickRate() = %d, expected 20", cfg.TickRate())
	}
}

func TestLoadPacmanCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacman.yaml")
	data := "gameplay:\n  lives: 7\n  chase_one_in: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.ChaseOneIn != 2 {
		t.Errorf("ChaseOneIn = %d, expected 2", cfg.Gameplay.ChaseOneIn)
	}
	// Untouched fields keep defaults
	if cfg.Board.TileSize != 32 {
		t.Errorf("TileSize = %d, expected default 32", cfg.Board.TileSize)
	}
	if len(cfg.Maze.Layout) != len(ClassicLayout) {
		t.Errorf("Layout rows = %d, expected %d", len(cfg.Maze.Layout), len(ClassicLayout))
	}
}

func TestLoadPacmanErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPacman(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPacman(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  tile_size: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPacman(invalid)
	if err == nil || !strings.Contains(err.Error(), "tile_size") {
		t.Errorf("expected tile_size validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PacmanConfig)
		field  string
	}{
		{"zero tick", func(c *PacmanConfig) { c.Timing.TickMS = 0 }, "tick_ms"},
		{"zero fruit interval", func(c *PacmanConfig) { c.Timing.FruitIntervalMS = 0 }, "fruit_interval_ms"},
		{"food larger than tile", func(c *PacmanConfig) { c.Board.FoodSize = 64 }, "food_size"},
		{"no lives", func(c *PacmanConfig) { c.Gameplay.Lives = 0 }, "lives"},
		{"chase zero", func(c *PacmanConfig) { c.Gameplay.ChaseOneIn = 0 }, "chase_one_in"},
		{"negative retry", func(c *PacmanConfig) { c.Gameplay.SpawnRetryLimit = -1 }, "spawn_retry_limit"},
		{"empty maze", func(c *PacmanConfig) { c.Maze.Layout = nil }, "maze.layout"},
	}

	if err := DefaultPacmanConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestLoadMaze(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	data := `layout:
  - "XXXXX"
  - "XP gX"
  - "XXXXX"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	maze, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if maze.Name != "tiny.yaml" {
		t.Errorf("Name = %q, expected file name fallback", maze.Name)
	}
	if maze.TunnelRow != -1 {
		t.Errorf("TunnelRow = %d, expected -1 when unset", maze.TunnelRow)
	}
	if len(maze.Layout) != 3 {
		t.Errorf("Layout rows = %d, expected 3", len(maze.Layout))
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("name: nothing\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMaze(empty); err == nil {
		t.Error("expected error for maze without layout")
	}
}

func TestApplyPacmanPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		chase     int
		milestone int
	}{
		{DifficultyEasy, 5, 8, 100},
		{DifficultyNormal, 3, 4, 100},
		{DifficultyHard, 2, 2, 100},
		{DifficultyFixed, 3, 4, 0},
		{"", 3, 4, 100},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			ApplyPacmanPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Gameplay.ChaseOneIn != tc.chase {
				t.Errorf("ChaseOneIn = %d, expected %d", cfg.Gameplay.ChaseOneIn, tc.chase)
			}
			if cfg.Gameplay.SpeedMilestone != tc.milestone {
				t.Errorf("SpeedMilestone = %d, expected %d", cfg.Gameplay.SpeedMilestone, tc.milestone)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	if ParseDifficultyPreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParseDifficultyPreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
	if ParseDifficultyPreset("fixed") != DifficultyFixed {
		t.Error("fixed should parse")
	}
}

package main

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

func TestWriteConfig(t *testing.T) {
	for _, defaults := range []bool{true, false} {
		var out bytes.Buffer
		if err := writeConfig(&out, defaults); err != nil {
			t.Fatalf("defaults=%v: writeConfig: %v", defaults, err)
		}

		var cfg config.PacmanConfig
		if err := yaml.Unmarshal(out.Bytes(), &cfg); err != nil {
			t.Fatalf("defaults=%v: output is not valid YAML: %v", defaults, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("defaults=%v: printed config does not validate: %v", defaults, err)
		}
		if _, err := pacman.ParseMaze(cfg.Maze, cfg.Board.TileSize, cfg.Board.FoodSize); err != nil {
			t.Errorf("defaults=%v: printed maze does not parse: %v", defaults, err)
		}
	}
}

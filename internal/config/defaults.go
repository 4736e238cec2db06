package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// ClassicLayout is the built-in 19x21 maze.
var ClassicLayout = []string{
	"XXXXXXXXXXXXXXXXXXX",
	"X        X        X",
	"X XX XXX X XXX XX X",
	"X                 X",
	"X XX X XXXXX X XX X",
	"X    X       X    X",
	"XXXX XXXX XXXX XXXX",
	"OOOX X       X XOOO",
	"XXXX X XXrXX X XXXX",
	"O       bpo  g    O",
	"XXXX X XXXXX X XXXX",
	"OOOX X       X XOOO",
	"XXXX X XXXXX X XXXX",
	"X        X        X",
	"X XX XXX X XXX XX X",
	"X  X     P     X  X",
	"XX X X XXXXX X X XX",
	"X    X   X   X    X",
	"X XXXXXX X XXXXXX X",
	"X                 X",
	"XXXXXXXXXXXXXXXXXXX",
}

// DefaultPacmanConfig returns the default maze chase configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Board: PacmanBoard{
			TileSize: 32,
			FoodSize: 4,
		},
		Timing: PacmanTiming{
			TickMS:          50,    // 20 Hz
			FruitIntervalMS: 10000, // 10 s
		},
		Gameplay: PacmanGameplay{
			Lives:           3,
			FoodPoints:      10,
			FruitPoints:     10,
			SpeedMilestone:  100,
			ChaseOneIn:      4,
			SpawnRetryLimit: 0,
		},
		Maze: MazeConfig{
			Name:      "classic",
			TunnelRow: 9,
			Layout:    append([]string(nil), ClassicLayout...),
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the maze chase game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PacmanConfig contains all configuration for the maze chase game.
type PacmanConfig struct {
	Board    PacmanBoard    `yaml:"board"`
	Timing   PacmanTiming   `yaml:"timing"`
	Gameplay PacmanGameplay `yaml:"gameplay"`
	Maze     MazeConfig     `yaml:"maze"`
}

// PacmanBoard defines the pixel geometry of the board.
type PacmanBoard struct {
	TileSize int `yaml:"tile_size"` // Edge of a square tile in pixels
	FoodSize int `yaml:"food_size"` // Edge of a food pellet, centered in its tile
}

// PacmanTiming defines the periods of the two game tasks.
type PacmanTiming struct {
	TickMS          int `yaml:"tick_ms"`           // Main simulation tick
	FruitIntervalMS int `yaml:"fruit_interval_ms"` // Fruit spawner period
}

// PacmanGameplay defines scoring, lives and adversary tuning.
type PacmanGameplay struct {
	Lives           int `yaml:"lives"`
	FoodPoints      int `yaml:"food_points"`
	FruitPoints     int `yaml:"fruit_points"`      // Multiplied by the fruit type ordinal (1..3)
	SpeedMilestone  int `yaml:"speed_milestone"`   // Score gain per speed level; 0 disables
	ChaseOneIn      int `yaml:"chase_one_in"`      // Lethal ghost re-aims with probability 1/N per tick
	SpawnRetryLimit int `yaml:"spawn_retry_limit"` // Random fruit placement attempts; 0 = unbounded
}

// MazeConfig describes a maze layout. It is also the schema of maze files.
type MazeConfig struct {
	Name      string   `yaml:"name"`
	TunnelRow int      `yaml:"tunnel_row"` // Row where ghosts are forced upward; -1 disables
	Layout    []string `yaml:"layout"`
}

// TickInterval returns the main tick period.
func (c PacmanConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// FruitInterval returns the fruit spawner period.
func (c PacmanConfig) FruitInterval() time.Duration {
	return time.Duration(c.Timing.FruitIntervalMS) * time.Millisecond
}

// TickRate returns the number of main ticks per second.
func (c PacmanConfig) TickRate() int {
	if c.Timing.TickMS <= 0 {
		return 0
	}
	return max(1, 1000/c.Timing.TickMS)
}

// Validate checks the values a game cannot run without.
func (c PacmanConfig) Validate() error {
	var errs []error
	if c.Board.TileSize < 4 {
		errs = append(errs, fmt.Errorf("board.tile_size must be at least 4, got %d", c.Board.TileSize))
	}
	if c.Board.FoodSize <= 0 || c.Board.FoodSize > c.Board.TileSize {
		errs = append(errs, fmt.Errorf("board.food_size must be in 1..tile_size, got %d", c.Board.FoodSize))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.FruitIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fruit_interval_ms must be positive, got %d", c.Timing.FruitIntervalMS))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.ChaseOneIn < 1 {
		errs = append(errs, fmt.Errorf("gameplay.chase_one_in must be at least 1, got %d", c.Gameplay.ChaseOneIn))
	}
	if c.Gameplay.SpeedMilestone < 0 {
		errs = append(errs, fmt.Errorf("gameplay.speed_milestone must not be negative, got %d", c.Gameplay.SpeedMilestone))
	}
	if c.Gameplay.SpawnRetryLimit < 0 {
		errs = append(errs, fmt.Errorf("gameplay.spawn_retry_limit must not be negative, got %d", c.Gameplay.SpawnRetryLimit))
	}
	if len(c.Maze.Layout) == 0 {
		errs = append(errs, errors.New("maze.layout is empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. Unknown values map to "".
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

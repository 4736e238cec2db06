// Package pacman implements a tile-based maze chase: a player collects
// pellets and bonus fruit while ghosts wander the maze and a lethal ghost
// hunts the player.
//
// The simulation is driven one tick at a time through Step. The fruit
// spawner runs on its own fixed period, read from the injected clock and
// polled inside Step, so both tasks share a single timeline.
package pacman

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// GameID is the registry identifier.
const GameID = "pacman"

var (
	configPath       string
	mazePath         string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetMazePath sets a maze file that replaces the configured maze.
func SetMazePath(path string) {
	mazePath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// LoadConfig resolves the configuration from the package settings:
// config search order, then the maze file override, then the preset.
func LoadConfig() (config.PacmanConfig, error) {
	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		return config.PacmanConfig{}, err
	}
	if mazePath != "" {
		mc, err := config.LoadMaze(mazePath)
		if err != nil {
			return config.PacmanConfig{}, err
		}
		cfg.Maze = mc
	}
	if difficultyPreset != "" {
		config.ApplyPacmanPreset(&cfg, difficultyPreset)
	}
	if _, err := ParseMaze(cfg.Maze, cfg.Board.TileSize, cfg.Board.FoodSize); err != nil {
		return config.PacmanConfig{}, fmt.Errorf("pacman: maze %q: %w", cfg.Maze.Name, err)
	}
	return cfg, nil
}

// Game is the maze chase simulation. It is not safe for concurrent use;
// the platform serializes every call.
type Game struct {
	cfg      config.PacmanConfig
	fixedCfg bool // Set by NewWithConfig; Reset skips loading
	maze     *Maze
	rng      *rand.Rand
	clock    core.Clock
	logger   *log.Logger

	fruitTimer periodicTask

	walls  []Entity // Shared with maze, never mutated
	food   []Entity
	ghosts []Entity
	lethal *Entity
	player *Entity
	fruit  *Entity

	tick          uint64
	score         int
	lives         int
	speedLevel    int
	lastMilestone int
	mazesCleared  int
	roundTicks    int // Unpaused ticks played this round
	paused        bool
	gameOver      bool

	screenW int
	screenH int
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// NewWithConfig creates a game bound to cfg. Package-level settings are ignored.
func NewWithConfig(cfg config.PacmanConfig) *Game {
	g := New()
	g.cfg = cfg
	g.fixedCfg = true
	return g
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// SetLogger routes gameplay events to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Pac-Man" }

// Config returns the active configuration.
func (g *Game) Config() config.PacmanConfig { return g.cfg }

// Reset starts a new session: fresh RNG and clock from runtime, a fresh
// maze, full lives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := LoadConfig()
		if err != nil {
			g.logger.Warn("config load failed, using defaults", "error", err)
			cfg = config.DefaultPacmanConfig()
		}
		g.cfg = cfg
	}
	if err := g.cfg.Validate(); err != nil {
		g.logger.Warn("invalid config, using defaults", "error", err)
		g.cfg = config.DefaultPacmanConfig()
	}

	maze, err := ParseMaze(g.cfg.Maze, g.cfg.Board.TileSize, g.cfg.Board.FoodSize)
	if err != nil {
		g.logger.Warn("maze rejected, using classic", "maze", g.cfg.Maze.Name, "error", err)
		def := config.DefaultPacmanConfig()
		g.cfg.Maze = def.Maze
		maze, err = ParseMaze(g.cfg.Maze, g.cfg.Board.TileSize, g.cfg.Board.FoodSize)
		if err != nil {
			panic(fmt.Sprintf("pacman: classic maze: %v", err))
		}
	}
	g.maze = maze
	g.walls = maze.Walls

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = runtime.ClockOrSystem()
	g.fruitTimer = periodicTask{interval: g.cfg.FruitInterval()}
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.tick = 0

	g.startSession()
}

// startSession resets the per-round state and brings a fresh maze in.
func (g *Game) startSession() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.speedLevel = 0
	g.lastMilestone = 0
	g.mazesCleared = 0
	g.roundTicks = 0
	g.paused = false
	g.gameOver = false

	g.loadMaze()
	g.resetPositions()
	g.fruitTimer.start(g.clock.Now())
}

// loadMaze rebuilds pellets and mobile entities from the layout and
// clears any fruit.
func (g *Game) loadMaze() {
	pop := g.maze.Populate()
	g.food = pop.Food
	g.ghosts = pop.Ghosts
	g.lethal = pop.Lethal
	g.player = &pop.Player
	g.fruit = nil

	g.logger.Debug("maze loaded", "maze", g.maze.Name, "food", len(g.food), "ghosts", len(g.ghosts))
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	g.handleCommands(input)
	if !g.paused && !g.gameOver {
		g.update()
	}
	if g.fruitTimer.due(g.clock.Now()) {
		g.spawnFruit()
	}

	return core.StepResult{State: g.State()}
}

// handleCommands applies the abstract input commands. Commands that make
// no sense in the current phase are ignored.
func (g *Game) handleCommands(input core.InputFrame) {
	if input.Empty() {
		return
	}
	if g.gameOver {
		if input.Has(core.ActionRestart) {
			g.restart()
		}
		return
	}

	switch {
	case input.Has(core.ActionPause):
		g.setPaused(!g.paused)
	case input.Has(core.ActionResume) && g.paused:
		g.setPaused(false)
	}

	if g.paused {
		return
	}
	if dir, ok := requestedDirection(input); ok {
		g.turn(g.player, dir)
	}
}

// requestedDirection returns the first direction present in input.
func requestedDirection(input core.InputFrame) (Direction, bool) {
	switch {
	case input.Has(core.ActionUp):
		return DirUp, true
	case input.Has(core.ActionDown):
		return DirDown, true
	case input.Has(core.ActionLeft):
		return DirLeft, true
	case input.Has(core.ActionRight):
		return DirRight, true
	default:
		return 0, false
	}
}

// setPaused enters or leaves the paused phase. Leaving restarts the fruit
// interval from zero.
func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		g.fruitTimer.stop()
		g.logger.Info("paused", "tick", g.tick)
		return
	}
	g.fruitTimer.start(g.clock.Now())
	g.logger.Info("resumed", "tick", g.tick)
}

// restart begins a new round after game over. The RNG keeps its sequence.
func (g *Game) restart() {
	g.logger.Info("restart", "previous_score", g.score)
	g.startSession()
}

// update runs the gameplay pipeline for one unpaused tick.
func (g *Game) update() {
	g.roundTicks++
	g.advance(g.player)
	g.moveAdversaries()

	if g.resolveContacts() {
		return
	}

	g.consumeFruit()
	g.consumeFood()

	if len(g.food) == 0 {
		g.mazesCleared++
		g.logger.Info("maze cleared", "maze", g.maze.Name, "cleared", g.mazesCleared, "score", g.score)
		g.loadMaze()
		g.resetPositions()
	}

	g.checkInvariants()
}

// resolveContacts handles player contact with ghosts. The lethal ghost
// ends the game outright; every ordinary ghost touching the player costs
// one life. It reports whether the game ended.
func (g *Game) resolveContacts() bool {
	if g.lethal != nil && g.lethal.Intersects(g.player.Rect) {
		g.lives = 0
		g.endGame("lethal ghost")
		return true
	}

	hits := 0
	for i := range g.ghosts {
		if g.ghosts[i].Intersects(g.player.Rect) {
			hits++
		}
	}
	if hits == 0 {
		return false
	}

	g.lives = max(0, g.lives-hits)
	if g.lives == 0 {
		g.endGame("ghost")
		return true
	}

	g.logger.Info("life lost", "lives", g.lives, "ghosts", hits)
	g.resetPositions()
	return false
}

// endGame moves to the game over phase and stops the fruit spawner.
func (g *Game) endGame(cause string) {
	g.gameOver = true
	g.fruitTimer.stop()
	g.logger.Info("game over", "cause", cause, "score", g.score, "speed", g.speedLevel, "tick", g.tick)
}

// checkInvariants panics on states the simulation never produces.
func (g *Game) checkInvariants() {
	if g.player == nil {
		panic("pacman: no player while playing")
	}
	if g.lives <= 0 {
		panic(fmt.Sprintf("pacman: playing with %d lives", g.lives))
	}

	s := g.speed()
	for _, e := range g.mobiles() {
		if !e.Mobile() {
			panic(fmt.Sprintf("pacman: %s in a mobile slot", e.Kind))
		}
		if g.blocked(e.Rect) {
			panic(fmt.Sprintf("pacman: %s at %d,%d overlaps a wall or the board edge", e.Kind, e.X, e.Y))
		}
		if v := core.Abs(e.VX) + core.Abs(e.VY); (e.VX != 0 && e.VY != 0) || (v != 0 && v != s) {
			panic(fmt.Sprintf("pacman: %s velocity (%d,%d) at speed %d", e.Kind, e.VX, e.VY, s))
		}
	}
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// MazeName returns the name of the loaded maze.
func (g *Game) MazeName() string {
	if g.maze == nil {
		return g.cfg.Maze.Name
	}
	return g.maze.Name
}

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// SpeedLevel returns the current speed level.
func (g *Game) SpeedLevel() int { return g.speedLevel }

// MazesCleared returns how many times the maze was emptied this round.
func (g *Game) MazesCleared() int { return g.mazesCleared }

// Tick returns the number of steps since Reset.
func (g *Game) Tick() uint64 { return g.tick }

// RoundTicks returns the unpaused ticks played since the round started.
func (g *Game) RoundTicks() int { return g.roundTicks }

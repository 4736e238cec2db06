// Package registry keeps the set of playable simulations.
// Simulations register a factory from init(), so the terminal frontend and
// the CLI can look them up by ID without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Game is a fixed-tick simulation driven by the platform.
// It holds pure logic: the platform owns input mapping, the tick source
// and the terminal.
type Game interface {
	// ID returns a unique identifier used on the command line (e.g. "pacman").
	ID() string

	// Title returns the display name.
	Title() string

	// Reset builds a fresh session from cfg (screen size, seed, clock).
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. dst is cleared beforehand.
	Render(dst *core.Screen)

	// State returns score and lifecycle flags.
	State() core.GameState
}

// LoggerSetter is implemented by games that emit structured events.
type LoggerSetter interface {
	SetLogger(l *log.Logger)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet reset, game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the game registered under id.
// If logger is non-nil and the game accepts one, it is attached.
func Create(id string, logger *log.Logger) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g := f()
	if ls, ok := g.(LoggerSetter); ok && logger != nil {
		ls.SetLogger(logger)
	}
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

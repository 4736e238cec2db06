package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// RoundReporter is implemented by games that report per-round statistics
// for the round history.
type RoundReporter interface {
	MazeName() string
	SpeedLevel() int
	MazesCleared() int
	RoundTicks() int
}

// Options tunes the terminal loop.
type Options struct {
	TickInterval time.Duration // Zero derives it from RuntimeConfig.TickRate
	Logger       *log.Logger   // Nil discards
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	interval    time.Duration
	keys        KeyMap
	help        help.Model
	history     historyView
	showHistory bool
	inputFrame  core.InputFrame
	gameState   core.GameState
	ticking     bool // False after game over until restart
	roundSaved  bool // Whether the current game over was recorded
	quitting    bool
}

// NewModel creates a model for game. store may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second / time.Duration(max(1, cfg.TickRate))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)), // Last row is the help bar
		store:      store,
		logger:     logger,
		config:     cfg,
		interval:   interval,
		keys:       DefaultKeyMap(),
		help:       h,
		history:    newHistoryView(cfg.ScreenW, cfg.ScreenH),
		inputFrame: core.NewInputFrame(),
		ticking:    true,
	}
}

// Init resets the game and starts the tick task.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick", m.interval)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.history.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick. Restart is applied at
// once because no tick is scheduled after game over.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.History) {
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.loadHistory()
		}
		return m, nil
	}

	if m.showHistory {
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, m.keys.Order):
			m.history.byScore = !m.history.byScore
			m.loadHistory()
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.history.table, cmd = m.history.table.Update(msg)
			return m, cmd
		}
	}

	action, isQuit := m.keys.Action(msg, m.gameState)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionRestart && !m.ticking {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRestart)
		m.gameState = m.game.Step(frame).State
		m.inputFrame.Clear()
		m.roundSaved = false
		m.showHistory = false
		m.ticking = true
		m.logger.Info("round restarted", "game", m.game.ID())
		return m, tickCmd(m.interval)
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next one unless
// the game is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.recordRound()
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(m.interval)
}

// recordRound saves the finished round once.
func (m *Model) recordRound() {
	if m.roundSaved || m.store == nil {
		m.roundSaved = true
		return
	}
	m.roundSaved = true

	r := storage.Round{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if rr, ok := m.game.(RoundReporter); ok {
		r.Maze = rr.MazeName()
		r.SpeedLevel = rr.SpeedLevel()
		r.MazesCleared = rr.MazesCleared()
		r.Ticks = rr.RoundTicks()
	}

	id, err := m.store.SaveRound(r)
	if err != nil {
		m.logger.Error("cannot save round", "error", err)
		return
	}
	m.logger.Info("round saved", "id", id, "score", r.Score, "speed", r.SpeedLevel)
	m.loadHistory()
}

// loadHistory refreshes the round table from the store.
func (m *Model) loadHistory() {
	if err := m.history.load(m.store, m.game.ID()); err != nil {
		m.logger.Error("cannot load rounds", "error", err)
	}
}

// View renders the game or the round history, with a help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if m.showHistory {
		return m.history.View(m.game.Title()+" - Rounds") + "\n\n" + helpStyle.Render(m.help.View(m.keys))
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagFPS     int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Move
  P/Esc/Space  - Pause
  R            - Resume (paused) or restart (game over)
  Tab          - Rounds played this session
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, the lethal ghost rarely chases
  normal - 3 lives, the lethal ghost re-aims 1 tick in 4
  hard   - 2 lives, the lethal ghost re-aims every other tick
  fixed  - Normal, but speed never increases`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config tick_ms)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := pacman.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available games.")
		os.Exit(1)
	}

	// Fail on a bad config or maze before the terminal is taken over.
	cfg, err := pacman.LoadConfig()
	if err != nil {
		exitf("%v", err)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			exitf("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, log.InfoLevel)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	interval := cfg.TickInterval()
	tickRate := cfg.TickRate()
	if flagFPS > 0 {
		interval = time.Second / time.Duration(flagFPS)
		tickRate = flagFPS
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID, logger)
	if err != nil {
		exitf("%v", err)
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("round history disabled", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, rc, tui.Options{TickInterval: interval, Logger: logger})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}

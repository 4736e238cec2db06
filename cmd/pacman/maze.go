package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var flagRender bool

var mazeCmd = &cobra.Command{
	Use:   "maze [file]",
	Short: "Validate a maze and print its layout",
	Long: `Parse a maze and print what it contains.

Without a file the configured maze is checked (after --config and --maze).
Exits with status 1 and the parse error when the maze is invalid.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMaze,
}

func init() {
	mazeCmd.Flags().BoolVar(&flagRender, "render", false, "Draw the maze as it appears at the start of a round")
}

func runMaze(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		pacman.SetMazePath(args[0])
	}

	cfg, err := pacman.LoadConfig()
	if err != nil {
		exitf("%v", err)
	}
	m, err := pacman.ParseMaze(cfg.Maze, cfg.Board.TileSize, cfg.Board.FoodSize)
	if err != nil {
		exitf("%v", err)
	}

	ghosts := make([]string, 0, len(m.Ghosts))
	for _, g := range m.Ghosts {
		ghosts = append(ghosts, fmt.Sprintf("%s(%d,%d)", g.Name, g.Col, g.Row))
	}
	lethal := "none"
	if m.Lethal != nil {
		lethal = fmt.Sprintf("(%d,%d)", m.Lethal.Col, m.Lethal.Row)
	}
	tunnel := "none"
	if m.TunnelRow >= 0 {
		tunnel = fmt.Sprintf("%d", m.TunnelRow)
	}

	fmt.Printf("Maze:    %s\n", m.Name)
	fmt.Printf("Size:    %dx%d tiles (%dx%d px)\n", m.Cols, m.Rows, m.Width(), m.Height())
	fmt.Printf("Walls:   %d\n", len(m.Walls))
	fmt.Printf("Food:    %d\n", len(m.Food))
	fmt.Printf("Player:  (%d,%d)\n", m.Player.Col, m.Player.Row)
	fmt.Printf("Ghosts:  %d %s\n", len(m.Ghosts), strings.Join(ghosts, " "))
	fmt.Printf("Lethal:  %s\n", lethal)
	fmt.Printf("Tunnel:  %s\n", tunnel)

	if !flagRender {
		return
	}

	// HUD rows sit above the board; each tile is two cells wide.
	screen := core.NewScreen(m.Cols*2, m.Rows+2)
	game := pacman.NewWithConfig(cfg)
	game.Reset(core.RuntimeConfig{ScreenW: screen.Width(), ScreenH: screen.Height(), Seed: flagSeed})
	game.Render(screen)

	fmt.Println()
	fmt.Println(screen.String())
}

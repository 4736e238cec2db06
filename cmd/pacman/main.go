// pacman is a terminal maze chase: eat every pellet, grab the bonus fruit,
// dodge the ghosts and never touch the lethal one.
//
// Usage:
//
//	pacman play [game]   - Play in the terminal
//	pacman sim           - Run a headless seeded simulation
//	pacman maze [file]   - Validate a maze and print its layout
//	pacman config        - Print the effective configuration
//	pacman list          - List available games
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--maze <path>         - Maze YAML that replaces the configured maze
//	--difficulty <name>   - easy, normal, hard or fixed
//	--seed <value>        - RNG seed for reproducible runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	flagConfig     string
	flagMaze       string
	flagDifficulty string
	flagSeed       int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man - a maze chase in your terminal",
	Long: `A tile-based maze chase for the terminal.

Eat every pellet to reload the maze, pick up fruit for bonus points and
keep away from the ghosts. Every 100 points makes everyone faster. The
lethal ghost ends the game on contact, no matter how many lives are left.

Examples:
  pacman play
  pacman play --difficulty hard
  pacman play --maze ./mazes/small.yaml
  pacman sim --ticks 5000 --seed 42 --format yaml
  pacman maze ./mazes/small.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		pacman.SetConfigPath(flagConfig)
		pacman.SetMazePath(flagMaze)
		pacman.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMaze, "maze", "", "Path to a maze YAML (name, tunnel_row, layout)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
		Level:           level,
	})
}

// exitf prints an error line and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// simMaxRounds caps the rounds listed in a report.
const simMaxRounds = 100

var (
	flagTicks     int
	flagTurnEvery int
	flagFormat    string
	flagVerbose   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless seeded simulation",
	Long: `Drive the game without a terminal UI.

A manual clock advances by tick_ms per step, so fruit spawns on the same
schedule as in play. The player requests a random direction every
--turn-every ticks. Finished rounds are restarted until --ticks is reached.
Runs with the same seed, config and flags are identical.`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 2000, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagTurnEvery, "turn-every", 8, "Ticks between random direction requests")
	simCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log game events to stderr")
}

// simReport is the YAML form of a simulation result.
type simReport struct {
	Seed   int64            `yaml:"seed"`
	Ticks  int              `yaml:"ticks"`
	Final  pacman.Snapshot  `yaml:"final"`
	Hash   string           `yaml:"hash"`
	Best   int              `yaml:"best_score"`
	Rounds []simReportRound `yaml:"rounds"`
}

type simReportRound struct {
	ID           string `yaml:"id"`
	Score        int    `yaml:"score"`
	SpeedLevel   int    `yaml:"speed_level"`
	MazesCleared int    `yaml:"mazes_cleared"`
	Ticks        int    `yaml:"ticks"`
}

func runSim(cmd *cobra.Command, args []string) {
	if flagFormat != "text" && flagFormat != "yaml" {
		exitf("unknown format %q (want text or yaml)", flagFormat)
	}
	if flagTicks <= 0 {
		exitf("--ticks must be positive")
	}

	cfg, err := pacman.LoadConfig()
	if err != nil {
		exitf("%v", err)
	}

	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.OpenMemory()
	if err != nil {
		exitf("%v", err)
	}
	defer store.Close()

	snap, err := simulate(cfg, seed, flagTicks, flagTurnEvery, store, logger)
	if err != nil {
		exitf("%v", err)
	}

	rounds, err := store.RecentRounds(pacman.GameID, simMaxRounds)
	if err != nil {
		exitf("%v", err)
	}
	best, err := store.BestScore(pacman.GameID)
	if err != nil {
		exitf("%v", err)
	}

	if flagFormat == "yaml" {
		err = writeYAMLReport(os.Stdout, seed, snap, best, rounds)
	} else {
		err = writeTextReport(os.Stdout, seed, snap, best, rounds)
	}
	if err != nil {
		exitf("%v", err)
	}
}

// simulate runs ticks steps and records every finished round in store.
// It returns the final snapshot.
func simulate(cfg config.PacmanConfig, seed int64, ticks, turnEvery int, store *storage.Store, logger *log.Logger) (pacman.Snapshot, error) {
	clock := core.NewManualClock(time.Unix(0, 0))
	game := pacman.NewWithConfig(cfg)
	game.SetLogger(logger)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: cfg.TickRate(), Seed: seed, Clock: clock})

	// Inputs draw from their own stream so the game's RNG sequence only
	// depends on the seed and the inputs it is given.
	inputs := rand.New(rand.NewSource(seed ^ 0x5eed))
	dirs := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	for i := range ticks {
		clock.Advance(cfg.TickInterval())

		frame := core.NewInputFrame()
		if game.State().GameOver {
			if _, err := store.SaveRound(roundOf(game, seed)); err != nil {
				return pacman.Snapshot{}, err
			}
			frame.Set(core.ActionRestart)
		} else if turnEvery > 0 && i%turnEvery == 0 {
			frame.Set(dirs[inputs.Intn(len(dirs))])
		}

		game.Step(frame)
	}

	if game.State().GameOver {
		if _, err := store.SaveRound(roundOf(game, seed)); err != nil {
			return pacman.Snapshot{}, err
		}
	}
	return game.Snapshot(), nil
}

// roundOf describes the round game just finished.
func roundOf(game *pacman.Game, seed int64) storage.Round {
	return storage.Round{
		GameID:       pacman.GameID,
		Maze:         game.MazeName(),
		Score:        game.State().Score,
		SpeedLevel:   game.SpeedLevel(),
		MazesCleared: game.MazesCleared(),
		Ticks:        game.RoundTicks(),
		Seed:         seed,
	}
}

func writeYAMLReport(w io.Writer, seed int64, snap pacman.Snapshot, best int, rounds []storage.Round) error {
	report := simReport{
		Seed:  seed,
		Ticks: int(snap.Tick), //#nosec G115 -- tick count fits in int
		Final: snap,
		Hash:  fmt.Sprintf("%016x", snap.Hash()),
		Best:  best,
	}
	for _, r := range rounds {
		report.Rounds = append(report.Rounds, simReportRound{
			ID:           r.ID,
			Score:        r.Score,
			SpeedLevel:   r.SpeedLevel,
			MazesCleared: r.MazesCleared,
			Ticks:        r.Ticks,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

func writeTextReport(w io.Writer, seed int64, snap pacman.Snapshot, best int, rounds []storage.Round) error {
	title := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w, title.Render("Simulation"))
	fmt.Fprintf(w, "  seed:          %d\n", seed)
	fmt.Fprintf(w, "  maze:          %s\n", snap.Maze)
	fmt.Fprintf(w, "  ticks:         %d\n", snap.Tick)
	fmt.Fprintf(w, "  phase:         %s\n", snap.Phase)
	fmt.Fprintf(w, "  score:         %d\n", snap.Score)
	fmt.Fprintf(w, "  lives:         %d\n", snap.Lives)
	fmt.Fprintf(w, "  speed level:   %d\n", snap.SpeedLevel)
	fmt.Fprintf(w, "  mazes cleared: %d\n", snap.MazesCleared)
	fmt.Fprintf(w, "  food left:     %d\n", snap.FoodLeft)
	fmt.Fprintf(w, "  fruit:         %d\n", len(snap.Fruits))
	fmt.Fprintf(w, "  hash:          %016x\n", snap.Hash())
	fmt.Fprintln(w)

	fmt.Fprintln(w, title.Render(fmt.Sprintf("Finished rounds (best %d)", best)))
	if len(rounds) == 0 {
		fmt.Fprintln(w, "  none")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Score", "Speed", "Mazes", "Ticks")
	for i, r := range rounds {
		t.Row(
			strconv.Itoa(len(rounds)-i),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.SpeedLevel),
			strconv.Itoa(r.MazesCleared),
			strconv.Itoa(r.Ticks),
		)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func runTestSim(t *testing.T, seed int64, ticks int) (pacman.Snapshot, *storage.Store) {
	t.Helper()

	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	snap, err := simulate(config.DefaultPacmanConfig(), seed, ticks, 4, store, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	return snap, store
}

func TestSimulateIsDeterministic(t *testing.T) {
	a, _ := runTestSim(t, 42, 1500)
	b, _ := runTestSim(t, 42, 1500)

	if a.Tick != 1500 {
		t.Errorf("tick = %d, want 1500", a.Tick)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("same seed produced different states: %x vs %x", a.Hash(), b.Hash())
	}
}

func TestSimulateRecordsFinishedRounds(t *testing.T) {
	snap, store := runTestSim(t, 7, 3000)

	count, err := store.RoundCount(pacman.GameID)
	if err != nil {
		t.Fatalf("RoundCount: %v", err)
	}
	rounds, err := store.RecentRounds(pacman.GameID, 0)
	if err != nil {
		t.Fatalf("RecentRounds: %v", err)
	}
	if count > 0 && len(rounds) == 0 {
		t.Fatalf("count = %d but no rounds returned", count)
	}
	for _, r := range rounds {
		if r.Seed != 7 {
			t.Errorf("round seed = %d, want 7", r.Seed)
		}
		if r.Maze == "" {
			t.Error("round has no maze name")
		}
	}
	if snap.GameOver && count == 0 {
		t.Error("final game over was not recorded")
	}
}

func TestWriteReports(t *testing.T) {
	snap, store := runTestSim(t, 3, 200)
	rounds, err := store.RecentRounds(pacman.GameID, 0)
	if err != nil {
		t.Fatalf("RecentRounds: %v", err)
	}

	var text bytes.Buffer
	if err := writeTextReport(&text, 3, snap, 0, rounds); err != nil {
		t.Fatalf("writeTextReport: %v", err)
	}
	for _, want := range []string{"Simulation", "seed:          3", "Finished rounds"} {
		if !strings.Contains(text.String(), want) {
			t.Errorf("text report missing %q:\n%s", want, text.String())
		}
	}

	var out bytes.Buffer
	if err := writeYAMLReport(&out, 3, snap, 0, rounds); err != nil {
		t.Fatalf("writeYAMLReport: %v", err)
	}
	var decoded struct {
		Seed  int64 `yaml:"seed"`
		Ticks int   `yaml:"ticks"`
		Final struct {
			Score int    `yaml:"score"`
			Phase string `yaml:"phase"`
		} `yaml:"final"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not valid YAML: %v\n%s", err, out.String())
	}
	if decoded.Seed != 3 || decoded.Ticks != 200 {
		t.Errorf("decoded seed/ticks = %d/%d, want 3/200", decoded.Seed, decoded.Ticks)
	}
	if decoded.Final.Score != snap.Score || decoded.Final.Phase != string(snap.Phase) {
		t.Errorf("decoded final = %+v, want score %d phase %s", decoded.Final, snap.Score, snap.Phase)
	}
}

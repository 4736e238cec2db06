package pacman

// Phase is the lifecycle phase seen by a render sink.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
)

// Snapshot is a read-only copy of everything a render sink needs.
// Mutating it has no effect on the game.
type Snapshot struct {
	Tick  uint64 `yaml:"tick"`
	Maze  string `yaml:"maze"`
	Phase Phase  `yaml:"phase"`

	Score         int `yaml:"score"`
	Lives         int `yaml:"lives"`
	SpeedLevel    int `yaml:"speed_level"`
	LastMilestone int `yaml:"last_milestone"`
	MazesCleared  int `yaml:"mazes_cleared"`
	RoundTicks    int `yaml:"round_ticks"`

	Paused   bool `yaml:"paused"`
	GameOver bool `yaml:"game_over"`

	Player Entity   `yaml:"player"`
	Ghosts []Entity `yaml:"ghosts"`
	Lethal *Entity  `yaml:"lethal,omitempty"`
	Walls  []Entity `yaml:"-"`
	Food   []Entity `yaml:"-"`
	Fruits []Entity `yaml:"fruits"`

	FoodLeft int `yaml:"food_left"`
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.gameOver:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	snap := Snapshot{
		Tick:          g.tick,
		Maze:          g.maze.Name,
		Phase:         phase,
		Score:         g.score,
		Lives:         g.lives,
		SpeedLevel:    g.speedLevel,
		LastMilestone: g.lastMilestone,
		MazesCleared:  g.mazesCleared,
		RoundTicks:    g.roundTicks,
		Paused:        g.paused,
		GameOver:      g.gameOver,
		Player:        *g.player,
		Ghosts:        append([]Entity(nil), g.ghosts...),
		Walls:         append([]Entity(nil), g.walls...),
		Food:          append([]Entity(nil), g.food...),
		FoodLeft:      len(g.food),
	}
	if g.lethal != nil {
		lethal := *g.lethal
		snap.Lethal = &lethal
	}
	if g.fruit != nil {
		snap.Fruits = []Entity{*g.fruit}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Walls never change and are left out.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedLevel)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastMilestone) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MazesCleared)  //#nosec G115 -- hash computation
	h = h*31 + boolHash(snap.Paused)
	h = h*31 + boolHash(snap.GameOver)

	h = hashEntity(h, &snap.Player)
	for i := range snap.Ghosts {
		h = hashEntity(h, &snap.Ghosts[i])
	}
	if snap.Lethal != nil {
		h = hashEntity(h, snap.Lethal)
	}
	for i := range snap.Food {
		h = hashEntity(h, &snap.Food[i])
	}
	for i := range snap.Fruits {
		h = hashEntity(h, &snap.Fruits[i])
	}
	return h
}

func hashEntity(h uint64, e *Entity) uint64 {
	h = h*31 + uint64(e.Kind)  //#nosec G115 -- hash computation
	h = h*31 + uint64(e.X)     //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Y)     //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Dir)   //#nosec G115 -- hash computation
	h = h*31 + uint64(e.VX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(e.VY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Fruit) //#nosec G115 -- hash computation
	return h
}

func boolHash(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

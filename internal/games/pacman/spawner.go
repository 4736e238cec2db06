package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// spawnFruit places a fruit of random type on a free interior tile.
// It does nothing while paused, after game over, or if a fruit is
// already on the board.
func (g *Game) spawnFruit() bool {
	if g.paused || g.gameOver || g.fruit != nil {
		return false
	}

	r, ok := g.findFruitTile()
	if !ok {
		g.logger.Warn("no free tile for fruit", "maze", g.maze.Name)
		return false
	}

	fruit := newEntity(KindFruit, r.X, r.Y, r.W, r.H)
	fruit.Fruit = FruitType(g.rng.Intn(fruitTypeCount) + 1)
	g.fruit = &fruit

	col, row := g.maze.TileOf(r)
	g.logger.Debug("fruit spawned", "type", fruit.Fruit, "col", col, "row", row)
	return true
}

// findFruitTile draws random interior tiles until one is free. With a
// positive retry limit it falls back to scanning in row-major order once
// the attempts are used up.
func (g *Game) findFruitTile() (core.Rect, bool) {
	limit := g.cfg.Gameplay.SpawnRetryLimit
	for attempt := 0; limit <= 0 || attempt < limit; attempt++ {
		col := g.rng.Intn(g.maze.Cols-2) + 1
		row := g.rng.Intn(g.maze.Rows-2) + 1
		r := g.maze.TileRect(col, row)
		if g.fruitFits(r) {
			return r, true
		}
	}

	for row := 1; row < g.maze.Rows-1; row++ {
		for col := 1; col < g.maze.Cols-1; col++ {
			r := g.maze.TileRect(col, row)
			if g.fruitFits(r) {
				return r, true
			}
		}
	}
	return core.Rect{}, false
}

// fruitFits reports whether r is clear of walls, ghosts and the player.
// Overlapping food is allowed.
func (g *Game) fruitFits(r core.Rect) bool {
	if g.hitsWall(r) || g.player.Intersects(r) {
		return false
	}
	for i := range g.ghosts {
		if g.ghosts[i].Intersects(r) {
			return false
		}
	}
	return g.lethal == nil || !g.lethal.Intersects(r)
}

// consumeFruit eats the fruit if the player overlaps it.
func (g *Game) consumeFruit() {
	if g.fruit == nil || !g.fruit.Intersects(g.player.Rect) {
		return
	}
	points := g.cfg.Gameplay.FruitPoints * int(g.fruit.Fruit)
	g.logger.Debug("fruit eaten", "type", g.fruit.Fruit, "points", points)
	g.fruit = nil
	g.award(points)
}

// consumeFood eats every pellet the player overlaps.
func (g *Game) consumeFood() {
	kept := g.food[:0]
	for _, f := range g.food {
		if f.Intersects(g.player.Rect) {
			g.award(g.cfg.Gameplay.FoodPoints)
			continue
		}
		kept = append(kept, f)
	}
	g.food = kept
}

// award adds points and checks for a speed milestone.
func (g *Game) award(points int) {
	g.score += points
	g.checkSpeedIncrease()
}

// checkSpeedIncrease raises the speed level once the score has grown by
// at least one milestone since the last increase.
func (g *Game) checkSpeedIncrease() bool {
	m := g.cfg.Gameplay.SpeedMilestone
	if m <= 0 || g.score < g.lastMilestone+m {
		return false
	}
	g.speedLevel++
	g.lastMilestone = g.score
	g.refreshVelocities()
	g.logger.Info("speed up", "level", g.speedLevel, "score", g.score)
	return true
}

package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// speed returns the current per-tick pixel speed.
func (g *Game) speed() int {
	return ActualSpeed(g.maze.TileSize, g.speedLevel)
}

// hitsWall reports whether r overlaps any wall.
func (g *Game) hitsWall(r core.Rect) bool {
	for i := range g.walls {
		if g.walls[i].Intersects(r) {
			return true
		}
	}
	return false
}

// outOfBounds reports whether r sticks out of the board. The open tunnel
// ends of a maze are the only place this can happen.
func (g *Game) outOfBounds(r core.Rect) bool {
	return r.X < 0 || r.Y < 0 || r.Right() > g.maze.Width() || r.Bottom() > g.maze.Height()
}

// blocked reports whether r cannot be occupied by a mobile entity.
func (g *Game) blocked(r core.Rect) bool {
	return g.outOfBounds(r) || g.hitsWall(r)
}

// turn tries to head e in dir. The attempt moves one step in the new
// direction; if that step lands on a wall, position and direction are
// restored and the velocity is recomputed for the old direction.
// Leaving the board counts as hitting a wall.
func (g *Game) turn(e *Entity, dir Direction) bool {
	prevDir := e.Dir
	prevX, prevY := e.X, e.Y

	e.Dir = dir
	e.setVelocity(g.speed())
	e.X += e.VX
	e.Y += e.VY

	if g.blocked(e.Rect) {
		e.X, e.Y = prevX, prevY
		e.Dir = prevDir
		e.setVelocity(g.speed())
		return false
	}
	return true
}

// advance moves e by its velocity. A step into a wall or off the board
// is undone and reported as blocked.
func (g *Game) advance(e *Entity) bool {
	e.X += e.VX
	e.Y += e.VY

	if g.blocked(e.Rect) {
		e.X -= e.VX
		e.Y -= e.VY
		return false
	}
	return true
}

// mobiles returns the player, the ghosts and the lethal ghost.
func (g *Game) mobiles() []*Entity {
	out := make([]*Entity, 0, len(g.ghosts)+2)
	out = append(out, g.player)
	for i := range g.ghosts {
		out = append(out, &g.ghosts[i])
	}
	if g.lethal != nil {
		out = append(out, g.lethal)
	}
	return out
}

// refreshVelocities applies the current speed level to every moving
// entity. A stopped player stays stopped until its next turn.
func (g *Game) refreshVelocities() {
	s := g.speed()
	for _, e := range g.mobiles() {
		if e.Moving() {
			e.setVelocity(s)
		}
	}
}

// resetPositions sends everything back to spawn. The player stops but
// keeps facing the same way; ghosts pick a fresh random heading.
func (g *Game) resetPositions() {
	g.player.resetToSpawn()
	g.player.stop()

	for i := range g.ghosts {
		g.ghosts[i].resetToSpawn()
		g.turn(&g.ghosts[i], g.randomDirection())
	}
	if g.lethal != nil {
		g.lethal.resetToSpawn()
		g.turn(g.lethal, g.randomDirection())
	}
}

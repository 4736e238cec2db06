package pacman

// randomDirection draws a uniformly random heading.
func (g *Game) randomDirection() Direction {
	return directions[g.rng.Intn(len(directions))]
}

// atTunnelRow reports whether e sits exactly on the configured tunnel row.
func (g *Game) atTunnelRow(e *Entity) bool {
	return g.maze.TunnelRow >= 0 && e.Y == g.maze.TunnelRow*g.maze.TileSize
}

// moveGhost runs one tick of wandering: keep going until blocked, then
// pick a random heading. Ghosts on the tunnel row are pushed upward so
// they don't drift into the side exits.
func (g *Game) moveGhost(e *Entity) {
	if g.atTunnelRow(e) && !e.Dir.Vertical() {
		g.turn(e, DirUp)
	}
	if !g.advance(e) {
		g.turn(e, g.randomDirection())
	}
}

// moveLethal wanders like a ghost but occasionally re-aims at the player.
func (g *Game) moveLethal(e *Entity) {
	if g.rng.Intn(g.cfg.Gameplay.ChaseOneIn) == 0 {
		g.turn(e, chaseDirection(e, g.player))
	}
	if !g.advance(e) {
		g.turn(e, g.randomDirection())
	}
}

// chaseDirection aims from at to. Horizontal offset wins over vertical.
func chaseDirection(from, to *Entity) Direction {
	switch {
	case from.X < to.X:
		return DirRight
	case from.X > to.X:
		return DirLeft
	case from.Y < to.Y:
		return DirDown
	default:
		return DirUp
	}
}

// moveAdversaries advances every ghost, then the lethal ghost.
func (g *Game) moveAdversaries() {
	for i := range g.ghosts {
		g.moveGhost(&g.ghosts[i])
	}
	if g.lethal != nil {
		g.moveLethal(g.lethal)
	}
}

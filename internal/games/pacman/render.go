package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Rendering constants. Each maze tile is two terminal columns wide.
const (
	cellsPerTile = 2
	hudHeight    = 2

	WallGlyph   = '█'
	FoodGlyph   = '·'
	GhostGlyph  = 'M'
	LethalGlyph = 'W'
)

// ghostColors maps ghost names to screen colors.
var ghostColors = map[string]core.Color{
	"blue":   core.ColorBrightCyan,
	"orange": core.ColorOrange,
	"pink":   core.ColorPink,
	"red":    core.ColorRed,
}

// PlayerGlyph returns the player sprite. The open side faces the heading.
func PlayerGlyph(d Direction) rune {
	switch d {
	case DirUp:
		return 'v'
	case DirDown:
		return '^'
	case DirLeft:
		return '>'
	default:
		return '<'
	}
}

// FruitGlyph returns the sprite and color of a fruit.
func FruitGlyph(f FruitType) (rune, core.Color) {
	switch f {
	case FruitCherry:
		return '%', core.ColorRed
	case FruitStrawberry:
		return '$', core.ColorBrightMagenta
	case FruitOrange:
		return '@', core.ColorOrange
	default:
		return '?', core.ColorDefault
	}
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	RenderSnapshot(dst, &snap, g.maze)
}

// RenderSnapshot draws snap onto dst using m for the board geometry.
func RenderSnapshot(dst *core.Screen, snap *Snapshot, m *Maze) {
	dst.Clear()

	boardW := m.Cols * cellsPerTile
	boardH := m.Rows
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	b := board{dst: dst, maze: m, offX: (dst.Width() - boardW) / 2, offY: hudHeight}

	renderHUD(dst, snap)

	for i := range snap.Walls {
		b.draw(&snap.Walls[i], WallGlyph, core.ColorBlue, true)
	}
	for i := range snap.Food {
		b.draw(&snap.Food[i], FoodGlyph, core.ColorWhite, false)
	}
	for i := range snap.Fruits {
		r, c := FruitGlyph(snap.Fruits[i].Fruit)
		b.draw(&snap.Fruits[i], r, c, false)
	}
	for i := range snap.Ghosts {
		c, ok := ghostColors[snap.Ghosts[i].Name]
		if !ok {
			c = core.ColorGray
		}
		b.draw(&snap.Ghosts[i], GhostGlyph, c, false)
	}
	if snap.Lethal != nil {
		b.draw(snap.Lethal, LethalGlyph, core.ColorBrightRed, true)
	}
	b.draw(&snap.Player, PlayerGlyph(snap.Player.Dir), core.ColorBrightYellow, false)

	switch snap.Phase {
	case PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press R to resume")
	case PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// renderHUD draws lives, score and speed level, or the final score.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	text := fmt.Sprintf("x%d Score: %d Speed: %d", snap.Lives, snap.Score, snap.SpeedLevel)
	if snap.GameOver {
		text = fmt.Sprintf("Game Over: %d", snap.Score)
	}
	dst.DrawTextColor(1, 0, text, core.ColorBrightYellow)
	if snap.Maze != "" {
		dst.DrawText(dst.Width()-len([]rune(snap.Maze))-1, 0, snap.Maze)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// board maps pixel positions to screen cells.
type board struct {
	dst  *core.Screen
	maze *Maze
	offX int
	offY int
}

// draw places glyph on the tile under the center of e. With wide set the
// glyph fills both columns of the tile.
func (b board) draw(e *Entity, glyph rune, c core.Color, wide bool) {
	col, row := b.maze.TileOf(e.Rect)
	x := b.offX + col*cellsPerTile
	y := b.offY + row
	b.dst.SetColor(x, y, glyph, c)
	if wide {
		b.dst.SetColor(x+1, y, glyph, c)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

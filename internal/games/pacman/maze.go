package pacman

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Maze characters. Any character not listed here is an open floor tile
// that carries a food pellet.
const (
	TileWall   = 'X'
	TileSkip   = 'O' // Open floor without food
	TilePlayer = 'P'
	TileLethal = 'g'
	TileFood   = ' '
)

// ghostNames maps the ordinary ghost characters to their colors.
var ghostNames = map[rune]string{
	'b': "blue",
	'o': "orange",
	'p': "pink",
	'r': "red",
}

// Parse errors.
var (
	ErrEmptyMaze       = errors.New("maze has no rows")
	ErrMazeTooSmall    = errors.New("maze must be at least 3x3")
	ErrRaggedMaze      = errors.New("maze rows differ in width")
	ErrNoPlayer        = errors.New("maze has no player start 'P'")
	ErrNoFood          = errors.New("maze has no food tiles")
	ErrMultiplePlayers = errors.New("maze has more than one player start 'P'")
	ErrMultipleLethal  = errors.New("maze has more than one lethal ghost 'g'")
)

// Spawn is a tile position with an optional ghost name.
type Spawn struct {
	Col, Row int
	Name     string
}

// Maze is a parsed layout. It is immutable and can be populated any
// number of times.
type Maze struct {
	Name      string
	Cols      int
	Rows      int
	TileSize  int
	FoodSize  int
	TunnelRow int

	Walls  []Entity
	Food   []Spawn
	Ghosts []Spawn
	Lethal *Spawn
	Player Spawn
}

// Population is the set of mutable entities a maze starts a round with.
type Population struct {
	Player Entity
	Ghosts []Entity
	Lethal *Entity
	Food   []Entity
}

// ParseMaze validates a layout and resolves it into tiles.
func ParseMaze(mc config.MazeConfig, tileSize, foodSize int) (*Maze, error) {
	if len(mc.Layout) == 0 {
		return nil, ErrEmptyMaze
	}

	m := &Maze{
		Name:      mc.Name,
		Rows:      len(mc.Layout),
		Cols:      utf8.RuneCountInString(mc.Layout[0]),
		TileSize:  tileSize,
		FoodSize:  foodSize,
		TunnelRow: mc.TunnelRow,
	}
	if m.Rows < 3 || m.Cols < 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrMazeTooSmall, m.Cols, m.Rows)
	}

	players := 0
	for row, line := range mc.Layout {
		if n := utf8.RuneCountInString(line); n != m.Cols {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedMaze, row, n, m.Cols)
		}

		col := 0
		for _, ch := range line {
			switch ch {
			case TileWall:
				r := m.TileRect(col, row)
				m.Walls = append(m.Walls, newEntity(KindWall, r.X, r.Y, r.W, r.H))
			case TileSkip:
			case TilePlayer:
				players++
				if players > 1 {
					return nil, fmt.Errorf("%w: second at row %d col %d", ErrMultiplePlayers, row, col)
				}
				m.Player = Spawn{Col: col, Row: row}
			case TileLethal:
				if m.Lethal != nil {
					return nil, fmt.Errorf("%w: second at row %d col %d", ErrMultipleLethal, row, col)
				}
				m.Lethal = &Spawn{Col: col, Row: row, Name: "lethal"}
			default:
				if name, ok := ghostNames[ch]; ok {
					m.Ghosts = append(m.Ghosts, Spawn{Col: col, Row: row, Name: name})
				} else {
					m.Food = append(m.Food, Spawn{Col: col, Row: row})
				}
			}
			col++
		}
	}

	if players == 0 {
		return nil, ErrNoPlayer
	}
	if len(m.Food) == 0 {
		return nil, ErrNoFood
	}
	return m, nil
}

// Width returns the board width in pixels.
func (m *Maze) Width() int { return m.Cols * m.TileSize }

// Height returns the board height in pixels.
func (m *Maze) Height() int { return m.Rows * m.TileSize }

// TileRect returns the bounds of the tile at (col, row).
func (m *Maze) TileRect(col, row int) core.Rect {
	return core.NewRect(col*m.TileSize, row*m.TileSize, m.TileSize, m.TileSize)
}

// FoodRect returns the bounds of a pellet centered in the tile at (col, row).
func (m *Maze) FoodRect(col, row int) core.Rect {
	inset := (m.TileSize - m.FoodSize) / 2
	return core.NewRect(col*m.TileSize+inset, row*m.TileSize+inset, m.FoodSize, m.FoodSize)
}

// Populate creates fresh mobile entities and pellets at their spawn points.
// Velocities start at zero.
func (m *Maze) Populate() Population {
	p := Population{
		Ghosts: make([]Entity, 0, len(m.Ghosts)),
		Food:   make([]Entity, 0, len(m.Food)),
	}

	r := m.TileRect(m.Player.Col, m.Player.Row)
	p.Player = newEntity(KindPlayer, r.X, r.Y, r.W, r.H)
	p.Player.Dir = DirRight

	for _, s := range m.Ghosts {
		r := m.TileRect(s.Col, s.Row)
		e := newEntity(KindGhost, r.X, r.Y, r.W, r.H)
		e.Name = s.Name
		p.Ghosts = append(p.Ghosts, e)
	}

	if m.Lethal != nil {
		r := m.TileRect(m.Lethal.Col, m.Lethal.Row)
		e := newEntity(KindLethalGhost, r.X, r.Y, r.W, r.H)
		e.Name = m.Lethal.Name
		p.Lethal = &e
	}

	for _, s := range m.Food {
		r := m.FoodRect(s.Col, s.Row)
		p.Food = append(p.Food, newEntity(KindFood, r.X, r.Y, r.W, r.H))
	}

	return p
}

// TileOf returns the tile containing the center of r.
func (m *Maze) TileOf(r core.Rect) (col, row int) {
	cx, cy := r.Center()
	return cx / m.TileSize, cy / m.TileSize
}

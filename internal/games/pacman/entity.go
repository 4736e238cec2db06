package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Kind tags what an Entity is.
type Kind int

const (
	KindWall Kind = iota
	KindFood
	KindFruit
	KindPlayer
	KindGhost
	KindLethalGhost
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFood:
		return "food"
	case KindFruit:
		return "fruit"
	case KindPlayer:
		return "player"
	case KindGhost:
		return "ghost"
	case KindLethalGhost:
		return "lethal_ghost"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// directions is the pool random headings are drawn from.
var directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the direction by name.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// unit returns the sign of movement along each axis.
func (d Direction) unit() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// FruitType is the kind of bonus fruit. Its ordinal scales the fruit's value.
type FruitType int

const (
	FruitNone FruitType = iota
	FruitCherry
	FruitStrawberry
	FruitOrange
)

// fruitTypeCount is the number of real fruit types.
const fruitTypeCount = 3

// String returns the name of the fruit.
func (f FruitType) String() string {
	switch f {
	case FruitCherry:
		return "cherry"
	case FruitStrawberry:
		return "strawberry"
	case FruitOrange:
		return "orange"
	default:
		return "none"
	}
}

// MarshalYAML encodes the fruit by name.
func (f FruitType) MarshalYAML() (any, error) {
	return f.String(), nil
}

// Entity is every positioned object in the maze. Kind-specific fields are
// zero for kinds that don't use them.
type Entity struct {
	core.Rect `yaml:",inline"`

	Kind Kind      `yaml:"kind"`
	Dir  Direction `yaml:"dir"`
	VX   int       `yaml:"vx"` // Derived from Dir and speed level, see setVelocity
	VY   int       `yaml:"vy"`

	SpawnX int `yaml:"-"` // Origin restored on reset
	SpawnY int `yaml:"-"`

	Fruit FruitType `yaml:"fruit,omitempty"` // KindFruit only
	Name  string    `yaml:"name,omitempty"`  // Ghost color, e.g. "red"
}

// newEntity creates an entity whose spawn point is its initial position.
func newEntity(kind Kind, x, y, w, h int) Entity {
	return Entity{
		Rect:   core.NewRect(x, y, w, h),
		Kind:   kind,
		SpawnX: x,
		SpawnY: y,
	}
}

// IsLethal reports whether contact with this entity ends the game outright.
func (e *Entity) IsLethal() bool {
	return e.Kind == KindLethalGhost
}

// Mobile reports whether the entity's kind ever moves.
func (e *Entity) Mobile() bool {
	return e.Kind == KindPlayer || e.Kind == KindGhost || e.Kind == KindLethalGhost
}

// Moving reports whether the entity currently has a velocity.
func (e *Entity) Moving() bool {
	return e.VX != 0 || e.VY != 0
}

// setVelocity derives the velocity from the current direction.
// Exactly one component is nonzero afterwards.
func (e *Entity) setVelocity(speed int) {
	dx, dy := e.Dir.unit()
	e.VX = dx * speed
	e.VY = dy * speed
}

// stop zeroes the velocity without touching the direction.
func (e *Entity) stop() {
	e.VX, e.VY = 0, 0
}

// resetToSpawn moves the entity back to its origin.
func (e *Entity) resetToSpawn() {
	e.X, e.Y = e.SpawnX, e.SpawnY
}

// ActualSpeed returns the per-tick pixel speed for a speed level.
// Base speed is a quarter tile; each level adds a fifth of the base,
// truncated by integer division.
func ActualSpeed(tileSize, speedLevel int) int {
	base := tileSize / 4
	return base + speedLevel*base/5
}

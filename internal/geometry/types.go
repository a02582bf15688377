package geometry

import "fmt"

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// EdgeAddress names the boundary between two 4-adjacent tiles.
// A vertical edge at (X,Y) separates (X,Y) from (X+1,Y); a horizontal edge
// at (X,Y) separates (X,Y) from (X,Y+1).
type EdgeAddress struct {
	X           int
	Y           int
	Orientation Orientation
}

// Tiles returns the two tiles the edge separates, lower coordinate first.
func (e EdgeAddress) Tiles() (Tile, Tile) {
	a := Tile{X: e.X, Y: e.Y}
	if e.Orientation == Vertical {
		return a, Tile{X: e.X + 1, Y: e.Y}
	}
	return a, Tile{X: e.X, Y: e.Y + 1}
}

func (e EdgeAddress) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Orientation, e.X, e.Y)
}

// EdgeBetween returns the canonical edge between a and b, so that
// EdgeBetween(a, b) == EdgeBetween(b, a). ok is false when the tiles are not
// 4-adjacent.
func EdgeBetween(a, b Tile) (EdgeAddress, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dy == 0 && (dx == 1 || dx == -1):
		return EdgeAddress{X: min(a.X, b.X), Y: a.Y, Orientation: Vertical}, true
	case dx == 0 && (dy == 1 || dy == -1):
		return EdgeAddress{X: a.X, Y: min(a.Y, b.Y), Orientation: Horizontal}, true
	}
	return EdgeAddress{}, false
}

// Tile is an integer grid coordinate. Y grows northwards.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (t Tile) Add(o Tile) Tile { return Tile{X: t.X + o.X, Y: t.Y + o.Y} }

func (t Tile) Neighbor(d Direction) Tile { return t.Add(d.Delta()) }

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists the four cardinal directions in emission order.
var Directions = [4]Direction{North, South, West, East}

func (d Direction) Delta() Tile {
	switch d {
	case North:
		return Tile{X: 0, Y: 1}
	case South:
		return Tile{X: 0, Y: -1}
	case West:
		return Tile{X: -1, Y: 0}
	case East:
		return Tile{X: 1, Y: 0}
	}
	return Tile{}
}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	}
	return West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Bounds is an inclusive axis-aligned tile rectangle.
type Bounds struct {
	Min Tile
	Max Tile
}

func (b Bounds) Width() int  { return b.Max.X - b.Min.X + 1 }
func (b Bounds) Length() int { return b.Max.Y - b.Min.Y + 1 }

func (b Bounds) Contains(t Tile) bool {
	return t.X >= b.Min.X && t.X <= b.Max.X && t.Y >= b.Min.Y && t.Y <= b.Max.Y
}

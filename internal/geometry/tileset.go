package geometry

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// TileSet is a set of unique tiles: a footprint, a room, or a stair run.
// Iteration order of Each is unspecified; use Sorted wherever the order can
// influence a random draw.
type TileSet struct {
	set mapset.Set[Tile]
}

func NewTileSet(tiles ...Tile) TileSet {
	s := TileSet{set: mapset.New[Tile]()}
	for _, t := range tiles {
		s.set.Put(t)
	}
	return s
}

// RectTiles returns the w×l rectangle whose minimum corner is (x,y).
func RectTiles(x, y, w, l int) TileSet {
	s := NewTileSet()
	for dx := 0; dx < w; dx++ {
		for dy := 0; dy < l; dy++ {
			s.Add(Tile{X: x + dx, Y: y + dy})
		}
	}
	return s
}

func (s TileSet) Add(t Tile) { s.set.Put(t) }

func (s TileSet) Remove(t Tile) { s.set.Remove(t) }

func (s TileSet) Has(t Tile) bool { return s.set.Has(t) }

func (s TileSet) Len() int { return s.set.Size() }

func (s TileSet) Empty() bool { return s.set.Size() == 0 }

func (s TileSet) Each(fn func(Tile)) { s.set.Each(fn) }

// Sorted returns the tiles ordered by X then Y.
func (s TileSet) Sorted() []Tile {
	out := make([]Tile, 0, s.set.Size())
	s.set.Each(func(t Tile) { out = append(out, t) })
	slices.SortFunc(out, func(a, b Tile) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
	return out
}

func (s TileSet) Clone() TileSet {
	c := NewTileSet()
	s.Each(c.Add)
	return c
}

func (s TileSet) Translate(offset Tile) TileSet {
	out := NewTileSet()
	s.Each(func(t Tile) { out.Add(t.Add(offset)) })
	return out
}

// AddAll adds every tile of o to s.
func (s TileSet) AddAll(o TileSet) {
	o.Each(s.Add)
}

func (s TileSet) Intersect(o TileSet) TileSet {
	out := NewTileSet()
	s.Each(func(t Tile) {
		if o.Has(t) {
			out.Add(t)
		}
	})
	return out
}

// Overlaps reports whether any tile of s shifted by offset is already in o.
func (s TileSet) Overlaps(o TileSet, offset Tile) bool {
	hit := false
	s.Each(func(t Tile) {
		if !hit && o.Has(t.Add(offset)) {
			hit = true
		}
	})
	return hit
}

func (s TileSet) Equal(o TileSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	return s.Intersect(o).Len() == s.Len()
}

// Bounds returns the bounding box. The zero Bounds is returned for an empty set.
func (s TileSet) Bounds() Bounds {
	if s.Empty() {
		return Bounds{}
	}
	first := true
	var b Bounds
	s.Each(func(t Tile) {
		if first {
			b = Bounds{Min: t, Max: t}
			first = false
			return
		}
		b.Min.X = min(b.Min.X, t.X)
		b.Min.Y = min(b.Min.Y, t.Y)
		b.Max.X = max(b.Max.X, t.X)
		b.Max.Y = max(b.Max.Y, t.Y)
	})
	return b
}

// Normalize moves the set so its minimum corner sits at the origin and
// returns the moved set together with the original bounds.
func (s TileSet) Normalize() (TileSet, Bounds) {
	b := s.Bounds()
	return s.Translate(Tile{X: -b.Min.X, Y: -b.Min.Y}), b
}

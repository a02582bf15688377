package main

import (
	"image/color"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/layout"
)

var roomPalette = []color.RGBA{
	{0xf4, 0xd6, 0xa0, 0xff}, {0xa8, 0xd8, 0xb9, 0xff}, {0xa9, 0xc8, 0xe8, 0xff},
	{0xe8, 0xb4, 0xc8, 0xff}, {0xd8, 0xc8, 0xf0, 0xff}, {0xf0, 0xe6, 0x8c, 0xff},
}

var (
	shaftColor = color.RGBA{0x55, 0x55, 0x55, 0xc0}
	wallColor  = color.RGBA{0x20, 0x20, 0x20, 0xff}
	doorColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

type rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

type segment struct {
	X0, Y0, X1, Y1 float32
	Color          color.RGBA
}

// scene is one floor converted to screen space. Tiles grow northwards, so
// rows are flipped against the screen's y axis.
type scene struct {
	Width, Height int
	Tiles         []rect
	Walls         []segment
	Doors         []segment
}

func buildScene(b *layout.Building, floor int, tileSize float32, margin float32) scene {
	all := b.Footprint.Clone()
	for _, f := range b.Floors {
		all.AddAll(f.Occupancy)
	}
	bounds := all.Bounds()

	sc := scene{
		Width:  int(float32(bounds.Width())*tileSize + 2*margin),
		Height: int(float32(bounds.Length())*tileSize + 2*margin),
	}
	if floor < 0 || floor >= len(b.Floors) {
		return sc
	}
	f := b.Floors[floor]

	origin := func(t geometry.Tile) (float32, float32) {
		return margin + float32(t.X-bounds.Min.X)*tileSize, margin + float32(bounds.Max.Y-t.Y)*tileSize
	}

	for _, room := range f.Rooms {
		fill := roomPalette[room.ID%len(roomPalette)]
		for _, t := range room.Tiles.Sorted() {
			x, y := origin(t)
			sc.Tiles = append(sc.Tiles, rect{X: x, Y: y, W: tileSize, H: tileSize, Color: fill})
			if b.Stairwell.Contains(t) {
				sc.Tiles = append(sc.Tiles, rect{X: x, Y: y, W: tileSize, H: tileSize, Color: shaftColor})
			}
		}
	}

	// Each edge once: the east and north sides of every tile, plus the west
	// and south sides where the neighbour is empty.
	for _, room := range f.Rooms {
		for _, t := range room.Tiles.Sorted() {
			x, y := origin(t)
			for _, d := range geometry.Directions {
				n := t.Neighbor(d)
				if room.Tiles.Has(n) {
					continue
				}
				if (d == geometry.West || d == geometry.South) && f.Occupancy.Has(n) {
					continue
				}
				seg := sideOf(x, y, tileSize, d)
				edge, _ := geometry.EdgeBetween(t, n)
				if f.Doors.Has(edge) {
					seg.Color = doorColor
					sc.Doors = append(sc.Doors, seg)
				} else {
					seg.Color = wallColor
					sc.Walls = append(sc.Walls, seg)
				}
			}
		}
	}
	return sc
}

// sideOf returns the screen segment of one side of the tile drawn at (x,y).
func sideOf(x, y, size float32, d geometry.Direction) segment {
	switch d {
	case geometry.North:
		return segment{X0: x, Y0: y, X1: x + size, Y1: y}
	case geometry.South:
		return segment{X0: x, Y0: y + size, X1: x + size, Y1: y + size}
	case geometry.West:
		return segment{X0: x, Y0: y, X1: x, Y1: y + size}
	}
	return segment{X0: x + size, Y0: y, X1: x + size, Y1: y + size}
}

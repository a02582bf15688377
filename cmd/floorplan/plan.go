package main

import (
	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/layout"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellRoom
	cellShaft
	cellWall
	cellDoor
	cellCorner
)

const (
	glyphShaft  = '#'
	glyphDoor   = '+'
	glyphCorner = '·'
	glyphWallV  = '│'
	glyphWallH  = '─'
)

type cell struct {
	kind cellKind
	room int
	ch   rune
}

// plan is one floor rasterised for a character screen. Tile (x,y) sits at
// column 2(x-minX)+1 and row 2(maxY-y)+1; the cells between tiles hold
// walls, doors, or the room fill when both sides share a room.
type plan struct {
	cols, rows int
	cells      [][]cell
}

func (p *plan) at(col, row int) cell { return p.cells[row][col] }

func (p *plan) set(col, row int, c cell) { p.cells[row][col] = c }

// buildingBounds covers every floor so switching floors keeps the frame still.
func buildingBounds(b *layout.Building) geometry.Bounds {
	all := b.Footprint.Clone()
	for _, f := range b.Floors {
		all.AddAll(f.Occupancy)
	}
	return all.Bounds()
}

func rasterize(b *layout.Building, floor int) *plan {
	bounds := buildingBounds(b)
	p := &plan{cols: 2*bounds.Width() + 1, rows: 2*bounds.Length() + 1}
	p.cells = make([][]cell, p.rows)
	for i := range p.cells {
		p.cells[i] = make([]cell, p.cols)
	}
	if floor < 0 || floor >= len(b.Floors) {
		return p
	}
	f := b.Floors[floor]

	pos := func(t geometry.Tile) (int, int) {
		return 2*(t.X-bounds.Min.X) + 1, 2*(bounds.Max.Y-t.Y) + 1
	}

	for _, room := range f.Rooms {
		fill := cell{kind: cellRoom, room: room.ID, ch: ' '}
		for _, t := range room.Tiles.Sorted() {
			col, row := pos(t)
			if b.Stairwell.Contains(t) {
				p.set(col, row, cell{kind: cellShaft, room: room.ID, ch: glyphShaft})
			} else {
				p.set(col, row, fill)
			}

			for _, d := range geometry.Directions {
				n := t.Neighbor(d)
				dc, dr := d.Delta().X, -d.Delta().Y
				edgeCol, edgeRow := col+dc, row+dr

				wall := cell{kind: cellWall, room: -1, ch: glyphWallV}
				if d == geometry.North || d == geometry.South {
					wall.ch = glyphWallH
				}

				switch {
				case room.Tiles.Has(n):
					p.set(edgeCol, edgeRow, fill)
				case f.Occupancy.Has(n):
					edge, _ := geometry.EdgeBetween(t, n)
					if f.Doors.Has(edge) {
						p.set(edgeCol, edgeRow, cell{kind: cellDoor, room: -1, ch: glyphDoor})
					} else {
						p.set(edgeCol, edgeRow, wall)
					}
				default:
					p.set(edgeCol, edgeRow, wall)
				}
			}
		}
	}

	p.fillCorners()
	return p
}

// fillCorners marks lattice points touching a wall and fills those inside a
// single room.
func (p *plan) fillCorners() {
	for row := 0; row < p.rows; row += 2 {
		for col := 0; col < p.cols; col += 2 {
			var around []cell
			if col > 0 {
				around = append(around, p.at(col-1, row))
			}
			if col+1 < p.cols {
				around = append(around, p.at(col+1, row))
			}
			if row > 0 {
				around = append(around, p.at(col, row-1))
			}
			if row+1 < p.rows {
				around = append(around, p.at(col, row+1))
			}

			walled := false
			sameRoom := len(around) == 4
			for _, c := range around {
				if c.kind == cellWall || c.kind == cellDoor {
					walled = true
				}
				if c.kind != cellRoom || c.room != around[0].room {
					sameRoom = false
				}
			}
			switch {
			case walled:
				p.set(col, row, cell{kind: cellCorner, room: -1, ch: glyphCorner})
			case sameRoom:
				p.set(col, row, around[0])
			}
		}
	}
}

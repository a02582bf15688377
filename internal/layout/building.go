package layout

import "github.com/Ko-stant/house-layout-engine/internal/geometry"

// Room is one partitioned or placed area. Tiles are in building coordinates;
// Offset is the minimum corner of the room's bounding box.
type Room struct {
	ID     int
	Tiles  geometry.TileSet
	Offset geometry.Tile
	Width  int
	Length int
}

func newRoom(id int, tiles geometry.TileSet) Room {
	b := tiles.Bounds()
	return Room{ID: id, Tiles: tiles, Offset: b.Min, Width: b.Width(), Length: b.Length()}
}

// LocalTiles returns the room's tiles relative to its Offset.
func (r Room) LocalTiles() geometry.TileSet {
	return r.Tiles.Translate(geometry.Tile{X: -r.Offset.X, Y: -r.Offset.Y})
}

type Floor struct {
	Index int
	// Height of the floor surface, taken from the highest ceiling emitted
	// for the floor below.
	Height float64
	Rooms  []Room
	Doors  DoorPlan
	// Occupancy is the union of all room tiles on this floor.
	Occupancy geometry.TileSet
}

// RoomAt returns the index of the room holding t, or -1.
func (f *Floor) RoomAt(t geometry.Tile) int {
	for i, r := range f.Rooms {
		if r.Tiles.Has(t) {
			return i
		}
	}
	return -1
}

// Building is the complete result of one generation pass.
type Building struct {
	Config Config
	// Seed actually used by the run; generating again with it reproduces
	// the building.
	Seed int64
	// Footprint is the outline shared by every floor: the generated outline
	// in partition mode, the intersection of the floors' occupancy otherwise.
	Footprint geometry.TileSet
	Floors    []*Floor
	// Stairwell is nil for single-storey buildings.
	Stairwell *Stairwell
	Ramps     []Ramp
	Warnings  []Warning
}

func (b *Building) RoomCount() int {
	n := 0
	for _, f := range b.Floors {
		n += len(f.Rooms)
	}
	return n
}

package layout

import "github.com/Ko-stant/house-layout-engine/internal/geometry"

// Sink consumes the geometry of a generated building. Heights are world
// heights of the primitive's base.
type Sink interface {
	EmitFloor(floor int, pos geometry.Tile, height float64)
	EmitCeiling(floor int, pos geometry.Tile, height float64)
	EmitWall(floor int, pos geometry.Tile, dir geometry.Direction, interior bool, height float64)
	EmitStairRamp(ramp Ramp)
}

// emitFloor sends the slabs and walls of f to sink and returns the highest
// ceiling it emitted. ok is false when the floor emitted no ceiling.
//
// Shaft tiles get no floor slab above the ground floor and no ceiling below
// the top floor. No wall separates two shaft tiles. Otherwise a shaft tile is
// walled like any other tile of its room, so the shaft never cuts a room the
// door plan connected.
func emitFloor(f *Floor, top bool, shaft *Stairwell, wallHeight int, sink Sink) (float64, bool) {
	ceiling := f.Height + float64(wallHeight)
	emittedCeiling := false

	for _, room := range f.Rooms {
		for _, t := range room.Tiles.Sorted() {
			inShaft := shaft.Contains(t)

			if !inShaft || f.Index == 0 {
				sink.EmitFloor(f.Index, t, f.Height)
			}
			if !inShaft || top {
				sink.EmitCeiling(f.Index, t, ceiling)
				emittedCeiling = true
			}

			for _, d := range geometry.Directions {
				n := t.Neighbor(d)
				nShaft := shaft.Contains(n)
				if inShaft && nShaft {
					continue
				}

				switch {
				case room.Tiles.Has(n):
					// open floor within the room
				case f.Occupancy.Has(n):
					edge, _ := geometry.EdgeBetween(t, n)
					if !f.Doors.Has(edge) {
						sink.EmitWall(f.Index, t, d, true, f.Height)
					}
				default:
					sink.EmitWall(f.Index, t, d, false, f.Height)
				}
			}
		}
	}
	return ceiling, emittedCeiling
}

// Replay sends an already generated building to sink in the same order the
// generation pass emitted it.
func Replay(b *Building, sink Sink) {
	last := len(b.Floors) - 1
	for i, f := range b.Floors {
		emitFloor(f, i == last, b.Stairwell, b.Config.WallHeight, sink)
		if i < last && i < len(b.Ramps) {
			sink.EmitStairRamp(b.Ramps[i])
		}
	}
}

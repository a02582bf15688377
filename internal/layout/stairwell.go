package layout

import (
	"math"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/rng"
)

// StairRunDirection is the axis a stair run extends along from its anchor.
const StairRunDirection = geometry.South

// Stairwell reserves a straight run of Depth tiles, starting at Anchor and
// extending along StairRunDirection, as a shaft through every floor.
type Stairwell struct {
	Anchor geometry.Tile
	Depth  int
	// Validated is false when no tile had a full runway and Anchor is a
	// fallback.
	Validated bool

	run geometry.TileSet
}

func newStairwell(anchor geometry.Tile, depth int, validated bool) *Stairwell {
	return &Stairwell{Anchor: anchor, Depth: depth, Validated: validated, run: geometry.NewTileSet(runTiles(anchor, depth)...)}
}

func runTiles(anchor geometry.Tile, depth int) []geometry.Tile {
	tiles := make([]geometry.Tile, depth)
	cur := anchor
	for i := range tiles {
		tiles[i] = cur
		cur = cur.Neighbor(StairRunDirection)
	}
	return tiles
}

// Run returns the shaft tiles from the anchor outwards.
func (s *Stairwell) Run() []geometry.Tile {
	return runTiles(s.Anchor, s.Depth)
}

// Contains reports whether t is part of the shaft. Safe on a nil Stairwell.
func (s *Stairwell) Contains(t geometry.Tile) bool {
	if s == nil {
		return false
	}
	return s.run.Has(t)
}

// RunwayClear reports whether the run of depth tiles from anchor lies fully
// inside footprint.
func RunwayClear(footprint geometry.TileSet, anchor geometry.Tile, depth int) bool {
	for _, t := range runTiles(anchor, depth) {
		if !footprint.Has(t) {
			return false
		}
	}
	return true
}

// PlanStairwell picks an anchor whose runway is inside footprint, checking
// tiles in random order. When no tile qualifies the first visited tile is
// used with Validated false. It returns nil for an empty footprint.
func PlanStairwell(footprint geometry.TileSet, depth int, src rng.Source) *Stairwell {
	if footprint.Empty() {
		return nil
	}
	candidates := footprint.Sorted()
	rng.ShuffleTiles(src, candidates)

	for _, t := range candidates {
		if RunwayClear(footprint, t, depth) {
			return newStairwell(t, depth, true)
		}
	}
	return newStairwell(candidates[0], depth, false)
}

// Ramp is the stair geometry bridging one floor to the next.
type Ramp struct {
	// Floor is the lower floor's index.
	Floor  int
	Anchor geometry.Tile
	Bottom float64
	Top    float64
	Depth  int
	Run    float64
	Rise   float64
	Length float64
	// Angle is the incline in radians.
	Angle float64
}

func (r Ramp) AngleDegrees() float64 { return r.Angle * 180 / math.Pi }

// Ramp computes the ramp from floor at height bottom to the floor above at
// top. The horizontal run is the shaft depth and the rise one wall height.
func (s *Stairwell) Ramp(floor int, bottom, top float64, wallHeight int) Ramp {
	run := float64(s.Depth)
	rise := float64(wallHeight)
	return Ramp{
		Floor:  floor,
		Anchor: s.Anchor,
		Bottom: bottom,
		Top:    top,
		Depth:  s.Depth,
		Run:    run,
		Rise:   rise,
		Length: math.Hypot(run, rise),
		Angle:  math.Atan2(rise, run),
	}
}

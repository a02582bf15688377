package layout

import (
	"fmt"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/rng"
)

// RoomShape unions 1..complexity random rectangles into one room outline,
// moved so its minimum corner is the origin.
func RoomShape(cfg Config, src rng.Source) geometry.TileSet {
	complexity := src.IntRange(cfg.MinComplexity, cfg.MaxComplexity+1)

	coords := geometry.NewTileSet()
	for section := 0; section < complexity; section++ {
		width := src.IntRange(cfg.MinRoomWidth, cfg.MaxRoomWidth)
		length := src.IntRange(cfg.MinRoomLength, cfg.MaxRoomLength)

		// The first rectangle anchors the shape; the rest make nooks.
		startX, startY := 0, 0
		if section > 0 {
			startX = src.IntRange(-width/2, width/2)
			startY = src.IntRange(-length/2, length/2)
		}
		coords.AddAll(geometry.RectTiles(startX, startY, width, length))
	}

	normalized, _ := coords.Normalize()
	return normalized
}

type placedShape struct {
	offset geometry.Tile
	size   geometry.Tile
}

// Placer drops room shapes into a floor without overlap. It owns the
// occupancy set for a single floor.
type Placer struct {
	cfg      Config
	src      rng.Source
	occupied geometry.TileSet
	placed   []placedShape
}

func NewPlacer(cfg Config, src rng.Source) *Placer {
	return &Placer{cfg: cfg, src: src, occupied: geometry.NewTileSet()}
}

// Occupied returns the tiles claimed so far.
func (p *Placer) Occupied() geometry.TileSet { return p.occupied }

// Place finds an offset for shape using the configured strategy and claims
// the translated tiles. ok is false when no free spot was found.
func (p *Placer) Place(shape geometry.TileSet) (geometry.Tile, bool) {
	var offset geometry.Tile
	var ok bool
	if p.cfg.Strategy == StrategyScatter {
		offset, ok = p.scatterPosition(shape)
	} else {
		offset, ok = p.snapPosition(shape)
	}
	if !ok {
		return geometry.Tile{}, false
	}

	p.occupied.AddAll(shape.Translate(offset))
	b := shape.Bounds()
	p.placed = append(p.placed, placedShape{offset: offset, size: geometry.Tile{X: b.Width(), Y: b.Length()}})
	return offset, true
}

// snapPosition slides the shape along every side of every placed room, in
// random order, and takes the first spot that is free and inside the house.
func (p *Placer) snapPosition(shape geometry.TileSet) (geometry.Tile, bool) {
	if len(p.placed) == 0 {
		return geometry.Tile{}, true
	}
	b := shape.Bounds()
	size := geometry.Tile{X: b.Width(), Y: b.Length()}

	for _, ai := range rng.Perm(p.src, len(p.placed)) {
		anchor := p.placed[ai]
		for _, side := range rng.Perm(p.src, len(geometry.Directions)) {
			dir := geometry.Directions[side]

			// From barely touching one corner to barely touching the other.
			scanStart, scanEnd := -size.X+1, anchor.size.X-1
			if dir == geometry.East || dir == geometry.West {
				scanStart, scanEnd = -size.Y+1, anchor.size.Y-1
			}
			slides := make([]int, 0, scanEnd-scanStart+1)
			for k := scanStart; k <= scanEnd; k++ {
				slides = append(slides, k)
			}
			p.src.Shuffle(len(slides), func(i, j int) { slides[i], slides[j] = slides[j], slides[i] })

			for _, slide := range slides {
				var rel geometry.Tile
				switch dir {
				case geometry.North:
					rel = geometry.Tile{X: slide, Y: anchor.size.Y}
				case geometry.South:
					rel = geometry.Tile{X: slide, Y: -size.Y}
				case geometry.East:
					rel = geometry.Tile{X: anchor.size.X, Y: slide}
				case geometry.West:
					rel = geometry.Tile{X: -size.X, Y: slide}
				}
				offset := anchor.offset.Add(rel)
				if shape.Overlaps(p.occupied, offset) {
					continue
				}
				if p.insideCentredBounds(shape, offset) {
					return offset, true
				}
			}
		}
	}
	return geometry.Tile{}, false
}

// insideCentredBounds checks the house rectangle centred on the origin used
// by snap placement.
func (p *Placer) insideCentredBounds(shape geometry.TileSet, offset geometry.Tile) bool {
	limitX := p.cfg.MaxHouseWidth / 2
	limitY := p.cfg.MaxHouseLength / 2
	inside := true
	shape.Each(func(t geometry.Tile) {
		pos := t.Add(offset)
		if pos.X < -limitX || pos.X > limitX || pos.Y < -limitY || pos.Y > limitY {
			inside = false
		}
	})
	return inside
}

// scatterPosition draws up to MaxPlacementAttempts offsets inside
// [0, house-room] on each axis and keeps the first free one.
func (p *Placer) scatterPosition(shape geometry.TileSet) (geometry.Tile, bool) {
	b := shape.Bounds()
	spanX := max(p.cfg.MaxHouseWidth-b.Width(), 0) + 1
	spanY := max(p.cfg.MaxHouseLength-b.Length(), 0) + 1

	for attempt := 0; attempt < p.cfg.MaxPlacementAttempts; attempt++ {
		offset := geometry.Tile{X: p.src.IntRange(0, spanX), Y: p.src.IntRange(0, spanY)}
		if !shape.Overlaps(p.occupied, offset) {
			return offset, true
		}
	}
	return geometry.Tile{}, false
}

// PlaceRooms generates and places count room shapes for one floor. Rooms that
// find no spot are skipped and reported as PlacementFailure warnings.
func PlaceRooms(cfg Config, src rng.Source, floor, count int) ([]Room, []Warning) {
	placer := NewPlacer(cfg, src)

	var rooms []Room
	var warnings []Warning
	for i := 0; i < count; i++ {
		shape := RoomShape(cfg, src)
		offset, ok := placer.Place(shape)
		if !ok {
			warnings = append(warnings, Warning{
				Kind:    PlacementFailure,
				Floor:   floor,
				Room:    i,
				Message: fmt.Sprintf("could not find a valid spot for room %d, house might be too crowded", i),
			})
			continue
		}
		rooms = append(rooms, newRoom(len(rooms), shape.Translate(offset)))
	}
	return rooms, warnings
}

package layout

import (
	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/rng"
)

// GenerateFootprint unions cfg-driven random rectangles into a building
// outline. The first rectangle sits at the origin and later ones are shifted
// by up to half their size, which usually but not always keeps the outline
// connected. The result is moved to the origin and clipped to the house
// bounds.
func GenerateFootprint(cfg Config, src rng.Source) geometry.TileSet {
	complexity := src.IntRange(cfg.MinComplexity, cfg.MaxComplexity+1)

	raw := geometry.NewTileSet()
	for i := 0; i < complexity; i++ {
		width := sampleSpan(src, cfg.MinRoomWidth*cfg.FootprintScale, cfg.MaxRoomWidth*cfg.FootprintScale, cfg.MaxHouseWidth)
		length := sampleSpan(src, cfg.MinRoomLength*cfg.FootprintScale, cfg.MaxRoomLength*cfg.FootprintScale, cfg.MaxHouseLength)

		startX, startY := 0, 0
		if i > 0 {
			startX = src.IntRange(-width/2, width/2)
			startY = src.IntRange(-length/2, length/2)
		}
		raw.AddAll(geometry.RectTiles(startX, startY, width, length))
	}

	normalized, _ := raw.Normalize()
	house := geometry.Bounds{Max: geometry.Tile{X: cfg.MaxHouseWidth - 1, Y: cfg.MaxHouseLength - 1}}
	clipped := geometry.NewTileSet()
	normalized.Each(func(t geometry.Tile) {
		if house.Contains(t) {
			clipped.Add(t)
		}
	})
	return clipped
}

// sampleSpan draws from [lo, hi) with both ends capped at limit.
func sampleSpan(src rng.Source, lo, hi, limit int) int {
	lo = min(lo, limit)
	hi = min(hi, limit)
	return src.IntRange(lo, hi)
}

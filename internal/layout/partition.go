package layout

import (
	"slices"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/rng"
)

// maxSplitAttempts bounds the number of split tries per partition.
const maxSplitAttempts = 100

// Partition splits tiles into at most target regions by repeated binary
// space partitioning. The regions cover tiles exactly. When the attempt
// budget runs out fewer, larger regions are returned.
func Partition(tiles geometry.TileSet, target int, cfg Config, src rng.Source) []geometry.TileSet {
	if tiles.Empty() {
		return nil
	}
	regions := []geometry.TileSet{tiles.Clone()}

	attempts := 0
	for attempts < maxSplitAttempts && len(regions) < target {
		for _, idx := range bySizeDesc(regions) {
			if attempts >= maxSplitAttempts {
				break
			}
			attempts++
			a, b, ok := splitRegion(regions[idx], cfg, src)
			if !ok {
				continue
			}
			regions[idx] = a
			regions = append(regions, b)
			break
		}
	}
	return regions
}

// bySizeDesc returns region indices, largest region first. Ties keep list order.
func bySizeDesc(regions []geometry.TileSet) []int {
	order := make([]int, len(regions))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return regions[b].Len() - regions[a].Len()
	})
	return order
}

// splitRegion cuts region along one axis of its bounding box so that each
// side of the line spans at least the minimum room size. It fails when no
// axis is wide enough, or when the cut leaves one side empty because the
// bounding box is not fully occupied.
func splitRegion(region geometry.TileSet, cfg Config, src rng.Source) (geometry.TileSet, geometry.TileSet, bool) {
	b := region.Bounds()
	w, l := b.Width(), b.Length()
	// A side exactly twice the minimum is left whole: lines come from [min, size-min).
	canX := w-cfg.MinRoomWidth > cfg.MinRoomWidth
	canY := l-cfg.MinRoomLength > cfg.MinRoomLength
	if !canX && !canY {
		return geometry.TileSet{}, geometry.TileSet{}, false
	}

	// Cut across the longer side; flip a coin when both sides fit two rooms.
	acrossX := w >= l
	switch {
	case canX && canY:
		if rng.CoinFlip(src) {
			acrossX = !acrossX
		}
	case acrossX && !canX, !acrossX && !canY:
		acrossX = !acrossX
	}

	var inFirst func(geometry.Tile) bool
	if acrossX {
		line := b.Min.X + src.IntRange(cfg.MinRoomWidth, w-cfg.MinRoomWidth)
		inFirst = func(t geometry.Tile) bool { return t.X < line }
	} else {
		line := b.Min.Y + src.IntRange(cfg.MinRoomLength, l-cfg.MinRoomLength)
		inFirst = func(t geometry.Tile) bool { return t.Y < line }
	}

	first, second := geometry.NewTileSet(), geometry.NewTileSet()
	region.Each(func(t geometry.Tile) {
		if inFirst(t) {
			first.Add(t)
		} else {
			second.Add(t)
		}
	})
	if first.Empty() || second.Empty() {
		return geometry.TileSet{}, geometry.TileSet{}, false
	}
	return first, second, true
}

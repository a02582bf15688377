package geometry

type RegionMap struct {
	TileRegionIDs map[Tile]int
	RegionsCount  int
}

// Region returns the region of t, or -1 when t is not part of the map.
func (rm RegionMap) Region(t Tile) int {
	id, ok := rm.TileRegionIDs[t]
	if !ok {
		return -1
	}
	return id
}

// BuildRegionMap flood fills tiles into regions. A step between two adjacent
// tiles of the set is taken only when passable reports the edge between them
// as open. Tiles are visited in sorted order so region ids are stable.
func BuildRegionMap(tiles TileSet, passable func(EdgeAddress) bool) RegionMap {
	tileRegionIDs := make(map[Tile]int, tiles.Len())
	sorted := tiles.Sorted()

	regionID := 0
	queue := make([]Tile, 0, len(sorted))

	for _, start := range sorted {
		if _, seen := tileRegionIDs[start]; seen {
			continue
		}
		tileRegionIDs[start] = regionID
		queue = queue[:0]
		queue = append(queue, start)

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			for _, d := range Directions {
				next := cur.Neighbor(d)
				if !tiles.Has(next) {
					continue
				}
				if _, seen := tileRegionIDs[next]; seen {
					continue
				}
				edge, _ := EdgeBetween(cur, next)
				if passable != nil && !passable(edge) {
					continue
				}
				tileRegionIDs[next] = regionID
				queue = append(queue, next)
			}
		}
		regionID++
	}

	return RegionMap{TileRegionIDs: tileRegionIDs, RegionsCount: regionID}
}

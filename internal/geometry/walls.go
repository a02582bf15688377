package geometry

import "slices"

// WallEdges derives the wall edges of a floor: every edge where a room tile
// meets a tile of another room or empty space, minus the edges open reports
// as passable (doors). Each edge is listed once, sorted, split by orientation.
func WallEdges(rooms []TileSet, open func(EdgeAddress) bool) ([]EdgeAddress, []EdgeAddress) {
	owner := make(map[Tile]int)
	for i, room := range rooms {
		room.Each(func(t Tile) { owner[t] = i })
	}

	seen := make(map[EdgeAddress]struct{})
	var verticalWalls []EdgeAddress
	var horizontalWalls []EdgeAddress

	for t, id := range owner {
		for _, d := range Directions {
			n := t.Neighbor(d)
			if other, ok := owner[n]; ok && other == id {
				continue
			}
			edge, _ := EdgeBetween(t, n)
			if _, dup := seen[edge]; dup {
				continue
			}
			seen[edge] = struct{}{}
			if open != nil && open(edge) {
				continue
			}
			if edge.Orientation == Vertical {
				verticalWalls = append(verticalWalls, edge)
			} else {
				horizontalWalls = append(horizontalWalls, edge)
			}
		}
	}

	slices.SortFunc(verticalWalls, compareEdges)
	slices.SortFunc(horizontalWalls, compareEdges)
	return verticalWalls, horizontalWalls
}

func compareEdges(a, b EdgeAddress) int {
	if a.Orientation != b.Orientation {
		if a.Orientation < b.Orientation {
			return -1
		}
		return 1
	}
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

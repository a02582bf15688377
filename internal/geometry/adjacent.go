package geometry

// SharedEdges lists every edge where a tile of a touches a tile of b, in the
// sorted order of a's tiles.
func SharedEdges(a, b TileSet) []EdgeAddress {
	var edges []EdgeAddress
	for _, t := range a.Sorted() {
		for _, d := range Directions {
			n := t.Neighbor(d)
			if !b.Has(n) || a.Has(n) {
				continue
			}
			edge, _ := EdgeBetween(t, n)
			edges = append(edges, edge)
		}
	}
	return edges
}

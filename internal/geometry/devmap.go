package geometry

// DevFootprint is a fixed L-shaped outline for trying out authored
// footprints without writing a file.
func DevFootprint() TileSet {
	// 24x12 wing along X plus a 10x14 wing rising from its west end.
	fp := RectTiles(0, 0, 24, 12)
	fp.AddAll(RectTiles(0, 12, 10, 14))
	return fp
}

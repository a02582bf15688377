package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/layout"
)

func generate(t *testing.T, footprint geometry.TileSet, rooms, floors int) *layout.Building {
	t.Helper()
	cfg := layout.DefaultConfig()
	cfg.NumberOfRooms = rooms
	cfg.NumberOfFloors = floors
	cfg.Seed = 6
	b, err := layout.NewGenerator(nil).GenerateOnFootprint(cfg, footprint, nil)
	require.NoError(t, err)
	return b
}

func TestBuildScene_SingleRoom(t *testing.T) {
	b := generate(t, geometry.RectTiles(0, 0, 3, 2), 1, 1)

	sc := buildScene(b, 0, 10, 5)

	assert.Equal(t, 40, sc.Width)
	assert.Equal(t, 30, sc.Height)
	assert.Len(t, sc.Tiles, 6)
	assert.Len(t, sc.Walls, 10, "perimeter of a 3x2 room")
	assert.Empty(t, sc.Doors)
}

func TestBuildScene_FlipsRows(t *testing.T) {
	b := generate(t, geometry.RectTiles(0, 0, 1, 2), 1, 1)

	sc := buildScene(b, 0, 10, 0)

	require.Len(t, sc.Tiles, 2)
	// Sorted order visits (0,0) before (0,1); the northern tile is drawn on top.
	assert.Equal(t, float32(10), sc.Tiles[0].Y)
	assert.Equal(t, float32(0), sc.Tiles[1].Y)
}

func TestBuildScene_DoorsAndShaft(t *testing.T) {
	b := generate(t, geometry.RectTiles(0, 0, 12, 12), 4, 2)
	require.NotNil(t, b.Stairwell)

	sc := buildScene(b, 0, 8, 0)

	assert.Len(t, sc.Doors, b.Floors[0].Doors.Len())
	assert.Len(t, sc.Tiles, 12*12+b.Stairwell.Depth, "shaft tiles get an overlay")
}

func TestSideOf(t *testing.T) {
	s := sideOf(0, 0, 4, geometry.East)
	assert.Equal(t, segment{X0: 4, Y0: 0, X1: 4, Y1: 4}, s)

	s = sideOf(0, 0, 4, geometry.South)
	assert.Equal(t, segment{X0: 0, Y0: 4, X1: 4, Y1: 4}, s)
}

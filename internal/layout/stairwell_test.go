package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/rng"
)

func TestRunwayClear(t *testing.T) {
	fp := geometry.RectTiles(0, 0, 10, 10)

	// The run heads south, so (3,3) would need (3,-1).
	assert.False(t, RunwayClear(fp, geometry.Tile{X: 3, Y: 3}, 5))
	assert.True(t, RunwayClear(fp, geometry.Tile{X: 3, Y: 4}, 5))
	assert.False(t, RunwayClear(fp, geometry.Tile{X: 10, Y: 9}, 1))
}

func TestPlanStairwell_RunInsideFootprint(t *testing.T) {
	fp := geometry.RectTiles(0, 0, 10, 10)
	for seed := int64(1); seed <= 20; seed++ {
		sw := PlanStairwell(fp, 5, rng.New(seed))
		require.NotNil(t, sw)
		assert.True(t, sw.Validated, "seed %d", seed)

		run := sw.Run()
		require.Len(t, run, 5)
		assert.Equal(t, sw.Anchor, run[0])
		for i, tile := range run {
			assert.True(t, fp.Has(tile), "seed %d: run tile %v outside footprint", seed, tile)
			assert.True(t, sw.Contains(tile))
			if i > 0 {
				assert.Equal(t, run[i-1].Neighbor(StairRunDirection), tile)
			}
		}
	}
}

func TestPlanStairwell_FallbackWhenNoRunwayFits(t *testing.T) {
	strip := geometry.RectTiles(0, 0, 10, 1)
	sw := PlanStairwell(strip, 5, rng.New(6))
	require.NotNil(t, sw)
	assert.False(t, sw.Validated)
	assert.True(t, strip.Has(sw.Anchor))
}

func TestPlanStairwell_EmptyFootprint(t *testing.T) {
	assert.Nil(t, PlanStairwell(geometry.NewTileSet(), 4, rng.New(1)))

	var sw *Stairwell
	assert.False(t, sw.Contains(geometry.Tile{}))
}

func TestStairwell_Ramp(t *testing.T) {
	sw := newStairwell(geometry.Tile{X: 2, Y: 6}, 4, true)
	ramp := sw.Ramp(0, 0, 3, 3)

	assert.Equal(t, 0, ramp.Floor)
	assert.Equal(t, sw.Anchor, ramp.Anchor)
	assert.InDelta(t, 5.0, ramp.Length, 1e-9)
	assert.InDelta(t, math.Atan2(3, 4), ramp.Angle, 1e-9)
	assert.InDelta(t, 36.8699, ramp.AngleDegrees(), 1e-3)
	assert.Equal(t, 3.0, ramp.Top)
}

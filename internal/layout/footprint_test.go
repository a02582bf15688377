package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/rng"
)

func TestGenerateFootprint_InsideHouseBounds(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 25; seed++ {
		fp := GenerateFootprint(cfg, rng.New(seed))
		require.False(t, fp.Empty())

		b := fp.Bounds()
		assert.Equal(t, geometry.Tile{}, b.Min, "seed %d", seed)
		assert.LessOrEqual(t, b.Width(), cfg.MaxHouseWidth, "seed %d", seed)
		assert.LessOrEqual(t, b.Length(), cfg.MaxHouseLength, "seed %d", seed)
	}
}

func TestGenerateFootprint_SingleRectangle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinComplexity, cfg.MaxComplexity = 1, 1

	fp := GenerateFootprint(cfg, rng.New(3))
	b := fp.Bounds()
	assert.Equal(t, b.Width()*b.Length(), fp.Len(), "a single rectangle fills its bounding box")
	assert.GreaterOrEqual(t, b.Width(), cfg.MinRoomWidth*cfg.FootprintScale)
}

func TestGenerateFootprint_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := GenerateFootprint(cfg, rng.New(11))
	b := GenerateFootprint(cfg, rng.New(11))
	assert.Equal(t, a.Sorted(), b.Sorted())
}

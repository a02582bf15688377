package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRange_Bounds(t *testing.T) {
	src := New(42)
	for i := 0; i < 1000; i++ {
		v := src.IntRange(-3, 4)
		require.GreaterOrEqual(t, v, -3)
		require.Less(t, v, 4)
	}
}

func TestIntRange_EmptyRangeReturnsMin(t *testing.T) {
	src := New(1)
	assert.Equal(t, 5, src.IntRange(5, 5))
	assert.Equal(t, 5, src.IntRange(5, 2))
}

func TestNew_SameSeedSameStream(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
	}
	assert.Equal(t, Perm(a, 10), Perm(b, 10))
}

func TestNew_ZeroSeedIsReported(t *testing.T) {
	src := New(0)
	assert.NotZero(t, src.Seed())
}

func TestChance_Extremes(t *testing.T) {
	src := New(7)
	for i := 0; i < 100; i++ {
		assert.False(t, Chance(src, 0))
		assert.True(t, Chance(src, 1))
	}
}

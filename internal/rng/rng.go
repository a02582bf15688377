// Package rng is the randomness source behind layout generation. Every draw
// goes through a Source so a run can be replayed from its seed.
package rng

import (
	"math/rand"
	"time"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
)

type Source interface {
	// IntRange returns a uniform int in [lo, hi). It returns lo when the
	// range is empty.
	IntRange(lo, hi int) int
	// Float01 returns a uniform float in [0, 1).
	Float01() float64
	Shuffle(n int, swap func(i, j int))
}

// Rand is a seeded Source over math/rand.
type Rand struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Source seeded with seed. A zero seed picks one from the clock;
// Seed reports the value actually used.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Seed() int64 { return r.seed }

func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo)
}

func (r *Rand) Float01() float64 { return r.rng.Float64() }

func (r *Rand) Shuffle(n int, swap func(i, j int)) { r.rng.Shuffle(n, swap) }

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	return src.Float01() < p
}

// CoinFlip is Chance(src, 0.5).
func CoinFlip(src Source) bool { return src.IntRange(0, 2) == 0 }

// ShuffleTiles shuffles tiles in place.
func ShuffleTiles(src Source, tiles []geometry.Tile) {
	src.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
}

// Perm returns 0..n-1 in random order.
func Perm(src Source, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	src.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

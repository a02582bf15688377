package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/rng"
)

// quadRooms is a 4x4 square split into four 2x2 rooms.
func quadRooms() []geometry.TileSet {
	return []geometry.TileSet{
		geometry.RectTiles(0, 0, 2, 2),
		geometry.RectTiles(2, 0, 2, 2),
		geometry.RectTiles(0, 2, 2, 2),
		geometry.RectTiles(2, 2, 2, 2),
	}
}

// reachableRegions counts regions of the union of rooms when movement is
// free inside a room and across doors only.
func reachableRegions(rooms []geometry.TileSet, plan DoorPlan) int {
	owner := make(map[geometry.Tile]int)
	all := geometry.NewTileSet()
	for i, r := range rooms {
		r.Each(func(t geometry.Tile) { owner[t] = i })
		all.AddAll(r)
	}
	rm := geometry.BuildRegionMap(all, func(e geometry.EdgeAddress) bool {
		a, b := e.Tiles()
		return owner[a] == owner[b] || plan.Has(e)
	})
	return rm.RegionsCount
}

func TestPlanDoors_SpanningTreeWithoutLoops(t *testing.T) {
	rooms := quadRooms()
	for seed := int64(1); seed <= 20; seed++ {
		plan := PlanDoors(rooms, 0, rng.New(seed))
		assert.Equal(t, 3, plan.Len(), "seed %d", seed)
		assert.Equal(t, 1, reachableRegions(rooms, plan), "seed %d", seed)
		require.Len(t, plan.Components, 1)
		assert.Equal(t, []int{0, 1, 2, 3}, plan.Components[0])
	}
}

func TestPlanDoors_CertainLoopsConnectEveryPair(t *testing.T) {
	plan := PlanDoors(quadRooms(), 1, rng.New(3))
	assert.Equal(t, 4, plan.Len())

	loops := 0
	for _, d := range plan.Doors {
		if d.Loop {
			loops++
		}
	}
	assert.Equal(t, 1, loops)
}

func TestPlanDoors_DoorsSitOnSharedEdges(t *testing.T) {
	rooms := quadRooms()
	plan := PlanDoors(rooms, 0.5, rng.New(8))
	for _, d := range plan.Doors {
		a, b := d.Edge.Tiles()
		inA := rooms[d.RoomA].Has(a) && rooms[d.RoomB].Has(b)
		inB := rooms[d.RoomA].Has(b) && rooms[d.RoomB].Has(a)
		assert.True(t, inA || inB, "door %v is not between rooms %d and %d", d.Edge, d.RoomA, d.RoomB)
		assert.Less(t, d.RoomA, d.RoomB)
	}
}

func TestPlanDoors_IsolatedRoomStaysIsolated(t *testing.T) {
	rooms := []geometry.TileSet{
		geometry.RectTiles(0, 0, 3, 3),
		geometry.RectTiles(3, 0, 3, 3),
		geometry.RectTiles(20, 20, 2, 2),
	}
	plan := PlanDoors(rooms, 0, rng.New(1))
	assert.Equal(t, 1, plan.Len())
	assert.Equal(t, []int{2}, plan.Isolated)
	assert.Equal(t, [][]int{{0, 1}, {2}}, plan.Components)
}

func TestPlanDoors_SingleRoom(t *testing.T) {
	plan := PlanDoors([]geometry.TileSet{geometry.RectTiles(0, 0, 5, 5)}, 0.5, rng.New(1))
	assert.Zero(t, plan.Len())
	assert.Empty(t, plan.Isolated)
}

func TestPlanDoors_AtLeastSpanningOnPartitions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinComplexity, cfg.MaxComplexity = 1, 1
	for seed := int64(1); seed <= 20; seed++ {
		src := rng.New(seed)
		fp := GenerateFootprint(cfg, src)
		rooms := Partition(fp, 6, cfg, src)
		plan := PlanDoors(rooms, cfg.LoopDoorChance, src)

		assert.GreaterOrEqual(t, plan.Len(), len(rooms)-1, "seed %d", seed)
		assert.Equal(t, 1, reachableRegions(rooms, plan), "seed %d", seed)
	}
}

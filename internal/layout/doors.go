package layout

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/rng"
)

// Door is an opening on the shared edge of two rooms. RoomA < RoomB.
type Door struct {
	Edge  geometry.EdgeAddress
	RoomA int
	RoomB int
	// Loop marks a door between rooms that were already connected.
	Loop bool
}

// DoorPlan is the door set of one floor.
type DoorPlan struct {
	Doors []Door
	// Components groups room indices that are mutually reachable through
	// doors, each group sorted, groups ordered by their first room.
	Components [][]int
	// Isolated lists rooms that share no edge with any other room.
	Isolated []int

	edges mapset.Set[geometry.EdgeAddress]
}

// Has reports whether edge carries a door.
func (p DoorPlan) Has(edge geometry.EdgeAddress) bool {
	return p.edges.Has(edge)
}

func (p DoorPlan) Len() int { return len(p.Doors) }

// Edges returns the door edges in creation order.
func (p DoorPlan) Edges() []geometry.EdgeAddress {
	out := make([]geometry.EdgeAddress, len(p.Doors))
	for i, d := range p.Doors {
		out[i] = d.Edge
	}
	return out
}

type roomPair struct {
	a, b  int
	edges []geometry.EdgeAddress
}

// PlanDoors picks doors so every group of touching rooms becomes mutually
// reachable with the fewest doors: adjacent room pairs are visited in random
// order and a union-find adds a door only when it joins two components.
// A pair whose rooms are already joined still gets a door with probability
// loopChance.
func PlanDoors(rooms []geometry.TileSet, loopChance float64, src rng.Source) DoorPlan {
	plan := DoorPlan{edges: mapset.New[geometry.EdgeAddress]()}

	var pairs []roomPair
	touching := make([]bool, len(rooms))
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			edges := geometry.SharedEdges(rooms[i], rooms[j])
			if len(edges) == 0 {
				continue
			}
			pairs = append(pairs, roomPair{a: i, b: j, edges: edges})
			touching[i], touching[j] = true, true
		}
	}
	src.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	ds := newDisjointSet(len(rooms))
	for _, pair := range pairs {
		if ds.union(pair.a, pair.b) {
			plan.add(Door{Edge: pair.edges[src.IntRange(0, len(pair.edges))], RoomA: pair.a, RoomB: pair.b})
			continue
		}
		if rng.Chance(src, loopChance) {
			plan.add(Door{Edge: pair.edges[src.IntRange(0, len(pair.edges))], RoomA: pair.a, RoomB: pair.b, Loop: true})
		}
	}

	for i, t := range touching {
		if !t && len(rooms) > 1 {
			plan.Isolated = append(plan.Isolated, i)
		}
	}
	plan.Components = ds.groups()
	return plan
}

func (p *DoorPlan) add(d Door) {
	if p.edges.Has(d.Edge) {
		return
	}
	p.edges.Put(d.Edge)
	p.Doors = append(p.Doors, d)
}

// disjointSet is a union-find over room indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// union joins the sets of a and b and reports whether they were separate.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	return true
}

func (ds *disjointSet) groups() [][]int {
	byRoot := make(map[int][]int)
	for i := range ds.parent {
		r := ds.find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	out := make([][]int, 0, len(byRoot))
	for _, g := range byRoot {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

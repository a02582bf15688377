package geometry

import "testing"

func TestSharedEdges(t *testing.T) {
	left := RectTiles(0, 0, 2, 3)
	right := RectTiles(2, 1, 2, 3)
	edges := SharedEdges(left, right)
	if len(edges) != 2 {
		t.Fatalf("expected 2 shared edges, got %d: %v", len(edges), edges)
	}
	for _, e := range edges {
		if e.Orientation != Vertical || e.X != 1 {
			t.Errorf("unexpected shared edge %v", e)
		}
	}
	if got := SharedEdges(left, RectTiles(5, 5, 1, 1)); len(got) != 0 {
		t.Errorf("expected no shared edges for distant sets, got %v", got)
	}
}

func TestEdgeBetween_Canonical(t *testing.T) {
	a := Tile{X: 4, Y: 7}
	for _, d := range Directions {
		b := a.Neighbor(d)
		ab, ok := EdgeBetween(a, b)
		if !ok {
			t.Fatalf("expected %v and %v to be adjacent", a, b)
		}
		ba, _ := EdgeBetween(b, a)
		if ab != ba {
			t.Errorf("edge %v != %v for direction %v", ab, ba, d)
		}
		lo, hi := ab.Tiles()
		if !(lo == a && hi == b) && !(lo == b && hi == a) {
			t.Errorf("edge %v does not round-trip to %v/%v", ab, a, b)
		}
	}
	if _, ok := EdgeBetween(a, Tile{X: 5, Y: 8}); ok {
		t.Errorf("diagonal tiles must not share an edge")
	}
}

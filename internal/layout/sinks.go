package layout

import "github.com/Ko-stant/house-layout-engine/internal/geometry"

type PrimitiveKind string

const (
	PrimitiveFloor   PrimitiveKind = "floor"
	PrimitiveCeiling PrimitiveKind = "ceiling"
	PrimitiveWall    PrimitiveKind = "wall"
)

// Primitive is one emitted floor slab, ceiling slab, or wall face.
type Primitive struct {
	Kind     PrimitiveKind
	Floor    int
	Pos      geometry.Tile
	Dir      geometry.Direction
	Interior bool
	Height   float64
}

// Recorder is a Sink that keeps everything it receives.
type Recorder struct {
	Primitives []Primitive
	Ramps      []Ramp
}

func (r *Recorder) EmitFloor(floor int, pos geometry.Tile, height float64) {
	r.Primitives = append(r.Primitives, Primitive{Kind: PrimitiveFloor, Floor: floor, Pos: pos, Height: height})
}

func (r *Recorder) EmitCeiling(floor int, pos geometry.Tile, height float64) {
	r.Primitives = append(r.Primitives, Primitive{Kind: PrimitiveCeiling, Floor: floor, Pos: pos, Height: height})
}

func (r *Recorder) EmitWall(floor int, pos geometry.Tile, dir geometry.Direction, interior bool, height float64) {
	r.Primitives = append(r.Primitives, Primitive{Kind: PrimitiveWall, Floor: floor, Pos: pos, Dir: dir, Interior: interior, Height: height})
}

func (r *Recorder) EmitStairRamp(ramp Ramp) {
	r.Ramps = append(r.Ramps, ramp)
}

// Filter returns the recorded primitives of one kind on one floor.
func (r *Recorder) Filter(kind PrimitiveKind, floor int) []Primitive {
	var out []Primitive
	for _, p := range r.Primitives {
		if p.Kind == kind && p.Floor == floor {
			out = append(out, p)
		}
	}
	return out
}

type discardSink struct{}

func (discardSink) EmitFloor(int, geometry.Tile, float64) {}
func (discardSink) EmitCeiling(int, geometry.Tile, float64) {}
func (discardSink) EmitWall(int, geometry.Tile, geometry.Direction, bool, float64) {}
func (discardSink) EmitStairRamp(Ramp) {}

// Discard drops all geometry.
var Discard Sink = discardSink{}

type multiSink []Sink

// MultiSink duplicates every primitive to each of sinks.
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) EmitFloor(floor int, pos geometry.Tile, height float64) {
	for _, s := range m {
		s.EmitFloor(floor, pos, height)
	}
}

func (m multiSink) EmitCeiling(floor int, pos geometry.Tile, height float64) {
	for _, s := range m {
		s.EmitCeiling(floor, pos, height)
	}
}

func (m multiSink) EmitWall(floor int, pos geometry.Tile, dir geometry.Direction, interior bool, height float64) {
	for _, s := range m {
		s.EmitWall(floor, pos, dir, interior, height)
	}
}

func (m multiSink) EmitStairRamp(ramp Ramp) {
	for _, s := range m {
		s.EmitStairRamp(ramp)
	}
}

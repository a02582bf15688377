package layout

import (
	"fmt"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/rng"
)

// Generator runs generation passes. It holds no state between passes.
type Generator struct {
	logger Logger
}

func NewGenerator(logger Logger) *Generator {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Generator{logger: logger}
}

// Generate builds a new building from cfg, seeding the randomness source with
// cfg.Seed, and streams its geometry to sink (which may be nil).
func (g *Generator) Generate(cfg Config, sink Sink) (*Building, error) {
	return g.GenerateWith(cfg, rng.New(cfg.Seed), sink)
}

// GenerateWith is Generate with a caller-supplied randomness source. The
// configuration is validated before anything is drawn from src.
func (g *Generator) GenerateWith(cfg Config, src rng.Source, sink Sink) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return g.run(&pass{cfg: cfg, src: src}, sink), nil
}

// GenerateOnFootprint partitions an authored outline, such as one read with
// geometry.LoadFootprintFromFile, instead of generating one. Only the
// partition strategy can use a fixed outline.
func (g *Generator) GenerateOnFootprint(cfg Config, footprint geometry.TileSet, sink Sink) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Strategy != StrategyPartition {
		return nil, &ConfigError{Field: "strategy", Reason: fmt.Sprintf("a fixed footprint needs %q, got %q", StrategyPartition, cfg.Strategy)}
	}
	if footprint.Empty() {
		return nil, &ConfigError{Field: "footprint", Reason: "footprint has no tiles"}
	}
	return g.run(&pass{cfg: cfg, src: rng.New(cfg.Seed), fixed: footprint.Clone(), hasFixed: true}, sink), nil
}

func (g *Generator) run(p *pass, sink Sink) *Building {
	if sink == nil {
		sink = Discard
	}
	p.logger = g.logger
	p.building = &Building{Config: p.cfg}
	if seeded, ok := p.src.(interface{ Seed() int64 }); ok {
		p.building.Seed = seeded.Seed()
	}

	p.planFloors()
	p.planStairwell()
	p.emit(sink)

	b := p.building
	g.logger.Printf("generated building seed=%d floors=%d rooms=%d footprint=%d warnings=%d",
		b.Seed, len(b.Floors), b.RoomCount(), b.Footprint.Len(), len(b.Warnings))
	return b
}

// pass holds the working state of one generation call.
type pass struct {
	cfg      Config
	src      rng.Source
	logger   Logger
	building *Building

	fixed    geometry.TileSet
	hasFixed bool
}

func (p *pass) warn(w Warning) {
	p.logger.Printf("warning: %s", w)
	p.building.Warnings = append(p.building.Warnings, w)
}

func (p *pass) planFloors() {
	var footprint geometry.TileSet
	switch {
	case p.hasFixed:
		footprint = p.fixed
	case p.cfg.Strategy == StrategyPartition:
		footprint = GenerateFootprint(p.cfg, p.src)
	}

	for i := 0; i < p.cfg.NumberOfFloors; i++ {
		if i > 0 && p.cfg.IdenticalFloors {
			p.building.Floors = append(p.building.Floors, copyFloor(p.building.Floors[0], i))
			continue
		}

		target := p.cfg.NumberOfRooms
		if i > 0 && p.cfg.RoomAmountsDifferPerFloor {
			target += p.src.IntRange(0, 3)
		}

		var rooms []Room
		if p.cfg.Strategy == StrategyPartition {
			rooms = p.partitionFloor(i, footprint, target)
		} else {
			var warnings []Warning
			rooms, warnings = PlaceRooms(p.cfg, p.src, i, target)
			for _, w := range warnings {
				p.warn(w)
			}
		}
		p.building.Floors = append(p.building.Floors, p.connectFloor(i, rooms))
	}

	if p.cfg.Strategy != StrategyPartition {
		// Vertical circulation must stay inside every floor.
		footprint = p.building.Floors[0].Occupancy.Clone()
		for _, f := range p.building.Floors[1:] {
			footprint = footprint.Intersect(f.Occupancy)
		}
	}
	p.building.Footprint = footprint
}

func (p *pass) partitionFloor(floor int, footprint geometry.TileSet, target int) []Room {
	regions := Partition(footprint, target, p.cfg, p.src)
	if len(regions) < target {
		p.warn(Warning{
			Kind:    RoomShortfall,
			Floor:   floor,
			Room:    -1,
			Message: fmt.Sprintf("partitioned %d of %d requested rooms", len(regions), target),
		})
	}
	rooms := make([]Room, len(regions))
	for i, region := range regions {
		rooms[i] = newRoom(i, region)
	}
	return rooms
}

func (p *pass) connectFloor(index int, rooms []Room) *Floor {
	tiles := make([]geometry.TileSet, len(rooms))
	occupancy := geometry.NewTileSet()
	for i, r := range rooms {
		tiles[i] = r.Tiles
		occupancy.AddAll(r.Tiles)
	}

	doors := PlanDoors(tiles, p.cfg.LoopDoorChance, p.src)
	for _, id := range doors.Isolated {
		p.warn(Warning{
			Kind:    IsolatedRoom,
			Floor:   index,
			Room:    id,
			Message: fmt.Sprintf("room %d shares no edge with another room", id),
		})
	}
	return &Floor{Index: index, Rooms: rooms, Doors: doors, Occupancy: occupancy}
}

// copyFloor reuses the rooms and doors of f for floor index.
func copyFloor(f *Floor, index int) *Floor {
	rooms := make([]Room, len(f.Rooms))
	for i, r := range f.Rooms {
		r.Tiles = r.Tiles.Clone()
		rooms[i] = r
	}
	return &Floor{Index: index, Rooms: rooms, Doors: f.Doors, Occupancy: f.Occupancy.Clone()}
}

func (p *pass) planStairwell() {
	if p.cfg.NumberOfFloors < 2 {
		return
	}
	sw := PlanStairwell(p.building.Footprint, p.cfg.StairwellDepth, p.src)
	if sw == nil {
		p.warn(Warning{Kind: StairwellUnresolved, Room: -1, Message: "no tile is shared by every floor, building has no stairwell"})
		return
	}
	if !sw.Validated {
		p.warn(Warning{
			Kind:    StairwellUnresolved,
			Room:    -1,
			Message: fmt.Sprintf("no clear %d-tile runway, falling back to anchor %v", sw.Depth, sw.Anchor),
		})
	}
	p.building.Stairwell = sw
}

// emit streams the floors bottom-up. Each floor sits on the highest ceiling
// emitted by the floor below, so floors cannot be emitted out of order.
func (p *pass) emit(sink Sink) {
	b := p.building
	last := len(b.Floors) - 1
	height := 0.0
	for i, f := range b.Floors {
		f.Height = height
		ceiling, ok := emitFloor(f, i == last, b.Stairwell, p.cfg.WallHeight, sink)
		if !ok {
			ceiling = f.Height + float64(p.cfg.WallHeight)
		}
		if i < last && b.Stairwell != nil {
			ramp := b.Stairwell.Ramp(i, f.Height, ceiling, p.cfg.WallHeight)
			sink.EmitStairRamp(ramp)
			b.Ramps = append(b.Ramps, ramp)
		}
		height = ceiling
	}
}

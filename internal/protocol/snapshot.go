package protocol

import (
	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/layout"
)

const ProtocolVersion = "v1"

type TileAddress struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TileAddressOf(t geometry.Tile) TileAddress {
	return TileAddress{X: t.X, Y: t.Y}
}

func tileAddresses(tiles []geometry.Tile) []TileAddress {
	out := make([]TileAddress, len(tiles))
	for i, t := range tiles {
		out[i] = TileAddressOf(t)
	}
	return out
}

type RoomLite struct {
	ID     int           `json:"id"`
	Offset TileAddress   `json:"offset"`
	Width  int           `json:"width"`
	Length int           `json:"length"`
	Tiles  []TileAddress `json:"tiles"`
}

type DoorLite struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation"`
	RoomA       int    `json:"roomA"`
	RoomB       int    `json:"roomB"`
	Loop        bool   `json:"loop,omitempty"`
}

// EdgeLite is a wall segment on the tile grid.
type EdgeLite struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation"`
}

type FloorLite struct {
	Index  int        `json:"index"`
	Height float64    `json:"height"`
	Rooms  []RoomLite `json:"rooms"`
	Doors  []DoorLite `json:"doors"`
	Walls  []EdgeLite `json:"walls"`
}

type StairwellLite struct {
	Anchor    TileAddress   `json:"anchor"`
	Depth     int           `json:"depth"`
	Validated bool          `json:"validated"`
	Run       []TileAddress `json:"run"`
}

// Snapshot is the full state of one generated building as sent to clients.
type Snapshot struct {
	ProtocolVersion string              `json:"protocolVersion"`
	Seed            int64               `json:"seed"`
	Strategy        string              `json:"strategy"`
	// Origin is the minimum corner of every tile in the snapshot.
	Origin          TileAddress         `json:"origin"`
	Width           int                 `json:"width"`
	Length          int                 `json:"length"`
	Footprint       []TileAddress       `json:"footprint"`
	Floors          []FloorLite         `json:"floors"`
	Stairwell       *StairwellLite      `json:"stairwell,omitempty"`
	Ramps           []StairRampEmitted  `json:"ramps"`
	Warnings        []GenerationWarning `json:"warnings"`
}

func RampFrom(r layout.Ramp) StairRampEmitted {
	return StairRampEmitted{
		Floor:        r.Floor,
		Anchor:       TileAddressOf(r.Anchor),
		Depth:        r.Depth,
		Bottom:       r.Bottom,
		Top:          r.Top,
		Length:       r.Length,
		AngleDegrees: r.AngleDegrees(),
	}
}

func WarningFrom(w layout.Warning) GenerationWarning {
	return GenerationWarning{Kind: string(w.Kind), Floor: w.Floor, Room: w.Room, Message: w.Message}
}

// SnapshotFromBuilding flattens b into its wire form. Tiles are listed in
// sorted order so equal buildings produce equal snapshots.
func SnapshotFromBuilding(b *layout.Building) Snapshot {
	// Placed floors can reach past the shared footprint.
	extent := b.Footprint.Clone()
	for _, f := range b.Floors {
		extent.AddAll(f.Occupancy)
	}
	bounds := extent.Bounds()

	s := Snapshot{
		ProtocolVersion: ProtocolVersion,
		Seed:            b.Seed,
		Strategy:        string(b.Config.Strategy),
		Origin:          TileAddressOf(bounds.Min),
		Width:           bounds.Width(),
		Length:          bounds.Length(),
		Footprint:       tileAddresses(b.Footprint.Sorted()),
		Floors:          make([]FloorLite, 0, len(b.Floors)),
		Ramps:           make([]StairRampEmitted, 0, len(b.Ramps)),
		Warnings:        make([]GenerationWarning, 0, len(b.Warnings)),
	}

	for _, f := range b.Floors {
		fl := FloorLite{Index: f.Index, Height: f.Height, Rooms: make([]RoomLite, 0, len(f.Rooms)), Doors: make([]DoorLite, 0, f.Doors.Len())}
		for _, r := range f.Rooms {
			fl.Rooms = append(fl.Rooms, RoomLite{
				ID:     r.ID,
				Offset: TileAddressOf(r.Offset),
				Width:  r.Width,
				Length: r.Length,
				Tiles:  tileAddresses(r.Tiles.Sorted()),
			})
		}
		for _, d := range f.Doors.Doors {
			fl.Doors = append(fl.Doors, DoorLite{
				X:           d.Edge.X,
				Y:           d.Edge.Y,
				Orientation: string(d.Edge.Orientation),
				RoomA:       d.RoomA,
				RoomB:       d.RoomB,
				Loop:        d.Loop,
			})
		}
		fl.Walls = floorWalls(f)
		s.Floors = append(s.Floors, fl)
	}

	if sw := b.Stairwell; sw != nil {
		s.Stairwell = &StairwellLite{
			Anchor:    TileAddressOf(sw.Anchor),
			Depth:     sw.Depth,
			Validated: sw.Validated,
			Run:       tileAddresses(sw.Run()),
		}
	}
	for _, r := range b.Ramps {
		s.Ramps = append(s.Ramps, RampFrom(r))
	}
	for _, w := range b.Warnings {
		s.Warnings = append(s.Warnings, WarningFrom(w))
	}
	return s
}

// floorWalls lists every wall edge of f, vertical walls first.
func floorWalls(f *layout.Floor) []EdgeLite {
	rooms := make([]geometry.TileSet, len(f.Rooms))
	for i, r := range f.Rooms {
		rooms[i] = r.Tiles
	}
	vertical, horizontal := geometry.WallEdges(rooms, f.Doors.Has)
	walls := make([]EdgeLite, 0, len(vertical)+len(horizontal))
	for _, e := range append(vertical, horizontal...) {
		walls = append(walls, EdgeLite{X: e.X, Y: e.Y, Orientation: string(e.Orientation)})
	}
	return walls
}

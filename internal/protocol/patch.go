package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// Event types carried in PatchEnvelope.Type.
const (
	EventFloorGeometry     = "FloorGeometry"
	EventStairRampEmitted  = "StairRampEmitted"
	EventBuildingGenerated = "BuildingGenerated"
	EventGenerationWarning = "GenerationWarning"
	EventFloorSelected     = "FloorSelected"
)

type FloorEmitted struct {
	Floor  int         `json:"floor"`
	Tile   TileAddress `json:"tile"`
	Height float64     `json:"height"`
}

type CeilingEmitted struct {
	Floor  int         `json:"floor"`
	Tile   TileAddress `json:"tile"`
	Height float64     `json:"height"`
}

type WallEmitted struct {
	Floor     int         `json:"floor"`
	Tile      TileAddress `json:"tile"`
	Direction string      `json:"direction"`
	Interior  bool        `json:"interior"`
	Height    float64     `json:"height"`
}

// FloorGeometry carries every slab and wall of one floor in a single event.
type FloorGeometry struct {
	Floor    int              `json:"floor"`
	Floors   []FloorEmitted   `json:"floors"`
	Ceilings []CeilingEmitted `json:"ceilings"`
	Walls    []WallEmitted    `json:"walls"`
}

type StairRampEmitted struct {
	Floor        int         `json:"floor"`
	Anchor       TileAddress `json:"anchor"`
	Depth        int         `json:"depth"`
	Bottom       float64     `json:"bottom"`
	Top          float64     `json:"top"`
	Length       float64     `json:"length"`
	AngleDegrees float64     `json:"angleDegrees"`
}

// BuildingGenerated closes a stream of emission events.
type BuildingGenerated struct {
	Seed     int64 `json:"seed"`
	Floors   int   `json:"floors"`
	Rooms    int   `json:"rooms"`
	Warnings int   `json:"warnings"`
}

type GenerationWarning struct {
	Kind    string `json:"kind"`
	Floor   int    `json:"floor"`
	Room    int    `json:"room"`
	Message string `json:"message"`
}

type FloorSelected struct {
	Floor int `json:"floor"`
}

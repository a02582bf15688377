package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Strategy selects how a floor is divided into rooms.
type Strategy string

const (
	// StrategyPartition splits a generated footprint with BSP.
	StrategyPartition Strategy = "partition"
	// StrategySnap places independent room shapes edge to edge.
	StrategySnap Strategy = "snap"
	// StrategyScatter places independent room shapes at random inside the house bounds.
	StrategyScatter Strategy = "scatter"
)

// Config holds every recognised generation option.
type Config struct {
	NumberOfRooms             int  `json:"numberOfRooms"`
	NumberOfFloors            int  `json:"numberOfFloors"`
	IdenticalFloors           bool `json:"identicalFloors"`
	RoomAmountsDifferPerFloor bool `json:"roomAmountsDifferPerFloor"`

	MaxHouseWidth  int `json:"maxHouseWidth"`
	MaxHouseLength int `json:"maxHouseLength"`

	MinRoomWidth  int `json:"minRoomWidth"`
	MaxRoomWidth  int `json:"maxRoomWidth"`
	MinRoomLength int `json:"minRoomLength"`
	MaxRoomLength int `json:"maxRoomLength"`
	WallHeight    int `json:"wallHeight"`

	// How many rectangles are unioned into one footprint or room shape.
	MinComplexity int `json:"minComplexity"`
	MaxComplexity int `json:"maxComplexity"`

	StairwellDepth int `json:"stairwellDepth"`

	Strategy             Strategy `json:"strategy"`
	MaxPlacementAttempts int      `json:"maxPlacementAttempts"`
	// Probability of a door between rooms that are already connected.
	LoopDoorChance float64 `json:"loopDoorChance"`
	// Footprint rectangles are sampled from the room size range times this.
	FootprintScale int `json:"footprintScale"`

	// Zero draws a seed from the clock.
	Seed int64 `json:"seed"`
}

func DefaultConfig() Config {
	return Config{
		NumberOfRooms:        5,
		NumberOfFloors:       2,
		MaxHouseWidth:        40,
		MaxHouseLength:       40,
		MinRoomWidth:         4,
		MaxRoomWidth:         10,
		MinRoomLength:        4,
		MaxRoomLength:        10,
		WallHeight:           3,
		MinComplexity:        1,
		MaxComplexity:        3,
		StairwellDepth:       4,
		Strategy:             StrategyPartition,
		MaxPlacementAttempts: 50,
		LoopDoorChance:       0.1,
		FootprintScale:       2,
	}
}

// Validate checks the configuration before any generation work starts. All
// problems are reported together.
func (c Config) Validate() error {
	var errs []error
	positive := func(field string, v int) {
		if v <= 0 {
			errs = append(errs, &ConfigError{Field: field, Reason: fmt.Sprintf("must be positive, got %d", v)})
		}
	}
	ordered := func(minField, maxField string, lo, hi int) {
		if lo > hi {
			errs = append(errs, &ConfigError{Field: minField, Reason: fmt.Sprintf("%d exceeds %s %d", lo, maxField, hi)})
		}
	}

	positive("numberOfRooms", c.NumberOfRooms)
	positive("numberOfFloors", c.NumberOfFloors)
	positive("maxHouseWidth", c.MaxHouseWidth)
	positive("maxHouseLength", c.MaxHouseLength)
	positive("minRoomWidth", c.MinRoomWidth)
	positive("maxRoomWidth", c.MaxRoomWidth)
	positive("minRoomLength", c.MinRoomLength)
	positive("maxRoomLength", c.MaxRoomLength)
	positive("wallHeight", c.WallHeight)
	positive("minComplexity", c.MinComplexity)
	positive("maxComplexity", c.MaxComplexity)
	positive("stairwellDepth", c.StairwellDepth)
	positive("maxPlacementAttempts", c.MaxPlacementAttempts)
	positive("footprintScale", c.FootprintScale)

	ordered("minRoomWidth", "maxRoomWidth", c.MinRoomWidth, c.MaxRoomWidth)
	ordered("minRoomLength", "maxRoomLength", c.MinRoomLength, c.MaxRoomLength)
	ordered("minComplexity", "maxComplexity", c.MinComplexity, c.MaxComplexity)

	if c.LoopDoorChance < 0 || c.LoopDoorChance > 1 {
		errs = append(errs, &ConfigError{Field: "loopDoorChance", Reason: fmt.Sprintf("must be within [0,1], got %g", c.LoopDoorChance)})
	}
	switch c.Strategy {
	case StrategyPartition, StrategySnap, StrategyScatter:
	default:
		errs = append(errs, &ConfigError{Field: "strategy", Reason: fmt.Sprintf("unknown strategy %q", c.Strategy)})
	}

	return errors.Join(errs...)
}

// LoadConfigFromFile reads a JSON config layered over DefaultConfig and
// validates it.
func LoadConfigFromFile(filepath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath, err)
	}
	return cfg, nil
}

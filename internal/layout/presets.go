package layout

import (
	"fmt"
	"sort"
)

// PresetDormitory: many small, similar rooms stacked over several floors.
func PresetDormitory() Config {
	cfg := DefaultConfig()
	cfg.NumberOfRooms = 10
	cfg.NumberOfFloors = 3
	cfg.IdenticalFloors = true
	cfg.MinRoomWidth, cfg.MaxRoomWidth = 4, 6
	cfg.MinRoomLength, cfg.MaxRoomLength = 4, 6
	cfg.MinComplexity, cfg.MaxComplexity = 1, 2
	return cfg
}

// PresetWarehouse: one storey, few very large rooms, high walls.
func PresetWarehouse() Config {
	cfg := DefaultConfig()
	cfg.NumberOfRooms = 2
	cfg.NumberOfFloors = 1
	cfg.MaxHouseWidth, cfg.MaxHouseLength = 60, 60
	cfg.MinRoomWidth, cfg.MaxRoomWidth = 10, 20
	cfg.MinRoomLength, cfg.MaxRoomLength = 10, 20
	cfg.WallHeight = 6
	cfg.MinComplexity, cfg.MaxComplexity = 1, 1
	return cfg
}

// PresetMansion: irregular outline, many rooms, floors that differ.
func PresetMansion() Config {
	cfg := DefaultConfig()
	cfg.NumberOfRooms = 12
	cfg.NumberOfFloors = 3
	cfg.RoomAmountsDifferPerFloor = true
	cfg.MaxHouseWidth, cfg.MaxHouseLength = 50, 50
	cfg.MinComplexity, cfg.MaxComplexity = 2, 4
	cfg.StairwellDepth = 5
	cfg.LoopDoorChance = 0.2
	return cfg
}

// PresetCottage: snapped rooms on a single small storey.
func PresetCottage() Config {
	cfg := DefaultConfig()
	cfg.NumberOfRooms = 4
	cfg.NumberOfFloors = 1
	cfg.Strategy = StrategySnap
	cfg.MaxHouseWidth, cfg.MaxHouseLength = 24, 24
	return cfg
}

var presets = map[string]func() Config{
	"default":   DefaultConfig,
	"dormitory": PresetDormitory,
	"warehouse": PresetWarehouse,
	"mansion":   PresetMansion,
	"cottage":   PresetCottage,
}

// Preset returns the named configuration.
func Preset(name string) (Config, error) {
	ctor, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (known: %v)", name, PresetNames())
	}
	return ctor(), nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
